package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/domain/mocks"
	"github.com/Guyuepp/go-clean-social/internal/usecase/notification"
)

func TestFetch(t *testing.T) {
	repo := new(mocks.NotificationRepository)
	now := time.Now()
	rows := []domain.Notification{
		{ID: 2, RecipientID: 1, CreatedAt: now},
		{ID: 1, RecipientID: 1, CreatedAt: now.Add(-time.Minute)},
	}
	repo.On("FetchByRecipient", mock.Anything, int64(1), "", int64(2)).Return(rows, nil).Once()

	res, next, err := notification.NewService(repo).Fetch(context.TODO(), 1, "", 2)

	require.NoError(t, err)
	assert.Equal(t, rows, res)
	assert.NotEmpty(t, next)
}

func TestFetchEmpty(t *testing.T) {
	repo := new(mocks.NotificationRepository)
	repo.On("FetchByRecipient", mock.Anything, int64(1), "", int64(10)).Return(nil, nil).Once()

	res, next, err := notification.NewService(repo).Fetch(context.TODO(), 1, "", 0)

	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, next)
}

func TestMarkAllRead(t *testing.T) {
	repo := new(mocks.NotificationRepository)
	repo.On("MarkAllRead", mock.Anything, int64(1)).Return(int64(3), nil).Once()
	svc := notification.NewService(repo)

	n, err := svc.MarkAllRead(context.TODO(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = svc.MarkAllRead(context.TODO(), 0)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
