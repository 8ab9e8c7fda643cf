package notification

import (
	"context"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/internal/repository"
)

type service struct {
	repo domain.NotificationRepository
}

var _ domain.NotificationUsecase = (*service)(nil)

func NewService(r domain.NotificationRepository) *service {
	return &service{repo: r}
}

// Fetch returns the requester's notifications, newest first.
func (s *service) Fetch(ctx context.Context, requesterID int64, cursor string, num int64) ([]domain.Notification, string, error) {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return nil, "", err
	}
	repository.PageVerify(&num)

	res, err := s.repo.FetchByRecipient(ctx, requesterID, cursor, num)
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return []domain.Notification{}, "", nil
	}
	last := res[len(res)-1]
	return res, repository.NextCursor(len(res), num, last.CreatedAt, last.ID), nil
}

func (s *service) MarkAllRead(ctx context.Context, requesterID int64) (int64, error) {
	if err := domain.RequireIdentity(requesterID); err != nil {
		return 0, err
	}
	return s.repo.MarkAllRead(ctx, requesterID)
}
