package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBloomOffsetsStayInRange(t *testing.T) {
	r := NewRedisBloomRepo(nil, 1024)
	for id := int64(1); id < 500; id++ {
		offsets := r.offsets(id)
		require.Len(t, offsets, bloomHashes)
		for _, o := range offsets {
			assert.GreaterOrEqual(t, o, int64(0))
			assert.Less(t, o, int64(1024))
		}
	}
	assert.Equal(t, r.offsets(42), r.offsets(42))
	assert.NotEqual(t, r.offsets(42), r.offsets(43))
}

func TestBloomAddThenExists(t *testing.T) {
	client, mock := redismock.NewClientMock()
	r := NewRedisBloomRepo(client, 1<<20)
	offsets := r.offsets(7)

	for _, o := range offsets {
		mock.ExpectSetBit(KeyPostBloom, o, 1).SetVal(0)
	}
	require.NoError(t, r.Add(context.TODO(), 7))

	for _, o := range offsets {
		mock.ExpectGetBit(KeyPostBloom, o).SetVal(1)
	}
	ok, err := r.Exists(context.TODO(), 7)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectGetBit(KeyPostBloom, offsets[0]).SetVal(1)
	mock.ExpectGetBit(KeyPostBloom, offsets[1]).SetVal(0)
	mock.ExpectGetBit(KeyPostBloom, offsets[2]).SetVal(1)
	ok, err = r.Exists(context.TODO(), 7)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBloomExistsError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	r := NewRedisBloomRepo(client, 1<<20)
	offsets := r.offsets(7)

	mock.ExpectGetBit(KeyPostBloom, offsets[0]).SetErr(errors.New("conn reset"))

	_, err := r.Exists(context.TODO(), 7)
	assert.Error(t, err)
}

func TestBloomBulkAddEmpty(t *testing.T) {
	client, mock := redismock.NewClientMock()

	require.NoError(t, NewRedisBloomRepo(client, 1024).BulkAdd(context.TODO(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
