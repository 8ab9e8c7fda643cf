package redis

import (
	"context"
	"encoding/binary"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/go-clean-social/domain"
)

const (
	KeyPostBloom = "bloom:post:ids"

	bloomHashes = 3
	// ids per pipeline while warming up
	bloomBulkChunk = 500
)

// redisBloomRepo keeps a bloom filter of post ids in a single redis bitmap.
type redisBloomRepo struct {
	client  *redis.Client
	key     string
	bitSize uint64
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client *redis.Client, bitSize uint64) *redisBloomRepo {
	return &redisBloomRepo{
		client:  client,
		key:     KeyPostBloom,
		bitSize: bitSize,
	}
}

func (r *redisBloomRepo) Add(ctx context.Context, id int64) error {
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		r.setBits(ctx, pipe, id)
		return nil
	})
	return err
}

// Exists is true only when every bit for id is set.
func (r *redisBloomRepo) Exists(ctx context.Context, id int64) (bool, error) {
	offsets := r.offsets(id)
	cmds := make([]*redis.IntCmd, len(offsets))
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, o := range offsets {
			cmds[i] = pipe.GetBit(ctx, r.key, o)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	for _, cmd := range cmds {
		if cmd.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, ids []int64) error {
	for start := 0; start < len(ids); start += bloomBulkChunk {
		chunk := ids[start:min(start+bloomBulkChunk, len(ids))]
		_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, id := range chunk {
				r.setBits(ctx, pipe, id)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *redisBloomRepo) setBits(ctx context.Context, pipe redis.Pipeliner, id int64) {
	for _, o := range r.offsets(id) {
		pipe.SetBit(ctx, r.key, o, 1)
	}
}

// offsets derives bloomHashes bit positions from one FNV-1a sum: g_i = h1 + i*h2.
func (r *redisBloomRepo) offsets(id int64) []int64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	sum := h.Sum64()

	h1 := sum & 0xffffffff
	h2 := sum>>32 | 1
	res := make([]int64, bloomHashes)
	for i := range res {
		res[i] = int64((h1 + uint64(i)*h2) % r.bitSize)
	}
	return res
}
