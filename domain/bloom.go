package domain

import "context"

// BloomRepository answers "might this post exist" without touching the database.
type BloomRepository interface {
	// Add puts id into the filter
	Add(ctx context.Context, id int64) error

	// Exists reports whether id may exist.
	// true: maybe, ask the cache or the database.
	// false: definitely absent, answer 404 right away.
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd is used to warm the filter up
	BulkAdd(ctx context.Context, ids []int64) error
}
