package domain

import (
	"context"
	"time"
)

// Like is representing a like record, unique per (UserID, PostID)
type Like struct {
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}

// LikeRepository persists likes. Uniqueness of the pair is enforced by the store.
type LikeRepository interface {
	// Add inserts the pair and bumps the post's like count atomically.
	// Returns ErrConflict if the pair already exists, ErrNotFound if the post is gone.
	Add(ctx context.Context, l *Like) error

	// Remove deletes the pair and lowers the post's like count atomically.
	// Returns ErrNotFound if the pair does not exist.
	Remove(ctx context.Context, userID, postID int64) error
}
