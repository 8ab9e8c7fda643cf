package domain

import (
	"context"
	"time"
)

// Comment domain model
type Comment struct {
	ID        int64
	PostID    int64
	Author    User
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthorID implements Authored
func (c Comment) AuthorID() int64 {
	return c.Author.ID
}

// CommentQuery selects a page of comments ordered by created_at DESC, id DESC.
type CommentQuery struct {
	// PostID restricts the result to one post when > 0.
	PostID int64
	Cursor string
	Num    int64
}

// CommentUsecase is the business logic contract for comments
type CommentUsecase interface {
	Fetch(ctx context.Context, requesterID int64, q CommentQuery) ([]Comment, string, error)
	GetByID(ctx context.Context, requesterID int64, id int64) (Comment, error)
	Create(ctx context.Context, requesterID int64, c *Comment) error
	Update(ctx context.Context, requesterID int64, id int64, content string) (Comment, error)
	Delete(ctx context.Context, requesterID int64, id int64) error
}

// CommentRepository is the data access contract for comments
type CommentRepository interface {
	Fetch(ctx context.Context, q CommentQuery) ([]Comment, error)
	// GetByID returns ErrNotFound if the comment doesn't exist.
	GetByID(ctx context.Context, id int64) (Comment, error)
	Store(ctx context.Context, c *Comment) error
	// Update writes the content of an existing comment.
	Update(ctx context.Context, c *Comment) error
	// Delete returns ErrNotFound if nothing was removed.
	Delete(ctx context.Context, id int64) error
}
