package domain

import (
	"context"
	"time"
)

// Post is representing the Post data struct
type Post struct {
	ID        int64     // Unique identifier for the post
	Title     string    // Post title
	Content   string    // Post body content
	Author    User      // Author information
	Likes     int64     // Number of likes
	CreatedAt time.Time // Creation timestamp, never changes after insert
	UpdatedAt time.Time // Last update timestamp
}

// AuthorID implements Authored
func (p Post) AuthorID() int64 {
	return p.Author.ID
}

// PostQuery selects a page of posts ordered by created_at DESC, id DESC.
type PostQuery struct {
	// AuthorIDs restricts the result to these authors when non-nil.
	// A non-nil empty slice matches nothing.
	AuthorIDs []int64
	// Search matches title or content.
	Search string
	// Cursor is the opaque token returned with the previous page, empty for the first page.
	Cursor string
	Num    int64
}

// PostUpdate holds the fields a client may change. Nil means unchanged.
type PostUpdate struct {
	Title   *string
	Content *string
}

// PostRepository defines the contract for post data persistence
type PostRepository interface {
	// Fetch retrieves one page of posts matching q.
	// Returns ErrBadParamInput if the cursor cannot be decoded.
	Fetch(ctx context.Context, q PostQuery) ([]Post, error)

	// GetByID retrieves a single post by its ID.
	// Returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (Post, error)

	// Store creates a new post and backfills ID and timestamps.
	Store(ctx context.Context, p *Post) error

	// Update writes title and content of an existing post.
	// Returns ErrNotFound if the post doesn't exist.
	Update(ctx context.Context, p *Post) error

	// Delete removes a post together with its comments and likes.
	// Returns ErrNotFound if not exists
	Delete(ctx context.Context, id int64) error

	// FetchIDs lists post ids greater than cursor in ascending order.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// PostCache keeps single posts close to the handlers.
type PostCache interface {
	// GetPost returns ErrCacheMiss when the key is absent.
	// expired reports that the entry is past its logical expiry and should be rebuilt.
	GetPost(ctx context.Context, id int64) (res Post, expired bool, err error)
	SetPost(ctx context.Context, p *Post, ttl time.Duration) error
	DeletePost(ctx context.Context, id int64) error
}

type PostUsecase interface {
	Fetch(ctx context.Context, requesterID int64, search, cursor string, num int64) ([]Post, string, error)
	GetByID(ctx context.Context, requesterID int64, id int64) (Post, error)
	Store(ctx context.Context, requesterID int64, p *Post) error
	Update(ctx context.Context, requesterID int64, id int64, upd PostUpdate) (Post, error)
	Delete(ctx context.Context, requesterID int64, id int64) error
	InitBloomFilter(ctx context.Context) error
}
