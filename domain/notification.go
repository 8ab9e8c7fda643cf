package domain

import (
	"context"
	"time"
)

const (
	VerbLikedPost = "liked your post"

	TargetPost = "post"
)

// Notification is an append-only event addressed to Recipient.
type Notification struct {
	ID          int64
	RecipientID int64
	ActorID     int64
	Verb        string
	TargetType  string
	TargetID    int64
	Read        bool
	CreatedAt   time.Time
}

// NotificationSink accepts notifications without blocking the caller.
// Emit never reports failure; delivery is best effort.
type NotificationSink interface {
	Emit(n Notification)
}

type NotificationRepository interface {
	StoreBatch(ctx context.Context, ns []Notification) error
	// FetchByRecipient pages newest first.
	FetchByRecipient(ctx context.Context, recipientID int64, cursor string, num int64) ([]Notification, error)
	MarkAllRead(ctx context.Context, recipientID int64) (int64, error)
}

type NotificationUsecase interface {
	Fetch(ctx context.Context, requesterID int64, cursor string, num int64) ([]Notification, string, error)
	MarkAllRead(ctx context.Context, requesterID int64) (int64, error)
}
