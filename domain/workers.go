package domain

import "context"

// NotificationWorker is a NotificationSink that persists in the background.
type NotificationWorker interface {
	NotificationSink

	// Start blocks until ctx is done, then flushes what is left.
	Start(ctx context.Context)
}
