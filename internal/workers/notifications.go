package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-social/domain"
)

const (
	notificationQueueSize = 1024
	notificationBatchSize = 100
	flushInterval         = 1 * time.Second
	finalFlushTimeout     = 5 * time.Second
)

type notificationWorker struct {
	repo          domain.NotificationRepository
	ch            chan domain.Notification
	flushInterval time.Duration
}

var _ domain.NotificationWorker = (*notificationWorker)(nil)

func NewNotificationWorker(repo domain.NotificationRepository) *notificationWorker {
	return &notificationWorker{
		repo:          repo,
		ch:            make(chan domain.Notification, notificationQueueSize),
		flushInterval: flushInterval,
	}
}

// Emit queues n without blocking; it is dropped when the queue is full.
func (w *notificationWorker) Emit(n domain.Notification) {
	select {
	case w.ch <- n:
	default:
		logrus.Warnf("notification queue is full, dropped %q for user %d", n.Verb, n.RecipientID)
	}
}

func (w *notificationWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.flushInterval)
	defer ticker.Stop()

	batch := make([]domain.Notification, 0, notificationBatchSize)
	for {
		select {
		case n := <-w.ch:
			batch = append(batch, n)
			if len(batch) < notificationBatchSize {
				continue
			}
		case <-ticker.C:
			if len(batch) == 0 {
				continue
			}
		case <-ctx.Done():
			logrus.Info("shutting down NotificationWorker, flushing remaining notifications...")
			w.drain(batch)
			return
		}

		// select may pick a ready case after ctx is done
		if ctx.Err() != nil {
			w.drain(batch)
			return
		}
		w.flush(ctx, batch)
		batch = make([]domain.Notification, 0, notificationBatchSize)
	}
}

// drain empties the queue into one last batch, using a fresh context since ctx is already done.
func (w *notificationWorker) drain(batch []domain.Notification) {
	for {
		select {
		case n := <-w.ch:
			batch = append(batch, n)
			continue
		default:
		}
		break
	}
	if len(batch) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), finalFlushTimeout)
	defer cancel()
	w.flush(ctx, batch)
}

func (w *notificationWorker) flush(ctx context.Context, batch []domain.Notification) {
	if err := w.repo.StoreBatch(ctx, batch); err != nil {
		logrus.Errorf("failed to store %d notifications: %v", len(batch), err)
	}
}
