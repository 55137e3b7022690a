// File: utils/notifier.go
package utils

import (
	"context"

	"gynoconnect/models"

	"go.uber.org/zap"
)

// Notifier delivers fire-and-forget user-facing notifications. A handle is
// injected into each service instead of relying on ambient global state.
type Notifier interface {
	Notify(n models.Notification)
}

// Subscriber receives every notification dispatched by the bus.
type Subscriber func(n models.Notification)

// NotificationBus is a process-wide event bus with a bounded queue and a
// single dispatch goroutine. When the queue is full the notification is
// dropped and logged; delivery is best-effort, never blocking the caller.
type NotificationBus struct {
	queue chan models.Notification
	subs  []Subscriber
}

// NewNotificationBus creates a bus with the given queue capacity.
func NewNotificationBus(capacity int, subs ...Subscriber) *NotificationBus {
	if capacity <= 0 {
		capacity = 64
	}
	return &NotificationBus{
		queue: make(chan models.Notification, capacity),
		subs:  subs,
	}
}

// Subscribe registers an additional subscriber. Must be called before Run.
func (b *NotificationBus) Subscribe(s Subscriber) {
	b.subs = append(b.subs, s)
}

// Notify enqueues a notification without blocking the caller.
func (b *NotificationBus) Notify(n models.Notification) {
	select {
	case b.queue <- n:
	default:
		GetLogger().Warn("Notification queue full, dropping notification",
			zap.String("title", n.Title))
	}
}

// Run dispatches queued notifications to all subscribers on a single
// goroutine until the context is cancelled.
func (b *NotificationBus) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-b.queue:
			for _, s := range b.subs {
				s(n)
			}
		}
	}
}

// LogSubscriber writes every notification to the given logger.
func LogSubscriber(logger *zap.Logger) Subscriber {
	return func(n models.Notification) {
		logger.Info("Notification",
			zap.String("title", n.Title),
			zap.String("description", n.Description),
			zap.Bool("destructive", n.Destructive))
	}
}
