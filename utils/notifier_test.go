package utils

import (
	"context"
	"testing"
	"time"

	"gynoconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationBus_DeliversToAllSubscribers(t *testing.T) {
	received := make(chan models.Notification, 2)
	sub := func(n models.Notification) { received <- n }

	bus := NewNotificationBus(8, sub, sub)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bus.Run(ctx)

	want := models.Notification{Title: "Location found!", Description: "Showing gynecologists near you"}
	bus.Notify(want)

	for i := 0; i < 2; i++ {
		select {
		case got := <-received:
			assert.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for notification delivery")
		}
	}
}

func TestNotificationBus_NotifyNeverBlocks(t *testing.T) {
	// No Run goroutine; the queue fills and overflow is dropped.
	bus := NewNotificationBus(2)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			bus.Notify(models.Notification{Title: "overflow"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full queue")
	}
}

func TestNotificationBus_RunStopsOnCancel(t *testing.T) {
	bus := NewNotificationBus(1)
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	go func() {
		bus.Run(ctx)
		close(stopped)
	}()

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

func TestNewNotificationBus_DefaultCapacity(t *testing.T) {
	bus := NewNotificationBus(0)
	require.NotNil(t, bus)
	assert.Equal(t, 64, cap(bus.queue))
}
