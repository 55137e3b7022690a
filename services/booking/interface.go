package booking

import (
	"context"

	"gynoconnect/models"
)

// BookingService validates booking drafts and confirms them. Confirmation
// has no persistence side effect; its only output is the notification and
// a reference the client can display.
type BookingService interface {
	TimeSlots() []string
	Confirm(ctx context.Context, draft models.BookingDraft) (*models.BookingConfirmation, error)
}

// ValidationError carries the notification the client should toast when a
// draft cannot be confirmed. The modal stays open; the draft stays with
// the client.
type ValidationError struct {
	Notification models.Notification
}

func (e *ValidationError) Error() string {
	return e.Notification.Title
}
