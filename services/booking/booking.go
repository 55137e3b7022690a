// File: services/booking/booking.go
package booking

import (
	"context"
	"fmt"
	"time"

	"gynoconnect/models"
	"gynoconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// timeSlots is the fixed enumerated list a booking time is chosen from.
var timeSlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM", "5:00 PM",
}

var bookingKinds = map[string]bool{
	models.BookingKindCall:        true,
	models.BookingKindVideo:       true,
	models.BookingKindAppointment: true,
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Notifier utils.Notifier
	Logger   *zap.Logger

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

// NewDefaultBookingService creates a booking service.
func NewDefaultBookingService(notifier utils.Notifier, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{
		Notifier: notifier,
		Logger:   logger,
		Now:      time.Now,
	}
}

// TimeSlots returns the fixed slot list.
func (s *DefaultBookingService) TimeSlots() []string {
	slots := make([]string, len(timeSlots))
	copy(slots, timeSlots)
	return slots
}

// Confirm validates the draft and, when valid, emits the success
// notification embedding kind, doctor name, date and time verbatim.
// A missing field yields a *ValidationError and a validation notification,
// never a success notification.
func (s *DefaultBookingService) Confirm(ctx context.Context, draft models.BookingDraft) (*models.BookingConfirmation, error) {
	if err := s.validate(draft); err != nil {
		s.notify(err.Notification)
		return nil, err
	}

	n := models.Notification{
		Title: "Booking Confirmed! ✅",
		Description: fmt.Sprintf(
			"Your %s with %s on %s at %s has been confirmed. Details sent to your registered email.",
			draft.Kind, draft.DoctorName, draft.Date, draft.Time,
		),
	}
	s.notify(n)
	s.Logger.Info("Booking confirmed",
		zap.String("kind", draft.Kind),
		zap.String("doctor", draft.DoctorName),
		zap.String("date", draft.Date),
		zap.String("time", draft.Time))

	return &models.BookingConfirmation{
		Reference:    uuid.New().String(),
		Kind:         draft.Kind,
		DoctorName:   draft.DoctorName,
		Date:         draft.Date,
		Time:         draft.Time,
		Notification: n,
	}, nil
}

func (s *DefaultBookingService) validate(draft models.BookingDraft) *ValidationError {
	if draft.Date == "" || draft.Time == "" {
		return &ValidationError{Notification: models.Notification{
			Title:       "Please select date and time",
			Description: "Both date and time are required to book your appointment",
			Destructive: true,
		}}
	}
	if !bookingKinds[draft.Kind] {
		return &ValidationError{Notification: models.Notification{
			Title:       "Unknown booking type",
			Description: "Choose a phone call, video consultation, or in-person appointment",
			Destructive: true,
		}}
	}

	// The calendar is bounded below by the current date.
	date, err := time.Parse("2006-01-02", draft.Date)
	if err != nil {
		return &ValidationError{Notification: models.Notification{
			Title:       "Please pick a valid date",
			Description: "The selected date could not be understood",
			Destructive: true,
		}}
	}
	now := s.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return &ValidationError{Notification: models.Notification{
			Title:       "Please pick an upcoming date",
			Description: "Appointments can only be booked for today or later",
			Destructive: true,
		}}
	}

	if !validSlot(draft.Time) {
		return &ValidationError{Notification: models.Notification{
			Title:       "Please pick a valid time slot",
			Description: "Choose one of the listed time slots",
			Destructive: true,
		}}
	}
	return nil
}

func validSlot(slot string) bool {
	for _, s := range timeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func (s *DefaultBookingService) notify(n models.Notification) {
	if s.Notifier != nil {
		s.Notifier.Notify(n)
	}
}
