package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"gynoconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type captureNotifier struct {
	notifications []models.Notification
}

func (c *captureNotifier) Notify(n models.Notification) {
	c.notifications = append(c.notifications, n)
}

func newTestService(notifier *captureNotifier) *DefaultBookingService {
	svc := NewDefaultBookingService(notifier, zap.NewNop())
	svc.Now = func() time.Time {
		return time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestTimeSlots(t *testing.T) {
	svc := newTestService(&captureNotifier{})
	slots := svc.TimeSlots()

	require.Len(t, slots, 13)
	assert.Equal(t, "9:00 AM", slots[0])
	assert.Equal(t, "11:30 AM", slots[5])
	assert.Equal(t, "2:00 PM", slots[6])
	assert.Equal(t, "5:00 PM", slots[12])

	// Mutating the returned slice must not affect later calls.
	slots[0] = "mutated"
	assert.Equal(t, "9:00 AM", svc.TimeSlots()[0])
}

func TestConfirm_Success(t *testing.T) {
	notifier := &captureNotifier{}
	svc := newTestService(notifier)

	conf, err := svc.Confirm(context.Background(), models.BookingDraft{
		Kind:       models.BookingKindVideo,
		DoctorName: "Dr. Radhika Sen",
		Date:       "2025-06-20",
		Time:       "10:30 AM",
	})
	require.NoError(t, err)
	require.NotNil(t, conf)

	assert.NotEmpty(t, conf.Reference)
	assert.Equal(t, "Dr. Radhika Sen", conf.DoctorName)
	assert.Equal(t, "Booking Confirmed! ✅", conf.Notification.Title)
	assert.Equal(t,
		"Your video with Dr. Radhika Sen on 2025-06-20 at 10:30 AM has been confirmed. Details sent to your registered email.",
		conf.Notification.Description)
	assert.False(t, conf.Notification.Destructive)

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, conf.Notification, notifier.notifications[0])
}

func TestConfirm_TodayIsBookable(t *testing.T) {
	svc := newTestService(&captureNotifier{})

	conf, err := svc.Confirm(context.Background(), models.BookingDraft{
		Kind:       models.BookingKindAppointment,
		DoctorName: "Dr. Nidhi Kapoor",
		Date:       "2025-06-15",
		Time:       "9:00 AM",
	})
	require.NoError(t, err)
	assert.NotNil(t, conf)
}

func TestConfirm_ValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		draft     models.BookingDraft
		wantTitle string
	}{
		{
			name:      "missing date",
			draft:     models.BookingDraft{Kind: models.BookingKindCall, Time: "9:00 AM"},
			wantTitle: "Please select date and time",
		},
		{
			name:      "missing time",
			draft:     models.BookingDraft{Kind: models.BookingKindCall, Date: "2025-06-20"},
			wantTitle: "Please select date and time",
		},
		{
			name:      "unknown kind",
			draft:     models.BookingDraft{Kind: "telepathy", Date: "2025-06-20", Time: "9:00 AM"},
			wantTitle: "Unknown booking type",
		},
		{
			name:      "unparseable date",
			draft:     models.BookingDraft{Kind: models.BookingKindCall, Date: "20/06/2025", Time: "9:00 AM"},
			wantTitle: "Please pick a valid date",
		},
		{
			name:      "past date",
			draft:     models.BookingDraft{Kind: models.BookingKindCall, Date: "2025-06-10", Time: "9:00 AM"},
			wantTitle: "Please pick an upcoming date",
		},
		{
			name:      "time outside slot list",
			draft:     models.BookingDraft{Kind: models.BookingKindCall, Date: "2025-06-20", Time: "1:00 PM"},
			wantTitle: "Please pick a valid time slot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &captureNotifier{}
			svc := newTestService(notifier)

			conf, err := svc.Confirm(context.Background(), tt.draft)
			require.Error(t, err)
			assert.Nil(t, conf)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantTitle, verr.Notification.Title)
			assert.True(t, verr.Notification.Destructive)

			// Only the validation notification goes out, never the success one.
			require.Len(t, notifier.notifications, 1)
			assert.Equal(t, tt.wantTitle, notifier.notifications[0].Title)
		})
	}
}

func TestConfirm_NilNotifier(t *testing.T) {
	svc := NewDefaultBookingService(nil, zap.NewNop())
	svc.Now = func() time.Time {
		return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	}

	conf, err := svc.Confirm(context.Background(), models.BookingDraft{
		Kind:       models.BookingKindCall,
		DoctorName: "Dr. Anjali Sharma",
		Date:       "2025-06-16",
		Time:       "2:00 PM",
	})
	require.NoError(t, err)
	assert.NotNil(t, conf)
}
