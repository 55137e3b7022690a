package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gynoconnect/models"
	"gynoconnect/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := booking.NewDefaultBookingService(nil, zap.NewNop())
	svc.Now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	h := NewBookingHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/api/bookings/slots", h.TimeSlotsHandler)
	r.POST("/api/bookings/confirm", h.ConfirmBookingHandler)
	return r
}

func TestTimeSlotsEndpoint(t *testing.T) {
	r := newBookingRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/slots", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Slots []string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Slots, 13)
	assert.Equal(t, "9:00 AM", body.Slots[0])
	assert.Equal(t, "5:00 PM", body.Slots[12])
}

func TestConfirmBookingEndpoint_Success(t *testing.T) {
	r := newBookingRouter(t)

	payload, _ := json.Marshal(models.BookingDraft{
		Kind:       models.BookingKindVideo,
		DoctorName: "Dr. Radhika Sen",
		Date:       "2025-06-20",
		Time:       "10:30 AM",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/confirm", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var conf models.BookingConfirmation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conf))
	assert.NotEmpty(t, conf.Reference)
	assert.Equal(t, "Dr. Radhika Sen", conf.DoctorName)
	assert.Equal(t, "Booking Confirmed! ✅", conf.Notification.Title)
}

func TestConfirmBookingEndpoint_ValidationFailure(t *testing.T) {
	r := newBookingRouter(t)

	// Date and time missing: the modal stays open and toasts the notification.
	payload := []byte(`{"kind": "video", "doctorName": "Dr. Radhika Sen"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/confirm", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body struct {
		Error        string              `json:"error"`
		Notification models.Notification `json:"notification"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "booking validation failed", body.Error)
	assert.Equal(t, "Please select date and time", body.Notification.Title)
	assert.True(t, body.Notification.Destructive)
}

func TestConfirmBookingEndpoint_MalformedBody(t *testing.T) {
	r := newBookingRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/confirm", bytes.NewReader([]byte(`{not json`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
