package handlers

import (
	"errors"
	"net/http"

	"gynoconnect/models"
	"gynoconnect/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking-intent endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// TimeSlotsHandler returns the fixed time-slot list.
func (h *BookingHandler) TimeSlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": h.Svc.TimeSlots()})
}

// ConfirmBookingHandler validates the draft and confirms it. Validation
// failures come back as 422 with the notification to toast; the client
// keeps the modal open and the draft intact.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	confirmation, err := h.Svc.Confirm(c.Request.Context(), draft)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":        "booking validation failed",
				"notification": vErr.Notification,
			})
			return
		}
		h.Logger.Error("Failed to confirm booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm booking"})
		return
	}

	c.JSON(http.StatusOK, confirmation)
}
