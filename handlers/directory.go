package handlers

import (
	"net/http"

	"gynoconnect/models"
	"gynoconnect/services/directory"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DirectoryHandler exposes practitioner discovery endpoints.
type DirectoryHandler struct {
	Svc directory.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler instance.
func NewDirectoryHandler(svc directory.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Svc: svc}
}

// nearbyInput is the body of one "find nearby" interaction. The client
// sends either its own position fix, the reason it could not get one, or
// nothing at all (the server then falls back to IP geolocation).
type nearbyInput struct {
	Lat           *float64 `json:"lat"`
	Lng           *float64 `json:"lng"`
	LocationError string   `json:"locationError"`
}

// FindNearbyHandler runs one discovery interaction and always answers with
// a non-empty doctor list.
func (h *DirectoryHandler) FindNearbyHandler(c *gin.Context) {
	logger := getLogger(c)

	var input nearbyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	req := directory.NearbyRequest{
		LocationError: input.LocationError,
		ClientIP:      c.ClientIP(),
	}
	if input.Lat != nil && input.Lng != nil {
		req.Coordinate = &models.Coordinate{Latitude: *input.Lat, Longitude: *input.Lng}
	}

	result, err := h.Svc.FindNearby(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to run nearby lookup", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to find nearby doctors"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// DefaultDoctorsHandler returns the static default list.
func (h *DirectoryHandler) DefaultDoctorsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"doctors": h.Svc.DefaultDoctors()})
}
