package directory

import (
	"context"

	"gynoconnect/models"
)

// Location error codes a client can report from its own geolocation attempt.
const (
	LocationErrorDenied      = "denied"
	LocationErrorUnavailable = "unavailable"
	LocationErrorUnsupported = "unsupported"
)

// Result sources.
const (
	SourceRemote   = "remote"
	SourceDefaults = "defaults"
)

// NearbyRequest is one "find nearby" interaction. The client either supplies
// a coordinate from its own position fix, reports why it could not get one,
// or supplies neither and lets the server fall back to IP geolocation.
type NearbyRequest struct {
	Coordinate    *models.Coordinate
	LocationError string
	ClientIP      string
}

// Result is the full outcome of one discovery interaction. The doctors list
// is never empty: on any failure the static default list is substituted.
type Result struct {
	Doctors      []models.Doctor      `json:"doctors"`
	Source       string               `json:"source"`
	Coordinate   *models.Coordinate   `json:"coordinate,omitempty"`
	Map          *models.MapView      `json:"map,omitempty"`
	Notification *models.Notification `json:"notification,omitempty"`
}

// DirectoryService drives practitioner discovery: coordinate acquisition,
// upstream lookup with static fallback, and map presentation.
type DirectoryService interface {
	FindNearby(ctx context.Context, req NearbyRequest) (*Result, error)
	DefaultDoctors() []models.Doctor
}
