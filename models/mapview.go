package models

// Marker kinds on the directory map.
const (
	MarkerKindUser   = "user"
	MarkerKindDoctor = "doctor"
)

// Marker is a single pin handed to the map tiles widget.
// Approximate markers are jittered around the user coordinate because the
// doctor carries no location of its own; the offset is a display
// approximation, not a real position.
type Marker struct {
	Kind        string     `json:"kind"`
	Label       string     `json:"label"`
	Coordinate  Coordinate `json:"coordinate"`
	Approximate bool       `json:"approximate,omitempty"`
}

// MapView is everything the tiles widget needs: a center, a fixed zoom
// level, one marker per doctor and one for the user.
type MapView struct {
	Center  Coordinate `json:"center"`
	Zoom    int        `json:"zoom"`
	Markers []Marker   `json:"markers"`
}
