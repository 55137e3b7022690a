package models

// Coordinate is a latitude/longitude pair. It is acquired once per
// "find nearby" interaction and is the sole input to both the upstream
// lookup and the map center.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Doctor is one practitioner as presented to the client. Records are
// immutable once received; they come either from the static default list
// or from the upstream directory lookup.
type Doctor struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Rating     float64  `json:"rating"`
	Clinic     string   `json:"clinic"`
	City       string   `json:"city"`
	Timing     string   `json:"timing"`
	Speciality string   `json:"speciality"`
	Image      string   `json:"image,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
}

// HasCoordinate reports whether the doctor carries its own location.
func (d Doctor) HasCoordinate() bool {
	return d.Lat != nil && d.Lng != nil
}

// Coordinate returns the doctor's own location. Only valid when
// HasCoordinate is true.
func (d Doctor) Coordinate() Coordinate {
	return Coordinate{Latitude: *d.Lat, Longitude: *d.Lng}
}
