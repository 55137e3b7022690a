package directory

import (
	"math/rand"

	"gynoconnect/models"
)

// MapZoom is the fixed zoom level the map centers at.
const MapZoom = 12

// maxJitterDegrees bounds the pseudo-random offset applied to doctors that
// carry no coordinate of their own. Roughly 2 km at the equator; enough to
// visually separate markers without suggesting a real location.
const maxJitterDegrees = 0.02

// BuildMapView assembles the tiles-widget input: the user marker at the
// center plus one marker per doctor. Doctors without their own coordinate
// are jittered around the center; the offset is recomputed on every call,
// so approximate markers move between renders.
func BuildMapView(center models.Coordinate, doctors []models.Doctor, rng *rand.Rand) models.MapView {
	markers := make([]models.Marker, 0, len(doctors)+1)
	markers = append(markers, models.Marker{
		Kind:       models.MarkerKindUser,
		Label:      "You are here",
		Coordinate: center,
	})

	for _, d := range doctors {
		m := models.Marker{
			Kind:  models.MarkerKindDoctor,
			Label: d.Name,
		}
		if d.HasCoordinate() {
			m.Coordinate = d.Coordinate()
		} else {
			m.Coordinate = models.Coordinate{
				Latitude:  center.Latitude + jitter(rng),
				Longitude: center.Longitude + jitter(rng),
			}
			m.Approximate = true
		}
		markers = append(markers, m)
	}

	return models.MapView{
		Center:  center,
		Zoom:    MapZoom,
		Markers: markers,
	}
}

// jitter returns a uniform offset in [-maxJitterDegrees, maxJitterDegrees].
func jitter(rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * maxJitterDegrees
}
