package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"gynoconnect/models"

	"github.com/google/uuid"
)

// LookupClient issues one remote practitioner lookup for a coordinate and
// a fixed search radius.
type LookupClient interface {
	Search(ctx context.Context, coord models.Coordinate, radiusKm int) ([]models.Doctor, error)
}

// remoteDoctor is the upstream record shape. Any field the upstream omits
// decodes to its zero value; the UI copes with blanks, never with crashes.
type remoteDoctor struct {
	ID         json.Number `json:"id"`
	Name       string      `json:"name"`
	Rating     float64     `json:"rating"`
	Clinic     string      `json:"clinic"`
	City       string      `json:"city"`
	Timing     string      `json:"timing"`
	Speciality string      `json:"speciality"`
	Lat        *float64    `json:"lat,omitempty"`
	Lng        *float64    `json:"lng,omitempty"`
}

// fromRemote maps an upstream record onto the presentation model. A record
// without an ID gets a synthetic one so list rendering and marker placement
// always have a key.
func fromRemote(d remoteDoctor) models.Doctor {
	id := d.ID.String()
	if id == "" {
		id = uuid.New().String()
	}
	return models.Doctor{
		ID:         id,
		Name:       d.Name,
		Rating:     d.Rating,
		Clinic:     d.Clinic,
		City:       d.City,
		Timing:     d.Timing,
		Speciality: d.Speciality,
		Image:      "👩‍⚕️",
		Lat:        d.Lat,
		Lng:        d.Lng,
	}
}

// HTTPLookupClient talks to the upstream gynecologist search service.
// The client deliberately carries no timeout of its own; cancellation is
// the caller's context.
type HTTPLookupClient struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPLookupClient creates a lookup client against the given base URL.
func NewHTTPLookupClient(baseURL string) *HTTPLookupClient {
	return &HTTPLookupClient{
		BaseURL: baseURL,
		Client:  &http.Client{},
	}
}

// Search performs GET {base}/gynecologists?lat=..&lng=..&radius_km=.. and
// decodes the response. Any non-2xx status or transport failure is a single
// generic error class; the service layer substitutes defaults.
func (c *HTTPLookupClient) Search(ctx context.Context, coord models.Coordinate, radiusKm int) ([]models.Doctor, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	q.Set("radius_km", strconv.Itoa(radiusKm))

	endpoint := fmt.Sprintf("%s/gynecologists?%s", c.BaseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("directory lookup: build request: %w", err)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("directory lookup: unexpected status %d", resp.StatusCode)
	}

	var records []remoteDoctor
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("directory lookup: decode response: %w", err)
	}

	doctors := make([]models.Doctor, 0, len(records))
	for _, r := range records {
		doctors = append(doctors, fromRemote(r))
	}
	return doctors, nil
}
