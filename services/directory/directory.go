// File: services/directory/directory.go
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"

	"gynoconnect/models"
	"gynoconnect/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Notifications the discovery flow can surface. Exactly one per interaction.
var (
	noticeLocationDenied = models.Notification{
		Title:       "Location access denied",
		Description: "Please allow location access or search manually",
		Destructive: true,
	}
	noticeLocationUnsupported = models.Notification{
		Title:       "Geolocation not supported",
		Description: "Please search manually",
		Destructive: true,
	}
	noticeLocationUnavailable = models.Notification{
		Title:       "Location unavailable",
		Description: "We couldn't determine your location. Showing default doctors",
		Destructive: true,
	}
	noticeLookupFailed = models.Notification{
		Title:       "Couldn't reach the directory",
		Description: "Showing our default doctors instead",
		Destructive: true,
	}
	noticeDirectoryEmpty = models.Notification{
		Title:       "No doctors found nearby",
		Description: "Showing our default doctors instead",
	}
	noticeLocationFound = models.Notification{
		Title:       "Location found!",
		Description: "Showing gynecologists near you",
	}
)

// DefaultDirectoryService is the production implementation.
type DefaultDirectoryService struct {
	Client      LookupClient
	Geo         geoResolver
	CacheClient *redis.Client
	Notifier    utils.Notifier
	RadiusKm    int
	Logger      *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// geoResolver matches services/geolocation.Resolver without importing it,
// so tests can supply a fake.
type geoResolver interface {
	Resolve(ctx context.Context, ip string) (models.Coordinate, error)
}

// NewDefaultDirectoryService wires the discovery pipeline. cacheClient may
// be nil, in which case lookup results are simply not cached. The random
// source drives marker jitter and is injected for determinism in tests.
func NewDefaultDirectoryService(
	client LookupClient,
	geo geoResolver,
	cacheClient *redis.Client,
	notifier utils.Notifier,
	radiusKm int,
	logger *zap.Logger,
	src rand.Source,
) *DefaultDirectoryService {
	return &DefaultDirectoryService{
		Client:      client,
		Geo:         geo,
		CacheClient: cacheClient,
		Notifier:    notifier,
		RadiusKm:    radiusKm,
		Logger:      logger,
		rng:         rand.New(src),
	}
}

// DefaultDoctors returns the static default list.
func (s *DefaultDirectoryService) DefaultDoctors() []models.Doctor {
	return DefaultDoctorList()
}

// FindNearby runs one discovery interaction: acquire a coordinate, look up
// the upstream directory, and assemble the map view. Every exit path
// produces a non-empty doctor list, so the UI never hangs on a failure.
func (s *DefaultDirectoryService) FindNearby(ctx context.Context, req NearbyRequest) (*Result, error) {
	if req.LocationError != "" {
		return s.fallback(nil, s.locationNotice(req.LocationError)), nil
	}

	coord := req.Coordinate
	if coord == nil {
		resolved, err := s.Geo.Resolve(ctx, req.ClientIP)
		if err != nil {
			s.Logger.Warn("IP geolocation fallback failed", zap.String("ip", req.ClientIP), zap.Error(err))
			return s.fallback(nil, noticeLocationUnavailable), nil
		}
		coord = &resolved
	}

	doctors, err := s.lookup(ctx, *coord)
	if err != nil {
		s.Logger.Error("Directory lookup failed", zap.Error(err))
		return s.fallback(coord, noticeLookupFailed), nil
	}
	if len(doctors) == 0 {
		return s.fallback(coord, noticeDirectoryEmpty), nil
	}

	// Non-empty response replaces the displayed list in full.
	mapView := s.buildMap(*coord, doctors)
	n := noticeLocationFound
	s.notify(n)
	return &Result{
		Doctors:      doctors,
		Source:       SourceRemote,
		Coordinate:   coord,
		Map:          &mapView,
		Notification: &n,
	}, nil
}

// lookup fetches the upstream list, with a short-lived Redis cache in front
// when one is configured.
func (s *DefaultDirectoryService) lookup(ctx context.Context, coord models.Coordinate) ([]models.Doctor, error) {
	cacheKey := fmt.Sprintf("%s%.4f:%.4f:%d", utils.DirectoryCachePrefix, coord.Latitude, coord.Longitude, s.RadiusKm)

	if s.CacheClient != nil {
		if cached, err := s.CacheClient.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var doctors []models.Doctor
			if err := json.Unmarshal([]byte(cached), &doctors); err == nil {
				return doctors, nil
			}
			// If unmarshal fails, we fall through to re-computation.
		}
	}

	doctors, err := s.Client.Search(ctx, coord, s.RadiusKm)
	if err != nil {
		return nil, err
	}

	if s.CacheClient != nil && len(doctors) > 0 {
		if b, err := json.Marshal(doctors); err == nil {
			s.CacheClient.Set(ctx, cacheKey, b, utils.DirectoryCacheTTL)
		}
	}
	return doctors, nil
}

// fallback builds a defaults result. When a coordinate is known the map is
// still rendered around it; otherwise the client shows its placeholder.
func (s *DefaultDirectoryService) fallback(coord *models.Coordinate, n models.Notification) *Result {
	s.notify(n)
	res := &Result{
		Doctors:      DefaultDoctorList(),
		Source:       SourceDefaults,
		Coordinate:   coord,
		Notification: &n,
	}
	if coord != nil {
		mapView := s.buildMap(*coord, res.Doctors)
		res.Map = &mapView
	}
	return res
}

func (s *DefaultDirectoryService) locationNotice(code string) models.Notification {
	switch code {
	case LocationErrorDenied:
		return noticeLocationDenied
	case LocationErrorUnsupported:
		return noticeLocationUnsupported
	default:
		return noticeLocationUnavailable
	}
}

// buildMap serializes access to the shared jitter source; rand.Rand is not
// safe for concurrent use.
func (s *DefaultDirectoryService) buildMap(center models.Coordinate, doctors []models.Doctor) models.MapView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildMapView(center, doctors, s.rng)
}

func (s *DefaultDirectoryService) notify(n models.Notification) {
	if s.Notifier != nil {
		s.Notifier.Notify(n)
	}
}
