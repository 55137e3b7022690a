// File: services/geolocation/geolocation.go
package geolocation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"gynoconnect/models"

	"go.uber.org/zap"
)

// ErrUnavailable means no position fix could be produced for the IP. It is
// never fatal to the discovery flow; the caller substitutes defaults.
var ErrUnavailable = errors.New("geolocation: position unavailable")

// Resolver produces a one-shot coordinate fix for a client IP.
type Resolver interface {
	Resolve(ctx context.Context, ip string) (models.Coordinate, error)
}

// ipAPIResponse is the subset of the ipapi.co payload we use.
type ipAPIResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Error     bool    `json:"error"`
}

// IPAPIResolver resolves coordinates from an external IP-geolocation API
// and caches results keyed by IP address.
type IPAPIResolver struct {
	BaseURL string
	Client  *http.Client
	Logger  *zap.Logger

	mu    sync.RWMutex
	cache map[string]models.Coordinate
}

// NewIPAPIResolver creates a resolver against the given base URL
// (e.g. "https://ipapi.co").
func NewIPAPIResolver(baseURL string, logger *zap.Logger) *IPAPIResolver {
	return &IPAPIResolver{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
		Logger:  logger,
		cache:   make(map[string]models.Coordinate),
	}
}

// isPrivateIP checks if an IP is private or loopback.
func isPrivateIP(ip string) bool {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}
	if parsedIP.IsLoopback() {
		return true
	}
	privateIPBlocks := []*net.IPNet{
		{IP: net.IPv4(10, 0, 0, 0), Mask: net.CIDRMask(8, 32)},
		{IP: net.IPv4(172, 16, 0, 0), Mask: net.CIDRMask(12, 32)},
		{IP: net.IPv4(192, 168, 0, 0), Mask: net.CIDRMask(16, 32)},
	}
	for _, block := range privateIPBlocks {
		if block.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// Resolve returns the coordinate for the given IP. Private, empty, or
// unresolvable IPs yield ErrUnavailable; the caller substitutes defaults.
func (r *IPAPIResolver) Resolve(ctx context.Context, ip string) (models.Coordinate, error) {
	if ip == "" {
		return models.Coordinate{}, ErrUnavailable
	}

	// Check cache first.
	r.mu.RLock()
	if coord, exists := r.cache[ip]; exists {
		r.mu.RUnlock()
		return coord, nil
	}
	r.mu.RUnlock()

	if isPrivateIP(ip) {
		r.Logger.Warn("Client IP is private; no geolocation available", zap.String("ip", ip))
		return models.Coordinate{}, ErrUnavailable
	}

	url := fmt.Sprintf("%s/%s/json/", r.BaseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Coordinate{}, ErrUnavailable
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		r.Logger.Error("Failed to query external geolocation API", zap.String("ip", ip), zap.Error(err))
		return models.Coordinate{}, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.Logger.Error("External geolocation API returned non-OK status",
			zap.String("ip", ip), zap.Int("status", resp.StatusCode))
		return models.Coordinate{}, ErrUnavailable
	}

	var payload ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		r.Logger.Error("Failed to decode geolocation response", zap.String("ip", ip), zap.Error(err))
		return models.Coordinate{}, ErrUnavailable
	}
	if payload.Error {
		return models.Coordinate{}, ErrUnavailable
	}

	coord := models.Coordinate{Latitude: payload.Latitude, Longitude: payload.Longitude}

	// Cache the result.
	r.mu.Lock()
	r.cache[ip] = coord
	r.mu.Unlock()

	r.Logger.Info("Geolocation retrieved from external API", zap.String("ip", ip), zap.Any("coord", coord))
	return coord, nil
}
