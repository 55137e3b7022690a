package geolocation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResolve_Success(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/203.0.113.9/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"latitude": 28.6139, "longitude": 77.209}`))
	}))
	defer srv.Close()

	r := NewIPAPIResolver(srv.URL, zap.NewNop())
	coord, err := r.Resolve(context.Background(), "203.0.113.9")
	require.NoError(t, err)
	assert.Equal(t, 28.6139, coord.Latitude)
	assert.Equal(t, 77.209, coord.Longitude)

	// Second resolve for the same IP is served from the cache.
	_, err = r.Resolve(context.Background(), "203.0.113.9")
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}

func TestResolve_PrivateAndLoopbackIPs(t *testing.T) {
	r := NewIPAPIResolver("http://unreachable.invalid", zap.NewNop())

	for _, ip := range []string{"127.0.0.1", "10.1.2.3", "172.16.0.5", "192.168.1.10"} {
		_, err := r.Resolve(context.Background(), ip)
		assert.ErrorIs(t, err, ErrUnavailable, "ip %s", ip)
	}
}

func TestResolve_EmptyIP(t *testing.T) {
	r := NewIPAPIResolver("http://unreachable.invalid", zap.NewNop())
	_, err := r.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestResolve_APIErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": true, "reason": "Reserved IP Address"}`))
	}))
	defer srv.Close()

	r := NewIPAPIResolver(srv.URL, zap.NewNop())
	_, err := r.Resolve(context.Background(), "203.0.113.9")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestResolve_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	r := NewIPAPIResolver(srv.URL, zap.NewNop())
	_, err := r.Resolve(context.Background(), "203.0.113.9")
	assert.ErrorIs(t, err, ErrUnavailable)
}
