package gallery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/health")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_PropagatedWhenPresent(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}

func TestCORS_DeniedByDefault(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_AllowedOrigin(t *testing.T) {
	s := newTestServer(t)
	s.cfg.CORSOrigins = []string{"https://gallery.example.com"}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://gallery.example.com")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://gallery.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Wildcard(t *testing.T) {
	s := newTestServer(t)
	s.cfg.CORSOrigins = []string{"*"}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "https://anywhere.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	s := newTestServer(t)
	s.cfg.CORSOrigins = []string{"*"}

	req := httptest.NewRequest(http.MethodOptions, "/api/agents", nil)
	req.Header.Set("Origin", "https://gallery.example.com")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestIsOriginAllowed(t *testing.T) {
	assert.False(t, isOriginAllowed("https://a.example.com", nil))
	assert.False(t, isOriginAllowed("https://a.example.com", []string{"https://b.example.com"}))
	assert.True(t, isOriginAllowed("https://a.example.com", []string{"https://a.example.com"}))
	assert.True(t, isOriginAllowed("https://a.example.com", []string{"*"}))
}

func TestSameOriginRequestsUnaffectedByCORS(t *testing.T) {
	s := newTestServer(t)
	s.cfg.CORSOrigins = nil

	rec := doRequest(t, s, http.MethodGet, "/api/agents")
	assert.Equal(t, http.StatusOK, rec.Code)
}
