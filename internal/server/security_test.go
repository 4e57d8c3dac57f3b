package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSecurityConfig(t *testing.T) {
	config := DefaultSecurityConfig()

	assert.True(t, config.EnableCORS)
	assert.Equal(t, []string{"*"}, config.AllowedOrigins)
	assert.Equal(t, []string{"GET", "POST", "OPTIONS"}, config.AllowedMethods)
	assert.Equal(t, int64(2<<20), config.MaxBodyBytes)
}

func TestSecurityMiddleware_SecurityHeaders(t *testing.T) {
	nextCalled := false
	handler := SecurityMiddleware(DefaultSecurityConfig(), func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	rec := httptest.NewRecorder()
	handler(rec, req)

	headers := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"X-XSS-Protection":        "1; mode=block",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
		"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
	}
	for header, want := range headers {
		assert.Equal(t, want, rec.Header().Get(header), header)
	}
	assert.True(t, nextCalled, "next handler should run")
}

func TestSecurityMiddleware_CORS(t *testing.T) {
	tests := []struct {
		name           string
		config         SecurityConfig
		origin         string
		wantHeaders    bool
		expectedOrigin string
	}{
		{
			name:        "disabled",
			config:      SecurityConfig{EnableCORS: false},
			origin:      "http://example.com",
			wantHeaders: false,
		},
		{
			name: "wildcard origin",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST"},
			},
			origin:         "http://example.com",
			wantHeaders:    true,
			expectedOrigin: "*",
		},
		{
			name: "specific origin allowed",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"http://allowed.com"},
				AllowedMethods: []string{"GET"},
			},
			origin:         "http://allowed.com",
			wantHeaders:    true,
			expectedOrigin: "http://allowed.com",
		},
		{
			name: "origin not allowed",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"http://allowed.com"},
				AllowedMethods: []string{"GET"},
			},
			origin:      "http://notallowed.com",
			wantHeaders: false,
		},
		{
			name: "second of multiple origins",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"http://first.com", "http://second.com"},
				AllowedMethods: []string{"GET"},
			},
			origin:         "http://second.com",
			wantHeaders:    true,
			expectedOrigin: "http://second.com",
		},
		{
			// A wildcard matches even when the request carries no Origin.
			name: "no origin header with wildcard",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET"},
			},
			origin:         "",
			wantHeaders:    true,
			expectedOrigin: "*",
		},
		{
			name: "no origin header with specific origins",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"http://specific.com"},
				AllowedMethods: []string{"GET"},
			},
			origin:      "",
			wantHeaders: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := SecurityMiddleware(tt.config, func(w http.ResponseWriter, r *http.Request) {})

			req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if tt.wantHeaders {
				assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
				assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
				assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Headers"))
				assert.NotEmpty(t, rec.Header().Get("Access-Control-Max-Age"))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestSecurityMiddleware_Preflight(t *testing.T) {
	nextCalled := false
	handler := SecurityMiddleware(DefaultSecurityConfig(), func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/test", http.NoBody)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, nextCalled, "preflight should not reach the handler")
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityMiddleware_BodyLimit(t *testing.T) {
	config := DefaultSecurityConfig()
	config.MaxBodyBytes = 16

	var readErr error
	handler := SecurityMiddleware(config, func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(strings.Repeat("x", 64)))
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Error(t, readErr)
	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}

func TestAllowedOrigin(t *testing.T) {
	assert.Equal(t, "*", allowedOrigin([]string{"*"}, ""))
	assert.Equal(t, "*", allowedOrigin([]string{"*"}, "http://anything.example"))
	assert.Equal(t, "http://a.example", allowedOrigin([]string{"http://a.example"}, "http://a.example"))
	assert.Empty(t, allowedOrigin([]string{"http://a.example"}, "http://b.example"))
	assert.Empty(t, allowedOrigin([]string{"http://a.example"}, ""))
	assert.Empty(t, allowedOrigin(nil, "http://a.example"))
}
