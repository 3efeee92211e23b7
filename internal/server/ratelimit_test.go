package server

import (
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"resumelens/internal/errors"
)

func TestGetRateLimitKey(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		bearer   string
		byAPIKey bool
		byIP     bool
		want     string
	}{
		{
			name:     "api key header",
			apiKey:   "secret-key-123",
			byAPIKey: true,
			want:     "api:secret-key-123",
		},
		{
			name:     "bearer fallback",
			bearer:   "Bearer token-456",
			byAPIKey: true,
			want:     "api:token-456",
		},
		{
			name: "ip fallback",
			byIP: true,
			want: "ip:192.0.2.1",
		},
		{
			name:     "api key preferred over ip",
			apiKey:   "secret-key-123",
			byAPIKey: true,
			byIP:     true,
			want:     "api:secret-key-123",
		},
		{
			name: "nothing enabled",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/match", nil)
			r.RemoteAddr = "192.0.2.1:54321"
			if tt.apiKey != "" {
				r.Header.Set("X-API-Key", tt.apiKey)
			}
			if tt.bearer != "" {
				r.Header.Set("Authorization", tt.bearer)
			}

			got := getRateLimitKey(r, tt.byAPIKey, tt.byIP)
			if got != tt.want {
				t.Errorf("getRateLimitKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr",
			remoteAddr: "192.0.2.1:54321",
			want:       "192.0.2.1",
		},
		{
			name:       "x-forwarded-for single",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7"},
			want:       "203.0.113.7",
		},
		{
			name:       "x-forwarded-for list takes first",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"},
			want:       "203.0.113.7",
		},
		{
			name:       "x-forwarded-for garbage falls through",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip"},
			want:       "10.0.0.1",
		},
		{
			name:       "x-real-ip",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Real-IP": "198.51.100.9"},
			want:       "198.51.100.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/health", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			got := getClientIP(r)
			if got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := maskAPIKey("short"); got != "****" {
		t.Errorf("maskAPIKey(short) = %q, want ****", got)
	}
	if got := maskAPIKey("abcdefgh12345678"); got != "abcdefgh****" {
		t.Errorf("maskAPIKey(long) = %q", got)
	}
}

func TestLimiterManagerBurst(t *testing.T) {
	logger := errors.NewLogger(slog.LevelError)
	limiter := NewRateLimiter(60, time.Minute, 2, logger)
	defer limiter.Close()

	// Burst capacity allows the first two requests through immediately.
	if !limiter.Allow("ip:192.0.2.1") {
		t.Error("first request should be allowed")
	}
	if !limiter.Allow("ip:192.0.2.1") {
		t.Error("second request should be allowed")
	}
	if limiter.Allow("ip:192.0.2.1") {
		t.Error("third request should exceed burst capacity")
	}

	// A different key has its own bucket.
	if !limiter.Allow("ip:192.0.2.2") {
		t.Error("different key should be allowed")
	}

	stats := limiter.GetStats()
	if stats["active_limiters"] != 2 {
		t.Errorf("active_limiters = %v, want 2", stats["active_limiters"])
	}
}
