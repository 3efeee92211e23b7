package generate

import (
	"log/slog"
	"testing"
	"time"

	"resumelens/internal/config"
	"resumelens/internal/errors"

	"google.golang.org/genai"
)

func breakerConfig(enabled bool) *config.GenerateConfig {
	return &config.GenerateConfig{
		Provider: "gemini",
		Model:    "gemini-2.0-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          enabled,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}
}

func TestDraftCircuitBreaker(t *testing.T) {
	logger := errors.NewLogger(slog.LevelError)
	cb := NewDraftCircuitBreaker(breakerConfig(true), logger)
	if cb == nil {
		t.Fatal("circuit breaker should not be nil when enabled")
	}

	stats := cb.GetStats()
	if name := stats["name"]; name != "Generate-Draft" {
		t.Errorf("name = %v, want Generate-Draft", name)
	}
	if state := stats["state"]; state != "closed" {
		t.Errorf("initial state = %v, want closed", state)
	}
	if enabled := stats["enabled"]; enabled != true {
		t.Error("breaker should report enabled")
	}
	if !cb.IsHealthy() {
		t.Error("breaker should be healthy initially")
	}
}

func TestModelCircuitBreaker(t *testing.T) {
	logger := errors.NewLogger(slog.LevelError)
	cb := NewModelCircuitBreaker(breakerConfig(true), logger)
	if cb == nil {
		t.Fatal("circuit breaker should not be nil when enabled")
	}

	stats := cb.GetModelStats()
	if name := stats["name"]; name != "Generate-Model" {
		t.Errorf("name = %v, want Generate-Model", name)
	}
	if !cb.IsModelHealthy() {
		t.Error("model breaker should be healthy initially")
	}
}

func TestCircuitBreakerDisabled(t *testing.T) {
	logger := errors.NewLogger(slog.LevelError)

	cb := NewDraftCircuitBreaker(breakerConfig(false), logger)
	if cb != nil {
		t.Fatal("circuit breaker should be nil when disabled")
	}

	// Nil breaker executes calls directly and reports healthy
	if !cb.IsHealthy() {
		t.Error("nil breaker should report healthy")
	}
	stats := cb.GetStats()
	if enabled := stats["enabled"]; enabled != false {
		t.Error("nil breaker should report disabled")
	}

	called := false
	if _, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		called = true
		return nil, nil
	}); err != nil {
		t.Errorf("direct execution failed: %v", err)
	}
	if !called {
		t.Error("nil breaker must still execute the call")
	}
}
