package server

import (
	"time"

	"resumelens/internal/config"
	lensErrors "resumelens/internal/errors"
	"resumelens/internal/pipeline"
)

// MatchRequest represents the request body for the match endpoint
type MatchRequest struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"jobDescription"`
}

// QuickScanRequest represents the request body for the quickscan endpoint
type QuickScanRequest struct {
	Resume string `json:"resume"`
	Limit  int    `json:"limit,omitempty"`
}

// ValidateRequest represents the request body for the validate endpoint
type ValidateRequest struct {
	JobDescription string `json:"jobDescription"`
}

// ParseRequest represents the request body for the parse endpoint
type ParseRequest struct {
	Resume string `json:"resume"`
}

// DraftRequest represents the request body for the draft endpoint
type DraftRequest struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"jobDescription"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// Scoring pipeline shared by all request handlers
	Pipeline *pipeline.Pipeline

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Logger
	Logger *lensErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, pipe *pipeline.Pipeline, logger *lensErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		Pipeline:       pipe,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Logger:         logger,
	}
}
