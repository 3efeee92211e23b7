package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
// Precedence order:
// 1. Config file values
// 2. Environment variables (RESUMELENS_SERVER_PORT, etc.)
// 3. Default values
type Config struct {
	Pipeline      PipelineConfig      `mapstructure:"pipeline"`
	Generate      GenerateConfig      `mapstructure:"generate"`
	Server        ServerConfig        `mapstructure:"server"`
	App           AppConfig           `mapstructure:"app"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// PipelineConfig holds scoring and role-library configuration.
type PipelineConfig struct {
	// Weights blends the four ATS breakdown components. They are
	// heuristic tunables; only relative size matters.
	Weights WeightsConfig `mapstructure:"weights"`

	// QuickScanLimit caps how many role profiles a quick scan reports.
	QuickScanLimit int `mapstructure:"quickScanLimit"`

	// RoleLibrary optionally replaces the built-in role profiles with a
	// JSON file, hot-reloaded on change when Watch is set.
	RoleLibrary RoleLibraryConfig `mapstructure:"roleLibrary"`
}

// WeightsConfig holds the ATS component blend.
type WeightsConfig struct {
	SkillOverlap    float64 `mapstructure:"skillOverlap"`
	KeywordCoverage float64 `mapstructure:"keywordCoverage"`
	SeniorityMatch  float64 `mapstructure:"seniorityMatch"`
	ImpactStrength  float64 `mapstructure:"impactStrength"`
}

// RoleLibraryConfig holds the on-disk role library settings.
type RoleLibraryConfig struct {
	File          string        `mapstructure:"file"`          // JSON file of role profiles; empty uses built-ins
	Watch         bool          `mapstructure:"watch"`         // Reload the file when it changes
	DebounceDelay time.Duration `mapstructure:"debounceDelay"` // Debounce for file change events
}

// GenerateConfig holds draft-generation configuration.
type GenerateConfig struct {
	Provider       string               `mapstructure:"provider"` // "local" or "gemini"
	Model          string               `mapstructure:"model"`
	Timeout        time.Duration        `mapstructure:"timeout"`
	APIKey         string               `mapstructure:"apiKey"`
	MaxRetries     int                  `mapstructure:"maxRetries"`
	Temperature    float32              `mapstructure:"temperature"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuitBreaker"`
}

// CircuitBreakerConfig represents circuit breaker configuration.
type CircuitBreakerConfig struct {
	Enabled          bool          `mapstructure:"enabled"`          // Whether circuit breaker is enabled
	MaxRequests      uint32        `mapstructure:"maxRequests"`      // Max requests allowed when half-open
	Interval         time.Duration `mapstructure:"interval"`         // Interval to clear counts
	Timeout          time.Duration `mapstructure:"timeout"`          // Timeout for half-open to open
	MinRequests      uint32        `mapstructure:"minRequests"`      // Minimum requests before tripping
	FailureThreshold float64       `mapstructure:"failureThreshold"` // Failure ratio threshold (0.0-1.0)
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout  time.Duration `mapstructure:"idleTimeout"`

	// API Authentication
	APIKeys []string `mapstructure:"apiKeys"` // Valid API keys for authentication

	// Request size ceilings, in bytes.
	MaxRequestSize int64 `mapstructure:"maxRequestSize"`

	// Rate Limiting Configuration
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	Enabled        bool          `mapstructure:"enabled"`        // Enable/disable rate limiting
	RequestsPerMin int           `mapstructure:"requestsPerMin"` // Requests allowed per minute
	BurstCapacity  int           `mapstructure:"burstCapacity"`  // Burst capacity for token bucket
	ByIP           bool          `mapstructure:"byIP"`           // Enable per-IP rate limiting
	ByAPIKey       bool          `mapstructure:"byAPIKey"`       // Enable per-API-key rate limiting
	Window         time.Duration `mapstructure:"window"`         // Rate limiting window duration
}

// AppConfig holds general application configuration.
type AppConfig struct {
	LogLevel         string   `mapstructure:"logLevel"`
	DefaultFormat    string   `mapstructure:"defaultFormat"`
	SupportedFormats []string `mapstructure:"supportedFormats"`
	MaxFileSize      int64    `mapstructure:"maxFileSize"`
}

// ObservabilityConfig holds observability configuration.
type ObservabilityConfig struct {
	Enabled         bool              `mapstructure:"enabled"`
	ServiceName     string            `mapstructure:"serviceName"`
	ServiceVersion  string            `mapstructure:"serviceVersion"`
	ServiceInstance string            `mapstructure:"serviceInstance"`
	SampleRate      float64           `mapstructure:"sampleRate"`
	Tracing         TracingConfig     `mapstructure:"tracing"`
	Metrics         MetricsConfig     `mapstructure:"metrics"`
	Console         ConsoleConfig     `mapstructure:"console"`
	Prometheus      PrometheusConfig  `mapstructure:"prometheus"`
	OTLP            OTLPConfig        `mapstructure:"otlp"`
	HealthCheck     HealthCheckConfig `mapstructure:"healthCheck"`
}

// TracingConfig holds tracing configuration.
type TracingConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	SampleRate float64 `mapstructure:"sampleRate"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	CollectionInterval time.Duration `mapstructure:"collectionInterval"`
}

// ConsoleConfig holds console exporter configuration.
type ConsoleConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	PrettyPrint bool `mapstructure:"prettyPrint"`
}

// PrometheusConfig holds Prometheus configuration.
type PrometheusConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	Port     string `mapstructure:"port"`
}

// OTLPConfig holds OTLP exporter configuration.
type OTLPConfig struct {
	Enabled  bool              `mapstructure:"enabled"`
	Endpoint string            `mapstructure:"endpoint"`
	Insecure bool              `mapstructure:"insecure"`
	Headers  map[string]string `mapstructure:"headers"`
}

// HealthCheckConfig holds health check configuration.
type HealthCheckConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoadConfig loads configuration from environment variables and a config file.
func LoadConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("RESUMELENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/resumelens/")
	v.AddConfigPath("$HOME/.resumelens")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Printf("[CONFIG] Loaded config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyFallbacks()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Generate.Provider {
	case "local":
		// No credentials needed.
	case "gemini":
		if c.Generate.APIKey == "" {
			return fmt.Errorf("generate API key is required for the gemini provider (set RESUMELENS_GENERATE_APIKEY)")
		}
		if c.Generate.Timeout <= 0 {
			return fmt.Errorf("generate timeout must be positive")
		}
	default:
		return fmt.Errorf("invalid generate provider: %s (must be 'local' or 'gemini')", c.Generate.Provider)
	}

	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	w := c.Pipeline.Weights
	if w.SkillOverlap < 0 || w.KeywordCoverage < 0 || w.SeniorityMatch < 0 || w.ImpactStrength < 0 {
		return fmt.Errorf("pipeline weights must be non-negative")
	}
	if w.SkillOverlap+w.KeywordCoverage+w.SeniorityMatch+w.ImpactStrength <= 0 {
		return fmt.Errorf("pipeline weights must not all be zero")
	}

	if c.Pipeline.QuickScanLimit <= 0 {
		return fmt.Errorf("pipeline quickScanLimit must be positive")
	}
	if c.Pipeline.RoleLibrary.Watch && c.Pipeline.RoleLibrary.File == "" {
		return fmt.Errorf("pipeline roleLibrary.watch requires roleLibrary.file")
	}

	validFormats := make(map[string]bool)
	for _, format := range c.App.SupportedFormats {
		validFormats[format] = true
	}
	if !validFormats[c.App.DefaultFormat] {
		return fmt.Errorf("invalid default format: %s", c.App.DefaultFormat)
	}

	return nil
}

// Global configuration instance
var GlobalConfig *Config

// InitConfig initializes the global configuration.
func InitConfig() error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	GlobalConfig = config
	return nil
}
