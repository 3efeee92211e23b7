package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Pipeline Configuration
	v.SetDefault("pipeline.weights.skillOverlap", 0.35)
	v.SetDefault("pipeline.weights.keywordCoverage", 0.30)
	v.SetDefault("pipeline.weights.seniorityMatch", 0.15)
	v.SetDefault("pipeline.weights.impactStrength", 0.20)
	v.SetDefault("pipeline.quickScanLimit", 3)
	v.SetDefault("pipeline.roleLibrary.file", "")
	v.SetDefault("pipeline.roleLibrary.watch", false)
	v.SetDefault("pipeline.roleLibrary.debounceDelay", time.Second)

	// Generate Configuration
	v.SetDefault("generate.provider", "local")
	v.SetDefault("generate.model", "gemini-2.0-flash")
	v.SetDefault("generate.timeout", 60*time.Second)
	v.SetDefault("generate.apiKey", "")
	v.SetDefault("generate.maxRetries", 3)
	v.SetDefault("generate.temperature", 0.3)

	// Circuit Breaker Configuration defaults
	v.SetDefault("generate.circuitBreaker.enabled", true)
	v.SetDefault("generate.circuitBreaker.maxRequests", 3)
	v.SetDefault("generate.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("generate.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("generate.circuitBreaker.minRequests", 3)
	v.SetDefault("generate.circuitBreaker.failureThreshold", 0.6)

	// Server Configuration
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 30*time.Second)
	v.SetDefault("server.writeTimeout", 30*time.Second)
	v.SetDefault("server.idleTimeout", 120*time.Second)
	v.SetDefault("server.maxRequestSize", 1024*1024) // 1MB
	// API Authentication defaults
	v.SetDefault("server.apiKeys", []string{})
	// Rate limiting defaults
	v.SetDefault("server.rateLimit.enabled", false)
	v.SetDefault("server.rateLimit.requestsPerMin", 60)
	v.SetDefault("server.rateLimit.burstCapacity", 10)
	v.SetDefault("server.rateLimit.byIP", true)
	v.SetDefault("server.rateLimit.byAPIKey", false)
	v.SetDefault("server.rateLimit.window", time.Minute)

	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxFileSize", 1024*1024) // 1MB

	// Observability Configuration
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "resumelens")
	v.SetDefault("observability.serviceVersion", "")  // Will use app version if empty
	v.SetDefault("observability.serviceInstance", "") // Will be auto-generated if empty
	v.SetDefault("observability.sampleRate", 1.0)

	// Tracing Configuration
	v.SetDefault("observability.tracing.enabled", true)
	v.SetDefault("observability.tracing.sampleRate", 1.0)

	// Metrics Configuration
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 15*time.Second)

	// Console Configuration
	v.SetDefault("observability.console.enabled", false)
	v.SetDefault("observability.console.prettyPrint", true)

	// Prometheus Configuration
	v.SetDefault("observability.prometheus.enabled", true)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9090")

	// OTLP Configuration
	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "http://localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})

	// Health Check Configuration
	v.SetDefault("observability.healthCheck.timeout", 15*time.Second)
}
