package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Weights: WeightsConfig{
				SkillOverlap:    0.35,
				KeywordCoverage: 0.30,
				SeniorityMatch:  0.15,
				ImpactStrength:  0.20,
			},
			QuickScanLimit: 3,
		},
		Generate: GenerateConfig{
			Provider: "local",
			Timeout:  time.Minute,
		},
		Server: ServerConfig{Port: "8080"},
		App: AppConfig{
			DefaultFormat:    "json",
			SupportedFormats: []string{"json", "text", "markdown"},
		},
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "gemini provider without key",
			mutate:  func(c *Config) { c.Generate.Provider = "gemini" },
			wantErr: "API key",
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Generate.Provider = "oracle" },
			wantErr: "invalid generate provider",
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: "port",
		},
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.Pipeline.Weights.SkillOverlap = -1 },
			wantErr: "non-negative",
		},
		{
			name: "all-zero weights",
			mutate: func(c *Config) {
				c.Pipeline.Weights = WeightsConfig{}
			},
			wantErr: "zero",
		},
		{
			name:    "zero quick scan limit",
			mutate:  func(c *Config) { c.Pipeline.QuickScanLimit = 0 },
			wantErr: "quickScanLimit",
		},
		{
			name:    "watch without file",
			mutate:  func(c *Config) { c.Pipeline.RoleLibrary.Watch = true },
			wantErr: "roleLibrary",
		},
		{
			name:    "unsupported default format",
			mutate:  func(c *Config) { c.App.DefaultFormat = "pdf" },
			wantErr: "format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Generate.Provider != "local" {
		t.Errorf("default provider = %q, want local", cfg.Generate.Provider)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %q", cfg.Server.Port)
	}
	if cfg.Pipeline.QuickScanLimit != 3 {
		t.Errorf("default quickScanLimit = %d", cfg.Pipeline.QuickScanLimit)
	}
	sum := cfg.Pipeline.Weights.SkillOverlap + cfg.Pipeline.Weights.KeywordCoverage +
		cfg.Pipeline.Weights.SeniorityMatch + cfg.Pipeline.Weights.ImpactStrength
	if sum <= 0.99 || sum >= 1.01 {
		t.Errorf("default weights should sum to 1.0, got %f", sum)
	}
	if cfg.Observability.ServiceInstance == "" {
		t.Error("service instance should be auto-generated")
	}
}
