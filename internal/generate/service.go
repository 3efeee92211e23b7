package generate

import (
	"context"
	"fmt"

	"resumelens/internal/config"
	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// Service handles draft generation for matched resumes
type Service struct {
	Provider Provider // Exported for access from server package
	config   *config.GenerateConfig
	logger   *errors.Logger
}

// NewService creates a new generation service instance
func NewService(cfg *config.GenerateConfig, logger *errors.Logger) (*Service, error) {
	var provider Provider
	var err error

	logger.Debug("Initializing generation service",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"temperature", cfg.Temperature,
		"timeout", cfg.Timeout,
		"max_retries", cfg.MaxRetries)

	switch cfg.Provider {
	case "local":
		provider = NewLocalProvider(logger)
	case "gemini":
		provider, err = NewGeminiProvider(cfg, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported generate provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewGenerationError(errors.ErrCodeGenerationFailed,
			"Failed to create generation provider", err)
	}

	return &Service{
		Provider: provider,
		config:   cfg,
		logger:   logger,
	}, nil
}

// Draft runs the configured provider on a draft request.
func (s *Service) Draft(ctx context.Context, req types.DraftRequest) (types.DraftDocument, *TokenUsage, error) {
	return s.Provider.Draft(ctx, req)
}

// GetModelInfo returns information about the generation backend for health checks
func (s *Service) GetModelInfo(ctx context.Context) any {
	return s.Provider.GetModelInfo(ctx)
}
