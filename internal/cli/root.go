package cli

import (
	"context"
	"fmt"

	"resumelens/internal/config"
	"resumelens/internal/errors"
	"resumelens/internal/pipeline"
	"resumelens/internal/roles"
	"resumelens/internal/score"

	"github.com/spf13/cobra"
)

// Define custom private types for context keys.
type configKeyType struct{}
type loggerKeyType struct{}

// Use variables of these types as the keys.
var configKey = configKeyType{}
var loggerKey = loggerKeyType{}

var rootCmd = &cobra.Command{
	Use:   "resumelens",
	Short: "A CLI tool for scoring resumes against job descriptions",
	Long: `Resumelens extracts structured profiles from resumes and job
descriptions, scores their compatibility the way an applicant tracking
system would, and drafts tailored application documents from the match
results.`,
}

func Execute(ctx context.Context, cfg *config.Config, logger *errors.Logger) error {
	// Attach the config and logger to the context, making them available to all subcommands
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, logger)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

// getConfigFromContext is a helper function to get config from context
func getConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	panic("config not found in context") // Should not happen if properly initialized
}

// getLoggerFromContext is a helper function to get logger from context
func getLoggerFromContext(ctx context.Context) *errors.Logger {
	if logger, ok := ctx.Value(loggerKey).(*errors.Logger); ok {
		return logger
	}
	panic("logger not found in context") // Should not happen if properly initialized
}

// buildPipeline constructs the scoring pipeline from configuration: the
// role library (custom file or built-ins) and the ATS weight blend.
func buildPipeline(cfg *config.Config) (*pipeline.Pipeline, error) {
	var library *roles.Library
	if cfg.Pipeline.RoleLibrary.File != "" {
		profiles, err := roles.LoadLibraryFile(cfg.Pipeline.RoleLibrary.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load role library: %w", err)
		}
		library = roles.NewLibrary(profiles)
	}

	weights := score.Weights{
		SkillOverlap:    cfg.Pipeline.Weights.SkillOverlap,
		KeywordCoverage: cfg.Pipeline.Weights.KeywordCoverage,
		SeniorityMatch:  cfg.Pipeline.Weights.SeniorityMatch,
		ImpactStrength:  cfg.Pipeline.Weights.ImpactStrength,
	}

	return pipeline.New(library, weights), nil
}

func init() {
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(quickScanCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}
