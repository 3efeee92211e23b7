package cli

import (
	"context"
	"fmt"

	"resumelens/internal/common"
	"resumelens/internal/generate"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [job-description-file]",
	Short: "Validate a job description",
	Long: `Screen a job description for the problems that would make a match
meaningless: too short, placeholder text, or missing role content. The
result is reported even when the text is rejected; a rejection reason
and any warnings are included.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if validateConfig.OutputFormat == "" {
			validateConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(validateConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runValidate,
}

var validateConfig common.CommandConfig

func init() {
	validateCmd.Flags().StringVarP(&validateConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	validateCmd.Flags().StringVar(&validateConfig.OutputFormat, "format", "", "Output format: json or text")

	_ = validateCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())
	validateConfig.MaxFileSize = cfg.App.MaxFileSize

	pipe, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(input string, cfg common.CommandConfig) {
		logger.Info("Starting job description validation",
			"job_chars", len(input),
			"output_format", cfg.OutputFormat)
	}

	validateOperation := func(ctx context.Context, jobText string) (types.JDValidation, *generate.TokenUsage, error) {
		return pipe.Validate(jobText), nil, nil
	}

	err = common.RunPipelineCommand(
		cmd.Context(),
		logger,
		validateConfig,
		args,
		createInput,
		validateOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to validate job description: %w", err)
	}
	logger.Info("Job description validation completed")
	return nil
}
