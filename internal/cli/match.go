package cli

import (
	"context"
	"fmt"

	"resumelens/internal/common"
	"resumelens/internal/generate"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [resume-file] [job-description-file]",
	Short: "Score a resume against a job description",
	Long: `Score a resume against a job description the way an applicant
tracking system would. The command takes two arguments: the path to the
resume file and the path to the job description file. Both files should
be in plain text format. The report includes an ATS compatibility score,
matched and missing keywords, strengths, gaps, and bullet rewrite
previews.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if matchConfig.OutputFormat == "" {
			matchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(matchConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runMatch,
}

var matchConfig common.CommandConfig

func init() {
	matchCmd.Flags().StringVarP(&matchConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	matchCmd.Flags().StringVar(&matchConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = matchCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

// matchInput holds the raw texts for a match operation
type matchInput struct {
	Resume         string
	JobDescription string
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())
	matchConfig.MaxFileSize = cfg.App.MaxFileSize

	pipe, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	createInput := func(contents []string) (matchInput, error) {
		if len(contents) != 2 {
			return matchInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		return matchInput{
			Resume:         contents[0],
			JobDescription: contents[1],
		}, nil
	}

	logDetails := func(input matchInput, cfg common.CommandConfig) {
		logger.Info("Starting resume match",
			"resume_chars", len(input.Resume),
			"job_chars", len(input.JobDescription),
			"output_format", cfg.OutputFormat)
	}

	matchOperation := func(ctx context.Context, input matchInput) (*types.MatchReport, *generate.TokenUsage, error) {
		report, validation := pipe.Match(input.Resume, input.JobDescription)
		if report == nil {
			return nil, nil, fmt.Errorf("job description rejected: %s", validation.Reason)
		}
		for _, warning := range validation.Warnings {
			logger.Warn("Job description warning", "warning", warning)
		}
		return report, nil, nil
	}

	err = common.RunPipelineCommand(
		cmd.Context(),
		logger,
		matchConfig,
		args,
		createInput,
		matchOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to match resume: %w", err)
	}
	logger.Info("Resume match completed successfully")
	return nil
}
