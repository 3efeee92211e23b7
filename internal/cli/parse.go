package cli

import (
	"context"
	"fmt"

	"resumelens/internal/common"
	"resumelens/internal/generate"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [resume-file]",
	Short: "Parse a resume into a structured profile",
	Long: `Parse a plain-text resume into a structured candidate profile:
contact details, skills, experience entries with bullets, and education.
Useful for inspecting what the scoring pipeline will actually see.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if parseConfig.OutputFormat == "" {
			parseConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(parseConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runParse,
}

var parseConfig common.CommandConfig

func init() {
	parseCmd.Flags().StringVarP(&parseConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	parseCmd.Flags().StringVar(&parseConfig.OutputFormat, "format", "", "Output format: json or text")

	_ = parseCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())
	parseConfig.MaxFileSize = cfg.App.MaxFileSize

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
		logger.Info("Starting resume parse",
			"resume_chars", len(input),
			"output_format", cfg.OutputFormat)
	}

	parseOperation := func(ctx context.Context, resume string) (types.CandidateProfile, *generate.TokenUsage, error) {
		return pipe.ParseResume(resume), nil, nil
	}

	err = common.RunPipelineCommand(
		cmd.Context(),
		logger,
		parseConfig,
		args,
		createInput,
		parseOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	logger.Info("Resume parse completed successfully")
	return nil
}
