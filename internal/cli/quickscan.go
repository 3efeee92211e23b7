package cli

import (
	"context"
	"fmt"

	"resumelens/internal/common"
	"resumelens/internal/generate"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var quickScanCmd = &cobra.Command{
	Use:   "quickscan [resume-file]",
	Short: "Scan a resume against the role library",
	Long: `Scan a resume with no job description: the candidate profile is
scored against the closest role profiles from the library. Useful for a
first look at how a resume reads before targeting a specific posting.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if quickScanConfig.OutputFormat == "" {
			quickScanConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(quickScanConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runQuickScan,
}

var (
	quickScanConfig common.CommandConfig
	quickScanLimit  int
)

func init() {
	quickScanCmd.Flags().StringVarP(&quickScanConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	quickScanCmd.Flags().StringVar(&quickScanConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	quickScanCmd.Flags().IntVar(&quickScanLimit, "limit", 0, "Maximum role profiles to report (default from config)")

	_ = quickScanCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runQuickScan(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())
	quickScanConfig.MaxFileSize = cfg.App.MaxFileSize

	pipe, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	limit := quickScanLimit
	if limit <= 0 {
		limit = cfg.Pipeline.QuickScanLimit
	}

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(input string, cfg common.CommandConfig) {
		logger.Info("Starting quick scan",
			"resume_chars", len(input),
			"limit", limit,
			"output_format", cfg.OutputFormat)
	}

	scanOperation := func(ctx context.Context, resume string) (types.QuickScanReport, *generate.TokenUsage, error) {
		return pipe.QuickScan(resume, limit), nil, nil
	}

	err = common.RunPipelineCommand(
		cmd.Context(),
		logger,
		quickScanConfig,
		args,
		createInput,
		scanOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to scan resume: %w", err)
	}
	logger.Info("Quick scan completed successfully")
	return nil
}
