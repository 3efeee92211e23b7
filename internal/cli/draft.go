package cli

import (
	"context"
	"fmt"

	"resumelens/internal/common"
	"resumelens/internal/generate"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var draftCmd = &cobra.Command{
	Use:   "draft [resume-file] [job-description-file]",
	Short: "Draft tailored application documents",
	Long: `Draft a tailored professional summary, cover letter, and improved
experience bullets from a resume and a job description. The resume is
matched against the job description first; the drafts are built from the
match results, so an invalid job description rejects the whole command.

With the default "local" provider the drafts are assembled
deterministically from the match report. Configure the "gemini" provider
to have a model polish the drafted content.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if draftConfig.OutputFormat == "" {
			draftConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(draftConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runDraft,
}

var draftConfig common.CommandConfig

func init() {
	draftCmd.Flags().StringVarP(&draftConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	draftCmd.Flags().StringVar(&draftConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = draftCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runDraft(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())
	draftConfig.MaxFileSize = cfg.App.MaxFileSize

	pipe, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	genService, err := generate.NewService(&cfg.Generate, logger)
	if err != nil {
		return fmt.Errorf("failed to create generation service: %w", err)
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
		logger.Info("Starting document draft",
			"resume_chars", len(input.Resume),
			"job_chars", len(input.JobDescription),
			"provider", getConfigFromContext(cmd.Context()).Generate.Provider,
			"output_format", cfg.OutputFormat)
	}

	draftOperation := func(ctx context.Context, input matchInput) (types.DraftDocument, *generate.TokenUsage, error) {
		report, validation := pipe.Match(input.Resume, input.JobDescription)
		if report == nil {
			return types.DraftDocument{}, nil, fmt.Errorf("job description rejected: %s", validation.Reason)
		}
		return genService.Draft(ctx, pipe.BuildDraftRequest(report))
	}

	err = common.RunPipelineCommand(
		cmd.Context(),
		logger,
		draftConfig,
		args,
		createInput,
		draftOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to draft documents: %w", err)
	}
	logger.Info("Document draft completed successfully")
	return nil
}
