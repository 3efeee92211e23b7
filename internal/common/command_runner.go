package common

import (
	"context"
	"fmt"
	"os"

	"resumelens/internal/errors"
	"resumelens/internal/generate"
)

// CreateInputFunc defines how to create the operation input from file contents.
type CreateInputFunc[Input any] func(contents []string) (Input, error)

// LogDetailsFunc defines how to log the start of an operation.
type LogDetailsFunc[Input any] func(input Input, cfg CommandConfig)

// OperationFunc is a generic signature for pipeline operations with
// context and optional token usage. Local pipeline operations return a
// nil usage.
type OperationFunc[Input, Output any] func(context.Context, Input) (Output, *generate.TokenUsage, error)

// RunPipelineCommand encapsulates the common logic for file-based CLI
// commands: read and validate the input files, run the operation, and
// write the formatted result.
func RunPipelineCommand[Input, Output any](
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	args []string,
	createInput CreateInputFunc[Input],
	operation OperationFunc[Input, Output],
	logDetails LogDetailsFunc[Input],
) error {
	fileProcessor := NewFileProcessorWithLimit(logger, cmdConfig.MaxFileSize)
	outputHandler := NewOutputHandler(logger)

	contents, err := fileProcessor.ValidateAndReadFiles(args...)
	if err != nil {
		return err
	}

	input, err := createInput(contents)
	if err != nil {
		return fmt.Errorf("failed to create input from file contents: %w", err)
	}

	logDetails(input, cmdConfig)

	result, tokenUsage, err := operation(ctx, input)
	if err != nil {
		return err
	}

	// Report token usage when the operation used a metered provider
	if tokenUsage != nil {
		if logger != nil {
			logger.Info("Generation token usage", "input_tokens", tokenUsage.InputTokens, "output_tokens", tokenUsage.OutputTokens, "total_tokens", tokenUsage.TotalTokens)
		} else {
			fmt.Fprintf(os.Stderr, "Generation token usage: input=%d, output=%d, total=%d\n", tokenUsage.InputTokens, tokenUsage.OutputTokens, tokenUsage.TotalTokens)
		}
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}
