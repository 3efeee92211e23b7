package generate

import (
	"context"

	"resumelens/internal/types"
)

// Provider produces application drafts from a typed draft request.
// Draft returns token usage where the backend reports it; callers can
// ignore it if not needed.
type Provider interface {
	Draft(ctx context.Context, req types.DraftRequest) (types.DraftDocument, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}

// ModelInfo represents information about the generation backend
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// TokenUsage represents token usage information from provider responses
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}
