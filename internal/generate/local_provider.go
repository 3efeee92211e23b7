package generate

import (
	"context"

	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// LocalProvider implements Provider without any network backend. The
// draft request already carries the strategy-drafted summary, cover
// letter, and bullet rewrites, so the local provider assembles them
// into a document as-is. Output is deterministic for a given request.
type LocalProvider struct {
	logger *errors.Logger
}

// Ensure LocalProvider implements Provider
var _ Provider = (*LocalProvider)(nil)

// NewLocalProvider creates the deterministic in-process provider
func NewLocalProvider(logger *errors.Logger) *LocalProvider {
	return &LocalProvider{logger: logger}
}

// Draft assembles the draft document from the request's strategy output.
func (l *LocalProvider) Draft(_ context.Context, req types.DraftRequest) (types.DraftDocument, *TokenUsage, error) {
	bullets := make([]string, 0, len(req.Previews))
	for _, preview := range req.Previews {
		bullets = append(bullets, preview.Improved)
	}

	l.logger.Debug("Assembled local draft",
		"family", string(req.Family.Family),
		"paragraphs", len(req.CoverLetter),
		"bullets", len(bullets))

	return types.DraftDocument{
		Summary:     req.Summary,
		CoverLetter: req.CoverLetter,
		Bullets:     bullets,
		Provider:    "local",
	}, nil, nil
}

// GetModelInfo reports the local provider as always available.
func (l *LocalProvider) GetModelInfo(_ context.Context) *ModelInfo {
	return &ModelInfo{
		Name:      "local",
		Available: true,
	}
}

// Close implements Provider
func (l *LocalProvider) Close() error {
	return nil
}
