package generate

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"resumelens/internal/config"
	"resumelens/internal/errors"
	"resumelens/internal/types"
)

func sampleRequest() types.DraftRequest {
	return types.DraftRequest{
		Candidate: types.CandidateProfile{
			Name:   "Jane Doe",
			Skills: []string{"Go", "PostgreSQL"},
		},
		Job: types.JobProfile{
			Title:   "Backend Engineer",
			Company: "BigCo",
		},
		Family: types.JobFamilyResult{
			Family: types.FamilyEngineering,
		},
		Summary: "Backend engineer with 6 years of experience shipping payment systems in Go and PostgreSQL.",
		CoverLetter: []string{
			"Dear Hiring Team,",
			"I build payment systems.",
			"My experience fits the role.",
			"Sincerely, Jane Doe",
		},
		Previews: []types.RewritePreview{
			{Original: "responsible for billing", Improved: "Engineered the billing pipeline."},
			{Original: "worked on fraud checks", Improved: "Engineered fraud checks handling 2M events per day."},
		},
	}
}

func TestLocalProviderDraft(t *testing.T) {
	logger := errors.NewLogger(slog.LevelError)
	provider := NewLocalProvider(logger)

	req := sampleRequest()
	doc, usage, err := provider.Draft(context.Background(), req)
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if usage != nil {
		t.Error("local provider should not report token usage")
	}

	if doc.Provider != "local" {
		t.Errorf("provider = %q, want local", doc.Provider)
	}
	if doc.Summary != req.Summary {
		t.Errorf("summary altered: %q", doc.Summary)
	}
	if len(doc.CoverLetter) != 4 {
		t.Errorf("cover letter paragraphs = %d, want 4", len(doc.CoverLetter))
	}
	if len(doc.Bullets) != len(req.Previews) {
		t.Fatalf("bullets = %d, want %d", len(doc.Bullets), len(req.Previews))
	}
	if doc.Bullets[0] != "Engineered the billing pipeline." {
		t.Errorf("bullet[0] = %q", doc.Bullets[0])
	}
}

func TestLocalProviderDeterministic(t *testing.T) {
	logger := errors.NewLogger(slog.LevelError)
	provider := NewLocalProvider(logger)

	req := sampleRequest()
	first, _, err := provider.Draft(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := provider.Draft(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if first.Summary != second.Summary || len(first.Bullets) != len(second.Bullets) {
		t.Error("local drafts must be deterministic for the same request")
	}
}

func TestLocalProviderModelInfo(t *testing.T) {
	provider := NewLocalProvider(errors.NewLogger(slog.LevelError))
	info := provider.GetModelInfo(context.Background())
	if !info.Available {
		t.Error("local provider must always be available")
	}
	if info.Name != "local" {
		t.Errorf("name = %q", info.Name)
	}
}

func TestNewServiceProviderSelection(t *testing.T) {
	logger := errors.NewLogger(slog.LevelError)

	svc, err := NewService(&config.GenerateConfig{Provider: "local"}, logger)
	if err != nil {
		t.Fatalf("NewService(local): %v", err)
	}
	if _, ok := svc.Provider.(*LocalProvider); !ok {
		t.Errorf("provider = %T, want *LocalProvider", svc.Provider)
	}

	if _, err := NewService(&config.GenerateConfig{Provider: "oracle"}, logger); err == nil {
		t.Error("unknown provider must be rejected")
	}
}

func TestBuildDraftPrompt(t *testing.T) {
	prompt := buildDraftPrompt(sampleRequest())

	for _, want := range []string{
		"Backend Engineer",
		"BigCo",
		"Jane Doe",
		"Engineered the billing pipeline.",
		"Dear Hiring Team,",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
