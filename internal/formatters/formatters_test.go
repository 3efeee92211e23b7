package formatters

import (
	"encoding/json"
	"strings"
	"testing"

	"resumelens/internal/types"
)

func sampleReport() types.MatchReport {
	return types.MatchReport{
		Family: types.JobFamilyResult{Family: types.FamilyEngineering, Confidence: 0.82},
		ATS: types.ATSResult{
			Score: 74,
			Breakdown: types.ScoreBreakdown{
				SkillOverlap:    80,
				KeywordCoverage: 70,
				SeniorityMatch:  60,
				ImpactStrength:  75,
			},
			MatchedKeywords: []string{"Go", "Kubernetes"},
			MissingKeywords: []string{"Terraform"},
			Suggestions:     []string{"Add the missing keywords where they reflect real experience"},
		},
		Strengths: []string{"Strong skill overlap with the posting"},
		Gaps:      []string{"Missing keywords: Terraform"},
		Previews: []types.RewritePreview{
			{Original: "worked on billing", Improved: "Built the billing pipeline."},
		},
	}
}

func TestMatchTextFormatter(t *testing.T) {
	registry := NewFormatterRegistry()

	output, err := registry.Format(sampleReport(), "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	for _, want := range []string{
		"=== ATS COMPATIBILITY ===",
		"Score: 74/100",
		"Job family: engineering",
		"Matched keywords: Go, Kubernetes",
		"Missing keywords: Terraform",
		"=== BULLET REWRITES ===",
		"After:  Built the billing pipeline.",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("text output missing %q:\n%s", want, output)
		}
	}
}

func TestMatchFormatterAcceptsPointer(t *testing.T) {
	registry := NewFormatterRegistry()
	report := sampleReport()

	output, err := registry.Format(&report, "markdown")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(output, "# ATS Compatibility Report") {
		t.Errorf("markdown output missing header:\n%s", output)
	}
	if !strings.Contains(output, "**Score:** 74/100") {
		t.Errorf("markdown output missing score:\n%s", output)
	}
}

func TestJSONFormatterFallback(t *testing.T) {
	registry := NewFormatterRegistry()

	// JSON has no type-specific formatters; everything goes through "any"
	output, err := registry.Format(sampleReport(), "json")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded types.MatchReport
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ATS.Score != 74 {
		t.Errorf("decoded score = %d, want 74", decoded.ATS.Score)
	}
}

func TestValidationTextFormatter(t *testing.T) {
	registry := NewFormatterRegistry()

	tests := []struct {
		name       string
		validation types.JDValidation
		want       []string
	}{
		{
			name:       "valid with warning",
			validation: types.JDValidation{Valid: true, Warnings: []string{"no requirements section detected"}},
			want:       []string{"Job description: VALID", "Warning: no requirements section detected"},
		},
		{
			name:       "invalid",
			validation: types.JDValidation{Valid: false, Reason: "text too short"},
			want:       []string{"Job description: INVALID", "Reason: text too short"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := registry.Format(tt.validation, "text")
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q:\n%s", want, output)
				}
			}
		})
	}
}

func TestDraftTextFormatter(t *testing.T) {
	registry := NewFormatterRegistry()

	doc := types.DraftDocument{
		Summary:     "Engineering leader with 8 years of experience.",
		CoverLetter: []string{"Dear Hiring Manager,", "I am writing to apply."},
		Bullets:     []string{"Shipped the payments service."},
		Provider:    "local",
	}

	output, err := registry.Format(doc, "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	for _, want := range []string{
		"=== SUMMARY ===",
		"=== COVER LETTER ===",
		"- Shipped the payments service.",
		"(generated by local provider)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	registry := NewFormatterRegistry()

	if _, err := registry.Format(sampleReport(), "yaml"); err == nil {
		t.Error("expected error for unknown format, got nil")
	}
}
