package analyze

import (
	"strings"
	"testing"

	"resumelens/internal/types"
)

func TestAnalyzeBullet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, s types.BulletSignals)
	}{
		{
			name:  "vague leading phrase",
			input: "Responsible for managing team operations",
			check: func(t *testing.T, s types.BulletSignals) {
				if !s.IsVague {
					t.Error("expected IsVague")
				}
				if s.HasActionVerb {
					t.Error("responsible is not an action verb")
				}
				if !s.HasScopeNoun {
					t.Error("expected team as a scope noun")
				}
			},
		},
		{
			name:  "strong verb with count metric",
			input: "Led development of a customer portal serving 50K users",
			check: func(t *testing.T, s types.BulletSignals) {
				if !s.HasActionVerb || s.ActionVerb != "led" {
					t.Errorf("ActionVerb = %q, want led", s.ActionVerb)
				}
				if !s.HasMetric || s.MetricType != types.MetricCount {
					t.Errorf("MetricType = %q, want count", s.MetricType)
				}
			},
		},
		{
			name:  "percentage metric",
			input: "Reduced deployment time by 35% across the platform",
			check: func(t *testing.T, s types.BulletSignals) {
				if s.MetricType != types.MetricPercentage {
					t.Errorf("MetricType = %q, want percentage", s.MetricType)
				}
			},
		},
		{
			name:  "currency metric",
			input: "Grew annual recurring revenue by $2.4M in two quarters",
			check: func(t *testing.T, s types.BulletSignals) {
				if s.MetricType != types.MetricCurrency {
					t.Errorf("MetricType = %q, want currency", s.MetricType)
				}
			},
		},
		{
			name:  "dangling ending",
			input: "Redesigned the onboarding flow for new customers, resulting in",
			check: func(t *testing.T, s types.BulletSignals) {
				if !s.HasDanglingEnding {
					t.Error("expected HasDanglingEnding")
				}
			},
		},
		{
			name:  "project and platform scope nouns",
			input: "Launched the project across the platform",
			check: func(t *testing.T, s types.BulletSignals) {
				if !s.HasScopeNoun {
					t.Error("expected HasScopeNoun")
				}
				nouns := strings.Join(s.ScopeNouns, " ")
				if !strings.Contains(nouns, "project") || !strings.Contains(nouns, "platform") {
					t.Errorf("ScopeNouns = %v, want project and platform", s.ScopeNouns)
				}
			},
		},
		{
			name:  "initiative and program scope nouns",
			input: "Drove the diversity initiative within the mentorship program",
			check: func(t *testing.T, s types.BulletSignals) {
				if !s.HasScopeNoun {
					t.Error("expected HasScopeNoun")
				}
				nouns := strings.Join(s.ScopeNouns, " ")
				if !strings.Contains(nouns, "initiative") || !strings.Contains(nouns, "program") {
					t.Errorf("ScopeNouns = %v, want initiative and program", s.ScopeNouns)
				}
			},
		},
		{
			name:  "too short",
			input: "Did stuff",
			check: func(t *testing.T, s types.BulletSignals) {
				if !s.IsTooShort {
					t.Error("expected IsTooShort")
				}
			},
		},
		{
			name:  "too long",
			input: strings.Repeat("coordinated cross-functional delivery work ", 5),
			check: func(t *testing.T, s types.BulletSignals) {
				if !s.IsTooLong {
					t.Error("expected IsTooLong")
				}
			},
		},
		{
			name:  "empty string",
			input: "",
			check: func(t *testing.T, s types.BulletSignals) {
				if s.HasActionVerb || s.IsVague || s.HasMetric {
					t.Errorf("empty bullet should carry no positive signals: %+v", s)
				}
				if s.MetricType != types.MetricNone {
					t.Errorf("MetricType = %q, want none", s.MetricType)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, AnalyzeBullet(tt.input))
		})
	}
}

func TestAnalyzeAllBullets(t *testing.T) {
	bullets := []string{"Led the rollout of a billing system", "", "Responsible for reports"}
	signals := AnalyzeAllBullets(bullets)
	if len(signals) != len(bullets) {
		t.Fatalf("length = %d, want %d", len(signals), len(bullets))
	}
	if !signals[0].HasActionVerb {
		t.Error("signals[0] should have an action verb")
	}
	if !signals[2].IsVague {
		t.Error("signals[2] should be vague")
	}

	if got := AnalyzeAllBullets(nil); len(got) != 0 {
		t.Errorf("nil input should yield empty output, got %v", got)
	}
}

func TestClassifyJobFamily(t *testing.T) {
	tests := []struct {
		name       string
		candidate  types.CandidateProfile
		job        types.JobProfile
		wantFamily types.JobFamily
	}{
		{
			name: "engineering",
			candidate: types.CandidateProfile{
				Skills:     []string{"Go", "Kubernetes", "PostgreSQL", "Docker"},
				Experience: []types.ExperienceEntry{{Title: "Software Engineer"}},
			},
			job: types.JobProfile{
				Title:          "Senior Backend Engineer",
				RequiredSkills: []string{"Microservices", "APIs"},
			},
			wantFamily: types.FamilyEngineering,
		},
		{
			name: "sales",
			candidate: types.CandidateProfile{
				Skills:     []string{"Salesforce", "Prospecting", "Negotiation"},
				Experience: []types.ExperienceEntry{{Title: "Account Executive"}},
			},
			job: types.JobProfile{
				Title:          "Enterprise Sales Manager",
				RequiredSkills: []string{"Quota attainment", "CRM"},
			},
			wantFamily: types.FamilySales,
		},
		{
			name: "marketing",
			candidate: types.CandidateProfile{
				Skills:     []string{"SEO", "Copywriting", "Social Media"},
				Experience: []types.ExperienceEntry{{Title: "Marketing Specialist"}},
			},
			job: types.JobProfile{
				Title:          "Growth Marketing Manager",
				RequiredSkills: []string{"Campaign management", "Email marketing"},
			},
			wantFamily: types.FamilyMarketing,
		},
		{
			name: "finance",
			candidate: types.CandidateProfile{
				Skills:     []string{"GAAP", "Forecasting", "Reconciliation"},
				Experience: []types.ExperienceEntry{{Title: "Staff Accountant"}},
			},
			job: types.JobProfile{
				Title:          "Senior Financial Analyst",
				RequiredSkills: []string{"Budgeting", "FP&A"},
			},
			wantFamily: types.FamilyFinance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyJobFamily(tt.candidate, tt.job)
			if got.Family != tt.wantFamily {
				t.Fatalf("Family = %q, want %q (confidence %.2f)", got.Family, tt.wantFamily, got.Confidence)
			}
			if got.Confidence <= 0.4 {
				t.Errorf("Confidence = %.2f, want > 0.4 for a clear match", got.Confidence)
			}
		})
	}
}

func TestClassifyJobFamilyEmptyInput(t *testing.T) {
	got := ClassifyJobFamily(types.CandidateProfile{}, types.JobProfile{})
	if got.Family != types.FamilyGeneral {
		t.Errorf("Family = %q, want general", got.Family)
	}
	if got.Confidence > 0.2 {
		t.Errorf("Confidence = %.2f, want low", got.Confidence)
	}
}

func TestFamilyToStrategyKey(t *testing.T) {
	tests := []struct {
		family types.JobFamily
		want   types.StrategyKey
	}{
		{types.FamilyEngineering, types.StrategyEngineering},
		{types.FamilySales, types.StrategySales},
		{types.FamilyMarketing, types.StrategyMarketing},
		{types.FamilyFinance, types.StrategyFinance},
		{types.FamilyOperations, types.StrategyBusiness},
		{types.FamilyHealthcare, types.StrategyBusiness},
		{types.FamilyEducation, types.StrategyBusiness},
		{types.FamilyProduct, types.StrategyBusiness},
		{types.FamilyGeneral, types.StrategyBusiness},
		{types.JobFamily("unknown"), types.StrategyBusiness},
	}
	for _, tt := range tests {
		if got := FamilyToStrategyKey(tt.family); got != tt.want {
			t.Errorf("FamilyToStrategyKey(%q) = %q, want %q", tt.family, got, tt.want)
		}
	}
}
