package score

import (
	"strings"
	"testing"

	"resumelens/internal/types"
)

func sampleCandidate() types.CandidateProfile {
	return types.CandidateProfile{
		Name:    "Jane Doe",
		Summary: "Backend engineer focused on payment infrastructure.",
		Skills:  []string{"Go", "PostgreSQL", "Kafka", "Docker"},
		Experience: []types.ExperienceEntry{
			{
				Title:   "Senior Software Engineer",
				Company: "Stripe",
				Start:   "2018",
				End:     "2024",
				Bullets: []string{
					"Led migration of billing pipeline to event-driven architecture",
					"Reduced settlement latency by 40%",
				},
			},
			{
				Title:   "Software Engineer",
				Company: "Initech",
				Start:   "2014",
				End:     "2018",
				Bullets: []string{
					"Built fraud detection service processing 2M events per day",
				},
			},
		},
		Education: []types.EducationEntry{{School: "Oregon State University", Degree: "B.S. Computer Science", Year: "2014"}},
	}
}

func sampleJob() types.JobProfile {
	return types.JobProfile{
		Title:           "Senior Backend Engineer",
		Company:         "BigCo",
		RequiredSkills:  []string{"Go", "PostgreSQL", "Kubernetes"},
		PreferredSkills: []string{"Kafka"},
		Keywords:        []string{"Go", "PostgreSQL", "Kubernetes", "Kafka", "Microservices"},
		SeniorityLevel:  "senior",
	}
}

func TestScoreATSBounds(t *testing.T) {
	cases := []struct {
		name      string
		candidate types.CandidateProfile
		job       types.JobProfile
	}{
		{"full inputs", sampleCandidate(), sampleJob()},
		{"empty candidate", types.CandidateProfile{}, sampleJob()},
		{"empty job", sampleCandidate(), types.JobProfile{}},
		{"both empty", types.CandidateProfile{}, types.JobProfile{}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreATS(tt.candidate, tt.job)
			if result.Score < 0 || result.Score > 100 {
				t.Errorf("Score = %d, out of range", result.Score)
			}
			for name, v := range map[string]int{
				"SkillOverlap":    result.Breakdown.SkillOverlap,
				"KeywordCoverage": result.Breakdown.KeywordCoverage,
				"SeniorityMatch":  result.Breakdown.SeniorityMatch,
				"ImpactStrength":  result.Breakdown.ImpactStrength,
			} {
				if v < 0 || v > 100 {
					t.Errorf("%s = %d, out of range", name, v)
				}
			}
			if result.MatchedKeywords == nil || result.MissingKeywords == nil || result.Suggestions == nil {
				t.Error("result lists must be non-nil")
			}
		})
	}
}

func TestScoreATSKeywordSplit(t *testing.T) {
	result := ScoreATS(sampleCandidate(), sampleJob())

	matched := strings.Join(result.MatchedKeywords, ",")
	for _, want := range []string{"Go", "PostgreSQL", "Kafka"} {
		if !strings.Contains(matched, want) {
			t.Errorf("MatchedKeywords missing %q: %v", want, result.MatchedKeywords)
		}
	}
	missing := strings.Join(result.MissingKeywords, ",")
	if !strings.Contains(missing, "Kubernetes") {
		t.Errorf("MissingKeywords should include Kubernetes: %v", result.MissingKeywords)
	}

	seen := map[string]bool{}
	for _, k := range append(result.MatchedKeywords, result.MissingKeywords...) {
		key := strings.ToLower(k)
		if seen[key] {
			t.Errorf("duplicate keyword %q", k)
		}
		seen[key] = true
	}
}

func TestScoreATSMonotonicity(t *testing.T) {
	job := sampleJob()
	base := sampleCandidate()
	before := ScoreATS(base, job).Score

	for _, extra := range []string{"Kubernetes", "Microservices", "Go"} {
		grown := sampleCandidate()
		grown.Skills = append(grown.Skills, extra)
		after := ScoreATS(grown, job).Score
		if after < before {
			t.Errorf("adding job skill %q dropped score %d -> %d", extra, before, after)
		}
	}
}

func TestScoreATSSuggestionsBelowCeiling(t *testing.T) {
	weak := types.CandidateProfile{Skills: []string{"Photoshop"}}
	result := ScoreATS(weak, sampleJob())
	if result.Score >= suggestionCeiling {
		t.Fatalf("fixture should score below ceiling, got %d", result.Score)
	}
	if len(result.Suggestions) == 0 {
		t.Error("expected suggestions for a weak match")
	}
}

func TestSeniorityMatch(t *testing.T) {
	tests := []struct {
		name  string
		title string
		level string
		want  int
	}{
		{"exact match", "Senior Software Engineer", "senior", 100},
		{"adjacent level", "Staff Engineer", "senior", 70},
		{"large mismatch", "Junior Developer", "director", 20},
		{"job level unknown", "Senior Engineer", "", 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := types.CandidateProfile{
				Experience: []types.ExperienceEntry{{Title: tt.title}},
			}
			job := types.JobProfile{SeniorityLevel: tt.level}
			if got := seniorityMatch(candidate, job); got != tt.want {
				t.Errorf("seniorityMatch = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEstimateYears(t *testing.T) {
	if got := EstimateYears(sampleCandidate()); got != 10 {
		t.Errorf("EstimateYears = %d, want 10 (2014-2024)", got)
	}
	if got := EstimateYears(types.CandidateProfile{}); got != 0 {
		t.Errorf("EstimateYears on empty = %d, want 0", got)
	}
	undated := types.CandidateProfile{
		Experience: []types.ExperienceEntry{{Title: "Engineer"}, {Title: "Analyst"}},
	}
	if got := EstimateYears(undated); got != 4 {
		t.Errorf("EstimateYears without dates = %d, want 4", got)
	}
}

func TestGenerateStrengths(t *testing.T) {
	strengths := GenerateStrengths(sampleCandidate(), sampleJob())
	if len(strengths) < 1 || len(strengths) > 5 {
		t.Fatalf("strengths count = %d, want 1..5", len(strengths))
	}
	if !strings.Contains(strengths[0], "years") {
		t.Errorf("first strength should be years-derived: %q", strengths[0])
	}

	empty := GenerateStrengths(types.CandidateProfile{}, types.JobProfile{})
	if len(empty) < 1 {
		t.Error("strengths must never be empty")
	}
}

func TestGenerateGaps(t *testing.T) {
	if got := GenerateGaps(sampleCandidate(), sampleJob(), nil); len(got) != 0 {
		t.Errorf("no missing keywords should mean no keyword gaps, got %v", got)
	}
	got := GenerateGaps(sampleCandidate(), sampleJob(), []string{"Kubernetes", "Terraform"})
	if len(got) < 2 {
		t.Fatalf("gaps = %v", got)
	}
	if !strings.Contains(got[0], "Kubernetes") {
		t.Errorf("first gap should name the first missing keyword: %q", got[0])
	}
}

func TestGenerateRewritePreviews(t *testing.T) {
	candidate := sampleCandidate()
	candidate.Experience[0].Bullets = append(candidate.Experience[0].Bullets,
		"Responsible for maintaining the deployment scripts",
		"Worked on internal tooling for the platform team",
	)

	previews := GenerateRewritePreviews(candidate)
	if len(previews) == 0 || len(previews) > 3 {
		t.Fatalf("previews = %d, want 1..3", len(previews))
	}

	source := map[string]bool{}
	for _, entry := range candidate.Experience {
		for _, bullet := range entry.Bullets {
			source[bullet] = true
		}
	}
	for _, p := range previews {
		if !source[p.Original] {
			t.Errorf("preview original %q not from candidate text", p.Original)
		}
		if !strings.HasSuffix(p.Improved, ".") {
			t.Errorf("improved bullet missing terminal period: %q", p.Improved)
		}
	}
}

func TestGenerateRewritePreviewsEmptyCandidate(t *testing.T) {
	if got := GenerateRewritePreviews(types.CandidateProfile{}); len(got) != 0 {
		t.Errorf("empty candidate should yield no previews, got %v", got)
	}
}

// Rewritten previews must not introduce skill tokens absent from the
// candidate's own text.
func TestRewritePreviewsNoInjection(t *testing.T) {
	candidate := sampleCandidate()
	candidate.Experience[0].Bullets = []string{"Responsible for maintaining the deployment scripts"}

	foreign := []string{"Terraform", "Salesforce", "GAAP"}
	for _, p := range GenerateRewritePreviews(candidate) {
		for _, token := range foreign {
			if strings.Contains(p.Improved, token) {
				t.Errorf("preview injected %q: %q", token, p.Improved)
			}
		}
	}
}
