package parser

import (
	"strings"
	"testing"
)

const sampleJD = `Senior Backend Engineer at Stripe

Responsibilities:
- Design and operate payment APIs
- Mentor engineers on the team

Requirements: Go, PostgreSQL, Kafka
Nice to have: Kubernetes, Terraform
`

func TestParseJobDescription(t *testing.T) {
	job := ParseJobDescription(sampleJD)

	if job.Title != "Senior Backend Engineer" {
		t.Errorf("Title = %q", job.Title)
	}
	if job.Company != "Stripe" {
		t.Errorf("Company = %q", job.Company)
	}
	if job.SeniorityLevel != "senior" {
		t.Errorf("SeniorityLevel = %q", job.SeniorityLevel)
	}

	wantRequired := []string{"Go", "PostgreSQL", "Kafka"}
	if len(job.RequiredSkills) != len(wantRequired) {
		t.Fatalf("RequiredSkills = %v", job.RequiredSkills)
	}
	for i, skill := range wantRequired {
		if job.RequiredSkills[i] != skill {
			t.Errorf("RequiredSkills[%d] = %q, want %q", i, job.RequiredSkills[i], skill)
		}
	}

	wantPreferred := []string{"Kubernetes", "Terraform"}
	if len(job.PreferredSkills) != len(wantPreferred) || job.PreferredSkills[0] != "Kubernetes" {
		t.Errorf("PreferredSkills = %v", job.PreferredSkills)
	}

	if len(job.Responsibilities) != 2 {
		t.Errorf("Responsibilities = %v", job.Responsibilities)
	}

	if len(job.Keywords) == 0 {
		t.Fatal("expected derived keywords")
	}
	joined := strings.Join(job.Keywords, "\n")
	for _, want := range []string{"Go", "Kubernetes"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Keywords missing %q: %v", want, job.Keywords)
		}
	}
}

func TestParseJobDescriptionEmptyInput(t *testing.T) {
	job := ParseJobDescription("")
	if job.RequiredSkills == nil || job.PreferredSkills == nil || job.Responsibilities == nil || job.Keywords == nil {
		t.Error("collections must be non-nil on empty input")
	}
	if job.Title != "" || job.SeniorityLevel != "" {
		t.Errorf("expected blank title/seniority, got %q / %q", job.Title, job.SeniorityLevel)
	}
}

func TestParseJobDescriptionHeaderVariants(t *testing.T) {
	text := `Staff Platform Engineer - Initech

What you'll do:
- Run the build platform

Minimum qualifications:
- Go; Bazel

Bonus points:
- GCP
`
	job := ParseJobDescription(text)
	if job.Title != "Staff Platform Engineer" || job.Company != "Initech" {
		t.Errorf("opening line parse = %q / %q", job.Title, job.Company)
	}
	if job.SeniorityLevel != "staff" {
		t.Errorf("SeniorityLevel = %q", job.SeniorityLevel)
	}
	if len(job.RequiredSkills) != 2 {
		t.Errorf("RequiredSkills = %v", job.RequiredSkills)
	}
	if len(job.PreferredSkills) != 1 || job.PreferredSkills[0] != "GCP" {
		t.Errorf("PreferredSkills = %v", job.PreferredSkills)
	}
	if len(job.Responsibilities) != 1 {
		t.Errorf("Responsibilities = %v", job.Responsibilities)
	}
}

func TestValidateJobDescription(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantValid  bool
		wantReason string // substring of Reason when invalid
	}{
		{
			name:       "empty input",
			input:      "",
			wantValid:  false,
			wantReason: "empty",
		},
		{
			name:       "whitespace only",
			input:      "   \n\t  ",
			wantValid:  false,
			wantReason: "empty",
		},
		{
			name:       "gibberish repeated characters",
			input:      "aaaaaaaaaaaaa bbbbbbbbbbbbb",
			wantValid:  false,
			wantReason: "gibberish",
		},
		{
			name:       "run of exactly eleven identical characters",
			input:      "xxxxxxxxxxx",
			wantValid:  false,
			wantReason: "gibberish",
		},
		{
			name:      "ten-character divider does not trip the gibberish check",
			input:     "Software Engineer at BigCo.\n==========\nRequirements: 3+ years experience, TypeScript, React, Node.js. Responsibilities: Build scalable web applications.",
			wantValid: true,
		},
		{
			name:       "lorem ipsum placeholder",
			input:      "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore.",
			wantValid:  false,
			wantReason: "placeholder",
		},
		{
			name:       "under fifty characters",
			input:      "Engineer wanted. Skills: Go.",
			wantValid:  false,
			wantReason: "28",
		},
		{
			name:      "short but structured",
			input:     "Backend role. Requirements: Go, SQL, Docker, CI and more",
			wantValid: true,
		},
		{
			name:       "medium length without structure",
			input:      strings.Repeat("we are a fun company doing great things together ", 3),
			wantValid:  false,
			wantReason: "structure",
		},
		{
			name:      "realistic posting",
			input:     "Software Engineer at BigCo. Requirements: 3+ years experience, TypeScript, React, Node.js. Responsibilities: Build scalable web applications, collaborate with product team.",
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateJobDescription(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (reason %q)", got.Valid, tt.wantValid, got.Reason)
			}
			if !tt.wantValid && !strings.Contains(got.Reason, tt.wantReason) {
				t.Errorf("Reason = %q, want it to mention %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestHasIdenticalRun(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  bool
	}{
		{"", 11, false},
		{"abcabcabcabcabc", 11, false},
		{strings.Repeat("a", 10), 11, false},
		{strings.Repeat("a", 11), 11, true},
		{"prefix " + strings.Repeat("!", 12) + " suffix", 11, true},
		{strings.Repeat("é", 11), 11, true}, // runs are counted per rune, not per byte
	}
	for _, tt := range tests {
		if got := hasIdenticalRun(tt.input, tt.n); got != tt.want {
			t.Errorf("hasIdenticalRun(%q, %d) = %v, want %v", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestValidateJobDescriptionWarnings(t *testing.T) {
	t.Run("very short with structure warns", func(t *testing.T) {
		got := ValidateJobDescription("Backend role. Requirements: Go, SQL, Docker, CI now")
		if !got.Valid {
			t.Fatalf("expected valid, reason %q", got.Reason)
		}
		if len(got.Warnings) != 1 || !strings.Contains(got.Warnings[0], "short") {
			t.Errorf("Warnings = %v", got.Warnings)
		}
	})

	t.Run("missing requirements vocabulary warns", func(t *testing.T) {
		got := ValidateJobDescription("Platform Engineer at Initech. You will build deployment tooling, improve reliability, mentor teammates, run incident reviews, own the roadmap for internal infrastructure, and partner with security on hardening work across the fleet. Experience with cloud platforms expected.")
		if !got.Valid {
			t.Fatalf("expected valid, reason %q", got.Reason)
		}
		found := false
		for _, w := range got.Warnings {
			if strings.Contains(w, "requirements") {
				found = true
			}
		}
		if !found {
			t.Errorf("Warnings = %v, want a requirements-vocabulary warning", got.Warnings)
		}
	})

	t.Run("low vocabulary variety warns", func(t *testing.T) {
		got := ValidateJobDescription(strings.Repeat("great job requirements experience skills team work here now ", 4))
		if !got.Valid {
			t.Fatalf("expected valid, reason %q", got.Reason)
		}
		found := false
		for _, w := range got.Warnings {
			if strings.Contains(w, "variety") {
				found = true
			}
		}
		if !found {
			t.Errorf("Warnings = %v, want a vocabulary-variety warning", got.Warnings)
		}
	})
}
