package roles

import (
	"strings"
	"testing"

	"resumelens/internal/types"
)

func engineerCandidate() types.CandidateProfile {
	return types.CandidateProfile{
		Skills: []string{"Go", "SQL", "Docker", "Kubernetes"},
		Experience: []types.ExperienceEntry{
			{Title: "Senior Backend Engineer", Company: "Stripe"},
			{Title: "Backend Engineer", Company: "Initech"},
		},
	}
}

func TestExtractTargetRole(t *testing.T) {
	target := ExtractTargetRole(engineerCandidate())
	if target.Title != "Senior Backend Engineer" {
		t.Errorf("Title = %q", target.Title)
	}
	if target.Seniority != "senior" {
		t.Errorf("Seniority = %q", target.Seniority)
	}
	if len(target.Skills) != 4 {
		t.Errorf("Skills = %v", target.Skills)
	}
}

func TestExtractTargetRoleEmptyCandidate(t *testing.T) {
	target := ExtractTargetRole(types.CandidateProfile{})
	if target.Title != "" || target.Seniority != "" {
		t.Errorf("expected blank target, got %+v", target)
	}
	if target.Skills == nil {
		t.Error("Skills must be non-nil")
	}
}

func TestFindMatchingProfiles(t *testing.T) {
	lib := NewLibrary(BuiltinLibrary())
	target := ExtractTargetRole(engineerCandidate())

	matches := lib.FindMatchingProfiles(target.Title, target.Skills, target.Seniority, "", 3)
	if len(matches) == 0 {
		t.Fatal("expected matches for an engineering candidate")
	}
	if len(matches) > 3 {
		t.Fatalf("limit not honored: %d matches", len(matches))
	}

	if !strings.Contains(matches[0].Profile.Title, "Backend Engineer") {
		t.Errorf("best match = %q, want a backend engineering role", matches[0].Profile.Title)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Similarity > matches[i-1].Similarity {
			t.Error("matches not sorted by similarity")
		}
	}
}

func TestFindMatchingProfilesCategoryFilter(t *testing.T) {
	lib := NewLibrary(BuiltinLibrary())
	matches := lib.FindMatchingProfiles("Engineer", []string{"SQL", "Excel"}, "", "finance", 5)
	for _, m := range matches {
		if m.Profile.Category != "finance" {
			t.Errorf("category filter leaked %q", m.Profile.Category)
		}
	}
}

func TestFindMatchingProfilesAspirational(t *testing.T) {
	lib := NewLibrary(BuiltinLibrary())
	// A mid-level backend candidate should see the senior profile as
	// aspirational.
	matches := lib.FindMatchingProfiles("Backend Engineer", []string{"Go", "SQL", "distributed systems"}, "mid", "engineering", 5)

	foundAspirational := false
	for _, m := range matches {
		if m.Aspirational {
			foundAspirational = true
			if m.Profile.Seniority != "senior" {
				t.Errorf("aspirational match has seniority %q", m.Profile.Seniority)
			}
		}
	}
	if !foundAspirational {
		t.Error("expected at least one aspirational match")
	}
}

func TestRoleProfileToJobProfile(t *testing.T) {
	profile := BuiltinLibrary()[0]
	job := RoleProfileToJobProfile(profile)

	if job.Title != profile.Title {
		t.Errorf("Title = %q", job.Title)
	}
	if job.SeniorityLevel != profile.Seniority {
		t.Errorf("SeniorityLevel = %q", job.SeniorityLevel)
	}
	if len(job.RequiredSkills) != len(profile.RequiredSkills) {
		t.Errorf("RequiredSkills = %v", job.RequiredSkills)
	}
	if len(job.Keywords) != len(profile.RequiredSkills)+len(profile.CommonKeywords) {
		t.Errorf("Keywords = %v", job.Keywords)
	}
}
