package roles

import (
	"sort"
	"strings"
	"sync"

	"resumelens/internal/types"
)

// Library is a swappable snapshot of role profiles. Reads take a
// snapshot reference; the watcher replaces the whole slice atomically
// under the lock, so profiles themselves are never mutated.
type Library struct {
	mu       sync.RWMutex
	profiles []types.RoleProfile
}

// NewLibrary wraps a profile set. Pass BuiltinLibrary() for the
// compiled-in defaults.
func NewLibrary(profiles []types.RoleProfile) *Library {
	return &Library{profiles: profiles}
}

// Profiles returns the current snapshot.
func (l *Library) Profiles() []types.RoleProfile {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.profiles
}

func (l *Library) replace(profiles []types.RoleProfile) {
	l.mu.Lock()
	l.profiles = profiles
	l.mu.Unlock()
}

var roleRank = map[string]int{
	"intern": 0, "entry": 0, "junior": 0,
	"associate": 1,
	"mid":       2,
	"senior":    3,
	"staff":     4, "principal": 4, "lead": 4, "manager": 4,
	"director": 5, "head": 5, "vp": 5,
}

// ExtractTargetRole infers the role a candidate appears to be aiming
// for from their most recent title and aggregate skills.
func ExtractTargetRole(candidate types.CandidateProfile) types.TargetRole {
	target := types.TargetRole{Skills: candidate.Skills}
	if target.Skills == nil {
		target.Skills = []string{}
	}
	if len(candidate.Experience) == 0 {
		return target
	}

	title := candidate.Experience[0].Title
	target.Title = title
	lower := strings.ToLower(title)
	for word := range roleRank {
		if strings.Contains(lower, word) {
			if target.Seniority == "" || roleRank[word] > roleRank[target.Seniority] {
				target.Seniority = word
			}
		}
	}
	return target
}

// FindMatchingProfiles ranks the library against a target role and
// returns up to limit matches, closest first. Aspirational matches
// (one seniority rung above the target) ride alongside close ones. An
// empty category matches every profile.
func (l *Library) FindMatchingProfiles(title string, skills []string, seniority, category string, limit int) []types.RoleMatch {
	if limit <= 0 {
		limit = 3
	}

	targetRank, rankKnown := roleRank[strings.ToLower(seniority)]

	var matches []types.RoleMatch
	for _, profile := range l.Profiles() {
		if category != "" && !strings.EqualFold(profile.Category, category) {
			continue
		}
		sim := similarity(title, skills, profile)
		if sim <= 0 {
			continue
		}
		aspirational := false
		if rankKnown {
			if pr, ok := roleRank[strings.ToLower(profile.Seniority)]; ok && pr == targetRank+1 {
				aspirational = true
			}
		}
		matches = append(matches, types.RoleMatch{Profile: profile, Similarity: sim, Aspirational: aspirational})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// similarity blends title-token overlap with weighted skill coverage,
// both in [0,1].
func similarity(title string, skills []string, profile types.RoleProfile) float64 {
	titleSim := titleSimilarity(title, profile)

	var total, got float64
	check := func(terms []types.WeightedTerm) {
		for _, term := range terms {
			total += term.Weight
			if hasSkill(skills, term.Term) {
				got += term.Weight
			}
		}
	}
	check(profile.RequiredSkills)
	check(profile.PreferredSkills)
	check(profile.CommonKeywords)

	skillSim := 0.0
	if total > 0 {
		skillSim = got / total
	}
	return 0.5*titleSim + 0.5*skillSim
}

func titleSimilarity(title string, profile types.RoleProfile) float64 {
	best := tokenOverlap(title, profile.Title)
	for _, alias := range profile.Aliases {
		if o := tokenOverlap(title, alias); o > best {
			best = o
		}
	}
	return best
}

// tokenOverlap is the fraction of b's tokens present in a.
func tokenOverlap(a, b string) float64 {
	bTokens := strings.Fields(strings.ToLower(b))
	if len(bTokens) == 0 {
		return 0
	}
	aSet := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(a)) {
		aSet[tok] = true
	}
	hits := 0
	for _, tok := range bTokens {
		if aSet[tok] {
			hits++
		}
	}
	return float64(hits) / float64(len(bTokens))
}

func hasSkill(skills []string, term string) bool {
	needle := strings.ToLower(term)
	for _, skill := range skills {
		hay := strings.ToLower(skill)
		if strings.Contains(hay, needle) || strings.Contains(needle, hay) {
			return true
		}
	}
	return false
}

// RoleProfileToJobProfile converts reference data into the job shape so
// the ATS scorer can run without a real posting.
func RoleProfileToJobProfile(profile types.RoleProfile) types.JobProfile {
	job := types.JobProfile{
		Title:            profile.Title,
		RequiredSkills:   terms(profile.RequiredSkills),
		PreferredSkills:  terms(profile.PreferredSkills),
		Responsibilities: append([]string{}, profile.Responsibilities...),
		SeniorityLevel:   profile.Seniority,
	}
	job.Keywords = append(append([]string{}, job.RequiredSkills...), terms(profile.CommonKeywords)...)
	return job
}

func terms(weighted []types.WeightedTerm) []string {
	out := make([]string, 0, len(weighted))
	for _, t := range weighted {
		out = append(out, t.Term)
	}
	return out
}
