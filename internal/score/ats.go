// Package score computes ATS compatibility between a candidate and a
// job, plus the derived narrative pieces (strengths, gaps, rewrite
// previews). All arithmetic is clamped integer math over [0,100]; no
// input, however empty, produces NaN or an error.
package score

import (
	"fmt"
	"math"
	"strings"

	"resumelens/internal/analyze"
	"resumelens/internal/types"
)

// Weights blends the four breakdown components into the overall score.
// The defaults are heuristic and tunable through configuration; only
// the qualitative behavior (bounds, ordering, monotonicity) is fixed.
type Weights struct {
	SkillOverlap    float64
	KeywordCoverage float64
	SeniorityMatch  float64
	ImpactStrength  float64
}

// DefaultWeights returns the standard component blend.
func DefaultWeights() Weights {
	return Weights{
		SkillOverlap:    0.35,
		KeywordCoverage: 0.30,
		SeniorityMatch:  0.15,
		ImpactStrength:  0.20,
	}
}

const (
	requiredSkillWeight  = 2.0
	preferredSkillWeight = 1.0

	// Neutral baselines for degenerate inputs.
	noJobSkillsBaseline  = 50
	noKeywordsBaseline   = 50
	noBulletsBaseline    = 40
	suggestionCeiling    = 85
)

// ScoreATS scores with the default weights.
func ScoreATS(candidate types.CandidateProfile, job types.JobProfile) types.ATSResult {
	return ScoreATSWeighted(candidate, job, DefaultWeights())
}

// ScoreATSWeighted computes the full ATS result under a custom blend.
func ScoreATSWeighted(candidate types.CandidateProfile, job types.JobProfile, w Weights) types.ATSResult {
	matched, missing := matchKeywords(candidate, job)

	breakdown := types.ScoreBreakdown{
		SkillOverlap:    skillOverlap(candidate, job),
		KeywordCoverage: keywordCoverage(matched, missing),
		SeniorityMatch:  seniorityMatch(candidate, job),
		ImpactStrength:  impactStrength(candidate),
	}

	total := w.SkillOverlap + w.KeywordCoverage + w.SeniorityMatch + w.ImpactStrength
	if total <= 0 {
		w, total = DefaultWeights(), 1.0
	}
	blended := (w.SkillOverlap*float64(breakdown.SkillOverlap) +
		w.KeywordCoverage*float64(breakdown.KeywordCoverage) +
		w.SeniorityMatch*float64(breakdown.SeniorityMatch) +
		w.ImpactStrength*float64(breakdown.ImpactStrength)) / total

	result := types.ATSResult{
		Score:           clamp(int(math.Round(blended))),
		Breakdown:       breakdown,
		MatchedKeywords: matched,
		MissingKeywords: missing,
	}
	result.Suggestions = buildSuggestions(result)
	return result
}

// skillOverlap measures candidate coverage of the job's skill lists,
// required counting double.
func skillOverlap(candidate types.CandidateProfile, job types.JobProfile) int {
	total := float64(len(job.RequiredSkills))*requiredSkillWeight +
		float64(len(job.PreferredSkills))*preferredSkillWeight
	if total == 0 {
		return noJobSkillsBaseline
	}

	var got float64
	for _, skill := range job.RequiredSkills {
		if candidateHasTerm(candidate, skill) {
			got += requiredSkillWeight
		}
	}
	for _, skill := range job.PreferredSkills {
		if candidateHasTerm(candidate, skill) {
			got += preferredSkillWeight
		}
	}
	return clamp(int(math.Round(100 * got / total)))
}

// matchKeywords splits the job's keyword list into found and not-found,
// case preserved from the job side, no duplicates.
func matchKeywords(candidate types.CandidateProfile, job types.JobProfile) (matched, missing []string) {
	matched, missing = []string{}, []string{}
	seen := make(map[string]bool)
	for _, keyword := range job.Keywords {
		key := strings.ToLower(keyword)
		if seen[key] {
			continue
		}
		seen[key] = true
		if candidateHasTerm(candidate, keyword) {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}
	return matched, missing
}

func keywordCoverage(matched, missing []string) int {
	total := len(matched) + len(missing)
	if total == 0 {
		return noKeywordsBaseline
	}
	return clamp(int(math.Round(100 * float64(len(matched)) / float64(total))))
}

// candidateHasTerm looks for a job-side term anywhere in the candidate's
// skills, bullets, summary or headline, matching exact or substring in
// either direction, case-insensitively.
func candidateHasTerm(candidate types.CandidateProfile, term string) bool {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return false
	}
	for _, skill := range candidate.Skills {
		hay := strings.ToLower(skill)
		if strings.Contains(hay, needle) || strings.Contains(needle, hay) {
			return true
		}
	}
	blob := candidateTextBlob(candidate)
	return strings.Contains(blob, needle)
}

func candidateTextBlob(candidate types.CandidateProfile) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(candidate.Summary))
	b.WriteByte('\n')
	b.WriteString(strings.ToLower(candidate.Headline))
	for _, entry := range candidate.Experience {
		b.WriteByte('\n')
		b.WriteString(strings.ToLower(entry.Title))
		for _, bullet := range entry.Bullets {
			b.WriteByte('\n')
			b.WriteString(strings.ToLower(bullet))
		}
	}
	return b.String()
}

// impactStrength aggregates bullet signals across the whole history:
// metrics and strong verbs raise it, vagueness and dangling endings
// drag it down.
func impactStrength(candidate types.CandidateProfile) int {
	var bullets []string
	for _, entry := range candidate.Experience {
		bullets = append(bullets, entry.Bullets...)
	}
	if len(bullets) == 0 {
		return noBulletsBaseline
	}

	var sum int
	for _, signals := range analyze.AnalyzeAllBullets(bullets) {
		s := 50
		if signals.HasMetric {
			s += 25
		}
		if signals.HasActionVerb {
			s += 20
		}
		if signals.HasScopeNoun {
			s += 5
		}
		if signals.IsVague {
			s -= 20
		}
		if signals.HasDanglingEnding {
			s -= 15
		}
		if signals.IsTooShort || signals.IsTooLong {
			s -= 10
		}
		sum += clamp(s)
	}
	return clamp(int(math.Round(float64(sum) / float64(len(bullets)))))
}

// buildSuggestions derives advice from the weakest components, weakest
// concern first. Non-empty whenever the score sits below the ceiling.
func buildSuggestions(result types.ATSResult) []string {
	out := []string{}
	b := result.Breakdown

	if b.SkillOverlap < 60 {
		out = append(out, "List the job's required skills you actually have; several are not visible on the resume.")
	}
	if b.KeywordCoverage < 60 && len(result.MissingKeywords) > 0 {
		sample := result.MissingKeywords
		if len(sample) > 3 {
			sample = sample[:3]
		}
		out = append(out, fmt.Sprintf("Work key terms from the posting into your experience, such as %s.", strings.Join(sample, ", ")))
	}
	if b.ImpactStrength < 60 {
		out = append(out, "Quantify your bullets: lead with a strong verb and attach a number (%, $, or count) to the outcome.")
	}
	if b.SeniorityMatch < 70 {
		out = append(out, "Make your level explicit: the posting's seniority does not clearly match your titles.")
	}
	if len(out) == 0 && result.Score < suggestionCeiling {
		out = append(out, "Tighten each bullet around one measurable outcome to push the match higher.")
	}
	return out
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
