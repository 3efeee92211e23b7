package score

import (
	"fmt"
	"strings"

	"resumelens/internal/analyze"
	"resumelens/internal/rewrite"
	"resumelens/internal/types"
)

const (
	maxStrengths = 5
	maxGaps      = 5
	maxPreviews  = 3
)

// GenerateStrengths derives one to five strengths from what the
// candidate already shows. A years-of-experience strength leads
// whenever any experience exists.
func GenerateStrengths(candidate types.CandidateProfile, job types.JobProfile) []string {
	var out []string

	if years := EstimateYears(candidate); years > 0 {
		out = append(out, fmt.Sprintf("%d+ years of professional experience across %d roles", years, len(candidate.Experience)))
	}

	var covered []string
	for _, skill := range job.RequiredSkills {
		if candidateHasTerm(candidate, skill) {
			covered = append(covered, skill)
		}
	}
	if len(covered) > 0 {
		if len(covered) > 4 {
			covered = covered[:4]
		}
		out = append(out, "Direct experience with required skills: "+strings.Join(covered, ", "))
	}

	metrics, verbs := 0, 0
	for _, entry := range candidate.Experience {
		for _, signals := range analyze.AnalyzeAllBullets(entry.Bullets) {
			if signals.HasMetric {
				metrics++
			}
			if signals.HasActionVerb {
				verbs++
			}
		}
	}
	if metrics > 0 {
		out = append(out, fmt.Sprintf("Quantified impact: %d achievements backed by concrete numbers", metrics))
	}
	if verbs >= 3 {
		out = append(out, "Action-oriented writing with strong leading verbs throughout")
	}
	if len(candidate.Education) > 0 {
		edu := candidate.Education[0]
		if edu.Degree != "" {
			out = append(out, fmt.Sprintf("Formal credentials: %s, %s", edu.Degree, edu.School))
		} else {
			out = append(out, "Formal education: "+edu.School)
		}
	}

	if len(out) == 0 {
		out = append(out, "Resume parsed cleanly and is ready to be built out with concrete achievements")
	}
	if len(out) > maxStrengths {
		out = out[:maxStrengths]
	}
	return out
}

// GenerateGaps turns missing job-side keywords into gap statements.
// Empty-safe: no missing keywords means no gaps, never nil panic.
func GenerateGaps(candidate types.CandidateProfile, job types.JobProfile, missingKeywords []string) []string {
	out := []string{}
	if len(missingKeywords) > 0 {
		sample := missingKeywords
		if len(sample) > maxGaps-1 {
			sample = sample[:maxGaps-1]
		}
		for _, keyword := range sample {
			out = append(out, fmt.Sprintf("No visible evidence of %s, which the posting calls for", keyword))
		}
	}

	if job.SeniorityLevel != "" && seniorityMatch(candidate, job) < 70 {
		out = append(out, fmt.Sprintf("Stated level (%s) is not clearly supported by the listed titles", job.SeniorityLevel))
	}
	if len(out) > maxGaps {
		out = out[:maxGaps]
	}
	return out
}

// GenerateRewritePreviews picks up to three of the candidate's weakest
// bullets and shows them rewritten in the candidate's own family voice.
// Previews are sourced only from the candidate's text, never invented.
func GenerateRewritePreviews(candidate types.CandidateProfile) []types.RewritePreview {
	family := analyze.ClassifyJobFamily(candidate, types.JobProfile{})
	strategy := rewrite.GetStrategy(family.Family)

	type weak struct {
		text    string
		signals types.BulletSignals
		badness int
	}
	var candidates []weak
	for _, entry := range candidate.Experience {
		for _, bullet := range entry.Bullets {
			signals := analyze.AnalyzeBullet(bullet)
			badness := 0
			if signals.IsVague {
				badness += 3
			}
			if !signals.HasActionVerb {
				badness += 2
			}
			if !signals.HasMetric {
				badness++
			}
			if signals.HasDanglingEnding {
				badness += 2
			}
			if badness > 0 && !signals.IsTooShort {
				candidates = append(candidates, weak{bullet, signals, badness})
			}
		}
	}

	// Worst first; stable for equal badness.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].badness > candidates[j-1].badness; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}

	out := []types.RewritePreview{}
	for _, c := range candidates {
		if len(out) == maxPreviews {
			break
		}
		improved := strategy.RewriteBullet(c.text, c.signals)
		if improved == finishBulletNoop(c.text) {
			continue
		}
		out = append(out, types.RewritePreview{Original: c.text, Improved: improved})
	}
	return out
}

// finishBulletNoop mirrors the strategy's punctuation normalization so
// previews that change nothing but the period are skipped.
func finishBulletNoop(text string) string {
	out := strings.TrimSpace(text)
	out = strings.TrimRight(out, ".!?,;: ")
	if out == "" {
		return "."
	}
	return strings.ToUpper(out[:1]) + out[1:] + "."
}
