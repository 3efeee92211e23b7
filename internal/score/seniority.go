package score

import (
	"regexp"
	"strings"

	"resumelens/internal/types"
)

// seniorityRank orders level words onto a small ladder so adjacency is
// comparable. Several words share a rung.
var seniorityRank = map[string]int{
	"intern":    0,
	"entry":     0,
	"junior":    0,
	"associate": 1,
	"mid":       2,
	"senior":    3,
	"staff":     4,
	"principal": 4,
	"lead":      4,
	"manager":   4,
	"director":  5,
	"head":      5,
	"vp":        5,
}

var yearDigits = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// inferCandidateRank derives a ladder rung from the candidate's titles,
// falling back to estimated years of experience. Returns -1 when
// nothing can be inferred.
func inferCandidateRank(candidate types.CandidateProfile) int {
	best := -1
	for _, entry := range candidate.Experience {
		lower := strings.ToLower(entry.Title)
		for word, rank := range seniorityRank {
			if strings.Contains(lower, word) && rank > best {
				best = rank
			}
		}
	}
	if best >= 0 {
		return best
	}

	switch years := EstimateYears(candidate); {
	case years <= 0:
		return -1
	case years < 2:
		return 0
	case years < 5:
		return 2
	case years < 9:
		return 3
	default:
		return 4
	}
}

// EstimateYears approximates total professional experience from the
// year spans in the candidate's history. With no parseable dates it
// falls back to two years per listed position.
func EstimateYears(candidate types.CandidateProfile) int {
	if len(candidate.Experience) == 0 {
		return 0
	}

	minYear, maxYear := 0, 0
	for _, entry := range candidate.Experience {
		for _, field := range []string{entry.Start, entry.End} {
			for _, m := range yearDigits.FindAllString(field, -1) {
				year := atoiYear(m)
				if minYear == 0 || year < minYear {
					minYear = year
				}
				if year > maxYear {
					maxYear = year
				}
			}
		}
	}

	if minYear > 0 && maxYear > minYear {
		return maxYear - minYear
	}
	return 2 * len(candidate.Experience)
}

func atoiYear(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// seniorityMatch scores the candidate rung against the job's stated
// level: full credit on a match, partial on adjacency, low on a large
// mismatch, neutral when either side is unknown.
func seniorityMatch(candidate types.CandidateProfile, job types.JobProfile) int {
	jobRank, ok := seniorityRank[strings.ToLower(job.SeniorityLevel)]
	if !ok {
		return 60
	}
	candRank := inferCandidateRank(candidate)
	if candRank < 0 {
		return 40
	}

	switch diff := abs(candRank - jobRank); {
	case diff == 0:
		return 100
	case diff == 1:
		return 70
	case diff == 2:
		return 40
	default:
		return 20
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
