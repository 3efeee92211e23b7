package parser

import (
	"fmt"
	"regexp"
	"strings"

	"resumelens/internal/types"
)

const (
	jdMinLength       = 50
	jdShortWithShape  = 80
	jdShortNoShape    = 200
	jdVarietyLength   = 100
	jdMinDistinctWord = 15
)

const gibberishRunLen = 11

var (
	structureWords = regexp.MustCompile(`(?i)\b(skills?|requirements?|qualifications?|experience|responsibilities)\b`)
	requirementsVocabulary = regexp.MustCompile(`(?i)\b(requirements?|qualifications?)\b`)
)

// ValidateJobDescription screens posting text before it reaches the
// parser. This is the only user-visible rejection the pipeline produces;
// everything downstream is total over its inputs.
func ValidateJobDescription(raw string) types.JDValidation {
	text := strings.TrimSpace(raw)

	if text == "" {
		return types.JDValidation{Valid: false, Reason: "empty job description"}
	}
	if hasIdenticalRun(text, gibberishRunLen) {
		return types.JDValidation{Valid: false, Reason: "text looks like gibberish (long runs of repeated characters)"}
	}
	if strings.Contains(strings.ToLower(text), "lorem ipsum") {
		return types.JDValidation{Valid: false, Reason: "text looks like placeholder content"}
	}

	length := len(text)
	hasStructure := bulletMarker.MatchString(text) ||
		strings.Contains(text, "\n-") || strings.Contains(text, "\n•") ||
		structureWords.MatchString(text)

	if length < jdMinLength {
		return types.JDValidation{Valid: false, Reason: fmt.Sprintf("too short to be a job description (%d characters)", length)}
	}
	if length < jdShortWithShape && hasStructure {
		return types.JDValidation{Valid: true, Warnings: []string{"job description is very short; results may be incomplete"}}
	}
	if length < jdShortNoShape && !hasStructure {
		return types.JDValidation{Valid: false, Reason: fmt.Sprintf("no recognizable job description structure in %d characters", length)}
	}

	var warnings []string
	if !requirementsVocabulary.MatchString(text) {
		warnings = append(warnings, "no requirements or qualifications section found")
	}
	if length > jdVarietyLength && distinctWordCount(text) < jdMinDistinctWord {
		warnings = append(warnings, "very low vocabulary variety; text may be repeated or truncated")
	}

	return types.JDValidation{Valid: true, Warnings: warnings}
}

// hasIdenticalRun reports whether text contains n or more consecutive
// occurrences of the same rune.
func hasIdenticalRun(text string, n int) bool {
	var prev rune
	count := 0
	for _, r := range text {
		if r == prev {
			count++
		} else {
			prev = r
			count = 1
		}
		if count >= n {
			return true
		}
	}
	return false
}

func distinctWordCount(text string) int {
	seen := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		seen[strings.Trim(word, ".,;:!?()[]\"'")] = true
	}
	delete(seen, "")
	return len(seen)
}
