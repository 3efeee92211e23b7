package textnorm

import (
	"regexp"
	"strings"
)

// Fixed preprocessing ceilings. Callers that need tighter limits truncate
// before handing text to the parsers.
const (
	MaxResumeChars         = 50000
	MaxJobDescriptionChars = 30000
)

var horizontalWhitespace = regexp.MustCompile(`[ \t\f\v]+`)

// NormalizeText strips null bytes, unifies line endings to \n and collapses
// runs of horizontal whitespace to a single space. Newlines are preserved
// and content is otherwise untouched. Idempotent.
func NormalizeText(raw string) string {
	s := strings.ReplaceAll(raw, "\x00", "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return horizontalWhitespace.ReplaceAllString(s, " ")
}

// SmartTruncate cuts text to at most maxLen characters, preferring a
// paragraph break, then a sentence boundary, then a hard cut. Text at or
// under the limit is returned unchanged.
func SmartTruncate(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(text) <= maxLen {
		return text
	}

	cut := text[:maxLen]

	if idx := strings.LastIndex(cut, "\n\n"); idx > 0 {
		return cut[:idx]
	}

	// Nearest sentence-ending punctuation, keeping the terminator.
	if idx := strings.LastIndexAny(cut, ".!?"); idx > 0 {
		return cut[:idx+1]
	}

	return cut
}

// PreprocessResume normalizes and bounds resume text. Never fails; empty
// input yields an empty string.
func PreprocessResume(raw string) string {
	return SmartTruncate(NormalizeText(raw), MaxResumeChars)
}

// PreprocessJobDescription normalizes and bounds job-description text.
func PreprocessJobDescription(raw string) string {
	return SmartTruncate(NormalizeText(raw), MaxJobDescriptionChars)
}
