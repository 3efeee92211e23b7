// Package analyze extracts rhetorical signals from resume bullets and
// classifies candidate/job pairs into job families. Everything here is a
// pure function over rule tables.
package analyze

import (
	"regexp"
	"strings"

	"resumelens/internal/types"
)

const (
	bulletMinLen = 20
	bulletMaxLen = 150
)

// actionVerbs is the curated strong-verb list matched against a bullet's
// leading word.
var actionVerbs = map[string]bool{
	"accelerated": true, "achieved": true, "architected": true, "automated": true,
	"built": true, "consolidated": true, "created": true, "cut": true,
	"delivered": true, "deployed": true, "designed": true, "developed": true,
	"drove": true, "established": true, "founded": true, "generated": true,
	"grew": true, "implemented": true, "improved": true, "increased": true,
	"launched": true, "led": true, "managed": true, "mentored": true,
	"migrated": true, "modernized": true, "negotiated": true, "optimized": true,
	"orchestrated": true, "oversaw": true, "owned": true, "produced": true,
	"reduced": true, "saved": true, "scaled": true, "shipped": true,
	"spearheaded": true, "streamlined": true,
}

var vaguePhrases = []string{
	"responsible for", "helped with", "helped to", "worked on", "worked with",
	"assisted with", "assisted in", "involved in", "participated in",
	"duties included", "tasked with", "in charge of",
}

var scopeNouns = []string{
	"team", "teams", "organization", "department", "stakeholders", "clients",
	"customers", "users", "engineers", "analysts", "budget", "revenue",
	"portfolio", "pipeline", "accounts", "territory", "region", "markets",
	"project", "projects", "platform", "platforms", "initiative", "initiatives",
	"program", "programs",
}

var (
	percentagePattern = regexp.MustCompile(`\d+(?:\.\d+)?%`)
	currencyPattern   = regexp.MustCompile(`[$£€]\s?\d[\d,.]*\s?[KMBkmb]?\b`)
	countPattern      = regexp.MustCompile(`\b\d[\d,.]*\s?[KMBkmb]?\+?\s+(?:[a-z]+)`)
	danglingPattern   = regexp.MustCompile(`(?i)\b(resulting in|leading to|which led to|in order to|such as|including)\s*[.,]?\s*$`)
	wordSplit         = regexp.MustCompile(`[^a-zA-Z0-9%$+]+`)
)

// AnalyzeBullet extracts the signals a rewrite strategy and the impact
// scorer need from one bullet string. Total over its domain: empty
// strings produce a zeroed signal set with MetricNone.
func AnalyzeBullet(text string) types.BulletSignals {
	signals := types.BulletSignals{MetricType: types.MetricNone}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		signals.IsTooShort = true
		return signals
	}

	lower := strings.ToLower(trimmed)

	if first := leadingWord(lower); actionVerbs[first] {
		signals.HasActionVerb = true
		signals.ActionVerb = first
	}

	for _, phrase := range vaguePhrases {
		if strings.Contains(lower, phrase) {
			signals.IsVague = true
			break
		}
	}

	switch {
	case percentagePattern.MatchString(trimmed):
		signals.HasMetric = true
		signals.MetricType = types.MetricPercentage
	case currencyPattern.MatchString(trimmed):
		signals.HasMetric = true
		signals.MetricType = types.MetricCurrency
	case countPattern.MatchString(lower):
		signals.HasMetric = true
		signals.MetricType = types.MetricCount
	}

	signals.HasDanglingEnding = danglingPattern.MatchString(trimmed)

	for _, noun := range scopeNouns {
		if containsWord(lower, noun) {
			signals.HasScopeNoun = true
			signals.ScopeNouns = append(signals.ScopeNouns, noun)
		}
	}

	signals.IsTooShort = len(trimmed) < bulletMinLen
	signals.IsTooLong = len(trimmed) > bulletMaxLen

	return signals
}

// AnalyzeAllBullets maps AnalyzeBullet over a list, index-aligned.
func AnalyzeAllBullets(bullets []string) []types.BulletSignals {
	out := make([]types.BulletSignals, len(bullets))
	for i, bullet := range bullets {
		out[i] = AnalyzeBullet(bullet)
	}
	return out
}

func leadingWord(lower string) string {
	for _, word := range wordSplit.Split(lower, -1) {
		if word != "" {
			return word
		}
	}
	return ""
}

func containsWord(text, word string) bool {
	idx := 0
	for {
		pos := strings.Index(text[idx:], word)
		if pos < 0 {
			return false
		}
		pos += idx
		end := pos + len(word)
		leftOK := pos == 0 || !isAlnum(text[pos-1])
		rightOK := end == len(text) || !isAlnum(text[end])
		if leftOK && rightOK {
			return true
		}
		idx = pos + 1
	}
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
