// Package rewrite holds the five family voices used to rewrite bullets
// and draft summaries and cover letters. The set is closed: strategies
// are registered at init and looked up by key, and an unknown key is a
// caller bug, not a user-input problem.
package rewrite

import (
	"fmt"
	"strings"

	"resumelens/internal/analyze"
	"resumelens/internal/types"
)

// Params carries the candidate- and job-derived inputs a voice needs.
// Every token a strategy emits beyond fixed connective prose must come
// from these fields, so output never invents skills or keywords.
type Params struct {
	Name       string
	Title      string // target role title
	Company    string
	TopSkills  []string
	Years      int
	Highlights []string // strongest existing bullets, verbatim
}

// Strategy is one family voice.
type Strategy interface {
	Key() types.StrategyKey
	RewriteBullet(text string, signals types.BulletSignals) string
	DraftSummary(p Params) string
	DraftCoverLetter(p Params) []string
}

var registry = map[types.StrategyKey]Strategy{}

func register(s Strategy) {
	registry[s.Key()] = s
}

// GetStrategyByKey returns the voice for a key. Panics on an unknown
// key: that is a contract violation by the caller, never user input.
func GetStrategyByKey(key types.StrategyKey) Strategy {
	s, ok := registry[key]
	if !ok {
		panic(fmt.Sprintf("rewrite: unknown strategy key %q", key))
	}
	return s
}

// GetStrategy resolves a job family to its voice.
func GetStrategy(family types.JobFamily) Strategy {
	return GetStrategyByKey(analyze.FamilyToStrategyKey(family))
}

// vagueLeads are the weak openers a rewrite replaces, longest match
// first.
var vagueLeads = []string{
	"was responsible for", "responsible for", "duties included",
	"helped with", "helped to", "assisted with", "assisted in",
	"worked on", "worked with", "involved in", "participated in",
	"tasked with", "in charge of",
}

// finishBullet capitalizes the first letter and guarantees a single
// terminal period.
func finishBullet(text string) string {
	out := strings.TrimSpace(text)
	if out == "" {
		return "."
	}
	out = strings.TrimRight(out, ".!?,;: ")
	if out == "" {
		return "."
	}
	return strings.ToUpper(out[:1]) + out[1:] + "."
}

// replaceVagueLead swaps a weak opening phrase for the given verb.
func replaceVagueLead(text, verb string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	for _, lead := range vagueLeads {
		if strings.HasPrefix(lower, lead) {
			return verb + trimmed[len(lead):], true
		}
	}
	return trimmed, false
}

func topSkillList(skills []string, n int) string {
	if len(skills) > n {
		skills = skills[:n]
	}
	switch len(skills) {
	case 0:
		return ""
	case 1:
		return skills[0]
	case 2:
		return skills[0] + " and " + skills[1]
	default:
		return strings.Join(skills[:len(skills)-1], ", ") + " and " + skills[len(skills)-1]
	}
}

func yearsPhrase(years int) string {
	switch {
	case years <= 0:
		return "hands-on"
	case years == 1:
		return "a year of"
	default:
		return fmt.Sprintf("%d years of", years)
	}
}

func salutation(company string) string {
	if company != "" {
		return fmt.Sprintf("Dear %s Hiring Team,", company)
	}
	return "Dear Hiring Manager,"
}

func signoff(name string) string {
	if name == "" {
		return "Sincerely,\nYour candidate"
	}
	return "Sincerely,\n" + name
}

func orRole(title string) string {
	if title == "" {
		return "this role"
	}
	return "the " + title + " role"
}
