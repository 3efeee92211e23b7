// Package links finds and deduplicates profile URLs in free-form text.
package links

import (
	"regexp"
	"strings"
)

// Recognized bare profile-domain patterns, with or without a scheme.
// Grouped so the full match is the URL itself.
var linkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_-]+/?`),
	regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_-]+/?`),
	regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?gitlab\.com/[A-Za-z0-9_-]+/?`),
	regexp.MustCompile(`(?i)\bhttps?://[A-Za-z0-9.-]+\.[A-Za-z]{2,}(?:/[^\s,;|)\]]*)?`),
}

type occurrence struct {
	url string
	pos int
}

// Extract returns the ordered, deduplicated list of URLs found in text,
// with any explicit-list entries not already seen appended afterward.
// Order within the text is first-occurrence order. Deduplication is
// case-insensitive and ignores a single trailing slash.
func Extract(text string, explicit []string) []string {
	var found []occurrence
	for _, pat := range linkPatterns {
		for _, loc := range pat.FindAllStringIndex(text, -1) {
			found = append(found, occurrence{url: text[loc[0]:loc[1]], pos: loc[0]})
		}
	}

	// Stable insertion sort by position; the lists are tiny.
	for i := 1; i < len(found); i++ {
		for j := i; j > 0 && found[j].pos < found[j-1].pos; j-- {
			found[j], found[j-1] = found[j-1], found[j]
		}
	}

	seen := make(map[string]bool)
	var out []string
	add := func(url string) {
		url = strings.TrimRight(strings.TrimSpace(url), ".,;")
		if url == "" {
			return
		}
		key := dedupKey(url)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, url)
	}

	for _, occ := range found {
		add(occ.url)
	}
	for _, url := range explicit {
		add(url)
	}

	return out
}

func dedupKey(url string) string {
	key := strings.ToLower(url)
	key = strings.TrimPrefix(key, "https://")
	key = strings.TrimPrefix(key, "http://")
	key = strings.TrimPrefix(key, "www.")
	return strings.TrimSuffix(key, "/")
}
