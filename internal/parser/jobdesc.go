package parser

import (
	"regexp"
	"strings"

	"resumelens/internal/textnorm"
	"resumelens/internal/types"
)

type jdBlock string

const (
	jdBlockNone             jdBlock = ""
	jdBlockRequired         jdBlock = "required"
	jdBlockPreferred        jdBlock = "preferred"
	jdBlockResponsibilities jdBlock = "responsibilities"
)

// jdBlockHeaders is applied in order; the first pattern matching a line
// switches the active block.
var jdBlockHeaders = []struct {
	pattern *regexp.Regexp
	block   jdBlock
}{
	{regexp.MustCompile(`(?i)^\s*(nice to have|preferred( qualifications| skills)?|bonus( points)?|plus(es)?)\b`), jdBlockPreferred},
	{regexp.MustCompile(`(?i)^\s*(requirements?|(minimum |basic )?qualifications|must have|what (we're|we are) looking for|who you are)\b`), jdBlockRequired},
	{regexp.MustCompile(`(?i)^\s*(responsibilities|duties|what (you'll|you will) do|the role|your (role|impact))\b`), jdBlockResponsibilities},
}

var (
	// "Role at Company", "Role - Company", "Role | Company" opening lines.
	jdTitleSeparator = regexp.MustCompile(`^(.{2,70}?)\s+(?:at|@|[-–—|])\s+(.{2,70})$`)

	seniorityWords = []string{"intern", "junior", "entry", "associate", "mid", "senior", "staff", "principal", "lead", "manager", "director", "vp", "head"}

	// Capitalized multi-word runs, the usual shape of product and
	// technology names in posting prose.
	capitalizedTerm = regexp.MustCompile(`\b[A-Z][a-zA-Z0-9+#.]*(?: [A-Z][a-zA-Z0-9+#.]*)+\b`)

	trailingClause = regexp.MustCompile(`\s*\(.*\)$`)
)

// ParseJobDescription builds a JobProfile from posting text. Best-effort
// like ParseResume: empty or shapeless input yields empty collections.
func ParseJobDescription(raw string) types.JobProfile {
	job := types.JobProfile{
		RequiredSkills:   []string{},
		PreferredSkills:  []string{},
		Responsibilities: []string{},
		Keywords:         []string{},
	}

	text := textnorm.PreprocessJobDescription(raw)
	if strings.TrimSpace(text) == "" {
		return job
	}

	lines := strings.Split(text, "\n")

	job.Title, job.Company = parseJDOpening(lines)
	job.SeniorityLevel = inferSeniority(job.Title)

	block := jdBlockNone
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if next, rest, ok := matchJDBlock(trimmed); ok {
			block = next
			if rest != "" {
				appendJDItems(&job, block, rest)
			}
			continue
		}

		if block == jdBlockNone {
			continue
		}
		appendJDItems(&job, block, trimmed)
	}

	job.Keywords = deriveKeywords(text, job)
	return job
}

// matchJDBlock reports the block a line introduces plus any inline
// content after a colon ("Requirements: Go, SQL, Docker").
func matchJDBlock(line string) (jdBlock, string, bool) {
	for _, h := range jdBlockHeaders {
		loc := h.pattern.FindStringIndex(line)
		if loc == nil {
			continue
		}
		rest := strings.TrimSpace(line[loc[1]:])
		rest = strings.TrimLeft(rest, ":- ")
		return h.block, rest, true
	}
	return jdBlockNone, "", false
}

func appendJDItems(job *types.JobProfile, block jdBlock, line string) {
	body := bulletMarker.ReplaceAllString(line, "")
	var items []string
	if block == jdBlockResponsibilities {
		items = []string{strings.TrimSpace(body)}
	} else {
		for _, token := range skillDelimiters.Split(body, -1) {
			if item := strings.TrimSpace(trailingClause.ReplaceAllString(token, "")); item != "" {
				items = append(items, item)
			}
		}
	}
	switch block {
	case jdBlockRequired:
		job.RequiredSkills = appendUnique(job.RequiredSkills, items)
	case jdBlockPreferred:
		job.PreferredSkills = appendUnique(job.PreferredSkills, items)
	case jdBlockResponsibilities:
		job.Responsibilities = appendUnique(job.Responsibilities, items)
	}
}

func appendUnique(dst []string, items []string) []string {
	for _, item := range items {
		if item == "" {
			continue
		}
		dup := false
		for _, have := range dst {
			if strings.EqualFold(have, item) {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, item)
		}
	}
	return dst
}

// parseJDOpening extracts title and company from the first non-empty
// line when it has a "Role at Company" shape.
func parseJDOpening(lines []string) (title, company string) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if m := jdTitleSeparator.FindStringSubmatch(trimmed); m != nil {
			return strings.TrimSpace(m[1]), strings.Trim(strings.TrimSpace(m[2]), ".")
		}
		if len(trimmed) <= 70 && !strings.HasSuffix(trimmed, ".") {
			return trimmed, ""
		}
		return "", ""
	}
	return "", ""
}

func inferSeniority(title string) string {
	lower := strings.ToLower(title)
	for _, word := range seniorityWords {
		if containsWord(lower, word) {
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
		leftOK := pos == 0 || !isWordChar(text[pos-1])
		rightOK := end == len(text) || !isWordChar(text[end])
		if leftOK && rightOK {
			return true
		}
		idx = pos + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// deriveKeywords merges capitalized multi-word terms from the prose with
// the required and preferred skill lists, case-insensitively deduped.
func deriveKeywords(text string, job types.JobProfile) []string {
	keywords := []string{}
	keywords = appendUnique(keywords, job.RequiredSkills)
	keywords = appendUnique(keywords, job.PreferredSkills)
	for _, term := range capitalizedTerm.FindAllString(text, -1) {
		if len(term) > 50 {
			continue
		}
		keywords = appendUnique(keywords, []string{term})
	}
	return keywords
}
