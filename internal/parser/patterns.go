package parser

import (
	"regexp"
	"strings"
)

// Section is a logical region of a resume.
type Section string

const (
	SectionNone           Section = ""
	SectionSummary        Section = "summary"
	SectionSkills         Section = "skills"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionLinks          Section = "links"
)

// sectionVocabulary maps lowercased header text to its section. Matching
// is exact on the header line (after trimming a trailing colon), which
// keeps prose like "Roles and responsibilities:" or "Company:" from being
// mistaken for a header.
var sectionVocabulary = map[string]Section{
	"summary":              SectionSummary,
	"professional summary": SectionSummary,
	"profile":              SectionSummary,
	"about":                SectionSummary,
	"about me":             SectionSummary,
	"objective":            SectionSummary,
	"skills":               SectionSkills,
	"technical skills":     SectionSkills,
	"core skills":          SectionSkills,
	"core competencies":    SectionSkills,
	"technologies":         SectionSkills,
	"experience":           SectionExperience,
	"work experience":      SectionExperience,
	"professional experience": SectionExperience,
	"employment":           SectionExperience,
	"employment history":   SectionExperience,
	"work history":         SectionExperience,
	"education":            SectionEducation,
	"academic background":  SectionEducation,
	"qualifications":       SectionEducation,
	"projects":             SectionProjects,
	"personal projects":    SectionProjects,
	"selected projects":    SectionProjects,
	"certifications":       SectionCertifications,
	"certificates":         SectionCertifications,
	"licenses":             SectionCertifications,
	"links":                SectionLinks,
	"profiles":             SectionLinks,
	"online presence":      SectionLinks,
}

const maxHeaderLen = 40

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Digit-grouped numbers with an optional +CC prefix, covering the
	// common US/UK/AU/NZ/CA layouts.
	phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[ .-]?)?(?:\(\d{2,4}\)[ .-]?)?\d{3,4}[ .-]\d{3,4}(?:[ .-]\d{0,4})?`)

	// "City, Region" or "City, Country" token: two capitalized words
	// around a comma, optionally more.
	locationPattern = regexp.MustCompile(`\b[A-Z][a-zA-Z.]+(?: [A-Z][a-zA-Z.]+)?,\s*[A-Z][a-zA-Z.]+(?: [A-Z][a-zA-Z.]+)?\b`)

	bulletMarker = regexp.MustCompile(`^\s*[-•*▪◦‣·+]\s+`)

	yearPattern      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	dateRangePattern = regexp.MustCompile(`(?i)\b(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?(?:19|20)\d{2}\s*[-–—to]+\s*(?:(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?(?:19|20)\d{2}|present|current|now)`)

	// "Title at Company" and "Title at Company, Location". Tolerates a
	// misspelled title word because only the " at " pivot is structural.
	titleAtCompany = regexp.MustCompile(`^(.{2,60}?)\s+at\s+([A-Z][^,]{1,60}?)(?:,\s*(.+))?$`)

	companyPrefix = regexp.MustCompile(`^(?i:company)\s*:\s*(.+)$`)
	titlePrefix   = regexp.MustCompile(`^(?i:(?:job\s+)?title|role|position)\s*:\s*(.+)$`)

	skillDelimiters = regexp.MustCompile(`[,|•·;]+`)

	linksTagPattern = regexp.MustCompile(`(?is)\[LINKS\](.*?)(?:\[/LINKS\]|\z)`)
)

// matchSectionHeader reports the section a line introduces, or
// SectionNone. Headers must be short, title-cased or uppercase, and in
// the closed vocabulary; anything with content after a colon is prose.
func matchSectionHeader(line string) Section {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > maxHeaderLen {
		return SectionNone
	}
	if idx := strings.Index(trimmed, ":"); idx >= 0 {
		if strings.TrimSpace(trimmed[idx+1:]) != "" {
			return SectionNone
		}
		trimmed = strings.TrimSpace(trimmed[:idx])
	}
	if !isTitleCasedOrUpper(trimmed) {
		return SectionNone
	}
	sec, ok := sectionVocabulary[strings.ToLower(trimmed)]
	if !ok {
		return SectionNone
	}
	return sec
}

func isTitleCasedOrUpper(s string) bool {
	for _, word := range strings.Fields(s) {
		first := rune(word[0])
		if first >= 'a' && first <= 'z' {
			return false
		}
	}
	return true
}

// isContactLine reports whether a line is header-block contact content
// (email, phone or location) rather than a name or a bullet.
func isContactLine(line string) bool {
	return emailPattern.MatchString(line) ||
		phonePattern.MatchString(line) ||
		locationPattern.MatchString(line)
}
