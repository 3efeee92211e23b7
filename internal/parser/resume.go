// Package parser turns raw resume and job-description text into
// structured profiles. Parsing is best-effort: malformed or empty input
// yields a valid profile with empty collections, never an error.
package parser

import (
	"strings"

	"resumelens/internal/links"
	"resumelens/internal/textnorm"
	"resumelens/internal/types"
)

// ParseResume builds a CandidateProfile from resume text. Handles
// multi-column PDF extractions where sidebar content (contact, links,
// skills) is interleaved into the experience stream: bullets always
// attach to the most recently opened experience entry, and interleaved
// foreign content is skipped without discarding the bullets around it.
func ParseResume(raw string) types.CandidateProfile {
	profile := types.CandidateProfile{
		Skills:     []string{},
		Experience: []types.ExperienceEntry{},
		Education:  []types.EducationEntry{},
		Projects:   []types.ProjectEntry{},
	}

	text := textnorm.PreprocessResume(raw)
	if strings.TrimSpace(text) == "" {
		return profile
	}

	lines := strings.Split(text, "\n")

	profile.Name = extractName(lines)
	scanHeaderBlock(lines, &profile)

	st := &resumeState{profile: &profile}
	for _, line := range lines {
		st.consume(strings.TrimSpace(line))
	}
	st.flush()

	explicit := explicitLinks(text)
	profile.Links = links.Extract(text, explicit)

	return profile
}

// extractName takes the first non-empty line as the name candidate,
// unless it looks like a header or contact line.
func extractName(lines []string) string {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if matchSectionHeader(trimmed) != SectionNone || isContactLine(trimmed) {
			return ""
		}
		if len(trimmed) > 60 || len(strings.Fields(trimmed)) > 5 || strings.ContainsAny(trimmed, "0123456789") {
			return ""
		}
		return trimmed
	}
	return ""
}

// scanHeaderBlock pulls contact details from the first few lines.
func scanHeaderBlock(lines []string, profile *types.CandidateProfile) {
	seen := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if matchSectionHeader(trimmed) != SectionNone {
			break
		}
		if profile.Email == "" {
			profile.Email = emailPattern.FindString(trimmed)
		}
		if profile.Phone == "" {
			if m := phonePattern.FindString(trimmed); m != "" && !emailPattern.MatchString(m) {
				profile.Phone = strings.TrimSpace(m)
			}
		}
		if profile.Location == "" {
			profile.Location = locationPattern.FindString(trimmed)
		}
		seen++
		if seen >= 8 {
			break
		}
	}
}

// resumeState is the line-by-line accumulator for one parse.
type resumeState struct {
	profile *types.CandidateProfile

	section      Section
	summaryParts []string
	skillSeen    map[string]bool
	entryOpen    bool
	entry        types.ExperienceEntry
	projectOpen  bool
	project      types.ProjectEntry
	headerPassed bool
}

func (st *resumeState) consume(line string) {
	if line == "" {
		return
	}

	if sec := matchSectionHeader(line); sec != SectionNone {
		if sec == SectionExperience || sec == SectionProjects || sec == SectionEducation {
			st.flush()
		}
		st.section = sec
		st.headerPassed = true
		return
	}

	// Entry starts win over section state: multi-column sources can open
	// a new position while the tracker still thinks it is in a sidebar.
	// Summary prose is exempt so "spent a year at Acme" stays narrative.
	if title, company, location, ok := matchEntryStart(line); ok && st.headerPassed && st.section != SectionSummary {
		st.openEntry(title, company, location)
		return
	}

	isBullet := bulletMarker.MatchString(line)
	body := bulletMarker.ReplaceAllString(line, "")

	// Sidebar interleave: a bullet arriving while the tracker sits in a
	// sidebar section still belongs to the open experience entry.
	if isBullet && st.entryOpen && st.section != SectionExperience && st.section != SectionProjects {
		st.entry.Bullets = append(st.entry.Bullets, body)
		return
	}

	switch st.section {
	case SectionSkills:
		st.addSkills(body)
	case SectionSummary:
		st.summaryParts = append(st.summaryParts, line)
	case SectionEducation:
		if isBullet || !st.attachEducation(body) {
			st.attachBullet(body)
		}
	case SectionProjects:
		if isBullet && st.projectOpen {
			st.project.Bullets = append(st.project.Bullets, body)
		} else if !isBullet {
			st.flushProject()
			st.projectOpen = true
			st.project = types.ProjectEntry{Name: body, Bullets: []string{}}
		} else {
			st.attachBullet(body)
		}
	case SectionExperience:
		st.consumeExperienceLine(line, body, isBullet)
	}
}

func (st *resumeState) consumeExperienceLine(line, body string, isBullet bool) {
	if isBullet {
		st.attachBullet(body)
		return
	}

	// Interleaved contact fragments are foreign content, not bullets.
	if len(line) < 50 && isContactLine(line) && !dateRangePattern.MatchString(line) {
		return
	}

	if m := companyPrefix.FindStringSubmatch(line); m != nil {
		if st.entryOpen && st.entry.Company == "" {
			st.entry.Company = strings.TrimSpace(m[1])
		} else {
			st.openEntry("", strings.TrimSpace(m[1]), "")
		}
		return
	}
	if m := titlePrefix.FindStringSubmatch(line); m != nil {
		if st.entryOpen && st.entry.Title == "" && len(st.entry.Bullets) == 0 {
			st.entry.Title = strings.TrimSpace(m[1])
		} else {
			st.openEntry(strings.TrimSpace(m[1]), "", "")
		}
		return
	}

	// "Title — Company  Jan 2020 – Present" style entry line.
	if dr := dateRangePattern.FindString(line); dr != "" {
		head := strings.TrimSpace(strings.Replace(line, dr, "", 1))
		head = strings.Trim(head, " -–—|,")
		title, company := splitTitleCompany(head)
		st.openEntry(title, company, "")
		st.entry.Start, st.entry.End = splitDateRange(dr)
		return
	}

	// Anything else inside experience is attributed rather than lost.
	st.attachBullet(body)
}

// matchEntryStart recognizes "Title at Company, Location" entry lines.
func matchEntryStart(line string) (title, company, location string, ok bool) {
	if len(line) > 90 || bulletMarker.MatchString(line) || strings.HasSuffix(line, ".") {
		return "", "", "", false
	}
	m := titleAtCompany.FindStringSubmatch(line)
	if m == nil {
		return "", "", "", false
	}
	title = strings.TrimSpace(m[1])
	company = strings.TrimSpace(m[2])
	location = strings.TrimSpace(m[3])
	// Too many words before "at" means prose, not a title line, unless a
	// location token confirms the entry shape.
	if len(strings.Fields(title)) > 5 && location == "" {
		return "", "", "", false
	}
	return title, company, location, true
}

func splitTitleCompany(head string) (string, string) {
	for _, sep := range []string{" — ", " – ", " - ", " | ", ", ", " @ "} {
		if idx := strings.Index(head, sep); idx > 0 {
			return strings.TrimSpace(head[:idx]), strings.TrimSpace(head[idx+len(sep):])
		}
	}
	return head, ""
}

func splitDateRange(dr string) (string, string) {
	parts := strings.FieldsFunc(dr, func(r rune) bool {
		return r == '-' || r == '–' || r == '—'
	})
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(dr), ""
}

func (st *resumeState) openEntry(title, company, location string) {
	st.flushEntry()
	st.section = SectionExperience
	st.entryOpen = true
	st.entry = types.ExperienceEntry{
		Title:    title,
		Company:  company,
		Location: location,
		Bullets:  []string{},
	}
}

// attachBullet attaches text to the open entry, opening an anonymous one
// when experience content arrives before any entry line. Attribution
// favors inclusion over loss.
func (st *resumeState) attachBullet(body string) {
	if body == "" {
		return
	}
	if !st.entryOpen {
		if st.section != SectionExperience {
			return
		}
		st.entryOpen = true
		st.entry = types.ExperienceEntry{Bullets: []string{}}
	}
	st.entry.Bullets = append(st.entry.Bullets, body)
}

func (st *resumeState) addSkills(body string) {
	if st.skillSeen == nil {
		st.skillSeen = make(map[string]bool)
	}
	for _, token := range skillDelimiters.Split(body, -1) {
		skill := strings.TrimSpace(token)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if st.skillSeen[key] {
			continue
		}
		st.skillSeen[key] = true
		st.profile.Skills = append(st.profile.Skills, skill)
	}
}

// attachEducation parses a "School — Degree, Year" style line. Returns
// false when the line carries no recognizable education shape.
func (st *resumeState) attachEducation(line string) bool {
	if line == "" {
		return true
	}
	entry := types.EducationEntry{}
	entry.Year = lastYear(line)
	rest := line
	if entry.Year != "" {
		rest = strings.Replace(rest, entry.Year, "", 1)
		rest = strings.Trim(rest, " -–—|,()")
	}
	school, other := splitTitleCompany(rest)
	if isDegree(school) {
		school, other = other, school
	}
	entry.School = strings.TrimSpace(school)
	entry.Degree = strings.TrimSpace(other)
	if entry.School == "" && entry.Degree == "" && entry.Year == "" {
		return false
	}
	if entry.School == "" {
		entry.School = entry.Degree
		entry.Degree = ""
	}
	st.profile.Education = append(st.profile.Education, entry)
	return true
}

var degreeWords = []string{"bachelor", "master", "associate", "diploma", "b.s", "bs ", "bsc", "m.s", "ms ", "msc", "mba", "ph.d", "phd", "b.a", "ba ", "m.a"}

func isDegree(s string) bool {
	lower := strings.ToLower(s) + " "
	for _, word := range degreeWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func lastYear(line string) string {
	matches := yearPattern.FindAllString(line, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1]
}

func (st *resumeState) flushEntry() {
	if !st.entryOpen {
		return
	}
	st.profile.Experience = append(st.profile.Experience, st.entry)
	st.entryOpen = false
}

func (st *resumeState) flushProject() {
	if !st.projectOpen {
		return
	}
	st.profile.Projects = append(st.profile.Projects, st.project)
	st.projectOpen = false
}

func (st *resumeState) flush() {
	st.flushEntry()
	st.flushProject()
	if len(st.summaryParts) > 0 && st.profile.Summary == "" {
		st.profile.Summary = strings.Join(st.summaryParts, " ")
	}
}

// explicitLinks pulls URLs out of a [LINKS] tagged block.
func explicitLinks(text string) []string {
	m := linksTagPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return strings.Fields(m[1])
}
