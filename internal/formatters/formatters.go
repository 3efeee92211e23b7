package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "MatchReport", &MatchTextFormatter{})
	registry.RegisterFormatter("markdown", "MatchReport", &MatchMarkdownFormatter{})
	registry.RegisterFormatter("text", "QuickScanReport", &QuickScanTextFormatter{})
	registry.RegisterFormatter("markdown", "QuickScanReport", &QuickScanMarkdownFormatter{})
	registry.RegisterFormatter("text", "JDValidation", &ValidationTextFormatter{})
	registry.RegisterFormatter("text", "CandidateProfile", &ProfileTextFormatter{})
	registry.RegisterFormatter("text", "DraftDocument", &DraftTextFormatter{})
	registry.RegisterFormatter("markdown", "DraftDocument", &DraftMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.MatchReport, *types.MatchReport:
		return "MatchReport"
	case types.QuickScanReport:
		return "QuickScanReport"
	case types.JDValidation:
		return "JDValidation"
	case types.CandidateProfile:
		return "CandidateProfile"
	case types.DraftDocument:
		return "DraftDocument"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

func asMatchReport(data any) (types.MatchReport, bool) {
	switch v := data.(type) {
	case types.MatchReport:
		return v, true
	case *types.MatchReport:
		if v != nil {
			return *v, true
		}
	}
	return types.MatchReport{}, false
}

// MatchTextFormatter handles text formatting for match reports
type MatchTextFormatter struct{}

func (mtf *MatchTextFormatter) Format(data any) (string, error) {
	result, ok := asMatchReport(data)
	if !ok {
		return "", fmt.Errorf("expected MatchReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS COMPATIBILITY ===\n")
	output.WriteString(fmt.Sprintf("Score: %d/100\n", result.ATS.Score))
	output.WriteString(fmt.Sprintf("Job family: %s (confidence %.2f)\n\n", result.Family.Family, result.Family.Confidence))

	b := result.ATS.Breakdown
	output.WriteString("Breakdown:\n")
	output.WriteString(fmt.Sprintf("  Skill overlap:    %d/100\n", b.SkillOverlap))
	output.WriteString(fmt.Sprintf("  Keyword coverage: %d/100\n", b.KeywordCoverage))
	output.WriteString(fmt.Sprintf("  Seniority match:  %d/100\n", b.SeniorityMatch))
	output.WriteString(fmt.Sprintf("  Impact strength:  %d/100\n\n", b.ImpactStrength))

	writeTermList(&output, "Matched keywords", result.ATS.MatchedKeywords)
	writeTermList(&output, "Missing keywords", result.ATS.MissingKeywords)

	writeBulletedSection(&output, "=== STRENGTHS ===", result.Strengths)
	writeBulletedSection(&output, "=== GAPS ===", result.Gaps)
	writeBulletedSection(&output, "=== SUGGESTIONS ===", result.ATS.Suggestions)

	if len(result.Previews) > 0 {
		output.WriteString("=== BULLET REWRITES ===\n")
		for i, preview := range result.Previews {
			output.WriteString(fmt.Sprintf("%d. Before: %s\n", i+1, preview.Original))
			output.WriteString(fmt.Sprintf("   After:  %s\n", preview.Improved))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (mtf *MatchTextFormatter) SupportedType() string {
	return "MatchReport"
}

// MatchMarkdownFormatter handles markdown formatting for match reports
type MatchMarkdownFormatter struct{}

func (mmf *MatchMarkdownFormatter) Format(data any) (string, error) {
	result, ok := asMatchReport(data)
	if !ok {
		return "", fmt.Errorf("expected MatchReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Compatibility Report\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100\n\n", result.ATS.Score))
	output.WriteString(fmt.Sprintf("**Job family:** %s (confidence %.2f)\n\n", result.Family.Family, result.Family.Confidence))

	b := result.ATS.Breakdown
	output.WriteString("## Breakdown\n\n")
	output.WriteString("| Component | Score |\n|---|---|\n")
	output.WriteString(fmt.Sprintf("| Skill overlap | %d |\n", b.SkillOverlap))
	output.WriteString(fmt.Sprintf("| Keyword coverage | %d |\n", b.KeywordCoverage))
	output.WriteString(fmt.Sprintf("| Seniority match | %d |\n", b.SeniorityMatch))
	output.WriteString(fmt.Sprintf("| Impact strength | %d |\n\n", b.ImpactStrength))

	if len(result.ATS.MatchedKeywords) > 0 {
		output.WriteString(fmt.Sprintf("**Matched keywords:** %s\n\n", strings.Join(result.ATS.MatchedKeywords, ", ")))
	}
	if len(result.ATS.MissingKeywords) > 0 {
		output.WriteString(fmt.Sprintf("**Missing keywords:** %s\n\n", strings.Join(result.ATS.MissingKeywords, ", ")))
	}

	writeMarkdownSection(&output, "Strengths", result.Strengths)
	writeMarkdownSection(&output, "Gaps", result.Gaps)
	writeMarkdownSection(&output, "Suggestions", result.ATS.Suggestions)

	if len(result.Previews) > 0 {
		output.WriteString("## Bullet Rewrites\n\n")
		for _, preview := range result.Previews {
			output.WriteString(fmt.Sprintf("- **Before:** %s\n", preview.Original))
			output.WriteString(fmt.Sprintf("  **After:** %s\n", preview.Improved))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (mmf *MatchMarkdownFormatter) SupportedType() string {
	return "MatchReport"
}

// QuickScanTextFormatter handles text formatting for quick scan reports
type QuickScanTextFormatter struct{}

func (qtf *QuickScanTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.QuickScanReport)
	if !ok {
		return "", fmt.Errorf("expected QuickScanReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== QUICK SCAN ===\n")
	if result.TargetRole.Title != "" {
		output.WriteString(fmt.Sprintf("Target role: %s", result.TargetRole.Title))
		if result.TargetRole.Seniority != "" {
			output.WriteString(fmt.Sprintf(" (%s)", result.TargetRole.Seniority))
		}
		output.WriteString("\n")
	}
	output.WriteString("\n")

	if len(result.Matches) == 0 {
		output.WriteString("No matching role profiles found.\n")
		return output.String(), nil
	}

	output.WriteString("=== ROLE MATCHES ===\n")
	for i, match := range result.Matches {
		output.WriteString(fmt.Sprintf("%d. %s (similarity %.2f", i+1, match.Role.Title, match.Similarity))
		if match.Aspirational {
			output.WriteString(", aspirational")
		}
		output.WriteString(")\n")
		output.WriteString(fmt.Sprintf("   ATS score: %d/100\n", match.ATS.Score))
		if len(match.ATS.MissingKeywords) > 0 {
			output.WriteString(fmt.Sprintf("   Missing: %s\n", strings.Join(match.ATS.MissingKeywords, ", ")))
		}
	}

	return output.String(), nil
}

func (qtf *QuickScanTextFormatter) SupportedType() string {
	return "QuickScanReport"
}

// QuickScanMarkdownFormatter handles markdown formatting for quick scan reports
type QuickScanMarkdownFormatter struct{}

func (qmf *QuickScanMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.QuickScanReport)
	if !ok {
		return "", fmt.Errorf("expected QuickScanReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Quick Scan\n\n")
	if result.TargetRole.Title != "" {
		output.WriteString(fmt.Sprintf("**Target role:** %s", result.TargetRole.Title))
		if result.TargetRole.Seniority != "" {
			output.WriteString(fmt.Sprintf(" (%s)", result.TargetRole.Seniority))
		}
		output.WriteString("\n\n")
	}

	if len(result.Matches) == 0 {
		output.WriteString("No matching role profiles found.\n")
		return output.String(), nil
	}

	output.WriteString("## Role Matches\n\n")
	for _, match := range result.Matches {
		output.WriteString(fmt.Sprintf("### %s\n\n", match.Role.Title))
		output.WriteString(fmt.Sprintf("**Similarity:** %.2f", match.Similarity))
		if match.Aspirational {
			output.WriteString(" (aspirational)")
		}
		output.WriteString("\n\n")
		output.WriteString(fmt.Sprintf("**ATS score:** %d/100\n\n", match.ATS.Score))
		if len(match.ATS.MissingKeywords) > 0 {
			output.WriteString(fmt.Sprintf("**Missing keywords:** %s\n\n", strings.Join(match.ATS.MissingKeywords, ", ")))
		}
	}

	return output.String(), nil
}

func (qmf *QuickScanMarkdownFormatter) SupportedType() string {
	return "QuickScanReport"
}

// ValidationTextFormatter handles text formatting for validation results
type ValidationTextFormatter struct{}

func (vtf *ValidationTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.JDValidation)
	if !ok {
		return "", fmt.Errorf("expected JDValidation, got %T", data)
	}

	var output strings.Builder

	if result.Valid {
		output.WriteString("Job description: VALID\n")
	} else {
		output.WriteString("Job description: INVALID\n")
		output.WriteString(fmt.Sprintf("Reason: %s\n", result.Reason))
	}

	for _, warning := range result.Warnings {
		output.WriteString(fmt.Sprintf("Warning: %s\n", warning))
	}

	return output.String(), nil
}

func (vtf *ValidationTextFormatter) SupportedType() string {
	return "JDValidation"
}

// ProfileTextFormatter handles text formatting for parsed candidate profiles
type ProfileTextFormatter struct{}

func (ptf *ProfileTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.CandidateProfile)
	if !ok {
		return "", fmt.Errorf("expected CandidateProfile, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== CANDIDATE PROFILE ===\n")
	if result.Name != "" {
		output.WriteString(fmt.Sprintf("Name: %s\n", result.Name))
	}
	if result.Email != "" {
		output.WriteString(fmt.Sprintf("Email: %s\n", result.Email))
	}
	if result.Phone != "" {
		output.WriteString(fmt.Sprintf("Phone: %s\n", result.Phone))
	}
	if result.Location != "" {
		output.WriteString(fmt.Sprintf("Location: %s\n", result.Location))
	}
	for _, link := range result.Links {
		output.WriteString(fmt.Sprintf("Link: %s\n", link))
	}
	output.WriteString("\n")

	if len(result.Skills) > 0 {
		output.WriteString(fmt.Sprintf("Skills: %s\n\n", strings.Join(result.Skills, ", ")))
	}

	if len(result.Experience) > 0 {
		output.WriteString("=== EXPERIENCE ===\n")
		for _, entry := range result.Experience {
			output.WriteString(entry.Title)
			if entry.Company != "" {
				output.WriteString(" — " + entry.Company)
			}
			output.WriteString("\n")
			for _, bullet := range entry.Bullets {
				output.WriteString(fmt.Sprintf("  - %s\n", bullet))
			}
		}
		output.WriteString("\n")
	}

	if len(result.Education) > 0 {
		output.WriteString("=== EDUCATION ===\n")
		for _, entry := range result.Education {
			output.WriteString(entry.School)
			if entry.Degree != "" {
				output.WriteString(" — " + entry.Degree)
			}
			if entry.Year != "" {
				output.WriteString(", " + entry.Year)
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (ptf *ProfileTextFormatter) SupportedType() string {
	return "CandidateProfile"
}

// DraftTextFormatter handles text formatting for generated drafts
type DraftTextFormatter struct{}

func (dtf *DraftTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.DraftDocument)
	if !ok {
		return "", fmt.Errorf("expected DraftDocument, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== SUMMARY ===\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	output.WriteString("=== COVER LETTER ===\n")
	for _, paragraph := range result.CoverLetter {
		output.WriteString(paragraph)
		output.WriteString("\n\n")
	}

	if len(result.Bullets) > 0 {
		output.WriteString("=== IMPROVED BULLETS ===\n")
		for _, bullet := range result.Bullets {
			output.WriteString(fmt.Sprintf("- %s\n", bullet))
		}
		output.WriteString("\n")
	}

	output.WriteString(fmt.Sprintf("(generated by %s provider)\n", result.Provider))

	return output.String(), nil
}

func (dtf *DraftTextFormatter) SupportedType() string {
	return "DraftDocument"
}

// DraftMarkdownFormatter handles markdown formatting for generated drafts
type DraftMarkdownFormatter struct{}

func (dmf *DraftMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.DraftDocument)
	if !ok {
		return "", fmt.Errorf("expected DraftDocument, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Summary\n\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	output.WriteString("# Cover Letter\n\n")
	for _, paragraph := range result.CoverLetter {
		output.WriteString(paragraph)
		output.WriteString("\n\n")
	}

	if len(result.Bullets) > 0 {
		output.WriteString("# Improved Bullets\n\n")
		for _, bullet := range result.Bullets {
			output.WriteString(fmt.Sprintf("- %s\n", bullet))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (dmf *DraftMarkdownFormatter) SupportedType() string {
	return "DraftDocument"
}

func writeTermList(output *strings.Builder, label string, terms []string) {
	if len(terms) == 0 {
		return
	}
	output.WriteString(fmt.Sprintf("%s: %s\n\n", label, strings.Join(terms, ", ")))
}

func writeBulletedSection(output *strings.Builder, header string, items []string) {
	if len(items) == 0 {
		return
	}
	output.WriteString(header + "\n")
	for _, item := range items {
		output.WriteString(fmt.Sprintf("- %s\n", item))
	}
	output.WriteString("\n")
}

func writeMarkdownSection(output *strings.Builder, header string, items []string) {
	if len(items) == 0 {
		return
	}
	output.WriteString("## " + header + "\n\n")
	for _, item := range items {
		output.WriteString(fmt.Sprintf("- %s\n", item))
	}
	output.WriteString("\n")
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
