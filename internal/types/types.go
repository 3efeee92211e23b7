package types

// CandidateProfile is the structured result of parsing resume text.
// Collections are always non-nil except Links, where nil means "no links
// present in the source" (as opposed to an empty list) so downstream
// rendering can omit the section entirely.
type CandidateProfile struct {
	Name       string            `json:"name"`
	Headline   string            `json:"headline,omitempty"`
	Summary    string            `json:"summary,omitempty"`
	Email      string            `json:"email,omitempty"`
	Phone      string            `json:"phone,omitempty"`
	Location   string            `json:"location,omitempty"`
	Links      []string          `json:"links,omitempty"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Projects   []ProjectEntry    `json:"projects"`
}

// ExperienceEntry is one position in a candidate's work history.
// Entries with no bullets are valid (title/company only).
type ExperienceEntry struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location string   `json:"location,omitempty"`
	Start    string   `json:"start,omitempty"` // free text, not necessarily a parseable date
	End      string   `json:"end,omitempty"`
	Bullets  []string `json:"bullets"`
}

// EducationEntry pairs a school with an optional degree and year.
type EducationEntry struct {
	School string `json:"school"`
	Degree string `json:"degree,omitempty"`
	Year   string `json:"year,omitempty"`
}

// ProjectEntry is a named project with optional description bullets.
type ProjectEntry struct {
	Name    string   `json:"name"`
	Bullets []string `json:"bullets"`
}

// JobProfile is the structured result of parsing job-description text.
// All lists default to empty, never nil.
type JobProfile struct {
	Title            string   `json:"title,omitempty"`
	Company          string   `json:"company,omitempty"`
	RequiredSkills   []string `json:"requiredSkills"`
	PreferredSkills  []string `json:"preferredSkills"`
	Responsibilities []string `json:"responsibilities"`
	Keywords         []string `json:"keywords"`
	SeniorityLevel   string   `json:"seniorityLevel,omitempty"`
}

// MetricType classifies the quantitative evidence found in a bullet.
type MetricType string

const (
	MetricNone       MetricType = "none"
	MetricPercentage MetricType = "percentage"
	MetricCurrency   MetricType = "currency"
	MetricCount      MetricType = "count"
)

// BulletSignals holds the rhetorical signals extracted from one bullet string.
type BulletSignals struct {
	HasActionVerb     bool       `json:"hasActionVerb"`
	ActionVerb        string     `json:"actionVerb,omitempty"` // lowercased, empty when absent
	IsVague           bool       `json:"isVague"`
	HasMetric         bool       `json:"hasMetric"`
	MetricType        MetricType `json:"metricType"`
	HasDanglingEnding bool       `json:"hasDanglingEnding"`
	HasScopeNoun      bool       `json:"hasScopeNoun"`
	ScopeNouns        []string   `json:"scopeNouns,omitempty"`
	IsTooLong         bool       `json:"isTooLong"`
	IsTooShort        bool       `json:"isTooShort"`
}

// JobFamily is a coarse occupational category used to select rewrite voice.
type JobFamily string

const (
	FamilyEngineering JobFamily = "engineering"
	FamilySales       JobFamily = "sales"
	FamilyMarketing   JobFamily = "marketing"
	FamilyFinance     JobFamily = "finance"
	FamilyOperations  JobFamily = "operations"
	FamilyBusiness    JobFamily = "business"
	FamilyProduct     JobFamily = "product"
	FamilyHealthcare  JobFamily = "healthcare"
	FamilyEducation   JobFamily = "education"
	FamilyGeneral     JobFamily = "general"
)

// JobFamilyResult is the classifier output.
type JobFamilyResult struct {
	Family     JobFamily `json:"family"`
	Confidence float64   `json:"confidence"` // in [0,1]
}

// StrategyKey selects one of the five rewrite strategies. Coarser than
// JobFamily: several families share the business strategy.
type StrategyKey string

const (
	StrategyEngineering StrategyKey = "engineering"
	StrategySales       StrategyKey = "sales"
	StrategyMarketing   StrategyKey = "marketing"
	StrategyFinance     StrategyKey = "finance"
	StrategyBusiness    StrategyKey = "business"
)

// ScoreBreakdown is the 4-part component view of an ATS score.
// Every field is in [0,100] and never NaN.
type ScoreBreakdown struct {
	SkillOverlap    int `json:"skillOverlap"`
	KeywordCoverage int `json:"keywordCoverage"`
	SeniorityMatch  int `json:"seniorityMatch"`
	ImpactStrength  int `json:"impactStrength"`
}

// ATSResult is the compatibility score between a candidate and a job.
type ATSResult struct {
	Score           int            `json:"score"` // in [0,100]
	Breakdown       ScoreBreakdown `json:"breakdown"`
	MatchedKeywords []string       `json:"matchedKeywords"` // case preserved from the job side
	MissingKeywords []string       `json:"missingKeywords"`
	Suggestions     []string       `json:"suggestions"`
}

// RewritePreview is an original/improved bullet pair sourced from the
// candidate's own text.
type RewritePreview struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
}

// JDValidation is the typed result of job-description input validation.
// It is the only user-visible rejection this pipeline produces.
type JDValidation struct {
	Valid    bool     `json:"valid"`
	Reason   string   `json:"reason,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// WeightedTerm is a lexicon or role-profile term with a relevance weight.
type WeightedTerm struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// RoleProfile is precomputed reference data describing a typical role,
// used for resume-only quick scans when no job description is supplied.
// Loaded once per process and never mutated at request time.
type RoleProfile struct {
	Title            string         `json:"title"`
	Aliases          []string       `json:"aliases,omitempty"`
	Category         string         `json:"category"`
	Seniority        string         `json:"seniority"`
	RequiredSkills   []WeightedTerm `json:"requiredSkills"`
	PreferredSkills  []WeightedTerm `json:"preferredSkills"`
	CommonKeywords   []WeightedTerm `json:"commonKeywords"`
	Responsibilities []string       `json:"responsibilities,omitempty"`
}

// TargetRole is the role a candidate appears to be aiming for, inferred
// from their most recent title and aggregate skills.
type TargetRole struct {
	Title     string   `json:"title"`
	Seniority string   `json:"seniority"`
	Skills    []string `json:"skills"`
}

// RoleMatch pairs a matched role profile with its similarity score and
// whether the match is aspirational (adjacent, slightly senior).
type RoleMatch struct {
	Profile      RoleProfile `json:"profile"`
	Similarity   float64     `json:"similarity"`
	Aspirational bool        `json:"aspirational"`
}

// MatchReport is the full product of scoring a resume against a job
// description: the ATS result plus the derived narrative pieces.
type MatchReport struct {
	Candidate CandidateProfile `json:"candidate"`
	Job       JobProfile       `json:"job"`
	Family    JobFamilyResult  `json:"family"`
	ATS       ATSResult        `json:"ats"`
	Strengths []string         `json:"strengths"`
	Gaps      []string         `json:"gaps"`
	Previews  []RewritePreview `json:"previews"`
}

// QuickScanReport is the resume-only analysis produced when no job
// description is available: the candidate scored against matching role
// profiles from the reference library.
type QuickScanReport struct {
	Candidate  CandidateProfile `json:"candidate"`
	TargetRole TargetRole       `json:"targetRole"`
	Matches    []RoleScan       `json:"matches"`
}

// RoleScan is one role-profile match inside a quick scan, with the ATS
// result of scoring the candidate against that profile.
type RoleScan struct {
	Role         RoleProfile `json:"role"`
	Similarity   float64     `json:"similarity"`
	Aspirational bool        `json:"aspirational"`
	ATS          ATSResult   `json:"ats"`
}

// DraftRequest is the narrow contract handed to the generation
// collaborator: typed, validated inputs and nothing else.
type DraftRequest struct {
	Candidate   CandidateProfile `json:"candidate"`
	Job         JobProfile       `json:"job"`
	Family      JobFamilyResult  `json:"family"`
	Summary     string           `json:"summary"`     // strategy-drafted summary
	CoverLetter []string         `json:"coverLetter"` // strategy-drafted paragraphs
	Previews    []RewritePreview `json:"previews"`
}

// DraftDocument is the generation collaborator's output.
type DraftDocument struct {
	Summary     string   `json:"summary"`
	CoverLetter []string `json:"coverLetter"`
	Bullets     []string `json:"bullets,omitempty"`
	Provider    string   `json:"provider"`
}
