package analyze

import (
	"strings"

	"resumelens/internal/types"
)

// familyLexicons holds the weighted term table per job family. Weights
// reflect term specificity: "kubernetes" is a far stronger engineering
// signal than "software".
var familyLexicons = map[types.JobFamily][]types.WeightedTerm{
	types.FamilyEngineering: {
		{Term: "software engineer", Weight: 3}, {Term: "engineer", Weight: 2},
		{Term: "developer", Weight: 2}, {Term: "backend", Weight: 2},
		{Term: "frontend", Weight: 2}, {Term: "full stack", Weight: 2},
		{Term: "devops", Weight: 2.5}, {Term: "sre", Weight: 2.5},
		{Term: "kubernetes", Weight: 2.5}, {Term: "docker", Weight: 2},
		{Term: "python", Weight: 2}, {Term: "java", Weight: 2},
		{Term: "golang", Weight: 2.5}, {Term: "typescript", Weight: 2},
		{Term: "javascript", Weight: 2}, {Term: "react", Weight: 2},
		{Term: "api", Weight: 1.5}, {Term: "apis", Weight: 1.5},
		{Term: "microservices", Weight: 2}, {Term: "sql", Weight: 1.5},
		{Term: "postgresql", Weight: 2}, {Term: "aws", Weight: 1.5},
		{Term: "distributed systems", Weight: 2.5}, {Term: "ci/cd", Weight: 2},
		{Term: "infrastructure", Weight: 1.5}, {Term: "architecture", Weight: 1.5},
	},
	types.FamilySales: {
		{Term: "sales", Weight: 3}, {Term: "account executive", Weight: 3},
		{Term: "account manager", Weight: 2.5}, {Term: "business development", Weight: 2.5},
		{Term: "quota", Weight: 2.5}, {Term: "pipeline", Weight: 1.5},
		{Term: "crm", Weight: 2}, {Term: "salesforce", Weight: 2},
		{Term: "prospecting", Weight: 2.5}, {Term: "closing", Weight: 2},
		{Term: "territory", Weight: 2}, {Term: "revenue", Weight: 1.5},
		{Term: "negotiation", Weight: 1.5}, {Term: "outbound", Weight: 2},
		{Term: "lead generation", Weight: 2},
	},
	types.FamilyMarketing: {
		{Term: "marketing", Weight: 3}, {Term: "brand", Weight: 2},
		{Term: "campaign", Weight: 2.5}, {Term: "campaigns", Weight: 2.5},
		{Term: "seo", Weight: 2.5}, {Term: "sem", Weight: 2.5},
		{Term: "content", Weight: 1.5}, {Term: "social media", Weight: 2.5},
		{Term: "copywriting", Weight: 2.5}, {Term: "analytics", Weight: 1.5},
		{Term: "growth", Weight: 1.5}, {Term: "email marketing", Weight: 2.5},
		{Term: "demand generation", Weight: 2.5}, {Term: "paid media", Weight: 2.5},
	},
	types.FamilyFinance: {
		{Term: "finance", Weight: 3}, {Term: "financial", Weight: 2.5},
		{Term: "accounting", Weight: 3}, {Term: "accountant", Weight: 3},
		{Term: "audit", Weight: 2.5}, {Term: "cpa", Weight: 3},
		{Term: "forecasting", Weight: 2}, {Term: "budgeting", Weight: 2},
		{Term: "fp&a", Weight: 3}, {Term: "reconciliation", Weight: 2.5},
		{Term: "gaap", Weight: 3}, {Term: "treasury", Weight: 2.5},
		{Term: "valuation", Weight: 2.5}, {Term: "excel", Weight: 1},
	},
	types.FamilyOperations: {
		{Term: "operations", Weight: 3}, {Term: "logistics", Weight: 2.5},
		{Term: "supply chain", Weight: 3}, {Term: "procurement", Weight: 2.5},
		{Term: "warehouse", Weight: 2.5}, {Term: "fulfillment", Weight: 2.5},
		{Term: "inventory", Weight: 2}, {Term: "process improvement", Weight: 2},
		{Term: "lean", Weight: 2}, {Term: "six sigma", Weight: 2.5},
		{Term: "vendor management", Weight: 2},
	},
	types.FamilyBusiness: {
		{Term: "business analyst", Weight: 3}, {Term: "consultant", Weight: 2.5},
		{Term: "strategy", Weight: 2}, {Term: "project manager", Weight: 2.5},
		{Term: "program manager", Weight: 2.5}, {Term: "stakeholder", Weight: 1.5},
		{Term: "requirements gathering", Weight: 2}, {Term: "change management", Weight: 2},
		{Term: "pmp", Weight: 2.5}, {Term: "agile", Weight: 1},
	},
	types.FamilyProduct: {
		{Term: "product manager", Weight: 3}, {Term: "product owner", Weight: 3},
		{Term: "roadmap", Weight: 2.5}, {Term: "user research", Weight: 2.5},
		{Term: "a/b testing", Weight: 2.5}, {Term: "product strategy", Weight: 2.5},
		{Term: "discovery", Weight: 1.5}, {Term: "backlog", Weight: 2},
		{Term: "okrs", Weight: 1.5},
	},
	types.FamilyHealthcare: {
		{Term: "nurse", Weight: 3}, {Term: "nursing", Weight: 3},
		{Term: "clinical", Weight: 2.5}, {Term: "patient", Weight: 2.5},
		{Term: "healthcare", Weight: 3}, {Term: "medical", Weight: 2.5},
		{Term: "physician", Weight: 3}, {Term: "hipaa", Weight: 2.5},
		{Term: "emr", Weight: 2.5}, {Term: "pharmacy", Weight: 2.5},
	},
	types.FamilyEducation: {
		{Term: "teacher", Weight: 3}, {Term: "teaching", Weight: 3},
		{Term: "curriculum", Weight: 2.5}, {Term: "instruction", Weight: 2},
		{Term: "classroom", Weight: 2.5}, {Term: "students", Weight: 2},
		{Term: "tutoring", Weight: 2.5}, {Term: "lesson planning", Weight: 2.5},
		{Term: "k-12", Weight: 2.5},
	},
	types.FamilyGeneral: {
		{Term: "coordinator", Weight: 1.5}, {Term: "assistant", Weight: 1.5},
		{Term: "administrative", Weight: 2}, {Term: "customer service", Weight: 2},
		{Term: "scheduling", Weight: 1.5}, {Term: "data entry", Weight: 2},
	},
}

// familyToStrategy collapses the display-level family set onto the five
// rewrite voices.
var familyToStrategy = map[types.JobFamily]types.StrategyKey{
	types.FamilyEngineering: types.StrategyEngineering,
	types.FamilySales:       types.StrategySales,
	types.FamilyMarketing:   types.StrategyMarketing,
	types.FamilyFinance:     types.StrategyFinance,
	types.FamilyOperations:  types.StrategyBusiness,
	types.FamilyBusiness:    types.StrategyBusiness,
	types.FamilyProduct:     types.StrategyBusiness,
	types.FamilyHealthcare:  types.StrategyBusiness,
	types.FamilyEducation:   types.StrategyBusiness,
	types.FamilyGeneral:     types.StrategyBusiness,
}

const lowConfidence = 0.1

// ClassifyJobFamily scores the combined candidate/job vocabulary against
// each family lexicon and returns the best match. All-empty input and
// exact ties resolve to the general family with low confidence.
func ClassifyJobFamily(candidate types.CandidateProfile, job types.JobProfile) types.JobFamilyResult {
	corpus := buildCorpus(candidate, job)
	if corpus == "" {
		return types.JobFamilyResult{Family: types.FamilyGeneral, Confidence: lowConfidence}
	}

	scores := make(map[types.JobFamily]float64, len(familyLexicons))
	var total float64
	for family, lexicon := range familyLexicons {
		var score float64
		for _, term := range lexicon {
			if containsWord(corpus, term.Term) {
				score += term.Weight
			}
		}
		scores[family] = score
		total += score
	}

	best := types.FamilyGeneral
	var bestScore float64
	tied := false
	for _, family := range orderedFamilies {
		s := scores[family]
		if s > bestScore {
			best, bestScore, tied = family, s, false
		} else if s == bestScore && s > 0 && family != best {
			tied = true
		}
	}

	if bestScore == 0 || tied {
		return types.JobFamilyResult{Family: types.FamilyGeneral, Confidence: lowConfidence}
	}

	confidence := bestScore / total
	if confidence > 1 {
		confidence = 1
	}
	return types.JobFamilyResult{Family: best, Confidence: confidence}
}

// orderedFamilies pins map iteration so classification is deterministic.
var orderedFamilies = []types.JobFamily{
	types.FamilyEngineering, types.FamilySales, types.FamilyMarketing,
	types.FamilyFinance, types.FamilyOperations, types.FamilyBusiness,
	types.FamilyProduct, types.FamilyHealthcare, types.FamilyEducation,
	types.FamilyGeneral,
}

// FamilyToStrategyKey maps a display family onto its rewrite voice.
// Unknown families fall through to business, the broadest voice.
func FamilyToStrategyKey(family types.JobFamily) types.StrategyKey {
	if key, ok := familyToStrategy[family]; ok {
		return key
	}
	return types.StrategyBusiness
}

func buildCorpus(candidate types.CandidateProfile, job types.JobProfile) string {
	var parts []string
	add := func(ss ...string) {
		for _, s := range ss {
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, strings.ToLower(s))
			}
		}
	}

	add(candidate.Headline)
	add(candidate.Skills...)
	for _, entry := range candidate.Experience {
		add(entry.Title)
	}
	add(job.Title)
	add(job.RequiredSkills...)
	add(job.PreferredSkills...)
	add(job.Keywords...)

	return strings.Join(parts, " ")
}
