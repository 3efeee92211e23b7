// Package roles holds the reference role-profile library used for
// resume-only quick scans, plus the matcher that picks profiles close
// to a candidate's apparent target role. The built-in library is
// immutable; an optional on-disk library can replace it at runtime via
// the watcher.
package roles

import "resumelens/internal/types"

// builtinLibrary is the compiled-in profile set, used when no library
// file is configured. Never mutated.
var builtinLibrary = []types.RoleProfile{
	{
		Title:     "Backend Engineer",
		Aliases:   []string{"Backend Developer", "Server Engineer", "API Engineer"},
		Category:  "engineering",
		Seniority: "mid",
		RequiredSkills: []types.WeightedTerm{
			{Term: "Go", Weight: 2}, {Term: "Python", Weight: 2}, {Term: "Java", Weight: 2},
			{Term: "SQL", Weight: 2.5}, {Term: "REST APIs", Weight: 2.5},
		},
		PreferredSkills: []types.WeightedTerm{
			{Term: "Docker", Weight: 1.5}, {Term: "Kubernetes", Weight: 1.5}, {Term: "Kafka", Weight: 1.5},
		},
		CommonKeywords: []types.WeightedTerm{
			{Term: "microservices", Weight: 2}, {Term: "distributed systems", Weight: 2},
			{Term: "PostgreSQL", Weight: 1.5}, {Term: "CI/CD", Weight: 1.5},
		},
		Responsibilities: []string{
			"Design and operate backend services",
			"Own APIs consumed by product teams",
			"Keep latency and error budgets in check",
		},
	},
	{
		Title:     "Senior Backend Engineer",
		Aliases:   []string{"Senior Software Engineer", "Staff Engineer"},
		Category:  "engineering",
		Seniority: "senior",
		RequiredSkills: []types.WeightedTerm{
			{Term: "Go", Weight: 2}, {Term: "SQL", Weight: 2}, {Term: "distributed systems", Weight: 3},
			{Term: "system design", Weight: 3},
		},
		PreferredSkills: []types.WeightedTerm{
			{Term: "Kubernetes", Weight: 1.5}, {Term: "Terraform", Weight: 1.5},
		},
		CommonKeywords: []types.WeightedTerm{
			{Term: "architecture", Weight: 2}, {Term: "mentoring", Weight: 2},
			{Term: "scalability", Weight: 2},
		},
		Responsibilities: []string{
			"Lead design reviews and set technical direction",
			"Mentor engineers across the team",
		},
	},
	{
		Title:     "Frontend Engineer",
		Aliases:   []string{"Frontend Developer", "UI Engineer", "Web Developer"},
		Category:  "engineering",
		Seniority: "mid",
		RequiredSkills: []types.WeightedTerm{
			{Term: "JavaScript", Weight: 2.5}, {Term: "TypeScript", Weight: 2.5},
			{Term: "React", Weight: 2.5}, {Term: "CSS", Weight: 2},
		},
		PreferredSkills: []types.WeightedTerm{
			{Term: "Next.js", Weight: 1.5}, {Term: "GraphQL", Weight: 1.5},
		},
		CommonKeywords: []types.WeightedTerm{
			{Term: "accessibility", Weight: 2}, {Term: "responsive design", Weight: 1.5},
			{Term: "web performance", Weight: 2},
		},
	},
	{
		Title:     "DevOps Engineer",
		Aliases:   []string{"Platform Engineer", "Site Reliability Engineer", "SRE"},
		Category:  "engineering",
		Seniority: "mid",
		RequiredSkills: []types.WeightedTerm{
			{Term: "Kubernetes", Weight: 3}, {Term: "Terraform", Weight: 2.5},
			{Term: "AWS", Weight: 2}, {Term: "Linux", Weight: 2},
		},
		PreferredSkills: []types.WeightedTerm{
			{Term: "Go", Weight: 1.5}, {Term: "Prometheus", Weight: 1.5},
		},
		CommonKeywords: []types.WeightedTerm{
			{Term: "infrastructure as code", Weight: 2.5}, {Term: "observability", Weight: 2},
			{Term: "incident response", Weight: 2},
		},
	},
	{
		Title:     "Data Analyst",
		Aliases:   []string{"Business Intelligence Analyst", "Analytics Specialist"},
		Category:  "business",
		Seniority: "mid",
		RequiredSkills: []types.WeightedTerm{
			{Term: "SQL", Weight: 3}, {Term: "Excel", Weight: 2}, {Term: "Python", Weight: 2},
		},
		PreferredSkills: []types.WeightedTerm{
			{Term: "Tableau", Weight: 1.5}, {Term: "Looker", Weight: 1.5},
		},
		CommonKeywords: []types.WeightedTerm{
			{Term: "dashboards", Weight: 2}, {Term: "reporting", Weight: 1.5},
			{Term: "data modeling", Weight: 2},
		},
	},
	{
		Title:     "Product Manager",
		Aliases:   []string{"Product Owner"},
		Category:  "product",
		Seniority: "mid",
		RequiredSkills: []types.WeightedTerm{
			{Term: "roadmap", Weight: 2.5}, {Term: "user research", Weight: 2.5},
			{Term: "stakeholder management", Weight: 2},
		},
		PreferredSkills: []types.WeightedTerm{
			{Term: "SQL", Weight: 1}, {Term: "A/B testing", Weight: 1.5},
		},
		CommonKeywords: []types.WeightedTerm{
			{Term: "prioritization", Weight: 2}, {Term: "discovery", Weight: 1.5},
			{Term: "metrics", Weight: 1.5},
		},
	},
	{
		Title:     "Account Executive",
		Aliases:   []string{"Sales Executive", "Sales Representative"},
		Category:  "sales",
		Seniority: "mid",
		RequiredSkills: []types.WeightedTerm{
			{Term: "prospecting", Weight: 2.5}, {Term: "CRM", Weight: 2},
			{Term: "negotiation", Weight: 2}, {Term: "Salesforce", Weight: 2},
		},
		PreferredSkills: []types.WeightedTerm{
			{Term: "outbound", Weight: 1.5},
		},
		CommonKeywords: []types.WeightedTerm{
			{Term: "quota", Weight: 2.5}, {Term: "pipeline", Weight: 2},
			{Term: "closing", Weight: 2},
		},
	},
	{
		Title:     "Marketing Manager",
		Aliases:   []string{"Growth Marketing Manager", "Digital Marketing Manager"},
		Category:  "marketing",
		Seniority: "senior",
		RequiredSkills: []types.WeightedTerm{
			{Term: "campaign management", Weight: 2.5}, {Term: "SEO", Weight: 2},
			{Term: "content strategy", Weight: 2}, {Term: "analytics", Weight: 2},
		},
		PreferredSkills: []types.WeightedTerm{
			{Term: "paid media", Weight: 1.5}, {Term: "email marketing", Weight: 1.5},
		},
		CommonKeywords: []types.WeightedTerm{
			{Term: "brand", Weight: 2}, {Term: "demand generation", Weight: 2},
			{Term: "conversion", Weight: 1.5},
		},
	},
	{
		Title:     "Financial Analyst",
		Aliases:   []string{"FP&A Analyst", "Finance Associate"},
		Category:  "finance",
		Seniority: "mid",
		RequiredSkills: []types.WeightedTerm{
			{Term: "Excel", Weight: 2.5}, {Term: "forecasting", Weight: 2.5},
			{Term: "budgeting", Weight: 2}, {Term: "financial modeling", Weight: 2.5},
		},
		PreferredSkills: []types.WeightedTerm{
			{Term: "SQL", Weight: 1.5}, {Term: "GAAP", Weight: 1.5},
		},
		CommonKeywords: []types.WeightedTerm{
			{Term: "variance analysis", Weight: 2}, {Term: "reporting", Weight: 1.5},
		},
	},
	{
		Title:     "Operations Manager",
		Aliases:   []string{"Business Operations Manager"},
		Category:  "operations",
		Seniority: "senior",
		RequiredSkills: []types.WeightedTerm{
			{Term: "process improvement", Weight: 2.5}, {Term: "vendor management", Weight: 2},
			{Term: "project management", Weight: 2},
		},
		PreferredSkills: []types.WeightedTerm{
			{Term: "six sigma", Weight: 1.5}, {Term: "SQL", Weight: 1},
		},
		CommonKeywords: []types.WeightedTerm{
			{Term: "logistics", Weight: 2}, {Term: "forecasting", Weight: 1.5},
			{Term: "kpis", Weight: 1.5},
		},
	},
}

// BuiltinLibrary returns the compiled-in profile set.
func BuiltinLibrary() []types.RoleProfile {
	return builtinLibrary
}
