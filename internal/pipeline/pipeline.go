// Package pipeline is the synchronous facade over the profile
// extraction and scoring core. Every method is safe for concurrent use:
// the only shared state is the read-mostly role library.
package pipeline

import (
	"strings"

	"resumelens/internal/analyze"
	"resumelens/internal/parser"
	"resumelens/internal/rewrite"
	"resumelens/internal/roles"
	"resumelens/internal/score"
	"resumelens/internal/types"
)

// Pipeline bundles the role library and scoring weights behind the
// match and quick-scan operations.
type Pipeline struct {
	library *roles.Library
	weights score.Weights
}

// New builds a pipeline. A nil library falls back to the built-in role
// profiles.
func New(library *roles.Library, weights score.Weights) *Pipeline {
	if library == nil {
		library = roles.NewLibrary(roles.BuiltinLibrary())
	}
	zero := score.Weights{}
	if weights == zero {
		weights = score.DefaultWeights()
	}
	return &Pipeline{library: library, weights: weights}
}

// Library exposes the role library, for the watcher to target.
func (p *Pipeline) Library() *roles.Library {
	return p.library
}

// Validate screens job-description text without running the rest of the
// pipeline.
func (p *Pipeline) Validate(jobText string) types.JDValidation {
	return parser.ValidateJobDescription(jobText)
}

// ParseResume exposes resume parsing on its own.
func (p *Pipeline) ParseResume(resumeText string) types.CandidateProfile {
	return parser.ParseResume(resumeText)
}

// Match scores a resume against a job description. When the job text
// fails validation the report is nil and the validation result says
// why; that is the pipeline's only rejection path.
func (p *Pipeline) Match(resumeText, jobText string) (*types.MatchReport, types.JDValidation) {
	validation := parser.ValidateJobDescription(jobText)
	if !validation.Valid {
		return nil, validation
	}

	candidate := parser.ParseResume(resumeText)
	job := parser.ParseJobDescription(jobText)
	family := analyze.ClassifyJobFamily(candidate, job)
	ats := score.ScoreATSWeighted(candidate, job, p.weights)

	report := &types.MatchReport{
		Candidate: candidate,
		Job:       job,
		Family:    family,
		ATS:       ats,
		Strengths: score.GenerateStrengths(candidate, job),
		Gaps:      score.GenerateGaps(candidate, job, ats.MissingKeywords),
		Previews:  score.GenerateRewritePreviews(candidate),
	}
	return report, validation
}

// QuickScan analyzes a resume with no job description: the candidate is
// scored against the closest role profiles from the library.
func (p *Pipeline) QuickScan(resumeText string, limit int) types.QuickScanReport {
	candidate := parser.ParseResume(resumeText)
	target := roles.ExtractTargetRole(candidate)

	report := types.QuickScanReport{
		Candidate:  candidate,
		TargetRole: target,
		Matches:    []types.RoleScan{},
	}

	for _, match := range p.library.FindMatchingProfiles(target.Title, target.Skills, target.Seniority, "", limit) {
		job := roles.RoleProfileToJobProfile(match.Profile)
		report.Matches = append(report.Matches, types.RoleScan{
			Role:         match.Profile,
			Similarity:   match.Similarity,
			Aspirational: match.Aspirational,
			ATS:          score.ScoreATSWeighted(candidate, job, p.weights),
		})
	}
	return report
}

// BuildDraftRequest assembles the typed inputs for the generation
// collaborator from a finished match report: a strategy-drafted summary
// and cover letter plus the rewrite previews, nothing free-form.
func (p *Pipeline) BuildDraftRequest(report *types.MatchReport) types.DraftRequest {
	strategy := rewrite.GetStrategy(report.Family.Family)
	params := draftParams(report)

	return types.DraftRequest{
		Candidate:   report.Candidate,
		Job:         report.Job,
		Family:      report.Family,
		Summary:     strategy.DraftSummary(params),
		CoverLetter: strategy.DraftCoverLetter(params),
		Previews:    report.Previews,
	}
}

// draftParams derives voice inputs from the report. Top skills prefer
// the job-matched ones so the draft leads with what the posting wants.
func draftParams(report *types.MatchReport) rewrite.Params {
	top := []string{}
	for _, skill := range report.Candidate.Skills {
		for _, matched := range report.ATS.MatchedKeywords {
			if strings.EqualFold(skill, matched) {
				top = append(top, skill)
				break
			}
		}
	}
	for _, skill := range report.Candidate.Skills {
		if len(top) >= 5 {
			break
		}
		if !containsFold(top, skill) {
			top = append(top, skill)
		}
	}

	var highlights []string
	for _, entry := range report.Candidate.Experience {
		for _, bullet := range entry.Bullets {
			s := analyze.AnalyzeBullet(bullet)
			if s.HasMetric || s.HasActionVerb {
				highlights = append(highlights, bullet)
			}
		}
	}
	if len(highlights) > 3 {
		highlights = highlights[:3]
	}

	return rewrite.Params{
		Name:       report.Candidate.Name,
		Title:      report.Job.Title,
		Company:    report.Job.Company,
		TopSkills:  top,
		Years:      score.EstimateYears(report.Candidate),
		Highlights: highlights,
	}
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
