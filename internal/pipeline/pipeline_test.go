package pipeline

import (
	"strings"
	"testing"

	"resumelens/internal/score"
	"resumelens/internal/types"
)

const testResume = `Jane Doe
jane.doe@example.com

Summary
Backend engineer focused on payment infrastructure.

Experience
Senior Backend Engineer at Stripe, Seattle
- Led migration of billing pipeline to event-driven architecture
- Reduced settlement latency by 40%
Backend Engineer at Initech, Portland
- Built fraud detection service processing 2M events per day

Skills
Go, PostgreSQL, Kafka, Docker

Education
Oregon State University — B.S. Computer Science, 2014
`

const testJD = `Senior Backend Engineer at BigCo

Responsibilities:
- Design and operate payment APIs
- Mentor engineers on the team

Requirements: Go, PostgreSQL, Kubernetes
Nice to have: Kafka
`

func TestMatch(t *testing.T) {
	p := New(nil, score.Weights{})

	report, validation := p.Match(testResume, testJD)
	if !validation.Valid {
		t.Fatalf("validation failed: %q", validation.Reason)
	}
	if report == nil {
		t.Fatal("expected a report")
	}

	if report.Candidate.Name != "Jane Doe" {
		t.Errorf("candidate name = %q", report.Candidate.Name)
	}
	if report.Job.Company != "BigCo" {
		t.Errorf("job company = %q", report.Job.Company)
	}
	if report.Family.Family != types.FamilyEngineering {
		t.Errorf("family = %q, want engineering", report.Family.Family)
	}
	if report.ATS.Score < 0 || report.ATS.Score > 100 {
		t.Errorf("score out of range: %d", report.ATS.Score)
	}
	if len(report.Strengths) == 0 {
		t.Error("expected strengths")
	}
}

func TestMatchRejectsInvalidJD(t *testing.T) {
	p := New(nil, score.Weights{})

	report, validation := p.Match(testResume, "")
	if report != nil {
		t.Error("invalid job description must not produce a report")
	}
	if validation.Valid || !strings.Contains(validation.Reason, "empty") {
		t.Errorf("validation = %+v", validation)
	}
}

func TestMatchEmptyResume(t *testing.T) {
	p := New(nil, score.Weights{})

	report, validation := p.Match("", testJD)
	if !validation.Valid || report == nil {
		t.Fatal("empty resume must still produce a report; only the job side is validated")
	}
	if report.ATS.Score < 0 || report.ATS.Score > 100 {
		t.Errorf("score out of range: %d", report.ATS.Score)
	}
	if report.Candidate.Skills == nil {
		t.Error("candidate collections must be non-nil")
	}
}

func TestQuickScan(t *testing.T) {
	p := New(nil, score.Weights{})

	report := p.QuickScan(testResume, 3)
	if report.TargetRole.Title != "Senior Backend Engineer" {
		t.Errorf("target title = %q", report.TargetRole.Title)
	}
	if len(report.Matches) == 0 {
		t.Fatal("expected role matches")
	}
	if len(report.Matches) > 3 {
		t.Errorf("limit not honored: %d", len(report.Matches))
	}
	for _, m := range report.Matches {
		if m.ATS.Score < 0 || m.ATS.Score > 100 {
			t.Errorf("role %q score out of range: %d", m.Role.Title, m.ATS.Score)
		}
	}
}

func TestQuickScanEmptyResume(t *testing.T) {
	p := New(nil, score.Weights{})

	report := p.QuickScan("", 3)
	if report.Matches == nil {
		t.Error("Matches must be non-nil")
	}
}

func TestBuildDraftRequest(t *testing.T) {
	p := New(nil, score.Weights{})

	report, _ := p.Match(testResume, testJD)
	req := p.BuildDraftRequest(report)

	if len(req.CoverLetter) != 4 {
		t.Errorf("cover letter paragraphs = %d, want 4", len(req.CoverLetter))
	}
	if !strings.HasPrefix(req.CoverLetter[0], "Dear") {
		t.Errorf("first paragraph = %q", req.CoverLetter[0])
	}
	if len(req.Summary) < 80 {
		t.Errorf("summary too short: %q", req.Summary)
	}
	if !strings.Contains(req.Summary, "Go") {
		t.Errorf("summary should carry top skills: %q", req.Summary)
	}
}
