package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"resumelens/internal/generate"
	"resumelens/internal/observability"
	"resumelens/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// ValidationFailureResponse is returned when a job description fails
// input validation. It is the only 4xx produced by the pipeline itself.
type ValidationFailureResponse struct {
	Error      string             `json:"error"`
	Validation types.JDValidation `json:"validation"`
}

// createMatchHandler wraps the match handler with observability
func (s *Server) createMatchHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.match")
		defer span.End()

		var req MatchRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Resume)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "match"),
		)

		metrics := om.GetMetrics()
		start := time.Now()
		report, validation := s.Pipeline.Match(req.Resume, req.JobDescription)
		metrics.RecordMatchDuration(ctx, time.Since(start).Seconds(), report != nil)

		if report == nil {
			span.SetAttributes(
				attribute.Bool("success", false),
				attribute.String("error.type", "jd_rejected"),
				attribute.String("rejection_reason", validation.Reason),
			)
			metrics.RecordBusinessMetric(ctx, "jd_rejected", true,
				attribute.String("reason", validation.Reason))
			writeJSONResponse(w, http.StatusUnprocessableEntity, ValidationFailureResponse{
				Error:      "Invalid job description",
				Validation: validation,
			})
			return
		}

		metrics.RecordBusinessMetric(ctx, "match", true,
			attribute.Int("ats.score", report.ATS.Score),
			attribute.String("family", string(report.Family.Family)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("ats.score", report.ATS.Score),
			attribute.String("family", string(report.Family.Family)),
		)

		writeJSONResponse(w, http.StatusOK, report)
	}
}

// createQuickScanHandler wraps the quickscan handler with observability
func (s *Server) createQuickScanHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.quickscan")
		defer span.End()

		var req QuickScanRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Resume) == "" {
			err := fmt.Errorf("missing resume")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume", "resume field is required", http.StatusBadRequest)
			return
		}

		limit := req.Limit
		if limit <= 0 {
			limit = s.AppConfig.Pipeline.QuickScanLimit
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Resume)),
			attribute.Int("request.limit", limit),
			attribute.String("operation", "quickscan"),
		)

		report := s.Pipeline.QuickScan(req.Resume, limit)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "quickscan", true,
			attribute.Int("matches", len(report.Matches)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("matches", len(report.Matches)),
		)

		writeJSONResponse(w, http.StatusOK, report)
	}
}

// createValidateHandler wraps the validate handler with observability
func (s *Server) createValidateHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.validate")
		defer span.End()

		var req ValidateRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "validate"),
		)

		validation := s.Pipeline.Validate(req.JobDescription)

		if !validation.Valid {
			metrics := om.GetMetrics()
			metrics.RecordBusinessMetric(ctx, "jd_rejected", true,
				attribute.String("reason", validation.Reason))
		}

		span.SetAttributes(
			attribute.Bool("valid", validation.Valid),
			attribute.Int("warnings", len(validation.Warnings)),
		)

		writeJSONResponse(w, http.StatusOK, validation)
	}
}

// createParseHandler wraps the parse handler with observability
func (s *Server) createParseHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		_, span := tracer.Start(ctx, "api.parse")
		defer span.End()

		var req ParseRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Resume)),
			attribute.String("operation", "parse"),
		)

		profile := s.Pipeline.ParseResume(req.Resume)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("experience_entries", len(profile.Experience)),
			attribute.Int("skills", len(profile.Skills)),
		)

		writeJSONResponse(w, http.StatusOK, profile)
	}
}

// createDraftHandler wraps the draft handler with observability. A
// draft is a match followed by generation, so it shares the match
// rejection path.
func (s *Server) createDraftHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.draft")
		defer span.End()

		var req DraftRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Resume)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "draft"),
		)

		report, validation := s.Pipeline.Match(req.Resume, req.JobDescription)
		if report == nil {
			span.SetAttributes(
				attribute.Bool("success", false),
				attribute.String("error.type", "jd_rejected"),
			)
			writeJSONResponse(w, http.StatusUnprocessableEntity, ValidationFailureResponse{
				Error:      "Invalid job description",
				Validation: validation,
			})
			return
		}

		draftReq := s.Pipeline.BuildDraftRequest(report)

		genService, err := generate.NewService(&s.AppConfig.Generate, s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create generation service", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		var doc types.DraftDocument
		err = metrics.TrackGeneration(ctx, s.AppConfig.Generate.Provider, func(ctx context.Context) *observability.GenerateResult {
			output, tokenUsage, genErr := genService.Draft(ctx, draftReq)
			doc = output
			return &observability.GenerateResult{
				Error:      genErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		})

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "generation"))
			writeErrorResponse(w, "Failed to generate draft", err.Error(), http.StatusInternalServerError)
			return
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("paragraphs", len(doc.CoverLetter)),
			attribute.Int("bullets", len(doc.Bullets)),
		)

		writeJSONResponse(w, http.StatusOK, doc)
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// writeJSONResponse writes a JSON response with the given status code
func writeJSONResponse(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
