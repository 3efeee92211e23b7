package generate

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"strings"
	"time"

	"resumelens/internal/config"
	lensErrors "resumelens/internal/errors"
	"resumelens/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

const modelCheckTimeout = 10 * time.Second

// GeminiProvider implements Provider for Google Gemini. The model is
// asked to polish the strategy-drafted summary, cover letter, and
// bullet rewrites; it never sees free-form user instructions.
type GeminiProvider struct {
	client         *genai.Client
	httpClient     *http.Client
	config         *config.GenerateConfig
	circuitBreaker *DraftCircuitBreaker
	modelBreaker   *ModelCircuitBreaker
	logger         *lensErrors.Logger
}

// Ensure GeminiProvider implements Provider
var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini provider instance
func NewGeminiProvider(cfg *config.GenerateConfig, logger *lensErrors.Logger) (*GeminiProvider, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, lensErrors.NewGenerationError(lensErrors.ErrCodeGenerationFailed,
			"Failed to create Gemini client", err)
	}

	return &GeminiProvider{
		client: client,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config:         cfg,
		circuitBreaker: NewDraftCircuitBreaker(cfg, logger),
		modelBreaker:   NewModelCircuitBreaker(cfg, logger),
		logger:         logger,
	}, nil
}

// GetModelInfo checks the readiness and availability of the configured model
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	modelInfo := &ModelInfo{
		Name:      g.config.Model,
		Available: false,
	}

	checkCtx, cancel := context.WithTimeout(ctx, modelCheckTimeout)
	defer cancel()

	model, err := g.modelBreaker.ExecuteModel(func() (*genai.Model, error) {
		return g.client.Models.Get(checkCtx, g.config.Model, &genai.GetModelConfig{})
	})
	if err != nil {
		modelInfo.Error = fmt.Sprintf("Failed to get model info: %v", err)

		g.logger.Warn("Model availability check failed",
			"model", g.config.Model,
			"provider", g.config.Provider,
			"error", err.Error())
		return modelInfo
	}

	modelInfo.Available = true
	if model.DisplayName != "" {
		modelInfo.DisplayName = model.DisplayName
	}
	if model.Version != "" {
		modelInfo.Version = model.Version
	}

	g.logger.Debug("Model availability check successful",
		"model", g.config.Model,
		"provider", g.config.Provider,
		"display_name", modelInfo.DisplayName,
		"version", modelInfo.Version)

	return modelInfo
}

// Draft implements Provider using the Gemini API
func (g *GeminiProvider) Draft(ctx context.Context, req types.DraftRequest) (types.DraftDocument, *TokenUsage, error) {
	tracer := otel.Tracer("resumelens.generate.gemini")
	ctx, span := tracer.Start(ctx, "gemini.draft")
	defer span.End()

	span.SetAttributes(
		attribute.String("generate.provider", "gemini"),
		attribute.String("generate.model", g.config.Model),
		attribute.Float64("generate.temperature", float64(g.config.Temperature)),
		attribute.String("generate.family", string(req.Family.Family)),
		attribute.Int("input.previews", len(req.Previews)),
	)

	genConfig := g.buildDraftSchema()
	genConfig.SystemInstruction = genai.NewContentFromText(draftSystemPrompt, genai.RoleUser)
	userPrompt := buildDraftPrompt(req)

	result, err := g.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return g.executeWithRetry(ctx, "draft", func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(userPrompt), genConfig)
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return types.DraftDocument{}, nil, lensErrors.NewGenerationError(
			lensErrors.ErrCodeGenerationFailed, "Failed to generate draft", err)
	}

	var doc types.DraftDocument
	if err := json.Unmarshal([]byte(result.Text()), &doc); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return types.DraftDocument{}, nil, lensErrors.NewGenerationError(
			"GENERATE_RESPONSE_PARSE_FAILED", "Failed to parse draft response", err)
	}
	doc.Provider = "gemini"

	tokenUsage := extractTokenUsage(result)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("generate.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("generate.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("generate.tokens.total", tokenUsage.TotalTokens),
		)
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("output.paragraphs", len(doc.CoverLetter)),
		attribute.Int("output.bullets", len(doc.Bullets)),
	)
	return doc, tokenUsage, nil
}

// executeWithRetry executes a generation call with retry logic and exponential backoff
func (g *GeminiProvider) executeWithRetry(ctx context.Context, operation string, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			g.logger.Warn("Retrying generation call",
				"operation", operation,
				"attempt", attempt,
				"max_retries", g.config.MaxRetries,
				"error", lastErr.Error())

			// Exponential backoff with jitter to prevent thundering herd
			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			jitter := time.Duration(jitterBig.Int64())
			// Cap maximum backoff at 30 seconds
			backoff := min(baseDelay+jitter, 30*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			if attempt > 0 {
				g.logger.Info("Generation call succeeded after retry",
					"operation", operation,
					"successful_attempt", attempt+1)
			}
			return result, nil
		}

		lastErr = err

		// Don't retry on certain errors (auth, invalid input, etc.)
		if !g.isRetryableError(err) {
			g.logger.Debug("Error is not retryable, stopping retry attempts",
				"operation", operation,
				"error", err.Error())
			break
		}
	}

	g.logger.LogError(lastErr, "Generation call failed after all retry attempts",
		"operation", operation,
		"total_attempts", g.config.MaxRetries+1)

	return nil, fmt.Errorf("operation '%s' failed after %d retries: %w", operation, g.config.MaxRetries, lastErr)
}

// isRetryableError determines if an error should trigger a retry
func (g *GeminiProvider) isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Check for network errors (timeouts, connection issues)
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return true
		}
		// Consider other network errors retryable (e.g., connection refused)
		return true
	}

	// Check for Google API errors (HTTP status codes)
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (g *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	stats := map[string]any{
		"draft_operations": g.circuitBreaker.GetStats(),
		"model_operations": g.modelBreaker.GetModelStats(),
	}

	// Overall health - both breakers must be healthy
	stats["overall_healthy"] = g.circuitBreaker.IsHealthy() && g.modelBreaker.IsModelHealthy()

	return stats
}

// Close implements Provider
func (g *GeminiProvider) Close() error {
	// Gemini client doesn't have a Close method in current single-shot usage
	return nil
}

// buildDraftSchema creates the response schema for draft requests
func (g *GeminiProvider) buildDraftSchema() *genai.GenerateContentConfig {
	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"summary": {Type: genai.TypeString},
				"coverLetter": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"bullets": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"summary", "coverLetter", "bullets"},
		},
	}

	if g.config.Temperature > 0 {
		temp := g.config.Temperature
		genConfig.Temperature = &temp
	}

	return genConfig
}

const draftSystemPrompt = `You are a resume writing assistant. You receive a drafted
summary, cover letter paragraphs, and bullet rewrites, plus the structured candidate
and job profiles they were derived from. Polish the drafts for fluency while keeping
every factual claim: do not invent skills, employers, dates, or metrics that are not
in the candidate profile. Keep the cover letter at exactly the same number of
paragraphs and keep one output bullet per input bullet.`

// buildDraftPrompt renders the draft request for the model. The drafts
// are the authoritative content; the profiles are context only.
func buildDraftPrompt(req types.DraftRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target role: %s", req.Job.Title)
	if req.Job.Company != "" {
		fmt.Fprintf(&b, " at %s", req.Job.Company)
	}
	fmt.Fprintf(&b, "\nJob family: %s\n", req.Family.Family)

	fmt.Fprintf(&b, "\nCandidate: %s\n", req.Candidate.Name)
	if len(req.Candidate.Skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(req.Candidate.Skills, ", "))
	}
	for _, entry := range req.Candidate.Experience {
		fmt.Fprintf(&b, "- %s, %s\n", entry.Title, entry.Company)
	}

	fmt.Fprintf(&b, "\nDrafted summary:\n%s\n", req.Summary)

	b.WriteString("\nDrafted cover letter:\n")
	for _, paragraph := range req.CoverLetter {
		b.WriteString(paragraph)
		b.WriteString("\n\n")
	}

	if len(req.Previews) > 0 {
		b.WriteString("Drafted bullet rewrites:\n")
		for _, preview := range req.Previews {
			fmt.Fprintf(&b, "- %s\n", preview.Improved)
		}
	}

	return b.String()
}

// extractTokenUsage extracts token usage information from Gemini API response
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}

	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}
