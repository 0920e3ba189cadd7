package client

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"crimecam-core/internal/domain/entity"
	"crimecam-core/internal/preset"
)

// GeminiClient invokes Gemini models through the genai SDK with the image
// attached as an inline part.
type GeminiClient struct {
	client *genai.Client
	logger zerolog.Logger
}

// NewGeminiClient creates a Gemini vision client against the public
// Gemini API backend.
func NewGeminiClient(ctx context.Context, apiKey string, logger zerolog.Logger) (*GeminiClient, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init genai client: %w", err)
	}
	return NewGeminiClientFromClient(c, logger), nil
}

// NewGeminiClientFromClient wraps an existing genai client.
func NewGeminiClientFromClient(c *genai.Client, logger zerolog.Logger) *GeminiClient {
	return &GeminiClient{
		client: c,
		logger: logger.With().Str("provider", "gemini").Logger(),
	}
}

func (g *GeminiClient) Provider() entity.ModelProvider { return entity.ProviderGemini }

// geminiTemperature maps the 1-10 dial linearly onto 0.3..1.0, staying
// inside Gemini's valid sampling range.
func geminiTemperature(intensity int) float32 {
	s := float32(entity.ClampIntensity(intensity))
	return 0.3 + (s-1)*((1.0-0.3)/9)
}

// Invoke sends the analysis request to Gemini and shapes the response into
// an AnalysisResult with telemetry.
func (g *GeminiClient) Invoke(ctx context.Context, req entity.AnalysisRequest, cfg entity.ModelConfig) (*entity.AnalysisResult, error) {
	raw, mimeType, err := decodeImagePayload(req.ImageBase64)
	if err != nil {
		return nil, err
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(raw, mimeType),
		genai.NewPartFromText(buildUserMessage(req.Context, req.Intensity)),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(preset.SystemPromptFor(req.Mode), genai.RoleUser),
		MaxOutputTokens:   int32(cfg.MaxTokens),
	}
	if cfg.SupportsTemperature {
		genCfg.Temperature = genai.Ptr(geminiTemperature(req.Intensity))
	}

	g.logger.Debug().Str("model", cfg.Model).Msg("sending analysis request")

	start := time.Now()
	result, err := g.client.Models.GenerateContent(ctx, cfg.Model, contents, genCfg)
	duration := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("gemini error: %w", err)
	}

	reportText := result.Text()
	if reportText == "" {
		reportText = entity.EmptyReportPlaceholder
	}

	var promptTokens, completionTokens int
	if result.UsageMetadata != nil {
		promptTokens = int(result.UsageMetadata.PromptTokenCount)
		completionTokens = int(result.UsageMetadata.CandidatesTokenCount)
	}

	return &entity.AnalysisResult{
		Report: reportText,
		Telemetry: &entity.Telemetry{
			Provider:         entity.ProviderGemini,
			Model:            cfg.Model,
			Quality:          cfg.Quality,
			DurationMs:       duration.Milliseconds(),
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			EstimatedCost:    estimateCost(cfg.Model, promptTokens, completionTokens),
		},
	}, nil
}
