package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"crimecam-core/internal/domain/entity"
	"crimecam-core/internal/preset"
)

// OpenAIClient invokes OpenAI chat completions with an inline image part.
type OpenAIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewOpenAIClient creates an OpenAI vision client.
func NewOpenAIClient(apiKey string, logger zerolog.Logger) *OpenAIClient {
	return &OpenAIClient{
		apiKey:     apiKey,
		baseURL:    "https://api.openai.com/v1",
		httpClient: &http.Client{},
		logger:     logger.With().Str("provider", "openai").Logger(),
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *OpenAIClient) SetBaseURL(u string) { c.baseURL = u }

func (c *OpenAIClient) Provider() entity.ModelProvider { return entity.ProviderOpenAI }

// openAITemperature maps the 1-10 dial linearly onto 0.4..1.15.
func openAITemperature(intensity int) float64 {
	s := float64(entity.ClampIntensity(intensity))
	return 0.4 + (s-1)*((1.15-0.4)/9)
}

type openAIContentPart struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	ImageURL *openAIImageURL `json:"image_url,omitempty"`
}

type openAIImageURL struct {
	URL string `json:"url"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type openAIRequest struct {
	Model               string          `json:"model"`
	Messages            []openAIMessage `json:"messages"`
	MaxCompletionTokens int             `json:"max_completion_tokens,omitempty"`
	Temperature         *float64        `json:"temperature,omitempty"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// Invoke sends the analysis request to OpenAI and shapes the response into
// an AnalysisResult with telemetry.
func (c *OpenAIClient) Invoke(ctx context.Context, req entity.AnalysisRequest, cfg entity.ModelConfig) (*entity.AnalysisResult, error) {
	body := openAIRequest{
		Model: cfg.Model,
		Messages: []openAIMessage{
			{Role: "system", Content: preset.SystemPromptFor(req.Mode)},
			{Role: "user", Content: []openAIContentPart{
				{Type: "text", Text: buildUserMessage(req.Context, req.Intensity)},
				{Type: "image_url", ImageURL: &openAIImageURL{URL: ensureDataURI(req.ImageBase64)}},
			}},
		},
		MaxCompletionTokens: cfg.MaxTokens,
	}
	if cfg.SupportsTemperature {
		t := openAITemperature(req.Intensity)
		body.Temperature = &t
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Debug().Str("model", cfg.Model).Msg("sending analysis request")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	duration := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai error: %d - %s", resp.StatusCode, string(respBody))
	}

	var parsed openAIResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("parse openai response: %w", err)
	}

	reportText := ""
	if len(parsed.Choices) > 0 {
		reportText = parsed.Choices[0].Message.Content
	}
	if reportText == "" {
		reportText = entity.EmptyReportPlaceholder
	}

	return &entity.AnalysisResult{
		Report: reportText,
		Telemetry: &entity.Telemetry{
			Provider:         entity.ProviderOpenAI,
			Model:            cfg.Model,
			Quality:          cfg.Quality,
			DurationMs:       duration.Milliseconds(),
			PromptTokens:     parsed.Usage.PromptTokens,
			CompletionTokens: parsed.Usage.CompletionTokens,
			EstimatedCost:    estimateCost(cfg.Model, parsed.Usage.PromptTokens, parsed.Usage.CompletionTokens),
		},
	}, nil
}
