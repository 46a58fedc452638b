// Package adapter implements outbound integrations with external services.
// Its only current member is the generative-language client used to produce
// supportive messages for analyzed text.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/wellmind/wellmind/internal/config"
	"github.com/wellmind/wellmind/internal/logger"
)

// Fixed user-facing fallback strings. One per failure family; callers never
// see an error instead of a tip.
const (
	// FallbackTipUnavailable is returned when the provider answers with a
	// non-success status.
	FallbackTipUnavailable = "Sorry, I couldn't generate a tip right now."

	// FallbackTipError is returned when the request fails at the transport
	// level or the response body cannot be interpreted.
	FallbackTipError = "Sorry, something went wrong."
)

const promptTemplate = `You are a kind mental health assistant.

The user said: %q
Detected emotion: %q

Generate a short, compassionate wellness tip or supportive message.
Keep it simple and encouraging.`

// generateContent request/response shapes, reduced to the fields this
// service reads and writes.
type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// geminiClient is the concrete [TipGenerator] backed by the Gemini
// generateContent REST API.
type geminiClient struct {
	client *resty.Client
	apiKey string
	model  string

	logger *logger.Logger
}

// NewGeminiTipGenerator constructs a [TipGenerator] for the configured
// provider endpoint. The client carries a bounded request timeout so a slow
// provider cannot block the analyze pipeline indefinitely.
func NewGeminiTipGenerator(cfg config.Tips, log *logger.Logger) TipGenerator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &geminiClient{
		client: cli,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		logger: log,
	}
}

// GenerateTip sends one synchronous generateContent request and extracts the
// first candidate's text. Exactly one attempt is made; every failure is
// mapped to a fixed fallback string plus a sentinel-wrapped error for logs.
func (g *geminiClient) GenerateTip(ctx context.Context, text string, emotion string) (string, error) {
	body := generateContentRequest{
		Contents: []content{
			{
				Role:  "user",
				Parts: []part{{Text: fmt.Sprintf(promptTemplate, text, emotion)}},
			},
		},
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", g.apiKey).
		SetBody(body).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.model))
	if err != nil {
		return FallbackTipError, fmt.Errorf("%w: %w", ErrUpstreamTransport, err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return FallbackTipUnavailable, fmt.Errorf("%w: http %d", ErrUpstreamStatus, resp.StatusCode())
	}

	tip, err := extractTip(resp.Body())
	if err != nil {
		return FallbackTipError, err
	}

	return tip, nil
}

// extractTip pulls candidates[0].content.parts[0].text out of a successful
// response body.
func extractTip(body []byte) (string, error) {
	var parsed generateContentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates with text parts", ErrMalformedResponse)
	}

	tip := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if tip == "" {
		return "", fmt.Errorf("%w: empty candidate text", ErrMalformedResponse)
	}

	return tip, nil
}
