package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Request is a single generation call.
type Request struct {
	Prompt string
	Model  string
	Mode   ResponseMode
	// APIKey is resolved per request; settings may change between calls.
	APIKey string
	// ThinkingBudget is attached only when > 0.
	ThinkingBudget int32
}

// Client is an abstraction over the generative-AI service.
// Implementations do not retry; a failed call is returned to the caller.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// UpstreamError represents a failed call to the generative-AI service.
type UpstreamError struct {
	Model   string
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream error (%s): %s: %v", e.Model, e.Message, e.Cause)
	}
	return fmt.Sprintf("upstream error (%s): %s", e.Model, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// DefaultTemperature is the sampling temperature used unless overridden.
const DefaultTemperature float32 = 0.7

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	httpClient  *http.Client
	temperature float32
}

// GeminiOption configures a GeminiClient.
type GeminiOption func(*GeminiClient)

// WithHTTPClient sets the transport used for every call.
func WithHTTPClient(hc *http.Client) GeminiOption {
	return func(c *GeminiClient) {
		c.httpClient = hc
	}
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float32) GeminiOption {
	return func(c *GeminiClient) {
		c.temperature = t
	}
}

// NewGeminiClient creates a Gemini client. No timeout is imposed beyond the
// transport's own defaults.
func NewGeminiClient(opts ...GeminiOption) *GeminiClient {
	c := &GeminiClient{temperature: DefaultTemperature}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate issues one request to the service.
func (c *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	if req.APIKey == "" {
		return "", ErrMissingCredential
	}
	if req.Model == "" {
		return "", &UpstreamError{Message: "no model specified"}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     req.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
	})
	if err != nil {
		return "", &UpstreamError{Model: req.Model, Message: "failed to create Gemini client", Cause: err}
	}

	resp, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), c.generateConfig(req))
	if err != nil {
		return "", &UpstreamError{Model: req.Model, Message: "failed to generate content", Cause: err}
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", &UpstreamError{Model: req.Model, Message: "empty response", Cause: err}
	}
	return text, nil
}

func (c *GeminiClient) generateConfig(req Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.temperature),
	}
	if req.Mode == ModeJSON {
		cfg.ResponseMIMEType = "application/json"
	}
	if req.ThinkingBudget > 0 {
		cfg.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(req.ThinkingBudget),
		}
	}
	return cfg
}

// extractTextFromResponse concatenates the text parts of the first candidate.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought || part.Text == "" {
			continue
		}
		parts = append(parts, part.Text)
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
