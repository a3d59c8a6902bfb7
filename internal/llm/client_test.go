package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiClient_GenerateConfig(t *testing.T) {
	c := NewGeminiClient(WithTemperature(0.2))

	cfg := c.generateConfig(Request{Mode: ModeText})
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.2, *cfg.Temperature, 0.0001)
	assert.Empty(t, cfg.ResponseMIMEType)
	assert.Nil(t, cfg.ThinkingConfig)

	cfg = c.generateConfig(Request{Mode: ModeJSON, ThinkingBudget: MaxThinkingBudget})
	assert.Equal(t, "application/json", cfg.ResponseMIMEType)
	require.NotNil(t, cfg.ThinkingConfig)
	require.NotNil(t, cfg.ThinkingConfig.ThinkingBudget)
	assert.Equal(t, MaxThinkingBudget, *cfg.ThinkingConfig.ThinkingBudget)
}

func TestGeminiClient_GenerateRequiresKey(t *testing.T) {
	c := NewGeminiClient()
	_, err := c.Generate(context.Background(), Request{Prompt: "hi", Model: DefaultModel})
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestGeminiClient_GenerateRequiresModel(t *testing.T) {
	c := NewGeminiClient()
	_, err := c.Generate(context.Background(), Request{Prompt: "hi", APIKey: "k"})

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Contains(t, err.Error(), "no model specified")
}

func TestExtractTextFromResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "thinking...", Thought: true},
				{Text: "Hello, "},
				{Text: "world"},
			}},
		}},
	}

	text, err := extractTextFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", text)
}

func TestExtractTextFromResponse_Empty(t *testing.T) {
	_, err := extractTextFromResponse(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	_, err = extractTextFromResponse(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	})
	assert.Error(t, err)
}

func TestUpstreamError_Unwrap(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := &UpstreamError{Model: "m", Message: "failed", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "upstream error (m): failed: quota exceeded", err.Error())
}
