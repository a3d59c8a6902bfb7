package capabilities

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/resume-studio/internal/llm"
)

// run executes one capability. Upstream and decode failures go to the
// capability's Fallback when it has one; a missing credential never does.
func run[In, Out any](ctx context.Context, s *Service, c Capability[In, Out], in In) (Out, error) {
	var zero Out

	if err := s.validate.Struct(in); err != nil {
		return zero, &InputError{Capability: c.Name, Cause: err}
	}

	apiKey, err := s.resolver.Credential()
	if err != nil {
		return zero, err
	}

	prompt, err := c.Prompt(in)
	if err != nil {
		return zero, fmt.Errorf("%s: failed to build prompt: %w", c.Name, err)
	}

	req := s.request(c.Spec, prompt, apiKey)
	log := s.logger.With().Str("capability", c.Name).Str("model", req.Model).Logger()
	log.Debug().
		Str("mode", string(req.Mode)).
		Int32("thinking_budget", req.ThinkingBudget).
		Int("prompt_chars", len(prompt)).
		Msg("invoking model")

	raw, err := s.client.Generate(ctx, req)
	if err == nil {
		var out Out
		if out, err = c.Decode(raw, in); err == nil {
			return out, nil
		}
	}

	if c.Fallback != nil && !errors.Is(err, llm.ErrMissingCredential) {
		log.Warn().Err(err).Msg("capability failed, returning fallback result")
		return c.Fallback(in), nil
	}
	return zero, err
}
