package capabilities

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/rs/zerolog"
)

// InputError reports a capability input that failed validation.
type InputError struct {
	Capability string
	Cause      error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s input: %v", e.Capability, e.Cause)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// Service runs capabilities against an llm.Client. It holds no per-call
// state; every call reads the current preferences through the resolver.
type Service struct {
	client   llm.Client
	resolver *llm.Resolver
	validate *validator.Validate
	logger   zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for invocation and fallback events.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service.
func NewService(client llm.Client, resolver *llm.Resolver, opts ...Option) *Service {
	s := &Service{
		client:   client,
		resolver: resolver,
		validate: validator.New(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// request resolves the model and thinking budget for one call.
func (s *Service) request(spec Spec, prompt, apiKey string) llm.Request {
	model := spec.PinnedModel
	if model == "" {
		model = s.resolver.Model(spec.Tier)
	}

	req := llm.Request{
		Prompt: prompt,
		Model:  model,
		Mode:   spec.Mode,
		APIKey: apiKey,
	}
	if spec.ThinkingBudget > 0 && (!spec.ThinkingOnPro || llm.IsProModel(model)) {
		req.ThinkingBudget = spec.ThinkingBudget
	}
	return req
}
