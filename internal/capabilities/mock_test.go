package capabilities

import (
	"context"
	"sync"
	"testing"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/rs/zerolog"
)

// mockClient records every request and answers with respond.
type mockClient struct {
	mu       sync.Mutex
	respond  func(req llm.Request) (string, error)
	requests []llm.Request
}

func (m *mockClient) Generate(_ context.Context, req llm.Request) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.respond == nil {
		return "", nil
	}
	return m.respond(req)
}

func (m *mockClient) last(t *testing.T) llm.Request {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		t.Fatal("no request was sent")
	}
	return m.requests[len(m.requests)-1]
}

func reply(raw string) func(llm.Request) (string, error) {
	return func(llm.Request) (string, error) { return raw, nil }
}

func fail(err error) func(llm.Request) (string, error) {
	return func(llm.Request) (string, error) { return "", err }
}

// newTestService builds a Service with a stored key and the given model
// preference. The environment is never consulted.
func newTestService(model string, respond func(llm.Request) (string, error), opts ...Option) (*Service, *mockClient) {
	client := &mockClient{respond: respond}
	resolver := llm.NewResolver(
		llm.StaticPreferences{Key: "test-key", Model: model},
		llm.WithEnv(func(string) string { return "" }),
	)
	opts = append([]Option{WithLogger(zerolog.Nop())}, opts...)
	return NewService(client, resolver, opts...), client
}

func sampleResume() types.ResumeProfile {
	p := types.NewResumeProfile()
	p.PersonalInfo = types.PersonalInfo{
		FullName: "Ada Lovelace",
		JobTitle: "Software Engineer",
		Email:    "ada@example.com",
		Summary:  "Engineer focused on distributed systems.",
	}
	p.Experience = []types.Experience{
		{ID: "exp-1", Company: "Analytical Engines", Position: "Engineer", StartDate: "2019", Current: true, Description: "Built the scheduler."},
	}
	p.Education = []types.Education{
		{ID: "edu-1", Institution: "University of London", Degree: "BSc", Field: "Mathematics"},
	}
	p.Skills = []string{"Go", "PostgreSQL"}
	return p
}
