// Package capabilities implements the AI-backed operations of the resume
// builder. Each capability is a declarative record (template, response mode,
// tier, model pin, thinking budget, fallback) run by one generic invoker.
package capabilities

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-studio/internal/llm"
)

// Class groups capabilities by output contract.
type Class string

const (
	// ClassFreeText returns a plain string.
	ClassFreeText Class = "free_text"
	// ClassStructured returns a typed object or array.
	ClassStructured Class = "structured"
	// ClassWholeResume returns a full ResumeProfile with IDs back-filled.
	ClassWholeResume Class = "whole_resume"
	// ClassCode returns a raw HTML document.
	ClassCode Class = "code"
)

// Spec is the data half of a capability.
type Spec struct {
	Name        string
	Description string
	Class       Class
	Tier        llm.Tier
	Mode        llm.ResponseMode
	// PinnedModel overrides both the tier policy and the user preference.
	PinnedModel string
	// ThinkingBudget is attached to the request when > 0.
	ThinkingBudget int32
	// ThinkingOnPro limits ThinkingBudget to calls resolved to a pro model.
	ThinkingOnPro bool
	// FallsBack is true when upstream and parse failures yield a default
	// result instead of an error.
	FallsBack bool
}

// Capability binds a Spec to its template, decoder and optional fallback.
type Capability[In, Out any] struct {
	Spec
	Prompt func(in In) (string, error)
	Decode func(raw string, in In) (Out, error)
	// Fallback, when set, replaces upstream and malformed-response errors.
	Fallback func(in In) Out
}

var registry = map[string]Spec{}

// register records a capability's Spec and returns the capability unchanged.
func register[In, Out any](c Capability[In, Out]) Capability[In, Out] {
	spec := c.Spec
	spec.FallsBack = c.Fallback != nil
	if _, exists := registry[spec.Name]; exists {
		panic(fmt.Sprintf("capability %q registered twice", spec.Name))
	}
	registry[spec.Name] = spec
	return c
}

// Specs returns every registered capability sorted by name.
func Specs() []Spec {
	specs := make([]Spec, 0, len(registry))
	for _, spec := range registry {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	return specs
}

// Lookup returns the Spec registered under name.
func Lookup(name string) (Spec, bool) {
	spec, ok := registry[name]
	return spec, ok
}
