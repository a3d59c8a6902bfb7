package capabilities

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/prompts"
	"github.com/jonathan/resume-studio/internal/types"
)

// resumeJSON serializes a resume for interpolation, cut to budget runes.
// A budget of 0 means no limit.
func resumeJSON(p types.ResumeProfile, budget int) string {
	data, err := json.Marshal(p)
	if err != nil {
		return "{}"
	}
	if budget <= 0 {
		return string(data)
	}
	return prompts.Truncate(string(data), budget)
}

// experienceLines renders positions one per line for text prompts.
func experienceLines(items []types.Experience) string {
	if len(items) == 0 {
		return "Not provided"
	}
	var b strings.Builder
	for _, e := range items {
		end := e.EndDate
		if e.Current {
			end = "Present"
		}
		fmt.Fprintf(&b, "- %s at %s (%s - %s)", e.Position, e.Company, e.StartDate, end)
		if d := strings.TrimSpace(e.Description); d != "" {
			fmt.Fprintf(&b, ": %s", d)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func joinOr(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}

// template returns a Prompt func rendering key from file with the values fn
// builds from the input.
func template[In any](file, key string, fn func(In) map[string]string) func(In) (string, error) {
	return func(in In) (string, error) {
		return prompts.Render(file, key, fn(in))
	}
}

// decodeText is the text-mode decoder: whitespace is trimmed.
func decodeText[In any](raw string, _ In) (string, error) {
	return normalize.Text(raw), nil
}

// decodeWith adapts an input-independent normalize decoder.
func decodeWith[In, Out any](capability string, fn func(capability, raw string) (Out, error)) func(string, In) (Out, error) {
	return func(raw string, _ In) (Out, error) {
		return fn(capability, raw)
	}
}

func textSpec(name, description string, tier llm.Tier) Spec {
	return Spec{Name: name, Description: description, Class: ClassFreeText, Tier: tier, Mode: llm.ModeText}
}

func jsonSpec(name, description string, class Class, tier llm.Tier) Spec {
	return Spec{Name: name, Description: description, Class: class, Tier: tier, Mode: llm.ModeJSON}
}
