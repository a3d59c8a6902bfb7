// Package llm provides model resolution and the generation invoker for the
// generative-AI backend. Capabilities pick a tier; the resolver turns the tier
// and the stored user preference into a concrete model identifier.
package llm

import "strings"

// Tier is a coarse cost/quality dial used to pick a model.
type Tier string

const (
	// TierBasic runs on whatever model the user prefers.
	TierBasic Tier = "basic"
	// TierComplex never runs on a model weaker than HighCapabilityModel.
	TierComplex Tier = "complex"
)

// ResponseMode selects free text or structured JSON output from the service.
type ResponseMode string

const (
	// ModeText requests free text.
	ModeText ResponseMode = "text"
	// ModeJSON requests application/json output.
	ModeJSON ResponseMode = "json"
)

const (
	// DefaultModel is used for basic-tier calls when no preference is stored.
	DefaultModel = "gemini-2.5-flash"
	// HighCapabilityModel is the override for complex-tier calls and the pinned
	// model for capabilities that demand it.
	HighCapabilityModel = "gemini-2.5-pro"
	// MaxThinkingBudget is the reasoning budget attached to capabilities that
	// request extended thinking on the high-capability model.
	MaxThinkingBudget int32 = 32768
)

// IsProModel reports whether a model identifier denotes a "pro" variant.
func IsProModel(model string) bool {
	return strings.Contains(strings.ToLower(model), "pro")
}

// ModelForTier applies the tier policy to a stored preference.
// Basic returns the preference verbatim. Complex keeps a pro preference and
// otherwise overrides it with HighCapabilityModel.
func ModelForTier(preference string, tier Tier) string {
	preference = strings.TrimSpace(preference)
	if preference == "" {
		preference = DefaultModel
	}

	switch tier {
	case TierComplex:
		if IsProModel(preference) {
			return preference
		}
		return HighCapabilityModel
	default:
		return preference
	}
}
