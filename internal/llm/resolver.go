package llm

import (
	"errors"
	"os"
	"strings"
)

// ErrMissingCredential is returned when neither the stored settings nor the
// environment provide an API key.
var ErrMissingCredential = errors.New("no API key found: add your API key in Settings")

// credentialEnvVars are consulted in order when no key is stored in settings.
var credentialEnvVars = []string{"GEMINI_API_KEY", "API_KEY"}

// PreferenceProvider exposes the user's stored settings. Implementations must
// be safe to read at the start of every request; the resolver never writes.
type PreferenceProvider interface {
	// APIKey returns the user-supplied credential, or "" if none is stored.
	APIKey() string
	// PreferredModel returns the stored model identifier, or "" if none is stored.
	PreferredModel() string
}

// StaticPreferences is a fixed PreferenceProvider.
type StaticPreferences struct {
	Key   string
	Model string
}

// APIKey implements PreferenceProvider.
func (p StaticPreferences) APIKey() string { return p.Key }

// PreferredModel implements PreferenceProvider.
func (p StaticPreferences) PreferredModel() string { return p.Model }

// Resolver picks the credential and model for a request.
type Resolver struct {
	prefs  PreferenceProvider
	getenv func(string) string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithEnv replaces os.Getenv as the source of environment-provisioned keys.
func WithEnv(getenv func(string) string) ResolverOption {
	return func(r *Resolver) {
		r.getenv = getenv
	}
}

// NewResolver creates a Resolver reading from prefs. A nil prefs behaves as
// empty settings.
func NewResolver(prefs PreferenceProvider, opts ...ResolverOption) *Resolver {
	if prefs == nil {
		prefs = StaticPreferences{}
	}
	r := &Resolver{prefs: prefs, getenv: os.Getenv}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Credential returns the user's stored key, falling back to the environment.
func (r *Resolver) Credential() (string, error) {
	if key := strings.TrimSpace(r.prefs.APIKey()); key != "" {
		return key, nil
	}
	for _, name := range credentialEnvVars {
		if key := strings.TrimSpace(r.getenv(name)); key != "" {
			return key, nil
		}
	}
	return "", ErrMissingCredential
}

// Model returns the model for a tier given the current stored preference.
func (r *Resolver) Model(tier Tier) string {
	return ModelForTier(r.prefs.PreferredModel(), tier)
}
