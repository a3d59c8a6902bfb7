// Package settings stores the user's API key and preferred model in a local
// JSON file and exposes them to the resolver as an llm.PreferenceProvider.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FileName is the settings file inside the config directory.
const FileName = "settings.json"

// Settings is the persisted user preference.
type Settings struct {
	APIKey string `json:"api_key,omitempty" validate:"omitempty,printascii"`
	Model  string `json:"model,omitempty" validate:"omitempty,startswith=gemini"`
}

// Validate checks the values before they are saved.
func (s Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if strings.ContainsAny(s.APIKey+s.Model, " \t\r\n") {
		return errors.New("invalid settings: values must not contain whitespace")
	}
	return nil
}

// MaskedKey returns the API key with all but its last four characters hidden.
func (s Settings) MaskedKey() string {
	if s.APIKey == "" {
		return ""
	}
	if len(s.APIKey) <= 4 {
		return strings.Repeat("*", len(s.APIKey))
	}
	return strings.Repeat("*", len(s.APIKey)-4) + s.APIKey[len(s.APIKey)-4:]
}

// DefaultPath returns $XDG_CONFIG_HOME/resume-studio/settings.json, or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "resume-studio", FileName), nil
}

// FileStore reads settings from a JSON file. Every read goes to disk, so
// changes made by the settings command apply to the next request.
type FileStore struct {
	path string
}

// NewFileStore creates a store for path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the settings file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the settings file. A missing file yields empty settings.
func (s *FileStore) Load() (Settings, error) {
	var out Settings
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return out, nil
	}
	if err != nil {
		return out, fmt.Errorf("failed to read settings file %s: %w", s.path, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to parse settings JSON: %w", err)
	}
	return out, nil
}

// Save validates and writes settings, creating the directory as needed. The
// file is readable only by the owner since it holds a credential.
func (s *FileStore) Save(v Settings) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", s.path, err)
	}
	return nil
}

// APIKey implements llm.PreferenceProvider. Unreadable settings count as
// no stored key.
func (s *FileStore) APIKey() string {
	v, err := s.Load()
	if err != nil {
		return ""
	}
	return v.APIKey
}

// PreferredModel implements llm.PreferenceProvider.
func (s *FileStore) PreferredModel() string {
	v, err := s.Load()
	if err != nil {
		return ""
	}
	return v.Model
}
