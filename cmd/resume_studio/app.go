package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/resume-studio/internal/capabilities"
	"github.com/jonathan/resume-studio/internal/fetch"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/logging"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/settings"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/spf13/cobra"
)

// newClient is replaced in tests.
var newClient = func() llm.Client {
	return llm.NewGeminiClient(llm.WithTemperature(temperature))
}

var jobFetcher = fetch.New()

func settingsStore() (*settings.FileStore, error) {
	path := settingsPath
	if path == "" {
		var err error
		if path, err = settings.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return settings.NewFileStore(path), nil
}

func newService(cmd *cobra.Command) (*capabilities.Service, error) {
	store, err := settingsStore()
	if err != nil {
		return nil, err
	}
	logger := logging.New(cmd.ErrOrStderr(), logging.Level(verbose, quiet), true)
	return capabilities.NewService(newClient(), llm.NewResolver(store), capabilities.WithLogger(logger)), nil
}

// readResume loads a resume JSON file. It goes through the normalizer so
// hand-written files get defaults and IDs like generated ones.
func readResume(path string) (types.ResumeProfile, error) {
	if path == "" {
		return types.ResumeProfile{}, errors.New("--resume is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ResumeProfile{}, fmt.Errorf("failed to read resume file: %w", err)
	}
	p, err := normalize.DecodeResume("resume file", string(data), nil)
	if err != nil {
		return types.ResumeProfile{}, fmt.Errorf("failed to parse resume file %s: %w", path, err)
	}
	return p, nil
}

// readText returns the contents of path, or stdin when path is "-".
func readText(cmd *cobra.Command, path, flag string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--%s is required", flag)
	}
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read --%s: %w", flag, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// jobText reads a job description from a file or fetches it from a posting URL.
func jobText(ctx context.Context, cmd *cobra.Command, file, url string) (string, error) {
	switch {
	case file != "" && url != "":
		return "", errors.New("--job and --job-url are mutually exclusive")
	case url != "":
		return jobFetcher.JobDescription(ctx, url)
	case file != "":
		return readText(cmd, file, "job")
	default:
		return "", nil
	}
}

// writeResult prints v as indented JSON, or verbatim when it is a string.
// With --validate, structured results are checked against schema first;
// with --pretty, results that have a boxed rendering are printed that way.
func writeResult(cmd *cobra.Command, v any, schema string) error {
	if validateOut && schema != "" {
		if err := schemas.Validate(schema, v); err != nil {
			return err
		}
	}
	if prettyOut && outPath == "" && observability.NewPrinter(cmd.OutOrStdout()).Print(v) {
		return nil
	}

	var data []byte
	if s, ok := v.(string); ok {
		data = []byte(s + "\n")
	} else {
		encoded, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		data = append(encoded, '\n')
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		return nil
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
