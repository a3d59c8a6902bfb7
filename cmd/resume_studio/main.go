// Package main provides the resume_studio CLI, a command-line surface over
// the AI capability layer of the resume builder.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/spf13/cobra"
)

var (
	settingsPath string
	outPath      string
	validateOut  bool
	prettyOut    bool
	verbose      bool
	quiet        bool
	temperature  float32
)

var rootCmd = &cobra.Command{
	Use:   "resume_studio",
	Short: "AI writing, analysis and chat tools for resumes",
	Long: `resume_studio runs the resume builder's AI capabilities from the command line:
audits, cover letters, job matching, interview prep, whole-resume generation,
chat-driven edits, portfolio sites and study aids.

The API key is read from the settings file (see "resume_studio settings"),
then from GEMINI_API_KEY or API_KEY.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Path to settings.json (default $XDG_CONFIG_HOME/resume-studio/settings.json)")
	rootCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "", "Write the result to a file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&validateOut, "validate", false, "Check structured results against their JSON schema before writing")
	rootCmd.PersistentFlags().BoolVar(&prettyOut, "pretty", false, "Print audits, matches, career paths, interview questions and chat replies as boxed summaries")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each model invocation")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().Float32Var(&temperature, "temperature", llm.DefaultTemperature, "Sampling temperature for model calls")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
