package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jonathan/resume-studio/internal/capabilities"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/spf13/cobra"
)

var capabilitiesCommand = &cobra.Command{
	Use:   "capabilities",
	Short: "List every AI capability with its model policy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCLASS\tTIER\tMODE\tMODEL\tTHINKING\tON FAILURE")
		for _, spec := range capabilities.Specs() {
			model := "by tier"
			if spec.PinnedModel != "" {
				model = spec.PinnedModel
			}
			thinking := "-"
			if spec.ThinkingBudget > 0 {
				thinking = fmt.Sprint(spec.ThinkingBudget)
				if spec.ThinkingOnPro {
					thinking += " (pro only)"
				}
			}
			failure := "error"
			if spec.FallsBack {
				failure = "fallback"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", spec.Name, spec.Class, spec.Tier, spec.Mode, model, thinking, failure)
		}
		return w.Flush()
	},
}

var settingsCommand = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the stored API key and preferred model",
}

var settingsShowCommand = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings with the API key masked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := settingsStore()
		if err != nil {
			return err
		}
		v, err := store.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "file:    %s\n", store.Path())
		fmt.Fprintf(out, "api_key: %s\n", orNone(v.MaskedKey()))
		fmt.Fprintf(out, "model:   %s\n", orNone(v.Model))
		fmt.Fprintf(out, "basic tier resolves to:   %s\n", llm.ModelForTier(v.Model, llm.TierBasic))
		fmt.Fprintf(out, "complex tier resolves to: %s\n", llm.ModelForTier(v.Model, llm.TierComplex))
		return nil
	},
}

var (
	setAPIKey string
	setModel  string
)

var settingsSetCommand = &cobra.Command{
	Use:   "set",
	Short: "Store an API key and/or preferred model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !cmd.Flags().Changed("api-key") && !cmd.Flags().Changed("model") {
			return fmt.Errorf("nothing to set: pass --api-key and/or --model")
		}
		store, err := settingsStore()
		if err != nil {
			return err
		}
		v, err := store.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("api-key") {
			v.APIKey = strings.TrimSpace(setAPIKey)
		}
		if cmd.Flags().Changed("model") {
			v.Model = strings.TrimSpace(setModel)
		}
		if err := store.Save(v); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved settings to %s\n", store.Path())
		return nil
	},
}

func orNone(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func init() {
	settingsSetCommand.Flags().StringVar(&setAPIKey, "api-key", "", "Gemini API key (empty string clears it)")
	settingsSetCommand.Flags().StringVar(&setModel, "model", "", "Preferred model, e.g. gemini-2.5-flash (empty string clears it)")

	settingsCommand.AddCommand(settingsShowCommand, settingsSetCommand)
	rootCmd.AddCommand(capabilitiesCommand, settingsCommand)
}
