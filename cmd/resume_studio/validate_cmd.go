package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCommand = &cobra.Command{
	Use:   "validate <schema> <file>",
	Short: "Check a JSON file against one of the embedded schemas",
	Long: "Schemas: " + strings.Join(schemas.Names(), ", ") + `

Use - as the file to read from stdin.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, path := args[0], args[1]
		if !slices.Contains(schemas.Names(), name) {
			return fmt.Errorf("unknown schema %q (available: %s)", name, strings.Join(schemas.Names(), ", "))
		}

		var data []byte
		var err error
		if path == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		if err := schemas.ValidateJSON(name, data); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid %s\n", path, name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCommand)
}
