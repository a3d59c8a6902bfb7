package main

import (
	"github.com/jonathan/resume-studio/internal/capabilities"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/spf13/cobra"
)

var (
	quizTopic      string
	quizDifficulty string
	quizCount      int
)

var quizCommand = &cobra.Command{
	Use:   "quiz",
	Short: "Generate a multiple-choice quiz",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		questions, err := svc.Quiz(cmd.Context(), capabilities.QuizInput{
			Topic:      quizTopic,
			Difficulty: quizDifficulty,
			Count:      quizCount,
		})
		if err != nil {
			return err
		}
		return writeResult(cmd, questions, "")
	},
}

var (
	flashMaterial string
	flashCount    int
)

var flashcardsCommand = &cobra.Command{
	Use:   "flashcards",
	Short: "Generate study flashcards from material",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		material, err := readText(cmd, flashMaterial, "material")
		if err != nil {
			return err
		}
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		cards, err := svc.Flashcards(cmd.Context(), capabilities.FlashcardsInput{Material: material, Count: flashCount})
		if err != nil {
			return err
		}
		return writeResult(cmd, cards, "")
	},
}

var formDescription string

var formCommand = &cobra.Command{
	Use:   "form",
	Short: "Generate a form definition from a description",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		form, err := svc.FormSchema(cmd.Context(), capabilities.FormSchemaInput{Description: formDescription})
		if err != nil {
			return err
		}
		return writeResult(cmd, form, schemas.FormSchema)
	},
}

var (
	optionsLabel string
	optionsForm  string
	optionsCount int
)

var fieldOptionsCommand = &cobra.Command{
	Use:   "field-options",
	Short: "Suggest choices for a select, radio or checkbox field",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		options, err := svc.FieldOptions(cmd.Context(), capabilities.FieldOptionsInput{
			Label:     optionsLabel,
			FormTitle: optionsForm,
			Count:     optionsCount,
		})
		if err != nil {
			return err
		}
		return writeResult(cmd, options, "")
	},
}

var (
	themeDescription string
	themeIndustry    string
)

var themeCommand = &cobra.Command{
	Use:   "theme",
	Short: "Generate a color, font and layout theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		theme, err := svc.DesignTheme(cmd.Context(), capabilities.DesignThemeInput{
			Description: themeDescription,
			Industry:    themeIndustry,
		})
		if err != nil {
			return err
		}
		return writeResult(cmd, theme, schemas.DesignTheme)
	},
}

func init() {
	quizCommand.Flags().StringVar(&quizTopic, "topic", "", "Quiz topic (required)")
	quizCommand.Flags().StringVar(&quizDifficulty, "difficulty", "medium", "easy, medium or hard")
	quizCommand.Flags().IntVarP(&quizCount, "count", "n", 5, "Number of questions")

	flashcardsCommand.Flags().StringVar(&flashMaterial, "material", "", "Path to study material, or - for stdin (required)")
	flashcardsCommand.Flags().IntVarP(&flashCount, "count", "n", 10, "Number of cards")

	formCommand.Flags().StringVarP(&formDescription, "description", "d", "", "What the form is for (required)")

	fieldOptionsCommand.Flags().StringVar(&optionsLabel, "label", "", "Field label (required)")
	fieldOptionsCommand.Flags().StringVar(&optionsForm, "form-title", "", "Title of the form the field belongs to")
	fieldOptionsCommand.Flags().IntVarP(&optionsCount, "count", "n", 5, "Number of options")

	themeCommand.Flags().StringVarP(&themeDescription, "description", "d", "", "Desired look and feel (required)")
	themeCommand.Flags().StringVar(&themeIndustry, "industry", "", "Industry the theme is for")

	rootCmd.AddCommand(quizCommand, flashcardsCommand, formCommand, fieldOptionsCommand, themeCommand)
}
