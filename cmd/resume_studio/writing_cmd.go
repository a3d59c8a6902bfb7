package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-studio/internal/capabilities"
	"github.com/spf13/cobra"
)

var (
	coverResume  string
	coverCompany string
	coverTitle   string
	coverTone    string
	coverJob     string
	coverJobURL  string
)

var coverLetterCommand = &cobra.Command{
	Use:   "cover-letter",
	Short: "Write a cover letter tailored to a job posting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resume, err := readResume(coverResume)
		if err != nil {
			return err
		}
		job, err := jobText(cmd.Context(), cmd, coverJob, coverJobURL)
		if err != nil {
			return err
		}
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		letter, err := svc.CoverLetter(cmd.Context(), capabilities.CoverLetterInput{
			Resume:         resume,
			JobDescription: job,
			Company:        coverCompany,
			JobTitle:       coverTitle,
			Tone:           coverTone,
		})
		if err != nil {
			return err
		}
		return writeResult(cmd, letter, "")
	},
}

var (
	refineContent     string
	refineInstruction string
	refineHTML        bool
)

var refineCommand = &cobra.Command{
	Use:   "refine",
	Short: "Rewrite a piece of content according to an instruction",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		content, err := readText(cmd, refineContent, "content")
		if err != nil {
			return err
		}
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		refined, err := svc.RefineContent(cmd.Context(), capabilities.RefineInput{
			Content:     content,
			Instruction: refineInstruction,
			HTML:        refineHTML,
		})
		if err != nil {
			return err
		}
		return writeResult(cmd, refined, "")
	},
}

// textRunner decodes a JSON input file into a capability's input type.
type textRunner func(ctx context.Context, svc *capabilities.Service, input []byte) (string, error)

func runText[In any](fn func(*capabilities.Service, context.Context, In) (string, error)) textRunner {
	return func(ctx context.Context, svc *capabilities.Service, input []byte) (string, error) {
		var in In
		if err := json.Unmarshal(input, &in); err != nil {
			return "", fmt.Errorf("failed to parse input JSON: %w", err)
		}
		return fn(svc, ctx, in)
	}
}

// textRunners covers the free-text capabilities without a dedicated command.
// JSON keys match input field names case-insensitively.
var textRunners = map[string]textRunner{
	"summary":             runText((*capabilities.Service).Summary),
	"improve_description": runText((*capabilities.Service).ImproveDescription),
	"cold_email":          runText((*capabilities.Service).ColdEmail),
	"salary_script":       runText((*capabilities.Service).SalaryScript),
	"email_template":      runText((*capabilities.Service).EmailTemplate),
	"translate":           runText((*capabilities.Service).Translate),
	"lesson_plan":         runText((*capabilities.Service).LessonPlan),
	"essay_outline":       runText((*capabilities.Service).EssayOutline),
	"study_plan":          runText((*capabilities.Service).StudyPlan),
	"explain_concept":     runText((*capabilities.Service).ExplainConcept),
	"rubric":              runText((*capabilities.Service).Rubric),
	"agent_step":          runText((*capabilities.Service).AgentStep),
}

func textRunnerNames() []string {
	names := make([]string, 0, len(textRunners))
	for name := range textRunners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// textRunnerFor resolves a capability name through the registry, so names
// of structured capabilities get a pointer to their own command.
func textRunnerFor(name string) (textRunner, error) {
	spec, ok := capabilities.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown capability %q (available: %s)", name, strings.Join(textRunnerNames(), ", "))
	}
	run, ok := textRunners[spec.Name]
	if !ok {
		return nil, fmt.Errorf("%s is a %s capability with its own command; see resume_studio --help", spec.Name, spec.Class)
	}
	return run, nil
}

var textInput string

var textCommand = &cobra.Command{
	Use:   "text <capability>",
	Short: "Run a free-text capability with a JSON input file",
	Long: "Runs one of: " + strings.Join(textRunnerNames(), ", ") + `

The input file holds the capability's fields, for example
{"jobTitle": "Backend Engineer", "years": 6, "skills": ["Go", "Kafka"]} for summary.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := textRunnerFor(args[0])
		if err != nil {
			return err
		}
		input, err := readText(cmd, textInput, "input")
		if err != nil {
			return err
		}
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		result, err := run(cmd.Context(), svc, []byte(input))
		if err != nil {
			return err
		}
		return writeResult(cmd, result, "")
	},
}

func init() {
	coverLetterCommand.Flags().StringVarP(&coverResume, "resume", "r", "", "Path to resume JSON (required)")
	coverLetterCommand.Flags().StringVar(&coverCompany, "company", "", "Company name (required)")
	coverLetterCommand.Flags().StringVarP(&coverTitle, "title", "t", "", "Job title (defaults to the resume's)")
	coverLetterCommand.Flags().StringVar(&coverTone, "tone", "professional", "Writing tone")
	coverLetterCommand.Flags().StringVarP(&coverJob, "job", "j", "", "Path to job description text, or - for stdin")
	coverLetterCommand.Flags().StringVar(&coverJobURL, "job-url", "", "URL of the job posting to fetch")

	refineCommand.Flags().StringVar(&refineContent, "content", "", "Path to the content, or - for stdin (required)")
	refineCommand.Flags().StringVarP(&refineInstruction, "instruction", "i", "", "How to refine it (required)")
	refineCommand.Flags().BoolVar(&refineHTML, "html", false, "Return an HTML fragment instead of plain text")

	textCommand.Flags().StringVarP(&textInput, "input", "f", "", "Path to input JSON, or - for stdin (required)")

	rootCmd.AddCommand(coverLetterCommand, refineCommand, textCommand)
}
