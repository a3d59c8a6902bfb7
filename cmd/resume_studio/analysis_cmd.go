package main

import (
	"github.com/jonathan/resume-studio/internal/capabilities"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/spf13/cobra"
)

var (
	auditResume string
	auditDeep   bool
	auditRole   string
)

var auditCommand = &cobra.Command{
	Use:   "audit",
	Short: "Score a resume with strengths and improvements",
	Long: `Runs the basic audit on your preferred model, or with --deep the thorough
audit on the high-capability model. The basic audit returns a generic
assessment instead of failing when the model is unavailable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resume, err := readResume(auditResume)
		if err != nil {
			return err
		}
		svc, err := newService(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if auditDeep {
			result, err := svc.DeepAudit(ctx, capabilities.DeepAuditInput{Resume: resume, TargetRole: auditRole})
			if err != nil {
				return err
			}
			return writeResult(cmd, result, schemas.AuditResult)
		}
		result, err := svc.BasicAudit(ctx, capabilities.ResumeInput{Resume: resume})
		if err != nil {
			return err
		}
		return writeResult(cmd, result, schemas.AuditResult)
	},
}

var careerResume string

var careerPathsCommand = &cobra.Command{
	Use:   "career-paths",
	Short: "Suggest next roles with salary ranges and timelines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resume, err := readResume(careerResume)
		if err != nil {
			return err
		}
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		paths, err := svc.CareerPaths(cmd.Context(), capabilities.ResumeInput{Resume: resume})
		if err != nil {
			return err
		}
		return writeResult(cmd, paths, "")
	},
}

var (
	matchResume string
	matchJob    string
	matchJobURL string
)

var jobMatchCommand = &cobra.Command{
	Use:   "job-match",
	Short: "Compare a resume against a job description",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resume, err := readResume(matchResume)
		if err != nil {
			return err
		}
		job, err := jobText(cmd.Context(), cmd, matchJob, matchJobURL)
		if err != nil {
			return err
		}
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		match, err := svc.JobMatch(cmd.Context(), capabilities.JobMatchInput{Resume: resume, JobDescription: job})
		if err != nil {
			return err
		}
		return writeResult(cmd, match, schemas.JobMatch)
	},
}

var (
	interviewTitle  string
	interviewJob    string
	interviewJobURL string
	interviewCount  int
)

var interviewCommand = &cobra.Command{
	Use:   "interview",
	Short: "Generate likely interview questions with answering tips",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		job, err := jobText(cmd.Context(), cmd, interviewJob, interviewJobURL)
		if err != nil {
			return err
		}
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		questions, err := svc.InterviewQuestions(cmd.Context(), capabilities.InterviewInput{
			JobTitle:       interviewTitle,
			JobDescription: job,
			Count:          interviewCount,
		})
		if err != nil {
			return err
		}
		return writeResult(cmd, questions, "")
	},
}

var (
	linkedInResume string
	linkedInTone   string
)

var linkedInContentCommand = &cobra.Command{
	Use:   "linkedin-content",
	Short: "Suggest a LinkedIn headline, about section and posts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resume, err := readResume(linkedInResume)
		if err != nil {
			return err
		}
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		content, err := svc.LinkedInContent(cmd.Context(), capabilities.LinkedInContentInput{Resume: resume, Tone: linkedInTone})
		if err != nil {
			return err
		}
		return writeResult(cmd, content, "")
	},
}

func init() {
	auditCommand.Flags().StringVarP(&auditResume, "resume", "r", "", "Path to resume JSON (required)")
	auditCommand.Flags().BoolVar(&auditDeep, "deep", false, "Run the thorough audit on the high-capability model")
	auditCommand.Flags().StringVar(&auditRole, "role", "", "Target role for the deep audit")

	careerPathsCommand.Flags().StringVarP(&careerResume, "resume", "r", "", "Path to resume JSON (required)")

	jobMatchCommand.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume JSON (required)")
	jobMatchCommand.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job description text, or - for stdin")
	jobMatchCommand.Flags().StringVar(&matchJobURL, "job-url", "", "URL of the job posting to fetch")

	interviewCommand.Flags().StringVarP(&interviewTitle, "title", "t", "", "Job title (required)")
	interviewCommand.Flags().StringVarP(&interviewJob, "job", "j", "", "Path to job description text, or - for stdin")
	interviewCommand.Flags().StringVar(&interviewJobURL, "job-url", "", "URL of the job posting to fetch")
	interviewCommand.Flags().IntVarP(&interviewCount, "count", "n", 5, "Number of questions")

	linkedInContentCommand.Flags().StringVarP(&linkedInResume, "resume", "r", "", "Path to resume JSON (required)")
	linkedInContentCommand.Flags().StringVar(&linkedInTone, "tone", "professional", "Writing tone")

	rootCmd.AddCommand(auditCommand, careerPathsCommand, jobMatchCommand, interviewCommand, linkedInContentCommand)
}
