package main

import (
	"fmt"

	"github.com/jonathan/resume-studio/internal/capabilities"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/spf13/cobra"
)

var generatePrompt string

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate a whole resume from a free-form description",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		resume, err := svc.GenerateResume(cmd.Context(), capabilities.GenerateResumeInput{Prompt: generatePrompt})
		if err != nil {
			return err
		}
		return writeResult(cmd, resume, schemas.ResumeProfile)
	},
}

var importProfile string

var importLinkedInCommand = &cobra.Command{
	Use:   "import-linkedin",
	Short: "Convert pasted LinkedIn profile text into a resume",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		text, err := readText(cmd, importProfile, "profile")
		if err != nil {
			return err
		}
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		resume, err := svc.ImportLinkedIn(cmd.Context(), capabilities.LinkedInImportInput{ProfileText: text})
		if err != nil {
			return err
		}
		return writeResult(cmd, resume, schemas.ResumeProfile)
	},
}

var (
	updateResume      string
	updateInstruction string
)

var updateCommand = &cobra.Command{
	Use:   "update",
	Short: "Apply an instruction to a resume and print the whole updated resume",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resume, err := readResume(updateResume)
		if err != nil {
			return err
		}
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		updated, err := svc.UpdateResume(cmd.Context(), capabilities.UpdateResumeInput{Resume: resume, Instruction: updateInstruction})
		if err != nil {
			return err
		}
		return writeResult(cmd, updated, schemas.ResumeProfile)
	},
}

var (
	chatResume  string
	chatMessage string
)

var chatCommand = &cobra.Command{
	Use:   "chat",
	Short: "Send one chat message about a resume",
	Long: `Routes the message to a resume update, a job search suggestion or a plain
reply. The reply is printed as JSON with an "action" field; for update_resume
it carries the whole updated resume, which can be written back with --out.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resume, err := readResume(chatResume)
		if err != nil {
			return err
		}
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		reply, err := svc.Chat(cmd.Context(), capabilities.ChatInput{Resume: resume, Message: chatMessage})
		if err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", reply.Action(), reply.Reply())
		}
		if update, ok := reply.(types.ResumeUpdate); ok && outPath != "" {
			return writeResult(cmd, update.UpdatedResume, schemas.ResumeProfile)
		}
		return writeResult(cmd, reply, schemas.ChatReply)
	},
}

var portfolioResume string

var portfolioCommand = &cobra.Command{
	Use:   "portfolio",
	Short: "Generate a single-file HTML portfolio site",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resume, err := readResume(portfolioResume)
		if err != nil {
			return err
		}
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		html, err := svc.Portfolio(cmd.Context(), capabilities.ResumeInput{Resume: resume})
		if err != nil {
			return err
		}
		return writeResult(cmd, html, "")
	},
}

func init() {
	generateCommand.Flags().StringVarP(&generatePrompt, "prompt", "p", "", "Description of the person and target role (required)")

	importLinkedInCommand.Flags().StringVar(&importProfile, "profile", "", "Path to pasted profile text, or - for stdin (required)")

	updateCommand.Flags().StringVarP(&updateResume, "resume", "r", "", "Path to resume JSON (required)")
	updateCommand.Flags().StringVarP(&updateInstruction, "instruction", "i", "", "What to change (required)")

	chatCommand.Flags().StringVarP(&chatResume, "resume", "r", "", "Path to resume JSON (required)")
	chatCommand.Flags().StringVarP(&chatMessage, "message", "m", "", "Chat message (required)")

	portfolioCommand.Flags().StringVarP(&portfolioResume, "resume", "r", "", "Path to resume JSON (required)")

	rootCmd.AddCommand(generateCommand, importLinkedInCommand, updateCommand, chatCommand, portfolioCommand)
}
