package capabilities

import (
	"context"
	"strconv"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/prompts"
)

const (
	refineHTMLFormat = "Return ONLY the refined content as an HTML fragment using semantic tags (<p>, <ul>, <li>, <strong>, <h3>). No <html>, <head> or <body> tags, no markdown, no code blocks, no commentary."
	refineTextFormat = "Return ONLY the refined content as plain text, no markdown, no code blocks, no commentary."
)

var summaryCapability = register(Capability[SummaryInput, string]{
	Spec: textSpec("summary", "Professional summary from title, skills and experience", llm.TierBasic),
	Prompt: template("resume.json", "summary", func(in SummaryInput) map[string]string {
		years := "Not specified"
		if in.Years > 0 {
			years = strconv.Itoa(in.Years)
		}
		return map[string]string{
			"JobTitle":   in.JobTitle,
			"Years":      years,
			"Skills":     joinOr(in.Skills, "Not provided"),
			"Experience": experienceLines(in.Experience),
		}
	}),
	Decode: decodeText[SummaryInput],
})

var improveDescriptionCapability = register(Capability[DescriptionInput, string]{
	Spec: textSpec("improve_description", "Rewrite a job description as impact-focused bullets", llm.TierBasic),
	Prompt: template("resume.json", "improve_description", func(in DescriptionInput) map[string]string {
		return map[string]string{
			"Position":    in.Position,
			"Company":     orDefault(in.Company, "Not specified"),
			"Description": in.Description,
		}
	}),
	Decode: decodeText[DescriptionInput],
})

var coverLetterCapability = register(Capability[CoverLetterInput, string]{
	Spec: textSpec("cover_letter", "Tailored cover letter for a job posting", llm.TierComplex),
	Prompt: template("writing.json", "cover_letter", func(in CoverLetterInput) map[string]string {
		info := in.Resume.PersonalInfo
		return map[string]string{
			"FullName":       orDefault(info.FullName, "the candidate"),
			"Company":        in.Company,
			"JobTitle":       orDefault(in.JobTitle, orDefault(info.JobTitle, "the open position")),
			"Tone":           orDefault(in.Tone, "professional"),
			"JobDescription": prompts.Truncate(in.JobDescription, prompts.JobDescriptionBudget),
			"Summary":        orDefault(info.Summary, "Not provided"),
			"Skills":         joinOr(in.Resume.Skills, "Not provided"),
			"Experience":     experienceLines(in.Resume.Experience),
		}
	}),
	Decode: decodeText[CoverLetterInput],
})

var coldEmailCapability = register(Capability[ColdEmailInput, string]{
	Spec: textSpec("cold_email", "Short outreach email to a contact at a company", llm.TierBasic),
	Prompt: template("writing.json", "cold_email", func(in ColdEmailInput) map[string]string {
		return map[string]string{
			"Recipient": in.Recipient,
			"Company":   in.Company,
			"Purpose":   in.Purpose,
			"Resume":    resumeJSON(in.Resume, prompts.ResumeExcerptBudget),
		}
	}),
	Decode: decodeText[ColdEmailInput],
})

var salaryScriptCapability = register(Capability[SalaryInput, string]{
	Spec: textSpec("salary_script", "Salary negotiation script", llm.TierBasic),
	Prompt: template("writing.json", "salary_script", func(in SalaryInput) map[string]string {
		return map[string]string{
			"JobTitle":     in.JobTitle,
			"CurrentOffer": in.CurrentOffer,
			"TargetSalary": in.TargetSalary,
			"Leverage":     orDefault(in.Leverage, "None specified"),
		}
	}),
	Decode: decodeText[SalaryInput],
})

var emailTemplateCapability = register(Capability[EmailTemplateInput, string]{
	Spec: textSpec("email_template", "Job-search email such as a follow-up or thank-you note", llm.TierBasic),
	Prompt: template("writing.json", "email_template", func(in EmailTemplateInput) map[string]string {
		return map[string]string{
			"Kind":    in.Kind,
			"Context": in.Context,
			"Tone":    orDefault(in.Tone, "professional"),
		}
	}),
	Decode: decodeText[EmailTemplateInput],
})

var translateCapability = register(Capability[TranslateInput, string]{
	Spec: textSpec("translate", "Translate resume text into another language", llm.TierBasic),
	Prompt: template("resume.json", "translate", func(in TranslateInput) map[string]string {
		return map[string]string{"Language": in.Language, "Text": in.Text}
	}),
	Decode: decodeText[TranslateInput],
})

var agentStepCapability = register(Capability[AgentStepInput, string]{
	Spec: textSpec("agent_step", "One step of a multi-step writing agent", llm.TierBasic),
	Prompt: template("writing.json", "agent_step", func(in AgentStepInput) map[string]string {
		return map[string]string{
			"Step":        orDefault(in.Step, "1"),
			"Instruction": in.Instruction,
			"Input":       orDefault(in.Input, "None"),
		}
	}),
	Decode: decodeText[AgentStepInput],
})

var refineContentCapability = register(Capability[RefineInput, string]{
	Spec: Spec{
		Name:           "refine_content",
		Description:    "Rewrite content per an instruction, as plain text or an HTML fragment",
		Class:          ClassFreeText,
		Tier:           llm.TierComplex,
		Mode:           llm.ModeText,
		PinnedModel:    llm.HighCapabilityModel,
		ThinkingBudget: llm.MaxThinkingBudget,
	},
	Prompt: template("writing.json", "refine_content", func(in RefineInput) map[string]string {
		format := refineTextFormat
		if in.HTML {
			format = refineHTMLFormat
		}
		return map[string]string{
			"Instruction": in.Instruction,
			"Content":     in.Content,
			"Format":      format,
		}
	}),
	Decode: func(raw string, in RefineInput) (string, error) {
		if in.HTML {
			return normalize.HTMLFragment(raw), nil
		}
		return normalize.Text(raw), nil
	},
})

// Summary writes a professional summary.
func (s *Service) Summary(ctx context.Context, in SummaryInput) (string, error) {
	return run(ctx, s, summaryCapability, in)
}

// ImproveDescription rewrites a position description.
func (s *Service) ImproveDescription(ctx context.Context, in DescriptionInput) (string, error) {
	return run(ctx, s, improveDescriptionCapability, in)
}

// CoverLetter writes a cover letter. The job description is cut to
// prompts.JobDescriptionBudget characters.
func (s *Service) CoverLetter(ctx context.Context, in CoverLetterInput) (string, error) {
	return run(ctx, s, coverLetterCapability, in)
}

// ColdEmail writes an outreach email from a resume excerpt.
func (s *Service) ColdEmail(ctx context.Context, in ColdEmailInput) (string, error) {
	return run(ctx, s, coldEmailCapability, in)
}

// SalaryScript writes a salary negotiation script.
func (s *Service) SalaryScript(ctx context.Context, in SalaryInput) (string, error) {
	return run(ctx, s, salaryScriptCapability, in)
}

// EmailTemplate writes a job-search email of the requested kind.
func (s *Service) EmailTemplate(ctx context.Context, in EmailTemplateInput) (string, error) {
	return run(ctx, s, emailTemplateCapability, in)
}

// Translate translates resume text into the target language.
func (s *Service) Translate(ctx context.Context, in TranslateInput) (string, error) {
	return run(ctx, s, translateCapability, in)
}

// AgentStep runs one step of a multi-step writing agent.
func (s *Service) AgentStep(ctx context.Context, in AgentStepInput) (string, error) {
	return run(ctx, s, agentStepCapability, in)
}

// RefineContent rewrites content on the pinned high-capability model with
// extended thinking. HTML results have code fences removed.
func (s *Service) RefineContent(ctx context.Context, in RefineInput) (string, error) {
	return run(ctx, s, refineContentCapability, in)
}
