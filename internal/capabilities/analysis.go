package capabilities

import (
	"context"
	"strconv"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/prompts"
	"github.com/jonathan/resume-studio/internal/types"
)

// BasicAuditFallback is returned by BasicAudit when the model call or the
// response fails.
func BasicAuditFallback() types.AuditResult {
	return types.AuditResult{
		Score:   75,
		Summary: "Your resume has a solid foundation. Automated analysis is unavailable right now, so this is a general assessment.",
		Strengths: []string{
			"Clear structure with standard resume sections",
			"Relevant experience is listed",
		},
		Improvements: []string{
			"Quantify achievements with numbers and outcomes",
			"Tailor the summary and skills to the roles you target",
			"Start each bullet with a strong action verb",
		},
	}
}

// JobMatchFallback is returned by JobMatch when the model call or the
// response fails.
func JobMatchFallback() types.JobMatch {
	return types.JobMatch{
		MatchScore:      0,
		Summary:         "Unable to analyze job match right now. Please try again.",
		MatchingSkills:  []string{},
		MissingSkills:   []string{},
		Recommendations: []string{},
	}
}

// InterviewFallback is returned by InterviewQuestions when the model call or
// the response fails.
func InterviewFallback() []types.InterviewQuestion {
	return []types.InterviewQuestion{
		{
			Question: "Tell me about yourself and your background.",
			Category: "general",
			Tip:      "Keep it to two minutes and connect your experience to this role.",
		},
		{
			Question: "Describe a challenging project and how you handled it.",
			Category: "behavioral",
			Tip:      "Use the STAR method: situation, task, action, result.",
		},
		{
			Question: "Why are you interested in this position?",
			Category: "general",
			Tip:      "Reference specifics of the company and the role.",
		},
	}
}

var basicAuditCapability = register(Capability[ResumeInput, types.AuditResult]{
	Spec: jsonSpec("basic_audit", "Quick resume score with strengths and improvements", ClassStructured, llm.TierBasic),
	Prompt: template("analysis.json", "basic_audit", func(in ResumeInput) map[string]string {
		return map[string]string{"Resume": resumeJSON(in.Resume, prompts.ResumeContextBudget)}
	}),
	Decode:   decodeWith[ResumeInput]("basic_audit", normalize.DecodeAudit),
	Fallback: func(ResumeInput) types.AuditResult { return BasicAuditFallback() },
})

var deepAuditCapability = register(Capability[DeepAuditInput, types.AuditResult]{
	Spec: Spec{
		Name:           "deep_audit",
		Description:    "Thorough resume audit on the high-capability model",
		Class:          ClassStructured,
		Tier:           llm.TierComplex,
		Mode:           llm.ModeJSON,
		PinnedModel:    llm.HighCapabilityModel,
		ThinkingBudget: llm.MaxThinkingBudget,
	},
	Prompt: template("analysis.json", "deep_audit", func(in DeepAuditInput) map[string]string {
		role := ""
		if in.TargetRole != "" {
			role = " for the role of " + in.TargetRole
		}
		return map[string]string{"TargetRole": role, "Resume": resumeJSON(in.Resume, 0)}
	}),
	Decode: decodeWith[DeepAuditInput]("deep_audit", normalize.DecodeAudit),
})

var careerPathsCapability = register(Capability[ResumeInput, []types.CareerPath]{
	Spec: Spec{
		Name:           "career_paths",
		Description:    "Suggested next roles with salary and timeline",
		Class:          ClassStructured,
		Tier:           llm.TierComplex,
		Mode:           llm.ModeJSON,
		PinnedModel:    llm.HighCapabilityModel,
		ThinkingBudget: llm.MaxThinkingBudget,
	},
	Prompt: template("analysis.json", "career_paths", func(in ResumeInput) map[string]string {
		return map[string]string{"Resume": resumeJSON(in.Resume, 0)}
	}),
	Decode:   decodeWith[ResumeInput]("career_paths", normalize.DecodeCareerPaths),
	Fallback: func(ResumeInput) []types.CareerPath { return []types.CareerPath{} },
})

var jobMatchCapability = register(Capability[JobMatchInput, types.JobMatch]{
	Spec: jsonSpec("job_match", "Compare a resume against a job description", ClassStructured, llm.TierComplex),
	Prompt: template("analysis.json", "job_match", func(in JobMatchInput) map[string]string {
		return map[string]string{
			"JobDescription": prompts.Truncate(in.JobDescription, prompts.JobDescriptionBudget),
			"Resume":         resumeJSON(in.Resume, prompts.ResumeMatchBudget),
		}
	}),
	Decode:   decodeWith[JobMatchInput]("job_match", normalize.DecodeJobMatch),
	Fallback: func(JobMatchInput) types.JobMatch { return JobMatchFallback() },
})

var interviewQuestionsCapability = register(Capability[InterviewInput, []types.InterviewQuestion]{
	Spec: jsonSpec("interview_questions", "Likely interview questions with tips", ClassStructured, llm.TierBasic),
	Prompt: template("analysis.json", "interview_questions", func(in InterviewInput) map[string]string {
		return map[string]string{
			"JobTitle":       in.JobTitle,
			"Count":          strconv.Itoa(orDefaultInt(in.Count, 5)),
			"JobDescription": orDefault(prompts.Truncate(in.JobDescription, prompts.InterviewJobDescriptionBudget), "Not provided"),
		}
	}),
	Decode:   decodeWith[InterviewInput]("interview_questions", normalize.DecodeInterviewQuestions),
	Fallback: func(InterviewInput) []types.InterviewQuestion { return InterviewFallback() },
})

var linkedInContentCapability = register(Capability[LinkedInContentInput, types.LinkedInContent]{
	Spec: jsonSpec("linkedin_content", "LinkedIn headline, about section and posts", ClassStructured, llm.TierBasic),
	Prompt: template("analysis.json", "linkedin_content", func(in LinkedInContentInput) map[string]string {
		return map[string]string{
			"Tone":   orDefault(in.Tone, "professional"),
			"Resume": resumeJSON(in.Resume, 0),
		}
	}),
	Decode: decodeWith[LinkedInContentInput]("linkedin_content", normalize.DecodeLinkedInContent),
})

// BasicAudit scores a resume on the user's preferred model. It never fails
// for upstream or parse errors: those yield BasicAuditFallback.
func (s *Service) BasicAudit(ctx context.Context, in ResumeInput) (types.AuditResult, error) {
	return run(ctx, s, basicAuditCapability, in)
}

// DeepAudit audits a resume on the pinned high-capability model with
// extended thinking. Failures propagate.
func (s *Service) DeepAudit(ctx context.Context, in DeepAuditInput) (types.AuditResult, error) {
	return run(ctx, s, deepAuditCapability, in)
}

// CareerPaths suggests next roles; failures yield an empty list.
func (s *Service) CareerPaths(ctx context.Context, in ResumeInput) ([]types.CareerPath, error) {
	return run(ctx, s, careerPathsCapability, in)
}

// JobMatch compares a resume with a job description; failures yield
// JobMatchFallback.
func (s *Service) JobMatch(ctx context.Context, in JobMatchInput) (types.JobMatch, error) {
	return run(ctx, s, jobMatchCapability, in)
}

// InterviewQuestions generates likely questions; failures yield
// InterviewFallback.
func (s *Service) InterviewQuestions(ctx context.Context, in InterviewInput) ([]types.InterviewQuestion, error) {
	return run(ctx, s, interviewQuestionsCapability, in)
}

// LinkedInContent drafts LinkedIn profile copy and posts from the resume.
func (s *Service) LinkedInContent(ctx context.Context, in LinkedInContentInput) (types.LinkedInContent, error) {
	return run(ctx, s, linkedInContentCapability, in)
}
