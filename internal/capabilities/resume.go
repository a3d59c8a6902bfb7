package capabilities

import (
	"context"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/types"
)

var generateResumeCapability = register(Capability[GenerateResumeInput, types.ResumeProfile]{
	Spec: jsonSpec("generate_resume", "Whole resume from a free-form description", ClassWholeResume, llm.TierComplex),
	Prompt: template("resume.json", "generate_resume", func(in GenerateResumeInput) map[string]string {
		return map[string]string{"Prompt": in.Prompt}
	}),
	Decode: func(raw string, _ GenerateResumeInput) (types.ResumeProfile, error) {
		return normalize.DecodeResume("generate_resume", raw, nil)
	},
})

var importLinkedInCapability = register(Capability[LinkedInImportInput, types.ResumeProfile]{
	Spec: Spec{
		Name:           "import_linkedin",
		Description:    "Whole resume from pasted LinkedIn profile text",
		Class:          ClassWholeResume,
		Tier:           llm.TierComplex,
		Mode:           llm.ModeJSON,
		PinnedModel:    llm.HighCapabilityModel,
		ThinkingBudget: llm.MaxThinkingBudget,
	},
	Prompt: template("resume.json", "import_linkedin", func(in LinkedInImportInput) map[string]string {
		return map[string]string{"ProfileText": in.ProfileText}
	}),
	Decode: func(raw string, _ LinkedInImportInput) (types.ResumeProfile, error) {
		return normalize.DecodeResume("import_linkedin", raw, nil)
	},
})

var updateResumeCapability = register(Capability[UpdateResumeInput, types.ResumeProfile]{
	Spec: jsonSpec("update_resume", "Apply an instruction to a resume and return the whole resume", ClassWholeResume, llm.TierComplex),
	Prompt: template("resume.json", "update_resume", func(in UpdateResumeInput) map[string]string {
		return map[string]string{
			"Instruction": in.Instruction,
			"Resume":      resumeJSON(in.Resume, 0),
		}
	}),
	Decode: func(raw string, in UpdateResumeInput) (types.ResumeProfile, error) {
		return normalize.DecodeResume("update_resume", raw, &in.Resume)
	},
})

// GenerateResume builds a resume from a description. Every list item leaves
// with an ID.
func (s *Service) GenerateResume(ctx context.Context, in GenerateResumeInput) (types.ResumeProfile, error) {
	return run(ctx, s, generateResumeCapability, in)
}

// ImportLinkedIn converts pasted profile text into a resume on the pinned
// high-capability model.
func (s *Service) ImportLinkedIn(ctx context.Context, in LinkedInImportInput) (types.ResumeProfile, error) {
	return run(ctx, s, importLinkedInCapability, in)
}

// UpdateResume applies an instruction and returns the whole updated resume.
// Existing IDs are preserved; sections the response omits keep their
// current content.
func (s *Service) UpdateResume(ctx context.Context, in UpdateResumeInput) (types.ResumeProfile, error) {
	return run(ctx, s, updateResumeCapability, in)
}
