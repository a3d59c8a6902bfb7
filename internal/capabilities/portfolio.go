package capabilities

import (
	"context"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/types"
)

var portfolioCapability = register(Capability[ResumeInput, string]{
	Spec: Spec{
		Name:        "portfolio",
		Description: "Single-file HTML portfolio site from a resume",
		Class:       ClassCode,
		Tier:        llm.TierComplex,
		Mode:        llm.ModeText,
		PinnedModel: llm.HighCapabilityModel,
	},
	Prompt: template("portfolio.json", "portfolio", func(in ResumeInput) map[string]string {
		return map[string]string{
			"Resume":     resumeJSON(in.Resume, 0),
			"ThemeColor": orDefault(in.Resume.ThemeColor, types.DefaultThemeColor),
		}
	}),
	Decode: func(raw string, _ ResumeInput) (string, error) {
		html := normalize.HTMLDocument(raw)
		if html == "" {
			return "", &normalize.MalformedResponseError{Capability: "portfolio", Message: "empty HTML document"}
		}
		return html, nil
	},
})

// Portfolio generates a self-contained HTML site. The result starts at the
// document's opening tag with any code fences removed.
func (s *Service) Portfolio(ctx context.Context, in ResumeInput) (string, error) {
	return run(ctx, s, portfolioCapability, in)
}
