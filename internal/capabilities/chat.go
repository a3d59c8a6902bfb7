package capabilities

import (
	"context"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/prompts"
	"github.com/jonathan/resume-studio/internal/types"
)

var chatCapability = register(Capability[ChatInput, types.ChatReply]{
	Spec: Spec{
		Name:           "chat",
		Description:    "Route a chat message to a resume update, job search or reply",
		Class:          ClassStructured,
		Tier:           llm.TierComplex,
		Mode:           llm.ModeJSON,
		ThinkingBudget: llm.MaxThinkingBudget,
		ThinkingOnPro:  true,
	},
	Prompt: template("chat.json", "chat", func(in ChatInput) map[string]string {
		return map[string]string{
			"Resume":  resumeJSON(in.Resume, prompts.ResumeContextBudget),
			"Message": in.Message,
		}
	}),
	Decode: func(raw string, in ChatInput) (types.ChatReply, error) {
		return normalize.DecodeChatReply("chat", raw, in.Resume)
	},
})

// Chat classifies one utterance against the current resume in a single
// model call. A ResumeUpdate carries the whole resume; a JobSuggestion only
// carries the query, no search is run.
func (s *Service) Chat(ctx context.Context, in ChatInput) (types.ChatReply, error) {
	return run(ctx, s, chatCapability, in)
}
