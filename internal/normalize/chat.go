package normalize

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

const (
	defaultUpdateReply  = "I've updated your resume."
	defaultSuggestReply = "Here is a job search based on your request."
)

// DecodeChatReply parses a routed chat response against the resume snapshot
// the user was editing. An update without a resume object, or a job
// suggestion without a query, degrades to a Conversation.
func DecodeChatReply(capability, raw string, snapshot types.ResumeProfile) (types.ChatReply, error) {
	r, err := parseObject(capability, raw)
	if err != nil {
		return nil, err
	}

	text := textBlock(first(r, "text", "message", "reply"), "")
	action := types.ChatAction(strings.ToLower(str(r.Get("action"), string(types.ActionNone))))

	switch action {
	case types.ActionUpdateResume:
		updated := first(r, "updatedResume", "resume")
		if !updated.IsObject() {
			break
		}
		return types.ResumeUpdate{
			Text:          nonEmpty(text, defaultUpdateReply),
			UpdatedResume: ResumeFrom(updated, &snapshot),
		}, nil
	case types.ActionSuggestJobs:
		q := r.Get("searchQuery")
		query := str(first(q, "query", "keywords"), "")
		if query == "" {
			break
		}
		return types.JobSuggestion{
			Text: nonEmpty(text, defaultSuggestReply),
			SearchQuery: types.JobSearchQuery{
				Query:    query,
				Location: str(q.Get("location"), ""),
			},
		}, nil
	}

	return types.Conversation{Text: text}, nil
}
