package types

import "encoding/json"

// ChatAction discriminates ChatReply variants on the wire.
type ChatAction string

const (
	// ActionUpdateResume carries a fully reconstructed resume.
	ActionUpdateResume ChatAction = "update_resume"
	// ActionSuggestJobs carries a job search query for the job-search surface.
	ActionSuggestJobs ChatAction = "suggest_jobs"
	// ActionNone is a conversational reply.
	ActionNone ChatAction = "none"
)

// ChatReply is the result of routing one chat utterance. It is implemented
// only by ResumeUpdate, JobSuggestion and Conversation.
type ChatReply interface {
	Action() ChatAction
	Reply() string
	isChatReply()
}

// JobSearchQuery is handed to the job-search collaborator as-is.
type JobSearchQuery struct {
	Query    string `json:"query"`
	Location string `json:"location"`
}

// ResumeUpdate replaces the whole resume with UpdatedResume.
type ResumeUpdate struct {
	Text          string
	UpdatedResume ResumeProfile
}

// JobSuggestion asks the caller to run a job search.
type JobSuggestion struct {
	Text        string
	SearchQuery JobSearchQuery
}

// Conversation is a plain text reply.
type Conversation struct {
	Text string
}

// Action implements ChatReply.
func (ResumeUpdate) Action() ChatAction { return ActionUpdateResume }

// Action implements ChatReply.
func (JobSuggestion) Action() ChatAction { return ActionSuggestJobs }

// Action implements ChatReply.
func (Conversation) Action() ChatAction { return ActionNone }

// Reply implements ChatReply.
func (r ResumeUpdate) Reply() string { return r.Text }

// Reply implements ChatReply.
func (r JobSuggestion) Reply() string { return r.Text }

// Reply implements ChatReply.
func (r Conversation) Reply() string { return r.Text }

func (ResumeUpdate) isChatReply()  {}
func (JobSuggestion) isChatReply() {}
func (Conversation) isChatReply()  {}

// MarshalJSON emits {"action":"update_resume","text":...,"updatedResume":...}.
func (r ResumeUpdate) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Action        ChatAction    `json:"action"`
		Text          string        `json:"text"`
		UpdatedResume ResumeProfile `json:"updatedResume"`
	}{r.Action(), r.Text, r.UpdatedResume})
}

// MarshalJSON emits {"action":"suggest_jobs","text":...,"searchQuery":...}.
func (r JobSuggestion) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Action      ChatAction     `json:"action"`
		Text        string         `json:"text"`
		SearchQuery JobSearchQuery `json:"searchQuery"`
	}{r.Action(), r.Text, r.SearchQuery})
}

// MarshalJSON emits {"action":"none","text":...}.
func (r Conversation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Action ChatAction `json:"action"`
		Text   string     `json:"text"`
	}{r.Action(), r.Text})
}
