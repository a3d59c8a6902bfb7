package capabilities

import (
	"context"
	"testing"

	"github.com/jonathan/resume-studio/internal/prompts"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_UpdateResume(t *testing.T) {
	raw := `{
		"action": "update_resume",
		"text": "Added Kubernetes to your skills.",
		"updatedResume": {
			"personalInfo": {"fullName": "Ada Lovelace", "jobTitle": "Software Engineer"},
			"experience": [
				{"id": "exp-1", "company": "Analytical Engines", "position": "Engineer", "current": true},
				{"company": "Difference Ltd", "position": "Intern"}
			],
			"skills": ["Go", "PostgreSQL", "Kubernetes"]
		}
	}`
	svc, client := newTestService("gemini-2.5-flash", reply(raw))
	snapshot := sampleResume()

	got, err := svc.Chat(context.Background(), ChatInput{Resume: snapshot, Message: "add Kubernetes to my skills"})
	require.NoError(t, err)

	update, ok := got.(types.ResumeUpdate)
	require.True(t, ok, "expected ResumeUpdate, got %T", got)
	assert.Equal(t, types.ActionUpdateResume, update.Action())
	assert.Equal(t, "Added Kubernetes to your skills.", update.Reply())
	assert.Contains(t, update.UpdatedResume.Skills, "Kubernetes")

	require.Len(t, update.UpdatedResume.Experience, 2)
	assert.Equal(t, "exp-1", update.UpdatedResume.Experience[0].ID)
	assert.NotEmpty(t, update.UpdatedResume.Experience[1].ID)
	assert.NotEqual(t, "exp-1", update.UpdatedResume.Experience[1].ID)

	// Sections missing from the response keep the snapshot's content.
	assert.Equal(t, snapshot.Education, update.UpdatedResume.Education)

	assert.Contains(t, client.last(t).Prompt, "add Kubernetes to my skills")
	assert.Contains(t, client.last(t).Prompt, resumeJSON(snapshot, prompts.ResumeContextBudget))
}

func TestChat_SuggestJobs(t *testing.T) {
	raw := "```json\n{\"action\": \"suggest_jobs\", \"text\": \"Searching now.\", \"searchQuery\": {\"query\": \"golang backend engineer\", \"location\": \"Remote\"}}\n```"
	svc, _ := newTestService("", reply(raw))

	got, err := svc.Chat(context.Background(), ChatInput{Resume: sampleResume(), Message: "find me jobs"})
	require.NoError(t, err)

	suggestion, ok := got.(types.JobSuggestion)
	require.True(t, ok, "expected JobSuggestion, got %T", got)
	assert.Equal(t, types.ActionSuggestJobs, suggestion.Action())
	assert.Equal(t, "golang backend engineer", suggestion.SearchQuery.Query)
	assert.Equal(t, "Remote", suggestion.SearchQuery.Location)
}

func TestChat_Conversation(t *testing.T) {
	svc, _ := newTestService("", reply(`{"action": "none", "text": "Happy to help!"}`))

	got, err := svc.Chat(context.Background(), ChatInput{Resume: sampleResume(), Message: "thanks"})
	require.NoError(t, err)
	assert.Equal(t, types.Conversation{Text: "Happy to help!"}, got)
}

func TestChat_DegradedActions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"update without resume", `{"action": "update_resume", "text": "Done"}`},
		{"suggest without query", `{"action": "suggest_jobs", "text": "Done", "searchQuery": {"query": ""}}`},
		{"unknown action", `{"action": "dance", "text": "Done"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService("", reply(tt.raw))
			got, err := svc.Chat(context.Background(), ChatInput{Resume: sampleResume(), Message: "x"})
			require.NoError(t, err)
			assert.Equal(t, types.ActionNone, got.Action())
			assert.Equal(t, "Done", got.Reply())
		})
	}
}

func TestChat_MalformedPropagates(t *testing.T) {
	svc, _ := newTestService("", reply("Sorry, I can't help with that."))
	_, err := svc.Chat(context.Background(), ChatInput{Resume: sampleResume(), Message: "x"})
	assert.Error(t, err)
}
