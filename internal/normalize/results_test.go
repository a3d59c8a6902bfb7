package normalize

import (
	"testing"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAudit(t *testing.T) {
	got, err := DecodeAudit("basic_audit", `{"score": "88", "summary": "Strong", "strengths": ["Metrics"], "weaknesses": "Too long, No links"}`)
	require.NoError(t, err)

	assert.Equal(t, types.AuditResult{
		Score:        88,
		Summary:      "Strong",
		Strengths:    []string{"Metrics"},
		Improvements: []string{"Too long", "No links"},
	}, got)
}

func TestDecodeAudit_BracketedPreamble(t *testing.T) {
	got, err := DecodeAudit("basic_audit", "Here is the audit [JSON]:\n{\"score\": 88, \"summary\": \"Solid\", \"strengths\": [\"Metrics\"], \"improvements\": []}")
	require.NoError(t, err)
	assert.Equal(t, 88, got.Score)
	assert.Equal(t, "Solid", got.Summary)
	assert.Equal(t, []string{"Metrics"}, got.Strengths)
}

func TestDecodeAudit_ArrayIsMalformed(t *testing.T) {
	_, err := DecodeAudit("basic_audit", `["not", "an", "object"]`)
	assert.Error(t, err)
}

func TestDecodeCareerPaths(t *testing.T) {
	raw := `{"paths": [
		{"title": "Staff Engineer", "salaryRange": "$200k", "requiredSkills": ["Leadership"], "matchPercentage": 91.2},
		{"description": "no title, dropped"},
		{"role": "Engineering Manager"}
	]}`
	got, err := DecodeCareerPaths("career_paths", raw)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, 91, got[0].MatchPercentage)
	assert.Equal(t, "Engineering Manager", got[1].Title)
	assert.NotNil(t, got[1].RequiredSkills)
}

func TestDecodeCareerPaths_BareArray(t *testing.T) {
	got, err := DecodeCareerPaths("career_paths", `[{"title": "SRE"}]`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "SRE", got[0].Title)
}

func TestDecodeLinkedInContent(t *testing.T) {
	got, err := DecodeLinkedInContent("linkedin_content", `{"headline": "Go Engineer", "hashtags": ["golang", "#cloud"]}`)
	require.NoError(t, err)

	assert.Equal(t, "Go Engineer", got.Headline)
	assert.Equal(t, "", got.About)
	assert.Equal(t, []string{}, got.Posts)
	assert.Equal(t, []string{"#golang", "#cloud"}, got.Hashtags)
}

func TestDecodeQuiz(t *testing.T) {
	raw := `[
		{"question": "2+2?", "options": ["3", "4"], "correctAnswer": 1},
		{"question": "Capital of France?", "options": ["Paris", "Rome"], "correctAnswer": "Paris"},
		{"question": "Out of range", "options": ["a"], "correctAnswer": 7},
		{"options": ["no question"]}
	]`
	got, err := DecodeQuiz("quiz", raw)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].CorrectAnswer)
	assert.Equal(t, 0, got[1].CorrectAnswer)
	assert.Equal(t, 0, got[2].CorrectAnswer)
	assert.Equal(t, "", got[2].Explanation)
}

func TestDecodeFlashcards(t *testing.T) {
	got, err := DecodeFlashcards("flashcards", `{"flashcards": [{"term": "Goroutine", "definition": "A lightweight thread"}, {"back": "orphan"}]}`)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, types.Flashcard{Front: "Goroutine", Back: "A lightweight thread"}, got[0])
}

func TestDecodeInterviewQuestions(t *testing.T) {
	got, err := DecodeInterviewQuestions("interview_questions", `{"questions": [{"question": "Why Go?", "type": "Technical"}]}`)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "technical", got[0].Category)

	got, err = DecodeInterviewQuestions("interview_questions", `[{"question": "Tell me about yourself"}]`)
	require.NoError(t, err)
	assert.Equal(t, "general", got[0].Category)
}

func TestDecodeJobMatch_Defaults(t *testing.T) {
	got, err := DecodeJobMatch("job_match", `{"score": 64}`)
	require.NoError(t, err)

	assert.Equal(t, 64, got.MatchScore)
	assert.NotNil(t, got.MatchingSkills)
	assert.NotNil(t, got.MissingSkills)
	assert.NotNil(t, got.Recommendations)
}

func TestDecodeFormSchema(t *testing.T) {
	sequentialIDs(t)

	raw := `{"title": "Signup", "fields": [
		{"label": "Email", "type": "email", "required": true},
		{"id": "color", "label": "Color", "type": "dropdown", "options": "Red, Blue"},
		{"type": "text"}
	]}`
	got, err := DecodeFormSchema("form_schema", raw)
	require.NoError(t, err)

	assert.Equal(t, "Signup", got.Title)
	require.Len(t, got.Fields, 2)
	assert.Equal(t, "gen-1", got.Fields[0].ID)
	assert.True(t, got.Fields[0].Required)
	assert.Equal(t, "color", got.Fields[1].ID)
	assert.Equal(t, "text", got.Fields[1].Type)
	assert.Equal(t, []string{"Red", "Blue"}, got.Fields[1].Options)
}

func TestDecodeFormSchema_UntitledDefault(t *testing.T) {
	got, err := DecodeFormSchema("form_schema", `{}`)
	require.NoError(t, err)
	assert.Equal(t, "Untitled Form", got.Title)
	assert.NotNil(t, got.Fields)
}

func TestDecodeFieldOptions(t *testing.T) {
	got, err := DecodeFieldOptions("field_options", `["Small", "Medium"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Small", "Medium"}, got)

	got, err = DecodeFieldOptions("field_options", `{"options": ["Yes"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Yes"}, got)

	got, err = DecodeFieldOptions("field_options", `{}`)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)
}

func TestDecodeDesignTheme(t *testing.T) {
	got, err := DecodeDesignTheme("design_theme", `{"primaryColor": "#ABCDEF", "accentColor": "blue", "layout": "Minimal"}`)
	require.NoError(t, err)

	assert.Equal(t, "#abcdef", got.PrimaryColor)
	assert.Equal(t, DefaultDesignTheme.AccentColor, got.AccentColor)
	assert.Equal(t, DefaultDesignTheme.FontFamily, got.FontFamily)
	assert.Equal(t, "minimal", got.Layout)
	assert.Equal(t, DefaultDesignTheme.Mood, got.Mood)
}
