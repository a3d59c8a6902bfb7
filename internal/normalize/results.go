package normalize

import (
	"regexp"
	"slices"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/tidwall/gjson"
)

// DefaultDesignTheme supplies per-field defaults for design themes.
var DefaultDesignTheme = types.DesignTheme{
	PrimaryColor: "#2563eb",
	AccentColor:  "#0f172a",
	FontFamily:   "Inter",
	Layout:       "modern",
	Mood:         "professional",
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DecodeAudit parses an audit. Score is clamped to 0..100.
func DecodeAudit(capability, raw string) (types.AuditResult, error) {
	r, err := parseObject(capability, raw)
	if err != nil {
		return types.AuditResult{}, err
	}
	return types.AuditResult{
		Score:        integer(r.Get("score"), 0, 0, 100),
		Summary:      textBlock(r.Get("summary"), ""),
		Strengths:    strs(r.Get("strengths")),
		Improvements: strs(first(r, "improvements", "weaknesses")),
	}, nil
}

// DecodeCareerPaths accepts a bare array or {"paths": [...]}.
func DecodeCareerPaths(capability, raw string) ([]types.CareerPath, error) {
	r, err := Parse(capability, raw)
	if err != nil {
		return nil, err
	}
	out := []types.CareerPath{}
	for _, item := range items(r, "paths", "careerPaths") {
		title := str(first(item, "title", "role"), "")
		if title == "" {
			continue
		}
		out = append(out, types.CareerPath{
			Title:           title,
			Description:     textBlock(item.Get("description"), ""),
			SalaryRange:     str(item.Get("salaryRange"), ""),
			Timeline:        str(item.Get("timeline"), ""),
			RequiredSkills:  strs(item.Get("requiredSkills")),
			MatchPercentage: integer(item.Get("matchPercentage"), 0, 0, 100),
		})
	}
	return out, nil
}

// DecodeLinkedInContent parses suggested LinkedIn copy.
func DecodeLinkedInContent(capability, raw string) (types.LinkedInContent, error) {
	r, err := parseObject(capability, raw)
	if err != nil {
		return types.LinkedInContent{}, err
	}
	hashtags := strs(r.Get("hashtags"))
	for i, tag := range hashtags {
		if !strings.HasPrefix(tag, "#") {
			hashtags[i] = "#" + tag
		}
	}
	return types.LinkedInContent{
		Headline: str(r.Get("headline"), ""),
		About:    textBlock(r.Get("about"), ""),
		Posts:    strs(r.Get("posts")),
		Hashtags: hashtags,
	}, nil
}

// DecodeQuiz parses quiz questions. A correctAnswer given as option text is
// converted to its index; an out-of-range index becomes 0.
func DecodeQuiz(capability, raw string) ([]types.QuizQuestion, error) {
	r, err := Parse(capability, raw)
	if err != nil {
		return nil, err
	}
	out := []types.QuizQuestion{}
	for _, item := range items(r, "questions", "quiz") {
		question := str(item.Get("question"), "")
		if question == "" {
			continue
		}
		options := strs(item.Get("options"))
		out = append(out, types.QuizQuestion{
			Question:      question,
			Options:       options,
			CorrectAnswer: answerIndex(item.Get("correctAnswer"), options),
			Explanation:   textBlock(item.Get("explanation"), ""),
		})
	}
	return out, nil
}

func answerIndex(r gjson.Result, options []string) int {
	if r.Type == gjson.String {
		if idx := slices.Index(options, strings.TrimSpace(r.Str)); idx >= 0 {
			return idx
		}
	}
	idx := integer(r, 0, 0, len(options))
	if idx >= len(options) {
		return 0
	}
	return idx
}

// DecodeFlashcards accepts a bare array or {"flashcards": [...]}.
func DecodeFlashcards(capability, raw string) ([]types.Flashcard, error) {
	r, err := Parse(capability, raw)
	if err != nil {
		return nil, err
	}
	out := []types.Flashcard{}
	for _, item := range items(r, "flashcards", "cards") {
		front := str(first(item, "front", "term", "question"), "")
		if front == "" {
			continue
		}
		out = append(out, types.Flashcard{
			Front: front,
			Back:  textBlock(first(item, "back", "definition", "answer"), ""),
		})
	}
	return out, nil
}

// DecodeInterviewQuestions accepts a bare array or {"questions": [...]}.
func DecodeInterviewQuestions(capability, raw string) ([]types.InterviewQuestion, error) {
	r, err := Parse(capability, raw)
	if err != nil {
		return nil, err
	}
	out := []types.InterviewQuestion{}
	for _, item := range items(r, "questions") {
		question := str(item.Get("question"), "")
		if question == "" {
			continue
		}
		out = append(out, types.InterviewQuestion{
			Question: question,
			Category: strings.ToLower(str(first(item, "category", "type"), "general")),
			Tip:      textBlock(item.Get("tip"), ""),
		})
	}
	return out, nil
}

// DecodeJobMatch parses a job match analysis.
func DecodeJobMatch(capability, raw string) (types.JobMatch, error) {
	r, err := parseObject(capability, raw)
	if err != nil {
		return types.JobMatch{}, err
	}
	return types.JobMatch{
		MatchScore:      integer(first(r, "matchScore", "score"), 0, 0, 100),
		Summary:         textBlock(r.Get("summary"), ""),
		MatchingSkills:  strs(r.Get("matchingSkills")),
		MissingSkills:   strs(r.Get("missingSkills")),
		Recommendations: strs(r.Get("recommendations")),
	}, nil
}

// DecodeFormSchema parses a form definition. Unknown field types become
// "text" and fields without an ID are back-filled.
func DecodeFormSchema(capability, raw string) (types.FormSchema, error) {
	r, err := parseObject(capability, raw)
	if err != nil {
		return types.FormSchema{}, err
	}
	fields := []types.FormField{}
	for _, item := range items(r, "fields") {
		label := str(item.Get("label"), "")
		if label == "" {
			continue
		}
		fieldType := strings.ToLower(str(item.Get("type"), "text"))
		if !slices.Contains(types.FormFieldTypes, fieldType) {
			fieldType = "text"
		}
		fields = append(fields, types.FormField{
			ID:          str(item.Get("id"), ""),
			Label:       label,
			Type:        fieldType,
			Required:    boolean(item.Get("required"), false),
			Placeholder: str(item.Get("placeholder"), ""),
			Options:     strs(item.Get("options")),
		})
	}
	BackfillFieldIDs(fields)
	return types.FormSchema{
		Title:       str(r.Get("title"), "Untitled Form"),
		Description: textBlock(r.Get("description"), ""),
		Fields:      fields,
	}, nil
}

// DecodeFieldOptions accepts a bare string array or {"options": [...]}.
func DecodeFieldOptions(capability, raw string) ([]string, error) {
	r, err := Parse(capability, raw)
	if err != nil {
		return nil, err
	}
	if r.IsObject() {
		r = r.Get("options")
	}
	return strs(r), nil
}

// DecodeDesignTheme parses a theme; invalid colors fall back per field.
func DecodeDesignTheme(capability, raw string) (types.DesignTheme, error) {
	r, err := parseObject(capability, raw)
	if err != nil {
		return types.DesignTheme{}, err
	}
	return types.DesignTheme{
		PrimaryColor: color(r.Get("primaryColor"), DefaultDesignTheme.PrimaryColor),
		AccentColor:  color(r.Get("accentColor"), DefaultDesignTheme.AccentColor),
		FontFamily:   nonEmpty(str(r.Get("fontFamily"), ""), DefaultDesignTheme.FontFamily),
		Layout:       nonEmpty(strings.ToLower(str(r.Get("layout"), "")), DefaultDesignTheme.Layout),
		Mood:         nonEmpty(str(r.Get("mood"), ""), DefaultDesignTheme.Mood),
	}, nil
}

func color(r gjson.Result, def string) string {
	c := str(r, "")
	if !hexColor.MatchString(c) {
		return def
	}
	return strings.ToLower(c)
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
