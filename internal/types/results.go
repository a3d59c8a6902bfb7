package types

// AuditResult scores a resume. Basic and deep audits share this shape.
type AuditResult struct {
	Score        int      `json:"score"`
	Summary      string   `json:"summary"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// CareerPath is one suggested next role.
type CareerPath struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	SalaryRange     string   `json:"salaryRange"`
	Timeline        string   `json:"timeline"`
	RequiredSkills  []string `json:"requiredSkills"`
	MatchPercentage int      `json:"matchPercentage"`
}

// LinkedInContent is suggested copy for a LinkedIn profile.
type LinkedInContent struct {
	Headline string   `json:"headline"`
	About    string   `json:"about"`
	Posts    []string `json:"posts"`
	Hashtags []string `json:"hashtags"`
}

// QuizQuestion is a multiple-choice question. CorrectAnswer indexes Options.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Flashcard is a front/back study card.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// InterviewQuestion is a likely interview question with answering advice.
type InterviewQuestion struct {
	Question string `json:"question"`
	Category string `json:"category"`
	Tip      string `json:"tip"`
}

// JobMatch compares a resume against a job description.
type JobMatch struct {
	MatchScore      int      `json:"matchScore"`
	Summary         string   `json:"summary"`
	MatchingSkills  []string `json:"matchingSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Recommendations []string `json:"recommendations"`
}

// FormSchema is a generated form definition.
type FormSchema struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Fields      []FormField `json:"fields"`
}

// FormFieldTypes lists the field types the form builder renders.
var FormFieldTypes = []string{"text", "email", "number", "textarea", "select", "radio", "checkbox", "date"}

// FormField is one input in a FormSchema. IDs follow the same back-fill rule
// as resume list items.
type FormField struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder"`
	Options     []string `json:"options"`
}

// DesignTheme is a generated visual theme for the resume preview.
type DesignTheme struct {
	PrimaryColor string `json:"primaryColor"`
	AccentColor  string `json:"accentColor"`
	FontFamily   string `json:"fontFamily"`
	Layout       string `json:"layout"`
	Mood         string `json:"mood"`
}
