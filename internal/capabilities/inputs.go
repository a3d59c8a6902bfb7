package capabilities

import "github.com/jonathan/resume-studio/internal/types"

// Inputs carry validator tags; run rejects an invalid input with an
// *InputError before any prompt is rendered. Zero-valued optional fields
// take the defaults listed on each field.

// SummaryInput drives the summary capability.
type SummaryInput struct {
	JobTitle string `validate:"required"`
	// Years of experience; 0 leaves it unstated.
	Years      int `validate:"gte=0,lte=60"`
	Skills     []string
	Experience []types.Experience
}

// DescriptionInput drives improve_description.
type DescriptionInput struct {
	Position    string `validate:"required"`
	Company     string
	Description string `validate:"required"`
}

// CoverLetterInput drives cover_letter. Tone defaults to "professional".
type CoverLetterInput struct {
	Resume         types.ResumeProfile
	JobDescription string `validate:"required"`
	Company        string `validate:"required"`
	JobTitle       string
	Tone           string
}

// ColdEmailInput drives cold_email.
type ColdEmailInput struct {
	Resume    types.ResumeProfile
	Recipient string `validate:"required"`
	Company   string `validate:"required"`
	Purpose   string `validate:"required"`
}

// SalaryInput drives salary_script.
type SalaryInput struct {
	JobTitle     string `validate:"required"`
	CurrentOffer string `validate:"required"`
	TargetSalary string `validate:"required"`
	Leverage     string
}

// EmailTemplateInput drives email_template. Tone defaults to "professional".
type EmailTemplateInput struct {
	Kind    string `validate:"required"`
	Context string `validate:"required"`
	Tone    string
}

// TranslateInput drives translate.
type TranslateInput struct {
	Text     string `validate:"required"`
	Language string `validate:"required"`
}

// LessonPlanInput drives lesson_plan. Minutes defaults to 45.
type LessonPlanInput struct {
	Subject string `validate:"required"`
	Topic   string `validate:"required"`
	Grade   string `validate:"required"`
	Minutes int    `validate:"gte=0,lte=480"`
}

// EssayOutlineInput drives essay_outline. EssayType defaults to
// "argumentative", WordCount to 1000.
type EssayOutlineInput struct {
	Topic     string `validate:"required"`
	EssayType string
	WordCount int `validate:"gte=0,lte=20000"`
}

// StudyPlanInput drives study_plan. Weeks defaults to 4, HoursPerWeek to 5.
type StudyPlanInput struct {
	Subject      string `validate:"required"`
	Goal         string `validate:"required"`
	Weeks        int    `validate:"gte=0,lte=52"`
	HoursPerWeek int    `validate:"gte=0,lte=80"`
}

// ExplainInput drives explain_concept. Level defaults to "beginner".
type ExplainInput struct {
	Concept string `validate:"required"`
	Level   string
}

// RubricInput drives rubric. Criteria defaults to 4.
type RubricInput struct {
	Assignment string `validate:"required"`
	Grade      string
	Criteria   int `validate:"gte=0,lte=10"`
}

// RefineInput drives refine_content. HTML selects an HTML fragment result.
type RefineInput struct {
	Content     string `validate:"required"`
	Instruction string `validate:"required"`
	HTML        bool
}

// AgentStepInput drives agent_step, one step of a multi-step writing agent.
type AgentStepInput struct {
	Step        string
	Instruction string `validate:"required"`
	Input       string
}

// ResumeInput drives capabilities that read only the resume.
type ResumeInput struct {
	Resume types.ResumeProfile
}

// DeepAuditInput drives deep_audit. TargetRole is optional.
type DeepAuditInput struct {
	Resume     types.ResumeProfile
	TargetRole string
}

// JobMatchInput drives job_match.
type JobMatchInput struct {
	Resume         types.ResumeProfile
	JobDescription string `validate:"required"`
}

// InterviewInput drives interview_questions. Count defaults to 5.
type InterviewInput struct {
	JobTitle       string `validate:"required"`
	JobDescription string
	Count          int `validate:"gte=0,lte=20"`
}

// LinkedInContentInput drives linkedin_content. Tone defaults to "professional".
type LinkedInContentInput struct {
	Resume types.ResumeProfile
	Tone   string
}

// QuizInput drives quiz. Difficulty defaults to "medium", Count to 5.
type QuizInput struct {
	Topic      string `validate:"required"`
	Difficulty string `validate:"omitempty,oneof=easy medium hard"`
	Count      int    `validate:"gte=0,lte=30"`
}

// FlashcardsInput drives flashcards. Count defaults to 10.
type FlashcardsInput struct {
	Material string `validate:"required"`
	Count    int    `validate:"gte=0,lte=50"`
}

// FormSchemaInput drives form_schema.
type FormSchemaInput struct {
	Description string `validate:"required"`
}

// FieldOptionsInput drives field_options. Count defaults to 5.
type FieldOptionsInput struct {
	Label     string `validate:"required"`
	FormTitle string
	Count     int `validate:"gte=0,lte=30"`
}

// DesignThemeInput drives design_theme.
type DesignThemeInput struct {
	Description string `validate:"required"`
	Industry    string
}

// GenerateResumeInput drives generate_resume.
type GenerateResumeInput struct {
	Prompt string `validate:"required"`
}

// LinkedInImportInput drives import_linkedin with pasted profile text.
type LinkedInImportInput struct {
	ProfileText string `validate:"required"`
}

// UpdateResumeInput drives update_resume.
type UpdateResumeInput struct {
	Resume      types.ResumeProfile
	Instruction string `validate:"required"`
}

// ChatInput drives the chat router.
type ChatInput struct {
	Resume  types.ResumeProfile
	Message string `validate:"required"`
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func orDefaultInt(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}
