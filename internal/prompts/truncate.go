package prompts

import "unicode/utf8"

// Character budgets applied to long inputs before interpolation.
const (
	// JobDescriptionBudget bounds job descriptions in cover letters and job matches.
	JobDescriptionBudget = 1000
	// InterviewJobDescriptionBudget bounds job descriptions for interview questions.
	InterviewJobDescriptionBudget = 500
	// ResumeExcerptBudget bounds the resume JSON in cold emails.
	ResumeExcerptBudget = 500
	// ResumeMatchBudget bounds the resume JSON in job matches.
	ResumeMatchBudget = 1000
	// ResumeContextBudget bounds the resume JSON in audits and chat.
	ResumeContextBudget = 8000
)

// Truncate returns the first limit characters (runes) of s.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
