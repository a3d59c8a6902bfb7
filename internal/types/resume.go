// Package types provides the data shapes exchanged between the application and
// the AI capability layer.
package types

// DefaultThemeColor is applied when a generated resume carries no theme color.
const DefaultThemeColor = "#2563eb"

// ResumeProfile is the full resume document held in application state.
type ResumeProfile struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Projects       []Project       `json:"projects"`
	Skills         []string        `json:"skills"`
	ThemeColor     string          `json:"themeColor"`
	CustomSections []CustomSection `json:"customSections"`
}

// PersonalInfo holds the header and summary of a resume.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	JobTitle string `json:"jobTitle"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	Summary  string `json:"summary"`
}

// Experience is one position. IDs are opaque and never reassigned.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is one degree or course of study.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Project is a portfolio project.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
}

// CustomSection is a user-defined free-form section.
type CustomSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewResumeProfile returns an empty profile with every list initialized.
func NewResumeProfile() ResumeProfile {
	return ResumeProfile{
		Experience:     []Experience{},
		Education:      []Education{},
		Projects:       []Project{},
		Skills:         []string{},
		ThemeColor:     DefaultThemeColor,
		CustomSections: []CustomSection{},
	}
}
