package normalize

import (
	"slices"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/tidwall/gjson"
)

// DecodeResume parses a whole-resume response. When base is non-nil, sections
// absent from the response keep base's content; sections present replace it.
// The result never aliases base.
func DecodeResume(capability, raw string, base *types.ResumeProfile) (types.ResumeProfile, error) {
	r, err := parseObject(capability, raw)
	if err != nil {
		return types.ResumeProfile{}, err
	}
	if !r.Get("personalInfo").Exists() {
		if inner := first(r, "resume", "updatedResume"); inner.IsObject() {
			r = inner
		}
	}
	return ResumeFrom(r, base), nil
}

// ResumeFrom builds a resume from an already parsed object.
func ResumeFrom(r gjson.Result, base *types.ResumeProfile) types.ResumeProfile {
	out := types.NewResumeProfile()
	if base != nil {
		out = cloneResume(*base)
	}

	if v := r.Get("personalInfo"); v.IsObject() {
		out.PersonalInfo = personalInfo(v, out.PersonalInfo)
	}
	if v := r.Get("experience"); v.Exists() {
		out.Experience = experience(v)
	}
	if v := r.Get("education"); v.Exists() {
		out.Education = education(v)
	}
	if v := r.Get("projects"); v.Exists() {
		out.Projects = projects(v)
	}
	if v := r.Get("skills"); v.Exists() {
		out.Skills = strs(v)
	}
	if v := r.Get("customSections"); v.Exists() {
		out.CustomSections = customSections(v)
	}
	out.ThemeColor = str(r.Get("themeColor"), out.ThemeColor)
	if out.ThemeColor == "" {
		out.ThemeColor = types.DefaultThemeColor
	}

	BackfillIDs(&out)
	return out
}

func personalInfo(r gjson.Result, def types.PersonalInfo) types.PersonalInfo {
	return types.PersonalInfo{
		FullName: str(first(r, "fullName", "name"), def.FullName),
		JobTitle: str(first(r, "jobTitle", "title"), def.JobTitle),
		Email:    str(r.Get("email"), def.Email),
		Phone:    str(r.Get("phone"), def.Phone),
		Location: str(r.Get("location"), def.Location),
		Website:  str(r.Get("website"), def.Website),
		LinkedIn: str(r.Get("linkedin"), def.LinkedIn),
		Summary:  textBlock(r.Get("summary"), def.Summary),
	}
}

func experience(r gjson.Result) []types.Experience {
	out := []types.Experience{}
	for _, item := range items(r) {
		out = append(out, types.Experience{
			ID:          str(item.Get("id"), ""),
			Company:     str(item.Get("company"), ""),
			Position:    str(first(item, "position", "title", "role"), ""),
			StartDate:   str(item.Get("startDate"), ""),
			EndDate:     str(item.Get("endDate"), ""),
			Current:     boolean(item.Get("current"), false),
			Description: textBlock(item.Get("description"), ""),
		})
	}
	return out
}

func education(r gjson.Result) []types.Education {
	out := []types.Education{}
	for _, item := range items(r) {
		out = append(out, types.Education{
			ID:          str(item.Get("id"), ""),
			Institution: str(first(item, "institution", "school"), ""),
			Degree:      str(item.Get("degree"), ""),
			Field:       str(first(item, "field", "fieldOfStudy"), ""),
			StartDate:   str(item.Get("startDate"), ""),
			EndDate:     str(item.Get("endDate"), ""),
			Description: textBlock(item.Get("description"), ""),
		})
	}
	return out
}

func projects(r gjson.Result) []types.Project {
	out := []types.Project{}
	for _, item := range items(r) {
		out = append(out, types.Project{
			ID:           str(item.Get("id"), ""),
			Name:         str(first(item, "name", "title"), ""),
			Description:  textBlock(item.Get("description"), ""),
			Technologies: strs(item.Get("technologies")),
			Link:         str(first(item, "link", "url"), ""),
		})
	}
	return out
}

func customSections(r gjson.Result) []types.CustomSection {
	out := []types.CustomSection{}
	for _, item := range items(r) {
		out = append(out, types.CustomSection{
			ID:      str(item.Get("id"), ""),
			Title:   str(item.Get("title"), ""),
			Content: textBlock(first(item, "content", "items"), ""),
		})
	}
	return out
}

func cloneResume(p types.ResumeProfile) types.ResumeProfile {
	out := p
	out.Experience = cloneOrEmpty(p.Experience)
	out.Education = cloneOrEmpty(p.Education)
	out.Projects = cloneOrEmpty(p.Projects)
	for i := range out.Projects {
		out.Projects[i].Technologies = cloneOrEmpty(out.Projects[i].Technologies)
	}
	out.Skills = cloneOrEmpty(p.Skills)
	out.CustomSections = cloneOrEmpty(p.CustomSections)
	return out
}

func cloneOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}
