package normalize

import (
	"regexp"
	"strings"
)

// fenceLine matches a code fence on its own line, with an optional language tag.
var fenceLine = regexp.MustCompile("(?m)^[ \t]*```[\\w-]*[ \t]*$")

// HTMLFragment removes code fences the model added around HTML, including a
// fenced block preceded by prose. Only fences on their own line count;
// backticks inside the content are left alone.
func HTMLFragment(raw string) string {
	text := strings.TrimSpace(raw)
	fences := fenceLine.FindAllStringIndex(text, -1)
	if len(fences) == 0 {
		return text
	}

	open := fences[0]
	if strings.TrimSpace(text[open[1]:]) == "" {
		// A lone trailing fence.
		return strings.TrimSpace(text[:open[0]])
	}
	body := text[open[1]:]
	if len(fences) > 1 {
		body = text[open[1]:fences[1][0]]
	}
	return strings.TrimSpace(body)
}

// HTMLDocument is HTMLFragment that also drops anything before the document's
// opening tag (<!DOCTYPE or <html), so the result starts with that tag.
func HTMLDocument(raw string) string {
	text := HTMLFragment(raw)
	lower := strings.ToLower(text)
	for _, tag := range []string{"<!doctype", "<html"} {
		if idx := strings.Index(lower, tag); idx >= 0 {
			return strings.TrimSpace(text[idx:])
		}
	}
	return text
}
