// Package llm - util.go provides shared cleanup for raw model output.
package llm

import (
	"strings"

	"github.com/tidwall/gjson"
)

// CleanJSONBlock removes markdown code fences and any conversational preamble
// or trailer around a JSON object or array. Each '{' or '[' is tried in turn
// and the first span that parses as JSON wins, so brackets in a preamble are
// skipped. When no span parses, the span from the first bracket is returned.
func CleanJSONBlock(text string) string {
	text = StripCodeFence(text)

	firstSpan := ""
	for offset := 0; offset < len(text); {
		idx := strings.IndexAny(text[offset:], "{[")
		if idx < 0 {
			break
		}
		start := offset + idx
		offset = start + 1

		closing := byte('}')
		if text[start] == '[' {
			closing = ']'
		}
		end := strings.LastIndexByte(text, closing)
		if end < start {
			continue
		}
		span := strings.TrimSpace(text[start : end+1])
		if gjson.Valid(span) {
			return span
		}
		if firstSpan == "" {
			firstSpan = span
		}
	}
	if firstSpan != "" {
		return firstSpan
	}
	return text
}

// StripCodeFence removes a leading ``` fence (with optional language tag) and
// a trailing ``` fence. Text without a leading fence is only trimmed.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// Skip the language identifier on the opening line
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[<") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
