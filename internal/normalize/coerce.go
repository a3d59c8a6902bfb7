package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/tidwall/gjson"
)

// Parse cleans fences and preamble from raw and checks it is valid JSON.
func Parse(capability, raw string) (gjson.Result, error) {
	cleaned := llm.CleanJSONBlock(raw)
	if cleaned == "" {
		return gjson.Result{}, &MalformedResponseError{Capability: capability, Message: "empty response"}
	}
	if !gjson.Valid(cleaned) {
		return gjson.Result{}, &MalformedResponseError{Capability: capability, Message: "response is not valid JSON"}
	}
	return gjson.Parse(cleaned), nil
}

// parseObject is Parse restricted to a top-level object.
func parseObject(capability, raw string) (gjson.Result, error) {
	r, err := Parse(capability, raw)
	if err != nil {
		return r, err
	}
	if !r.IsObject() {
		return r, &MalformedResponseError{Capability: capability, Message: "expected a JSON object"}
	}
	return r, nil
}

// Text trims a free-text response.
func Text(raw string) string {
	return strings.TrimSpace(raw)
}

// str returns a trimmed string, rendering numbers and booleans verbatim.
// Missing, null, and structured values yield def.
func str(r gjson.Result, def string) string {
	switch r.Type {
	case gjson.String:
		return strings.TrimSpace(r.Str)
	case gjson.Number, gjson.True, gjson.False:
		return r.Raw
	default:
		return def
	}
}

// textBlock is str that also accepts an array of lines, joined by newlines.
func textBlock(r gjson.Result, def string) string {
	if r.IsArray() {
		return strings.Join(strs(r), "\n")
	}
	return str(r, def)
}

// strs returns a non-nil list of non-empty strings. A single string is split
// on newlines, or on commas when it has none. Objects contribute their "name".
func strs(r gjson.Result) []string {
	out := []string{}
	switch {
	case r.IsArray():
		for _, item := range r.Array() {
			if item.IsObject() {
				item = item.Get("name")
			}
			if s := cleanListItem(str(item, "")); s != "" {
				out = append(out, s)
			}
		}
	case r.Type == gjson.String:
		sep := ","
		if strings.Contains(r.Str, "\n") {
			sep = "\n"
		}
		for _, part := range strings.Split(r.Str, sep) {
			if s := cleanListItem(part); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func cleanListItem(s string) string {
	s = strings.TrimSpace(s)
	for _, marker := range []string{"- ", "* ", "• "} {
		s = strings.TrimPrefix(s, marker)
	}
	return strings.TrimSpace(s)
}

// integer rounds numbers and numeric strings ("85", "85%") and clamps the
// result to [lo, hi]. Anything else yields def.
func integer(r gjson.Result, def, lo, hi int) int {
	var f float64
	switch r.Type {
	case gjson.Number:
		f = r.Num
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(r.Str), "%"), 64)
		if err != nil {
			return def
		}
		f = parsed
	default:
		return def
	}
	n := int(math.Round(f))
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func boolean(r gjson.Result, def bool) bool {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		switch strings.ToLower(strings.TrimSpace(r.Str)) {
		case "true", "yes", "1":
			return true
		case "false", "no", "0":
			return false
		}
	}
	return def
}

// items returns the object elements of a top-level array, or of the first of
// keys holding an array when r is an object.
func items(r gjson.Result, keys ...string) []gjson.Result {
	list := r
	if r.IsObject() {
		list = gjson.Result{}
		for _, key := range keys {
			if v := r.Get(key); v.IsArray() {
				list = v
				break
			}
		}
	}
	if !list.IsArray() {
		return nil
	}
	var out []gjson.Result
	for _, item := range list.Array() {
		if item.IsObject() {
			out = append(out, item)
		}
	}
	return out
}

// first returns the first key of r that exists.
func first(r gjson.Result, keys ...string) gjson.Result {
	for _, key := range keys {
		if v := r.Get(key); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}
