package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLDocument(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"fenced", "```html\n<!DOCTYPE html>\n<html><body>Hi</body></html>\n```"},
		{"prose then fence", "Here is your site:\n```html\n<!DOCTYPE html>\n<html><body>Hi</body></html>\n```\nEnjoy!"},
		{"trailing fence only", "<!DOCTYPE html>\n<html><body>Hi</body></html>\n```"},
		{"preamble without fence", "Sure thing!\n<!DOCTYPE html>\n<html><body>Hi</body></html>"},
		{"clean", "<!DOCTYPE html>\n<html><body>Hi</body></html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HTMLDocument(tt.input)
			assert.NotContains(t, got, "```")
			assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"), got)
			assert.True(t, strings.HasSuffix(got, "</html>"), got)
		})
	}
}

func TestHTMLDocument_HTMLTagWithoutDoctype(t *testing.T) {
	got := HTMLDocument("```\n<html lang=\"en\"></html>\n```")
	assert.Equal(t, `<html lang="en"></html>`, got)
}

func TestHTMLFragment(t *testing.T) {
	assert.Equal(t, "<p>Hello</p>", HTMLFragment("```html\n<p>Hello</p>\n```"))
	assert.Equal(t, "<p>Hello</p>", HTMLFragment("<p>Hello</p>"))
}

func TestHTMLFragment_InlineBackticksKept(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "inline backticks without fence",
			input:    "<p>Wrap code in ``` fences when posting snippets.</p>\n<ul><li>Go</li></ul>",
			expected: "<p>Wrap code in ``` fences when posting snippets.</p>\n<ul><li>Go</li></ul>",
		},
		{
			name:     "inline backticks inside fenced block",
			input:    "```html\n<p>Use ``` for code.</p>\n```",
			expected: "<p>Use ``` for code.</p>",
		},
		{
			name:     "trailing fence after inline backticks",
			input:    "<p>Use ``` for code.</p>\n```",
			expected: "<p>Use ``` for code.</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTMLFragment(tt.input))
		})
	}
}

func TestHTMLDocument_InlineBackticksKept(t *testing.T) {
	input := "<!DOCTYPE html>\n<html><body><p>Type ``` to start a block.</p></body></html>"
	assert.Equal(t, input, HTMLDocument(input))
}
