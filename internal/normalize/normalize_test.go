package normalize

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// sequentialIDs makes generated identifiers predictable for the test's duration.
func sequentialIDs(t *testing.T) {
	t.Helper()
	n := 0
	orig := newID
	newID = func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
	t.Cleanup(func() { newID = orig })
}

func TestParse_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "not json at all", "{\"a\": ", "```json\n{broken\n```"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse("test", raw)
			var malformed *MalformedResponseError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, "test", malformed.Capability)
		})
	}
}

func TestParse_FencedAndPreamble(t *testing.T) {
	r, err := Parse("test", "Sure! ```json\n{\"score\": 80}\n```")
	require.NoError(t, err)
	assert.Equal(t, int64(80), r.Get("score").Int())
}

func TestParseObject_RejectsArray(t *testing.T) {
	_, err := parseObject("test", `[1, 2]`)
	assert.Error(t, err)
}

func TestText_Trims(t *testing.T) {
	assert.Equal(t, "Hello there", Text("\n  Hello there \n"))
}

func TestStr(t *testing.T) {
	doc := gjson.Parse(`{"s": "  hi ", "n": 42, "b": true, "o": {"x": 1}, "null": null, "empty": ""}`)

	assert.Equal(t, "hi", str(doc.Get("s"), "def"))
	assert.Equal(t, "42", str(doc.Get("n"), "def"))
	assert.Equal(t, "true", str(doc.Get("b"), "def"))
	assert.Equal(t, "def", str(doc.Get("o"), "def"))
	assert.Equal(t, "def", str(doc.Get("null"), "def"))
	assert.Equal(t, "def", str(doc.Get("missing"), "def"))
	assert.Equal(t, "", str(doc.Get("empty"), "def"))
}

func TestStrs(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected []string
	}{
		{"array", `{"v": ["Go", " Python ", ""]}`, []string{"Go", "Python"}},
		{"comma string", `{"v": "Go, Python,  SQL"}`, []string{"Go", "Python", "SQL"}},
		{"newline bullets", `{"v": "- Led team\n- Shipped v2"}`, []string{"Led team", "Shipped v2"}},
		{"objects with name", `{"v": [{"name": "Go"}, {"level": "x"}]}`, []string{"Go"}},
		{"numbers", `{"v": [1, 2]}`, []string{"1", "2"}},
		{"missing", `{}`, []string{}},
		{"object", `{"v": {"a": "b"}}`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strs(gjson.Get(tt.json, "v"))
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInteger(t *testing.T) {
	doc := gjson.Parse(`{"n": 85.6, "s": "72%", "big": 140, "neg": -3, "bad": "high", "b": true}`)

	assert.Equal(t, 86, integer(doc.Get("n"), 0, 0, 100))
	assert.Equal(t, 72, integer(doc.Get("s"), 0, 0, 100))
	assert.Equal(t, 100, integer(doc.Get("big"), 0, 0, 100))
	assert.Equal(t, 0, integer(doc.Get("neg"), 5, 0, 100))
	assert.Equal(t, 5, integer(doc.Get("bad"), 5, 0, 100))
	assert.Equal(t, 5, integer(doc.Get("b"), 5, 0, 100))
	assert.Equal(t, 5, integer(doc.Get("missing"), 5, 0, 100))
}

func TestBoolean(t *testing.T) {
	doc := gjson.Parse(`{"t": true, "f": false, "s": "Yes", "n": 0, "x": "maybe"}`)

	assert.True(t, boolean(doc.Get("t"), false))
	assert.False(t, boolean(doc.Get("f"), true))
	assert.True(t, boolean(doc.Get("s"), false))
	assert.False(t, boolean(doc.Get("n"), true))
	assert.True(t, boolean(doc.Get("x"), true))
	assert.False(t, boolean(doc.Get("missing"), false))
}

func TestItems(t *testing.T) {
	assert.Len(t, items(gjson.Parse(`[{"a":1}, "skip", {"b":2}]`)), 2)
	assert.Len(t, items(gjson.Parse(`{"paths": [{"a":1}]}`), "careerPaths", "paths"), 1)
	assert.Empty(t, items(gjson.Parse(`{"other": [{"a":1}]}`), "paths"))
	assert.Empty(t, items(gjson.Parse(`"text"`)))
}
