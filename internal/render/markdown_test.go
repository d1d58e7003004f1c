package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "Привет, как дела",
			expected: "Привет, как дела",
		},
		{
			name:     "sentence with period and exclamation",
			input:    "Готово. Спасибо!",
			expected: `Готово\. Спасибо\!`,
		},
		{
			name:     "url",
			input:    "https://example.com/page",
			expected: `https://example\.com/page`,
		},
		{
			name:     "markdown markup",
			input:    "_em_ *bold* [link](url)",
			expected: `\_em\_ \*bold\* \[link\]\(url\)`,
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
		})
	}
}

func TestEscape_AllReservedCharacters(t *testing.T) {
	escaped := Escape(specials)

	for _, r := range specials {
		assert.Contains(t, escaped, `\`+string(r))
	}
	// Every reserved character contributes exactly one backslash.
	assert.Equal(t, len(specials), strings.Count(escaped, `\`))
}

func TestEscape_TwiceIsNotIdempotent(t *testing.T) {
	// Regression guard: double escaping is detectable, so callers must
	// escape exactly once per outbound string.
	input := "Статус: готово."

	once := Escape(input)
	twice := Escape(once)

	assert.NotEqual(t, once, twice)
}
