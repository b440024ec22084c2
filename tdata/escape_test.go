package tdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain", "plain"},
		{"a:b$c", `a\:b\$c`},
		{"::", `\:\:`},
		{"^begin^", "^begin^"},
		{`back\slash`, `back\slash`},
		{`\:`, `\\:`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "plain", "plain"},
		{"sep and end", `a\:b\$c`, "a:b$c"},
		{"marker before other byte", `a\b`, `a\b`},
		{"trailing marker", `abc\`, `abc\`},
		{"lone marker", `\`, `\`},
		{"double marker", `\\:`, `\:`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Unescape([]byte(tt.input)))
		})
	}
}

func TestEscape_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a:b$c",
		"::$$",
		`\`,
		`\\`,
		`\:`,
		`a\:b`,
		`trailing\`,
		"^1:2$",
		"unicode: héllo $ wörld",
	}

	for _, s := range inputs {
		assert.Equal(t, s, Unescape([]byte(Escape(s))), "round trip of %q", s)
	}
}
