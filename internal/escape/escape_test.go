package escape

import (
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		// Plain text
		{"", `""`},
		{"abc", `"abc"`},
		{"a.b.Widget", `"a.b.Widget"`},

		// Quotes and backslashes
		{`say "hi"`, `"say \"hi\""`},
		{`C:\tmp`, `"C:\\tmp"`},

		// Whitespace escapes
		{"a\nb", `"a\nb"`},
		{"a\tb", `"a\tb"`},
		{"a\r\n", `"a\r\n"`},

		// Control characters
		{"a\x00b", `"a\u0000b"`},
		{"\x1b", `"\u001b"`},

		// Non-ASCII passes through
		{"héllo", `"héllo"`},
	}

	for _, tt := range tests {
		result := String(tt.in)
		if result != tt.expected {
			t.Errorf("String(%q) = %s, want %s", tt.in, result, tt.expected)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{`"a+b"`, "a+b"},
		{`'a+b'`, "a+b"},
		{"a+b", "a+b"},
		{`"`, `"`},
		{"", ""},
		// Mismatched quotes stay as-is
		{`"a+b'`, `"a+b'`},
	}

	for _, tt := range tests {
		if got := Unquote(tt.in); got != tt.expected {
			t.Errorf("Unquote(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestIsIdentifier(t *testing.T) {
	valid := []string{"a", "_v1", "$scope", "render2", "_v1_4821"}
	invalid := []string{"", "1a", "a-b", "a.b", "a b"}

	for _, s := range valid {
		if !IsIdentifier(s) {
			t.Errorf("IsIdentifier(%q) = false, want true", s)
		}
	}

	for _, s := range invalid {
		if IsIdentifier(s) {
			t.Errorf("IsIdentifier(%q) = true, want false", s)
		}
	}
}
