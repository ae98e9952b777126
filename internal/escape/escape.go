// Package escape provides the string-quoting routine shared by every
// component that emits JavaScript literals into generated output.
package escape

import (
	"fmt"
	"regexp"
	"strings"
)

var identifierRe = regexp.MustCompile(`^[$A-Za-z_][$A-Za-z0-9_]*$`)

// String renders s as a double-quoted JavaScript string literal.
func String(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')

	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

// Unquote strips one layer of matching single or double quotes from s.
// Strings that are not wrapped in quotes are returned unchanged.
func Unquote(s string) string {
	if len(s) < 2 {
		return s
	}

	first := s[0]
	last := s[len(s)-1]

	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}

	return s
}

// IsIdentifier reports whether s is a legal JavaScript identifier.
func IsIdentifier(s string) bool {
	return identifierRe.MatchString(s)
}
