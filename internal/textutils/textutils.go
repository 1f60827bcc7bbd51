// Package textutils turns raw extracted document text into the trimmed line
// sequence the scanner works on.
package textutils

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// spaceLike maps characters that PDF text layers emit in place of a plain
// space or line break.
var spaceLike = strings.NewReplacer(
	"\u00a0", " ", // no-break space
	"\u202f", " ", // narrow no-break space
	"\u2007", " ", // figure space
	"\r\n", "\n",
	"\r", "\n",
	"\f", "\n", // pdftotext page separator
)

// NormalizeText composes accents to NFC so that "Crédito" matches whether
// the PDF stored é as one code point or as e + combining acute, and folds
// space-like characters to ASCII.
func NormalizeText(s string) string {
	return spaceLike.Replace(norm.NFC.String(s))
}

// SplitLines normalizes text and returns its trimmed, non-empty lines in
// document order.
func SplitLines(text string) []string {
	raw := strings.Split(NormalizeText(text), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// CollapseWhitespace trims s and replaces every whitespace run with one space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
