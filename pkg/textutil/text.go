package textutil

import (
	"strings"
	"unicode/utf8"
)

// ExtractInitials concatenates the first character of each space-separated word.
//
//	ExtractInitials("Java Development Kit") // "JDK"
func ExtractInitials(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		r, size := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError && size <= 1 {
			b.WriteString(w[:size])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SeparateEachLetterWithSpaces puts a space after every character except
// spaces already present, then trims spaces and control characters (U+0000 to
// U+0020) from both ends. A word break therefore shows as two spaces:
//
//	SeparateEachLetterWithSpaces("Ello World") // "E l l o  W o r l d"
//
// Characters are Unicode code points; multi-byte runes are never split.
func SeparateEachLetterWithSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		b.WriteRune(r)
		if r != ' ' {
			b.WriteByte(' ')
		}
	}
	return strings.TrimFunc(b.String(), isTrimmable)
}

// isTrimmable matches space and the C0 controls. Non-breaking and ideographic
// spaces are kept.
func isTrimmable(r rune) bool {
	return r <= ' '
}
