package textutil

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CapitalizeFirstLetter upper-cases the first character of s and leaves the
// rest unchanged. Full case mapping applies, so "ßeta" becomes "SSeta".
// An empty s is rejected with ErrInvalidArgument.
func CapitalizeFirstLetter(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: cannot capitalize an empty string", ErrInvalidArgument)
	}
	return capitalize(s), nil
}

// CapitalizeFirstLetterOfEachWord capitalizes every space-separated word and
// joins the words with single spaces. Runs of spaces collapse and no leading
// or trailing space is kept. Applying it twice gives the same result as once.
//
//	CapitalizeFirstLetterOfEachWord("ello  world") // "Ello World"
func CapitalizeFirstLetterOfEachWord(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// capitalize expects a non-empty string.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	// A cases.Caser must not be shared between goroutines.
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}

// splitWords splits on the space character only and drops empty segments.
// Tabs and other whitespace stay inside words.
func splitWords(s string) []string {
	parts := strings.Split(s, " ")
	words := parts[:0]
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}
