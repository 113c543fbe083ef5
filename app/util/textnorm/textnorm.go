// Package textnorm normalizes user text before any heuristic matching:
// case folding plus diacritic stripping, so "¿QUÉ tal?" and "que tal"
// compare equal.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Transformers carry state, so a fresh chain is built per call.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Fold lowercases the text and removes combining marks.
func Fold(s string) string {
	s = strings.ToLower(s)

	out, _, err := transform.String(stripMarks(), s)
	if err != nil {
		return s
	}

	return out
}

// Tokens splits the folded text on whitespace.
func Tokens(s string) []string {
	return strings.Fields(Fold(s))
}

// WordCount reports the number of whitespace-separated tokens.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
