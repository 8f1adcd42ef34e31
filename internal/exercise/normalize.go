package exercise

import "strings"

// punctuation stripped before comparison and tokenization on levels 2-4
const punctuation = ".,!?;:"

// NormalizeText lowercases, strips the fixed punctuation set and collapses
// whitespace. Both submissions and canonical content pass through this
// before comparison on levels 2-4.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// Tokenize splits a sentence into the word tokens a puzzle is built from.
// Level 1 preserves case and attached punctuation; higher levels tokenize
// the normalized form.
func Tokenize(content string, level int) []string {
	if level == LevelExact {
		return strings.Fields(content)
	}
	return strings.Fields(NormalizeText(content))
}
