// Package tokenizer turns extracted document text into the sequence of
// candidate words a vocabulary is built from.
package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// Tokens that consist of exactly one of these symbols are dropped.
// Punctuation attached to a word ("cat,") is kept as part of the token;
// the same goes for letter case. Both are intentional: stripping or
// folding would change every stored frequency.
var punctuation = map[string]struct{}{
	"(": {},
	")": {},
	";": {},
	":": {},
	"[": {},
	"]": {},
	",": {},
}

// Tokenize splits text on whitespace and keeps tokens that are not bare
// punctuation and are at least minLetters characters long. Order and
// duplicates are preserved.
func Tokenize(text string, minLetters int) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if _, ok := punctuation[field]; ok {
			continue
		}
		if utf8.RuneCountInString(field) < minLetters {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}
