package tokenizer

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Run("splits on whitespace and preserves order", func(t *testing.T) {
		tokens := Tokenize("the cat\tsat on\nthe mat", 3)
		assert.Equal(t, []string{"the", "cat", "sat", "the", "mat"}, tokens)
	})

	t.Run("drops tokens below the letter limit", func(t *testing.T) {
		tokens := Tokenize("a an the word", 3)
		assert.Equal(t, []string{"the", "word"}, tokens)
	})

	t.Run("drops bare punctuation tokens", func(t *testing.T) {
		tokens := Tokenize("one ( two ) ; : [ ] , three", 1)
		assert.Equal(t, []string{"one", "two", "three"}, tokens)
	})

	t.Run("keeps punctuation attached to words", func(t *testing.T) {
		tokens := Tokenize("cat, dog; (bird)", 3)
		assert.Equal(t, []string{"cat,", "dog;", "(bird)"}, tokens)
	})

	t.Run("does not fold case", func(t *testing.T) {
		tokens := Tokenize("Cat cat CAT", 3)
		assert.Equal(t, []string{"Cat", "cat", "CAT"}, tokens)
	})

	t.Run("does not deduplicate", func(t *testing.T) {
		tokens := Tokenize("word word word", 3)
		assert.Len(t, tokens, 3)
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		// Three runes, more than three bytes
		tokens := Tokenize("äöü", 3)
		assert.Equal(t, []string{"äöü"}, tokens)

		tokens = Tokenize("äö", 3)
		assert.Empty(t, tokens)
	})

	t.Run("empty text yields no tokens", func(t *testing.T) {
		assert.Empty(t, Tokenize("", 3))
		assert.Empty(t, Tokenize("   \n\t ", 3))
	})

	t.Run("every kept token satisfies the contract", func(t *testing.T) {
		text := "Lorem ipsum, dolor sit amet ( consectetur ) ; adipiscing elit : [ sed ] do"
		for _, minLetters := range []int{1, 3, 5} {
			for _, token := range Tokenize(text, minLetters) {
				assert.GreaterOrEqual(t, utf8.RuneCountInString(token), minLetters)
				assert.NotContains(t, []string{"(", ")", ";", ":", "[", "]", ","}, token)
			}
		}
	})
}
