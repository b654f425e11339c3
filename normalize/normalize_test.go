package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnglishStopwords(t *testing.T) {
	sw := English()

	assert.Len(t, sw, 179)
	for _, w := range []string{"the", "a", "an", "of", "on", "is", "i", "don't"} {
		assert.True(t, sw.Contains(w), w)
	}
	assert.False(t, sw.Contains("cat"))
	assert.False(t, sw.Contains(""))
}

func TestTokensFiltersStopwordsInOrder(t *testing.T) {
	n := New(English())

	tokens := n.Tokens("A cat sat on the mat")
	require.Len(t, tokens, 3)
	assert.Equal(t, []string{"cat", "sat", "mat"}, Texts(tokens))

	for i, tk := range tokens {
		assert.Equal(t, i, tk.Index)
	}
}

func TestTokensPunctuationAndCase(t *testing.T) {
	n := New(English())

	got := Texts(n.Tokens("Hello, WORLD!!  snake_case... 42 times; café"))
	assert.Equal(t, []string{"hello", "world", "snake_case", "42", "times", "café"}, got)
}

func TestTokensEmpty(t *testing.T) {
	n := New(English())

	assert.Empty(t, n.Tokens(""))
	assert.Empty(t, n.Tokens("   ...  !!"))
	assert.Empty(t, n.Tokens("the of"))
	assert.Empty(t, n.Tokens("a an"))
	assert.NotNil(t, n.Tokens(""))
}

func TestTokensWithoutStopwords(t *testing.T) {
	n := New(nil)

	assert.Equal(t, []string{"the", "cat"}, Texts(n.Tokens("The cat")))
}

func TestWordsKeepsDuplicates(t *testing.T) {
	assert.Equal(t, []string{"the", "dog", "and", "the", "dog"}, Words("The dog and the dog."))
}

func TestWordsCombiningMarks(t *testing.T) {
	// precomposed U+00E9 is a letter
	assert.Equal(t, []string{"caf\u00e9", "noir"}, Words("caf\u00e9 noir"))

	// U+0301 is a combining mark and ends the word
	assert.Equal(t, []string{"cafe", "noir"}, Words("cafe\u0301 noir"))
	assert.Equal(t, []string{"na", "ve"}, Words("na\u0308ve"))
}
