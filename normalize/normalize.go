// Package normalize turns a raw sentence into the ordered sequence of
// lowercased, stopword filtered word tokens.
package normalize

import (
	_ "embed"
	"regexp"
	"strings"

	sent "github.com/revelaction/sentsem/sentence"
)

//go:embed english.txt
var englishList string

// wordRe keeps contiguous runs of Unicode letters, digits and the
// underscore. Combining marks split words, so decomposed accents break a
// token where a precomposed letter does not.
var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Stopwords is a read-only set of words excluded from similarity.
type Stopwords map[string]struct{}

// Contains reports whether w is a stopword.
func (s Stopwords) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// English returns the English stopword list shipped with the binary.
func English() Stopwords {
	set := Stopwords{}
	for _, line := range strings.Split(englishList, "\n") {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}

	return set
}

// Normalizer lowercases, tokenizes and filters sentences. It holds no
// mutable state and can be shared.
type Normalizer struct {
	stopwords Stopwords
}

// New creates a Normalizer. A nil set disables stopword filtering.
func New(stopwords Stopwords) *Normalizer {
	if stopwords == nil {
		stopwords = Stopwords{}
	}

	return &Normalizer{stopwords: stopwords}
}

// Words returns the lowercased word tokens of s, stopwords included.
func Words(s string) []string {
	return wordRe.FindAllString(strings.ToLower(s), -1)
}

// Tokens returns the stopword filtered tokens of s in order of occurrence.
func (n *Normalizer) Tokens(s string) []sent.Token {
	tokens := []sent.Token{}
	for _, w := range Words(s) {
		if n.stopwords.Contains(w) {
			continue
		}

		tokens = append(tokens, sent.Token{Text: w, Index: len(tokens)})
	}

	return tokens
}

// Texts returns the text of each token.
func Texts(tokens []sent.Token) []string {
	texts := make([]string, len(tokens))
	for i, t := range tokens {
		texts[i] = t.Text
	}

	return texts
}
