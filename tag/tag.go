// Package tag assigns treebank part-of-speech tags to tokens, maps them to
// lexical categories and lemmatizes the tokens.
package tag

import (
	"strings"

	sent "github.com/revelaction/sentsem/sentence"
)

// Tagger returns one raw treebank tag per token.
type Tagger interface {
	Tag(tokens []string) []string
}

// Lemmatizer returns the base form of a word for a category. Unknown
// lemmatizes without a category hint.
type Lemmatizer interface {
	Lemmatize(word string, pos sent.Category) string
}

// Category maps a raw treebank tag to a lexical category.
func Category(raw string) sent.Category {
	switch {
	case strings.HasPrefix(raw, "N") || raw == "MD":
		return sent.Noun
	case strings.HasPrefix(raw, "J"):
		return sent.Adjective
	case strings.HasPrefix(raw, "V"):
		return sent.Verb
	case strings.HasPrefix(raw, "RB"):
		return sent.Adverb
	}

	return sent.Unknown
}

// Adapter tags and lemmatizes normalized tokens.
type Adapter struct {
	tagger     Tagger
	lemmatizer Lemmatizer
}

// NewAdapter returns an Adapter using the given collaborators.
func NewAdapter(t Tagger, l Lemmatizer) *Adapter {
	return &Adapter{tagger: t, lemmatizer: l}
}

// TagAndLemmatize returns one Tagged per token, in token order. A missing
// tag degrades to the Unknown category.
func (a *Adapter) TagAndLemmatize(tokens []sent.Token) []sent.Tagged {
	texts := make([]string, len(tokens))
	for i, t := range tokens {
		texts[i] = t.Text
	}

	var tags []string
	if len(texts) > 0 {
		tags = a.tagger.Tag(texts)
	}

	tagged := make([]sent.Tagged, len(tokens))
	for i, text := range texts {
		raw := ""
		if i < len(tags) {
			raw = tags[i]
		}

		pos := Category(raw)
		tagged[i] = sent.Tagged{
			Text:     text,
			Tag:      raw,
			Category: pos,
			Lemma:    a.lemmatizer.Lemmatize(text, pos),
		}
	}

	return tagged
}
