package tag

import (
	"unicode"

	sent "github.com/revelaction/sentsem/sentence"
	"github.com/revelaction/sentsem/wordnet"
)

var treebank = map[sent.Category]string{
	sent.Noun:      "NN",
	sent.Verb:      "VB",
	sent.Adjective: "JJ",
	sent.Adverb:    "RB",
}

// Lexical tags each token with the category under which the lexical
// hierarchy knows the most senses of its base form. Ties keep the noun,
// verb, adjective, adverb order. It is deterministic and context free.
type Lexical struct {
	net *wordnet.Net
}

var _ Tagger = (*Lexical)(nil)

// NewLexical returns a Lexical tagger over net.
func NewLexical(net *wordnet.Net) *Lexical {
	return &Lexical{net: net}
}

func (l *Lexical) Tag(tokens []string) []string {
	tags := make([]string, len(tokens))
	for i, tk := range tokens {
		tags[i] = l.tag(tk)
	}

	return tags
}

func (l *Lexical) tag(token string) string {
	if isNumber(token) {
		return "CD"
	}

	best, bestCount := sent.Unknown, 0
	for _, pos := range []sent.Category{sent.Noun, sent.Verb, sent.Adjective, sent.Adverb} {
		count := 0
		for _, form := range l.net.Morphy(token, pos) {
			count = max(count, len(l.net.Synsets(form, pos))+satellites(l.net, form, pos))
		}

		if count > bestCount {
			best, bestCount = pos, count
		}
	}

	if best == sent.Unknown {
		return "FW"
	}

	return treebank[best]
}

// satellites counts the satellite synsets of an adjective lemma, which
// Synsets leaves out for the Adjective category.
func satellites(net *wordnet.Net, form string, pos sent.Category) int {
	if pos != sent.Adjective {
		return 0
	}

	return len(net.Synsets(form, sent.Satellite))
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
