package wordnet

import (
	"strings"

	sent "github.com/revelaction/sentsem/sentence"
)

type substitution struct {
	suffix, ending string
}

// detachment rules, tried in order
var substitutions = map[sent.Category][]substitution{
	sent.Noun: {
		{"s", ""},
		{"ses", "s"},
		{"ves", "f"},
		{"xes", "x"},
		{"zes", "z"},
		{"ches", "ch"},
		{"shes", "sh"},
		{"men", "man"},
		{"ies", "y"},
	},
	sent.Verb: {
		{"s", ""},
		{"ies", "y"},
		{"es", "e"},
		{"es", ""},
		{"ed", "e"},
		{"ed", ""},
		{"ing", "e"},
		{"ing", ""},
	},
	sent.Adjective: {
		{"er", ""},
		{"est", ""},
		{"er", "e"},
		{"est", "e"},
	},
	sent.Adverb: {},
}

// Morphy returns the base forms of word for pos that exist in the index.
// Irregular forms from the exception lists take precedence over the
// detachment rules. The word itself is a candidate when indexed.
func (n *Net) Morphy(word string, pos sent.Category) []string {
	pos = indexCategory(pos)
	word = NormalizeLemma(word)

	if bases, ok := n.exceptions[pos][word]; ok {
		return n.filterForms(append([]string{word}, bases...), pos)
	}

	forms := []string{word}
	for _, sub := range substitutions[pos] {
		if strings.HasSuffix(word, sub.suffix) {
			forms = append(forms, strings.TrimSuffix(word, sub.suffix)+sub.ending)
		}
	}

	return n.filterForms(forms, pos)
}

func (n *Net) filterForms(forms []string, pos sent.Category) []string {
	var res []string
	seen := map[string]bool{}
	for _, f := range forms {
		if seen[f] || !n.hasLemma(f, pos) {
			continue
		}

		seen[f] = true
		res = append(res, f)
	}

	return res
}

// Lemmatize returns the shortest base form of word for pos, or word when
// none is found. Unknown tries noun, verb, adjective and adverb in turn.
func (n *Net) Lemmatize(word string, pos sent.Category) string {
	if pos == sent.Unknown {
		for _, c := range []sent.Category{sent.Noun, sent.Verb, sent.Adjective, sent.Adverb} {
			if forms := n.Morphy(word, c); len(forms) > 0 {
				return shortest(forms)
			}
		}

		return word
	}

	forms := n.Morphy(word, pos)
	if len(forms) == 0 {
		return word
	}

	return shortest(forms)
}

// shortest returns the first of the shortest strings.
func shortest(forms []string) string {
	s := forms[0]
	for _, f := range forms[1:] {
		if len(f) < len(s) {
			s = f
		}
	}

	return s
}
