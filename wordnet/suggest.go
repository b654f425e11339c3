package wordnet

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// Suggestion is an index lemma close to a queried word.
type Suggestion struct {
	Lemma string  `json:"lemma"`
	Score float32 `json:"score"`
}

// Suggest returns up to limit index lemmas ranked by Levenshtein
// similarity to word, best first.
func (n *Net) Suggest(word string, limit int) []Suggestion {
	if limit <= 0 || word == "" {
		return nil
	}

	word = NormalizeLemma(word)

	var all []Suggestion
	for _, l := range n.lemmas {
		score, err := edlib.StringsSimilarity(word, l, edlib.Levenshtein)
		if err != nil || score <= 0 {
			continue
		}

		all = append(all, Suggestion{Lemma: l, Score: score})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})

	if len(all) > limit {
		all = all[:limit]
	}

	return all
}

// Complete returns up to limit index lemmas starting with prefix, in
// lexical order.
func (n *Net) Complete(prefix string, limit int) []string {
	prefix = NormalizeLemma(prefix)
	if prefix == "" || limit <= 0 {
		return nil
	}

	start := sort.SearchStrings(n.lemmas, prefix)

	var res []string
	for _, l := range n.lemmas[start:] {
		if !strings.HasPrefix(l, prefix) || len(res) == limit {
			break
		}

		res = append(res, l)
	}

	return res
}
