package wordnet

import (
	"github.com/revelaction/sentsem/normalize"
	sent "github.com/revelaction/sentsem/sentence"
)

// Lesk is a simplified Lesk disambiguator: the sense whose gloss and
// examples share the most word types with the context wins.
type Lesk struct {
	net *Net
}

// NewLesk returns a Lesk disambiguator over net.
func NewLesk(net *Net) *Lesk {
	return &Lesk{net: net}
}

// BestSense returns the sense of lemma that best fits context, or nil when
// lemma has no synset for pos. Ties go to the higher ranked sense.
func (l *Lesk) BestSense(context, lemma string, pos sent.Category) sent.Sense {
	synsets := l.net.Synsets(lemma, pos)
	if len(synsets) == 0 {
		return nil
	}

	ctx := map[string]bool{}
	for _, w := range normalize.Words(context) {
		ctx[w] = true
	}

	best, bestOverlap := synsets[0], -1
	for _, s := range synsets {
		if o := overlap(ctx, s); o > bestOverlap {
			best, bestOverlap = s, o
		}
	}

	return Sense{net: l.net, synset: best}
}

func overlap(ctx map[string]bool, s *Synset) int {
	seen := map[string]bool{}
	count := 0

	add := func(text string) {
		for _, w := range normalize.Words(text) {
			if seen[w] {
				continue
			}
			seen[w] = true

			if ctx[w] {
				count++
			}
		}
	}

	add(s.Gloss)
	for _, e := range s.Examples {
		add(e)
	}

	return count
}
