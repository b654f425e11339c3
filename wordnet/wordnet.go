// Package wordnet holds an immutable in-memory lexical hierarchy: synsets
// linked by hypernym edges, a sense ranked lemma index and the irregular
// morphology exception lists.
//
// A Net is built once with New and is safe for concurrent readers. On top of
// it the package provides path similarity, a morphy style lemmatizer and a
// simplified Lesk disambiguator.
package wordnet

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	sent "github.com/revelaction/sentsem/sentence"
)

// Synset is one sense node of the hierarchy.
type Synset struct {
	ID  string        `json:"id"`
	Pos sent.Category `json:"pos"`

	// Lemmas contains the word forms of the synset, underscore joined for
	// collocations (f.ex. "floor_cover").
	Lemmas []string `json:"lemmas"`

	Gloss    string   `json:"gloss,omitempty"`
	Examples []string `json:"examples,omitempty"`

	Hypernyms         []string `json:"hypernyms,omitempty"`
	InstanceHypernyms []string `json:"instance_hypernyms,omitempty"`
}

// Parents returns the hypernym and instance hypernym ids.
func (s *Synset) Parents() []string {
	if len(s.InstanceHypernyms) == 0 {
		return s.Hypernyms
	}

	parents := make([]string, 0, len(s.Hypernyms)+len(s.InstanceHypernyms))
	parents = append(parents, s.Hypernyms...)
	return append(parents, s.InstanceHypernyms...)
}

// IndexEntry lists the synsets of a lemma in sense rank order.
type IndexEntry struct {
	Lemma   string        `json:"lemma"`
	Pos     sent.Category `json:"pos"`
	Synsets []string      `json:"synsets"`
}

// Exception maps an irregular inflected form to its base forms.
type Exception struct {
	Pos       sent.Category `json:"pos"`
	Inflected string        `json:"inflected"`
	Bases     []string      `json:"bases"`
}

// Net is the lexical hierarchy.
type Net struct {
	synsets map[string]*Synset

	// ids in load order
	order []string

	// index maps the index category to lemma to sense ranked ids. Satellite
	// synsets are indexed under Adjective.
	index map[sent.Category]map[string][]string

	exceptions map[sent.Category]map[string][]string

	// sorted unique lemmas
	lemmas []string
}

// indexCategory returns the category under which pos is indexed.
func indexCategory(pos sent.Category) sent.Category {
	if pos == sent.Satellite {
		return sent.Adjective
	}

	return pos
}

// NormalizeLemma lowercases and joins collocations with underscores.
func NormalizeLemma(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// New builds a Net. Index entries come first in the lemma index; synset
// lemmas not covered by any entry are appended in synset order.
func New(synsets []Synset, index []IndexEntry, exceptions []Exception) (*Net, error) {
	n := &Net{
		synsets:    make(map[string]*Synset, len(synsets)),
		order:      make([]string, 0, len(synsets)),
		index:      map[sent.Category]map[string][]string{},
		exceptions: map[sent.Category]map[string][]string{},
	}

	for _, c := range []sent.Category{sent.Noun, sent.Verb, sent.Adjective, sent.Adverb} {
		n.index[c] = map[string][]string{}
		n.exceptions[c] = map[string][]string{}
	}

	for i := range synsets {
		s := synsets[i]
		if s.ID == "" {
			return nil, errors.Newf("synset %d has no id", i)
		}

		if s.Pos == sent.Unknown {
			return nil, errors.Newf("synset %s has no pos", s.ID)
		}
		if _, ok := sent.ParseCategory(string(s.Pos)); !ok {
			return nil, errors.Newf("synset %s: unknown pos %q", s.ID, s.Pos)
		}

		if _, dup := n.synsets[s.ID]; dup {
			return nil, errors.Newf("duplicate synset id %s", s.ID)
		}

		lemmas := make([]string, len(s.Lemmas))
		for j, l := range s.Lemmas {
			lemmas[j] = NormalizeLemma(l)
		}
		s.Lemmas = lemmas

		n.synsets[s.ID] = &s
		n.order = append(n.order, s.ID)
	}

	for _, id := range n.order {
		s := n.synsets[id]
		for _, p := range s.Parents() {
			if _, ok := n.synsets[p]; !ok {
				return nil, errors.Newf("synset %s: unknown hypernym %s", id, p)
			}
		}
	}

	for _, e := range index {
		pos := indexCategory(e.Pos)
		idx, ok := n.index[pos]
		if !ok {
			return nil, errors.Newf("index entry %q: unknown pos %q", e.Lemma, e.Pos)
		}

		lemma := NormalizeLemma(e.Lemma)
		for _, id := range e.Synsets {
			s, ok := n.synsets[id]
			if !ok {
				return nil, errors.Newf("index entry %q: unknown synset %s", e.Lemma, id)
			}

			if indexCategory(s.Pos) != pos {
				return nil, errors.Newf("index entry %q: synset %s is not %s", e.Lemma, id, pos)
			}

			idx[lemma] = appendUnique(idx[lemma], id)
		}
	}

	for _, id := range n.order {
		s := n.synsets[id]
		idx := n.index[indexCategory(s.Pos)]
		for _, l := range s.Lemmas {
			idx[l] = appendUnique(idx[l], id)
		}
	}

	for _, e := range exceptions {
		exc, ok := n.exceptions[indexCategory(e.Pos)]
		if !ok {
			return nil, errors.Newf("exception %q: unknown pos %q", e.Inflected, e.Pos)
		}

		inflected := NormalizeLemma(e.Inflected)
		for _, b := range e.Bases {
			exc[inflected] = appendUnique(exc[inflected], NormalizeLemma(b))
		}
	}

	seen := map[string]bool{}
	for _, idx := range n.index {
		for l := range idx {
			if !seen[l] {
				seen[l] = true
				n.lemmas = append(n.lemmas, l)
			}
		}
	}
	sort.Strings(n.lemmas)

	return n, nil
}

func appendUnique(l []string, s string) []string {
	for _, e := range l {
		if e == s {
			return l
		}
	}

	return append(l, s)
}

// Synset returns the synset with the given id.
func (n *Net) Synset(id string) (*Synset, bool) {
	s, ok := n.synsets[id]
	return s, ok
}

// Len returns the number of synsets.
func (n *Net) Len() int {
	return len(n.order)
}

// Lemmas returns the sorted unique lemmas of the index. The slice must not
// be modified.
func (n *Net) Lemmas() []string {
	return n.lemmas
}

// All calls fn for every synset in load order until fn returns false.
func (n *Net) All(fn func(*Synset) bool) {
	for _, id := range n.order {
		if !fn(n.synsets[id]) {
			return
		}
	}
}

// Index returns the lemma index as entries sorted by category and lemma.
func (n *Net) Index() []IndexEntry {
	var entries []IndexEntry
	for _, pos := range []sent.Category{sent.Noun, sent.Verb, sent.Adjective, sent.Adverb} {
		idx := n.index[pos]
		lemmas := make([]string, 0, len(idx))
		for l := range idx {
			lemmas = append(lemmas, l)
		}
		sort.Strings(lemmas)

		for _, l := range lemmas {
			entries = append(entries, IndexEntry{Lemma: l, Pos: pos, Synsets: idx[l]})
		}
	}

	return entries
}

// Exceptions returns the exception lists sorted by category and form.
func (n *Net) Exceptions() []Exception {
	var all []Exception
	for _, pos := range []sent.Category{sent.Noun, sent.Verb, sent.Adjective, sent.Adverb} {
		exc := n.exceptions[pos]
		forms := make([]string, 0, len(exc))
		for f := range exc {
			forms = append(forms, f)
		}
		sort.Strings(forms)

		for _, f := range forms {
			all = append(all, Exception{Pos: pos, Inflected: f, Bases: exc[f]})
		}
	}

	return all
}

// Synsets returns the sense ranked synsets of lemma.
//
// Adjective excludes satellite synsets and Satellite returns only those.
// Unknown returns the synsets of every category in noun, verb, adjective
// (heads and satellites in index order), adverb order.
func (n *Net) Synsets(lemma string, pos sent.Category) []*Synset {
	lemma = NormalizeLemma(lemma)

	if pos == sent.Unknown {
		var all []*Synset
		for _, c := range []sent.Category{sent.Noun, sent.Verb, sent.Adjective, sent.Adverb} {
			all = append(all, n.lookup(lemma, c, func(*Synset) bool { return true })...)
		}
		return all
	}

	return n.lookup(lemma, indexCategory(pos), func(s *Synset) bool { return s.Pos == pos })
}

func (n *Net) lookup(lemma string, pos sent.Category, keep func(*Synset) bool) []*Synset {
	idx, ok := n.index[pos]
	if !ok {
		return nil
	}

	var res []*Synset
	for _, id := range idx[lemma] {
		if s := n.synsets[id]; keep(s) {
			res = append(res, s)
		}
	}

	return res
}

// hasLemma reports whether lemma has synsets indexed for pos.
func (n *Net) hasLemma(lemma string, pos sent.Category) bool {
	idx, ok := n.index[indexCategory(pos)]
	if !ok {
		return false
	}

	return len(idx[lemma]) > 0
}

// Sense returns the handle of a synset.
func (n *Net) Sense(id string) (Sense, bool) {
	s, ok := n.synsets[id]
	if !ok {
		return Sense{}, false
	}

	return Sense{net: n, synset: s}, true
}
