package wordnet

import (
	sent "github.com/revelaction/sentsem/sentence"
)

// Sense is the handle of a synset inside its Net.
type Sense struct {
	net    *Net
	synset *Synset
}

var _ sent.Sense = Sense{}

func (s Sense) ID() string {
	return s.synset.ID
}

// Synset returns the underlying synset.
func (s Sense) Synset() *Synset {
	return s.synset
}

// PathSimilarity implements sent.Sense. Senses of another Net are undefined.
func (s Sense) PathSimilarity(other sent.Sense) (float64, bool) {
	o, ok := other.(Sense)
	if !ok || o.net != s.net || s.net == nil {
		return 0, false
	}

	return s.net.PathSimilarity(s.synset.ID, o.synset.ID)
}

// hypernymDistances returns the breadth first distance from id to each of
// its ancestors, id itself included at distance 0.
func (n *Net) hypernymDistances(id string) map[string]int {
	dist := map[string]int{id: 0}
	queue := []string{id}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, p := range n.synsets[cur].Parents() {
			if _, seen := dist[p]; seen {
				continue
			}

			dist[p] = dist[cur] + 1
			queue = append(queue, p)
		}
	}

	return dist
}

// ShortestPathDistance returns the number of edges of the shortest path
// between a and b going through a common ancestor. Verbs share a simulated
// root one edge above the deepest ancestor of each side. The second return
// value is false when no path exists.
func (n *Net) ShortestPathDistance(a, b string) (int, bool) {
	sa, ok := n.synsets[a]
	if !ok {
		return 0, false
	}

	sb, ok := n.synsets[b]
	if !ok {
		return 0, false
	}

	if a == b {
		return 0, true
	}

	if indexCategory(sa.Pos) != indexCategory(sb.Pos) {
		return 0, false
	}

	da := n.hypernymDistances(a)
	db := n.hypernymDistances(b)

	best := -1
	for id, d1 := range da {
		d2, ok := db[id]
		if !ok {
			continue
		}

		if best < 0 || d1+d2 < best {
			best = d1 + d2
		}
	}

	if sa.Pos == sent.Verb {
		viaRoot := maxDistance(da) + 1 + maxDistance(db) + 1
		if best < 0 || viaRoot < best {
			best = viaRoot
		}
	}

	if best < 0 {
		return 0, false
	}

	return best, true
}

func maxDistance(dist map[string]int) int {
	m := 0
	for _, d := range dist {
		if d > m {
			m = d
		}
	}

	return m
}

// PathSimilarity returns 1/(1+d) for the shortest path distance d between
// the synsets a and b.
func (n *Net) PathSimilarity(a, b string) (float64, bool) {
	d, ok := n.ShortestPathDistance(a, b)
	if !ok {
		return 0, false
	}

	return 1.0 / float64(d+1), true
}

// Depth returns the length of the longest hypernym chain above id.
func (n *Net) Depth(id string) int {
	s, ok := n.synsets[id]
	if !ok {
		return 0
	}

	return n.depth(s, map[string]int{})
}

// Depths returns the depth of every synset.
func (n *Net) Depths() map[string]int {
	memo := make(map[string]int, len(n.order))
	for _, id := range n.order {
		n.depth(n.synsets[id], memo)
	}

	return memo
}

// depth memoizes in memo; -1 marks a synset being visited so that a
// malformed cyclic hierarchy terminates.
func (n *Net) depth(s *Synset, memo map[string]int) int {
	if d, ok := memo[s.ID]; ok {
		if d < 0 {
			return 0
		}
		return d
	}
	memo[s.ID] = -1

	d := 0
	for _, p := range s.Parents() {
		if pd := n.depth(n.synsets[p], memo) + 1; pd > d {
			d = pd
		}
	}

	memo[s.ID] = d
	return d
}
