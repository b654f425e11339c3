package stat

import (
	sent "github.com/revelaction/sentsem/sentence"
	"github.com/revelaction/sentsem/wordnet"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSynsets    int
	SynsetsPerPos map[sent.Category]int
	NumLemmas     int
	NumExceptions int

	// NumRoots counts synsets without hypernyms
	NumRoots  int
	MaxDepth  int
	DepthMean float64
	DepthDis  map[int]int

	// PolysemyMax is the largest number of senses of one lemma in one
	// category
	PolysemyMax      int
	PolysemyMaxLemma string
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		SynsetsPerPos: map[sent.Category]int{},
		DepthDis:      map[int]int{},
	}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(net *wordnet.Net) {
	h.stats.NumSynsets = net.Len()
	h.stats.NumLemmas = len(net.Lemmas())
	h.stats.NumExceptions = len(net.Exceptions())

	depths := net.Depths()
	total := 0
	net.All(func(s *wordnet.Synset) bool {
		h.stats.SynsetsPerPos[s.Pos]++
		if len(s.Parents()) == 0 {
			h.stats.NumRoots++
		}

		d := depths[s.ID]
		h.stats.DepthDis[d]++
		h.stats.MaxDepth = max(h.stats.MaxDepth, d)
		total += d
		return true
	})

	if h.stats.NumSynsets > 0 {
		h.stats.DepthMean = float64(total) / float64(h.stats.NumSynsets)
	}

	for _, e := range net.Index() {
		if len(e.Synsets) > h.stats.PolysemyMax {
			h.stats.PolysemyMax = len(e.Synsets)
			h.stats.PolysemyMaxLemma = e.Lemma
		}
	}
}
