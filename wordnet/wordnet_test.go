package wordnet

import (
	"encoding/json"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/sentsem/sentence"
)

type fixture struct {
	Synsets    []Synset     `json:"synsets"`
	Index      []IndexEntry `json:"index"`
	Exceptions []Exception  `json:"exceptions"`
}

func testNet(t *testing.T) *Net {
	t.Helper()

	data, err := os.ReadFile("testdata/lexicon.json")
	require.NoError(t, err)

	var f fixture
	require.NoError(t, json.Unmarshal(data, &f))

	n, err := New(f.Synsets, f.Index, f.Exceptions)
	require.NoError(t, err)
	return n
}

func ids(synsets []*Synset) []string {
	res := []string{}
	for _, s := range synsets {
		res = append(res, s.ID)
	}
	return res
}

func TestNewValidates(t *testing.T) {
	_, err := New([]Synset{{ID: "a.n.01", Pos: sent.Noun, Hypernyms: []string{"missing"}}}, nil, nil)
	assert.ErrorContains(t, err, "unknown hypernym")

	_, err = New([]Synset{{ID: "a.n.01", Pos: sent.Noun}, {ID: "a.n.01", Pos: sent.Noun}}, nil, nil)
	assert.ErrorContains(t, err, "duplicate")

	_, err = New([]Synset{{ID: "a.x.01", Pos: "x"}}, nil, nil)
	assert.ErrorContains(t, err, "unknown pos")

	_, err = New([]Synset{{ID: "a.n.01"}}, nil, nil)
	assert.ErrorContains(t, err, "no pos")

	_, err = New([]Synset{{ID: "a.n.01", Pos: sent.Noun}}, []IndexEntry{{Lemma: "a", Pos: sent.Verb, Synsets: []string{"a.n.01"}}}, nil)
	assert.ErrorContains(t, err, "is not")
}

func TestSynsetsRankAndCategories(t *testing.T) {
	n := testNet(t)

	assert.Equal(t, []string{"cat.n.01", "cat.n.03"}, ids(n.Synsets("cat", sent.Noun)))
	assert.Equal(t, []string{"cat.n.01", "cat.n.03"}, ids(n.Synsets("Cat", sent.Unknown)))
	assert.Empty(t, n.Synsets("cat", sent.Verb))

	// adjective lookups never return satellites
	assert.Empty(t, n.Synsets("blue", sent.Adjective))
	assert.Equal(t, []string{"blue.s.01"}, ids(n.Synsets("blue", sent.Satellite)))
	assert.Equal(t, []string{"fast.a.01"}, ids(n.Synsets("fast", sent.Adjective)))
	assert.Equal(t, []string{"blue.n.01", "blue.s.01"}, ids(n.Synsets("blue", sent.Unknown)))

	assert.Equal(t, []string{"floor_cover.n.01"}, ids(n.Synsets("floor cover", sent.Noun)))
	assert.Equal(t, []string{"paris.n.01"}, ids(n.Synsets("paris", sent.Noun)))
}

func TestPathSimilarity(t *testing.T) {
	n := testNet(t)

	tests := []struct {
		a, b string
		want float64
		ok   bool
	}{
		{"cat.n.01", "cat.n.01", 1, true},
		{"cat.n.01", "dog.n.01", 0.2, true},
		{"dog.n.01", "cat.n.01", 0.2, true},
		{"mat.n.01", "rug.n.01", 1.0 / 3, true},
		{"car.n.01", "cheese.n.01", 1.0 / 13, true},
		{"paris.n.01", "location.n.01", 1.0 / 3, true},
		{"drive.v.01", "run.v.01", 1.0 / 3, true},
		// verbs without a common hypernym meet at the simulated root
		{"sit.v.01", "stand.v.01", 1.0 / 3, true},
		{"sit.v.01", "drive.v.01", 0.25, true},
		{"fast.a.01", "good.a.01", 0, false},
		{"blue.s.01", "fast.a.01", 0, false},
		{"cat.n.01", "sit.v.01", 0, false},
		{"cat.n.01", "missing", 0, false},
	}

	for _, tt := range tests {
		got, ok := n.PathSimilarity(tt.a, tt.b)
		assert.Equal(t, tt.ok, ok, "%s %s", tt.a, tt.b)
		assert.InDelta(t, tt.want, got, 1e-9, "%s %s", tt.a, tt.b)
	}
}

func TestSensePathSimilarity(t *testing.T) {
	n := testNet(t)
	other := testNet(t)

	cat, ok := n.Sense("cat.n.01")
	require.True(t, ok)
	dog, ok := n.Sense("dog.n.01")
	require.True(t, ok)
	foreign, ok := other.Sense("dog.n.01")
	require.True(t, ok)

	sim, ok := cat.PathSimilarity(dog)
	assert.True(t, ok)
	assert.InDelta(t, 0.2, sim, 1e-9)

	_, ok = cat.PathSimilarity(foreign)
	assert.False(t, ok)

	_, ok = n.Sense("nope")
	assert.False(t, ok)
}

func TestDepth(t *testing.T) {
	n := testNet(t)

	assert.Equal(t, 0, n.Depth("entity.n.01"))
	assert.Equal(t, 3, n.Depth("city.n.01"))
	assert.Equal(t, 11, n.Depth("cat.n.01"))

	depths := n.Depths()
	assert.Len(t, depths, n.Len())
	assert.Equal(t, 11, depths["dog.n.01"])
	assert.Equal(t, 0, depths["sit.v.01"])
}

func TestMorphy(t *testing.T) {
	n := testNet(t)

	tests := []struct {
		word string
		pos  sent.Category
		want string
	}{
		{"cats", sent.Noun, "cat"},
		{"mice", sent.Noun, "mouse"},
		{"cars", sent.Noun, "car"},
		{"sat", sent.Verb, "sit"},
		{"drives", sent.Verb, "drive"},
		{"driving", sent.Verb, "drive"},
		{"running", sent.Verb, "running"},
		{"liked", sent.Verb, "like"},
		{"faster", sent.Adjective, "fast"},
		{"fastest", sent.Satellite, "fast"},
		{"better", sent.Adjective, "good"},
		{"quickly", sent.Adverb, "quickly"},
		{"zzz", sent.Noun, "zzz"},
		// no hint: noun first, then verb
		{"rugs", sent.Unknown, "rug"},
		{"sat", sent.Unknown, "sit"},
		{"unknowable", sent.Unknown, "unknowable"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, n.Lemmatize(tt.word, tt.pos), "%s/%s", tt.word, tt.pos)
	}
}

func TestLeskBestSense(t *testing.T) {
	n := testNet(t)
	l := NewLesk(n)

	s := l.BestSense("A cat sat on the mat", "mat", sent.Noun)
	require.NotNil(t, s)
	assert.Equal(t, "mat.n.01", s.ID())

	s = l.BestSense("Put the mat under a dish or vase", "mat", sent.Noun)
	require.NotNil(t, s)
	assert.Equal(t, "mat.n.03", s.ID())

	// no overlap: highest ranked sense
	s = l.BestSense("nothing here", "cat", sent.Noun)
	require.NotNil(t, s)
	assert.Equal(t, "cat.n.01", s.ID())

	s = l.BestSense("a youth or man", "cat", sent.Unknown)
	require.NotNil(t, s)
	assert.Equal(t, "cat.n.03", s.ID())

	assert.Nil(t, l.BestSense("blue sky", "blue", sent.Adjective))
	assert.Nil(t, l.BestSense("whatever", "unicorn", sent.Noun))

	s = l.BestSense("the reply was accomplished without delay", "quick", sent.Satellite)
	require.NotNil(t, s)
	assert.Equal(t, "quick.s.01", s.ID())
}

func TestSuggestAndComplete(t *testing.T) {
	n := testNet(t)

	sug := n.Suggest("mause", 3)
	require.NotEmpty(t, sug)
	assert.Equal(t, "mouse", sug[0].Lemma)
	assert.LessOrEqual(t, len(sug), 3)
	for i := 1; i < len(sug); i++ {
		assert.GreaterOrEqual(t, sug[i-1].Score, sug[i].Score)
	}

	assert.Nil(t, n.Suggest("", 3))
	assert.Nil(t, n.Suggest("cat", 0))

	assert.Equal(t, []string{"car", "carnivore", "carpet"}, n.Complete("car", 3))
	assert.Equal(t, []string{"cat"}, n.Complete("cat", 5))
	assert.Empty(t, n.Complete("xylo", 5))
}

func TestIndexAndExceptionsRoundTrip(t *testing.T) {
	n := testNet(t)

	var synsets []Synset
	n.All(func(s *Synset) bool {
		synsets = append(synsets, *s)
		return true
	})

	rebuilt, err := New(synsets, n.Index(), n.Exceptions())
	require.NoError(t, err)

	assert.Equal(t, n.Len(), rebuilt.Len())
	assert.Equal(t, ids(n.Synsets("cat", sent.Noun)), ids(rebuilt.Synsets("cat", sent.Noun)))
	assert.Equal(t, "mouse", rebuilt.Lemmatize("mice", sent.Noun))
}

func TestConcurrentReads(t *testing.T) {
	n := testNet(t)
	l := NewLesk(n)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s := l.BestSense("A cat sat on the mat", "cat", sent.Noun)
				d := l.BestSense("A dog sat on the rug", "dog", sent.Noun)
				sim, ok := s.PathSimilarity(d)
				assert.True(t, ok)
				assert.InDelta(t, 0.2, sim, 1e-9)
			}
		}()
	}
	wg.Wait()
}
