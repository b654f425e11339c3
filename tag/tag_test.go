package tag

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/jdkato/prose/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	sent "github.com/revelaction/sentsem/sentence"
	"github.com/revelaction/sentsem/wordnet"
)

func testNet(t *testing.T) *wordnet.Net {
	t.Helper()

	data, err := os.ReadFile("../wordnet/testdata/lexicon.json")
	require.NoError(t, err)

	var f struct {
		Synsets    []wordnet.Synset     `json:"synsets"`
		Index      []wordnet.IndexEntry `json:"index"`
		Exceptions []wordnet.Exception  `json:"exceptions"`
	}
	require.NoError(t, json.Unmarshal(data, &f))

	n, err := wordnet.New(f.Synsets, f.Index, f.Exceptions)
	require.NoError(t, err)
	return n
}

func TestCategory(t *testing.T) {
	tests := map[string]sent.Category{
		"NN":   sent.Noun,
		"NNS":  sent.Noun,
		"NNP":  sent.Noun,
		"MD":   sent.Noun,
		"JJ":   sent.Adjective,
		"JJR":  sent.Adjective,
		"VB":   sent.Verb,
		"VBD":  sent.Verb,
		"RB":   sent.Adverb,
		"RBS":  sent.Adverb,
		"DT":   sent.Unknown,
		"IN":   sent.Unknown,
		"PRP":  sent.Unknown,
		"":     sent.Unknown,
		"R":    sent.Unknown,
		"CD":   sent.Unknown,
		"WRB":  sent.Unknown,
		"NNPS": sent.Noun,
	}

	for raw, want := range tests {
		assert.Equal(t, want, Category(raw), raw)
	}
}

func TestLexical(t *testing.T) {
	l := NewLexical(testNet(t))

	got := l.Tag([]string{"cat", "sat", "mat", "fast", "blue", "like", "quick", "quickly", "42", "zzz", "mice"})
	assert.Equal(t, []string{"NN", "VB", "NN", "JJ", "NN", "VB", "JJ", "RB", "CD", "FW", "NN"}, got)

	assert.Empty(t, l.Tag(nil))
}

type upperLemmatizer struct {
	calls []sent.Category
}

func (u *upperLemmatizer) Lemmatize(word string, pos sent.Category) string {
	u.calls = append(u.calls, pos)
	return strings.ToUpper(word)
}

type shortTagger struct{}

func (shortTagger) Tag(tokens []string) []string {
	return []string{"VBD"}
}

func TestAdapter(t *testing.T) {
	net := testNet(t)
	a := NewAdapter(NewLexical(net), net)

	tokens := []sent.Token{{Text: "cat", Index: 0}, {Text: "sat", Index: 1}, {Text: "mat", Index: 2}}
	got := a.TagAndLemmatize(tokens)

	require.Len(t, got, 3)
	assert.Equal(t, sent.Tagged{Text: "cat", Tag: "NN", Lemma: "cat", Category: sent.Noun}, got[0])
	assert.Equal(t, sent.Tagged{Text: "sat", Tag: "VB", Lemma: "sit", Category: sent.Verb}, got[1])
	assert.Equal(t, "mat", got[2].Lemma)

	assert.Empty(t, a.TagAndLemmatize(nil))
}

func TestAdapterMissingTags(t *testing.T) {
	lem := &upperLemmatizer{}
	a := NewAdapter(shortTagger{}, lem)

	got := a.TagAndLemmatize([]sent.Token{{Text: "ran"}, {Text: "away"}})
	require.Len(t, got, 2)

	assert.Equal(t, sent.Verb, got[0].Category)
	assert.Equal(t, "RAN", got[0].Lemma)
	assert.Equal(t, sent.Unknown, got[1].Category)
	assert.Equal(t, "", got[1].Tag)
	assert.Equal(t, []sent.Category{sent.Verb, sent.Unknown}, lem.calls)
}

func TestAlign(t *testing.T) {
	tokens := []string{"dont", "cats", "run"}
	tagged := []prose.Token{
		{Text: "do", Tag: "VBP"},
		{Text: "nt", Tag: "RB"},
		{Text: "cats", Tag: "NNS"},
		{Text: "run", Tag: "VBP"},
	}

	got := align(tokens, tagged, []string{"NN", "NN", "NN"})
	assert.Equal(t, []string{"VBP", "NNS", "VBP"}, got)

	got = align([]string{"alpha", "beta"}, []prose.Token{{Text: "x", Tag: "SYM"}}, []string{"NN", "NN"})
	assert.Equal(t, []string{"NN", "NN"}, got)
}

func TestProse(t *testing.T) {
	p, err := NewProse(nil)
	require.NoError(t, err)
	require.NotNil(t, p.model)

	tokens := []string{"cat", "sat", "mat"}
	got := p.Tag(tokens)
	require.Len(t, got, len(tokens))
	for _, tg := range got {
		assert.NotEmpty(t, tg)
	}

	assert.Empty(t, p.Tag([]string{}))
}

func TestProseSharesModel(t *testing.T) {
	p, err := NewProse(zap.NewNop())
	require.NoError(t, err)

	model := p.model
	first := p.Tag([]string{"dog", "run", "fast"})
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, p.Tag([]string{"dog", "run", "fast"}))
	}
	assert.Same(t, model, p.model)
}
