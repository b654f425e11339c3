package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/sentsem/sentence"
	"github.com/revelaction/sentsem/storage"
	"github.com/revelaction/sentsem/wordnet"
)

const fixture = "../../wordnet/testdata/lexicon.json"

func TestLoadNetFromFile(t *testing.T) {
	var stages []string
	net, err := storage.LoadNet(NewLexiconStore(fixture), func(current, total int, stage string) {
		assert.Equal(t, 3, total)
		stages = append(stages, stage)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"synsets", "index", "exceptions"}, stages)
	assert.Equal(t, 53, net.Len())
	assert.Equal(t, "mouse", net.Lemmatize("mice", sent.Noun))
}

func TestDirectoryMerge(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "b.json"), `{"synsets":[{"id":"cat.n.01","pos":"n","lemmas":["cat"],"hypernyms":["animal.n.01"]}]}`)
	writeFile(t, filepath.Join(dir, "a.json"), `{"synsets":[{"id":"animal.n.01","pos":"n","lemmas":["animal"]}],"exceptions":[{"pos":"n","inflected":"kine","bases":["cow"]}]}`)
	writeFile(t, filepath.Join(dir, "notes.txt"), `ignored`)

	s := NewLexiconStore(dir)

	var ids []string
	require.NoError(t, s.ReadAll(func(syn wordnet.Synset) error {
		ids = append(ids, syn.ID)
		return nil
	}))
	assert.Equal(t, []string{"animal.n.01", "cat.n.01"}, ids)

	net, err := storage.LoadNet(s, nil)
	require.NoError(t, err)
	sim, ok := net.PathSimilarity("cat.n.01", "animal.n.01")
	assert.True(t, ok)
	assert.InDelta(t, 0.5, sim, 1e-9)
}

func TestWriteRoundTrip(t *testing.T) {
	lx, err := storage.Copy(NewLexiconStore(fixture), NewLexiconStore(t.TempDir()), nil)
	require.NoError(t, err)
	assert.Len(t, lx.Synsets, 53)

	out := filepath.Join(t.TempDir(), "out.json")
	_, err = storage.Copy(NewLexiconStore(fixture), NewLexiconStore(out), nil)
	require.NoError(t, err)

	back, err := ReadLexicon(out)
	require.NoError(t, err)
	assert.Equal(t, lx.Synsets, back.Synsets)
	assert.Equal(t, lx.Index, back.Index)
	assert.Equal(t, lx.Exceptions, back.Exceptions)
}

func TestWriteDirectory(t *testing.T) {
	dir := t.TempDir()
	s := NewLexiconStore(dir)

	require.NoError(t, s.Write([]wordnet.Synset{{ID: "a.n.01", Pos: sent.Noun, Lemmas: []string{"a"}}}, nil, nil))
	_, err := os.Stat(filepath.Join(dir, DefaultName))
	assert.NoError(t, err)
}

func TestNotFound(t *testing.T) {
	err := NewLexiconStore(filepath.Join(t.TempDir(), "missing.json")).ReadAll(func(wordnet.Synset) error { return nil })
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	err = NewLexiconStore(t.TempDir()).Index(func(wordnet.IndexEntry) error { return nil })
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestCallbackError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := NewLexiconStore(fixture).ReadAll(func(wordnet.Synset) error {
		calls++
		return stop
	})
	assert.True(t, errors.Is(err, stop))
	assert.Equal(t, 1, calls)
}

func TestInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	writeFile(t, path, `{"synsets": [`)

	_, err := storage.LoadNet(NewLexiconStore(path), nil)
	assert.ErrorContains(t, err, "JSON decoding error")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
