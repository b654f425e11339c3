package wndb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/sentsem/sentence"
	"github.com/revelaction/sentsem/storage"
	"github.com/revelaction/sentsem/wordnet"
)

const dataNoun = `  1 This software and database is being provided to you, the LICENSEE, by
  2 Princeton University under the following license.
00001740 03 n 01 entity 0 000 | that which is perceived or known or inferred to have its own distinct existence
00015388 03 n 01 animal 0 001 @ 00001740 n 0000 | a living organism characterized by voluntary movement
02121620 05 n 02 cat 0 true_cat 0 001 @ 00015388 n 0000 | feline mammal usually having thick soft fur and no ability to roar: "cats have excellent night vision"; "the cat sat"
02084071 05 n 01 dog 0 001 @ 00015388 n 0000 | a member of the genus Canis
09000000 15 n 01 Paris 0 001 @i 00001740 n 0000 | the capital of France
`

const dataVerb = `01984902 35 v 01 sit 0 001 $ 01985029 v 0000 01 + 02 00 | be seated
`

const dataAdj = `00001740 00 a 01 able 0 001 ! 00002098 a 0101 | (usually followed by 'to') having the necessary means
00009000 00 s 02 quick 0 speedy(a) 0 001 & 00001740 a 0000 | accomplished rapidly; "a quick reply"
`

const indexNoun = `  1 license header
cat n 1 1 @ 1 0 02121620
dog n 1 1 @ 1 0 02084071
`

const nounExc = `mice mouse
oxen ox
`

func testDict(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range map[string]string{
		"data.noun":  dataNoun,
		"data.verb":  dataVerb,
		"data.adj":   dataAdj,
		"index.noun": indexNoun,
		"noun.exc":   nounExc,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	return dir
}

func TestParseData(t *testing.T) {
	s, err := ParseData(`02121620 05 n 02 cat 0 true_cat 0 001 @ 00015388 n 0000 | feline mammal: "cats purr"; "the cat sat"`)
	require.NoError(t, err)

	assert.Equal(t, "02121620-n", s.ID)
	assert.Equal(t, sent.Noun, s.Pos)
	assert.Equal(t, []string{"cat", "true_cat"}, s.Lemmas)
	assert.Equal(t, []string{"00015388-n"}, s.Hypernyms)
	assert.Equal(t, "feline mammal:", s.Gloss)
	assert.Equal(t, []string{"cats purr", "the cat sat"}, s.Examples)

	s, err = ParseData(`00009000 00 s 02 quick 0 speedy(a) 0 001 & 00001740 a 0000 | accomplished rapidly`)
	require.NoError(t, err)
	assert.Equal(t, "00009000-a", s.ID)
	assert.Equal(t, sent.Satellite, s.Pos)
	assert.Equal(t, []string{"quick", "speedy"}, s.Lemmas)
	assert.Empty(t, s.Hypernyms)

	_, err = ParseData(`00009000 00 x 01 q 0 000 | nope`)
	assert.Error(t, err)

	_, err = ParseData(`00009000 00 n 03 q 0 | truncated`)
	assert.Error(t, err)
}

func TestParseIndex(t *testing.T) {
	e, err := ParseIndex(`cat n 2 3 @ ~ + 2 1 02121620 10153414`)
	require.NoError(t, err)
	assert.Equal(t, wordnet.IndexEntry{Lemma: "cat", Pos: sent.Noun, Synsets: []string{"02121620-n", "10153414-n"}}, e)

	_, err = ParseIndex(`cat n 3 0 3 1 02121620`)
	assert.Error(t, err)
}

func TestLoadNet(t *testing.T) {
	dir := testDict(t)
	assert.True(t, IsDict(dir))
	assert.False(t, IsDict(t.TempDir()))

	net, err := storage.LoadNet(NewReader(dir), nil)
	require.NoError(t, err)
	assert.Equal(t, 8, net.Len())

	sim, ok := net.PathSimilarity("02121620-n", "02084071-n")
	assert.True(t, ok)
	assert.InDelta(t, 1.0/3, sim, 1e-9)

	sim, ok = net.PathSimilarity("09000000-n", "00015388-n")
	assert.True(t, ok)
	assert.InDelta(t, 1.0/3, sim, 1e-9)

	assert.Equal(t, []string{"mouse"}, net.Exceptions()[0].Bases)

	assert.Len(t, net.Synsets("quick", sent.Satellite), 1)
	assert.Empty(t, net.Synsets("quick", sent.Adjective))
	assert.Len(t, net.Synsets("paris", sent.Noun), 1)
}

func TestReadOnly(t *testing.T) {
	err := NewReader(testDict(t)).Write(nil, nil, nil)
	assert.ErrorIs(t, err, storage.ErrReadOnly)
}

func TestMissingDict(t *testing.T) {
	_, err := storage.LoadNet(NewReader(t.TempDir()), nil)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestErrorLine(t *testing.T) {
	dir := testDict(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.adv"), []byte("garbage\n"), 0644))

	_, err := storage.LoadNet(NewReader(dir), nil)
	assert.ErrorContains(t, err, "data.adv:1")
}
