// Package wndb reads a Princeton WordNet database directory (the dict/
// directory of a WordNet distribution).
//
// Synset ids are the byte offset of the synset in its data file and the
// file category: "02121620-n". Satellite synsets live in data.adj and get
// the "a" suffix; their Pos is still Satellite.
package wndb

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	sent "github.com/revelaction/sentsem/sentence"
	"github.com/revelaction/sentsem/storage"
	"github.com/revelaction/sentsem/wordnet"
)

var files = []struct {
	name string
	pos  sent.Category
}{
	{"noun", sent.Noun},
	{"verb", sent.Verb},
	{"adj", sent.Adjective},
	{"adv", sent.Adverb},
}

// maximum line length of the database files
const maxLine = 1 << 20

// Reader is a read-only lexicon backend over a WordNet dict directory.
type Reader struct {
	dir string
}

var _ storage.LexiconRepository = (*Reader)(nil)

// NewReader returns a Reader of dir.
func NewReader(dir string) *Reader {
	return &Reader{dir: dir}
}

// IsDict reports whether dir looks like a WordNet dict directory.
func IsDict(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "data.noun"))
	return err == nil && !info.IsDir()
}

// ID returns the synset id of a data file offset.
func ID(offset string, pos sent.Category) string {
	if pos == sent.Satellite {
		pos = sent.Adjective
	}

	return offset + "-" + string(pos)
}

func (r *Reader) ReadAll(onSynset func(wordnet.Synset) error) error {
	if !IsDict(r.dir) {
		return errors.Wrapf(storage.ErrNotFound, "no data.noun in %s", r.dir)
	}

	for _, f := range files {
		err := r.lines("data."+f.name, func(line string) error {
			s, err := ParseData(line)
			if err != nil {
				return err
			}
			return onSynset(s)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *Reader) Index(onEntry func(wordnet.IndexEntry) error) error {
	for _, f := range files {
		err := r.lines("index."+f.name, func(line string) error {
			e, err := ParseIndex(line)
			if err != nil {
				return err
			}
			return onEntry(e)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *Reader) Exceptions(onException func(wordnet.Exception) error) error {
	for _, f := range files {
		err := r.lines(f.name+".exc", func(line string) error {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return errors.Newf("malformed exception line %q", line)
			}
			return onException(wordnet.Exception{Pos: f.pos, Inflected: fields[0], Bases: fields[1:]})
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *Reader) Write([]wordnet.Synset, []wordnet.IndexEntry, []wordnet.Exception) error {
	return storage.ErrReadOnly
}

// lines calls fn for each non empty line of name that is not part of the
// license header. A missing file has no lines.
func (r *Reader) lines(name string, fn func(string) error) error {
	path := filepath.Join(r.dir, name)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, " ") {
			continue
		}

		if err := fn(line); err != nil {
			return errors.Wrapf(err, "%s:%d", name, n)
		}
	}

	return scanner.Err()
}

// ParseData parses one data file line:
//
//	offset lex_filenum ss_type w_cnt word lex_id [word lex_id...] p_cnt [ptr...] [frames...] | gloss
func ParseData(line string) (wordnet.Synset, error) {
	head, gloss, _ := strings.Cut(line, "|")
	fields := strings.Fields(head)
	if len(fields) < 4 {
		return wordnet.Synset{}, errors.Newf("malformed data line")
	}

	pos, ok := sent.ParseCategory(fields[2])
	if !ok || pos == sent.Unknown {
		return wordnet.Synset{}, errors.Newf("unknown synset type %q", fields[2])
	}

	s := wordnet.Synset{ID: ID(fields[0], pos), Pos: pos}

	wcnt, err := strconv.ParseInt(fields[3], 16, 0)
	if err != nil {
		return wordnet.Synset{}, errors.Wrap(err, "word count")
	}

	i := 4
	for w := 0; w < int(wcnt); w++ {
		if i+1 >= len(fields) {
			return wordnet.Synset{}, errors.Newf("truncated word list")
		}

		s.Lemmas = append(s.Lemmas, stripMarker(fields[i]))
		i += 2
	}

	if i >= len(fields) {
		return wordnet.Synset{}, errors.Newf("missing pointer count")
	}

	pcnt, err := strconv.Atoi(fields[i])
	if err != nil {
		return wordnet.Synset{}, errors.Wrap(err, "pointer count")
	}
	i++

	for p := 0; p < pcnt; p++ {
		if i+3 >= len(fields) {
			return wordnet.Synset{}, errors.Newf("truncated pointer list")
		}

		symbol, offset := fields[i], fields[i+1]
		target, ok := sent.ParseCategory(fields[i+2])
		if !ok || target == sent.Unknown {
			return wordnet.Synset{}, errors.Newf("unknown pointer category %q", fields[i+2])
		}

		switch symbol {
		case "@":
			s.Hypernyms = append(s.Hypernyms, ID(offset, target))
		case "@i":
			s.InstanceHypernyms = append(s.InstanceHypernyms, ID(offset, target))
		}
		i += 4
	}

	s.Gloss, s.Examples = splitGloss(gloss)
	return s, nil
}

// adjective markers: (a), (p), (ip)
func stripMarker(word string) string {
	if i := strings.IndexByte(word, '('); i > 0 && strings.HasSuffix(word, ")") {
		return word[:i]
	}

	return word
}

// splitGloss separates the definitions of a gloss from its quoted examples.
func splitGloss(gloss string) (string, []string) {
	var defs, examples []string
	for _, part := range strings.Split(gloss, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		q := strings.IndexByte(part, '"')
		if q < 0 {
			defs = append(defs, part)
			continue
		}

		if def := strings.TrimSpace(part[:q]); def != "" {
			defs = append(defs, def)
		}
		examples = append(examples, strings.Trim(part[q:], `"`))
	}

	return strings.Join(defs, "; "), examples
}

// ParseIndex parses one index file line:
//
//	lemma pos synset_cnt p_cnt [ptr_symbol...] sense_cnt tagsense_cnt synset_offset [synset_offset...]
func ParseIndex(line string) (wordnet.IndexEntry, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return wordnet.IndexEntry{}, errors.Newf("malformed index line")
	}

	pos, ok := sent.ParseCategory(fields[1])
	if !ok || pos == sent.Unknown {
		return wordnet.IndexEntry{}, errors.Newf("unknown index category %q", fields[1])
	}

	count, err := strconv.Atoi(fields[2])
	if err != nil {
		return wordnet.IndexEntry{}, errors.Wrap(err, "synset count")
	}

	pcnt, err := strconv.Atoi(fields[3])
	if err != nil {
		return wordnet.IndexEntry{}, errors.Wrap(err, "pointer count")
	}

	// skip pointer symbols, sense_cnt and tagsense_cnt
	start := 4 + pcnt + 2
	if start+count > len(fields) {
		return wordnet.IndexEntry{}, errors.Newf("truncated offset list")
	}

	e := wordnet.IndexEntry{Lemma: fields[0], Pos: pos}
	for _, off := range fields[start : start+count] {
		e.Synsets = append(e.Synsets, ID(off, pos))
	}

	return e, nil
}
