package filesystem

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/revelaction/sentsem/storage"
	"github.com/revelaction/sentsem/wordnet"
)

// DefaultName is the file written when the store path is a directory.
const DefaultName = "lexicon.json"

// LexiconStore reads lexicons from a JSON file or from a directory of JSON
// files merged in name order.
type LexiconStore struct {
	path string

	// In-memory cache
	lexicon *storage.Lexicon
}

var _ storage.LexiconRepository = (*LexiconStore)(nil)

// NewLexiconStore creates a filesystem lexicon store. Nothing is read
// until the first read operation.
func NewLexiconStore(path string) *LexiconStore {
	return &LexiconStore{path: path}
}

func (s *LexiconStore) load() (*storage.Lexicon, error) {
	if s.lexicon != nil {
		return s.lexicon, nil
	}

	files, err := s.files()
	if err != nil {
		return nil, err
	}

	lx := &storage.Lexicon{}
	for _, f := range files {
		part, err := ReadLexicon(f)
		if err != nil {
			return nil, err
		}

		lx.Synsets = append(lx.Synsets, part.Synsets...)
		lx.Index = append(lx.Index, part.Index...)
		lx.Exceptions = append(lx.Exceptions, part.Exceptions...)
	}

	s.lexicon = lx
	return lx, nil
}

func (s *LexiconStore) files() ([]string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(storage.ErrNotFound, "%s", s.path)
		}
		return nil, err
	}

	if !info.IsDir() {
		return []string{s.path}, nil
	}

	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}

		files = append(files, filepath.Join(s.path, e.Name()))
	}

	if len(files) == 0 {
		return nil, errors.Wrapf(storage.ErrNotFound, "no json files in %s", s.path)
	}

	sort.Strings(files)
	return files, nil
}

func (s *LexiconStore) ReadAll(onSynset func(wordnet.Synset) error) error {
	lx, err := s.load()
	if err != nil {
		return err
	}

	for _, syn := range lx.Synsets {
		if err := onSynset(syn); err != nil {
			return err
		}
	}

	return nil
}

func (s *LexiconStore) Index(onEntry func(wordnet.IndexEntry) error) error {
	lx, err := s.load()
	if err != nil {
		return err
	}

	for _, e := range lx.Index {
		if err := onEntry(e); err != nil {
			return err
		}
	}

	return nil
}

func (s *LexiconStore) Exceptions(onException func(wordnet.Exception) error) error {
	lx, err := s.load()
	if err != nil {
		return err
	}

	for _, e := range lx.Exceptions {
		if err := onException(e); err != nil {
			return err
		}
	}

	return nil
}

// Write replaces the lexicon with one indented JSON file. A directory path
// gets a DefaultName file.
func (s *LexiconStore) Write(synsets []wordnet.Synset, index []wordnet.IndexEntry, exceptions []wordnet.Exception) error {
	target := s.path
	if info, err := os.Stat(s.path); err == nil && info.IsDir() {
		target = filepath.Join(s.path, DefaultName)
	}

	lx := storage.Lexicon{Synsets: synsets, Index: index, Exceptions: exceptions}
	data, err := json.MarshalIndent(lx, "", "\t")
	if err != nil {
		return err
	}

	if err := os.WriteFile(target, append(data, '\n'), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", target)
	}

	s.lexicon = &lx
	return nil
}

// ReadLexicon reads a lexicon JSON file.
func ReadLexicon(path string) (storage.Lexicon, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return storage.Lexicon{}, errors.Wrap(err, "IO error")
	}

	var lx storage.Lexicon
	if err := json.Unmarshal(f, &lx); err != nil {
		return storage.Lexicon{}, errors.Wrapf(err, "JSON decoding error in %s", path)
	}

	return lx, nil
}
