package storage

import (
	"github.com/cockroachdb/errors"

	"github.com/revelaction/sentsem/wordnet"
)

var (
	// ErrReadOnly is returned by writers of read-only backends.
	ErrReadOnly = errors.New("read-only storage")

	// ErrNotFound is returned when a lexicon source does not exist.
	ErrNotFound = errors.New("lexicon not found")
)

// LexiconReader defines read operations for lexicon storage
type LexiconReader interface {
	// ReadAll calls onSynset for each synset in storage order. An error
	// returned by onSynset stops the iteration and is returned.
	ReadAll(onSynset func(wordnet.Synset) error) error

	// Index calls onEntry for each lemma index entry. Backends without an
	// index return nil without calling it; the index is then derived from
	// synset order.
	Index(onEntry func(wordnet.IndexEntry) error) error

	// Exceptions calls onException for each irregular inflected form.
	Exceptions(onException func(wordnet.Exception) error) error
}

// LexiconWriter defines write operations for lexicon storage
type LexiconWriter interface {
	// Write replaces the stored lexicon
	Write(synsets []wordnet.Synset, index []wordnet.IndexEntry, exceptions []wordnet.Exception) error
}

// LexiconRepository combines read and write operations
type LexiconRepository interface {
	LexiconReader
	LexiconWriter
}

// Progress is called after each loading stage.
type Progress func(current, total int, stage string)

// Lexicon is the full content of a lexicon source.
type Lexicon struct {
	Synsets    []wordnet.Synset     `json:"synsets"`
	Index      []wordnet.IndexEntry `json:"index,omitempty"`
	Exceptions []wordnet.Exception  `json:"exceptions,omitempty"`
}

// Read loads every synset, index entry and exception of r.
func Read(r LexiconReader, cb Progress) (Lexicon, error) {
	var lx Lexicon

	stages := []struct {
		name string
		run  func() error
	}{
		{"synsets", func() error {
			return r.ReadAll(func(s wordnet.Synset) error {
				lx.Synsets = append(lx.Synsets, s)
				return nil
			})
		}},
		{"index", func() error {
			return r.Index(func(e wordnet.IndexEntry) error {
				lx.Index = append(lx.Index, e)
				return nil
			})
		}},
		{"exceptions", func() error {
			return r.Exceptions(func(e wordnet.Exception) error {
				lx.Exceptions = append(lx.Exceptions, e)
				return nil
			})
		}},
	}

	for i, st := range stages {
		if err := st.run(); err != nil {
			return Lexicon{}, errors.Wrapf(err, "reading %s", st.name)
		}

		if cb != nil {
			cb(i+1, len(stages), st.name)
		}
	}

	return lx, nil
}

// LoadNet reads r and builds the lexical hierarchy.
func LoadNet(r LexiconReader, cb Progress) (*wordnet.Net, error) {
	lx, err := Read(r, cb)
	if err != nil {
		return nil, err
	}

	if len(lx.Synsets) == 0 {
		return nil, errors.Wrap(ErrNotFound, "no synsets")
	}

	return wordnet.New(lx.Synsets, lx.Index, lx.Exceptions)
}

// Copy reads r and writes its content to w.
func Copy(r LexiconReader, w LexiconWriter, cb Progress) (Lexicon, error) {
	lx, err := Read(r, cb)
	if err != nil {
		return Lexicon{}, err
	}

	if err := w.Write(lx.Synsets, lx.Index, lx.Exceptions); err != nil {
		return Lexicon{}, errors.Wrap(err, "writing lexicon")
	}

	return lx, nil
}
