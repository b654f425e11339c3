package zombiezen

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	sent "github.com/revelaction/sentsem/sentence"
	"github.com/revelaction/sentsem/storage"
	"github.com/revelaction/sentsem/wordnet"
)

type LexiconStore struct {
	pool *sqlitex.Pool
}

var _ storage.LexiconRepository = (*LexiconStore)(nil)

func NewLexiconStore(pool *sqlitex.Pool) *LexiconStore {
	return &LexiconStore{pool: pool}
}

func (h *LexiconStore) ReadAll(onSynset func(wordnet.Synset) error) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	return sqlitex.Execute(conn, "SELECT data FROM synsets ORDER BY rowid", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var s wordnet.Synset
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &s); err != nil {
				return err
			}
			return onSynset(s)
		},
	})
}

func (h *LexiconStore) Index(onEntry func(wordnet.IndexEntry) error) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// rows of one entry are consecutive
	var cur *wordnet.IndexEntry
	err = sqlitex.Execute(conn, "SELECT lemma, pos, synset_id FROM lemma_index ORDER BY pos, lemma, rank", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			lemma, pos := stmt.ColumnText(0), sent.Category(stmt.ColumnText(1))
			if cur != nil && (cur.Lemma != lemma || cur.Pos != pos) {
				if err := onEntry(*cur); err != nil {
					return err
				}
				cur = nil
			}

			if cur == nil {
				cur = &wordnet.IndexEntry{Lemma: lemma, Pos: pos}
			}
			cur.Synsets = append(cur.Synsets, stmt.ColumnText(2))
			return nil
		},
	})
	if err != nil {
		return err
	}

	if cur != nil {
		return onEntry(*cur)
	}

	return nil
}

func (h *LexiconStore) Exceptions(onException func(wordnet.Exception) error) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	var cur *wordnet.Exception
	err = sqlitex.Execute(conn, "SELECT pos, inflected, base FROM exceptions ORDER BY pos, inflected, rank", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			pos, inflected := sent.Category(stmt.ColumnText(0)), stmt.ColumnText(1)
			if cur != nil && (cur.Inflected != inflected || cur.Pos != pos) {
				if err := onException(*cur); err != nil {
					return err
				}
				cur = nil
			}

			if cur == nil {
				cur = &wordnet.Exception{Pos: pos, Inflected: inflected}
			}
			cur.Bases = append(cur.Bases, stmt.ColumnText(2))
			return nil
		},
	})
	if err != nil {
		return err
	}

	if cur != nil {
		return onException(*cur)
	}

	return nil
}

// Write replaces the stored lexicon inside one savepoint.
func (h *LexiconStore) Write(synsets []wordnet.Synset, index []wordnet.IndexEntry, exceptions []wordnet.Exception) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	for _, table := range []string{"synsets", "lemma_index", "exceptions"} {
		if err = sqlitex.Execute(conn, "DELETE FROM "+table, nil); err != nil {
			return errors.Wrapf(err, "failed to clear %s", table)
		}
	}

	for _, s := range synsets {
		data, marshalErr := json.Marshal(s)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO synsets (id, pos, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []any{s.ID, string(s.Pos), string(data)},
		})
		if err != nil {
			return errors.Wrapf(err, "failed to insert synset %s", s.ID)
		}
	}

	for _, e := range index {
		for rank, id := range e.Synsets {
			err = sqlitex.Execute(conn, "INSERT OR IGNORE INTO lemma_index (lemma, pos, rank, synset_id) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
				Args: []any{e.Lemma, string(e.Pos), rank, id},
			})
			if err != nil {
				return errors.Wrapf(err, "failed to insert index entry %s", e.Lemma)
			}
		}
	}

	for _, e := range exceptions {
		for rank, base := range e.Bases {
			err = sqlitex.Execute(conn, "INSERT OR IGNORE INTO exceptions (pos, inflected, rank, base) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
				Args: []any{string(e.Pos), e.Inflected, rank, base},
			})
			if err != nil {
				return errors.Wrapf(err, "failed to insert exception %s", e.Inflected)
			}
		}
	}

	return nil
}

// Count returns the number of stored synsets.
func (h *LexiconStore) Count() (int, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer h.pool.Put(conn)

	n := 0
	err = sqlitex.Execute(conn, "SELECT count(*) FROM synsets", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			n = stmt.ColumnInt(0)
			return nil
		},
	})

	return n, err
}
