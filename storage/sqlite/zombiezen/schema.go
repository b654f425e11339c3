package zombiezen

import (
	"context"
	_ "embed"

	"github.com/cockroachdb/errors"
	"zombiezen.com/go/sqlite/sqlitex"
)

//go:embed sql/lexicon.sql
var lexiconSchema string

// CreateSchema creates the lexicon tables when missing.
func CreateSchema(pool *sqlitex.Pool) error {
	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, lexiconSchema, nil); err != nil {
		return errors.Wrap(err, "failed to create lexicon schema")
	}

	return nil
}
