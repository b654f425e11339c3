package zombiezen

import (
	"fmt"
	"runtime"

	"github.com/cockroachdb/errors"
	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool creates a new Zombiezen SQLite connection pool with WAL mode
// enabled and the lexicon schema in place.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	initString := fmt.Sprintf("file:%s", dbPath)

	// default flags: sqlite.OpenReadWrite | sqlite.OpenCreate | sqlite.OpenWAL | sqlite.OpenURI
	pool, err := sqlitex.NewPool(initString, sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create zombiezen pool at %s", dbPath)
	}

	if err := CreateSchema(pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
