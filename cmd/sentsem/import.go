package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentsem/storage/sqlite/zombiezen"
)

func importCommand(c *cli.Context, ui UI) error {
	e, err := newEnv(c, ui)
	if err != nil {
		return err
	}
	defer e.Close()

	from, to := c.String("from"), c.String("to")

	src, err := NewLexiconRepository(e.pool, from)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Reading lexicon from %s...\n", from)
	net, err := e.load(src, true)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(to)
	if err != nil {
		return errors.Wrapf(err, "opening %s", to)
	}
	defer pool.Close()

	dst := zombiezen.NewLexiconStore(pool)
	if err := write(net, dst); err != nil {
		return errors.Wrapf(err, "writing %s", to)
	}

	fmt.Fprintf(ui.Out, "Successfully imported %d synsets from %s to %s\n", net.Len(), from, to)
	return nil
}
