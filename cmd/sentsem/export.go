package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentsem/storage"
	"github.com/revelaction/sentsem/storage/filesystem"
	"github.com/revelaction/sentsem/wordnet"
)

func exportCommand(c *cli.Context, ui UI) error {
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

	if err := write(net, filesystem.NewLexiconStore(to)); err != nil {
		return errors.Wrapf(err, "writing %s", to)
	}

	fmt.Fprintf(ui.Out, "Successfully exported %d synsets from %s to %s\n", net.Len(), from, to)
	return nil
}

// write stores the validated content of net, with normalized lemmas and the
// merged index.
func write(net *wordnet.Net, w storage.LexiconWriter) error {
	synsets := make([]wordnet.Synset, 0, net.Len())
	net.All(func(s *wordnet.Synset) bool {
		synsets = append(synsets, *s)
		return true
	})

	return w.Write(synsets, net.Index(), net.Exceptions())
}
