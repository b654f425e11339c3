package main

import (
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentsem/similarity"
)

func explainCommand(c *cli.Context, ui UI) error {
	a, b, err := sentences(c)
	if err != nil {
		return err
	}

	e, err := newEnv(c, ui)
	if err != nil {
		return err
	}
	defer e.Close()

	net, err := e.loadNet(false)
	if err != nil {
		return err
	}

	scorer, err := e.scorer(net)
	if err != nil {
		return err
	}

	cmp, err := scorer.Compare(a, b)
	if err != nil && !errors.Is(err, similarity.ErrEmpty) {
		return err
	}

	return e.renderer(c).Explain(cmp, net)
}
