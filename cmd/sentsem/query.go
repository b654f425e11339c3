package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentsem/query"
)

// Query command
func queryCommand(c *cli.Context, ui UI) error {
	e, err := newEnv(c, ui)
	if err != nil {
		return err
	}
	defer e.Close()

	net, err := e.loadNet(true)
	if err != nil {
		return err
	}

	scorer, err := e.scorer(net)
	if err != nil {
		return err
	}

	// now present the REPL
	h := query.NewHandler(scorer, net, e.renderer(c))
	return h.Run()
}
