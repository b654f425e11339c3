package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	sent "github.com/revelaction/sentsem/sentence"
	"github.com/revelaction/sentsem/stat"
)

func statCommand(c *cli.Context, ui UI) error {
	e, err := newEnv(c, ui)
	if err != nil {
		return err
	}
	defer e.Close()

	net, err := e.loadNet(false)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(net)

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num synsets %d, num lemmas %d, num exceptions %d\n", stats.NumSynsets, stats.NumLemmas, stats.NumExceptions)
	for _, pos := range sent.Categories() {
		fmt.Fprintf(ui.Out, "  %-10s %d\n", pos, stats.SynsetsPerPos[pos])
	}
	fmt.Fprintf(ui.Out, "Roots %d, max depth %d, mean depth %.2f\n", stats.NumRoots, stats.MaxDepth, stats.DepthMean)
	if stats.PolysemyMax > 0 {
		fmt.Fprintf(ui.Out, "Most senses: %s (%d)\n", stats.PolysemyMaxLemma, stats.PolysemyMax)
	}

	return nil
}
