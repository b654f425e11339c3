package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/revelaction/sentsem/batch"
)

func batchCommand(c *cli.Context, ui UI) error {
	if c.NArg() > 1 {
		return errors.Newf("batch expects at most one file, got %d arguments", c.NArg())
	}

	e, err := newEnv(c, ui)
	if err != nil {
		return err
	}
	defer e.Close()

	var in io.Reader = os.Stdin
	if name := c.Args().First(); name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrap(err, "opening pairs")
		}
		defer f.Close()
		in = f
	}

	pairs, err := batch.ReadPairs(in)
	if err != nil {
		return err
	}

	r := e.renderer(c)

	output := c.String("output")
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		defer f.Close()
		r.Out = f
		r.HasColor = false
	}

	net, err := e.loadNet(output != "")
	if err != nil {
		return err
	}

	scorer, err := e.scorer(net)
	if err != nil {
		return err
	}

	onResult := r.Result
	if output != "" {
		p := uiprogress.New()
		p.Start()
		defer p.Stop()

		bar := p.AddBar(len(pairs))
		bar.AppendCompleted()
		bar.PrependElapsed()

		onResult = func(res batch.Result) error {
			bar.Incr()
			return r.Result(res)
		}
	}

	err = batch.Run(c.Context, scorer, pairs, e.cfg.Workers, onResult)
	if err != nil {
		e.logger.Error("batch failed", zap.Int("pairs", len(pairs)), zap.Error(err))
		return err
	}

	e.logger.Info("batch done", zap.Int("pairs", len(pairs)), zap.Int("workers", e.cfg.Workers))
	return nil
}
