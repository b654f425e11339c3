// Package batch scores many sentence pairs concurrently.
package batch

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/revelaction/sentsem/similarity"
)

// Scorer compares two sentences. It must be safe for concurrent use.
type Scorer interface {
	Compare(a, b string) (similarity.Comparison, error)
}

// Pair is one input line.
type Pair struct {
	// Line is the 1-based line number in the input
	Line int    `json:"line"`
	A    string `json:"a"`
	B    string `json:"b"`
}

// Result is the score of a Pair.
type Result struct {
	Pair
	Score float64 `json:"score"`

	// Empty is set when both sentences have no token
	Empty bool `json:"empty"`
}

// ReadPairs parses tab separated sentence pairs, one per line. Blank lines
// and lines starting with # are skipped.
func ReadPairs(r io.Reader) ([]Pair, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var pairs []Pair
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, errors.Newf("line %d: expected 2 tab separated sentences, got %d fields", n, len(fields))
		}

		pairs = append(pairs, Pair{Line: n, A: fields[0], B: fields[1]})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading pairs")
	}

	return pairs, nil
}

// Run scores pairs on at most workers goroutines and calls onResult for
// each result in input order. workers <= 0 uses one worker per CPU.
//
// Cancelling ctx stops scheduling new pairs; Run then returns the context
// error. An error returned by onResult stops the run and is returned.
func Run(ctx context.Context, s Scorer, pairs []Pair, workers int, onResult func(Result) error) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make([]Result, len(pairs))
	done := make([]chan struct{}, len(pairs))
	for i := range done {
		done[i] = make(chan struct{})
	}

	scheduled := make(chan struct{})
	go func() {
		defer close(scheduled)

		for i := range pairs {
			if gctx.Err() != nil {
				return
			}

			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}

				c, err := s.Compare(pairs[i].A, pairs[i].B)
				if err != nil && !errors.Is(err, similarity.ErrEmpty) {
					return errors.Wrapf(err, "line %d", pairs[i].Line)
				}

				results[i] = Result{Pair: pairs[i], Score: c.Score, Empty: c.Empty}
				close(done[i])
				return nil
			})
		}
	}()

	var emitErr error
emit:
	for i := range pairs {
		select {
		case <-done[i]:
			if err := onResult(results[i]); err != nil {
				emitErr = err
				cancel()
				break emit
			}
		case <-gctx.Done():
			break emit
		}
	}

	<-scheduled
	err := g.Wait()

	switch {
	case emitErr != nil:
		return emitErr
	case err != nil:
		return err
	}

	return ctx.Err()
}
