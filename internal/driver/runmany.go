/*
File    : vela/internal/driver/runmany.go

RunMany fans a batch of files out across a bounded pool of concurrent
Pipeline runs, grounded on Tangerg-lynx's use of
golang.org/x/sync/errgroup for its own batch fan-out. Each Pipeline
instance here is freshly constructed per file and holds no state
shared across goroutines, so each file's pipeline run is fully
independent of every other; errgroup only bounds concurrency and joins
completion, it never lets one file's outcome leak into another's.
*/
package driver

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many files RunMany processes at once
// when the caller does not override it.
const DefaultConcurrency = 8

// RunMany runs the lex/parse/analyze pipeline over every path in
// paths, at most concurrency at a time, and returns one Result per
// path in the same order paths was given (not completion order).
// A file that cannot be read still contributes a Result carrying its
// read error in Err.
func RunMany(paths []string, opts *Pipeline, concurrency int) []Result {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if opts == nil {
		opts = NewPipeline()
	}

	results := make([]Result, len(paths))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			p := &Pipeline{ParseOnly: opts.ParseOnly}
			res, err := p.RunFile(path)
			if err != nil {
				res.Err = err
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()
	return results
}
