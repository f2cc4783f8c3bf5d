package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"golang.org/x/sync/errgroup"
)

// ErrSharedOutputDir is reported for a batch unit whose output directory is
// already used by an earlier unit.
var ErrSharedOutputDir = errors.New("output directory shared by batch units")

// Unit is one source to compile in a batch.
type Unit struct {
	Name   string
	Source string
	OutDir string
}

// Result is the outcome of compiling one Unit.
type Result struct {
	Unit Unit
	ID   string
	Path string
	Err  error
}

// Batch compiles units concurrently, at most parallelism at a time (no limit
// if parallelism < 1). Each unit gets its own driver built from b; a unit with
// an empty OutDir inherits the builder's output directory. A failing unit does
// not stop the others. Units not yet started when ctx is done fail with the
// context error.
//
// Two units may not share an output directory, since both would write the same
// artifact file. Every unit after the first one naming a directory fails with
// ErrSharedOutputDir without being compiled.
//
// Results are returned in the order of units.
func Batch(ctx context.Context, b DriverBuilder, units []Unit, parallelism int) []Result {
	results := make([]Result, len(units))

	g := new(errgroup.Group)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	logger := b.loggerOrDefault()
	owners := make(map[string]string)

	for i, u := range units {
		// The akita ID generator is not safe to initialize concurrently, so
		// IDs are handed out here rather than in the workers.
		res := Result{Unit: u, ID: sim.GetIDGenerator().Generate()}

		ub := b
		if u.OutDir != "" {
			ub = b.WithOutputDir(u.OutDir)
		}

		dir := ub.outputDir()
		if owner, ok := owners[dir]; ok {
			res.Err = fmt.Errorf("%w: unit %q and unit %q both write to %s",
				ErrSharedOutputDir, owner, u.Name, dir)
			results[i] = res
			continue
		}
		owners[dir] = u.Name

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				res.Err = err
				results[i] = res
				return nil
			}

			d := ub.WithLogger(logger.With("unit", u.Name, "id", res.ID)).
				Build(u.Name)

			res.Path, res.Err = d.Run(u.Source)
			if res.Err != nil {
				logger.Error("compilation failed", "unit", u.Name, "id", res.ID, "error", res.Err)
			}

			results[i] = res

			return nil
		})
	}

	_ = g.Wait()

	return results
}
