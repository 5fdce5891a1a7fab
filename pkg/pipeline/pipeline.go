// SPDX-License-Identifier: MIT
//
// File: pipeline.go
// Role: RunFiles, the bounded per-file worker pool.

package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aslocate/astopo/pkg/asgraph"
)

// Worker builds a partial Topology from one input file. A worker that
// cannot read its file should log and return an empty Topology with a
// nil error (spec.md §5: a per-file failure never aborts the batch);
// returning a non-nil error instead fails the whole batch, reserved
// for the "worker exception" class (spec.md §7).
type Worker func(ctx context.Context, path string) (*asgraph.Topology, error)

// RunFiles runs worker once per path in a pool bounded to the
// available cores, recovering panics into batch-failing errors, and
// returns the partial Topology for each path in input order.
func RunFiles(ctx context.Context, paths []string, worker Worker, logger *zap.SugaredLogger) ([]*asgraph.Topology, error) {
	results := make([]*asgraph.Topology, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, runtime.GOMAXPROCS(0)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					if logger != nil {
						logger.Errorw("pipeline: worker panicked", "file", path, "panic", r, "trace", string(debug.Stack()))
					}
					err = fmt.Errorf("pipeline: worker for %s panicked: %v", path, r)
				}
			}()

			topo, werr := worker(gctx, path)
			if werr != nil {
				if logger != nil {
					logger.Errorw("pipeline: worker failed", "file", path, "error", werr, "trace", string(debug.Stack()))
				}
				return werr
			}
			results[i] = topo
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
