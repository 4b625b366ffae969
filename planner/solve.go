// Package planner - run drivers over independent problem instances.
//
// A course file holds many runs; each run is solved by one pure Solve call
// with nothing shared between calls, so runs are embarrassingly parallel.
// Both drivers below return one cost per run, in input order.
package planner

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SolveAll solves each run in sequence and returns the per-run minimum
// costs in input order. The first failing run aborts the batch; its error is
// wrapped with the 1-based run number and satisfies errors.Is against the
// planner sentinels.
//
// Complexity: Σ over runs of O(n²·2ⁿ).
func SolveAll(runs [][]Waypoint, opts Options) ([]float64, error) {
	costs := make([]float64, len(runs))

	var (
		i   int
		res Result
		err error
	)
	for i = 0; i < len(runs); i++ {
		res, err = Solve(runs[i], opts)
		if err != nil {
			return nil, fmt.Errorf("planner: run %d: %w", i+1, err)
		}
		costs[i] = res.Cost
	}

	return costs, nil
}

// SolveAllConcurrent solves runs on up to workers goroutines (NumCPU when
// workers ≤ 0). Each worker writes its cost by run index, so the returned
// slice is in input order regardless of completion order. On failure the
// first run error is returned, wrapped with its 1-based run number, once the
// in-flight runs have drained.
//
// Complexity: same work as SolveAll, wall time divided by the worker count.
func SolveAllConcurrent(runs [][]Waypoint, opts Options, workers int) ([]float64, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	costs := make([]float64, len(runs))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, run := range runs {
		i, run := i, run
		g.Go(func() error {
			res, err := Solve(run, opts)
			if err != nil {
				return fmt.Errorf("planner: run %d: %w", i+1, err)
			}
			costs[i] = res.Cost // exclusive index, no further synchronization

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return costs, nil
}
