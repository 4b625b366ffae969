// Package planner solves the prize-collecting open-path routing problem
// exactly: given 2D waypoints that each carry a skip penalty, a constant
// robot velocity, and a per-visit dwell time, it jointly selects the subset
// of waypoints to visit and their visiting order so that
//
//	travel time + |visited|·dwell + Σ penalties(skipped)
//
// is minimized. The robot departs from a configurable depot and stops at the
// last visited waypoint (open path, no return leg).
//
// 🚀 Why a joint subset+order solve?
//
//	Skipping a waypoint can shorten the tour enough to outweigh its penalty,
//	so selection and sequencing cannot be decoupled. The solver runs a
//	Held–Karp dynamic program over all subsets:
//
//	  best[mask][j] = cheapest depot-started path visiting exactly the
//	                  waypoints in bitmask mask and ending at j
//
//	and takes the minimum of tour cost plus complement penalties over every
//	mask, the empty one included.
//
// ✨ Guarantees:
//   - Exact – optimal for every accepted instance; no heuristic fallback.
//     Instances above Options.MaxWaypoints fail with ErrTooManyWaypoints.
//   - Pure – no globals, no logging, no retained state; calls are safe to
//     dispatch in parallel (see SolveAll / SolveAllConcurrent).
//   - Strict – invalid velocity, dwell, depot, or penalties are rejected
//     with sentinel errors before the DP allocates anything.
//
// ⚙️ Usage:
//
//	opts := planner.DefaultOptions()
//	opts.Velocity = 1
//	opts.DwellTime = 0
//
//	res, err := planner.Solve([]planner.Waypoint{
//	  {X: 10, Y: 0, Penalty: 1000},
//	  {X: 20, Y: 0, Penalty: 1000},
//	}, opts)
//	// res.Cost == 20: visiting both beats paying either penalty.
//
// Performance:
//
//   - Time:   O(n²·2ⁿ)
//   - Memory: O(n·2ⁿ) (flat mask-indexed table; doubled when ReturnOrder
//     requests the parent table for order reconstruction)
//
// Use this package for small-to-medium instances (n ≲ 16 by default; raise
// the ceiling only with the exponential cost in mind).
package planner
