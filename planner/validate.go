// Package planner - validation shared by the solver entry points.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Everything is checked before the DP allocates; the solver never
//     partially computes on invalid input.
package planner

import "math"

// validateInstance verifies Options + waypoint list and returns n on success.
//
// Contract:
//   - Velocity > 0 and finite; DwellTime ≥ 0 and finite; Depot finite.
//   - Every waypoint coordinate finite; every penalty ≥ 0 (+Inf allowed as a
//     "must visit" sentinel, NaN rejected).
//   - n ≤ ceiling, where ceiling is Options.MaxWaypoints or
//     DefaultMaxWaypoints when unset.
//
// Complexity: O(n).
func validateInstance(ws []Waypoint, opts Options) (int, error) {
	if err := validateOptions(opts); err != nil {
		return 0, err
	}

	ceiling := opts.MaxWaypoints
	if ceiling <= 0 {
		ceiling = DefaultMaxWaypoints
	}
	n := len(ws)
	if n > ceiling {
		return 0, ErrTooManyWaypoints
	}

	var i int
	for i = 0; i < n; i++ {
		if !finite(ws[i].X) || !finite(ws[i].Y) {
			return 0, ErrBadWaypoint
		}
		// Reject negative and NaN penalties; +Inf is a legal sentinel.
		if ws[i].Penalty < 0 || math.IsNaN(ws[i].Penalty) {
			return 0, ErrBadWaypoint
		}
	}

	return n, nil
}

// validateOptions checks the scalar parameters and the depot.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if !(opts.Velocity > 0) || math.IsInf(opts.Velocity, 1) {
		return ErrNonPositiveVelocity
	}
	if !(opts.DwellTime >= 0) || math.IsInf(opts.DwellTime, 1) {
		return ErrNegativeDwell
	}
	if !finite(opts.Depot.X) || !finite(opts.Depot.Y) {
		return ErrBadDepot
	}

	return nil
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
