// Package planner - core types, options, and sentinel errors for the
// exact subset-routing solver.
package planner

import "errors"

// Sentinel errors for planner operations.
var (
	// ErrNonPositiveVelocity indicates Velocity ≤ 0 or non-finite; travel time
	// would be undefined.
	ErrNonPositiveVelocity = errors.New("planner: velocity must be positive and finite")
	// ErrNegativeDwell indicates DwellTime < 0 or non-finite.
	ErrNegativeDwell = errors.New("planner: dwell time must be non-negative and finite")
	// ErrBadDepot indicates a depot with a NaN or infinite coordinate.
	ErrBadDepot = errors.New("planner: depot coordinates must be finite")
	// ErrBadWaypoint indicates a waypoint with a non-finite coordinate or a
	// negative/NaN penalty. A +Inf penalty is legal and means "must visit".
	ErrBadWaypoint = errors.New("planner: waypoint has non-finite coordinate or negative penalty")
	// ErrTooManyWaypoints indicates the instance exceeds the configured exact
	// solve ceiling. The solver never substitutes a heuristic; reduce the run
	// or raise Options.MaxWaypoints deliberately.
	ErrTooManyWaypoints = errors.New("planner: waypoint count exceeds MaxWaypoints ceiling")
)

// Defaults mirror the historical planner configuration: a 2 m/s robot that
// services each visited waypoint for 10 s, departing from the origin.
const (
	// DefaultVelocity is the robot speed in meters per second.
	DefaultVelocity = 2.0
	// DefaultDwellTime is the service time per visited waypoint, in seconds.
	DefaultDwellTime = 10.0
	// DefaultMaxWaypoints bounds the exact DP: 2^16·16 float64 cells ≈ 8 MiB.
	DefaultMaxWaypoints = 16
)

// Point is a location on the plane, in meters.
type Point struct {
	X, Y float64
}

// Waypoint is a course point with the time penalty incurred when the robot
// decides not to visit it. Identity is positional index within its run.
type Waypoint struct {
	X, Y    float64
	Penalty float64
}

// Options configures one solver call. All instance-wide parameters travel
// explicitly with the call; the solver keeps no ambient state between runs.
//
// Fields:
//   - Velocity     — constant robot speed, m/s; must be > 0.
//   - DwellTime    — time spent servicing each visited waypoint, s; ≥ 0.
//   - Depot        — the robot's starting location. The mission is an open
//     path: it ends at the last visited waypoint, with no return leg.
//   - MaxWaypoints — exact-solve ceiling; 0 means DefaultMaxWaypoints.
//     Instances above the ceiling fail with ErrTooManyWaypoints.
//   - ReturnOrder  — if true, Solve also reconstructs the optimal visiting
//     order (allocates a parent table alongside the DP).
type Options struct {
	Velocity     float64
	DwellTime    float64
	Depot        Point
	MaxWaypoints int
	ReturnOrder  bool
}

// DefaultOptions returns the planner defaults: Velocity 2, DwellTime 10,
// Depot at the origin, MaxWaypoints 16, no order reconstruction.
func DefaultOptions() Options {
	return Options{
		Velocity:     DefaultVelocity,
		DwellTime:    DefaultDwellTime,
		Depot:        Point{},
		MaxWaypoints: DefaultMaxWaypoints,
	}
}

// Result holds the outcome of one solver call.
type Result struct {
	// Cost is the minimum achievable total time: travel + dwell for the
	// visited subset plus the summed penalties of the skipped waypoints.
	Cost float64

	// Order lists the visited waypoint indices in visiting sequence.
	// Populated only when Options.ReturnOrder is set; empty when the optimal
	// strategy skips everything.
	Order []int

	// Skipped lists the skipped waypoint indices in ascending order.
	// Populated only when Options.ReturnOrder is set.
	Skipped []int
}
