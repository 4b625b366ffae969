package planner

import (
	"math"
	"math/bits"
)

// costScale stabilizes returned costs across platforms: all externally
// visible costs are rounded to 1e-9 to prevent FP drift between equivalent
// orderings.
const costScale = 1e9

// inf initializes DP cells: "no path with this (mask, endpoint) shape yet".
var inf = math.Inf(1)

// TravelTime returns the time to travel the straight line between a and b at
// the given constant velocity. Side-effect free.
//
// Errors: ErrNonPositiveVelocity when velocity ≤ 0, NaN, or +Inf.
//
// Complexity: O(1).
func TravelTime(a, b Point, velocity float64) (float64, error) {
	if !(velocity > 0) || math.IsInf(velocity, 1) {
		return 0, ErrNonPositiveVelocity
	}

	return euclid(a, b) / velocity, nil
}

// euclid returns the Euclidean distance between a and b.
func euclid(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// legTimes precomputes every travel time the DP can ever look up:
//   - depot[j]    — depot → waypoint j, dwell included
//   - leg[k*n+j]  — waypoint k → waypoint j, dwell at j included
//
// Folding the dwell into each arriving leg keeps the DP transition a single
// addition.
//
// Complexity: O(n²) time, O(n²) space.
func legTimes(ws []Waypoint, opts Options) (depot []float64, leg []float64) {
	var (
		n    = len(ws)
		invV = 1 / opts.Velocity
		j, k int
	)
	depot = make([]float64, n)
	leg = make([]float64, n*n)
	for j = 0; j < n; j++ {
		depot[j] = euclid(opts.Depot, Point{X: ws[j].X, Y: ws[j].Y})*invV + opts.DwellTime
		for k = 0; k < n; k++ {
			if k == j {
				continue
			}
			leg[k*n+j] = euclid(Point{X: ws[k].X, Y: ws[k].Y}, Point{X: ws[j].X, Y: ws[j].Y})*invV + opts.DwellTime
		}
	}

	return depot, leg
}

// penaltySums returns sums[mask] = Σ penalties of the waypoints in mask, for
// every mask over the n waypoints. The solver reads the skipped-side cost as
// sums[full^visited] rather than total−visited, so +Inf "must visit"
// penalties never produce Inf−Inf.
//
// Complexity: O(2ⁿ) time and space.
func penaltySums(ws []Waypoint) []float64 {
	sums := make([]float64, 1<<uint(len(ws)))

	var (
		mask int
		low  int // lowest set bit of mask
	)
	for mask = 1; mask < len(sums); mask++ {
		low = mask & -mask
		sums[mask] = sums[mask^low] + ws[bits.TrailingZeros(uint(low))].Penalty
	}

	return sums
}

// round1e9 rounds v to 9 decimal places. +Inf passes through unchanged.
func round1e9(v float64) float64 {
	if math.IsInf(v, 0) {
		return v
	}

	return math.Round(v*costScale) / costScale
}
