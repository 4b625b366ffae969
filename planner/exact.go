package planner

// Solve computes the minimum total time for one run: over every subset S of
// the waypoints and every visiting order of S,
//
//	Σ consecutive travel times + |S|·DwellTime + Σ penalties outside S
//
// where the path starts at Options.Depot and ends at the last visited
// waypoint. The empty subset (skip everything, pay all penalties) competes
// on equal terms.
//
// Held–Karp dynamic program over subsets:
//
//	best[mask][j] = minimum travel+dwell cost of a depot-started path that
//	                visits exactly the waypoints in bitmask mask and ends
//	                at waypoint j (j ∈ mask)
//
//	base:       best[{j}][j] = travel(depot, j) + DwellTime
//	transition: best[mask][j] = min over k ∈ mask\{j} of
//	            best[mask\{j}][k] + travel(k, j) + DwellTime
//
// Masks are processed in increasing integer order, which visits every strict
// subset of a mask before the mask itself - a correctness requirement, not a
// performance choice. The table is a flat []float64 indexed mask*n+j.
//
// Returns the optimal Result, with Order/Skipped reconstructed from a parent
// table when Options.ReturnOrder is set. Returned costs are rounded to 1e-9.
//
// Errors: ErrNonPositiveVelocity, ErrNegativeDwell, ErrBadDepot,
// ErrBadWaypoint, ErrTooManyWaypoints - all detected before the DP runs.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) space.
func Solve(waypoints []Waypoint, opts Options) (Result, error) {
	n, err := validateInstance(waypoints, opts)
	if err != nil {
		return Result{}, err
	}
	if n == 0 {
		// Nothing to visit, nothing to skip.
		return Result{}, nil
	}

	// Precompute all travel legs (dwell folded into each arrival) and the
	// per-mask penalty sums.
	depot, leg := legTimes(waypoints, opts)
	penSum := penaltySums(waypoints)

	var (
		full = (1 << uint(n)) - 1 // bitmask with all n waypoints
		size = (full + 1) * n     // flat table: best[mask*n+j]
		best = make([]float64, size)
	)
	for i := 0; i < size; i++ {
		best[i] = inf
	}

	// Parent table only when the caller wants the route back.
	var parent []int32
	if opts.ReturnOrder {
		parent = make([]int32, size)
		for i := range parent {
			parent[i] = -1
		}
	}

	// Base cases: depart the depot straight to j.
	var j, k, mask, prev int
	for j = 0; j < n; j++ {
		best[(1<<uint(j))*n+j] = depot[j]
	}

	// Fill in increasing mask order.
	var cand float64
	for mask = 1; mask <= full; mask++ {
		for j = 0; j < n; j++ {
			if mask&(1<<uint(j)) == 0 {
				continue // j not in subset
			}
			prev = mask ^ (1 << uint(j))
			if prev == 0 {
				continue // base case already set
			}
			for k = 0; k < n; k++ {
				if prev&(1<<uint(k)) == 0 {
					continue // k not in predecessor subset
				}
				cand = best[prev*n+k] + leg[k*n+j]
				if cand < best[mask*n+j] {
					best[mask*n+j] = cand
					if parent != nil {
						parent[mask*n+j] = int32(k)
					}
				}
			}
		}
	}

	// Take the minimum over every (mask, endpoint), the empty mask included:
	// skipping everything costs the full penalty sum.
	var (
		minCost  = penSum[full]
		bestMask = 0
		bestEnd  = -1
	)
	for mask = 1; mask <= full; mask++ {
		for j = 0; j < n; j++ {
			if mask&(1<<uint(j)) == 0 {
				continue
			}
			cand = best[mask*n+j] + penSum[full^mask]
			if cand < minCost {
				minCost = cand
				bestMask = mask
				bestEnd = j
			}
		}
	}

	res := Result{Cost: round1e9(minCost)}
	if opts.ReturnOrder {
		res.Order, res.Skipped = reconstruct(parent, n, bestMask, bestEnd)
	}

	return res, nil
}

// reconstruct walks the parent table backwards from (mask, end) and returns
// the visiting order plus the ascending list of skipped indices.
//
// Complexity: O(n).
func reconstruct(parent []int32, n, mask, end int) (order, skipped []int) {
	var (
		visited = mask // remember which indices made the tour
		p       int32
	)
	for end >= 0 {
		order = append(order, end)
		p = parent[mask*n+end]
		mask ^= 1 << uint(end)
		end = int(p)
	}
	// The walk emits the tour back-to-front.
	for l, r := 0, len(order)-1; l < r; l, r = l+1, r-1 {
		order[l], order[r] = order[r], order[l]
	}

	for i := 0; i < n; i++ {
		if visited&(1<<uint(i)) == 0 {
			skipped = append(skipped, i)
		}
	}

	return order, skipped
}
