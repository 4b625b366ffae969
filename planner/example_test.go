package planner_test

import (
	"fmt"

	"github.com/jadecastro/TimeOptimalPlanner/planner"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two waypoints straight down the x-axis, penalties far above travel cost.
//	Depot (0,0), velocity 1 m/s, no dwell: the robot visits both in order
//	for 10+10 = 20 s instead of paying 2000 s of penalties.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory
func ExampleSolve() {
	opts := planner.DefaultOptions()
	opts.Velocity = 1
	opts.DwellTime = 0

	res, err := planner.Solve([]planner.Waypoint{
		{X: 10, Y: 0, Penalty: 1000},
		{X: 20, Y: 0, Penalty: 1000},
	}, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("cost=%.3f\n", res.Cost)
	// Output:
	// cost=20.000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve_returnOrder
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three colinear waypoints listed out of order. With ReturnOrder set the
//	solver also reports the visiting sequence: sweep in increasing x,
//	indices 2 → 0 → 1, for 5+5+10 = 20 s.
func ExampleSolve_returnOrder() {
	opts := planner.DefaultOptions()
	opts.Velocity = 1
	opts.DwellTime = 0
	opts.ReturnOrder = true

	res, err := planner.Solve([]planner.Waypoint{
		{X: 10, Y: 0, Penalty: 100},
		{X: 20, Y: 0, Penalty: 100},
		{X: 5, Y: 0, Penalty: 100},
	}, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("cost=%.3f\norder=%v\nskipped=%v\n", res.Cost, res.Order, res.Skipped)
	// Output:
	// cost=20.000
	// order=[2 0 1]
	// skipped=[]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolveAll
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A course file's worth of independent runs: identical geometry, different
//	penalties, one optimal cost per run in input order.
func ExampleSolveAll() {
	opts := planner.DefaultOptions()
	opts.Velocity = 1
	opts.DwellTime = 0

	costs, err := planner.SolveAll([][]planner.Waypoint{
		{{X: 10, Y: 0, Penalty: 1000}, {X: 20, Y: 0, Penalty: 1000}},
		{{X: 10, Y: 0, Penalty: 5}, {X: 20, Y: 0, Penalty: 5}},
	}, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, c := range costs {
		fmt.Printf("%.3f\n", c)
	}
	// Output:
	// 20.000
	// 10.000
}
