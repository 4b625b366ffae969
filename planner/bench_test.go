package planner_test

import (
	"math/rand"
	"testing"

	"github.com/jadecastro/TimeOptimalPlanner/planner"
)

// benchmarkSolve runs the exact solver on one seeded random instance of n
// waypoints. It resets the timer after setup and fails on unexpected errors.
func benchmarkSolve(b *testing.B, n int, returnOrder bool) {
	ws := randomRun(rand.New(rand.NewSource(int64(n))), n)
	opts := planner.DefaultOptions()
	opts.MaxWaypoints = n
	opts.ReturnOrder = returnOrder

	b.ResetTimer() // ignore instance construction
	for i := 0; i < b.N; i++ {
		if _, err := planner.Solve(ws, opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_10 benchmarks a 10-waypoint run (2^10 masks).
func BenchmarkSolve_10(b *testing.B) {
	benchmarkSolve(b, 10, false)
}

// BenchmarkSolve_13 benchmarks a 13-waypoint run (2^13 masks).
func BenchmarkSolve_13(b *testing.B) {
	benchmarkSolve(b, 13, false)
}

// BenchmarkSolve_16 benchmarks the default ceiling (2^16 masks).
func BenchmarkSolve_16(b *testing.B) {
	benchmarkSolve(b, 16, false)
}

// BenchmarkSolve_16_ReturnOrder adds the parent table and reconstruction.
func BenchmarkSolve_16_ReturnOrder(b *testing.B) {
	benchmarkSolve(b, 16, true)
}

// BenchmarkSolveAllConcurrent_16x8 dispatches 16 ten-waypoint runs on 8 workers.
func BenchmarkSolveAllConcurrent_16x8(b *testing.B) {
	rng := rand.New(rand.NewSource(16))
	runs := make([][]planner.Waypoint, 16)
	for i := range runs {
		runs[i] = randomRun(rng, 10)
	}
	opts := planner.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := planner.SolveAllConcurrent(runs, opts, 8); err != nil {
			b.Fatalf("SolveAllConcurrent failed: %v", err)
		}
	}
}
