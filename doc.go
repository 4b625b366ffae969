// Package timeoptimal computes minimum-time mission plans for a single
// mobile robot over 2D waypoint courses with skip penalties.
//
// 🚀 What is TimeOptimalPlanner?
//
//	A small, exact optimization library plus a batch CLI:
//		• planner/ — prize-collecting open-path solver (Held–Karp over subsets):
//		  jointly decides which waypoints to visit and in which order, trading
//		  travel + dwell time against skip penalties.
//		• course/  — run-file codec: parses consecutive problem runs from a
//		  text course file and writes one optimal cost per run.
//		• cmd/timeopt — command-line host wiring the two together.
//
// ✨ Why choose it?
//
//   - Exact by contract – never degrades to a heuristic; instances above the
//     configured size ceiling fail loudly instead.
//   - Pure solver core – no globals, no logging, sentinel errors only; every
//     call is independently testable and safe to run in parallel.
//   - Pure Go – no cgo; the CLI is the only place with I/O.
//
// Quick ASCII example (velocity 1, dwell 0, depot at the origin):
//
//	    depot──5──(5,0)──5──(10,0)──10──(20,0)
//
//	visiting all three in increasing x costs 20; any skip pays its penalty.
//
// Dive into planner/doc.go for the algorithm and course/doc.go for the file
// format.
//
//	go get github.com/jadecastro/TimeOptimalPlanner
package timeoptimal
