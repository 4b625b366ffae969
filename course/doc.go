// Package course reads and writes the planner's course-file format.
//
// A course file is a sequence of independent runs:
//
//	3            ← number of waypoints in this run
//	10 0 100     ← X Y P: location (meters) and skip penalty (seconds)
//	20 0 100
//	5 0 100
//	2            ← next run begins immediately
//	10 0 5
//	20 0 5
//	0            ← a zero count terminates the file (clean EOF also accepted)
//
// Blank lines are ignored. ParseRuns returns the runs in file order;
// WriteCosts emits one optimal cost per run, three decimal places, in the
// same order. OutputName maps an input path to its conventional result file
// (extension replaced by ".out").
//
// The codec is format-only: it does not judge velocities, penalties, or run
// sizes — that is the solver's validation domain (see the planner package).
package course
