// Package course - sentinel errors for the run-file codec.
package course

import "errors"

// Sentinel errors for course-file parsing. Parse wraps each with the
// offending 1-based line number; match with errors.Is.
var (
	// ErrBadCount indicates a run header that is not a single non-negative
	// integer.
	ErrBadCount = errors.New("course: run header must be a single non-negative integer")
	// ErrBadLine indicates a waypoint line that is not three numbers X Y P.
	ErrBadLine = errors.New("course: waypoint line must be three numbers X Y P")
	// ErrTruncatedRun indicates the file ended before a run's declared
	// waypoint count was satisfied.
	ErrTruncatedRun = errors.New("course: file ended mid-run")
)
