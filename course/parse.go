package course

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jadecastro/TimeOptimalPlanner/planner"
)

// ParseRuns reads consecutive run blocks from r: an integer waypoint count,
// then that many "X Y P" lines. A bare zero count or clean EOF between runs
// terminates the file; blank lines are skipped anywhere.
//
// Coordinates and penalties are parsed as decimals; historically the format
// carried integers, which parse identically.
//
// Errors: ErrBadCount, ErrBadLine, ErrTruncatedRun, each wrapped with the
// 1-based line number, or the reader's own error.
//
// Complexity: O(total lines), single pass, no lookahead.
func ParseRuns(r io.Reader) ([][]planner.Waypoint, error) {
	var (
		sc      = bufio.NewScanner(r)
		runs    [][]planner.Waypoint
		current []planner.Waypoint
		pending = 0 // waypoint lines still owed by the open run
		lineNo  = 0
	)

	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // blank line
		}

		if pending == 0 {
			// Expecting a run header.
			count, err := strconv.Atoi(fields[0])
			if err != nil || count < 0 || len(fields) != 1 {
				return nil, fmt.Errorf("course: line %d: %w", lineNo, ErrBadCount)
			}
			if count == 0 {
				// Explicit terminator; anything after it is ignored.
				return runs, sc.Err()
			}
			pending = count
			current = make([]planner.Waypoint, 0, count)

			continue
		}

		// Expecting a waypoint line.
		wp, err := parseWaypoint(fields)
		if err != nil {
			return nil, fmt.Errorf("course: line %d: %w", lineNo, err)
		}
		current = append(current, wp)
		pending--
		if pending == 0 {
			runs = append(runs, current)
			current = nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, fmt.Errorf("course: line %d: %w", lineNo, ErrTruncatedRun)
	}

	return runs, nil
}

// parseWaypoint decodes one "X Y P" triple.
func parseWaypoint(fields []string) (planner.Waypoint, error) {
	if len(fields) != 3 {
		return planner.Waypoint{}, ErrBadLine
	}

	var (
		vals [3]float64
		err  error
	)
	for i, f := range fields {
		vals[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return planner.Waypoint{}, ErrBadLine
		}
	}

	return planner.Waypoint{X: vals[0], Y: vals[1], Penalty: vals[2]}, nil
}
