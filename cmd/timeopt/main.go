package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/peterbourgon/ff"

	"github.com/jadecastro/TimeOptimalPlanner/course"
	"github.com/jadecastro/TimeOptimalPlanner/planner"
)

func main() {
	fs := flag.NewFlagSet("timeopt", flag.ExitOnError)
	var (
		file         = fs.String("file", "sample.txt", "input course file")
		initPos      = fs.String("init-pos", "0,0", "robot initial position X,Y in meters")
		vel          = fs.Float64("vel", planner.DefaultVelocity, "robot velocity in m/s")
		dwellTime    = fs.Float64("dwell-time", planner.DefaultDwellTime, "dwell time per visited waypoint in seconds")
		maxWaypoints = fs.Int("max-waypoints", planner.DefaultMaxWaypoints, "exact-solve ceiling per run")
		workers      = fs.Int("workers", runtime.NumCPU(), "concurrent runs")
		debug        = fs.Bool("debug", false, "enable debug logging")
		_            = fs.String("config", "", "config file (one flag per line: name value)")
	)
	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarNoPrefix(),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	); err != nil {
		fmt.Fprintln(os.Stderr, "timeopt:", err)
		os.Exit(2)
	}

	l := Logger{debug: *debug}

	depot, err := parsePoint(*initPos)
	if err != nil {
		fmt.Fprintln(os.Stderr, "timeopt: -init-pos:", err)
		os.Exit(2)
	}

	opts := planner.DefaultOptions()
	opts.Velocity = *vel
	opts.DwellTime = *dwellTime
	opts.Depot = depot
	opts.MaxWaypoints = *maxWaypoints

	if err := run(&l, *file, opts, *workers); err != nil {
		fmt.Fprintln(os.Stderr, "timeopt:", err)
		os.Exit(1)
	}
}

// run executes the batch: parse the course file, solve every run, write one
// cost per run next to the input. Any parse or solver error aborts the whole
// invocation.
func run(l *Logger, file string, opts planner.Options, workers int) error {
	in, err := os.Open(file)
	if err != nil {
		return err
	}
	defer in.Close()

	runs, err := course.ParseRuns(in)
	if err != nil {
		return err
	}
	l.debugf("parsed %d runs from %s", len(runs), file)

	start := time.Now()
	costs, err := planner.SolveAllConcurrent(runs, opts, workers)
	if err != nil {
		return err
	}
	l.debugf("solved %d runs in %s", len(runs), time.Since(start))

	outName := course.OutputName(file)
	out, err := os.Create(outName)
	if err != nil {
		return err
	}
	if err = course.WriteCosts(out, costs); err != nil {
		out.Close()
		return err
	}
	if err = out.Close(); err != nil {
		return err
	}
	l.infof("%s: %d costs written", outName, len(costs))

	return nil
}

// parsePoint decodes an "X,Y" pair.
func parsePoint(s string) (planner.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return planner.Point{}, fmt.Errorf("want X,Y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return planner.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return planner.Point{}, err
	}

	return planner.Point{X: x, Y: y}, nil
}
