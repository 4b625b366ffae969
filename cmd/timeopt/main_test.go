package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jadecastro/TimeOptimalPlanner/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("0,0")
	require.NoError(t, err)
	assert.Equal(t, planner.Point{}, p)

	p, err = parsePoint(" 12.5 , -3 ")
	require.NoError(t, err)
	assert.Equal(t, planner.Point{X: 12.5, Y: -3}, p)

	for _, bad := range []string{"", "1", "1,2,3", "a,b"} {
		_, err = parsePoint(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(in, []byte("2\n10 0 1000\n20 0 1000\n2\n10 0 5\n20 0 5\n0\n"), 0o644))

	opts := planner.DefaultOptions()
	opts.Velocity = 1
	opts.DwellTime = 0

	l := Logger{}
	require.NoError(t, run(&l, in, opts, 2))

	out, err := os.ReadFile(filepath.Join(dir, "sample.out"))
	require.NoError(t, err)
	assert.Equal(t, "20.000\n10.000\n", string(out))
}

func TestRun_MissingFile(t *testing.T) {
	l := Logger{}
	err := run(&l, filepath.Join(t.TempDir(), "nope.txt"), planner.DefaultOptions(), 1)
	require.Error(t, err)
}
