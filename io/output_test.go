package io

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rossng/COMS30004-assignment-01-new/lbm"
)

var floatField = regexp.MustCompile(`^-?\d\.\d{12}E[+-]\d{2,}$`)

func TestWriteAvVels(t *testing.T) {
	fname := filepath.Join(t.TempDir(), AvVelsFile)
	require.NoError(t, WriteAvVels(fname, []float32{0.5, 0.0625}))

	raw, err := os.ReadFile(fname)
	require.NoError(t, err)

	assert.Equal(t,
		"0:\t5.000000000000E-01\n1:\t6.250000000000E-02\n", string(raw))
}

func TestWriteFinalState(t *testing.T) {
	p := obstacleParams(3, 3)
	obstacles := make([]bool, p.NX*p.NY)
	obstacles[0] = true
	sim, err := lbm.NewSimulator(p, obstacles, 1)
	require.NoError(t, err)

	fname := filepath.Join(t.TempDir(), FinalStateFile)
	require.NoError(t, WriteFinalState(fname, sim))

	raw, err := os.ReadFile(fname)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, p.NX*p.NY)

	for i, line := range lines {
		fields := strings.Split(line, " ")
		require.Len(t, fields, 7, "line %d", i)

		x, err := strconv.Atoi(fields[0])
		require.NoError(t, err)
		y, err := strconv.Atoi(fields[1])
		require.NoError(t, err)
		assert.Equal(t, i%p.NX, x, "row-major order")
		assert.Equal(t, i/p.NX, y, "row-major order")

		for j := 2; j < 6; j++ {
			assert.Regexp(t, floatField, fields[j], "line %d field %d", i, j)
		}
	}

	// The solid cell reports zero velocity and the rest-density pressure.
	first := strings.Split(lines[0], " ")
	assert.Equal(t, "1", first[6])
	for j := 2; j < 5; j++ {
		v, err := strconv.ParseFloat(first[j], 32)
		require.NoError(t, err)
		assert.Equal(t, 0.0, v)
	}
	pressure, err := strconv.ParseFloat(first[5], 32)
	require.NoError(t, err)
	assert.InDelta(t, 0.1/3, pressure, 1e-6)

	// The fluid cells start at rest: zero velocity.
	second := strings.Split(lines[1], " ")
	assert.Equal(t, "0", second[6])
	for j := 2; j < 5; j++ {
		v, err := strconv.ParseFloat(second[j], 32)
		require.NoError(t, err)
		assert.Equal(t, 0.0, v)
	}
}
