package io

import (
	"bytes"
	"fmt"
	"os"

	"github.com/phil-mansfield/table"

	"github.com/rossng/COMS30004-assignment-01-new/lbm"
)

// ReadObstacles reads the blocked-cell list and returns a row-major obstacle
// mask for the grid described by p. Each line of the file holds three
// columns, x y flag, with flag always 1. An empty file leaves the whole
// channel unobstructed.
func ReadObstacles(fname string, p lbm.Params) ([]bool, error) {
	mask := make([]bool, p.NX*p.NY)

	raw, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf(
			"could not open input obstacles file: %s", fname,
		)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return mask, nil
	}

	cols, err := table.ReadTable(fname, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, fmt.Errorf(
			"expected 3 values per line in obstacle file: %v", err,
		)
	}
	xs, ys, flags := cols[0], cols[1], cols[2]

	for i := range xs {
		x, y := int(xs[i]), int(ys[i])
		if float64(x) != xs[i] || x < 0 || x > p.NX-1 {
			return nil, fmt.Errorf(
				"obstacle x-coord out of range: %g", xs[i],
			)
		}
		if float64(y) != ys[i] || y < 0 || y > p.NY-1 {
			return nil, fmt.Errorf(
				"obstacle y-coord out of range: %g", ys[i],
			)
		}
		if flags[i] != 1 {
			return nil, fmt.Errorf(
				"obstacle blocked value should be 1, but is %g", flags[i],
			)
		}
		mask[y*p.NX+x] = true
	}

	return mask, nil
}
