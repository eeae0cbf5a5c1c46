package io

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rossng/COMS30004-assignment-01-new/lbm"
)

const (
	// FinalStateFile is the default name of the per-cell state output.
	FinalStateFile = "final_state.dat"
	// AvVelsFile is the default name of the average-velocity output.
	AvVelsFile = "av_vels.dat"
)

// WriteFinalState writes one line per cell in row-major order:
// x y u_x u_y |u| pressure obstacle_flag.
func WriteFinalState(fname string, sim *lbm.Simulator) error {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("could not create output file: %s", fname)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	p := sim.Params()

	for y := 0; y < p.NY; y++ {
		for x := 0; x < p.NX; x++ {
			ux, uy, u, pressure := sim.Macroscopic(y, x)
			blocked := 0
			if sim.Obstructed(y, x) {
				blocked = 1
			}
			fmt.Fprintf(
				w, "%d %d %.12E %.12E %.12E %.12E %d\n",
				x, y, ux, uy, u, pressure, blocked,
			)
		}
	}

	return w.Flush()
}

// WriteAvVels writes one "t:\t<avg>" line per timestep.
func WriteAvVels(fname string, avVels []float32) error {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("could not create output file: %s", fname)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for t, av := range avVels {
		fmt.Fprintf(w, "%d:\t%.12E\n", t, av)
	}

	return w.Flush()
}
