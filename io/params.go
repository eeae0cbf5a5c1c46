// Package io reads the simulation inputs and writes the simulation outputs.
// Everything here runs before or after the timestep loop; nothing in this
// package is touched while the lattice is being advanced.
package io

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/rossng/COMS30004-assignment-01-new/lbm"
)

// ReadParams reads the seven simulation parameters from a text file. The
// tokens are whitespace or newline separated and their order is fixed:
// nx, ny, maxIters, reynolds_dim, density, accel, omega.
func ReadParams(fname string) (lbm.Params, error) {
	f, err := os.Open(fname)
	if err != nil {
		return lbm.Params{}, fmt.Errorf(
			"could not open input parameter file: %s", fname,
		)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)

	scanInt := func(name string) (int, error) {
		if !sc.Scan() {
			return 0, fmt.Errorf("could not read param file: %s", name)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("could not read param file: %s", name)
		}
		return v, nil
	}
	scanFloat := func(name string) (float32, error) {
		if !sc.Scan() {
			return 0, fmt.Errorf("could not read param file: %s", name)
		}
		v, err := strconv.ParseFloat(sc.Text(), 32)
		if err != nil {
			return 0, fmt.Errorf("could not read param file: %s", name)
		}
		return float32(v), nil
	}

	p := lbm.Params{}
	if p.NX, err = scanInt("nx"); err != nil {
		return lbm.Params{}, err
	}
	if p.NY, err = scanInt("ny"); err != nil {
		return lbm.Params{}, err
	}
	if p.MaxIters, err = scanInt("maxIters"); err != nil {
		return lbm.Params{}, err
	}
	if p.ReynoldsDim, err = scanInt("reynolds_dim"); err != nil {
		return lbm.Params{}, err
	}
	if p.Density, err = scanFloat("density"); err != nil {
		return lbm.Params{}, err
	}
	if p.Accel, err = scanFloat("accel"); err != nil {
		return lbm.Params{}, err
	}
	if p.Omega, err = scanFloat("omega"); err != nil {
		return lbm.Params{}, err
	}

	if err := p.Check(); err != nil {
		return lbm.Params{}, err
	}
	return p, nil
}
