// Package lbm implements a d2q9-bgk lattice Boltzmann scheme for
// two-dimensional channel flow around solid obstacles.
//
// The nine speeds of each cell are numbered
//
//	6 2 5
//	 \|/
//	3-0-1
//	 /|\
//	7 4 8
//
// so speed 0 is the rest population, 1-4 point along the +x, +y, -x and -y
// axes, and 5-8 point along the diagonals.
package lbm

// NSpeeds is the number of discrete velocities per lattice site.
const NSpeeds = 9

// Dist provides an interface for reasoning over a 1D slice as if it were the
// nine-speed distribution of an nx by ny lattice. The slice is speed-major:
// plane k holds the row-major nx*ny populations of speed k, and streaming
// reads contiguous runs along x within one plane.
type Dist struct {
	NX, NY int
	Area   int // cells per speed plane
	F      []float32
}

// NewDist returns a distribution buffer for an nx by ny lattice with every
// population set to zero.
func NewDist(nx, ny int) *Dist {
	return &Dist{
		NX:   nx,
		NY:   ny,
		Area: nx * ny,
		F:    make([]float32, NSpeeds*nx*ny),
	}
}

// Idx returns the flat index of speed k at row y, column x.
func (d *Dist) Idx(k, y, x int) int {
	return k*d.Area + y*d.NX + x
}

// At returns the population of speed k at row y, column x.
func (d *Dist) At(k, y, x int) float32 {
	return d.F[k*d.Area+y*d.NX+x]
}

// InitEquilibrium sets every cell to the zero-velocity equilibrium for the
// given rest density.
func (d *Dist) InitEquilibrium(density float32) {
	w0 := density * 4.0 / 9.0
	w1 := density / 9.0
	w2 := density / 36.0

	for y := 0; y < d.NY; y++ {
		for x := 0; x < d.NX; x++ {
			i := y*d.NX + x
			d.F[0*d.Area+i] = w0
			d.F[1*d.Area+i] = w1
			d.F[2*d.Area+i] = w1
			d.F[3*d.Area+i] = w1
			d.F[4*d.Area+i] = w1
			d.F[5*d.Area+i] = w2
			d.F[6*d.Area+i] = w2
			d.F[7*d.Area+i] = w2
			d.F[8*d.Area+i] = w2
		}
	}
}

// TotalDensity sums every population in the grid. The total should remain
// constant from one timestep to the next.
func (d *Dist) TotalDensity() float32 {
	var total float32
	for y := 0; y < d.NY; y++ {
		for x := 0; x < d.NX; x++ {
			for k := 0; k < NSpeeds; k++ {
				total += d.F[k*d.Area+y*d.NX+x]
			}
		}
	}
	return total
}
