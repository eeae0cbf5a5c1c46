package lbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(nx, ny int) Params {
	return Params{
		NX: nx, NY: ny,
		MaxIters:    10,
		ReynoldsDim: nx,
		Density:     0.1,
		Accel:       0.005,
		Omega:       1.0,
	}
}

func newTestSimulator(t *testing.T, p Params, obstacles []bool) *Simulator {
	if obstacles == nil {
		obstacles = make([]bool, p.NX*p.NY)
	}
	s, err := NewSimulator(p, obstacles, 2)
	require.NoError(t, err)
	return s
}

func TestInitEquilibriumDensity(t *testing.T) {
	d := NewDist(8, 4)
	d.InitEquilibrium(0.1)

	// w0 + 4*w1 + 4*w2 recovers the rest density in every cell.
	assert.InEpsilon(t, 0.1*8*4, float64(d.TotalDensity()), 1e-6)
	assert.InEpsilon(t, 0.1, float64(
		d.At(0, 1, 1)+
			d.At(1, 1, 1)+d.At(2, 1, 1)+d.At(3, 1, 1)+d.At(4, 1, 1)+
			d.At(5, 1, 1)+d.At(6, 1, 1)+d.At(7, 1, 1)+d.At(8, 1, 1),
	), 1e-6)
}

func TestAccelerateRow(t *testing.T) {
	p := testParams(8, 8)
	obstacles := make([]bool, p.NX*p.NY)
	obstacles[(p.NY-2)*p.NX+3] = true
	s := newTestSimulator(t, p, obstacles)

	w1 := p.Density / 9
	w2 := p.Density / 36

	s.runStage(s.chanAccelerate)

	row := p.NY - 2
	for x := 0; x < p.NX; x++ {
		if x == 3 {
			// the obstructed column is untouched
			assert.Equal(t, w1, s.cells.At(1, row, x), "blocked column")
			assert.Equal(t, w1, s.cells.At(3, row, x), "blocked column")
			continue
		}
		assert.Equal(t, w1+s.accelD1, s.cells.At(1, row, x))
		assert.Equal(t, w1-s.accelD1, s.cells.At(3, row, x))
		assert.Equal(t, w2+s.accelD2, s.cells.At(5, row, x))
		assert.Equal(t, w2-s.accelD2, s.cells.At(6, row, x))
		assert.Equal(t, w2-s.accelD2, s.cells.At(7, row, x))
		assert.Equal(t, w2+s.accelD2, s.cells.At(8, row, x))
	}

	// Rows other than ny-2 are untouched.
	for _, y := range []int{0, row - 1, row + 1} {
		for x := 0; x < p.NX; x++ {
			assert.Equal(t, w1, s.cells.At(1, y, x))
		}
	}
}

func TestAccelerateStrictPrecondition(t *testing.T) {
	// density*accel/9 equals the initial westward population exactly, so the
	// decrement would not stay strictly positive and every column is skipped.
	p := testParams(8, 8)
	p.Accel = 1.0
	s := newTestSimulator(t, p, nil)

	before := make([]float32, len(s.cells.F))
	copy(before, s.cells.F)

	s.runStage(s.chanAccelerate)

	assert.Equal(t, before, s.cells.F)

	// The post-condition: no column was driven to a non-positive density.
	row := p.NY - 2
	for x := 0; x < p.NX; x++ {
		assert.Greater(t, s.cells.At(3, row, x), float32(0))
		assert.Greater(t, s.cells.At(6, row, x), float32(0))
		assert.Greater(t, s.cells.At(7, row, x), float32(0))
	}
}

func TestPropagatePeriodicWrap(t *testing.T) {
	p := testParams(4, 3)
	s := newTestSimulator(t, p, nil)

	// Tag every population with a value that encodes (k, y, x).
	for k := 0; k < NSpeeds; k++ {
		for y := 0; y < p.NY; y++ {
			for x := 0; x < p.NX; x++ {
				s.cells.F[s.cells.Idx(k, y, x)] =
					float32(100*k + 10*y + x)
			}
		}
	}

	s.runStage(s.chanPropagate)

	table := []struct {
		k        int
		y, x     int
		srcY, srcX int
	}{
		{0, 1, 1, 1, 1},
		{1, 1, 1, 1, 0},
		{1, 1, 0, 1, 3}, // west wrap
		{2, 1, 1, 0, 1},
		{2, 0, 1, 2, 1}, // south wrap
		{3, 1, 3, 1, 0}, // east wrap
		{4, 2, 1, 0, 1}, // north wrap
		{5, 0, 0, 2, 3}, // south-west corner wrap
		{6, 1, 2, 0, 3},
		{7, 1, 2, 2, 3},
		{8, 0, 0, 1, 3},
	}
	for i, test := range table {
		got := s.tmp.At(test.k, test.y, test.x)
		want := float32(100*test.k + 10*test.srcY + test.srcX)
		assert.Equal(t, want, got, "case %d", i)
	}
}

func TestPropagateCachesMoments(t *testing.T) {
	p := testParams(4, 4)
	s := newTestSimulator(t, p, nil)

	s.runStage(s.chanPropagate)

	// At rest every cell carries the full link density with zero velocity.
	for i := 0; i < p.NX*p.NY; i++ {
		assert.InEpsilon(t, 0.1, float64(s.rho[i]), 1e-6)
		assert.Equal(t, float32(0), s.ux[i])
		assert.Equal(t, float32(0), s.uy[i])
	}
}

func TestBounceBackIsInvolution(t *testing.T) {
	for k := 0; k < NSpeeds; k++ {
		assert.Equal(t, k, bounceBack[bounceBack[k]], "speed %d", k)
	}
}

func TestBounceBackReflectsSolidCells(t *testing.T) {
	p := testParams(3, 3)
	obstacles := make([]bool, p.NX*p.NY)
	for i := range obstacles {
		obstacles[i] = true
	}
	s := newTestSimulator(t, p, obstacles)

	for k := 0; k < NSpeeds; k++ {
		for y := 0; y < p.NY; y++ {
			for x := 0; x < p.NX; x++ {
				s.cells.F[s.cells.Idx(k, y, x)] =
					float32(100*k + 10*y + x + 1)
			}
		}
	}
	rest := s.cells.At(0, 1, 1)

	s.runStage(s.chanPropagate)
	s.runStage(s.chanCollide)

	for y := 0; y < p.NY; y++ {
		for x := 0; x < p.NX; x++ {
			for k := 1; k < NSpeeds; k++ {
				assert.Equal(t,
					s.tmp.At(bounceBack[k], y, x), s.cells.At(k, y, x),
					"speed %d at (%d, %d)", k, y, x,
				)
			}
		}
	}

	// The rest population of a solid cell is never rewritten.
	assert.Equal(t, rest, s.cells.At(0, 1, 1))
}

func TestCollideConservesDensityAtRest(t *testing.T) {
	p := testParams(6, 6)
	s := newTestSimulator(t, p, nil)

	before := s.cells.TotalDensity()
	s.runStage(s.chanPropagate)
	s.runStage(s.chanCollide)

	assert.InEpsilon(t, float64(before), float64(s.cells.TotalDensity()), 1e-6)

	// A resting fluid is already at equilibrium, so the relaxation is a
	// fixed point.
	w1 := p.Density / 9
	for y := 0; y < p.NY; y++ {
		for x := 0; x < p.NX; x++ {
			assert.InDelta(t, float64(w1), float64(s.cells.At(1, y, x)), 1e-7)
		}
	}
}
