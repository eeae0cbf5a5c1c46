package lbm

// Equilibrium weights for the rest, axis and diagonal speeds.
const (
	w0    = 4.0 / 9.0
	wAxis = 1.0 / 9.0
	wDiag = 1.0 / 36.0
)

// bounceBack maps each speed to its oppositely oriented partner.
var bounceBack = [NSpeeds]int{0, 3, 4, 1, 2, 7, 8, 5, 6}

// chanAccelerate injects momentum along the second-to-top row, striding
// columns by worker id. A column is skipped if it is obstructed or if any of
// the decremented populations would not stay strictly positive.
func (s *Simulator) chanAccelerate(worker int, out chan<- int) {
	nx, area := s.params.NX, s.cells.Area
	f := s.cells.F
	base := s.accelRow * nx

	for x := worker; x < nx; x += s.workers {
		i := base + x
		if s.obstacles[i] {
			continue
		}
		if f[3*area+i]-s.accelD1 > 0 &&
			f[6*area+i]-s.accelD2 > 0 &&
			f[7*area+i]-s.accelD2 > 0 {
			// increase the east-side densities
			f[1*area+i] += s.accelD1
			f[5*area+i] += s.accelD2
			f[8*area+i] += s.accelD2
			// decrease the west-side densities
			f[3*area+i] -= s.accelD1
			f[6*area+i] -= s.accelD2
			f[7*area+i] -= s.accelD2
		}
	}

	out <- worker
}

// chanPropagate streams each population from the neighbour it points away
// from, with periodic wrap in both directions, writing into the scratch grid.
// It also caches the macroscopic moments of every cell for the collision
// stage, striding rows by worker id.
func (s *Simulator) chanPropagate(worker int, out chan<- int) {
	nx, ny, area := s.params.NX, s.params.NY, s.cells.Area
	src, dst := s.cells.F, s.tmp.F

	for y := worker; y < ny; y += s.workers {
		yn := (y + 1) % ny
		ys := y - 1
		if ys < 0 {
			ys = ny - 1
		}

		for x := 0; x < nx; x++ {
			xe := (x + 1) % nx
			xw := x - 1
			if xw < 0 {
				xw = nx - 1
			}

			i := y*nx + x
			t0 := src[0*area+i]
			t1 := src[1*area+y*nx+xw]
			t2 := src[2*area+ys*nx+x]
			t3 := src[3*area+y*nx+xe]
			t4 := src[4*area+yn*nx+x]
			t5 := src[5*area+ys*nx+xw]
			t6 := src[6*area+ys*nx+xe]
			t7 := src[7*area+yn*nx+xe]
			t8 := src[8*area+yn*nx+xw]

			dst[0*area+i] = t0
			dst[1*area+i] = t1
			dst[2*area+i] = t2
			dst[3*area+i] = t3
			dst[4*area+i] = t4
			dst[5*area+i] = t5
			dst[6*area+i] = t6
			dst[7*area+i] = t7
			dst[8*area+i] = t8

			rho := t0 + t1 + t2 + t3 + t4 + t5 + t6 + t7 + t8
			s.rho[i] = rho
			s.ux[i] = (t1 + t5 + t8 - (t3 + t6 + t7)) / rho
			s.uy[i] = (t2 + t5 + t6 - (t4 + t7 + t8)) / rho
		}
	}

	out <- worker
}

// chanCollide writes the post-collision populations back into the main grid,
// striding rows by worker id. Fluid cells relax toward the local equilibrium;
// solid cells reflect each post-streaming population back the way it came.
// The rest population of a solid cell is left alone: it is never read again.
func (s *Simulator) chanCollide(worker int, out chan<- int) {
	nx, ny, area := s.params.NX, s.params.NY, s.cells.Area
	omega := s.params.Omega
	src, dst := s.tmp.F, s.cells.F

	for y := worker; y < ny; y += s.workers {
		for x := 0; x < nx; x++ {
			i := y*nx + x

			if s.obstacles[i] {
				for k := 1; k < NSpeeds; k++ {
					dst[k*area+i] = src[bounceBack[k]*area+i]
				}
				continue
			}

			rho, ux, uy := s.rho[i], s.ux[i], s.uy[i]

			var eq [NSpeeds]float32
			eq[0] = w0 * rho * (1.0 - (ux*ux+uy*uy)*1.5)
			eq[1] = wAxis * rho * (ux*(3.0*ux+3.0) - 1.5*uy*uy + 1.0)
			eq[2] = wAxis * rho * (-1.5*ux*ux + uy*(3.0*uy+3.0) + 1.0)
			eq[3] = wAxis * rho * (ux*(3.0*ux-3.0) - 1.5*uy*uy + 1.0)
			eq[4] = wAxis * rho * (-1.5*ux*ux + uy*(3.0*uy-3.0) + 1.0)
			eq[5] = wDiag * rho * (ux*(3.0*ux+9.0*uy+3.0) + uy*(3.0*uy+3.0) + 1.0)
			eq[6] = wDiag * rho * (uy*(-9.0*ux+3.0*uy+3.0) + ux*(3.0*ux-3.0) + 1.0)
			eq[7] = wDiag * rho * (ux*(3.0*ux+9.0*uy-3.0) + uy*(3.0*uy-3.0) + 1.0)
			eq[8] = wDiag * rho * (uy*(-9.0*ux+3.0*uy-3.0) + ux*(3.0*ux+3.0) + 1.0)

			for k := 0; k < NSpeeds; k++ {
				dst[k*area+i] = src[k*area+i] + omega*(eq[k]-src[k*area+i])
			}
		}
	}

	out <- worker
}
