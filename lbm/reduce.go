package lbm

// cSq is the square of the lattice speed of sound.
const cSq = 1.0 / 3.0

// rowVelocitySum accumulates |u| over the fluid cells of one row of the
// authoritative grid. The cached moments from the streaming stage are stale
// here because the collision stage has rewritten the grid.
func (s *Simulator) rowVelocitySum(y int) float32 {
	nx, area := s.params.NX, s.cells.Area
	f := s.cells.F

	var tot float32
	for x := 0; x < nx; x++ {
		i := y*nx + x
		if s.obstacles[i] {
			continue
		}

		var rho float32
		for k := 0; k < NSpeeds; k++ {
			rho += f[k*area+i]
		}

		ux := (f[1*area+i] + f[5*area+i] + f[8*area+i] -
			(f[3*area+i] + f[6*area+i] + f[7*area+i])) / rho
		uy := (f[2*area+i] + f[5*area+i] + f[6*area+i] -
			(f[4*area+i] + f[7*area+i] + f[8*area+i])) / rho

		tot += fastSqrt(ux*ux + uy*uy)
	}
	return tot
}

// chanAvVelocity fills the per-row partial sums of the average-velocity
// reduction, striding rows by worker id. Each row is written by exactly one
// worker.
func (s *Simulator) chanAvVelocity(worker int, out chan<- int) {
	for y := worker; y < s.params.NY; y += s.workers {
		s.rowU[y] = s.rowVelocitySum(y)
	}
	out <- worker
}

// foldRowVelocities folds the per-row sums in ascending row order, so the
// reduction result is independent of worker scheduling.
func (s *Simulator) foldRowVelocities() float32 {
	var tot float32
	for _, u := range s.rowU {
		tot += u
	}
	return tot / float32(s.fluidCells)
}

// AvVelocity recomputes the current average fluid speed from the
// authoritative grid.
func (s *Simulator) AvVelocity() float32 {
	for y := 0; y < s.params.NY; y++ {
		s.rowU[y] = s.rowVelocitySum(y)
	}
	return s.foldRowVelocities()
}

// Reynolds returns the Reynolds number of the current flow, using the
// configured characteristic length and the kinematic viscosity implied by
// the relaxation parameter.
func (s *Simulator) Reynolds() float32 {
	viscosity := 1.0 / 6.0 * (2.0/s.params.Omega - 1.0)
	return s.AvVelocity() * float32(s.params.ReynoldsDim) / viscosity
}

// Macroscopic returns the velocity components, speed and pressure of one
// cell of the authoritative grid. Solid cells report zero velocity and the
// pressure of the initial rest density.
func (s *Simulator) Macroscopic(y, x int) (ux, uy, u, pressure float32) {
	i := y*s.params.NX + x
	if s.obstacles[i] {
		return 0, 0, 0, s.params.Density * cSq
	}

	f, area := s.cells.F, s.cells.Area
	var rho float32
	for k := 0; k < NSpeeds; k++ {
		rho += f[k*area+i]
	}

	ux = (f[1*area+i] + f[5*area+i] + f[8*area+i] -
		(f[3*area+i] + f[6*area+i] + f[7*area+i])) / rho
	uy = (f[2*area+i] + f[5*area+i] + f[6*area+i] -
		(f[4*area+i] + f[7*area+i] + f[8*area+i])) / rho
	u = fastSqrt(ux*ux + uy*uy)

	return ux, uy, u, rho * cSq
}
