package lbm

import (
	"fmt"
	"runtime"
)

// Simulator advances a nine-speed lattice over a fixed obstacle map. The
// authoritative state lives in cells at the end of every timestep; tmp holds
// the post-streaming populations and is rewritten each step.
type Simulator struct {
	params Params

	cells, tmp *Dist
	obstacles  []bool
	fluidCells int

	// Post-streaming macroscopic moments, scratch reused every timestep.
	// The entries for solid cells are never read.
	rho, ux, uy []float32

	// Per-row partial sums for the average-velocity reduction.
	rowU []float32

	accelRow         int
	accelD1, accelD2 float32

	workers int
	avVels  []float32
}

// NewSimulator validates the parameters, allocates the grids and sets every
// cell to the rest-density equilibrium. The obstacle mask is row-major with
// true marking solid cells. A non-positive worker count selects one worker
// per logical core.
func NewSimulator(params Params, obstacles []bool, workers int) (*Simulator, error) {
	if err := params.Check(); err != nil {
		return nil, err
	}
	if len(obstacles) != params.NX*params.NY {
		return nil, fmt.Errorf(
			"The obstacle mask has %d cells, but the grid is %d x %d.",
			len(obstacles), params.NX, params.NY,
		)
	}

	if workers < 1 {
		workers = runtime.NumCPU()
	}
	runtime.GOMAXPROCS(workers)

	fluidCells := 0
	for _, blocked := range obstacles {
		if !blocked {
			fluidCells++
		}
	}

	s := &Simulator{
		params:     params,
		cells:      NewDist(params.NX, params.NY),
		tmp:        NewDist(params.NX, params.NY),
		obstacles:  obstacles,
		fluidCells: fluidCells,

		rho:  make([]float32, params.NX*params.NY),
		ux:   make([]float32, params.NX*params.NY),
		uy:   make([]float32, params.NX*params.NY),
		rowU: make([]float32, params.NY),

		accelRow: params.NY - 2,
		accelD1:  params.Density * params.Accel / 9.0,
		accelD2:  params.Density * params.Accel / 36.0,

		workers: workers,
		avVels:  make([]float32, params.MaxIters),
	}
	s.cells.InitEquilibrium(params.Density)

	return s, nil
}

// Step advances the lattice by one timestep and records the average fluid
// speed at index t of the average-velocity log. The four stages are
// barrier-separated: a stage starts only once the previous one has finished
// on every cell.
func (s *Simulator) Step(t int) {
	s.runStage(s.chanAccelerate)
	s.runStage(s.chanPropagate)
	s.runStage(s.chanCollide)
	s.runStage(s.chanAvVelocity)
	s.avVels[t] = s.foldRowVelocities()
}

// Run advances the lattice for the configured number of timesteps and
// returns the average-velocity log.
func (s *Simulator) Run() []float32 {
	for t := 0; t < s.params.MaxIters; t++ {
		s.Step(t)
	}
	return s.avVels
}

// runStage fans a stage out across the worker pool and blocks until every
// worker has reported back on the out channel.
func (s *Simulator) runStage(stage func(worker int, out chan<- int)) {
	out := make(chan int, s.workers)
	for id := 0; id < s.workers; id++ {
		go stage(id, out)
	}
	for i := 0; i < s.workers; i++ {
		<-out
	}
}

// Params returns the parameter bundle the simulator was built with.
func (s *Simulator) Params() Params {
	return s.params
}

// Obstructed returns true if the cell at row y, column x is solid.
func (s *Simulator) Obstructed(y, x int) bool {
	return s.obstacles[y*s.params.NX+x]
}

// FluidCells returns the number of unobstructed cells.
func (s *Simulator) FluidCells() int {
	return s.fluidCells
}

// AvVels returns the average-velocity log. Entry t is valid once Step(t) has
// run.
func (s *Simulator) AvVels() []float32 {
	return s.avVels
}

// TotalDensity sums every population of the authoritative grid.
func (s *Simulator) TotalDensity() float32 {
	return s.cells.TotalDensity()
}
