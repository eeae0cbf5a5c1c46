package io

import (
	"gopkg.in/gcfg.v1"
)

const ExampleRunFile = `[Run]

#######################
# Required Parameters #
#######################

# The parameter file: seven whitespace-separated tokens in the order
# nx, ny, maxIters, reynolds_dim, density, accel, omega.
ParamFile = path/to/input.params

# The obstacle file: one "x y 1" line per blocked cell. An empty file leaves
# the channel unobstructed.
ObstacleFile = path/to/obstacles.dat

#######################
# Optional Parameters #
#######################

# Directory which final_state.dat and av_vels.dat are written to. Default is
# the working directory.
# OutputDir = path/to/output/dir

# Number of worker threads. Default is the number of logical cores.
# Threads = 4

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`

// RunConfig specifies one run of the simulation. Command-line arguments take
// precedence over the values given here.
type RunConfig struct {
	// Required
	ParamFile    string
	ObstacleFile string

	// Optional
	OutputDir   string
	Threads     int
	LogFile     string
	ProfileFile string
}

// RunWrapper contains the [Run] section of a config file.
type RunWrapper struct {
	Run RunConfig
}

// ReadRunConfig reads a [Run] section from the given config file.
func ReadRunConfig(fname string) (*RunConfig, error) {
	wrap := &RunWrapper{}
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return &wrap.Run, nil
}

func (con *RunConfig) ValidParamFile() bool    { return con.ParamFile != "" }
func (con *RunConfig) ValidObstacleFile() bool { return con.ObstacleFile != "" }
func (con *RunConfig) ValidOutputDir() bool    { return con.OutputDir != "" }
func (con *RunConfig) ValidThreads() bool      { return con.Threads > 0 }
func (con *RunConfig) ValidLogFile() bool      { return con.LogFile != "" }
func (con *RunConfig) ValidProfileFile() bool  { return con.ProfileFile != "" }
