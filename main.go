package main

import (
	"fmt"
	"log"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"github.com/rossng/COMS30004-assignment-01-new/io"
	"github.com/rossng/COMS30004-assignment-01-new/lbm"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		paramFile, obstacleFile string
		configFile              string
		threads                 int
		verbose                 bool
		exampleConfig           bool
	)

	flaggy.SetName("d2q9-bgk")
	flaggy.SetDescription(
		"d2q9-bgk lattice Boltzmann simulation of channel flow",
	)
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.String(&configFile, "c", "config",
		"Run configuration file with a [Run] section.")
	flaggy.Int(&threads, "t", "threads",
		"Number of worker threads. Default is the number of logical cores.")
	flaggy.Bool(&verbose, "v", "verbose",
		"Log average velocity and total density every 100 timesteps.")
	flaggy.Bool(&exampleConfig, "e", "example-config",
		"Print an example run configuration file to stdout and exit.")
	flaggy.AddPositionalValue(&paramFile, "paramfile", 1, false,
		"Input parameter file.")
	flaggy.AddPositionalValue(&obstacleFile, "obstaclefile", 2, false,
		"Input obstacle file.")

	flaggy.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleRunFile)
		return
	}

	// Merge the optional config file underneath the command line.
	outputDir := "."
	fg := new(FileGroup)
	if configFile != "" {
		con, err := io.ReadRunConfig(configFile)
		if err != nil {
			log.Fatal(err.Error())
		}

		if paramFile == "" && con.ValidParamFile() {
			paramFile = con.ParamFile
		}
		if obstacleFile == "" && con.ValidObstacleFile() {
			obstacleFile = con.ObstacleFile
		}
		if con.ValidOutputDir() {
			outputDir = con.OutputDir
		}
		if threads == 0 && con.ValidThreads() {
			threads = con.Threads
		}

		if con.ValidLogFile() {
			fg.log, err = os.Create(con.LogFile)
			if err != nil {
				log.Fatal(err.Error())
			}
			log.SetOutput(fg.log)
		}
		if con.ValidProfileFile() {
			fg.prof, err = os.Create(con.ProfileFile)
			if err != nil {
				log.Fatal(err.Error())
			}
			err = pprof.StartCPUProfile(fg.prof)
			if err != nil {
				log.Fatal(err.Error())
			}
		}
	}
	defer fg.Close()

	if paramFile == "" || obstacleFile == "" {
		flaggy.ShowHelpAndExit(
			"A parameter file and an obstacle file are required.",
		)
	}
	if threads == 0 {
		threads = runtime.NumCPU()
	}

	params, err := io.ReadParams(paramFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	obstacles, err := io.ReadObstacles(obstacleFile, params)
	if err != nil {
		log.Fatal(err.Error())
	}
	sim, err := lbm.NewSimulator(params, obstacles, threads)
	if err != nil {
		log.Fatal(err.Error())
	}

	tic := time.Now()
	for t := 0; t < params.MaxIters; t++ {
		sim.Step(t)
		if verbose && t%100 == 0 {
			log.Printf("timestep %d: av velocity %.12E, total density %.12E",
				t, sim.AvVels()[t], sim.TotalDensity())
		}
	}
	elapsed := time.Since(tic).Seconds()
	usr, sys := cpuTimes()

	fmt.Println("==done==")
	fmt.Printf("%s:\t\t%.12E\n",
		aurora.Green("Reynolds number"), sim.Reynolds())
	fmt.Printf("%s:\t\t\t%.6f (s)\n",
		aurora.Cyan("Elapsed time"), elapsed)
	fmt.Printf("%s:\t\t%.6f (s)\n",
		aurora.Cyan("Elapsed user CPU time"), usr)
	fmt.Printf("%s:\t%.6f (s)\n",
		aurora.Cyan("Elapsed system CPU time"), sys)

	err = io.WriteFinalState(path.Join(outputDir, io.FinalStateFile), sim)
	if err != nil {
		log.Fatal(err.Error())
	}
	err = io.WriteAvVels(path.Join(outputDir, io.AvVelsFile), sim.AvVels())
	if err != nil {
		log.Fatal(err.Error())
	}
}

// cpuTimes returns the user and system CPU time consumed so far, in seconds.
func cpuTimes() (usr, sys float64) {
	var ru syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &ru); err != nil {
		return 0, 0
	}
	usr = float64(ru.Utime.Sec) + float64(ru.Utime.Usec)/1e6
	sys = float64(ru.Stime.Sec) + float64(ru.Stime.Usec)/1e6
	return usr, sys
}
