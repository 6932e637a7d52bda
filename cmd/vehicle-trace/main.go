// vehicle-trace runs a vehicle headless under constant input and prints a CSV trace
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/rayvehicle/config"
)

var (
	configFlag   = flag.String("config", "", "Vehicle TOML file (default: built-in scene)")
	stepsFlag    = flag.Int("steps", 600, "Fixed steps to simulate")
	throttleFlag = flag.Float64("throttle", 0.6, "Throttle in [-1,1]")
	steerFlag    = flag.Float64("steer", 0, "Steering target in [-1,1], positive turns left")
	brakeAtFlag  = flag.Int("brake-at", -1, "Step from which to release throttle and brake fully")
	everyFlag    = flag.Int("every", 1, "Emit one row per N steps")
	outFlag      = flag.String("out", "", "Output file (default: stdout)")
)

func main() {
	flag.Parse()
	log.SetPrefix("[vehicle-trace] ")
	log.SetOutput(os.Stderr)

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	scene, err := config.BuildScene(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build scene: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create output: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	s := script{
		Steps:    *stepsFlag,
		Throttle: *throttleFlag,
		Steer:    *steerFlag,
		BrakeAt:  *brakeAtFlag,
		Every:    *everyFlag,
	}
	rows, err := runTrace(out, scene, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write trace: %v\n", err)
		os.Exit(1)
	}
	log.Printf("%d steps, %d rows, final speed %.1f km/h", s.Steps, rows, scene.Vehicle.CurrentSpeedKmHour())
}
