package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/lixenwraith/rayvehicle/config"
)

// script is the constant input replayed every step
type script struct {
	Steps    int
	Throttle float64
	Steer    float64
	BrakeAt  int // step from which full brake is held and throttle released, <0 disables
	Every    int // emit one row per Every steps
}

func (s script) controls(step int) config.Controls {
	c := config.Controls{Throttle: s.Throttle, Steering: s.Steer}
	if s.BrakeAt >= 0 && step >= s.BrakeAt {
		c.Throttle, c.Brake = 0, 1
	}
	return c
}

var wheelColumns = []string{"contact", "length", "force", "skid", "rotation", "fwd_imp", "side_imp"}

func header(wheels int) []string {
	h := []string{"step", "time", "x", "y", "z", "speed_kmh", "steering", "sliding"}
	for i := range wheels {
		for _, c := range wheelColumns {
			h = append(h, fmt.Sprintf("w%d_%s", i, c))
		}
	}
	return h
}

// runTrace steps the scene at its fixed time step and writes a CSV row per sampled step
// Returns the number of data rows written
func runTrace(w io.Writer, scene *config.Scene, s script) (int, error) {
	out := csv.NewWriter(w)
	v := scene.Vehicle
	if err := out.Write(header(v.NumWheels())); err != nil {
		return 0, err
	}

	dt := scene.World.FixedTimeStep()
	every := max(s.Every, 1)
	f := func(x float64) string { return strconv.FormatFloat(x, 'f', 5, 64) }

	rows := 0
	for step := 1; step <= s.Steps; step++ {
		scene.Drive(s.controls(step), dt)
		scene.Step(dt)
		if step%every != 0 && step != s.Steps {
			continue
		}

		p := scene.Chassis.CenterOfMassPosition()
		rec := []string{
			strconv.Itoa(step), f(float64(step) * dt),
			f(p.X()), f(p.Y()), f(p.Z()),
			f(v.CurrentSpeedKmHour()), f(scene.Steering()), strconv.FormatBool(v.Sliding()),
		}
		for i := range v.NumWheels() {
			wh := v.Wheel(i)
			fwd, side := v.FrictionImpulse(i)
			rec = append(rec,
				strconv.FormatBool(wh.Raycast.InContact),
				f(wh.Raycast.SuspensionLength), f(wh.SuspensionForce), f(wh.SkidInfo),
				f(wh.Rotation), f(fwd), f(side))
		}
		if err := out.Write(rec); err != nil {
			return rows, err
		}
		rows++
	}
	out.Flush()
	return rows, out.Error()
}
