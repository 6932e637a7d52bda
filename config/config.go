// Package config loads TOML vehicle and world descriptions and builds runnable scenes from them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rayvehicle/asset"
	"github.com/lixenwraith/rayvehicle/parameter"
	"github.com/lixenwraith/rayvehicle/vehicle"
)

var (
	ErrNoWheels        = errors.New("config: vehicle has no wheels")
	ErrUnknownCollider = errors.New("config: unknown collider kind")
	ErrUnknownDrive    = errors.New("config: unknown drive layout")
	ErrUnknownKey      = errors.New("config: unknown key")
	ErrInvalidValue    = errors.New("config: invalid value")
)

// Collider kinds
const (
	KindPlane    = "plane"
	KindBox      = "box"
	KindTriangle = "triangle"
)

// Drive layouts
const (
	DriveRear  = "rear"
	DriveFront = "front"
	DriveAll   = "all"
)

// Vehicle is a complete scene description: world, chassis, wheels and driver limits
type Vehicle struct {
	World   World   `toml:"world"`
	Chassis Chassis `toml:"chassis"`
	Axes    Axes    `toml:"axes"`
	Tuning  Tuning  `toml:"tuning"`
	Wheels  []Wheel `toml:"wheel"`
	Control Control `toml:"control"`
}

type World struct {
	Gravity     *[3]float64 `toml:"gravity"` // nil: DefaultGravity along -up
	FixedStep   float64     `toml:"fixed_step"`
	MaxSubSteps int         `toml:"max_sub_steps"`
	Colliders   []Collider  `toml:"collider"`
}

// Collider describes static geometry; fields unused by a kind are ignored
type Collider struct {
	Name        string       `toml:"name"`
	Kind        string       `toml:"kind"`
	Position    [3]float64   `toml:"position"`
	Normal      [3]float64   `toml:"normal"`
	HalfExtents [3]float64   `toml:"half_extents"`
	Vertices    [][3]float64 `toml:"vertices"`
	Response    *bool        `toml:"response"` // nil: true
}

// Responds reports whether wheel rays hit the collider
func (c Collider) Responds() bool {
	return c.Response == nil || *c.Response
}

type Chassis struct {
	Mass           float64    `toml:"mass"`
	HalfExtents    [3]float64 `toml:"half_extents"`
	Position       [3]float64 `toml:"position"`
	LinearDamping  float64    `toml:"linear_damping"`
	AngularDamping float64    `toml:"angular_damping"`
}

type Axes struct {
	Right   int `toml:"right"`
	Up      int `toml:"up"`
	Forward int `toml:"forward"`
}

// CoordinateSystem converts to the vehicle axis selector
func (a Axes) CoordinateSystem() vehicle.CoordinateSystem {
	return vehicle.CoordinateSystem{Right: a.Right, Up: a.Up, Forward: a.Forward}
}

type Tuning struct {
	SuspensionStiffness   float64 `toml:"suspension_stiffness"`
	SuspensionCompression float64 `toml:"suspension_compression"`
	SuspensionDamping     float64 `toml:"suspension_damping"`
	MaxSuspensionTravelCm float64 `toml:"max_suspension_travel_cm"`
	FrictionSlip          float64 `toml:"friction_slip"`
	MaxSuspensionForce    float64 `toml:"max_suspension_force"`
	RollInfluence         float64 `toml:"roll_influence"`
}

// TuningOverride replaces individual tuning values for one wheel
type TuningOverride struct {
	SuspensionStiffness   *float64 `toml:"suspension_stiffness"`
	SuspensionCompression *float64 `toml:"suspension_compression"`
	SuspensionDamping     *float64 `toml:"suspension_damping"`
	MaxSuspensionTravelCm *float64 `toml:"max_suspension_travel_cm"`
	FrictionSlip          *float64 `toml:"friction_slip"`
	MaxSuspensionForce    *float64 `toml:"max_suspension_force"`
	RollInfluence         *float64 `toml:"roll_influence"`
}

type Wheel struct {
	Connection [3]float64      `toml:"connection"`
	Direction  [3]float64      `toml:"direction"`
	Axle       [3]float64      `toml:"axle"`
	RestLength float64         `toml:"rest_length"`
	Radius     float64         `toml:"radius"`
	Front      bool            `toml:"front"`
	Tuning     *TuningOverride `toml:"tuning"`
}

// Control bounds driver input
type Control struct {
	Drive          string  `toml:"drive"`
	MaxEngineForce float64 `toml:"max_engine_force"`
	MaxBrake       float64 `toml:"max_brake"`
	SteeringClamp  float64 `toml:"steering_clamp"` // radians
	SteeringRate   float64 `toml:"steering_rate"`  // radians per second
}

// Config returns the vehicle wheel description
func (w Wheel) Config() vehicle.WheelConfig {
	return vehicle.WheelConfig{
		ConnectionPointCS:    mgl64.Vec3(w.Connection),
		WheelDirectionCS:     mgl64.Vec3(w.Direction),
		WheelAxleCS:          mgl64.Vec3(w.Axle),
		SuspensionRestLength: w.RestLength,
		Radius:               w.Radius,
		IsFront:              w.Front,
	}
}

// Resolve merges the wheel override into base
func (w Wheel) Resolve(base Tuning) Tuning {
	o := w.Tuning
	if o == nil {
		return base
	}
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&base.SuspensionStiffness, o.SuspensionStiffness)
	set(&base.SuspensionCompression, o.SuspensionCompression)
	set(&base.SuspensionDamping, o.SuspensionDamping)
	set(&base.MaxSuspensionTravelCm, o.MaxSuspensionTravelCm)
	set(&base.FrictionSlip, o.FrictionSlip)
	set(&base.MaxSuspensionForce, o.MaxSuspensionForce)
	set(&base.RollInfluence, o.RollInfluence)
	return base
}

// Vehicle returns the tuning in vehicle package form; roll influence is applied per wheel
func (t Tuning) Vehicle() vehicle.Tuning {
	return vehicle.Tuning{
		SuspensionStiffness:   t.SuspensionStiffness,
		SuspensionCompression: t.SuspensionCompression,
		SuspensionDamping:     t.SuspensionDamping,
		MaxSuspensionTravelCm: t.MaxSuspensionTravelCm,
		FrictionSlip:          t.FrictionSlip,
		MaxSuspensionForce:    t.MaxSuspensionForce,
	}
}

// defaults is the decode target before TOML values are applied
func defaults() Vehicle {
	dt := vehicle.DefaultTuning()
	cs := vehicle.DefaultCoordinateSystem()
	return Vehicle{
		World: World{
			FixedStep:   parameter.DefaultFixedTimeStep,
			MaxSubSteps: parameter.DefaultMaxSubSteps,
		},
		Axes: Axes{Right: cs.Right, Up: cs.Up, Forward: cs.Forward},
		Tuning: Tuning{
			SuspensionStiffness:   dt.SuspensionStiffness,
			SuspensionCompression: dt.SuspensionCompression,
			SuspensionDamping:     dt.SuspensionDamping,
			MaxSuspensionTravelCm: dt.MaxSuspensionTravelCm,
			FrictionSlip:          dt.FrictionSlip,
			MaxSuspensionForce:    dt.MaxSuspensionForce,
			RollInfluence:         parameter.DefaultRollInfluence,
		},
		Control: Control{
			Drive:          DriveRear,
			MaxEngineForce: parameter.DefaultMaxEngineForce,
			MaxBrake:       parameter.DefaultMaxBrake,
			SteeringClamp:  parameter.DefaultSteeringClamp,
			SteeringRate:   parameter.DefaultSteeringRate,
		},
	}
}

// Parse decodes a TOML description, fills defaults and validates it
func Parse(data []byte) (*Vehicle, error) {
	cfg := defaults()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode vehicle config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	if cfg.World.Gravity == nil {
		var g [3]float64
		if cfg.Axes.Up >= 0 && cfg.Axes.Up < 3 {
			g[cfg.Axes.Up] = -parameter.DefaultGravity
		}
		cfg.World.Gravity = &g
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and parses a TOML description from path
func Load(path string) (*Vehicle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vehicle config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Default parses the built-in description; it panics if the embedded asset is invalid
func Default() *Vehicle {
	cfg, err := Parse([]byte(asset.DefaultVehicleConfig))
	if err != nil {
		panic(fmt.Sprintf("default vehicle config: %v", err))
	}
	return cfg
}

// Validate checks value ranges and cross-field consistency
func (v *Vehicle) Validate() error {
	if err := v.Axes.CoordinateSystem().Validate(); err != nil {
		return err
	}
	if v.World.FixedStep <= 0 {
		return fmt.Errorf("%w: world.fixed_step %g must be positive", ErrInvalidValue, v.World.FixedStep)
	}
	if v.World.MaxSubSteps < 0 {
		return fmt.Errorf("%w: world.max_sub_steps %d must not be negative", ErrInvalidValue, v.World.MaxSubSteps)
	}
	for i, c := range v.World.Colliders {
		if err := c.validate(); err != nil {
			return fmt.Errorf("world.collider[%d] %q: %w", i, c.Name, err)
		}
	}

	if v.Chassis.Mass <= 0 {
		return fmt.Errorf("%w: chassis.mass %g must be positive", ErrInvalidValue, v.Chassis.Mass)
	}
	for i, h := range v.Chassis.HalfExtents {
		if h <= 0 {
			return fmt.Errorf("%w: chassis.half_extents[%d] %g must be positive", ErrInvalidValue, i, h)
		}
	}

	if err := v.Tuning.validate(); err != nil {
		return fmt.Errorf("tuning: %w", err)
	}

	if len(v.Wheels) == 0 {
		return ErrNoWheels
	}
	for i, w := range v.Wheels {
		if err := w.validate(v.Tuning); err != nil {
			return fmt.Errorf("wheel[%d]: %w", i, err)
		}
	}

	switch v.Control.Drive {
	case DriveRear, DriveFront, DriveAll:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDrive, v.Control.Drive)
	}
	if v.Control.MaxEngineForce < 0 || v.Control.MaxBrake < 0 || v.Control.SteeringClamp < 0 || v.Control.SteeringRate < 0 {
		return fmt.Errorf("%w: control limits must not be negative", ErrInvalidValue)
	}
	return nil
}

func (c Collider) validate() error {
	switch c.Kind {
	case KindPlane:
		if mgl64.Vec3(c.Normal).Len() == 0 {
			return fmt.Errorf("%w: plane normal is zero", ErrInvalidValue)
		}
	case KindBox:
		for _, h := range c.HalfExtents {
			if h <= 0 {
				return fmt.Errorf("%w: box half_extents must be positive", ErrInvalidValue)
			}
		}
	case KindTriangle:
		if len(c.Vertices) != 3 {
			return fmt.Errorf("%w: triangle needs 3 vertices, got %d", ErrInvalidValue, len(c.Vertices))
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCollider, c.Kind)
	}
	return nil
}

func (t Tuning) validate() error {
	switch {
	case t.SuspensionStiffness < 0:
		return fmt.Errorf("%w: suspension_stiffness must not be negative", ErrInvalidValue)
	case t.SuspensionCompression < 0 || t.SuspensionDamping < 0:
		return fmt.Errorf("%w: suspension damping must not be negative", ErrInvalidValue)
	case t.MaxSuspensionTravelCm < 0:
		return fmt.Errorf("%w: max_suspension_travel_cm must not be negative", ErrInvalidValue)
	case t.FrictionSlip < 0:
		return fmt.Errorf("%w: friction_slip must not be negative", ErrInvalidValue)
	case t.MaxSuspensionForce < 0:
		return fmt.Errorf("%w: max_suspension_force must not be negative", ErrInvalidValue)
	case t.RollInfluence < 0 || t.RollInfluence > 1:
		return fmt.Errorf("%w: roll_influence %g outside [0,1]", ErrInvalidValue, t.RollInfluence)
	}
	return nil
}

func (w Wheel) validate(base Tuning) error {
	if w.Radius <= 0 {
		return fmt.Errorf("%w: radius %g must be positive", ErrInvalidValue, w.Radius)
	}
	if w.RestLength < 0 {
		return fmt.Errorf("%w: rest_length %g must not be negative", ErrInvalidValue, w.RestLength)
	}
	if mgl64.Vec3(w.Direction).Len() == 0 {
		return fmt.Errorf("%w: direction is zero", ErrInvalidValue)
	}
	if mgl64.Vec3(w.Axle).Len() == 0 {
		return fmt.Errorf("%w: axle is zero", ErrInvalidValue)
	}
	return w.Resolve(base).validate()
}
