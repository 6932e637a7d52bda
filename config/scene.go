package config

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rayvehicle/physics"
	"github.com/lixenwraith/rayvehicle/vehicle"
	"github.com/lixenwraith/rayvehicle/vmath"
)

// Controls is normalized driver input
type Controls struct {
	Throttle float64 // [-1,1], negative reverses
	Brake    float64 // [0,1]
	Steering float64 // [-1,1] target, reached at Control.SteeringRate
}

// Scene is a runnable world built from a Vehicle description
type Scene struct {
	Config  *Vehicle
	World   *physics.World
	Chassis *physics.Body
	Vehicle *vehicle.RaycastVehicle

	start    vmath.Transform
	steering float64
}

// BuildScene creates the world, colliders, chassis body and vehicle, and registers the vehicle
// as a world action
func BuildScene(cfg *Vehicle) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var gravity mgl64.Vec3
	if cfg.World.Gravity != nil {
		gravity = mgl64.Vec3(*cfg.World.Gravity)
	}
	world := physics.NewWorld(gravity)
	world.SetFixedTimeStep(cfg.World.FixedStep)

	for i, c := range cfg.World.Colliders {
		col, err := buildCollider(c)
		if err != nil {
			return nil, fmt.Errorf("world.collider[%d]: %w", i, err)
		}
		world.AddCollider(col)
	}

	half := mgl64.Vec3(cfg.Chassis.HalfExtents)
	start := vmath.Translation(mgl64.Vec3(cfg.Chassis.Position))
	chassis := physics.NewBody(cfg.Chassis.Mass, physics.BoxInertia(cfg.Chassis.Mass, half), start)
	chassis.Name = "chassis"
	chassis.SetDamping(cfg.Chassis.LinearDamping, cfg.Chassis.AngularDamping)
	world.AddBody(chassis)

	v := vehicle.New(chassis, world, world.FixedBody())
	if err := v.SetCoordinateSystem(cfg.Axes.CoordinateSystem()); err != nil {
		return nil, err
	}
	for _, w := range cfg.Wheels {
		tuning := w.Resolve(cfg.Tuning)
		info := v.AddWheel(w.Config(), tuning.Vehicle())
		info.RollInfluence = tuning.RollInfluence
	}
	world.AddAction(v)

	return &Scene{
		Config:  cfg,
		World:   world,
		Chassis: chassis,
		Vehicle: v,
		start:   start,
	}, nil
}

func buildCollider(c Collider) (*physics.Collider, error) {
	col := &physics.Collider{
		Name:     c.Name,
		Offset:   vmath.Identity(),
		Response: c.Responds(),
	}
	switch c.Kind {
	case KindPlane:
		col.Shape = physics.NewPlane(mgl64.Vec3(c.Normal), mgl64.Vec3(c.Position))
	case KindBox:
		col.Shape = physics.Box{HalfExtents: mgl64.Vec3(c.HalfExtents)}
		col.Offset = vmath.Translation(mgl64.Vec3(c.Position))
	case KindTriangle:
		if len(c.Vertices) != 3 {
			return nil, fmt.Errorf("%w: triangle needs 3 vertices", ErrInvalidValue)
		}
		col.Shape = physics.Triangle{
			A: mgl64.Vec3(c.Vertices[0]),
			B: mgl64.Vec3(c.Vertices[1]),
			C: mgl64.Vec3(c.Vertices[2]),
		}
		col.Offset = vmath.Translation(mgl64.Vec3(c.Position))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollider, c.Kind)
	}
	return col, nil
}

// Step advances the world by elapsed seconds and returns the sub-steps owed
func (s *Scene) Step(elapsed float64) int {
	return s.World.StepSimulation(elapsed, s.Config.World.MaxSubSteps)
}

// Drive maps normalized controls onto wheel engine, brake and steering
// Steering moves toward the target at most SteeringRate*dt per call
func (s *Scene) Drive(c Controls, dt float64) {
	ctl := s.Config.Control

	target := vmath.Clamp(c.Steering, -1, 1) * ctl.SteeringClamp
	maxDelta := ctl.SteeringRate * dt
	s.steering += vmath.Clamp(target-s.steering, -maxDelta, maxDelta)

	engine := vmath.Clamp(c.Throttle, -1, 1) * ctl.MaxEngineForce
	brake := vmath.Clamp(c.Brake, 0, 1) * ctl.MaxBrake

	for i := range s.Vehicle.NumWheels() {
		w := s.Vehicle.Wheel(i)
		if w.IsFront {
			s.Vehicle.SetSteeringValue(s.steering, i)
		}
		if s.driven(w) {
			s.Vehicle.ApplyEngineForce(engine, i)
		} else {
			s.Vehicle.ApplyEngineForce(0, i)
		}
		s.Vehicle.SetBrake(brake, i)
	}
}

func (s *Scene) driven(w *vehicle.WheelInfo) bool {
	switch s.Config.Control.Drive {
	case DriveFront:
		return w.IsFront
	case DriveAll:
		return true
	default:
		return !w.IsFront
	}
}

// Steering returns the current front wheel steering angle
func (s *Scene) Steering() float64 { return s.steering }

// Reset returns the chassis to its start pose at rest and clears wheel state
func (s *Scene) Reset() {
	s.Chassis.SetCenterOfMassTransform(s.start)
	s.Chassis.SetLinearVelocity(mgl64.Vec3{})
	s.Chassis.SetAngularVelocity(mgl64.Vec3{})
	s.steering = 0
	for i := range s.Vehicle.NumWheels() {
		w := s.Vehicle.Wheel(i)
		w.Steering, w.EngineForce, w.Brake = 0, 0, 0
		w.Rotation, w.DeltaRotation = 0, 0
	}
	s.Vehicle.ResetSuspension()
	for i := range s.Vehicle.NumWheels() {
		s.Vehicle.UpdateWheelTransform(i, false)
	}
}

// Upright reports whether the chassis up axis is within maxTilt radians of world up
func (s *Scene) Upright(maxTilt float64) bool {
	up := s.Chassis.CenterOfMassTransform().Column(s.Config.Axes.Up)
	worldUp, ok := vmath.SafeNormalize(s.World.Gravity().Mul(-1))
	if !ok {
		return true
	}
	return up.Dot(worldUp) >= math.Cos(maxTilt)
}
