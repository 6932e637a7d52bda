package vehicle

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rayvehicle/parameter"
	"github.com/lixenwraith/rayvehicle/physics"
	"github.com/lixenwraith/rayvehicle/vmath"
)

// wheelSolve is the per-wheel friction scratch, one entry per wheel
type wheelSolve struct {
	forward        mgl64.Vec3
	axle           mgl64.Vec3
	forwardImpulse float64
	sideImpulse    float64
}

// RaycastVehicle drives a chassis body through ray-cast wheels
// Chassis, caster and ground are borrowed; the vehicle never owns them
type RaycastVehicle struct {
	chassis physics.RigidBody
	caster  physics.Raycaster
	ground  physics.RigidBody // infinite-mass stand-in when a hit carries no body

	axes   CoordinateSystem
	wheels []*WheelInfo
	solve  []wheelSolve

	speedKmHour float64
	sliding     bool
}

// New creates a vehicle without wheels
// ground must have zero inverse mass; it receives side impulses when the ray hit has no body
func New(chassis physics.RigidBody, caster physics.Raycaster, ground physics.RigidBody) *RaycastVehicle {
	if ground == nil {
		ground = physics.NewFixedBody()
	}
	return &RaycastVehicle{
		chassis: chassis,
		caster:  caster,
		ground:  ground,
		axes:    DefaultCoordinateSystem(),
	}
}

// AddWheel appends a wheel and returns its state
// The returned pointer stays valid for the vehicle's lifetime
func (v *RaycastVehicle) AddWheel(cfg WheelConfig, tuning Tuning) *WheelInfo {
	w := newWheelInfo(cfg, tuning)
	v.wheels = append(v.wheels, w)
	v.solve = append(v.solve, wheelSolve{})

	v.UpdateWheelTransformsWS(w, false)
	v.UpdateWheelTransform(len(v.wheels)-1, false)
	return w
}

func (v *RaycastVehicle) NumWheels() int { return len(v.wheels) }

// Wheel returns wheel i; panics on an out of range index
func (v *RaycastVehicle) Wheel(i int) *WheelInfo {
	if i < 0 || i >= len(v.wheels) {
		panic(fmt.Sprintf("vehicle: wheel index %d out of range [0,%d)", i, len(v.wheels)))
	}
	return v.wheels[i]
}

func (v *RaycastVehicle) Chassis() physics.RigidBody { return v.chassis }

func (v *RaycastVehicle) CoordinateSystem() CoordinateSystem { return v.axes }

// SetCoordinateSystem selects the chassis basis columns used as right, up and forward
func (v *RaycastVehicle) SetCoordinateSystem(cs CoordinateSystem) error {
	if err := cs.Validate(); err != nil {
		return err
	}
	v.axes = cs
	return nil
}

// SetSteeringValue sets the steering angle in radians of wheel i
func (v *RaycastVehicle) SetSteeringValue(steering float64, i int) {
	v.Wheel(i).Steering = steering
}

func (v *RaycastVehicle) SteeringValue(i int) float64 {
	return v.Wheel(i).Steering
}

// ApplyEngineForce sets the drive force of wheel i; zero releases the wheel to rolling friction
func (v *RaycastVehicle) ApplyEngineForce(force float64, i int) {
	v.Wheel(i).EngineForce = force
}

// SetBrake sets the maximum rolling friction impulse of wheel i
func (v *RaycastVehicle) SetBrake(brake float64, i int) {
	v.Wheel(i).Brake = brake
}

// CurrentSpeedKmHour is the chassis speed from the last update, negative when reversing
func (v *RaycastVehicle) CurrentSpeedKmHour() float64 { return v.speedKmHour }

// Sliding reports whether any wheel exceeded its friction cone in the last update
func (v *RaycastVehicle) Sliding() bool { return v.sliding }

// FrictionImpulse returns the forward and side impulses applied at wheel i in the last update
func (v *RaycastVehicle) FrictionImpulse(i int) (forward, side float64) {
	v.Wheel(i)
	return v.solve[i].forwardImpulse, v.solve[i].sideImpulse
}

func (v *RaycastVehicle) ChassisWorldTransform() vmath.Transform {
	return v.chassis.CenterOfMassTransform()
}

// ForwardVector is the chassis basis column selected as forward
func (v *RaycastVehicle) ForwardVector() mgl64.Vec3 {
	return v.ChassisWorldTransform().Column(v.axes.Forward)
}

func (v *RaycastVehicle) WheelTransformWS(i int) vmath.Transform {
	return v.Wheel(i).WorldTransform
}

// ResetSuspension puts every wheel back at rest length with no contact velocity
func (v *RaycastVehicle) ResetSuspension() {
	for _, w := range v.wheels {
		w.Raycast.SuspensionLength = w.SuspensionRestLength
		w.SuspensionRelativeVelocity = 0
		w.Raycast.ContactNormalWS = w.Raycast.WheelDirectionWS.Mul(-1)
		w.ClippedInvContactDotSuspension = 1
	}
}

// UpdateWheelTransformsWS refreshes the hard point, direction and axle of w in world space
// With interpolated set, a chassis exposing a motion state is sampled there instead
func (v *RaycastVehicle) UpdateWheelTransformsWS(w *WheelInfo, interpolated bool) {
	t := v.chassis.CenterOfMassTransform()
	if interpolated {
		if ms, ok := v.chassis.(physics.MotionStater); ok {
			if mt, ok := ms.MotionStateTransform(); ok {
				t = mt
			}
		}
	}
	w.Raycast.HardPointWS = t.Apply(w.ChassisConnectionCS)
	w.Raycast.WheelDirectionWS = t.Rotate(w.WheelDirectionCS)
	w.Raycast.WheelAxleWS = t.Rotate(w.WheelAxleCS)
}

// UpdateWheelTransform rebuilds the world transform of wheel i from steering, spin and suspension length
func (v *RaycastVehicle) UpdateWheelTransform(i int, interpolated bool) {
	w := v.Wheel(i)
	v.UpdateWheelTransformsWS(w, interpolated)

	up := w.Raycast.WheelDirectionWS.Mul(-1)
	right := w.Raycast.WheelAxleWS
	fwd, _ := vmath.SafeNormalize(up.Cross(right))

	var cols [3]mgl64.Vec3
	cols[v.axes.Right] = right.Mul(-1)
	cols[v.axes.Up] = up
	cols[v.axes.Forward] = fwd
	basis := vmath.BasisFromColumns(cols[0], cols[1], cols[2])

	steer := vmath.RotationAbout(up, w.Steering)
	spin := vmath.RotationAbout(right, -w.Rotation)

	w.WorldTransform = vmath.Transform{
		Basis:  steer.Mul3(spin).Mul3(basis),
		Origin: w.Raycast.HardPointWS.Add(w.Raycast.WheelDirectionWS.Mul(w.Raycast.SuspensionLength)),
	}
}

// UpdateVehicle advances the vehicle by dt seconds; dt <= 0 leaves all state untouched
func (v *RaycastVehicle) UpdateVehicle(dt float64) {
	if dt <= 0 {
		return
	}

	for i := range v.wheels {
		v.UpdateWheelTransform(i, false)
	}

	chassisT := v.chassis.CenterOfMassTransform()
	vel := v.chassis.VelocityAtLocalPoint(mgl64.Vec3{})
	v.speedKmHour = parameter.SpeedToKmHour * vel.Len()
	if chassisT.Column(v.axes.Forward).Dot(vel) < 0 {
		v.speedKmHour = -v.speedKmHour
	}

	for _, w := range v.wheels {
		v.RayCast(w)
	}

	v.UpdateSuspension(dt)

	com := v.chassis.CenterOfMassPosition()
	for _, w := range v.wheels {
		force := math.Min(w.SuspensionForce, w.MaxSuspensionForce)
		if force == 0 {
			continue
		}
		impulse := w.Raycast.ContactNormalWS.Mul(force * dt)
		v.chassis.ApplyImpulse(impulse, w.Raycast.ContactPointWS.Sub(com))
	}

	v.UpdateFriction(dt)

	for _, w := range v.wheels {
		if w.Raycast.InContact && w.Radius > 0 {
			relPos := w.Raycast.HardPointWS.Sub(com)
			vel := v.chassis.VelocityAtLocalPoint(relPos)
			fwd := vmath.RejectFrom(chassisT.Column(v.axes.Forward), w.Raycast.ContactNormalWS)
			w.DeltaRotation = fwd.Dot(vel) * dt / w.Radius
		}
		w.Rotation += w.DeltaRotation
		w.DeltaRotation *= parameter.WheelSpinDecay
	}
}

// UpdateAction runs one vehicle update per host tick
func (v *RaycastVehicle) UpdateAction(_ *physics.World, dt float64) {
	v.UpdateVehicle(dt)
}
