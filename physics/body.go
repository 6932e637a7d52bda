package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rayvehicle/vmath"
)

// RigidBody is the rigid-body capability consumed by vehicle solvers
// Positions passed as relPos are world-space offsets from the center of mass
type RigidBody interface {
	ApplyImpulse(impulse, relPos mgl64.Vec3)
	VelocityAtLocalPoint(relPos mgl64.Vec3) mgl64.Vec3
	CenterOfMassPosition() mgl64.Vec3
	CenterOfMassTransform() vmath.Transform
	InverseMass() float64
	InverseInertiaDiagLocal() mgl64.Vec3
}

// MotionStater is implemented by bodies that expose an interpolated render transform
// ok is false when no motion state has been synchronized yet
type MotionStater interface {
	MotionStateTransform() (t vmath.Transform, ok bool)
}

// Body is a dynamic rigid body integrated by World
// Mass <= 0 yields a static body with zero inverse mass and inertia
type Body struct {
	Name string

	transform   vmath.Transform
	orientation mgl64.Quat

	linVel mgl64.Vec3
	angVel mgl64.Vec3

	invMass         float64
	invInertiaLocal mgl64.Vec3
	invInertiaWorld mgl64.Mat3

	gravity        mgl64.Vec3
	linearDamping  float64
	angularDamping float64

	motionState    vmath.Transform
	hasMotionState bool
}

// NewBody creates a body with mass, local principal inertia and a starting transform
func NewBody(mass float64, inertiaLocal mgl64.Vec3, start vmath.Transform) *Body {
	b := &Body{}
	if mass > 0 {
		b.invMass = 1.0 / mass
		for i := 0; i < 3; i++ {
			if inertiaLocal[i] > 0 {
				b.invInertiaLocal[i] = 1.0 / inertiaLocal[i]
			}
		}
	}
	b.SetCenterOfMassTransform(start)
	return b
}

// BoxInertia returns the principal inertia of a solid box with the given half extents
func BoxInertia(mass float64, halfExtents mgl64.Vec3) mgl64.Vec3 {
	lx, ly, lz := 2*halfExtents[0], 2*halfExtents[1], 2*halfExtents[2]
	return mgl64.Vec3{
		mass / 12.0 * (ly*ly + lz*lz),
		mass / 12.0 * (lx*lx + lz*lz),
		mass / 12.0 * (lx*lx + ly*ly),
	}
}

// ApplyImpulse changes linear and angular momentum by an impulse at relPos from the center of mass
func (b *Body) ApplyImpulse(impulse, relPos mgl64.Vec3) {
	if b.invMass == 0 {
		return
	}
	b.ApplyCentralImpulse(impulse)
	b.ApplyTorqueImpulse(relPos.Cross(impulse))
}

// ApplyCentralImpulse changes linear momentum only
func (b *Body) ApplyCentralImpulse(impulse mgl64.Vec3) {
	b.linVel = b.linVel.Add(impulse.Mul(b.invMass))
}

// ApplyTorqueImpulse changes angular momentum only
func (b *Body) ApplyTorqueImpulse(torque mgl64.Vec3) {
	b.angVel = b.angVel.Add(b.invInertiaWorld.Mul3x1(torque))
}

// VelocityAtLocalPoint returns the world velocity of the material point at relPos
func (b *Body) VelocityAtLocalPoint(relPos mgl64.Vec3) mgl64.Vec3 {
	return b.linVel.Add(b.angVel.Cross(relPos))
}

func (b *Body) CenterOfMassPosition() mgl64.Vec3 { return b.transform.Origin }
func (b *Body) CenterOfMassTransform() vmath.Transform { return b.transform }
func (b *Body) InverseMass() float64 { return b.invMass }
func (b *Body) InverseInertiaDiagLocal() mgl64.Vec3 { return b.invInertiaLocal }
func (b *Body) InverseInertiaWorld() mgl64.Mat3 { return b.invInertiaWorld }
func (b *Body) LinearVelocity() mgl64.Vec3 { return b.linVel }
func (b *Body) AngularVelocity() mgl64.Vec3 { return b.angVel }
func (b *Body) Gravity() mgl64.Vec3 { return b.gravity }

// IsStatic reports whether the body has infinite mass
func (b *Body) IsStatic() bool { return b.invMass == 0 }

// Mass returns the body mass, +Inf for static bodies
func (b *Body) Mass() float64 {
	if b.invMass == 0 {
		return math.Inf(1)
	}
	return 1.0 / b.invMass
}

func (b *Body) SetLinearVelocity(v mgl64.Vec3) { b.linVel = v }
func (b *Body) SetAngularVelocity(w mgl64.Vec3) { b.angVel = w }

// SetGravity sets the gravity acceleration applied each step, ignored for static bodies
func (b *Body) SetGravity(g mgl64.Vec3) {
	if b.invMass == 0 {
		return
	}
	b.gravity = g
}

// SetDamping sets per-second linear and angular damping fractions in [0,1]
func (b *Body) SetDamping(linear, angular float64) {
	b.linearDamping = vmath.Clamp(linear, 0, 1)
	b.angularDamping = vmath.Clamp(angular, 0, 1)
}

// SetCenterOfMassTransform teleports the body and refreshes the world inertia tensor
func (b *Body) SetCenterOfMassTransform(t vmath.Transform) {
	b.orientation = t.Quat()
	b.transform = vmath.TransformFromQuat(b.orientation, t.Origin)
	b.motionState = b.transform
	b.hasMotionState = false
	b.updateInertiaTensor()
}

// MotionStateTransform returns the transform extrapolated by World after the last StepSimulation
func (b *Body) MotionStateTransform() (vmath.Transform, bool) {
	return b.motionState, b.hasMotionState
}

func (b *Body) updateInertiaTensor() {
	r := b.transform.Basis
	b.invInertiaWorld = r.Mul3(mgl64.Diag3(b.invInertiaLocal)).Mul3(r.Transpose())
}

func (b *Body) applyGravity(dt float64) {
	if b.invMass == 0 {
		return
	}
	b.linVel = b.linVel.Add(b.gravity.Mul(dt))
}

func (b *Body) applyDamping(dt float64) {
	if b.linearDamping > 0 {
		b.linVel = b.linVel.Mul(math.Pow(1-b.linearDamping, dt))
	}
	if b.angularDamping > 0 {
		b.angVel = b.angVel.Mul(math.Pow(1-b.angularDamping, dt))
	}
}

// integrate advances position and orientation by the current velocities
func (b *Body) integrate(dt float64) {
	if b.invMass == 0 {
		return
	}
	b.transform.Origin = b.transform.Origin.Add(b.linVel.Mul(dt))

	angle := b.angVel.Len() * dt
	if axis, ok := vmath.SafeNormalize(b.angVel); ok && angle != 0 {
		b.orientation = mgl64.QuatRotate(angle, axis).Mul(b.orientation).Normalize()
		b.transform.Basis = b.orientation.Mat4().Mat3()
	}
	b.updateInertiaTensor()
}

// synchronizeMotionState extrapolates the render transform by the unsimulated remainder
func (b *Body) synchronizeMotionState(remainder float64) {
	b.motionState = vmath.Integrate(b.transform, b.linVel, b.angVel, remainder)
	b.hasMotionState = true
}
