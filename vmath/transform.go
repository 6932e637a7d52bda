package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a rigid transform: orthonormal rotation basis plus translation
// Basis is column-major as in mgl64, column i is the world direction of local axis i
type Transform struct {
	Basis  mgl64.Mat3
	Origin mgl64.Vec3
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{Basis: mgl64.Ident3()}
}

// NewTransform builds a transform from basis and origin
func NewTransform(basis mgl64.Mat3, origin mgl64.Vec3) Transform {
	return Transform{Basis: basis, Origin: origin}
}

// TransformFromQuat builds a transform from a rotation quaternion and origin
func TransformFromQuat(q mgl64.Quat, origin mgl64.Vec3) Transform {
	return Transform{Basis: q.Normalize().Mat4().Mat3(), Origin: origin}
}

// Translation returns a transform with identity basis at origin
func Translation(origin mgl64.Vec3) Transform {
	return Transform{Basis: mgl64.Ident3(), Origin: origin}
}

// Apply maps a local point into the parent frame
func (t Transform) Apply(p mgl64.Vec3) mgl64.Vec3 {
	return t.Basis.Mul3x1(p).Add(t.Origin)
}

// Rotate maps a local direction into the parent frame
func (t Transform) Rotate(v mgl64.Vec3) mgl64.Vec3 {
	return t.Basis.Mul3x1(v)
}

// InverseApply maps a parent-frame point into the local frame
func (t Transform) InverseApply(p mgl64.Vec3) mgl64.Vec3 {
	return t.Basis.Transpose().Mul3x1(p.Sub(t.Origin))
}

// InverseRotate maps a parent-frame direction into the local frame
func (t Transform) InverseRotate(v mgl64.Vec3) mgl64.Vec3 {
	return t.Basis.Transpose().Mul3x1(v)
}

// Inverse returns the inverse rigid transform, basis assumed orthonormal
func (t Transform) Inverse() Transform {
	inv := t.Basis.Transpose()
	return Transform{Basis: inv, Origin: inv.Mul3x1(t.Origin).Mul(-1)}
}

// Mul composes t then other: result.Apply(p) == t.Apply(other.Apply(p))
func (t Transform) Mul(other Transform) Transform {
	return Transform{
		Basis:  t.Basis.Mul3(other.Basis),
		Origin: t.Apply(other.Origin),
	}
}

// Column returns basis column i, the world direction of local axis i
func (t Transform) Column(i int) mgl64.Vec3 {
	return t.Basis.Col(i)
}

// Quat returns the rotation as a unit quaternion
func (t Transform) Quat() mgl64.Quat {
	return mgl64.Mat4ToQuat(t.Basis.Mat4()).Normalize()
}

// BasisFromColumns builds a basis from three column vectors
func BasisFromColumns(c0, c1, c2 mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Mat3FromCols(c0, c1, c2)
}

// RotationAbout returns the basis rotating by angle radians about unit axis
func RotationAbout(axis mgl64.Vec3, angle float64) mgl64.Mat3 {
	return mgl64.QuatRotate(angle, axis).Mat4().Mat3()
}

// Integrate advances t by linear and angular velocity over dt
// Used for motion-state extrapolation between fixed steps
func Integrate(t Transform, linVel, angVel mgl64.Vec3, dt float64) Transform {
	out := Transform{Origin: t.Origin.Add(linVel.Mul(dt)), Basis: t.Basis}
	angle := angVel.Len() * dt
	if angle == 0 {
		return out
	}
	axis, ok := SafeNormalize(angVel)
	if !ok {
		return out
	}
	out.Basis = RotationAbout(axis, angle).Mul3(t.Basis)
	return out
}
