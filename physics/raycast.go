package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rayvehicle/vmath"
)

// RayHit is the closest hit of a segment cast
type RayHit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3 // unit length
	Fraction float64    // along the segment, in [0,1]
	Body     RigidBody  // nil when the hit geometry has no resolvable body
}

// Raycaster finds the closest responding collider along a segment
type Raycaster interface {
	CastRay(from, to mgl64.Vec3) (RayHit, bool)
}

// Collider places a Shape in the world, optionally attached to a Body
// With a Body the Offset is relative to the body's center of mass frame, otherwise it is the world transform
type Collider struct {
	Name     string
	Shape    Shape
	Offset   vmath.Transform
	Body     *Body
	Response bool // collision response enabled; raycasts ignore colliders without it
}

// WorldTransform returns the collider frame in world space
func (c *Collider) WorldTransform() vmath.Transform {
	if c.Body != nil {
		return c.Body.CenterOfMassTransform().Mul(c.Offset)
	}
	return c.Offset
}

func (c *Collider) castRay(from, to mgl64.Vec3) (RayHit, bool) {
	wt := c.WorldTransform()
	fraction, n, ok := c.Shape.IntersectRay(wt.InverseApply(from), wt.InverseApply(to))
	if !ok {
		return RayHit{}, false
	}
	normal, ok := vmath.SafeNormalize(wt.Rotate(n))
	if !ok {
		return RayHit{}, false
	}
	hit := RayHit{
		Point:    from.Add(to.Sub(from).Mul(fraction)),
		Normal:   normal,
		Fraction: fraction,
	}
	// Keep the interface nil when no body is attached
	if c.Body != nil {
		hit.Body = c.Body
	}
	return hit, true
}
