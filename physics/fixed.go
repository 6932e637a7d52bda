package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rayvehicle/vmath"
)

// FixedBody is an infinite-mass, motionless reference body
// Stands in for the ground when a contact has no resolvable body; impulses are ignored
type FixedBody struct{}

// NewFixedBody returns a fixed reference body, one per simulation context
func NewFixedBody() *FixedBody {
	return &FixedBody{}
}

func (*FixedBody) ApplyImpulse(mgl64.Vec3, mgl64.Vec3) {}
func (*FixedBody) VelocityAtLocalPoint(mgl64.Vec3) mgl64.Vec3 { return mgl64.Vec3{} }
func (*FixedBody) CenterOfMassPosition() mgl64.Vec3 { return mgl64.Vec3{} }
func (*FixedBody) CenterOfMassTransform() vmath.Transform { return vmath.Identity() }
func (*FixedBody) InverseMass() float64 { return 0 }
func (*FixedBody) InverseInertiaDiagLocal() mgl64.Vec3 { return mgl64.Vec3{} }
