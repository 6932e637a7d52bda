package vehicle

import (
	"github.com/lixenwraith/rayvehicle/parameter"
	"github.com/lixenwraith/rayvehicle/vmath"
)

// RayCast casts the suspension ray of w and stores the contact in w.Raycast
// Returns the hit distance along the ray, or -1 on a miss
func (v *RaycastVehicle) RayCast(w *WheelInfo) float64 {
	v.UpdateWheelTransformsWS(w, false)

	rayLen := w.RayLength()
	source := w.Raycast.HardPointWS
	target := source.Add(w.Raycast.WheelDirectionWS.Mul(rayLen))
	w.Raycast.ContactPointWS = target

	hit, ok := v.caster.CastRay(source, target)
	if !ok {
		w.Raycast.InContact = false
		w.Raycast.GroundBody = nil
		w.Raycast.SuspensionLength = w.SuspensionRestLength
		w.SuspensionRelativeVelocity = 0
		w.Raycast.ContactNormalWS = w.Raycast.WheelDirectionWS.Mul(-1)
		w.ClippedInvContactDotSuspension = 1
		return -1
	}

	depth := rayLen * hit.Fraction
	w.Raycast.InContact = true
	w.Raycast.ContactNormalWS = hit.Normal
	w.Raycast.ContactPointWS = hit.Point
	w.Raycast.GroundBody = hit.Body
	if w.Raycast.GroundBody == nil {
		w.Raycast.GroundBody = v.ground
	}

	minLen, maxLen := w.SuspensionTravel()
	w.Raycast.SuspensionLength = vmath.Clamp(depth-w.Radius, minLen, maxLen)

	denom := w.Raycast.ContactNormalWS.Dot(w.Raycast.WheelDirectionWS)
	if denom >= parameter.ParallelContactThreshold {
		w.SuspensionRelativeVelocity = 0
		w.ClippedInvContactDotSuspension = parameter.ParallelContactClippedInv
		return depth
	}

	relPos := w.Raycast.ContactPointWS.Sub(v.chassis.CenterOfMassPosition())
	projVel := w.Raycast.ContactNormalWS.Dot(v.chassis.VelocityAtLocalPoint(relPos))
	inv := -1 / denom
	w.SuspensionRelativeVelocity = projVel * inv
	w.ClippedInvContactDotSuspension = inv
	return depth
}
