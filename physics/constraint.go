package physics

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rayvehicle/parameter"
)

// ImpulseDenominator returns the inverse effective mass of body along unit dir at world point pos
// invMass + (I⁻¹(r×n))·(r×n), with the world inverse inertia R·diag·Rᵀ
func ImpulseDenominator(body RigidBody, pos, dir mgl64.Vec3) float64 {
	r := pos.Sub(body.CenterOfMassPosition())
	c := r.Cross(dir)
	local := body.CenterOfMassTransform().Basis.Transpose().Mul3x1(c)
	inv := body.InverseInertiaDiagLocal()
	return body.InverseMass() +
		inv[0]*local[0]*local[0] +
		inv[1]*local[1]*local[1] +
		inv[2]*local[2]*local[2]
}

// RelativeVelocity returns the velocity of a at posA relative to b at posB, projected on dir
func RelativeVelocity(a, b RigidBody, posA, posB, dir mgl64.Vec3) float64 {
	velA := a.VelocityAtLocalPoint(posA.Sub(a.CenterOfMassPosition()))
	velB := b.VelocityAtLocalPoint(posB.Sub(b.CenterOfMassPosition()))
	return dir.Dot(velA.Sub(velB))
}

// ResolveAxis returns the impulse along dir that drives the relative velocity of a and b toward zero
// impulse = -damping * vrel * relaxation / (denomA + denomB); zero when both bodies are immovable
func ResolveAxis(a, b RigidBody, posA, posB, dir mgl64.Vec3, relaxation, damping float64) float64 {
	denom := ImpulseDenominator(a, posA, dir) + ImpulseDenominator(b, posB, dir)
	if denom == 0 {
		return 0
	}
	jacDiagInv := relaxation / denom
	return -damping * RelativeVelocity(a, b, posA, posB, dir) * jacDiagInv
}

// ResolveSingleBilateral returns the damped impulse for a bilateral velocity constraint along dir
// Non-unit directions return zero; they indicate corrupted upstream geometry
func ResolveSingleBilateral(a RigidBody, posA mgl64.Vec3, b RigidBody, posB mgl64.Vec3, dir mgl64.Vec3) float64 {
	if lenSq := dir.Dot(dir); lenSq > parameter.MaxDirectionLengthSq {
		log.Printf("physics: bilateral constraint direction not unit length (len²=%g), impulse dropped", lenSq)
		return 0
	}
	return ResolveAxis(a, b, posA, posB, dir, parameter.BilateralRelaxation, parameter.ContactDamping)
}
