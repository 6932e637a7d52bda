package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rayvehicle/parameter"
	"github.com/lixenwraith/rayvehicle/physics"
	"github.com/lixenwraith/rayvehicle/vmath"
)

// UpdateFriction solves side and rolling friction for all wheels and applies the impulses
// Wheels are visited in index order in every pass
func (v *RaycastVehicle) UpdateFriction(dt float64) {
	n := len(v.wheels)
	v.sliding = false
	if n == 0 {
		return
	}
	if len(v.solve) != n {
		v.solve = make([]wheelSolve, n)
	}
	for i := range v.solve {
		v.solve[i] = wheelSolve{}
	}

	// Side impulses
	for i, w := range v.wheels {
		ground := w.Raycast.GroundBody
		if ground == nil {
			continue
		}
		s := &v.solve[i]
		normal := w.Raycast.ContactNormalWS
		contact := w.Raycast.ContactPointWS

		axle := w.WorldTransform.Column(v.axes.Right).Mul(-1)
		s.axle, _ = vmath.SafeNormalize(vmath.RejectFrom(axle, normal))
		s.forward, _ = vmath.SafeNormalize(normal.Cross(s.axle))

		s.sideImpulse = physics.ResolveSingleBilateral(v.chassis, contact, ground, contact, s.axle) *
			parameter.SideFrictionStiffness
	}

	// Rolling impulses and friction cone
	sliding := false
	for i, w := range v.wheels {
		s := &v.solve[i]
		w.SkidInfo = 1

		ground := w.Raycast.GroundBody
		if ground == nil {
			continue
		}

		if w.EngineForce != 0 {
			s.forwardImpulse = w.EngineForce * dt
		} else {
			maxImpulse := parameter.DefaultRollingFrictionImpulse
			if w.Brake != 0 {
				maxImpulse = math.Abs(w.Brake)
			}
			s.forwardImpulse = resolveRollingFriction(v.chassis, ground, w.Raycast.ContactPointWS, s.forward, maxImpulse)
		}

		maxImp := w.SuspensionForce * dt * w.FrictionSlip
		x := s.forwardImpulse * parameter.ForwardFrictionFactor
		y := s.sideImpulse * parameter.SideFrictionFactor
		impulseSq := x*x + y*y
		if impulseSq > maxImp*maxImp {
			sliding = true
			w.SkidInfo = max(maxImp/math.Sqrt(impulseSq), parameter.SkidInfoMin)
		}
	}

	if sliding {
		for i, w := range v.wheels {
			if w.SkidInfo < 1 {
				v.solve[i].forwardImpulse *= w.SkidInfo
				v.solve[i].sideImpulse *= w.SkidInfo
			}
		}
	}
	v.sliding = sliding

	com := v.chassis.CenterOfMassPosition()
	up := v.chassis.CenterOfMassTransform().Column(v.axes.Up)
	for i, w := range v.wheels {
		s := v.solve[i]
		contact := w.Raycast.ContactPointWS
		relPos := contact.Sub(com)

		if s.forwardImpulse != 0 {
			v.chassis.ApplyImpulse(s.forward.Mul(s.forwardImpulse), relPos)
		}
		if s.sideImpulse == 0 {
			continue
		}

		ground := w.Raycast.GroundBody
		if ground == nil {
			ground = v.ground
		}
		groundRel := contact.Sub(ground.CenterOfMassPosition())
		sideImp := s.axle.Mul(s.sideImpulse)

		// Keep only rollInfluence of the lever arm along up to limit roll torque
		relPos = relPos.Sub(up.Mul(up.Dot(relPos) * (1 - w.RollInfluence)))
		v.chassis.ApplyImpulse(sideImp, relPos)
		ground.ApplyImpulse(sideImp.Mul(-1), groundRel)
	}
}

// resolveRollingFriction returns the impulse along dir that stops relative motion at pos, clamped to ±maxImpulse
func resolveRollingFriction(chassis, ground physics.RigidBody, pos, dir mgl64.Vec3, maxImpulse float64) float64 {
	j := physics.ResolveAxis(chassis, ground, pos, pos, dir, parameter.RollingRelaxation, 1)
	return vmath.Clamp(j, -maxImpulse, maxImpulse)
}
