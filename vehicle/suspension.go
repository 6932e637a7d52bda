package vehicle

// UpdateSuspension computes the spring/damper force of every wheel from its last ray result
// Forces are scaled by chassis mass and never pull the chassis toward the ground
func (v *RaycastVehicle) UpdateSuspension(_ float64) {
	var chassisMass float64
	if inv := v.chassis.InverseMass(); inv != 0 {
		chassisMass = 1 / inv
	}

	for _, w := range v.wheels {
		if !w.Raycast.InContact {
			w.SuspensionForce = 0
			continue
		}

		compression := w.SuspensionRestLength - w.Raycast.SuspensionLength
		force := w.SuspensionStiffness * compression * w.ClippedInvContactDotSuspension

		relVel := w.SuspensionRelativeVelocity
		damping := w.DampingRelaxation
		if relVel < 0 {
			damping = w.DampingCompression
		}
		force -= damping * relVel

		w.SuspensionForce = max(force*chassisMass, 0)
	}
}
