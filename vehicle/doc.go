// Package vehicle implements a raycast vehicle: each wheel is a ray cast from its suspension
// hard point along the wheel direction, and the ray result drives a spring/damper suspension and
// an impulse-based tire friction model coupling the chassis to the ground body.
//
// A RaycastVehicle is registered with a host simulation as a physics.Action. Each tick the host
// calls UpdateAction, which runs UpdateVehicle:
//
//  1. refresh wheel world transforms from steering and rotation
//  2. compute the signed chassis speed
//  3. cast one ray per wheel
//  4. solve and apply suspension impulses
//  5. solve and apply friction impulses (side, then forward with the friction cone)
//  6. integrate wheel spin
//
// The vehicle is not safe for concurrent use. Wheels are processed in index order, which fixes
// how impulses split across wheels sharing a ground body.
package vehicle
