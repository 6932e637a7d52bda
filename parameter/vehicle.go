package parameter

// Default per-wheel tuning, applied when a wheel or config omits a value
const (
	// DefaultSuspensionStiffness is the spring rate per unit chassis mass
	DefaultSuspensionStiffness = 5.88

	// DefaultSuspensionCompression is the damping used while the spring compresses
	DefaultSuspensionCompression = 0.83

	// DefaultSuspensionDamping is the damping used while the spring relaxes
	DefaultSuspensionDamping = 0.88

	// DefaultMaxSuspensionTravelCm bounds suspension length around rest, in centimeters
	DefaultMaxSuspensionTravelCm = 500.0

	// DefaultFrictionSlip scales the friction cone radius from suspension load
	DefaultFrictionSlip = 10.5

	// DefaultMaxSuspensionForce caps the per-wheel suspension force before impulse application
	DefaultMaxSuspensionForce = 6000.0

	// DefaultRollInfluence is the fraction of side-impulse lever arm kept along chassis up
	DefaultRollInfluence = 0.1
)

// Default chassis axis selectors (right, up, forward)
const (
	DefaultRightAxis   = 0
	DefaultUpAxis      = 2
	DefaultForwardAxis = 1
)

// Driver input limits used when a description omits [control]
const (
	DefaultMaxEngineForce = 2000.0
	DefaultMaxBrake       = 50.0
	DefaultSteeringClamp  = 0.3 // radians
	DefaultSteeringRate   = 1.2 // radians per second
)
