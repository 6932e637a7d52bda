package parameter

// Suspension raycast
const (
	// ParallelContactThreshold is the contact-normal/wheel-direction dot product at or above
	// which the contact is treated as parallel to the suspension axis
	ParallelContactThreshold = -0.1

	// ParallelContactClippedInv is the clipped inverse used for near-parallel contacts (1/0.1)
	ParallelContactClippedInv = 1.0 / 0.1

	// TravelCmToLength converts suspension travel from centimeters to length units
	TravelCmToLength = 0.01
)

// Friction solver
const (
	// SideFrictionStiffness scales the lateral impulse from the bilateral solve
	SideFrictionStiffness = 1.0

	// ForwardFrictionFactor weights the longitudinal impulse in the friction cone check
	ForwardFrictionFactor = 0.5

	// SideFrictionFactor weights the lateral impulse in the friction cone check
	SideFrictionFactor = 1.0

	// SkidInfoMin floors the skid factor so it stays strictly positive when a wheel carries no load
	SkidInfoMin = 1e-6

	// DefaultRollingFrictionImpulse is the rolling clamp used when neither engine nor brake is active
	DefaultRollingFrictionImpulse = 0.0
)

// Constraint resolution
const (
	// ContactDamping scales the bilateral side-friction impulse
	ContactDamping = 0.2

	// RollingRelaxation is the relaxation applied to the rolling friction denominator
	RollingRelaxation = 1.0

	// BilateralRelaxation is the relaxation applied to the bilateral denominator
	BilateralRelaxation = 1.0

	// MaxDirectionLengthSq rejects constraint directions that are not unit length
	MaxDirectionLengthSq = 1.1
)

// Wheel spin
const (
	// WheelSpinDecay damps delta rotation every step (free-spin decay when airborne)
	WheelSpinDecay = 0.99

	// SpeedToKmHour converts length units per second to km/h
	SpeedToKmHour = 3.6
)

// World stepping
const (
	// DefaultFixedTimeStep is the world sub-step length in seconds
	DefaultFixedTimeStep = 1.0 / 60.0

	// DefaultMaxSubSteps bounds sub-steps per StepSimulation call
	DefaultMaxSubSteps = 4

	// DefaultGravity is the gravity magnitude along world -up
	DefaultGravity = 9.81
)
