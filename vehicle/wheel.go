package vehicle

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rayvehicle/parameter"
	"github.com/lixenwraith/rayvehicle/physics"
	"github.com/lixenwraith/rayvehicle/vmath"
)

// Tuning holds per-wheel suspension and tire tunables supplied at AddWheel
type Tuning struct {
	SuspensionStiffness   float64
	SuspensionCompression float64 // damping while compressing
	SuspensionDamping     float64 // damping while relaxing
	MaxSuspensionTravelCm float64
	FrictionSlip          float64
	MaxSuspensionForce    float64
}

// DefaultTuning returns the stock tuning values
func DefaultTuning() Tuning {
	return Tuning{
		SuspensionStiffness:   parameter.DefaultSuspensionStiffness,
		SuspensionCompression: parameter.DefaultSuspensionCompression,
		SuspensionDamping:     parameter.DefaultSuspensionDamping,
		MaxSuspensionTravelCm: parameter.DefaultMaxSuspensionTravelCm,
		FrictionSlip:          parameter.DefaultFrictionSlip,
		MaxSuspensionForce:    parameter.DefaultMaxSuspensionForce,
	}
}

// WheelConfig is the chassis-space geometry of a wheel
type WheelConfig struct {
	ConnectionPointCS    mgl64.Vec3
	WheelDirectionCS     mgl64.Vec3 // suspension ray direction, normalized on AddWheel
	WheelAxleCS          mgl64.Vec3 // normalized on AddWheel
	SuspensionRestLength float64
	Radius               float64
	IsFront              bool
}

// RaycastInfo is the per-step result of a wheel's suspension ray
type RaycastInfo struct {
	ContactNormalWS  mgl64.Vec3
	ContactPointWS   mgl64.Vec3
	SuspensionLength float64
	HardPointWS      mgl64.Vec3
	WheelDirectionWS mgl64.Vec3
	WheelAxleWS      mgl64.Vec3
	InContact        bool
	GroundBody       physics.RigidBody // nil while airborne
}

// WheelInfo is the configuration and runtime state of one wheel
type WheelInfo struct {
	Raycast RaycastInfo

	WorldTransform vmath.Transform

	ChassisConnectionCS   mgl64.Vec3
	WheelDirectionCS      mgl64.Vec3
	WheelAxleCS           mgl64.Vec3
	SuspensionRestLength  float64
	MaxSuspensionTravelCm float64
	Radius                float64

	SuspensionStiffness float64
	DampingCompression  float64
	DampingRelaxation   float64
	FrictionSlip        float64
	MaxSuspensionForce  float64
	RollInfluence       float64
	IsFront             bool

	Steering    float64
	EngineForce float64
	Brake       float64

	Rotation      float64
	DeltaRotation float64

	ClippedInvContactDotSuspension float64
	SuspensionRelativeVelocity     float64
	SuspensionForce                float64
	SkidInfo                       float64
}

func newWheelInfo(cfg WheelConfig, tuning Tuning) *WheelInfo {
	dir, ok := vmath.SafeNormalize(cfg.WheelDirectionCS)
	if !ok {
		dir = cfg.WheelDirectionCS
	}
	axle, ok := vmath.SafeNormalize(cfg.WheelAxleCS)
	if !ok {
		axle = cfg.WheelAxleCS
	}
	return &WheelInfo{
		ChassisConnectionCS:   cfg.ConnectionPointCS,
		WheelDirectionCS:      dir,
		WheelAxleCS:           axle,
		SuspensionRestLength:  cfg.SuspensionRestLength,
		MaxSuspensionTravelCm: tuning.MaxSuspensionTravelCm,
		Radius:                cfg.Radius,
		SuspensionStiffness:   tuning.SuspensionStiffness,
		DampingCompression:    tuning.SuspensionCompression,
		DampingRelaxation:     tuning.SuspensionDamping,
		FrictionSlip:          tuning.FrictionSlip,
		MaxSuspensionForce:    tuning.MaxSuspensionForce,
		RollInfluence:         parameter.DefaultRollInfluence,
		IsFront:               cfg.IsFront,
		SkidInfo:              1,

		ClippedInvContactDotSuspension: 1,
		Raycast: RaycastInfo{
			SuspensionLength: cfg.SuspensionRestLength,
		},
	}
}

// SuspensionTravel returns the allowed suspension length range around rest
func (w *WheelInfo) SuspensionTravel() (minLength, maxLength float64) {
	travel := w.MaxSuspensionTravelCm * parameter.TravelCmToLength
	return w.SuspensionRestLength - travel, w.SuspensionRestLength + travel
}

// RayLength is the suspension ray length: rest length plus radius
func (w *WheelInfo) RayLength() float64 {
	return w.SuspensionRestLength + w.Radius
}
