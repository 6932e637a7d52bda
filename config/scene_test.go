package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settle(s *Scene, seconds float64) {
	dt := s.World.FixedTimeStep()
	for range int(seconds / dt) {
		s.Step(dt)
	}
}

func TestBuildScene(t *testing.T) {
	s, err := BuildScene(Default())
	require.NoError(t, err)

	assert.Equal(t, 4, s.Vehicle.NumWheels())
	assert.Len(t, s.World.Colliders(), 5)
	assert.Len(t, s.World.Actions(), 1)
	assert.Len(t, s.World.Bodies(), 1)
	assert.Equal(t, 0.1, s.Vehicle.Wheel(0).RollInfluence)
	assert.Equal(t, 1.5, s.Vehicle.Wheel(0).FrictionSlip)
}

func TestBuildSceneRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Wheels = nil
	_, err := BuildScene(cfg)
	assert.ErrorIs(t, err, ErrNoWheels)
}

func TestSceneSettlesOnGround(t *testing.T) {
	s, err := BuildScene(Default())
	require.NoError(t, err)

	settle(s, 3)

	for i := range s.Vehicle.NumWheels() {
		w := s.Vehicle.Wheel(i)
		assert.True(t, w.Raycast.InContact, "wheel %d", i)
		assert.Greater(t, w.SuspensionForce, 0.0, "wheel %d", i)
	}
	assert.True(t, s.Upright(0.1))
	assert.InDelta(t, 0.0, s.Chassis.LinearVelocity().Len(), 0.05)
}

func TestSceneDriveForward(t *testing.T) {
	s, err := BuildScene(Default())
	require.NoError(t, err)
	settle(s, 2)
	startZ := s.Chassis.CenterOfMassPosition().Z()

	dt := s.World.FixedTimeStep()
	for range 60 {
		s.Drive(Controls{Throttle: 1}, dt)
		s.Step(dt)
	}

	assert.Greater(t, s.Vehicle.CurrentSpeedKmHour(), 10.0)
	assert.Greater(t, s.Chassis.CenterOfMassPosition().Z()-startZ, 1.0)
	assert.True(t, s.Upright(0.3))

	// Rear drive: only rear wheels carry engine force
	for i := range s.Vehicle.NumWheels() {
		w := s.Vehicle.Wheel(i)
		if w.IsFront {
			assert.Zero(t, w.EngineForce)
		} else {
			assert.Equal(t, s.Config.Control.MaxEngineForce, w.EngineForce)
		}
	}
}

func TestSceneSteeringRateLimited(t *testing.T) {
	s, err := BuildScene(Default())
	require.NoError(t, err)
	ctl := s.Config.Control

	s.Drive(Controls{Steering: 1}, 0.1)
	assert.InDelta(t, ctl.SteeringRate*0.1, s.Steering(), 1e-12)

	for range 100 {
		s.Drive(Controls{Steering: 1}, 0.1)
	}
	assert.InDelta(t, ctl.SteeringClamp, s.Steering(), 1e-12)
	assert.InDelta(t, ctl.SteeringClamp, s.Vehicle.SteeringValue(0), 1e-12)
	assert.Zero(t, s.Vehicle.SteeringValue(2), "rear wheels do not steer")
}

func TestSceneReset(t *testing.T) {
	s, err := BuildScene(Default())
	require.NoError(t, err)
	start := s.Chassis.CenterOfMassPosition()

	dt := s.World.FixedTimeStep()
	for range 30 {
		s.Drive(Controls{Throttle: 1, Steering: -1}, dt)
		s.Step(dt)
	}
	s.Reset()

	assert.Equal(t, start, s.Chassis.CenterOfMassPosition())
	assert.Zero(t, s.Chassis.LinearVelocity().Len())
	assert.Zero(t, s.Steering())
	for i := range s.Vehicle.NumWheels() {
		w := s.Vehicle.Wheel(i)
		assert.Zero(t, w.EngineForce)
		assert.Zero(t, w.Rotation)
		assert.Equal(t, w.SuspensionRestLength, w.Raycast.SuspensionLength)
	}
}
