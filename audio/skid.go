// Package audio synthesizes tire squeal from vehicle skid state and plays it through beep.
package audio

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/rayvehicle/parameter"
	"github.com/lixenwraith/rayvehicle/vehicle"
)

// SkidVoice is an endless stream of tire squeal whose loudness follows SetIntensity
// SetIntensity is safe to call from any goroutine while the speaker streams
type SkidVoice struct {
	intensity atomic.Uint64 // float64 bits

	rate   beep.SampleRate
	rng    *rand.Rand
	gain   float64
	phase  float64
	vphase float64
	noise  float64
}

// NewSkidVoice creates a silent voice; seed fixes the noise sequence
func NewSkidVoice(rate beep.SampleRate, seed int64) *SkidVoice {
	return &SkidVoice{
		rate: rate,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// SetIntensity sets the target loudness, clamped to [0,1]
func (s *SkidVoice) SetIntensity(v float64) {
	switch {
	case math.IsNaN(v) || v < parameter.SkidIntensityThreshold:
		v = 0
	case v > 1:
		v = 1
	}
	s.intensity.Store(math.Float64bits(v))
}

func (s *SkidVoice) Intensity() float64 {
	return math.Float64frombits(s.intensity.Load())
}

// Gain is the smoothed output level, for inspection
func (s *SkidVoice) Gain() float64 { return s.gain }

func (s *SkidVoice) Stream(samples [][2]float64) (n int, ok bool) {
	target := s.Intensity()
	step := 1.0 / float64(s.rate)

	for i := range samples {
		s.gain += (target - s.gain) * parameter.SkidGainSlew

		// Pitch rises with intensity, vibrato keeps it from sounding like a pure tone
		vibrato := 1 + parameter.SkidVibratoDepth*math.Sin(2*math.Pi*s.vphase)
		freq := (parameter.SkidSquealBaseFreq + parameter.SkidSquealSweep*target) * vibrato

		white := s.rng.Float64()*2 - 1
		s.noise += (white - s.noise) * parameter.SkidNoiseCutoff

		val := s.gain * (parameter.SkidSquealMix*math.Sin(2*math.Pi*s.phase) + parameter.SkidNoiseMix*s.noise)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq * step
		s.phase -= math.Floor(s.phase)
		s.vphase += parameter.SkidVibratoRate * step
		s.vphase -= math.Floor(s.vphase)
	}
	return len(samples), true
}

func (s *SkidVoice) Err() error { return nil }

// SkidIntensity maps the worst skidding wheel in contact to [0,1]
// Zero while the vehicle grips
func SkidIntensity(v *vehicle.RaycastVehicle) float64 {
	if !v.Sliding() {
		return 0
	}
	worst := 0.0
	for i := range v.NumWheels() {
		w := v.Wheel(i)
		if !w.Raycast.InContact {
			continue
		}
		worst = max(worst, 1-w.SkidInfo)
	}
	return math.Min(worst, 1)
}
