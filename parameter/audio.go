package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Skid Sound
const (
	// SkidSquealBaseFreq is the squeal pitch at the onset of sliding
	SkidSquealBaseFreq = 640.0 // Hz

	// SkidSquealSweep is added to the base pitch at full intensity
	SkidSquealSweep = 420.0 // Hz

	// SkidVibratoRate wobbles the squeal pitch
	SkidVibratoRate  = 9.0 // Hz
	SkidVibratoDepth = 0.03

	// SkidSquealMix and SkidNoiseMix weight the tonal and broadband parts
	SkidSquealMix = 0.55
	SkidNoiseMix  = 0.45

	// SkidNoiseCutoff is the one-pole lowpass coefficient applied to the noise
	SkidNoiseCutoff = 0.25

	// SkidGainSlew is the per-sample approach rate of gain toward intensity
	// ~20ms time constant at 44.1kHz
	SkidGainSlew = 0.0011

	// SkidIntensityThreshold mutes intensities below it
	SkidIntensityThreshold = 0.02

	// SkidMasterVolume scales the voice output
	SkidMasterVolume = 0.6
)
