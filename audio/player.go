package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/rayvehicle/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player owns the speaker and the skid voice
// All methods are no-ops until Initialize succeeds, so the sandbox runs without audio hardware
type Player struct {
	mu          sync.Mutex
	voice       *SkidVoice
	ctrl        *beep.Ctrl
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized player
func NewPlayer(seed int64) *Player {
	voice := NewSkidVoice(sampleRate, seed)
	return &Player{
		voice: voice,
		ctrl:  &beep.Ctrl{Streamer: newVolume(voice, parameter.SkidMasterVolume)},
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the skid voice
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	p.mixer.Add(p.ctrl)
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetSkid updates the squeal target; safe before Initialize
func (p *Player) SetSkid(intensity float64) {
	p.voice.SetIntensity(intensity)
}

// SetMuted pauses or resumes the voice
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		p.ctrl.Paused = muted
		return
	}
	speaker.Lock()
	p.ctrl.Paused = muted
	speaker.Unlock()
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return p.ctrl.Paused
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.ctrl.Paused
}

// Voice exposes the underlying stream
func (p *Player) Voice() *SkidVoice { return p.voice }

// Close stops playback and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf, so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
