package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rayvehicle/config"
	"github.com/lixenwraith/rayvehicle/parameter"
)

// Driving keys
const (
	keyThrottle = "throttle"
	keyReverse  = "reverse"
	keyLeft     = "left"
	keyRight    = "right"
	keyBrake    = "brake"
)

// heldKeys remembers when each driving key was last seen
// Terminals report presses and auto-repeat but never releases, so a key counts as held
// until InputHoldWindow passes without a repeat
type heldKeys map[string]time.Time

func (h heldKeys) press(key string, now time.Time) { h[key] = now }

func (h heldKeys) held(key string, now time.Time) bool {
	t, ok := h[key]
	return ok && now.Sub(t) <= parameter.InputHoldWindow
}

func (h heldKeys) release() { clear(h) }

// controls converts held keys into normalized driver input
func (h heldKeys) controls(now time.Time) config.Controls {
	var c config.Controls
	if h.held(keyThrottle, now) {
		c.Throttle++
	}
	if h.held(keyReverse, now) {
		c.Throttle--
	}
	// Positive steering turns toward the chassis left
	if h.held(keyLeft, now) {
		c.Steering++
	}
	if h.held(keyRight, now) {
		c.Steering--
	}
	if h.held(keyBrake, now) {
		c.Brake = 1
	}
	return c
}

// drivingKey maps a key event to a driving key name, or "" for other keys
func drivingKey(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return keyThrottle
	case tcell.KeyDown:
		return keyReverse
	case tcell.KeyLeft:
		return keyLeft
	case tcell.KeyRight:
		return keyRight
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return keyBrake
		}
	}
	return ""
}

// startInputReader forwards screen events until the screen is finalized
func startInputReader(screen tcell.Screen) <-chan tcell.Event {
	ch := make(chan tcell.Event, 64)
	go func() {
		defer close(ch)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			ch <- ev
		}
	}()
	return ch
}
