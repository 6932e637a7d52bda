package parameter

import "time"

// Sandbox frame timing
const (
	// TargetFPS is the sandbox render and input rate
	TargetFPS = 60

	// FramePeriod is the ticker interval
	FramePeriod = time.Second / TargetFPS

	// MaxFrameDelta clamps wall time fed to the simulation after stalls, in seconds
	MaxFrameDelta = 0.1

	// InputHoldWindow keeps a key "held" this long after its last repeat
	// Terminals report repeats, not key releases
	InputHoldWindow = 180 * time.Millisecond
)

// View & Canvas
const (
	// DefaultViewScale is terminal columns per world unit
	DefaultViewScale = 3.0

	// MinViewScale and MaxViewScale bound zoom
	MinViewScale = 0.5
	MaxViewScale = 20.0

	// ViewZoomStep multiplies or divides the scale per key press
	ViewZoomStep = 1.25

	// CellAspect is terminal cell height over width
	CellAspect = 2.0

	// MaxLineSteps bounds rasterization of lines far outside the screen
	MaxLineSteps = 4096
)

// HUD Layout
const (
	// HUDRows is the number of text rows reserved at the top
	HUDRows = 2

	// HUDWheelColumnWidth is the width of one per-wheel status block
	HUDWheelColumnWidth = 30
)
