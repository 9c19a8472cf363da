package parameter

import "time"

// Front-end Timing
const (
	// FrameInterval is the terminal tick rate (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// InputQueueDepth buffers terminal events between frames
	InputQueueDepth = 100
)

// HUD Layout
const (
	// HUDRow is the screen row reserved for score/clock
	HUDRow = 0

	// FieldScaleX maps world units to terminal cells on X
	FieldScaleX = 3.0

	// FieldScaleY is halved relative to X to compensate for the
	// roughly 1:2 cell aspect of terminal fonts
	FieldScaleY = 1.5

	// PlayerStepX / PlayerStepY are world units moved per keypress
	PlayerStepX = 1.0
	PlayerStepY = 1.0
)

// Audio
const (
	AudioSampleRate   = 44100
	CaptureToneHz     = 880
	CaptureToneMillis = 50
)
