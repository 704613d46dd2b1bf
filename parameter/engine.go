package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the game logic update interval (clock tick, ~60 Hz)
	GameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps a single tick's dt after a stall so animations do not jump
	MaxTickDelta = 100 * time.Millisecond

	// InputBufferSize is the capacity of the pointer input channel
	InputBufferSize = 256

	// IdleRedrawInterval redraws the screen while the scheduler is paused
	IdleRedrawInterval = 100 * time.Millisecond
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024
)

// Camera
const (
	// CameraColsPerUnit is the terminal columns spanning one world unit
	CameraColsPerUnit = 8.0

	// CameraRowsPerUnit is the terminal rows spanning one world unit (cells are ~2:1)
	CameraRowsPerUnit = 4.0

	// CameraEyeHeight is the world height pick rays start from
	CameraEyeHeight = 20.0
)
