package parameter

import "time"

// Drag & snap
const (
	// DragHeight is the lifted y of a piece while dragged
	DragHeight = 0.5

	// SnapDistance is the planar distance below which a released piece snaps
	SnapDistance = 0.8

	// LiftScale is the uniform scale of a piece while dragged
	LiftScale = 1.03

	// SnapDuration is the animation time into the slot
	SnapDuration = 200 * time.Millisecond

	// ReturnDuration is the animation time back to the original pose
	ReturnDuration = 300 * time.Millisecond
)

// Rotation
const (
	// RotationStep is the yaw change per rotation request, in degrees
	RotationStep = 45.0

	// DoubleTapDelay is the window in which a second touch counts as a double tap
	DoubleTapDelay = 300 * time.Millisecond

	// SecondaryRotateMaxAge enables right-click rotation for players up to this age
	SecondaryRotateMaxAge = 10

	// DefaultKidAge is the assumed player age when none is configured
	DefaultKidAge = 10
)

// Default piece collider half extents
const (
	PieceHalfWidth  = 0.45
	PieceHalfHeight = 0.1
	PieceHalfDepth  = 0.45
)
