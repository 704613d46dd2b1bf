package event

import (
	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/vmath"
)

// PiecePayload identifies the piece an event refers to
type PiecePayload struct {
	Piece core.Entity
}

// PieceReleasedPayload carries the snap decision taken on release
type PieceReleasedPayload struct {
	Piece    core.Entity
	Distance float64 // Planar distance to slot center, -1 if no slot
	Snapping bool
}

// PieceRotatedPayload carries the orientation after a rotation step
type PieceRotatedPayload struct {
	Piece      core.Entity
	YawDegrees float64
}

// SlotHighlightPayload carries the new highlight state of a piece's slot
type SlotHighlightPayload struct {
	Piece       core.Entity
	Highlighted bool
}

// PuzzleCompletedPayload summarizes the finished puzzle
type PuzzleCompletedPayload struct {
	Pieces int
}

// EffectSpawnedPayload describes an instantiated visual effect
type EffectSpawnedPayload struct {
	Name string
	At   vmath.Vec3F
}

// SoundPayload describes a requested one-shot sound
type SoundPayload struct {
	Sound  core.SoundType
	Volume float64
	Played bool // False when no clip is assigned or audio is unavailable
}
