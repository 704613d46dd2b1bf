package piece

import (
	"time"

	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/parameter"
	"github.com/lixenwraith/puzzle-snap/vmath"
)

// Config holds the tunables of one piece
type Config struct {
	ID             core.Entity
	DragHeight     float64
	SnapDistance   float64
	LiftScale      float64
	RotationStep   float64 // Degrees per rotation request
	SnapDuration   time.Duration
	ReturnDuration time.Duration
	DoubleTapDelay time.Duration
	KidAge         int         // Secondary-click rotation only up to parameter.SecondaryRotateMaxAge
	HalfExtents    vmath.Vec3F // Collision volume at scale 1
}

// DefaultConfig returns the standard tunables for a piece with the given id
func DefaultConfig(id core.Entity) Config {
	return Config{
		ID:             id,
		DragHeight:     parameter.DragHeight,
		SnapDistance:   parameter.SnapDistance,
		LiftScale:      parameter.LiftScale,
		RotationStep:   parameter.RotationStep,
		SnapDuration:   parameter.SnapDuration,
		ReturnDuration: parameter.ReturnDuration,
		DoubleTapDelay: parameter.DoubleTapDelay,
		KidAge:         parameter.DefaultKidAge,
		HalfExtents: vmath.Vec3F{
			X: parameter.PieceHalfWidth,
			Y: parameter.PieceHalfHeight,
			Z: parameter.PieceHalfDepth,
		},
	}
}
