package config

import (
	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/engine"
	"github.com/lixenwraith/puzzle-snap/piece"
	"github.com/lixenwraith/puzzle-snap/puzzle"
	"github.com/lixenwraith/puzzle-snap/vmath"
)

// Setup converts the configuration into an engine board for a w x h viewport
func (c *Config) Setup(w, h int) engine.Setup {
	pc := piece.DefaultConfig(0)
	pc.DragHeight = c.Piece.DragHeight
	pc.SnapDistance = c.Piece.SnapDistance
	pc.LiftScale = c.Piece.LiftScale
	pc.RotationStep = c.Piece.RotationStep
	pc.SnapDuration = c.Piece.SnapDuration
	pc.ReturnDuration = c.Piece.ReturnDuration
	pc.DoubleTapDelay = c.Piece.DoubleTapDelay
	pc.KidAge = c.KidAge

	setup := engine.Setup{
		Piece: pc,
		Puzzle: puzzle.Config{
			WinEffect:        c.Puzzle.WinEffect,
			CelebrationScale: c.Puzzle.CelebrationScale,
			CelebrationStep:  c.Puzzle.CelebrationStep,
		},
		EffectTTL: c.Puzzle.EffectTTL,
		Width:     w,
		Height:    h,
	}

	for _, pl := range c.Pieces {
		ps := engine.PieceSetup{
			ID:    core.Entity(pl.ID),
			Start: core.NewPose(vmath.Vec3F{X: pl.X, Z: pl.Z}, pl.Yaw),
		}
		if pl.Slot != nil {
			slot := core.NewPose(vmath.Vec3F{X: pl.Slot.X, Z: pl.Slot.Z}, pl.Slot.Yaw)
			ps.Slot = &slot
		}
		setup.Pieces = append(setup.Pieces, ps)
	}
	return setup
}
