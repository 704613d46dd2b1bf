package telemetry

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/engine"
	"github.com/lixenwraith/puzzle-snap/event"
	"github.com/lixenwraith/puzzle-snap/input"
	"github.com/lixenwraith/puzzle-snap/parameter"
	"github.com/lixenwraith/puzzle-snap/piece"
	"github.com/lixenwraith/puzzle-snap/puzzle"
	"github.com/lixenwraith/puzzle-snap/status"
	"github.com/lixenwraith/puzzle-snap/vmath"
)

func twoPieceGame() *engine.Game {
	setup := engine.Setup{
		Piece:     piece.DefaultConfig(0),
		Puzzle:    puzzle.DefaultConfig(),
		EffectTTL: parameter.WinEffectTTL,
		Width:     80,
		Height:    24,
	}
	for i, x := range []float64{-2, 2} {
		slot := core.NewPose(vmath.Vec3F{X: x, Z: -1.5}, 0)
		setup.Pieces = append(setup.Pieces, engine.PieceSetup{
			ID:    core.Entity(i + 1),
			Start: core.NewPose(vmath.Vec3F{X: x, Z: 2}, 0),
			Slot:  &slot,
		})
	}
	return engine.NewGame(setup, engine.Deps{Logger: zerolog.Nop()})
}

func drag(g *engine.Game, from, to vmath.Vec3F) {
	for _, step := range []struct {
		phase input.Phase
		at    vmath.Vec3F
	}{
		{input.PhaseBegan, from},
		{input.PhaseMoved, to},
		{input.PhaseEnded, to},
	} {
		x, y := g.WorldToScreen(step.at)
		g.Submit(input.PointerEvent{Phase: step.phase, X: x, Y: y})
	}
	for i := 0; i < 20; i++ {
		g.Tick(16 * time.Millisecond)
	}
}

func TestHandlerCountsGameEvents(t *testing.T) {
	g := twoPieceGame()
	h, err := New(noop.NewMeterProvider().Meter("test"), nil)
	require.NoError(t, err)
	g.RegisterHandler(h)

	reg := h.Registry()
	assert.Equal(t, "Playing", reg.Label(KeyPhase))

	// Miss, then place both
	drag(g, vmath.Vec3F{X: -2, Z: 2}, vmath.Vec3F{X: 1, Z: 0})
	assert.Equal(t, int64(1), reg.Int(KeyGrabs))
	assert.Equal(t, int64(1), reg.Int(KeyReturns))
	assert.Equal(t, int64(0), reg.Int(KeyLocked))
	assert.Zero(t, reg.Float(KeyProgress))

	drag(g, vmath.Vec3F{X: -2, Z: 2}, vmath.Vec3F{X: -2, Z: -1.5})
	assert.InDelta(t, 0.5, reg.Float(KeyProgress), 1e-9)
	drag(g, vmath.Vec3F{X: 2, Z: 2}, vmath.Vec3F{X: 2, Z: -1.5})
	for i := 0; i < 20; i++ {
		g.Tick(16 * time.Millisecond)
	}

	assert.Equal(t, int64(3), reg.Int(KeyGrabs))
	assert.Equal(t, int64(2), reg.Int(KeyLocked))
	assert.Equal(t, int64(1), reg.Int(KeyCompletions))
	assert.Equal(t, int64(1), reg.Int(KeyEffects))
	assert.Equal(t, int64(2), h.locked.Load())
	assert.Equal(t, "Complete", reg.Label(KeyPhase))
	assert.InDelta(t, 1.0, reg.Float(KeyProgress), 1e-9)
	assert.Contains(t, reg.Lines(), "progress: 1.00")
}

func TestHandlerSharesRegistry(t *testing.T) {
	reg := status.NewRegistry()
	h, err := New(noop.NewMeterProvider().Meter("test"), reg)
	require.NoError(t, err)
	assert.Same(t, reg, h.Registry())

	h.HandleEvent(nil, event.GameEvent{Type: event.EventPieceRotated})
	h.HandleEvent(nil, event.GameEvent{Type: event.EventPieceRotated})
	h.HandleEvent(nil, event.GameEvent{Type: event.EventSoundPlayed})

	assert.Equal(t, int64(2), reg.Int(KeyRotations))
	assert.Contains(t, reg.Lines(), "rotations: 2")
	assert.Contains(t, reg.Lines(), "phase: Playing")
}

func TestNewWithGlobalMeter(t *testing.T) {
	h, err := New(nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, h.Registry())
}
