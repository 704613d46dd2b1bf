package puzzle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/event"
	"github.com/lixenwraith/puzzle-snap/input"
	"github.com/lixenwraith/puzzle-snap/physics"
	"github.com/lixenwraith/puzzle-snap/piece"
	"github.com/lixenwraith/puzzle-snap/vmath"
)

type topCamera struct{}

func (topCamera) ScreenRay(x, y float64) vmath.Ray {
	return vmath.Ray{Origin: vmath.Vec3F{X: x, Y: 10, Z: y}, Dir: vmath.Vec3F{Y: -1}}
}

type countingSound struct {
	counts map[core.SoundType]int
}

func (s *countingSound) Play(st core.SoundType, volume float64) bool {
	s.counts[st]++
	return true
}

type spawn struct {
	name string
	at   vmath.Vec3F
}

type recordingSpawner struct {
	spawns []spawn
}

func (r *recordingSpawner) Spawn(name string, at vmath.Vec3F) {
	r.spawns = append(r.spawns, spawn{name, at})
}

type board struct {
	manager *Manager
	pieces  []*piece.Piece
	sound   *countingSound
	effects *recordingSpawner
	events  *event.EventQueue
}

// newBoard lays n pieces along z=3 with slots along z=0
func newBoard(t *testing.T, n int, cfg Config) *board {
	t.Helper()

	b := &board{
		sound:   &countingSound{counts: make(map[core.SoundType]int)},
		effects: &recordingSpawner{},
		events:  event.NewEventQueue(),
	}
	b.manager = NewManager(nil, cfg, Deps{
		Sound:   b.sound,
		Effects: b.effects,
		Events:  b.events,
	})

	space := physics.NewSpace()
	for i := 0; i < n; i++ {
		x := float64(i * 2)
		slot := piece.NewSlot(core.NewPose(vmath.Vec3F{X: x}, 0))
		p := piece.New(piece.DefaultConfig(core.Entity(i+1)), core.NewPose(vmath.Vec3F{X: x, Z: 3}, 0), slot, piece.Deps{
			Sound:      b.sound,
			Completion: b.manager,
			Camera:     topCamera{},
			Picker:     space,
			Events:     b.events,
		})
		space.Add(p.ID(), p.Bounds)
		b.manager.Add(p)
		b.pieces = append(b.pieces, p)
	}
	return b
}

func (b *board) place(i int, dx float64) {
	p := b.pieces[i]
	pos := p.Pose().Position
	slot := p.Slot().Pose.Position
	p.HandlePointer(input.PointerEvent{Phase: input.PhaseBegan, X: pos.X, Y: pos.Z})
	p.HandlePointer(input.PointerEvent{Phase: input.PhaseMoved, X: slot.X + dx, Y: slot.Z})
	p.HandlePointer(input.PointerEvent{Phase: input.PhaseEnded, X: slot.X + dx, Y: slot.Z})
	for j := 0; j < 30; j++ {
		b.tick(16 * time.Millisecond)
	}
}

func (b *board) tick(dt time.Duration) {
	for _, p := range b.pieces {
		p.Update(dt)
	}
	b.manager.Update(dt)
}

func (b *board) count(t event.EventType) int {
	n := 0
	for _, ev := range b.events.Consume() {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func TestPhaseTransitions(t *testing.T) {
	assert.True(t, CanTransition(PhasePlaying, PhaseCelebrating))
	assert.True(t, CanTransition(PhaseCelebrating, PhaseComplete))
	assert.False(t, CanTransition(PhasePlaying, PhaseComplete))
	assert.False(t, CanTransition(PhaseComplete, PhasePlaying))
	assert.False(t, CanTransition(PhaseCelebrating, PhasePlaying))
	assert.Equal(t, "Celebrating", PhaseCelebrating.String())
	assert.Equal(t, "Unknown", Phase(9).String())
}

func TestCompletionRequiresAllLocked(t *testing.T) {
	b := newBoard(t, 3, DefaultConfig())

	b.place(0, 0.1)
	b.place(1, 2.0) // Misses, returns home
	assert.False(t, b.manager.CheckCompletion())
	assert.False(t, b.manager.Completed())

	b.place(2, -0.3)
	assert.False(t, b.manager.Completed())
	assert.Equal(t, PhasePlaying, b.manager.Phase())

	b.place(1, 0.5)
	assert.True(t, b.manager.Completed())
}

func TestCompletionRunsOnce(t *testing.T) {
	b := newBoard(t, 3, DefaultConfig())
	for i := range b.pieces {
		b.place(i, 0)
	}
	require.True(t, b.manager.Completed())

	assert.False(t, b.manager.CheckCompletion())
	b.manager.PieceLocked(1)
	b.manager.PieceLocked(2)

	assert.Len(t, b.effects.spawns, 1)
	assert.Equal(t, 1, b.sound.counts[core.SoundWin])
}

func TestThreePieceScenario(t *testing.T) {
	b := newBoard(t, 3, DefaultConfig())

	var pulses []core.Entity
	completions, effects, done := 0, 0, 0
	collect := func() {
		for _, ev := range b.events.Consume() {
			switch ev.Type {
			case event.EventPuzzleCompleted:
				completions++
			case event.EventEffectSpawned:
				effects++
			case event.EventCelebrationDone:
				done++
			case event.EventCelebrationPulse:
				pulses = append(pulses, ev.Payload.(*event.PiecePayload).Piece)
			}
		}
	}

	for i := range b.pieces {
		b.place(i, 0.2)
		collect()
	}
	for j := 0; j < 20; j++ {
		b.tick(16 * time.Millisecond)
		collect()
	}

	assert.Equal(t, PhaseComplete, b.manager.Phase())
	assert.Equal(t, 1, completions)
	assert.Equal(t, 1, effects)
	assert.Equal(t, 1, done)
	assert.Equal(t, 1, b.sound.counts[core.SoundWin])
	assert.Equal(t, 3, b.sound.counts[core.SoundSnap])
	assert.Equal(t, []core.Entity{1, 2, 3}, pulses)

	require.Len(t, b.effects.spawns, 1)
	assert.Equal(t, spawn{"confetti", vmath.Vec3F{}}, b.effects.spawns[0])

	for _, p := range b.pieces {
		assert.True(t, p.Locked())
		assert.InDelta(t, 1.0, p.Scale(), 1e-9)
	}
}

func TestCelebrationPulseTiming(t *testing.T) {
	b := newBoard(t, 2, DefaultConfig())
	b.pieces[0].HandlePointer(input.PointerEvent{Phase: input.PhaseBegan, X: 0, Y: 3})
	b.pieces[0].HandlePointer(input.PointerEvent{Phase: input.PhaseMoved, X: 0, Y: 0})
	b.pieces[0].HandlePointer(input.PointerEvent{Phase: input.PhaseEnded, X: 0, Y: 0})
	b.pieces[1].HandlePointer(input.PointerEvent{Phase: input.PhaseBegan, X: 2, Y: 3})
	b.pieces[1].HandlePointer(input.PointerEvent{Phase: input.PhaseMoved, X: 2, Y: 0})
	b.pieces[1].HandlePointer(input.PointerEvent{Phase: input.PhaseEnded, X: 2, Y: 0})

	// Both snap animations finish within this tick; the manager sees the lock after pieces update
	for _, p := range b.pieces {
		p.Update(time.Second)
	}
	require.Equal(t, PhaseCelebrating, b.manager.Phase())
	assert.InDelta(t, 1.1, b.pieces[0].Scale(), 1e-9)
	assert.InDelta(t, 1.0, b.pieces[1].Scale(), 1e-9)

	// The starting tick does not count toward the first pulse
	b.manager.Update(time.Second)
	assert.InDelta(t, 1.1, b.pieces[0].Scale(), 1e-9)

	b.manager.Update(30 * time.Millisecond)
	assert.InDelta(t, 1.1, b.pieces[0].Scale(), 1e-9)

	b.manager.Update(30 * time.Millisecond)
	assert.InDelta(t, 1.0, b.pieces[0].Scale(), 1e-9)
	assert.InDelta(t, 1.1, b.pieces[1].Scale(), 1e-9)
	assert.Equal(t, PhaseCelebrating, b.manager.Phase())

	b.manager.Update(40 * time.Millisecond)
	assert.InDelta(t, 1.0, b.pieces[1].Scale(), 1e-9)
	assert.Equal(t, PhaseComplete, b.manager.Phase())
}

func TestPhaseDurationFollowsClock(t *testing.T) {
	clock := core.NewManualClock(time.Unix(1000, 0))
	m := NewManager(nil, DefaultConfig(), Deps{Clock: clock})
	clock.Advance(3 * time.Second)
	assert.Equal(t, 3*time.Second, m.PhaseDuration())

	b := newBoard(t, 1, DefaultConfig())
	b.manager.deps.Clock = clock
	b.place(0, 0)
	require.Equal(t, PhaseComplete, b.manager.Phase())

	// Each transition restarts the phase timer
	assert.Zero(t, b.manager.PhaseDuration())
	clock.Advance(time.Second)
	assert.Equal(t, time.Second, b.manager.PhaseDuration())
}

func TestNoWinEffectWhenUnset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WinEffect = ""
	b := newBoard(t, 1, cfg)

	b.place(0, 0)
	assert.True(t, b.manager.Completed())
	assert.Empty(t, b.effects.spawns)
	assert.Equal(t, 0, b.count(event.EventEffectSpawned))
	assert.Equal(t, 1, b.sound.counts[core.SoundWin])
}

func TestEmptyManagerNeverCompletes(t *testing.T) {
	m := NewManager(nil, DefaultConfig(), Deps{})
	assert.False(t, m.CheckCompletion())
	m.Update(time.Second)
	assert.Equal(t, PhasePlaying, m.Phase())
}

func TestAddIgnoredAfterCompletion(t *testing.T) {
	b := newBoard(t, 1, DefaultConfig())
	b.place(0, 0)
	require.True(t, b.manager.Completed())

	extra := piece.New(piece.DefaultConfig(9), core.Pose{Rotation: vmath.QuatIdentity}, nil, piece.Deps{})
	b.manager.Add(extra)
	assert.Len(t, b.manager.Pieces(), 1)
}
