package puzzle

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/event"
	"github.com/lixenwraith/puzzle-snap/parameter"
	"github.com/lixenwraith/puzzle-snap/piece"
	"github.com/lixenwraith/puzzle-snap/vmath"
)

// EffectSpawner instantiates a named visual effect at a world position
type EffectSpawner interface {
	Spawn(name string, at vmath.Vec3F)
}

// Config holds the completion sequence tunables
type Config struct {
	WinEffect        string // Empty disables the effect
	CelebrationScale float64
	CelebrationStep  time.Duration
}

// DefaultConfig returns the standard completion sequence
func DefaultConfig() Config {
	return Config{
		WinEffect:        parameter.WinEffectName,
		CelebrationScale: parameter.CelebrationScale,
		CelebrationStep:  parameter.CelebrationStepDelay,
	}
}

// Deps are optional collaborators; nil entries are skipped
type Deps struct {
	Sound   piece.SoundPlayer
	Effects EffectSpawner
	Events  *event.EventQueue
	Clock   core.Clock
	Logger  zerolog.Logger
}

// celebration walks the pieces pulsing one at a time
// The Update of the tick that started it is skipped: that dt elapsed before the first pulse
type celebration struct {
	index   int
	elapsed time.Duration
	started bool
}

// Manager tracks the pieces of one puzzle and runs the completion sequence
// It does not own the pieces; all calls come from the game loop goroutine
type Manager struct {
	cfg    Config
	deps   Deps
	log    zerolog.Logger
	pieces []*piece.Piece

	phase      Phase
	phaseStart time.Time
	celebrate  *celebration
	frame      int64
}

// NewManager creates a manager in the Playing phase
func NewManager(pieces []*piece.Piece, cfg Config, deps Deps) *Manager {
	m := &Manager{
		cfg:    cfg,
		deps:   deps,
		log:    deps.Logger.With().Str("component", "puzzle").Logger(),
		pieces: append([]*piece.Piece(nil), pieces...),
		phase:  PhasePlaying,
	}
	m.phaseStart = m.now()
	return m
}

// Add appends a piece; ignored once the puzzle has completed
func (m *Manager) Add(p *piece.Piece) {
	if m.phase != PhasePlaying || p == nil {
		return
	}
	m.pieces = append(m.pieces, p)
}

// Pieces returns the managed pieces in celebration order
func (m *Manager) Pieces() []*piece.Piece {
	return m.pieces
}

func (m *Manager) Phase() Phase { return m.phase }

// PhaseDuration returns how long the current phase has been active
func (m *Manager) PhaseDuration() time.Duration {
	return m.now().Sub(m.phaseStart)
}

// Completed reports whether every piece locked and the win sequence fired
func (m *Manager) Completed() bool {
	return m.phase != PhasePlaying
}

// PieceLocked is the completion listener wired into every piece
func (m *Manager) PieceLocked(id core.Entity) {
	m.log.Debug().Uint64("piece", uint64(id)).Msg("piece locked")
	m.CheckCompletion()
}

// CheckCompletion starts the win sequence once every piece is locked
// Runs at most once; an empty puzzle never completes
func (m *Manager) CheckCompletion() bool {
	if m.phase != PhasePlaying || len(m.pieces) == 0 {
		return false
	}
	for _, p := range m.pieces {
		if !p.Locked() {
			return false
		}
	}

	if !m.transition(PhaseCelebrating) {
		return false
	}
	m.log.Info().Int("pieces", len(m.pieces)).Msg("puzzle completed")
	m.emit(event.EventPuzzleCompleted, &event.PuzzleCompletedPayload{Pieces: len(m.pieces)})

	if m.cfg.WinEffect != "" && m.deps.Effects != nil {
		origin := vmath.Vec3F{}
		m.deps.Effects.Spawn(m.cfg.WinEffect, origin)
		m.emit(event.EventEffectSpawned, &event.EffectSpawnedPayload{Name: m.cfg.WinEffect, At: origin})
	}

	m.celebrate = &celebration{}
	m.pulse(0)

	if m.deps.Sound != nil {
		played := m.deps.Sound.Play(core.SoundWin, parameter.DefaultSFXVolume)
		m.emit(event.EventSoundPlayed, &event.SoundPayload{
			Sound:  core.SoundWin,
			Volume: parameter.DefaultSFXVolume,
			Played: played,
		})
	}
	return true
}

// Update advances the celebration by dt
func (m *Manager) Update(dt time.Duration) {
	defer func() { m.frame++ }()

	if m.phase != PhaseCelebrating || m.celebrate == nil {
		return
	}

	c := m.celebrate
	if !c.started {
		c.started = true
		return
	}
	c.elapsed += dt
	for c.index < len(m.pieces) && c.elapsed >= m.cfg.CelebrationStep {
		c.elapsed -= m.cfg.CelebrationStep
		m.pieces[c.index].SetScale(1)
		c.index++
		if c.index < len(m.pieces) {
			m.pulse(c.index)
		}
	}

	if c.index >= len(m.pieces) {
		took := m.PhaseDuration()
		m.celebrate = nil
		m.transition(PhaseComplete)
		m.emit(event.EventCelebrationDone, nil)
		m.log.Debug().Dur("took", took).Msg("celebration done")
	}
}

func (m *Manager) pulse(i int) {
	p := m.pieces[i]
	p.SetScale(p.Scale() * m.cfg.CelebrationScale)
	m.emit(event.EventCelebrationPulse, &event.PiecePayload{Piece: p.ID()})
}

func (m *Manager) transition(to Phase) bool {
	if !CanTransition(m.phase, to) {
		m.log.Warn().Stringer("from", m.phase).Stringer("to", to).Msg("invalid phase transition")
		return false
	}
	m.phase = to
	m.phaseStart = m.now()
	return true
}

func (m *Manager) now() time.Time {
	if m.deps.Clock != nil {
		return m.deps.Clock.Now()
	}
	return time.Now()
}

func (m *Manager) emit(t event.EventType, payload any) {
	m.deps.Events.Emit(t, payload, m.frame)
}
