package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/effect"
	"github.com/lixenwraith/puzzle-snap/event"
	"github.com/lixenwraith/puzzle-snap/input"
	"github.com/lixenwraith/puzzle-snap/parameter"
	"github.com/lixenwraith/puzzle-snap/physics"
	"github.com/lixenwraith/puzzle-snap/piece"
	"github.com/lixenwraith/puzzle-snap/puzzle"
	"github.com/lixenwraith/puzzle-snap/vmath"
)

// PieceSetup places one piece and its optional slot
type PieceSetup struct {
	ID    core.Entity
	Start core.Pose
	Slot  *core.Pose // nil: the piece has no slot and never snaps
}

// Setup describes a puzzle board
type Setup struct {
	Pieces    []PieceSetup
	Piece     piece.Config // Template; ID is taken from each PieceSetup
	Puzzle    puzzle.Config
	EffectTTL time.Duration // Lifetime of the win effect; <= 0 keeps the default
	Width     int // Initial viewport in cells
	Height    int
}

// Deps are the external collaborators of a game
type Deps struct {
	Sound  piece.SoundPlayer // nil plays nothing
	Clock  core.Clock
	Logger zerolog.Logger
}

// Game owns the board and runs one tick at a time
// Tick and every read path take mu; input arrives through Submit from any goroutine
type Game struct {
	mu  sync.Mutex
	log zerolog.Logger

	queue  *event.EventQueue
	router *event.Router[*Game]
	input  chan input.PointerEvent

	camera  *Camera
	space   *physics.Space
	effects *effect.Registry
	manager *puzzle.Manager
	pieces  []*piece.Piece
	slots   []*piece.Slot

	frame   atomic.Int64
	dropped atomic.Int64
}

// NewGame builds pieces, slots and the puzzle manager from setup
func NewGame(setup Setup, deps Deps) *Game {
	g := &Game{
		log:    deps.Logger.With().Str("component", "engine").Logger(),
		queue:  event.NewEventQueue(),
		input:  make(chan input.PointerEvent, parameter.InputBufferSize),
		camera: NewCamera(setup.Width, setup.Height),
		space:  physics.NewSpace(),
	}
	g.router = event.NewRouter[*Game](g.queue)
	g.effects = effect.NewRegistry(parameter.WinEffectTTL, deps.Logger)
	if setup.Puzzle.WinEffect != "" && setup.EffectTTL > 0 {
		g.effects.Define(setup.Puzzle.WinEffect, setup.EffectTTL)
	}
	g.manager = puzzle.NewManager(nil, setup.Puzzle, puzzle.Deps{
		Sound:   deps.Sound,
		Effects: g.effects,
		Events:  g.queue,
		Clock:   deps.Clock,
		Logger:  deps.Logger,
	})

	for _, ps := range setup.Pieces {
		var slot *piece.Slot
		if ps.Slot != nil {
			slot = piece.NewSlot(*ps.Slot)
			g.slots = append(g.slots, slot)
		}

		cfg := setup.Piece
		cfg.ID = ps.ID
		p := piece.New(cfg, ps.Start, slot, piece.Deps{
			Sound:      deps.Sound,
			Completion: g.manager,
			Camera:     g.camera,
			Picker:     g.space,
			Clock:      deps.Clock,
			Events:     g.queue,
			Logger:     deps.Logger,
		})
		g.space.Add(p.ID(), p.Bounds)
		g.manager.Add(p)
		g.pieces = append(g.pieces, p)
	}

	g.router.Register(&logHandler{log: g.log})
	g.log.Info().Int("pieces", len(g.pieces)).Int("slots", len(g.slots)).Msg("game created")
	return g
}

// RegisterHandler adds an event handler; must be called before the scheduler starts
func (g *Game) RegisterHandler(h event.Handler[*Game]) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.router.Register(h)
}

// Submit buffers a pointer event for the next tick
// Returns false when the buffer is full and the event was dropped
func (g *Game) Submit(ev input.PointerEvent) bool {
	select {
	case g.input <- ev:
		return true
	default:
		g.dropped.Add(1)
		return false
	}
}

// Tick drains input, advances pieces, the puzzle and effects, then dispatches events
func (g *Game) Tick(dt time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.drainInput()

	for _, p := range g.pieces {
		p.Update(dt)
	}
	g.manager.Update(dt)
	g.effects.Update(dt)

	g.router.DispatchAll(g)
	g.frame.Add(1)
}

// drainInput delivers every pending event to every piece
// Hit-testing inside each piece makes only the piece under the pointer respond
func (g *Game) drainInput() {
	for {
		select {
		case ev := <-g.input:
			for _, p := range g.pieces {
				p.HandlePointer(ev)
			}
		default:
			return
		}
	}
}

// Frame returns the number of completed ticks
func (g *Game) Frame() int64 {
	return g.frame.Load()
}

// DroppedInput returns the number of pointer events lost to a full buffer
func (g *Game) DroppedInput() int64 {
	return g.dropped.Load()
}

// Resize updates the camera viewport
func (g *Game) Resize(w, h int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.camera.Resize(w, h)
}

// WorldToScreen projects a world point with the current camera
func (g *Game) WorldToScreen(p vmath.Vec3F) (x, y float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.camera.WorldToScreen(p)
}

// Completed reports whether the puzzle has been solved
func (g *Game) Completed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.manager.Completed()
}
