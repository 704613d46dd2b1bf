package engine

import (
	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/effect"
	"github.com/lixenwraith/puzzle-snap/puzzle"
	"github.com/lixenwraith/puzzle-snap/vmath"
)

// PieceView is a read-only copy of one piece
type PieceView struct {
	ID       core.Entity `json:"id"`
	Position vmath.Vec3F `json:"position"`
	Yaw      float64     `json:"yaw"`
	Scale    float64     `json:"scale"`
	State    string      `json:"state"`
	Locked   bool        `json:"locked"`
	Bounds   vmath.AABB  `json:"-"`
}

// SlotView is a read-only copy of one slot
type SlotView struct {
	Piece       core.Entity `json:"piece"`
	Position    vmath.Vec3F `json:"position"`
	Yaw         float64     `json:"yaw"`
	Highlighted bool        `json:"highlighted"`
	Visible     bool        `json:"visible"`
}

// Snapshot is a consistent copy of the board for renderers and observers
type Snapshot struct {
	Frame   int64             `json:"frame"`
	Phase   string            `json:"phase"`
	Locked  int               `json:"locked"`
	Total   int               `json:"total"`
	Pieces  []PieceView       `json:"pieces"`
	Slots   []SlotView        `json:"slots"`
	Effects []effect.Instance `json:"-"`
	Camera  Camera            `json:"-"`

	phase puzzle.Phase
}

// PuzzlePhase returns the typed phase
func (s Snapshot) PuzzlePhase() puzzle.Phase {
	return s.phase
}

// Snapshot copies the board state under the game lock
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

// DispatchSnapshot copies the board state without locking
// Only valid from an event handler, which runs inside Tick
func (g *Game) DispatchSnapshot() Snapshot {
	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	s := Snapshot{
		Frame:   g.frame.Load(),
		phase:   g.manager.Phase(),
		Phase:   g.manager.Phase().String(),
		Total:   len(g.pieces),
		Pieces:  make([]PieceView, 0, len(g.pieces)),
		Slots:   make([]SlotView, 0, len(g.slots)),
		Effects: g.effects.Active(),
		Camera:  *g.camera,
	}

	for _, p := range g.pieces {
		pose := p.Pose()
		s.Pieces = append(s.Pieces, PieceView{
			ID:       p.ID(),
			Position: pose.Position,
			Yaw:      p.YawDegrees(),
			Scale:    p.Scale(),
			State:    p.State().String(),
			Locked:   p.Locked(),
			Bounds:   p.Bounds(),
		})
		if p.Locked() {
			s.Locked++
		}

		if slot := p.Slot(); slot != nil {
			s.Slots = append(s.Slots, SlotView{
				Piece:       p.ID(),
				Position:    slot.Pose.Position,
				Yaw:         vmath.QYawDegrees(slot.Pose.Rotation),
				Highlighted: slot.Highlighted,
				Visible:     slot.Visible,
			})
		}
	}
	return s
}

