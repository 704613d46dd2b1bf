package piece

import (
	"github.com/lixenwraith/puzzle-snap/core"
)

// Slot is the target a piece snaps into
// Pieces hold a reference but never own it; several views read Highlighted and Visible
type Slot struct {
	Pose        core.Pose
	Highlighted bool // Drop would snap from the dragged piece's current position
	Visible     bool // Hidden once its piece locks
}

// NewSlot creates a visible, unhighlighted slot
func NewSlot(pose core.Pose) *Slot {
	return &Slot{Pose: pose, Visible: true}
}
