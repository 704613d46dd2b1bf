package piece

// State is the interaction state of a piece
type State uint8

const (
	StateIdle State = iota
	StateDragging
	StateAnimating
	// StateLocked is terminal: the piece accepts no further input
	StateLocked
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDragging:
		return "Dragging"
	case StateAnimating:
		return "Animating"
	case StateLocked:
		return "Locked"
	default:
		return "Unknown"
	}
}
