package input

import "time"

// Phase is the lifecycle step of a pointer interaction
type Phase uint8

const (
	PhaseNone Phase = iota
	PhaseBegan
	PhaseMoved
	PhaseEnded
	PhaseCanceled
	// PhaseSecondary is a discrete secondary action (right click)
	PhaseSecondary
)

// Source identifies the device class behind a pointer event
type Source uint8

const (
	SourceMouse Source = iota
	SourceTouch
)

// PointerEvent is one screen-space pointer sample
// X and Y are screen coordinates; fractional values address sub-cell positions
type PointerEvent struct {
	Phase  Phase
	Source Source
	X, Y   float64
	When   time.Time
}

// Ends reports whether the event terminates a drag
func (e PointerEvent) Ends() bool {
	return e.Phase == PhaseEnded || e.Phase == PhaseCanceled
}

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "Began"
	case PhaseMoved:
		return "Moved"
	case PhaseEnded:
		return "Ended"
	case PhaseCanceled:
		return "Canceled"
	case PhaseSecondary:
		return "Secondary"
	default:
		return "None"
	}
}

func (s Source) String() string {
	if s == SourceTouch {
		return "Touch"
	}
	return "Mouse"
}
