package piece

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/event"
	"github.com/lixenwraith/puzzle-snap/vmath"
)

// SoundPlayer plays fire-and-forget one-shot clips
type SoundPlayer interface {
	Play(st core.SoundType, volume float64) bool
}

// CompletionListener is notified when a piece locks into its slot
type CompletionListener interface {
	PieceLocked(id core.Entity)
}

// Camera projects a screen position to a world ray
type Camera interface {
	ScreenRay(x, y float64) vmath.Ray
}

// Picker hit-tests a ray against the collision volumes in the scene
type Picker interface {
	Pick(ray vmath.Ray) (core.Entity, bool)
}

// Deps are the collaborators injected into every piece
// Sound, Completion, Events and Clock are optional; nil is a silent no-op
type Deps struct {
	Sound      SoundPlayer
	Completion CompletionListener
	Camera     Camera
	Picker     Picker
	Clock      core.Clock
	Events     *event.EventQueue
	Logger     zerolog.Logger
}
