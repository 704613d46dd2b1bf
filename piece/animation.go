package piece

import (
	"time"

	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/vmath"
)

// AnimationKind tells which drop branch an animation belongs to
type AnimationKind uint8

const (
	AnimSnap AnimationKind = iota
	AnimReturn
)

// Animation moves a piece from Start to Target over Duration
// Position is interpolated linearly, rotation spherically
type Animation struct {
	Kind       AnimationKind
	Start      core.Pose
	Target     core.Pose
	Elapsed    time.Duration
	Duration   time.Duration
	OnComplete func()
}

// Step advances by dt and returns the pose to apply
// Once Elapsed reaches Duration the exact Target is returned with done=true
func (a *Animation) Step(dt time.Duration) (pose core.Pose, done bool) {
	a.Elapsed += dt
	if a.Duration <= 0 || a.Elapsed >= a.Duration {
		return a.Target, true
	}

	t := float64(a.Elapsed) / float64(a.Duration)
	return core.Pose{
		Position: vmath.V3FLerp(a.Start.Position, a.Target.Position, t),
		Rotation: vmath.QSlerp(a.Start.Rotation, a.Target.Rotation, t),
	}, false
}
