package piece

import (
	"testing"
	"time"

	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/vmath"
)

func TestAnimationNoOvershoot(t *testing.T) {
	anim := &Animation{
		Start:    core.NewPose(vmath.Vec3F{X: 2}, 0),
		Target:   core.NewPose(vmath.Vec3F{Z: 4}, 90),
		Duration: 200 * time.Millisecond,
	}

	pose, done := anim.Step(50 * time.Millisecond)
	if done {
		t.Fatal("finished after a quarter of the duration")
	}
	if pose.Position.X != 1.5 || pose.Position.Z != 1 {
		t.Errorf("position at t=0.25: got %+v", pose.Position)
	}
	if yaw := vmath.QYawDegrees(pose.Rotation); yaw < 22.4 || yaw > 22.6 {
		t.Errorf("yaw at t=0.25: got %v, want 22.5", yaw)
	}

	// Large dt lands exactly on target
	pose, done = anim.Step(time.Second)
	if !done {
		t.Fatal("not finished past duration")
	}
	if pose != anim.Target {
		t.Errorf("final pose: got %+v, want %+v", pose, anim.Target)
	}
}

func TestAnimationZeroDuration(t *testing.T) {
	anim := &Animation{Target: core.NewPose(vmath.Vec3F{X: 1}, 45)}
	pose, done := anim.Step(0)
	if !done || pose != anim.Target {
		t.Errorf("zero duration: got %+v done=%v", pose, done)
	}
}
