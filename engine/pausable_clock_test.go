package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/puzzle-snap/core"
)

func TestPausableClockFreezes(t *testing.T) {
	start := time.Unix(500, 0)
	wall := core.NewManualClock(start)
	pc := NewPausableClock(wall)

	wall.Advance(time.Second)
	if got := pc.Now(); !got.Equal(start.Add(time.Second)) {
		t.Fatalf("running: got %v, want +1s", got.Sub(start))
	}

	pc.Pause()
	pc.Pause() // idempotent
	wall.Advance(5 * time.Second)
	if got := pc.Now(); !got.Equal(start.Add(time.Second)) {
		t.Errorf("paused: got %v, want frozen at +1s", got.Sub(start))
	}
	if d := pc.TotalPauseDuration(); d != 5*time.Second {
		t.Errorf("pause in progress: got %v, want 5s", d)
	}

	pc.Resume()
	wall.Advance(time.Second)
	if got := pc.Now(); !got.Equal(start.Add(2 * time.Second)) {
		t.Errorf("resumed: got %v, want +2s", got.Sub(start))
	}
	if !pc.RealTime().Equal(start.Add(7 * time.Second)) {
		t.Error("wall time must ignore pauses")
	}
	if pc.IsPaused() {
		t.Error("still paused after Resume")
	}
}
