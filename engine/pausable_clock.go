package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/puzzle-snap/core"
)

// PausableClock provides game time that stands still while paused
type PausableClock struct {
	mu sync.RWMutex

	real core.Clock

	realStartTime   time.Time
	paused          bool
	pauseStartTime  time.Time     // Real time the current pause began
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a running clock over wall; nil uses wall time
func NewPausableClock(wall core.Clock) *PausableClock {
	if wall == nil {
		wall = core.WallClock{}
	}
	return &PausableClock{
		real:          wall,
		realStartTime: wall.Now(),
	}
}

// Now returns current game time (frozen during a pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	realNow := pc.real.Now()
	if pc.paused {
		realNow = pc.pauseStartTime
	}
	return pc.realStartTime.Add(realNow.Sub(pc.realStartTime) - pc.totalPausedTime)
}

// RealTime returns the underlying clock, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.real.Now()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.real.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.real.Now().Sub(pc.pauseStartTime)
	pc.paused = false
	pc.pauseStartTime = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.real.Now().Sub(pc.pauseStartTime)
	}
	return total
}
