package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/parameter"
)

// Ticker is advanced once per scheduler tick
type Ticker interface {
	Tick(dt time.Duration)
}

// ClockScheduler runs game logic on a fixed tick from a single goroutine
// Handles pause-aware scheduling without busy-wait
type ClockScheduler struct {
	ticker Ticker
	clock  *PausableClock
	log    zerolog.Logger

	tickInterval     time.Duration
	lastGameTickTime time.Time
	nextTickDeadline time.Time

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Signals renderers that a tick completed; never blocks the loop
	updateDone chan struct{}
}

// NewClockScheduler creates a scheduler ticking every tickInterval of game time
func NewClockScheduler(ticker Ticker, clock *PausableClock, tickInterval time.Duration, logger zerolog.Logger) *ClockScheduler {
	if tickInterval <= 0 {
		tickInterval = parameter.GameUpdateInterval
	}
	return &ClockScheduler{
		ticker:       ticker,
		clock:        clock,
		log:          logger.With().Str("component", "scheduler").Logger(),
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		updateDone:   make(chan struct{}, 1),
	}
}

// Updates returns the tick completion signal channel
func (cs *ClockScheduler) Updates() <-chan struct{} {
	return cs.updateDone
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
		cs.log.Debug().Dur("interval", cs.tickInterval).Msg("scheduler started")
	}
}

// Stop halts the scheduler loop and waits for the current tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
			cs.log.Debug().Uint64("ticks", cs.tickCount.Load()).Msg("scheduler stopped")
		}
	})
}

// Pause freezes game time; no ticks run until Resume
func (cs *ClockScheduler) Pause() {
	cs.clock.Pause()
}

// Resume continues ticking from the frozen game time
func (cs *ClockScheduler) Resume() {
	cs.clock.Resume()
}

// IsPaused reports whether the scheduler is paused
func (cs *ClockScheduler) IsPaused() bool {
	return cs.clock.IsPaused()
}

// TickCount returns the number of ticks executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.lastGameTickTime = cs.clock.Now()
	cs.nextTickDeadline = cs.lastGameTickTime.Add(cs.tickInterval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if cs.clock.IsPaused() {
			// Longer sleep while paused to save CPU
			sleepDuration = cs.tickInterval * 2
		} else {
			gameNow := cs.clock.Now()
			if !gameNow.Before(cs.nextTickDeadline) {
				cs.processTick(gameNow)
				sleepDuration = cs.nextTickDeadline.Sub(cs.clock.Now())
			} else {
				sleepDuration = cs.nextTickDeadline.Sub(gameNow)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}

// processTick executes one tick and schedules the next deadline
func (cs *ClockScheduler) processTick(gameNow time.Time) {
	dt := gameNow.Sub(cs.lastGameTickTime)
	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}

	cs.ticker.Tick(dt)

	cs.lastGameTickTime = gameNow
	cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

	// Too far behind: skip missed ticks instead of bursting
	if gameNow.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
		cs.nextTickDeadline = gameNow.Add(cs.tickInterval)
	}

	cs.tickCount.Add(1)

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}
