package event

import (
	"sync"

	"github.com/lixenwraith/puzzle-snap/parameter"
)

// EventQueue is a bounded FIFO of game events
// Producers may run on any goroutine; the game loop is the single consumer
// When full, the oldest pending event is overwritten and counted as dropped
type EventQueue struct {
	mu      sync.Mutex
	ring    [parameter.EventQueueSize]GameEvent
	start   int // Index of the oldest pending event
	count   int
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, evicting the oldest one if the ring is full
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == len(eq.ring) {
		eq.ring[eq.start] = event
		eq.start = (eq.start + 1) % len(eq.ring)
		eq.dropped++
		return
	}
	eq.ring[(eq.start+eq.count)%len(eq.ring)] = event
	eq.count++
}

// Emit is a nil-safe Push helper used by components with an optional queue
func (eq *EventQueue) Emit(t EventType, payload any, frame int64) {
	if eq == nil {
		return
	}
	eq.Push(GameEvent{Type: t, Payload: payload, Frame: frame})
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == 0 {
		return nil
	}

	out := make([]GameEvent, eq.count)
	for i := range out {
		idx := (eq.start + i) % len(eq.ring)
		out[i] = eq.ring[idx]
		eq.ring[idx] = GameEvent{} // Release payload references
	}
	eq.start, eq.count = 0, 0
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.count
}

// Dropped returns the number of events lost to overflow
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
