package event

// Handler reacts to a subset of event types during dispatch
// HandleEvent runs on the dispatching goroutine with ctx as the dispatch context
type Handler[T any] interface {
	EventTypes() []EventType
	HandleEvent(ctx T, event GameEvent)
}

// Router fans queued events out to handlers by type
// Handlers of one type run in registration order; dispatch is not goroutine-safe
type Router[T any] struct {
	queue  *EventQueue
	routes [eventTypeCount][]Handler[T]
}

func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{queue: queue}
}

// Register subscribes h to each type it declares; unknown and repeated types are skipped
func (r *Router[T]) Register(h Handler[T]) {
	var seen [eventTypeCount]bool
	for _, t := range h.EventTypes() {
		if t <= EventNone || t >= eventTypeCount || seen[t] {
			continue
		}
		seen[t] = true
		r.routes[t] = append(r.routes[t], h)
	}
}

// DispatchAll drains the queue in FIFO order and returns how many events it drained
func (r *Router[T]) DispatchAll(ctx T) int {
	pending := r.queue.Consume()
	for _, ev := range pending {
		if ev.Type <= EventNone || ev.Type >= eventTypeCount {
			continue
		}
		for _, h := range r.routes[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
	return len(pending)
}

func (r *Router[T]) HandlerCount(t EventType) int {
	if t < 0 || t >= eventTypeCount {
		return 0
	}
	return len(r.routes[t])
}

func (r *Router[T]) HasHandlers(t EventType) bool {
	return r.HandlerCount(t) > 0
}
