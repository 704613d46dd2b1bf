package telemetry

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/puzzle-snap/engine"
	"github.com/lixenwraith/puzzle-snap/event"
	"github.com/lixenwraith/puzzle-snap/status"
)

const instrumentationName = "github.com/lixenwraith/puzzle-snap/telemetry"

// Status registry keys
const (
	KeyGrabs       = "grabs"
	KeyRotations   = "rotations"
	KeyLocked      = "locked"
	KeyReturns     = "returns"
	KeyCompletions = "completions"
	KeyEffects     = "effects"
	KeyPhase       = "phase"
	KeyProgress    = "progress" // Locked share of all pieces, 0 to 1
)

var statusKeys = map[event.EventType]string{
	event.EventPieceGrabbed:    KeyGrabs,
	event.EventPieceRotated:    KeyRotations,
	event.EventPieceLocked:     KeyLocked,
	event.EventPieceReturned:   KeyReturns,
	event.EventPuzzleCompleted: KeyCompletions,
	event.EventEffectSpawned:   KeyEffects,
}

// Handler counts game events as OTel metrics and mirrors them into the status registry
type Handler struct {
	registry *status.Registry

	events      metric.Int64Counter
	lockedGauge metric.Int64ObservableGauge
	locked      atomic.Int64

	// Cached registry entries, written from the dispatch goroutine only
	counters map[event.EventType]*atomic.Int64
	progress *status.Float64
}

// New creates the handler; a nil meter uses the global provider (no-op unless configured)
func New(m metric.Meter, registry *status.Registry) (*Handler, error) {
	if m == nil {
		m = otel.Meter(instrumentationName)
	}
	if registry == nil {
		registry = status.NewRegistry()
	}

	h := &Handler{
		registry: registry,
		counters: make(map[event.EventType]*atomic.Int64, len(statusKeys)),
	}

	var err error
	h.events, err = m.Int64Counter(
		"puzzle.events",
		metric.WithDescription("Total game events by type"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating events counter: %w", err)
	}

	h.lockedGauge, err = m.Int64ObservableGauge(
		"puzzle.pieces.locked",
		metric.WithDescription("Pieces currently locked into their slot"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating locked gauge: %w", err)
	}

	_, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(h.lockedGauge, h.locked.Load())
			return nil
		},
		h.lockedGauge,
	)
	if err != nil {
		return nil, fmt.Errorf("registering locked callback: %w", err)
	}

	for t, key := range statusKeys {
		h.counters[t] = registry.Ints.Get(key)
	}
	h.progress = registry.Floats.Get(KeyProgress)
	registry.SetLabel(KeyPhase, "Playing")
	return h, nil
}

func (h *Handler) EventTypes() []event.EventType {
	return event.AllTypes()
}

func (h *Handler) HandleEvent(g *engine.Game, ev event.GameEvent) {
	h.events.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("type", ev.Type.String())))

	if c, ok := h.counters[ev.Type]; ok {
		c.Add(1)
	}

	switch ev.Type {
	case event.EventPieceLocked:
		h.locked.Add(1)
		if snap := g.DispatchSnapshot(); len(snap.Pieces) > 0 {
			h.progress.Store(float64(snap.Locked) / float64(len(snap.Pieces)))
		}
	case event.EventPuzzleCompleted, event.EventCelebrationDone:
		h.registry.SetLabel(KeyPhase, g.DispatchSnapshot().Phase)
	}
}

// Registry returns the registry the handler writes to
func (h *Handler) Registry() *status.Registry {
	return h.registry
}
