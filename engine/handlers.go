package engine

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/puzzle-snap/event"
)

// logHandler records puzzle lifecycle events
type logHandler struct {
	log zerolog.Logger
}

func (h *logHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPieceLocked,
		event.EventPieceReturned,
		event.EventPuzzleCompleted,
		event.EventEffectSpawned,
		event.EventCelebrationDone,
	}
}

func (h *logHandler) HandleEvent(g *Game, ev event.GameEvent) {
	l := h.log.Info().Stringer("event", ev.Type).Int64("frame", ev.Frame)

	switch p := ev.Payload.(type) {
	case *event.PiecePayload:
		l = l.Uint64("piece", uint64(p.Piece))
	case *event.PuzzleCompletedPayload:
		l = l.Int("pieces", p.Pieces)
	case *event.EffectSpawnedPayload:
		l = l.Str("effect", p.Name)
	}
	l.Msg("puzzle event")
}
