package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value, never emitted
	EventNone EventType = iota

	// === Piece Event ===

	// EventPieceGrabbed signals a piece entered Dragging
	// Trigger: Piece.PointerDown | Payload: *PiecePayload
	EventPieceGrabbed

	// EventPieceReleased signals a drag ended and the snap decision was taken
	// Trigger: Piece.PointerUp | Payload: *PieceReleasedPayload
	EventPieceReleased

	// EventPieceRotated signals one rotation step
	// Trigger: Piece.Rotate | Payload: *PieceRotatedPayload
	EventPieceRotated

	// EventPieceLocked signals arrival in the slot; terminal for the piece
	// Trigger: Piece snap animation complete | Payload: *PiecePayload
	EventPieceLocked

	// EventPieceReturned signals arrival back at the original pose
	// Trigger: Piece return animation complete | Payload: *PiecePayload
	EventPieceReturned

	// EventSlotHighlight signals a change of the slot highlight state while dragging
	// Trigger: Piece.PointerMove | Payload: *SlotHighlightPayload
	EventSlotHighlight

	// === Puzzle Event ===

	// EventPuzzleCompleted fires once when every piece is locked
	// Trigger: Manager.CheckCompletion | Payload: *PuzzleCompletedPayload
	EventPuzzleCompleted

	// EventCelebrationPulse fires once per piece during the celebration
	// Trigger: Manager.Update | Payload: *PiecePayload
	EventCelebrationPulse

	// EventCelebrationDone fires after the last piece was pulsed
	// Trigger: Manager.Update | Payload: nil
	EventCelebrationDone

	// === Effect / Audio Event ===

	// EventEffectSpawned signals a transient visual effect instantiation
	// Trigger: Manager.CheckCompletion | Payload: *EffectSpawnedPayload
	EventEffectSpawned

	// EventSoundPlayed records a one-shot sound request
	// Trigger: Piece, Manager | Payload: *SoundPayload
	EventSoundPlayed

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventNone:             "none",
	EventPieceGrabbed:     "piece_grabbed",
	EventPieceReleased:    "piece_released",
	EventPieceRotated:     "piece_rotated",
	EventPieceLocked:      "piece_locked",
	EventPieceReturned:    "piece_returned",
	EventSlotHighlight:    "slot_highlight",
	EventPuzzleCompleted:  "puzzle_completed",
	EventCelebrationPulse: "celebration_pulse",
	EventCelebrationDone:  "celebration_done",
	EventEffectSpawned:    "effect_spawned",
	EventSoundPlayed:      "sound_played",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return eventNames[t]
}

// AllTypes lists every emitted event type, for handlers that observe everything
func AllTypes() []EventType {
	types := make([]EventType, 0, eventTypeCount-1)
	for t := EventNone + 1; t < eventTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
