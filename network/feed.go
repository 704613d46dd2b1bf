package network

import (
	"github.com/lixenwraith/puzzle-snap/engine"
	"github.com/lixenwraith/puzzle-snap/event"
)

// FeedHandler relays game events to feed subscribers
// Runs inside the tick; Broadcast only queues, never writes to sockets
type FeedHandler struct {
	hub *Hub
}

func NewFeedHandler(hub *Hub) *FeedHandler {
	return &FeedHandler{hub: hub}
}

func (f *FeedHandler) EventTypes() []event.EventType {
	types := make([]event.EventType, 0, len(event.AllTypes()))
	for _, t := range event.AllTypes() {
		if t != event.EventSoundPlayed {
			types = append(types, t)
		}
	}
	return types
}

func (f *FeedHandler) HandleEvent(g *engine.Game, ev event.GameEvent) {
	if f.hub.Count() == 0 {
		return
	}

	f.hub.Broadcast(&Message{
		Type:    MsgEvent,
		Event:   ev.Type.String(),
		Frame:   ev.Frame,
		Payload: ev.Payload,
	})

	switch ev.Type {
	case event.EventPieceLocked, event.EventCelebrationDone:
		f.hub.Broadcast(NewSnapshotMessage(MsgSnapshot, g.DispatchSnapshot()))
	}
}
