package network

import (
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/puzzle-snap/core"
)

// Hub tracks feed subscribers and fans messages out to them
type Hub struct {
	config *Config
	log    zerolog.Logger

	mu     sync.RWMutex
	subs   map[SubscriberID]*Subscriber
	nextID atomic.Uint32

	sent    atomic.Int64
	dropped atomic.Int64
}

// NewHub creates an empty hub
func NewHub(cfg *Config, logger zerolog.Logger) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Hub{
		config: cfg,
		log:    logger.With().Str("component", "feed").Logger(),
		subs:   make(map[SubscriberID]*Subscriber),
	}
}

// Subscribe registers a connection and starts its loops
// hello, if non-nil, is queued before the subscriber can receive broadcasts
func (h *Hub) Subscribe(conn *websocket.Conn, hello []byte) *Subscriber {
	s := newSubscriber(SubscriberID(h.nextID.Add(1)), conn, h.config)
	if hello != nil {
		s.Send(hello)
	}

	h.mu.Lock()
	h.subs[s.ID] = s
	h.mu.Unlock()

	core.Go(s.writeLoop)
	core.Go(s.readLoop)
	core.Go(func() {
		<-s.Done()
		h.Remove(s.ID)
	})

	h.log.Debug().Uint32("subscriber", uint32(s.ID)).Str("addr", s.Addr).Msg("subscribed")
	return s
}

// Remove closes and forgets a subscriber
func (h *Hub) Remove(id SubscriberID) {
	h.mu.Lock()
	s, ok := h.subs[id]
	delete(h.subs, id)
	h.mu.Unlock()

	if ok {
		s.Close()
		h.log.Debug().Uint32("subscriber", uint32(id)).Msg("unsubscribed")
	}
}

// Count returns the number of live subscribers
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Broadcast encodes msg once and queues it on every subscriber
// Subscribers that cannot keep up are dropped; returns the number queued
func (h *Hub) Broadcast(msg *Message) int {
	data, err := msg.Encode()
	if err != nil {
		h.log.Warn().Err(err).Str("type", string(msg.Type)).Msg("failed to encode feed message")
		return 0
	}

	h.mu.RLock()
	subs := make([]*Subscriber, 0, len(h.subs))
	for _, s := range h.subs {
		subs = append(subs, s)
	}
	h.mu.RUnlock()

	n := 0
	for _, s := range subs {
		if s.Send(data) {
			n++
			continue
		}
		h.dropped.Add(1)
		h.log.Warn().Uint32("subscriber", uint32(s.ID)).Msg("send queue full, dropping subscriber")
		h.Remove(s.ID)
	}
	h.sent.Add(int64(n))
	return n
}

// CloseAll disconnects every subscriber
func (h *Hub) CloseAll() {
	h.mu.Lock()
	subs := h.subs
	h.subs = make(map[SubscriberID]*Subscriber)
	h.mu.Unlock()

	for _, s := range subs {
		s.Close()
	}
}

// Sent returns the number of frames queued across all subscribers
func (h *Hub) Sent() int64 {
	return h.sent.Load()
}

// Dropped returns the number of subscribers dropped for falling behind
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}
