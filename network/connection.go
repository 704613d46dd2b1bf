package network

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// SubscriberID uniquely identifies a feed connection
type SubscriberID uint32

// ConnState represents connection lifecycle state
type ConnState uint8

const (
	StateConnected ConnState = iota
	StateDisconnecting
)

// Subscriber is one observer connected to the feed
type Subscriber struct {
	ID       SubscriberID
	Addr     string
	State    atomic.Uint32 // ConnState
	LastSent atomic.Int64  // UnixNano

	conn         *websocket.Conn
	writeTimeout time.Duration

	// Send queue, drained by writeLoop
	sendCh chan []byte

	closeCh   chan struct{}
	closeOnce sync.Once
}

func newSubscriber(id SubscriberID, conn *websocket.Conn, cfg *Config) *Subscriber {
	s := &Subscriber{
		ID:           id,
		Addr:         conn.RemoteAddr().String(),
		conn:         conn,
		writeTimeout: cfg.WriteTimeout,
		sendCh:       make(chan []byte, cfg.SendQueueSize),
		closeCh:      make(chan struct{}),
	}
	s.State.Store(uint32(StateConnected))
	return s
}

// Send queues an encoded frame
// Returns false if the subscriber is closing or its queue is full
func (s *Subscriber) Send(data []byte) bool {
	if ConnState(s.State.Load()) != StateConnected {
		return false
	}

	select {
	case s.sendCh <- data:
		return true
	default:
		return false
	}
}

// Close initiates shutdown; safe to call more than once
// writeLoop sends the close frame and releases the connection
func (s *Subscriber) Close() {
	s.closeOnce.Do(func() {
		s.State.Store(uint32(StateDisconnecting))
		close(s.closeCh)
	})
}

// Done is closed once the subscriber shuts down
func (s *Subscriber) Done() <-chan struct{} {
	return s.closeCh
}

// readLoop discards inbound frames; the feed is one-way but control frames must be read
func (s *Subscriber) readLoop() {
	defer s.Close()

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeLoop sends queued frames
func (s *Subscriber) writeLoop() {
	defer s.conn.Close()
	defer s.Close()

	for {
		select {
		case <-s.closeCh:
			s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(s.writeTimeout))
			return
		case data := <-s.sendCh:
			s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
			s.LastSent.Store(time.Now().UnixNano())
		}
	}
}
