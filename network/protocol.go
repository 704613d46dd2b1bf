package network

import (
	"encoding/json"

	"github.com/lixenwraith/puzzle-snap/engine"
)

// ProtocolVersion is sent with every message
const ProtocolVersion = 1

// MessageType identifies the semantic meaning of a feed message
type MessageType string

const (
	// MsgHello is the first message on every connection, carrying the full board
	MsgHello MessageType = "hello"

	// MsgEvent relays one game event
	MsgEvent MessageType = "event"

	// MsgSnapshot carries the full board after lifecycle milestones
	MsgSnapshot MessageType = "snapshot"
)

// Message is one JSON frame on the feed
type Message struct {
	Ver      int              `json:"ver"`
	Type     MessageType      `json:"type"`
	Event    string           `json:"event,omitempty"`
	Frame    int64            `json:"frame"`
	Payload  any              `json:"payload,omitempty"`
	Snapshot *engine.Snapshot `json:"snapshot,omitempty"`
}

// Encode marshals the message, stamping the protocol version
func (m *Message) Encode() ([]byte, error) {
	m.Ver = ProtocolVersion
	return json.Marshal(m)
}

// NewSnapshotMessage wraps a board snapshot
func NewSnapshotMessage(t MessageType, s engine.Snapshot) *Message {
	return &Message{
		Type:     t,
		Frame:    s.Frame,
		Snapshot: &s,
	}
}
