package network

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/puzzle-snap/engine"
)

// SnapshotFunc returns the current board; must be safe to call from any goroutine
type SnapshotFunc func() engine.Snapshot

// Handler upgrades HTTP requests to feed subscriptions
type Handler struct {
	hub      *Hub
	snapshot SnapshotFunc
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates an upgrade handler; snapshot may be nil to skip the hello frame
func NewHandler(hub *Hub, snapshot SnapshotFunc, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:      hub,
		snapshot: snapshot,
		log:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  hub.config.ReadBufferSize,
			WriteBufferSize: hub.config.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Str("addr", r.RemoteAddr).Msg("feed upgrade failed")
		return
	}

	var hello []byte
	if h.snapshot != nil {
		hello, err = NewSnapshotMessage(MsgHello, h.snapshot()).Encode()
		if err != nil {
			h.log.Warn().Err(err).Msg("failed to encode hello")
			conn.Close()
			return
		}
	}

	h.hub.Subscribe(conn, hello)
}
