package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/puzzle-snap/core"
)

// Service runs the feed HTTP server as a hub-managed service
type Service struct {
	config   *Config
	hub      *Hub
	snapshot SnapshotFunc
	log      zerolog.Logger

	server   *http.Server
	listener net.Listener

	disabled atomic.Bool
	running  atomic.Bool
}

// NewService creates a network service (disabled by default)
func NewService(logger zerolog.Logger) *Service {
	return &Service{
		config: DefaultConfig(),
		log:    logger.With().Str("component", "network").Logger(),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "network"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: *Config (optional, overrides default)
// args[1]: SnapshotFunc (optional, enables the hello frame)
func (s *Service) Init(args ...any) error {
	if len(args) > 0 {
		if cfg, ok := args[0].(*Config); ok && cfg != nil {
			s.config = cfg
		}
	}
	if len(args) > 1 {
		if fn, ok := args[1].(SnapshotFunc); ok {
			s.snapshot = fn
		}
	}

	s.hub = NewHub(s.config, s.log)

	if !s.config.Enabled {
		s.disabled.Store(true)
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(s.config.Path, NewHandler(s.hub, s.snapshot, s.log))
	s.server = &http.Server{Handler: mux}
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	if s.disabled.Load() || s.server == nil {
		return nil
	}
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}

	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		s.running.Store(false)
		return fmt.Errorf("feed listen on %s: %w", s.config.Address, err)
	}
	s.listener = ln

	core.Go(func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("feed server stopped")
		}
	})
	s.log.Info().Str("addr", ln.Addr().String()).Str("path", s.config.Path).Msg("feed listening")
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	if s.hub != nil {
		s.hub.CloseAll()
	}
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("feed shutdown: %w", err)
	}
	return nil
}

// Hub returns the subscriber hub; nil before Init
func (s *Service) Hub() *Hub {
	return s.hub
}

// Addr returns the bound listener address, or "" when not running
func (s *Service) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}
