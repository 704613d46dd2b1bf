package audio

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/puzzle-snap/core"
)

// Service wraps Engine as a service.Service
// Handles graceful degradation when no audio backend is available
type Service struct {
	engine   *Engine
	opts     []Option
	logger   zerolog.Logger
	disabled atomic.Bool
}

// NewService creates a new audio service
func NewService(logger zerolog.Logger, opts ...Option) *Service {
	return &Service{logger: logger.With().Str("service", "audio").Logger(), opts: opts}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: bool - mute override (true = muted)
// Configuration errors disable audio instead of failing startup
func (s *Service) Init(args ...any) error {
	cfg, err := LoadConfig()
	if err != nil {
		s.logger.Warn().Err(err).Msg("audio config rejected, audio disabled")
		s.disabled.Store(true)
		return nil
	}

	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok {
			cfg.Enabled = !muted
		}
	}

	s.engine = NewEngine(cfg, s.opts...)
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	if s.disabled.Load() || s.engine == nil {
		return nil
	}
	if err := s.engine.Start(); err != nil {
		s.logger.Warn().Err(err).Msg("audio start failed, audio disabled")
		s.disabled.Store(true)
		return nil
	}
	if s.engine.IsSilent() {
		s.logger.Info().Msg("no audio device, running silent")
	}
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	if s.engine != nil {
		s.engine.Stop()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// Engine returns the underlying engine (nil if disabled)
func (s *Service) Engine() *Engine {
	if s.disabled.Load() {
		return nil
	}
	return s.engine
}

// Player returns the Player capability for game components
// The returned player is always non-nil; a disabled service drops every request
func (s *Service) Player() Player {
	if e := s.Engine(); e != nil {
		return e
	}
	return nopPlayer{}
}

type nopPlayer struct{}

func (nopPlayer) Play(_ core.SoundType, _ float64) bool { return false }
