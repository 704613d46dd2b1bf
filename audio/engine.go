package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/parameter"
)

// Player defines the minimal audio interface used by game components
// Play is fire-and-forget and reports whether a clip was dispatched to output
type Player interface {
	Play(st core.SoundType, volume float64) bool
}

// Output is the sink that renders streamers; the default is the beep speaker
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

func (speakerOutput) Close() {
	speaker.Clear()
	speaker.Close()
}

// Engine plays one-shot clips through an Output
// Without a usable device it runs in silent mode and drops every request
type Engine struct {
	mu     sync.RWMutex // Protects config and clips
	config *Config
	clips  map[core.SoundType]ClipFunc
	output Output

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool
	played     atomic.Uint64
}

// Option configures an Engine
type Option func(*Engine)

// WithOutput replaces the speaker sink
func WithOutput(out Output) Option {
	return func(e *Engine) { e.output = out }
}

// WithClips replaces the clip assignment; missing entries play nothing
func WithClips(clips map[core.SoundType]ClipFunc) Option {
	return func(e *Engine) { e.clips = clips }
}

// NewEngine creates an audio engine; it does not touch the device until Start
func NewEngine(cfg *Config, opts ...Option) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e := &Engine{
		config: cfg,
		clips:  DefaultClips(),
		output: speakerOutput{},
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, name := range cfg.MutedClips {
		if st, ok := core.ParseSoundType(name); ok {
			delete(e.clips, st)
		}
	}
	e.muted.Store(!cfg.Enabled)
	return e
}

// Start initializes the output device
// Device failure switches to silent mode and is not an error
func (e *Engine) Start() error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	rate := beep.SampleRate(e.config.SampleRate)
	if err := e.output.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		e.silentMode.Store(true)
	}
	return nil
}

// Stop releases the output device, idempotent
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	if !e.silentMode.Load() {
		e.output.Close()
	}
}

// Play dispatches a fresh instance of the clip
// Returns false when stopped, muted, silent, or the clip is unassigned
func (e *Engine) Play(st core.SoundType, volume float64) bool {
	if !e.running.Load() || e.muted.Load() || e.silentMode.Load() {
		return false
	}

	e.mu.RLock()
	clip, ok := e.clips[st]
	cfg := e.config
	e.mu.RUnlock()
	if !ok || clip == nil {
		return false
	}

	s := clip(cfg, volume)
	if s == nil {
		return false
	}
	e.output.Play(s)
	e.played.Add(1)
	return true
}

// ToggleMute flips mute state and returns the new value
func (e *Engine) ToggleMute() bool {
	for {
		old := e.muted.Load()
		if e.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// SetMasterVolume updates master gain for subsequent clips, clamped to [0,1]
func (e *Engine) SetMasterVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	e.mu.Lock()
	cfg := *e.config
	cfg.MasterVolume = v
	e.config = &cfg
	e.mu.Unlock()
}

// IsMuted reports mute state
func (e *Engine) IsMuted() bool { return e.muted.Load() }

// IsRunning reports whether Start succeeded and Stop was not called
func (e *Engine) IsRunning() bool { return e.running.Load() }

// IsSilent reports whether the engine runs without an output device
func (e *Engine) IsSilent() bool { return e.silentMode.Load() }

// PlayedCount returns the number of clips dispatched to output
func (e *Engine) PlayedCount() uint64 { return e.played.Load() }
