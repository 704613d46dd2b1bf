package audio

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/parameter"
)

// Config holds audio engine settings
type Config struct {
	Enabled      bool     `env:"PUZZLE_AUDIO_ENABLED"  envDefault:"true"`
	MasterVolume float64  `env:"PUZZLE_MASTER_VOLUME"  envDefault:"1"`
	SampleRate   int      `env:"PUZZLE_SAMPLE_RATE"    envDefault:"44100"`
	MutedClips   []string `env:"PUZZLE_SFX_UNASSIGNED" envSeparator:","`

	// EffectVolumes scales each clip before the master volume
	EffectVolumes [core.SoundTypeCount]float64
}

// DefaultConfig returns the built-in audio settings
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		MasterVolume: 1.0,
		SampleRate:   parameter.AudioSampleRate,
	}
	cfg.EffectVolumes[core.SoundSnap] = 0.8
	cfg.EffectVolumes[core.SoundRotate] = 0.5
	cfg.EffectVolumes[core.SoundWin] = 0.9
	return cfg
}

// LoadConfig loads audio configuration from environment variables
// Out-of-range values are clamped; unknown clip names are rejected
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse audio env: %w", err)
	}

	if cfg.MasterVolume < 0 {
		cfg.MasterVolume = 0
	}
	if cfg.MasterVolume > 1 {
		cfg.MasterVolume = 1
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}

	for _, name := range cfg.MutedClips {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := core.ParseSoundType(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownClip, name)
		}
	}
	return cfg, nil
}
