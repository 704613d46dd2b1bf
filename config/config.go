package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/puzzle-snap/parameter"
)

// EnvPrefix is prepended to every environment override, e.g. PUZZLE_KIDAGE
const EnvPrefix = "PUZZLE"

var (
	ErrDuplicatePiece = errors.New("duplicate piece id")
	ErrInvalidTuning  = errors.New("invalid tuning value")
)

// PieceTuning holds interaction tunables shared by every piece
type PieceTuning struct {
	DragHeight     float64       `mapstructure:"dragHeight"`
	SnapDistance   float64       `mapstructure:"snapDistance"`
	LiftScale      float64       `mapstructure:"liftScale"`
	RotationStep   float64       `mapstructure:"rotationStep"`
	SnapDuration   time.Duration `mapstructure:"snapDuration"`
	ReturnDuration time.Duration `mapstructure:"returnDuration"`
	DoubleTapDelay time.Duration `mapstructure:"doubleTapDelay"`
}

// PuzzleTuning holds the completion sequence settings
type PuzzleTuning struct {
	WinEffect        string        `mapstructure:"winEffect"`
	EffectTTL        time.Duration `mapstructure:"effectTTL"`
	CelebrationScale float64       `mapstructure:"celebrationScale"`
	CelebrationStep  time.Duration `mapstructure:"celebrationStep"`
}

// NetworkConfig controls the websocket event feed
type NetworkConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
	Path    string `mapstructure:"path"`
}

// SlotLayout is a slot position on the ground plane
type SlotLayout struct {
	X   float64 `mapstructure:"x"`
	Z   float64 `mapstructure:"z"`
	Yaw float64 `mapstructure:"yaw"`
}

// PieceLayout is a piece start position and its optional slot
type PieceLayout struct {
	ID   uint64      `mapstructure:"id"`
	X    float64     `mapstructure:"x"`
	Z    float64     `mapstructure:"z"`
	Yaw  float64     `mapstructure:"yaw"`
	Slot *SlotLayout `mapstructure:"slot"`
}

// Config is the complete game configuration
type Config struct {
	LogLevel     string        `mapstructure:"logLevel"`
	LogDir       string        `mapstructure:"logDir"`
	Debug        bool          `mapstructure:"debug"`
	KidAge       int           `mapstructure:"kidAge"`
	Touch        bool          `mapstructure:"touch"`
	TickInterval time.Duration `mapstructure:"tickInterval"`

	Piece   PieceTuning   `mapstructure:"piece"`
	Puzzle  PuzzleTuning  `mapstructure:"puzzle"`
	Network NetworkConfig `mapstructure:"network"`

	Pieces []PieceLayout `mapstructure:"pieces"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logDir", "logs")
	v.SetDefault("debug", false)
	v.SetDefault("kidAge", parameter.DefaultKidAge)
	v.SetDefault("touch", false)
	v.SetDefault("tickInterval", parameter.GameUpdateInterval)

	v.SetDefault("piece.dragHeight", parameter.DragHeight)
	v.SetDefault("piece.snapDistance", parameter.SnapDistance)
	v.SetDefault("piece.liftScale", parameter.LiftScale)
	v.SetDefault("piece.rotationStep", parameter.RotationStep)
	v.SetDefault("piece.snapDuration", parameter.SnapDuration)
	v.SetDefault("piece.returnDuration", parameter.ReturnDuration)
	v.SetDefault("piece.doubleTapDelay", parameter.DoubleTapDelay)

	v.SetDefault("puzzle.winEffect", parameter.WinEffectName)
	v.SetDefault("puzzle.effectTTL", parameter.WinEffectTTL)
	v.SetDefault("puzzle.celebrationScale", parameter.CelebrationScale)
	v.SetDefault("puzzle.celebrationStep", parameter.CelebrationStepDelay)

	v.SetDefault("network.enabled", false)
	v.SetDefault("network.addr", "127.0.0.1:8787")
	v.SetDefault("network.path", "/feed")
}

// DefaultLayout is a row of three pieces above a row of three slots
func DefaultLayout() []PieceLayout {
	return []PieceLayout{
		{ID: 1, X: -3, Z: 2, Yaw: 0, Slot: &SlotLayout{X: -3, Z: -1.5}},
		{ID: 2, X: 0, Z: 2, Yaw: 90, Slot: &SlotLayout{X: 0, Z: -1.5}},
		{ID: 3, X: 3, Z: 2, Yaw: 45, Slot: &SlotLayout{X: 3, Z: -1.5}},
	}
}

// Load reads configuration from path (JSON, YAML or TOML by extension)
// An empty path uses defaults; PUZZLE_ environment variables override both
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if len(cfg.Pieces) == 0 {
		cfg.Pieces = DefaultLayout()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects layouts and tunables the game cannot run with
func (c *Config) Validate() error {
	seen := make(map[uint64]bool, len(c.Pieces))
	for _, p := range c.Pieces {
		if seen[p.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicatePiece, p.ID)
		}
		seen[p.ID] = true
	}

	switch {
	case c.Piece.SnapDistance <= 0:
		return fmt.Errorf("%w: piece.snapDistance %v", ErrInvalidTuning, c.Piece.SnapDistance)
	case c.Piece.LiftScale <= 0:
		return fmt.Errorf("%w: piece.liftScale %v", ErrInvalidTuning, c.Piece.LiftScale)
	case c.Puzzle.CelebrationScale <= 0:
		return fmt.Errorf("%w: puzzle.celebrationScale %v", ErrInvalidTuning, c.Puzzle.CelebrationScale)
	case c.KidAge < 0:
		return fmt.Errorf("%w: kidAge %d", ErrInvalidTuning, c.KidAge)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tickInterval %v", ErrInvalidTuning, c.TickInterval)
	}
	return nil
}
