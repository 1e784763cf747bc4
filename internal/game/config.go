package game

import (
	"errors"
	"fmt"

	"github.com/tomz197/spacedodge/internal/config"
	"github.com/tomz197/spacedodge/internal/object"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the gameplay tunables. The defaults reproduce the classic
// pacing; all counts are in frames.
type Config struct {
	Width  float64 `env:"SPACEDODGE_WIDTH"  envDefault:"800"`
	Height float64 `env:"SPACEDODGE_HEIGHT" envDefault:"600"`

	// Asteroid spawn interval starts at AsteroidIntervalStart and shrinks by
	// one frame per AsteroidIntervalStep points, never below AsteroidIntervalFloor.
	AsteroidIntervalStart int `env:"SPACEDODGE_ASTEROID_INTERVAL"       envDefault:"60"`
	AsteroidIntervalStep  int `env:"SPACEDODGE_ASTEROID_INTERVAL_STEP"  envDefault:"10"`
	AsteroidIntervalFloor int `env:"SPACEDODGE_ASTEROID_INTERVAL_FLOOR" envDefault:"20"`

	PowerUpInterval int `env:"SPACEDODGE_POWERUP_INTERVAL" envDefault:"300"`
	ShieldFrames    int `env:"SPACEDODGE_SHIELD_FRAMES"    envDefault:"180"`
	DodgeScore      int `env:"SPACEDODGE_DODGE_SCORE"      envDefault:"1"`
	PowerUpScore    int `env:"SPACEDODGE_POWERUP_SCORE"    envDefault:"5"`

	// Seed for the spawn RNG; zero seeds from the clock.
	Seed int64 `env:"SPACEDODGE_SEED"`
}

// DefaultConfig returns the classic settings.
func DefaultConfig() Config {
	return Config{
		Width:                 800,
		Height:                600,
		AsteroidIntervalStart: 60,
		AsteroidIntervalStep:  10,
		AsteroidIntervalFloor: 20,
		PowerUpInterval:       300,
		ShieldFrames:          180,
		DodgeScore:            1,
		PowerUpScore:          5,
	}
}

// LoadConfig reads the config from the environment, falling back to the
// defaults for anything unset.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the play field fits the ship and that intervals and
// scores are usable.
func (c Config) Validate() error {
	if c.Width <= 2*object.PlayerSize || c.Height <= 2*object.PlayerSize {
		return fmt.Errorf("%w: screen %vx%v too small for the ship", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.AsteroidIntervalStep <= 0 {
		return fmt.Errorf("%w: asteroid interval step must be positive, got %d", ErrInvalidConfig, c.AsteroidIntervalStep)
	}
	if c.AsteroidIntervalFloor < 0 || c.AsteroidIntervalStart < c.AsteroidIntervalFloor {
		return fmt.Errorf("%w: asteroid interval start %d must be >= floor %d >= 0",
			ErrInvalidConfig, c.AsteroidIntervalStart, c.AsteroidIntervalFloor)
	}
	if c.PowerUpInterval < 0 || c.ShieldFrames <= 0 {
		return fmt.Errorf("%w: power-up interval %d and shield frames %d", ErrInvalidConfig, c.PowerUpInterval, c.ShieldFrames)
	}
	if c.DodgeScore < 0 || c.PowerUpScore < 0 {
		return fmt.Errorf("%w: scores must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Screen returns the logical play field.
func (c Config) Screen() object.Screen {
	return object.Screen{Width: c.Width, Height: c.Height}
}

// AsteroidThreshold returns how many frames must pass before the next
// asteroid spawns at the given score. It never increases as score grows.
func (c Config) AsteroidThreshold(score int) int {
	return max(c.AsteroidIntervalFloor, c.AsteroidIntervalStart-score/c.AsteroidIntervalStep)
}
