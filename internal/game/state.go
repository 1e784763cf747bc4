package game

import (
	"time"

	"github.com/tomz197/spacedodge/internal/object"
)

// State is the game phase.
type State int

const (
	StatePlaying  State = iota // Active gameplay
	StateGameOver              // Ship destroyed; entities frozen until restart
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is everything that belongs to one run. A restart replaces the
// whole session rather than resetting fields one by one.
type Session struct {
	Player    *object.Player
	Asteroids []*object.Asteroid // Insertion order
	PowerUps  []*object.PowerUp  // Insertion order
	Score     int
	State     State
	Spawner   Spawner
	Elapsed   time.Duration // Drives the starfield only
}

// NewSession creates a fresh run with the ship at its start position.
func NewSession(screen object.Screen) *Session {
	return &Session{
		Player:    object.NewPlayer(screen),
		Asteroids: []*object.Asteroid{},
		PowerUps:  []*object.PowerUp{},
		State:     StatePlaying,
	}
}
