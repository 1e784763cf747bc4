package game

import (
	"math/rand"

	"github.com/tomz197/spacedodge/internal/object"
)

// Spawner paces asteroid and power-up creation with two independent frame
// counters.
type Spawner struct {
	AsteroidTimer int
	PowerUpTimer  int
}

// Update advances both counters by one frame and spawns whatever is due.
// The asteroid threshold is read from the current score, so the field gets
// denser as the player scores.
func (sp *Spawner) Update(s *Session, cfg Config, rng *rand.Rand) {
	screen := cfg.Screen()

	sp.AsteroidTimer++
	if sp.AsteroidTimer > cfg.AsteroidThreshold(s.Score) {
		s.Asteroids = append(s.Asteroids, object.NewAsteroid(rng, screen))
		sp.AsteroidTimer = 0
	}

	sp.PowerUpTimer++
	if sp.PowerUpTimer > cfg.PowerUpInterval {
		s.PowerUps = append(s.PowerUps, object.NewPowerUp(rng, screen))
		sp.PowerUpTimer = 0
	}
}
