package game

import (
	"slices"

	"github.com/tomz197/spacedodge/internal/object"
	"github.com/tomz197/spacedodge/internal/physics"
)

// collides is the player hitbox test: a circle of radius Size around the
// ship's center.
func collides(p *object.Player, x, y, r float64) bool {
	return physics.Collide(p.X, p.Y, p.GetRadius(), x, y, r)
}

// updateAsteroids moves every asteroid and resolves it against the screen
// edge and the player. Iterating backwards keeps in-place removal safe.
func updateAsteroids(s *Session, cfg Config) {
	screen := cfg.Screen()
	for i := len(s.Asteroids) - 1; i >= 0; i-- {
		a := s.Asteroids[i]
		a.Move()

		if a.OffScreen(screen) {
			s.Asteroids = slices.Delete(s.Asteroids, i, i+1)
			s.Score += cfg.DodgeScore
			continue
		}

		if collides(s.Player, a.X, a.Y, a.Radius) {
			if !s.Player.Shield {
				s.State = StateGameOver
				continue
			}
			// The shield absorbs the rock and stays up until it times out.
			s.Asteroids = slices.Delete(s.Asteroids, i, i+1)
		}
	}
}

// updatePowerUps moves every power-up and applies pickups.
func updatePowerUps(s *Session, cfg Config) {
	screen := cfg.Screen()
	for i := len(s.PowerUps) - 1; i >= 0; i-- {
		p := s.PowerUps[i]
		p.Move()

		if p.OffScreen(screen) {
			s.PowerUps = slices.Delete(s.PowerUps, i, i+1)
			continue
		}

		if collides(s.Player, p.X, p.Y, p.Radius) {
			s.PowerUps = slices.Delete(s.PowerUps, i, i+1)
			s.Player.GrantShield(cfg.ShieldFrames)
			s.Score += cfg.PowerUpScore
		}
	}
}
