package game

import (
	"testing"

	"github.com/tomz197/spacedodge/internal/object"
)

func newTestSession() (*Session, Config) {
	cfg := DefaultConfig()
	return NewSession(cfg.Screen()), cfg
}

func TestAsteroidOffScreenScores(t *testing.T) {
	s, cfg := newTestSession()
	s.Asteroids = append(s.Asteroids, &object.Asteroid{X: 100, Y: 618, Radius: 20, Speed: 3})

	updateAsteroids(s, cfg)

	if len(s.Asteroids) != 0 {
		t.Fatalf("expected asteroid removed, %d left", len(s.Asteroids))
	}
	if s.Score != 1 {
		t.Fatalf("expected score 1, got %d", s.Score)
	}
}

func TestOffScreenTakesPrecedenceOverCollision(t *testing.T) {
	s, cfg := newTestSession()
	// Park the ship below the screen so an off-screen asteroid overlaps it.
	s.Player.X, s.Player.Y = 100, 650
	s.Asteroids = append(s.Asteroids, &object.Asteroid{X: 100, Y: 640, Radius: 20, Speed: 3})

	updateAsteroids(s, cfg)

	if s.State != StatePlaying {
		t.Fatalf("off-screen asteroid must not end the game")
	}
	if len(s.Asteroids) != 0 || s.Score != 1 {
		t.Fatalf("expected dodge credit, got %d asteroids score %d", len(s.Asteroids), s.Score)
	}
}

func TestUnshieldedCollisionEndsGame(t *testing.T) {
	s, cfg := newTestSession()
	s.Asteroids = append(s.Asteroids, &object.Asteroid{X: s.Player.X, Y: s.Player.Y - 40, Radius: 20, Speed: 3})

	updateAsteroids(s, cfg)

	if s.State != StateGameOver {
		t.Fatalf("expected game over, got %v", s.State)
	}
	if len(s.Asteroids) != 1 || s.Score != 0 {
		t.Fatalf("crash must keep the asteroid and score: %d asteroids score %d", len(s.Asteroids), s.Score)
	}
}

func TestShieldAbsorbsAsteroid(t *testing.T) {
	s, cfg := newTestSession()
	s.Player.GrantShield(50)
	s.Asteroids = append(s.Asteroids, &object.Asteroid{X: s.Player.X, Y: s.Player.Y, Radius: 20, Speed: 3})

	updateAsteroids(s, cfg)

	if s.State != StatePlaying {
		t.Fatalf("shielded collision must not end the game")
	}
	if len(s.Asteroids) != 0 {
		t.Fatalf("expected asteroid absorbed")
	}
	if s.Score != 0 {
		t.Fatalf("absorbing must not score, got %d", s.Score)
	}
	if !s.Player.Shield || s.Player.ShieldTime != 50 {
		t.Fatalf("shield must survive the hit: %+v", s.Player)
	}
}

func TestAsteroidRemovalKeepsOrder(t *testing.T) {
	s, cfg := newTestSession()
	first := &object.Asteroid{X: 100, Y: 100, Radius: 20, Speed: 3}
	gone := &object.Asteroid{X: 200, Y: 619, Radius: 20, Speed: 3}
	last := &object.Asteroid{X: 300, Y: 100, Radius: 20, Speed: 3}
	s.Asteroids = append(s.Asteroids, first, gone, last)

	updateAsteroids(s, cfg)

	if len(s.Asteroids) != 2 || s.Asteroids[0] != first || s.Asteroids[1] != last {
		t.Fatalf("unexpected asteroids after removal: %+v", s.Asteroids)
	}
	if first.Y != 103 || last.Y != 103 {
		t.Fatalf("survivors must still move: %v %v", first.Y, last.Y)
	}
}

func TestPowerUpPickup(t *testing.T) {
	tests := []struct {
		name       string
		shieldLeft int
	}{
		{name: "unshielded", shieldLeft: 0},
		{name: "refresh_not_stack", shieldLeft: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, cfg := newTestSession()
			if tt.shieldLeft > 0 {
				s.Player.GrantShield(tt.shieldLeft)
			}
			s.PowerUps = append(s.PowerUps, &object.PowerUp{X: s.Player.X, Y: s.Player.Y, Radius: 20, Speed: 3})

			updatePowerUps(s, cfg)

			if len(s.PowerUps) != 0 {
				t.Fatalf("expected power-up collected")
			}
			if !s.Player.Shield || s.Player.ShieldTime != 180 {
				t.Fatalf("expected shield for exactly 180 frames, got %+v", s.Player)
			}
			if s.Score != 5 {
				t.Fatalf("expected score 5, got %d", s.Score)
			}
		})
	}
}

func TestPowerUpOffScreenNoScore(t *testing.T) {
	s, cfg := newTestSession()
	s.PowerUps = append(s.PowerUps, &object.PowerUp{X: 100, Y: 619, Radius: 20, Speed: 3})

	updatePowerUps(s, cfg)

	if len(s.PowerUps) != 0 || s.Score != 0 || s.Player.Shield {
		t.Fatalf("missed power-up must vanish without effect: %d %d %v", len(s.PowerUps), s.Score, s.Player.Shield)
	}
}
