// Package game implements the Space Dodge simulation: spawning, movement,
// collisions, scoring and the playing/game-over state machine.
//
// The package never touches a terminal, window or clock. A host feeds it one
// Input per frame through Tick and presents the returned draw.Frame.
package game

import (
	"math/rand"
	"time"

	"github.com/tomz197/spacedodge/internal/draw"
	"github.com/tomz197/spacedodge/internal/object"
)

// Game owns the current session and the spawn RNG.
type Game struct {
	cfg     Config
	screen  object.Screen
	rng     *rand.Rand
	session *Session
	frame   draw.Frame
}

// New creates a game. A zero cfg.Seed seeds the RNG from the clock.
func New(cfg Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewWithRand(cfg, rand.New(rand.NewSource(seed)))
}

// NewWithRand creates a game that draws spawn positions, sizes and speeds
// from rng.
func NewWithRand(cfg Config, rng *rand.Rand) *Game {
	screen := cfg.Screen()
	return &Game{
		cfg:     cfg,
		screen:  screen,
		rng:     rng,
		session: NewSession(screen),
	}
}

// Config returns the game's settings.
func (g *Game) Config() Config {
	return g.cfg
}

// Session returns the current run.
func (g *Game) Session() *Session {
	return g.session
}

// State returns the current phase.
func (g *Game) State() State {
	return g.session.State
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.session.Score
}

// Restart replaces the session with a fresh one.
func (g *Game) Restart() {
	g.session = NewSession(g.screen)
}

// Update advances the simulation by one frame. Restart input only counts
// during game over; while game over nothing but the starfield moves.
func (g *Game) Update(dt time.Duration, in object.Input) {
	if in.Restart && g.session.State == StateGameOver {
		g.Restart()
	}

	s := g.session
	s.Elapsed += dt

	if s.State != StatePlaying {
		return
	}

	s.Player.Move(in, g.screen)
	s.Player.Update()
	s.Spawner.Update(s, g.cfg, g.rng)
	updateAsteroids(s, g.cfg)
	updatePowerUps(s, g.cfg)
}

// Draw renders the current session onto s.
func (g *Game) Draw(s draw.Surface) {
	sess := g.session

	s.Clear(draw.ColorBlack)
	object.DrawStars(s, g.screen, sess.Elapsed)

	sess.Player.Draw(s)
	for _, a := range sess.Asteroids {
		a.Draw(s)
	}
	for _, p := range sess.PowerUps {
		p.Draw(s)
	}

	drawHUD(s, g.screen, sess)
}

// Tick runs exactly one update and returns the frame to present. The
// returned frame is reused by the next Tick.
func (g *Game) Tick(dt time.Duration, in object.Input) *draw.Frame {
	g.Update(dt, in)
	g.frame.Reset()
	g.Draw(&g.frame)
	return &g.frame
}
