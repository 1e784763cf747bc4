package object

import (
	"math/rand"

	"github.com/tomz197/spacedodge/internal/draw"
)

// Asteroid size and speed ranges; both are drawn once at spawn.
const (
	AsteroidMinRadius   = 15.0
	AsteroidRadiusRange = 25.0
	AsteroidMinSpeed    = 3.0
	AsteroidSpeedRange  = 4.0
)

// Asteroid is a falling rock. It only ever moves straight down.
type Asteroid struct {
	X, Y   float64 // Position (center)
	Radius float64 // Collision/draw radius
	Speed  float64 // Pixels per frame
}

// NewAsteroid creates an asteroid with random radius and speed just above
// the top edge of the screen.
func NewAsteroid(rng *rand.Rand, screen Screen) *Asteroid {
	radius := rng.Float64()*AsteroidRadiusRange + AsteroidMinRadius
	return &Asteroid{
		X:      randomX(rng, screen, radius),
		Y:      -radius,
		Radius: radius,
		Speed:  rng.Float64()*AsteroidSpeedRange + AsteroidMinSpeed,
	}
}

// Move advances the asteroid one frame.
func (a *Asteroid) Move() {
	a.Y += a.Speed
}

// OffScreen reports whether the asteroid has fallen past the bottom edge by
// more than its radius.
func (a *Asteroid) OffScreen(screen Screen) bool {
	return a.Y > screen.Height+a.Radius
}

// GetPosition returns the asteroid's center position.
func (a *Asteroid) GetPosition() (float64, float64) {
	return a.X, a.Y
}

// GetRadius returns the asteroid's collision radius.
func (a *Asteroid) GetRadius() float64 {
	return a.Radius
}

// Draw renders the asteroid as a filled circle.
func (a *Asteroid) Draw(s draw.Surface) {
	s.FillCircle(a.X, a.Y, a.Radius, draw.ColorRed)
}
