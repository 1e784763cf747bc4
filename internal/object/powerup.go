package object

import (
	"math/rand"

	"github.com/tomz197/spacedodge/internal/draw"
)

// Power-up constants.
const (
	PowerUpRadius = 20.0
	PowerUpSpeed  = 3.0
)

// PowerUp is a falling shield pickup.
type PowerUp struct {
	X, Y   float64
	Radius float64
	Speed  float64
}

// NewPowerUp creates a power-up at a random x just above the top edge.
func NewPowerUp(rng *rand.Rand, screen Screen) *PowerUp {
	return &PowerUp{
		X:      randomX(rng, screen, PowerUpRadius),
		Y:      -PowerUpRadius,
		Radius: PowerUpRadius,
		Speed:  PowerUpSpeed,
	}
}

// Move advances the power-up one frame.
func (p *PowerUp) Move() {
	p.Y += p.Speed
}

// OffScreen reports whether the power-up has fallen past the bottom edge by
// more than its radius.
func (p *PowerUp) OffScreen(screen Screen) bool {
	return p.Y > screen.Height+p.Radius
}

// GetPosition returns the power-up's center position.
func (p *PowerUp) GetPosition() (float64, float64) {
	return p.X, p.Y
}

// GetRadius returns the power-up's collision radius.
func (p *PowerUp) GetRadius() float64 {
	return p.Radius
}

// Draw renders a green disc with a white core.
func (p *PowerUp) Draw(s draw.Surface) {
	s.FillCircle(p.X, p.Y, p.Radius, draw.ColorGreen)
	s.FillCircle(p.X, p.Y, p.Radius/2, draw.ColorWhite)
}
