// Package object defines the game entities: the player ship, asteroids and
// power-ups. Each is a plain struct; the game package drives them directly.
package object

import (
	"math/rand"

	"github.com/tomz197/spacedodge/internal/input"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// Screen is the logical play field size.
type Screen struct {
	Width  float64
	Height float64
}

// CenterX returns the horizontal center of the screen.
func (s Screen) CenterX() float64 {
	return s.Width / 2
}

// CenterY returns the vertical center of the screen.
func (s Screen) CenterY() float64 {
	return s.Height / 2
}

// randomX picks an x position that keeps a body of the given radius fully
// inside the screen horizontally.
func randomX(rng *rand.Rand, screen Screen, radius float64) float64 {
	return rng.Float64()*(screen.Width-radius*2) + radius
}
