package object

import (
	"math"
	"time"

	"github.com/tomz197/spacedodge/internal/draw"
)

// StarCount is the number of background stars.
const StarCount = 50

// DrawStars renders a deterministic starfield that scrolls down with elapsed
// time. Purely cosmetic: it carries no state of its own.
func DrawStars(s draw.Surface, screen Screen, elapsed time.Duration) {
	drift := float64(elapsed.Milliseconds()) / 20
	for i := 0; i < StarCount; i++ {
		x := math.Mod(float64(i*123), screen.Width)
		y := math.Mod(float64(i*456)+drift, screen.Height)
		s.FillCircle(x, y, 1, draw.ColorWhite)
	}
}
