package game

import (
	"strconv"

	"github.com/tomz197/spacedodge/internal/draw"
	"github.com/tomz197/spacedodge/internal/object"
)

// HUD font sizes in logical pixels.
const (
	hudFontSize   = 32
	titleFontSize = 64
)

// drawHUD draws the score and, after a crash, the game over overlay.
func drawHUD(s draw.Surface, screen object.Screen, sess *Session) {
	s.Text(10, 40, hudFontSize, "Score: "+strconv.Itoa(sess.Score), draw.ColorWhite)

	if sess.State != StateGameOver {
		return
	}

	cx, cy := screen.CenterX(), screen.CenterY()
	s.Text(cx-200, cy-50, titleFontSize, "GAME OVER!", draw.ColorRed)
	s.Text(cx-110, cy+20, hudFontSize, "Final Score: "+strconv.Itoa(sess.Score), draw.ColorWhite)
	s.Text(cx-150, cy+80, hudFontSize, "Press SPACE to restart", draw.ColorWhite)
}
