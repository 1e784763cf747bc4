package object

import (
	"github.com/tomz197/spacedodge/internal/draw"
	"github.com/tomz197/spacedodge/internal/physics"
)

// Player ship defaults.
const (
	PlayerSize        = 30.0 // Half-extent of the ship triangle, also its collision radius
	PlayerSpeed       = 7.0  // Pixels per frame per held direction
	PlayerStartOffset = 80.0 // Distance of the spawn point above the bottom edge
	ShieldRingGap     = 10.0 // Extra radius of the shield ring around the ship
	ShieldRingWidth   = 2.0
)

// Player is the player-controlled ship.
type Player struct {
	X, Y       float64 // Position (center of ship)
	Size       float64 // Half-extent; the hitbox is a circle of this radius
	Speed      float64
	Shield     bool
	ShieldTime int // Frames of shield remaining
}

// NewPlayer creates a ship centered horizontally near the bottom of the screen.
func NewPlayer(screen Screen) *Player {
	return &Player{
		X:     screen.CenterX(),
		Y:     screen.Height - PlayerStartOffset,
		Size:  PlayerSize,
		Speed: PlayerSpeed,
	}
}

// Move displaces the ship for every held direction key and keeps the whole
// ship on screen. Opposite keys cancel out; diagonal keys compose.
func (p *Player) Move(in Input, screen Screen) {
	if in.Left {
		p.X -= p.Speed
	}
	if in.Right {
		p.X += p.Speed
	}
	if in.Up {
		p.Y -= p.Speed
	}
	if in.Down {
		p.Y += p.Speed
	}

	p.X = physics.Clamp(p.X, p.Size, screen.Width-p.Size)
	p.Y = physics.Clamp(p.Y, p.Size, screen.Height-p.Size)
}

// Update counts the shield down one frame.
func (p *Player) Update() {
	if !p.Shield {
		return
	}
	p.ShieldTime--
	if p.ShieldTime <= 0 {
		p.ShieldTime = 0
		p.Shield = false
	}
}

// GrantShield turns the shield on for the given number of frames. The
// duration replaces whatever was left; it never stacks.
func (p *Player) GrantShield(frames int) {
	p.Shield = true
	p.ShieldTime = frames
}

// GetPosition returns the ship's center position.
func (p *Player) GetPosition() (float64, float64) {
	return p.X, p.Y
}

// GetRadius returns the ship's collision radius.
func (p *Player) GetRadius() float64 {
	return p.Size
}

// Draw renders the ship as an upward triangle, plus the shield ring when active.
func (p *Player) Draw(s draw.Surface) {
	col := draw.ColorBlue
	if p.Shield {
		col = draw.ColorYellow
	}

	triangle := [3]draw.Point{
		{X: p.X, Y: p.Y - p.Size},
		{X: p.X - p.Size, Y: p.Y + p.Size},
		{X: p.X + p.Size, Y: p.Y + p.Size},
	}
	s.FillPolygon(triangle[:], col)

	if p.Shield {
		s.StrokeCircle(p.X, p.Y, p.Size+ShieldRingGap, ShieldRingWidth, draw.ColorYellow)
	}
}
