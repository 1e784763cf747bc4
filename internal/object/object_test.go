package object

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/spacedodge/internal/draw"
)

var testScreen = Screen{Width: 800, Height: 600}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(testScreen)
	if p.X != 400 || p.Y != 520 {
		t.Fatalf("expected spawn at (400,520), got (%v,%v)", p.X, p.Y)
	}
	if p.Shield || p.ShieldTime != 0 {
		t.Fatalf("new player must start unshielded: %+v", p)
	}
	if p.GetRadius() != PlayerSize {
		t.Fatalf("expected radius %v, got %v", PlayerSize, p.GetRadius())
	}
}

func TestPlayerMove(t *testing.T) {
	tests := []struct {
		name   string
		in     Input
		dx, dy float64
	}{
		{name: "none", in: Input{}, dx: 0, dy: 0},
		{name: "left", in: Input{Left: true}, dx: -7, dy: 0},
		{name: "right", in: Input{Right: true}, dx: 7, dy: 0},
		{name: "up", in: Input{Up: true}, dx: 0, dy: -7},
		{name: "down", in: Input{Down: true}, dx: 0, dy: 7},
		{name: "diagonal", in: Input{Up: true, Right: true}, dx: 7, dy: -7},
		{name: "opposite_cancel", in: Input{Left: true, Right: true}, dx: 0, dy: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Player{X: 300, Y: 300, Size: PlayerSize, Speed: PlayerSpeed}
			p.Move(tt.in, testScreen)
			if p.X != 300+tt.dx || p.Y != 300+tt.dy {
				t.Errorf("Move() -> (%v,%v), expected (%v,%v)", p.X, p.Y, 300+tt.dx, 300+tt.dy)
			}
		})
	}
}

func TestPlayerStaysOnScreen(t *testing.T) {
	p := NewPlayer(testScreen)
	inputs := []Input{
		{Left: true, Up: true},
		{Right: true, Down: true},
		{Left: true, Down: true},
		{Right: true, Up: true},
	}
	for _, in := range inputs {
		for i := 0; i < 200; i++ {
			p.Move(in, testScreen)
			if p.X < p.Size || p.X > testScreen.Width-p.Size || p.Y < p.Size || p.Y > testScreen.Height-p.Size {
				t.Fatalf("player left the screen at (%v,%v) with %+v", p.X, p.Y, in)
			}
		}
	}
	if p.X != testScreen.Width-p.Size || p.Y != p.Size {
		t.Fatalf("expected player pinned at top-right corner, got (%v,%v)", p.X, p.Y)
	}
}

func TestPlayerShieldCountdown(t *testing.T) {
	p := NewPlayer(testScreen)
	p.Update()
	if p.Shield || p.ShieldTime != 0 {
		t.Fatalf("update without shield must be a no-op: %+v", p)
	}

	p.GrantShield(3)
	p.Update()
	p.Update()
	if !p.Shield || p.ShieldTime != 1 {
		t.Fatalf("expected shield with 1 frame left, got %+v", p)
	}
	p.Update()
	if p.Shield || p.ShieldTime != 0 {
		t.Fatalf("expected shield expired, got %+v", p)
	}
}

func TestGrantShieldResets(t *testing.T) {
	p := NewPlayer(testScreen)
	p.GrantShield(10)
	p.GrantShield(180)
	if p.ShieldTime != 180 {
		t.Fatalf("expected shield reset to 180, got %d", p.ShieldTime)
	}
}

func TestNewAsteroidRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := NewAsteroid(rng, testScreen)
		if a.Radius < 15 || a.Radius >= 40 {
			t.Fatalf("radius out of range: %v", a.Radius)
		}
		if a.Speed < 3 || a.Speed >= 7 {
			t.Fatalf("speed out of range: %v", a.Speed)
		}
		if a.X < a.Radius || a.X > testScreen.Width-a.Radius {
			t.Fatalf("x out of range: %v (radius %v)", a.X, a.Radius)
		}
		if a.Y != -a.Radius {
			t.Fatalf("expected spawn just above the screen, got y=%v", a.Y)
		}
	}
}

func TestAsteroidMoveStraightDown(t *testing.T) {
	a := &Asteroid{X: 100, Y: 0, Radius: 20, Speed: 5}
	a.Move()
	a.Move()
	if a.X != 100 || a.Y != 10 {
		t.Fatalf("expected (100,10), got (%v,%v)", a.X, a.Y)
	}
	if a.Radius != 20 || a.Speed != 5 {
		t.Fatalf("radius and speed must not change: %+v", a)
	}
}

func TestOffScreen(t *testing.T) {
	tests := []struct {
		y        float64
		expected bool
	}{
		{y: 600, expected: false},
		{y: 620, expected: false},
		{y: 620.5, expected: true},
		{y: -20, expected: false},
	}
	for _, tt := range tests {
		a := &Asteroid{X: 100, Y: tt.y, Radius: 20, Speed: 3}
		p := &PowerUp{X: 100, Y: tt.y, Radius: 20, Speed: 3}
		for i := 0; i < 3; i++ {
			if got := a.OffScreen(testScreen); got != tt.expected {
				t.Errorf("asteroid OffScreen(y=%v) = %v, expected %v", tt.y, got, tt.expected)
			}
			if got := p.OffScreen(testScreen); got != tt.expected {
				t.Errorf("powerup OffScreen(y=%v) = %v, expected %v", tt.y, got, tt.expected)
			}
		}
	}
}

func TestNewPowerUp(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := NewPowerUp(rng, testScreen)
	if p.Radius != PowerUpRadius || p.Speed != PowerUpSpeed || p.Y != -PowerUpRadius {
		t.Fatalf("unexpected power-up: %+v", p)
	}
	p.Move()
	if p.Y != -PowerUpRadius+PowerUpSpeed {
		t.Fatalf("expected y=%v, got %v", -PowerUpRadius+PowerUpSpeed, p.Y)
	}
}

func TestPlayerDraw(t *testing.T) {
	p := NewPlayer(testScreen)

	var f draw.Frame
	p.Draw(&f)
	if len(f.Commands) != 1 || f.Commands[0].Kind != draw.CmdFillPolygon || f.Commands[0].Color != draw.ColorBlue {
		t.Fatalf("unshielded ship should be one blue triangle: %+v", f.Commands)
	}
	pts := f.Commands[0].Points
	if pts[0] != (draw.Point{X: 400, Y: 490}) || pts[1] != (draw.Point{X: 370, Y: 550}) || pts[2] != (draw.Point{X: 430, Y: 550}) {
		t.Fatalf("unexpected triangle: %+v", pts)
	}

	f.Reset()
	p.GrantShield(180)
	p.Draw(&f)
	if len(f.Commands) != 2 {
		t.Fatalf("shielded ship should draw a ring, got %+v", f.Commands)
	}
	ring := f.Commands[1]
	if ring.Kind != draw.CmdStrokeCircle || ring.R != 40 || ring.Color != draw.ColorYellow || f.Commands[0].Color != draw.ColorYellow {
		t.Fatalf("unexpected shield drawing: %+v", f.Commands)
	}
}

func TestDrawStars(t *testing.T) {
	var a, b draw.Frame
	DrawStars(&a, testScreen, 0)
	DrawStars(&b, testScreen, time.Second)

	if len(a.Commands) != StarCount {
		t.Fatalf("expected %d stars, got %d", StarCount, len(a.Commands))
	}
	// Star 1 sits at x=123, y=456 at t=0 and drifts 50px per second.
	if a.Commands[1].X != 123 || a.Commands[1].Y != 456 {
		t.Fatalf("unexpected star position: %+v", a.Commands[1])
	}
	if b.Commands[1].Y != 506 {
		t.Fatalf("expected star to drift to 506, got %v", b.Commands[1].Y)
	}
	for _, cmd := range b.Commands {
		if cmd.Y < 0 || cmd.Y >= testScreen.Height || cmd.X < 0 || cmd.X >= testScreen.Width {
			t.Fatalf("star outside screen: %+v", cmd)
		}
	}
}
