package desktop

import (
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/spacedodge/internal/game"
	"github.com/tomz197/spacedodge/internal/object"
)

// fakeKeys stands in for ebiten's keyboard state.
type fakeKeys struct {
	held map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func newTestHost(keys *fakeKeys) *Host {
	g := game.NewWithRand(game.DefaultConfig(), rand.New(rand.NewSource(1)))
	h := NewHost(g, Options{FPS: 60})
	h.pressed = func(k ebiten.Key) bool { return keys.held[k] }
	h.justPressed = func(k ebiten.Key) bool { return keys.just[k] }
	return h
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name string
		keys fakeKeys
		want object.Input
	}{
		{name: "none", want: object.Input{}},
		{
			name: "arrows",
			keys: fakeKeys{held: map[ebiten.Key]bool{ebiten.KeyArrowLeft: true, ebiten.KeyArrowUp: true}},
			want: object.Input{Left: true, Up: true},
		},
		{
			name: "wasd",
			keys: fakeKeys{held: map[ebiten.Key]bool{ebiten.KeyD: true, ebiten.KeyS: true}},
			want: object.Input{Right: true, Down: true},
		},
		{
			name: "restart_edge",
			keys: fakeKeys{
				held: map[ebiten.Key]bool{ebiten.KeySpace: true},
				just: map[ebiten.Key]bool{ebiten.KeySpace: true},
			},
			want: object.Input{Restart: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := tt.keys
			h := newTestHost(&keys)
			got := h.readInput()
			if got.Left != tt.want.Left || got.Right != tt.want.Right ||
				got.Up != tt.want.Up || got.Down != tt.want.Down || got.Restart != tt.want.Restart {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUpdateTicksOncePerCall(t *testing.T) {
	keys := &fakeKeys{held: map[ebiten.Key]bool{ebiten.KeyArrowLeft: true}}
	h := newTestHost(keys)
	startX := h.game.Session().Player.X

	for i := 0; i < 3; i++ {
		if err := h.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	s := h.game.Session()
	if s.Spawner.AsteroidTimer != 3 {
		t.Fatalf("expected 3 ticks, got %d", s.Spawner.AsteroidTimer)
	}
	if s.Player.X != startX-3*object.PlayerSpeed {
		t.Fatalf("expected ship to move left, x=%v", s.Player.X)
	}
	if h.frame == nil || len(h.frame.Commands) == 0 {
		t.Fatal("expected a recorded frame")
	}
}

func TestEscapeTerminates(t *testing.T) {
	keys := &fakeKeys{just: map[ebiten.Key]bool{ebiten.KeyEscape: true}}
	h := newTestHost(keys)
	if err := h.Update(); err != ebiten.Termination {
		t.Fatalf("expected ebiten.Termination, got %v", err)
	}
}

func TestLayoutIsLogical(t *testing.T) {
	h := newTestHost(&fakeKeys{})
	if w, hgt := h.Layout(1920, 1080); w != 800 || hgt != 600 {
		t.Fatalf("expected 800x600, got %dx%d", w, hgt)
	}
}
