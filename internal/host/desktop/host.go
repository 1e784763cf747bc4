// Package desktop runs the game in a native window using ebiten.
package desktop

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/spacedodge/internal/draw"
	"github.com/tomz197/spacedodge/internal/game"
	"github.com/tomz197/spacedodge/internal/input"
	"github.com/tomz197/spacedodge/internal/logging"
)

// Options configures the window.
type Options struct {
	Title  string
	Scale  int // Window pixels per logical pixel
	FPS    int // Ticks per second; zero keeps ebiten's default
	Logger *log.Logger
}

// Host adapts a game to ebiten's Update/Draw/Layout cycle. ebiten calls
// Update once per tick at the configured rate, which gives one game Tick
// per frame.
type Host struct {
	game    *game.Game
	frame   *draw.Frame
	surface *Surface
	logger  *log.Logger
	dt      time.Duration
	state   game.State

	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

var _ ebiten.Game = (*Host)(nil)

// NewHost wraps g.
func NewHost(g *game.Game, opts Options) *Host {
	fps := opts.FPS
	if fps <= 0 {
		fps = ebiten.DefaultTPS
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Host{
		game:        g,
		surface:     &Surface{},
		logger:      logger,
		dt:          time.Second / time.Duration(fps),
		state:       g.State(),
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Update advances the game one frame. Esc ends the program.
func (h *Host) Update() error {
	if h.justPressed(ebiten.KeyEscape) {
		h.logger.Debug("window closed", "score", h.game.Score())
		return ebiten.Termination
	}

	h.frame = h.game.Tick(h.dt, h.readInput())

	if next := h.game.State(); next != h.state {
		switch next {
		case game.StateGameOver:
			h.logger.Info("game over", "score", h.game.Score())
		case game.StatePlaying:
			h.logger.Info("restart")
		}
		h.state = next
	}
	return nil
}

// Draw replays the last frame onto the screen.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.frame == nil {
		return
	}
	h.surface.SetTarget(screen)
	h.frame.Replay(h.surface)
}

// Layout fixes the logical resolution; ebiten scales it to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	cfg := h.game.Config()
	return int(cfg.Width), int(cfg.Height)
}

// readInput maps held keys to game input. Windowed input has real key-up
// events, so no hold window is needed.
func (h *Host) readInput() input.Input {
	anyPressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if h.pressed(k) {
				return true
			}
		}
		return false
	}
	return input.Input{
		Left:    anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:   anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:      anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:    anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Restart: h.justPressed(ebiten.KeySpace),
	}
}

// Run opens a window and plays g until it is closed.
func Run(g *game.Game, opts Options) error {
	scale := max(opts.Scale, 1)
	cfg := g.Config()

	ebiten.SetWindowSize(int(cfg.Width)*scale, int(cfg.Height)*scale)
	ebiten.SetWindowTitle(opts.Title)
	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}

	if err := ebiten.RunGame(NewHost(g, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
