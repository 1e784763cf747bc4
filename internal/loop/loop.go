// Package loop drives a game one frame at a time: read input, tick the
// simulation, present the frame, then wait for the next frame.
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spacedodge/internal/config"
	"github.com/tomz197/spacedodge/internal/draw"
	"github.com/tomz197/spacedodge/internal/game"
	"github.com/tomz197/spacedodge/internal/input"
	"github.com/tomz197/spacedodge/internal/logging"
)

// ErrIdle is returned by Run when no key was pressed for Options.IdleTimeout.
var ErrIdle = errors.New("idle timeout")

// InputSource reports the keys held for the coming frame.
type InputSource interface {
	Poll() input.Input
}

// Renderer presents a finished frame.
type Renderer interface {
	Render(f *draw.Frame) error
}

// Scheduler blocks until the next frame is due.
type Scheduler interface {
	Next(ctx context.Context) error
}

// Options tunes a loop.
type Options struct {
	FPS         int
	IdleTimeout time.Duration // Zero disables the idle check
	Logger      *log.Logger

	now func() time.Time
}

type envOptions struct {
	FPS         int           `env:"SPACEDODGE_FPS"          envDefault:"60"`
	IdleTimeout time.Duration `env:"SPACEDODGE_IDLE_TIMEOUT" envDefault:"0s"`
}

// LoadOptions reads the frame rate and idle timeout from the environment.
func LoadOptions() (Options, error) {
	var e envOptions
	if err := config.ParseEnv(&e); err != nil {
		return Options{}, err
	}
	if e.FPS <= 0 {
		return Options{}, fmt.Errorf("fps must be positive, got %d", e.FPS)
	}
	return Options{FPS: e.FPS, IdleTimeout: e.IdleTimeout}, nil
}

// Run plays g until ctx is cancelled, the input source asks to quit or the
// player idles out. Every pass of the loop is exactly one Tick.
//
// Cancellation and quit return nil; idling out returns ErrIdle. Render and
// scheduler failures end the loop with the error.
func Run(ctx context.Context, g *game.Game, src InputSource, r Renderer, sched Scheduler, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	now := opts.now
	if now == nil {
		now = time.Now
	}

	last := now()
	lastInput := last
	state := g.State()

	for {
		if ctx.Err() != nil {
			return nil
		}

		in := src.Poll()
		if in.Quit {
			logger.Debug("quit requested", "state", g.State(), "score", g.Score())
			return nil
		}

		frameStart := now()
		if len(in.Pressed) > 0 {
			lastInput = frameStart
		} else if opts.IdleTimeout > 0 && frameStart.Sub(lastInput) > opts.IdleTimeout {
			logger.Info("idle timeout", "idle", frameStart.Sub(lastInput).Round(time.Second), "score", g.Score())
			return ErrIdle
		}

		frame := g.Tick(frameStart.Sub(last), in)
		last = frameStart

		if next := g.State(); next != state {
			switch next {
			case game.StateGameOver:
				logger.Info("game over", "score", g.Score())
			case game.StatePlaying:
				logger.Info("restart")
			}
			state = next
		}

		if err := r.Render(frame); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}

		if err := sched.Next(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("wait for frame: %w", err)
		}
	}
}
