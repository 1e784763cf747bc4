package loop

import (
	"context"
	"time"
)

// DefaultFPS is the classic frame rate; the game's speeds are per frame.
const DefaultFPS = 60

// FrameTicker paces a loop at a fixed frame rate by sleeping off whatever is
// left of the current frame.
type FrameTicker struct {
	frameTime  time.Duration
	frameStart time.Time
	now        func() time.Time
}

var _ Scheduler = (*FrameTicker)(nil)

// NewFrameTicker creates a ticker for fps frames per second. The first frame
// starts now. A non-positive fps uses DefaultFPS.
func NewFrameTicker(fps int) *FrameTicker {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &FrameTicker{
		frameTime:  time.Second / time.Duration(fps),
		frameStart: time.Now(),
		now:        time.Now,
	}
}

// FrameTime returns the target duration of one frame.
func (t *FrameTicker) FrameTime() time.Duration {
	return t.frameTime
}

// Next waits out the rest of the current frame and starts the next one.
// A frame that already overran returns immediately.
func (t *FrameTicker) Next(ctx context.Context) error {
	elapsed := t.now().Sub(t.frameStart)
	if elapsed < t.frameTime {
		timer := time.NewTimer(t.frameTime - elapsed)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}
	t.frameStart = t.now()
	return nil
}
