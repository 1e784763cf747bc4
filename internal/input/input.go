// Package input turns a raw terminal byte stream into held-key state.
//
// Terminals report key presses (and auto-repeat) but never key releases, so a
// key counts as held while it was last seen within a hold window.
package input

import (
	"bufio"
	"io"
	"time"
)

// DefaultKeyHold is how long a key is considered "held" after its last press.
// It spans the gap between terminal auto-repeat events.
const DefaultKeyHold = 120 * time.Millisecond

// Input is the per-tick input state read by the game.
type Input struct {
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Restart bool   // Restart key went down since the previous read (edge, not level)
	Quit    bool   // Host should stop the loop
	Pressed []byte // Raw bytes received since the previous read
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	hold   time.Duration
	closed bool
	now    func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// A hold of zero uses DefaultKeyHold.
func StartStream(r io.Reader, hold time.Duration) *Stream {
	s := newStream(hold)
	br := bufio.NewReader(r)
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream(hold time.Duration) *Stream {
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	return &Stream{
		ch:   make(chan byte, 128),
		hold: hold,
		now:  time.Now,
	}
}

// Poll drains all available bytes from the stream without blocking and
// returns the resulting input state. A closed reader reports Quit.
func (s *Stream) Poll() Input {
	now := s.now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := Input{Pressed: buf, Quit: s.closed}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		switch b {
		case 'a', 'A', 'h':
			s.state.left = now
		case 'd', 'D', 'l':
			s.state.right = now
		case 'w', 'W', 'k':
			s.state.up = now
		case 's', 'S', 'j':
			s.state.down = now
		case ' ':
			in.Restart = true
		case 'q', 'Q', 0x03: // 0x03 is Ctrl-C in raw mode
			in.Quit = true
		}
	}

	in.Left = s.held(s.state.left, now)
	in.Right = s.held(s.state.right, now)
	in.Up = s.held(s.state.up, now)
	in.Down = s.held(s.state.down, now)

	return in
}

func (s *Stream) held(last, now time.Time) bool {
	return !last.IsZero() && now.Sub(last) < s.hold
}

// Reset forgets all held keys.
func (s *Stream) Reset() {
	s.state = keyState{}
}
