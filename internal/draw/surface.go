// Package draw provides the rendering surface contract, recorded frames and
// a terminal renderer built on half-block characters.
package draw

import "image/color"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Palette used by the game.
var (
	ColorBlack  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	ColorWhite  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorRed    = color.RGBA{R: 0xff, G: 0x32, B: 0x32, A: 0xff}
	ColorGreen  = color.RGBA{R: 0x32, G: 0xff, B: 0x32, A: 0xff}
	ColorBlue   = color.RGBA{R: 0x32, G: 0x96, B: 0xff, A: 0xff}
	ColorYellow = color.RGBA{R: 0xff, G: 0xff, B: 0x33, A: 0xff}
)

// Surface is a 2D drawing target with a fixed logical resolution.
// Coordinates are logical; implementations scale as needed.
type Surface interface {
	Clear(c color.RGBA)
	FillPolygon(points []Point, c color.RGBA)
	FillCircle(x, y, r float64, c color.RGBA)
	StrokeCircle(x, y, r, width float64, c color.RGBA)
	// Text draws s with its baseline at (x, y). size is the nominal font
	// height in logical units.
	Text(x, y, size float64, s string, c color.RGBA)
}

// CommandKind identifies a recorded draw call.
type CommandKind int

const (
	CmdClear CommandKind = iota
	CmdFillPolygon
	CmdFillCircle
	CmdStrokeCircle
	CmdText
)

// Command is one recorded Surface call.
type Command struct {
	Kind   CommandKind
	Points []Point
	X, Y   float64
	R      float64
	Width  float64
	Size   float64
	Text   string
	Color  color.RGBA
}

// Frame records Surface calls so they can be inspected or replayed on a
// real surface later. A Frame is itself a Surface.
type Frame struct {
	Commands []Command
	points   []Point // backing store for polygon points, reused across Reset
}

var _ Surface = (*Frame)(nil)

// Reset empties the frame, keeping allocated memory.
func (f *Frame) Reset() {
	f.Commands = f.Commands[:0]
	f.points = f.points[:0]
}

// Clear records a clear.
func (f *Frame) Clear(c color.RGBA) {
	f.Commands = append(f.Commands, Command{Kind: CmdClear, Color: c})
}

// FillPolygon records a filled polygon. The points are copied.
func (f *Frame) FillPolygon(points []Point, c color.RGBA) {
	start := len(f.points)
	f.points = append(f.points, points...)
	f.Commands = append(f.Commands, Command{
		Kind:   CmdFillPolygon,
		Points: f.points[start:len(f.points):len(f.points)],
		Color:  c,
	})
}

// FillCircle records a filled circle.
func (f *Frame) FillCircle(x, y, r float64, c color.RGBA) {
	f.Commands = append(f.Commands, Command{Kind: CmdFillCircle, X: x, Y: y, R: r, Color: c})
}

// StrokeCircle records a circle outline.
func (f *Frame) StrokeCircle(x, y, r, width float64, c color.RGBA) {
	f.Commands = append(f.Commands, Command{Kind: CmdStrokeCircle, X: x, Y: y, R: r, Width: width, Color: c})
}

// Text records a text draw.
func (f *Frame) Text(x, y, size float64, s string, c color.RGBA) {
	f.Commands = append(f.Commands, Command{Kind: CmdText, X: x, Y: y, Size: size, Text: s, Color: c})
}

// Replay issues every recorded command, in order, on s.
func (f *Frame) Replay(s Surface) {
	for i := range f.Commands {
		cmd := &f.Commands[i]
		switch cmd.Kind {
		case CmdClear:
			s.Clear(cmd.Color)
		case CmdFillPolygon:
			s.FillPolygon(cmd.Points, cmd.Color)
		case CmdFillCircle:
			s.FillCircle(cmd.X, cmd.Y, cmd.R, cmd.Color)
		case CmdStrokeCircle:
			s.StrokeCircle(cmd.X, cmd.Y, cmd.R, cmd.Width, cmd.Color)
		case CmdText:
			s.Text(cmd.X, cmd.Y, cmd.Size, cmd.Text, cmd.Color)
		}
	}
}

// Texts returns the recorded text strings in draw order.
func (f *Frame) Texts() []string {
	var out []string
	for _, cmd := range f.Commands {
		if cmd.Kind == CmdText {
			out = append(out, cmd.Text)
		}
	}
	return out
}
