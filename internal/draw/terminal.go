package draw

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

const ansiReset = "\033[0m"

// ChunkWriter accumulates text for terminal output and writes in chunks for optimal
// network flow (e.g. over SSH). Use MoveCursor, WriteString, WriteRune to accumulate,
// then Flush to write to the underlying writer. Implements io.Writer for Canvas.Render.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w. offsetCol and offsetRow
// are added to all MoveCursor coordinates (for canvas centering).
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based
// canvas coordinates; offset is applied automatically.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer for use with Canvas.Render and other writers.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteAt writes a string at a specific position. col and row are 1-based canvas coordinates; offset is applied automatically.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

func cursorTo(col, row int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// Maximum render area in terminal cells; larger terminals get a centered,
// bordered play field.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, MaxTermWidth)
	renderHeight = min(termHeight, MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

type textOverlay struct {
	x, y  float64
	s     string
	color color.RGBA
}

// Terminal is a Surface that draws to an ANSI terminal. Shapes go to a
// scaled half-block Canvas; text is overlaid in terminal cells after the
// canvas is rendered.
type Terminal struct {
	w        io.Writer
	sizeFunc TermSizeFunc
	canvas   *Canvas
	out      *ChunkWriter
	texts    []textOverlay
}

var _ Surface = (*Terminal)(nil)

// NewTerminal creates a terminal surface with the given logical resolution.
// A nil sizeFunc uses DefaultTermSizeFunc.
func NewTerminal(w io.Writer, sizeFunc TermSizeFunc, logicalWidth, logicalHeight float64) *Terminal {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		termWidth, termHeight = 80, 24
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	canvas := NewScaledCanvas(renderWidth, renderHeight, logicalWidth, logicalHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Terminal{
		w:        w,
		sizeFunc: sizeFunc,
		canvas:   canvas,
		out:      NewChunkWriter(w, offsetCol, offsetRow),
	}
}

// Canvas exposes the underlying pixel buffer.
func (t *Terminal) Canvas() *Canvas {
	return t.canvas
}

// Open hides the cursor and clears the screen.
func (t *Terminal) Open() {
	HideCursor(t.w)
	ClearScreen(t.w)
}

// Close clears the screen and restores the cursor.
func (t *Terminal) Close() {
	ClearScreen(t.w)
	ShowCursor(t.w)
}

// Clear resets the canvas. The terminal's own background shows through
// unset pixels, so the colour is not painted.
func (t *Terminal) Clear(_ color.RGBA) {
	t.canvas.Clear()
	t.texts = t.texts[:0]
}

// FillPolygon implements Surface.
func (t *Terminal) FillPolygon(points []Point, c color.RGBA) {
	t.canvas.FillPolygon(points, c)
}

// FillCircle implements Surface.
func (t *Terminal) FillCircle(x, y, r float64, c color.RGBA) {
	t.canvas.FillCircle(x, y, r, c)
}

// StrokeCircle implements Surface.
func (t *Terminal) StrokeCircle(x, y, r, width float64, c color.RGBA) {
	t.canvas.StrokeCircle(x, y, r, width, c)
}

// Text queues s for overlay; size is ignored since terminal cells are fixed.
func (t *Terminal) Text(x, y, _ float64, s string, c color.RGBA) {
	t.texts = append(t.texts, textOverlay{x: x, y: y, s: s, color: c})
}

// Render draws a recorded frame and flushes it to the terminal.
func (t *Terminal) Render(f *Frame) error {
	t.resize()

	t.canvas.Clear()
	t.texts = t.texts[:0]
	f.Replay(t)

	t.out.WriteString("\033[H\033[2J")
	t.canvas.Render(t.out)
	t.canvas.RenderBorder(t.out)

	for _, txt := range t.texts {
		col, row := t.canvas.LogicalToTerminal(txt.x, txt.y)
		// Text anchors on its baseline; the cell above it is the glyph row.
		if row > 1 {
			row--
		}
		t.out.MoveCursor(max(col, 1), row)
		t.out.WriteString(fmt.Sprintf("\033[38;2;%d;%d;%dm", txt.color.R, txt.color.G, txt.color.B))
		t.out.WriteString(txt.s)
		t.out.WriteString(ansiReset)
	}

	return t.out.Flush()
}

// resize handles terminal resize, clamping to max render resolution.
func (t *Terminal) resize() {
	termWidth, termHeight, err := t.sizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	t.canvas.Resize(renderWidth, renderHeight)
	t.canvas.SetOffset(offsetCol, offsetRow)
	t.out.SetOffset(offsetCol, offsetRow)
}
