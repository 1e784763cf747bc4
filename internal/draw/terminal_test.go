package draw

import (
	"bytes"
	"strings"
	"testing"
)

func fixedSize(w, h int) TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func TestTerminalRender(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, fixedSize(80, 30), 800, 600)

	var f Frame
	f.Clear(ColorBlack)
	f.FillCircle(400, 300, 40, ColorRed)
	f.Text(10, 40, 32, "Score: 7", ColorWhite)

	if err := term.Render(&f); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\033[H\033[2J") {
		t.Errorf("frame should start with a screen clear")
	}
	if !strings.Contains(out, "Score: 7") {
		t.Errorf("missing HUD text: %q", out)
	}
	if !strings.Contains(out, "38;2;255;50;50m") {
		t.Errorf("missing asteroid colour")
	}
}

func TestTerminalRenderFollowsResize(t *testing.T) {
	var buf bytes.Buffer
	w, h := 80, 30
	term := NewTerminal(&buf, func() (int, int, error) { return w, h, nil }, 800, 600)

	w, h = 200, 80
	if err := term.Render(&Frame{}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if term.Canvas().TerminalWidth() != MaxTermWidth || term.Canvas().TerminalHeight() != MaxTermHeight {
		t.Fatalf("canvas not resized: %dx%d", term.Canvas().TerminalWidth(), term.Canvas().TerminalHeight())
	}
	if !strings.Contains(buf.String(), "┌") {
		t.Errorf("expected border for oversized terminal")
	}
}

func TestChunkWriterOffset(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 3, 2)
	cw.WriteAt(1, 1, "hi")
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}
	if got := buf.String(); got != "\033[3;4Hhi" {
		t.Fatalf("unexpected output %q", got)
	}
}
