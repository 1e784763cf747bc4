package draw

import (
	"image/color"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canvas is a colour drawing buffer with 2x vertical resolution using
// half-block characters. Drawing happens in logical coordinates which are
// scaled to terminal pixels.
type Canvas struct {
	termWidth      int          // Actual terminal columns
	termHeight     int          // Actual terminal rows
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // Flat slice: [y * termWidth + x], A == 0 means unset

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets for centering the render area.
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]color.RGBA, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// Pixel returns the pixel at terminal coordinates and whether it is set.
func (c *Canvas) Pixel(x, y int) (color.RGBA, bool) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return color.RGBA{}, false
	}
	p := c.pixels[y*c.termWidth+x]
	return p, p.A != 0
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64, col color.RGBA) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	c.setPixel(px, py, col)
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, col color.RGBA) {
	x1 := int(math.Floor(p1.X * c.scaleX))
	y1 := int(math.Floor(p1.Y * c.scaleY))
	x2 := int(math.Floor(p2.X * c.scaleX))
	y2 := int(math.Floor(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillPolygon fills a polygon using a scanline algorithm and draws its outline
// so thin shapes stay visible at low resolution.
func (c *Canvas) FillPolygon(points []Point, col color.RGBA) {
	if len(points) < 3 {
		return
	}

	c.fillPolygon(points, col)

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], col)
	}
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point, col color.RGBA) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{
			X: p.X * c.scaleX,
			Y: p.Y * c.scaleY,
		}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				x := p1.X + t*(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}

		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Floor(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// FillCircle fills every pixel whose center lies inside the circle. The
// pixel containing the center is always set so tiny circles stay visible.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	c.eachPixelAround(cx, cy, r, func(px, py int, dist float64) {
		if dist <= r {
			c.setPixel(px, py, col)
		}
	})
	c.SetFloat(cx, cy, col)
}

// StrokeCircle draws a ring of the given width. The ring is never thinner
// than one pixel.
func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col color.RGBA) {
	half := width / 2
	if minHalf := 0.5 * math.Max(1/c.scaleX, 1/c.scaleY); half < minHalf {
		half = minHalf
	}
	c.eachPixelAround(cx, cy, r+half, func(px, py int, dist float64) {
		if math.Abs(dist-r) <= half {
			c.setPixel(px, py, col)
		}
	})
}

// eachPixelAround visits pixels in the bounding box of a circle, passing the
// logical distance from the pixel center to (cx, cy).
func (c *Canvas) eachPixelAround(cx, cy, r float64, fn func(px, py int, dist float64)) {
	x0 := int(math.Floor((cx - r) * c.scaleX))
	x1 := int(math.Ceil((cx + r) * c.scaleX))
	y0 := int(math.Floor((cy - r) * c.scaleY))
	y1 := int(math.Ceil((cy + r) * c.scaleY))

	for py := max(y0, 0); py <= min(y1, c.subPixelHeight-1); py++ {
		ly := (float64(py) + 0.5) / c.scaleY
		for px := max(x0, 0); px <= min(x1, c.termWidth-1); px++ {
			lx := (float64(px) + 0.5) / c.scaleX
			dx := lx - cx
			dy := ly - cy
			fn(px, py, math.Sqrt(dx*dx+dy*dy))
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// It stays under a typical 1500-byte MTU for smooth SSH transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using coloured half-block characters.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 8)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			hasTop := top.A != 0
			hasBottom := bottom.A != 0

			if !hasTop && !hasBottom {
				continue
			}

			c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)

			switch {
			case hasTop && hasBottom && top == bottom:
				c.writeFg(top)
				c.renderBuf.WriteRune(BlockFull)
			case hasTop && hasBottom:
				c.writeFg(top)
				c.writeBg(bottom)
				c.renderBuf.WriteRune(BlockUpperHalf)
			case hasTop:
				c.writeFg(top)
				c.renderBuf.WriteRune(BlockUpperHalf)
			default:
				c.writeFg(bottom)
				c.renderBuf.WriteRune(BlockLowerHalf)
			}
			c.renderBuf.WriteString(ansiReset)
		}
	}

	writeChunked(w, c.renderBuf.String())
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

func (c *Canvas) writeFg(col color.RGBA) {
	c.renderBuf.WriteString("\033[38;2;")
	c.writeRGB(col)
}

func (c *Canvas) writeBg(col color.RGBA) {
	c.renderBuf.WriteString("\033[48;2;")
	c.writeRGB(col)
}

func (c *Canvas) writeRGB(col color.RGBA) {
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], uint64(col.R), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], uint64(col.G), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], uint64(col.B), 10))
	c.renderBuf.WriteByte('m')
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1
	if !hasH && !hasV {
		return
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	line := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			buf.WriteString(cursorTo(left, top) + "┌" + line + "┐")
			buf.WriteString(cursorTo(left, bottom) + "└" + line + "┘")
		} else {
			buf.WriteString(cursorTo(c.offsetCol+1, top) + line)
			buf.WriteString(cursorTo(c.offsetCol+1, bottom) + line)
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			buf.WriteString(cursorTo(left, row) + "│" + cursorTo(right, row) + "│")
		}
	}

	io.WriteString(w, buf.String())
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based canvas position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}

func writeChunked(w io.Writer, data string) {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
