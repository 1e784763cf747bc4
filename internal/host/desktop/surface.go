package desktop

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/spacedodge/internal/draw"
)

// baseFontHeight is the pixel height of basicfont.Face7x13.
const baseFontHeight = 13.0

var (
	whiteOnce sync.Once
	whiteImg  *ebiten.Image
)

// whitePixel returns a 1x1 white source image for DrawTriangles.
func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImg = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteImg
}

// Surface draws onto an ebiten image in logical coordinates. ebiten's
// Layout does the scaling to the window.
type Surface struct {
	dst *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

var _ draw.Surface = (*Surface)(nil)

// NewSurface wraps dst.
func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst}
}

// SetTarget points the surface at a new destination image.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// Clear fills the whole image with c.
func (s *Surface) Clear(c color.RGBA) {
	s.dst.Fill(c)
}

// FillPolygon fills a closed polygon.
func (s *Surface) FillPolygon(points []draw.Point, c color.RGBA) {
	if len(points) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])

	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(s.vertices, s.indices, whitePixel(), op)
}

// FillCircle implements draw.Surface.
func (s *Surface) FillCircle(x, y, r float64, c color.RGBA) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c, true)
}

// StrokeCircle implements draw.Surface.
func (s *Surface) StrokeCircle(x, y, r, width float64, c color.RGBA) {
	vector.StrokeCircle(s.dst, float32(x), float32(y), float32(r), float32(width), c, true)
}

// Text draws s with the built-in bitmap face scaled to size.
func (s *Surface) Text(x, y, size float64, str string, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	scale := size / baseFontHeight
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(s.dst, str, basicfont.Face7x13, op)
}
