package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-fx/internal/render"
)

// glowSegments is the number of triangles in a particle's gradient fan.
const glowSegments = 20

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// surface is the offscreen image the particle field is painted into. It is
// both the simulator's host and its canvas.
type surface struct {
	img  *ebiten.Image
	w, h int

	verts []ebiten.Vertex
	idx   []uint16
}

// Surface returns nil until the window has a usable size.
func (s *surface) Surface() render.Canvas {
	if s.img == nil {
		return nil
	}
	return s
}

func (s *surface) Dimensions() (int, int) { return s.w, s.h }

// resize reallocates the backing image for w x h and reports whether the
// size changed.
func (s *surface) resize(w, h int) bool {
	if w == s.w && h == s.h && (s.img != nil || w <= 0 || h <= 0) {
		return false
	}
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	s.w, s.h = w, h
	if w > 0 && h > 0 {
		s.img = ebiten.NewImage(w, h)
	}
	return true
}

func (s *surface) Clear() {
	s.img.Clear()
}

func (s *surface) StrokeLine(x0, y0, x1, y1, width float64, c render.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), toNRGBA(c), true)
}

// FillGlow draws a triangle fan whose vertex colors interpolate from c at the
// center to the gradient's value at radius, which is where the fill stops.
func (s *surface) FillGlow(x, y, radius, reach float64, c render.Color) {
	a := clamp01(c.A)
	if a == 0 || radius <= 0 {
		return
	}
	rimA := a
	if reach > 0 {
		rimA = a * clamp01(1-radius/reach)
	}
	r, g, b := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255

	s.verts = s.verts[:0]
	s.idx = s.idx[:0]
	s.verts = append(s.verts, ebiten.Vertex{
		DstX: float32(x), DstY: float32(y),
		SrcX: 1, SrcY: 1,
		ColorR: r, ColorG: g, ColorB: b, ColorA: float32(a),
	})
	for i := 0; i <= glowSegments; i++ {
		theta := 2 * math.Pi * float64(i) / glowSegments
		s.verts = append(s.verts, ebiten.Vertex{
			DstX: float32(x + radius*math.Cos(theta)),
			DstY: float32(y + radius*math.Sin(theta)),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: float32(rimA),
		})
	}
	for i := 1; i <= glowSegments; i++ {
		s.idx = append(s.idx, 0, uint16(i), uint16(i+1))
	}
	s.img.DrawTriangles(s.verts, s.idx, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
