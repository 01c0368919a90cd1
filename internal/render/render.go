package render

import "github.com/iburimskiy/portfolio-fx/internal/particle"

// Color is a straight (non-premultiplied) color with a float alpha so that
// the computed alpha reaches the canvas without rounding.
type Color struct {
	R, G, B uint8
	A       float64
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Canvas is the drawing capability the field renderer needs.
type Canvas interface {
	// Clear wipes the whole surface to transparent.
	Clear()
	// StrokeLine draws a straight line of the given width.
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
	// FillGlow fills a circle of radius around (x, y) with a radial gradient
	// from c at the center to fully transparent at reach.
	FillGlow(x, y, radius, reach float64, c Color)
}

// Renderer draws a particle field onto a Canvas.
type Renderer struct {
	Color     Color
	LineWidth float64

	links []particle.Link
}

// NewRenderer returns a renderer drawing in tint.
func NewRenderer(tint Color) *Renderer {
	return &Renderer{Color: tint, LineWidth: 1}
}

// Draw clears c and paints the connections followed by the particles.
func (r *Renderer) Draw(c Canvas, f *particle.Field) {
	if c == nil || f == nil {
		return
	}
	c.Clear()

	r.links = f.Links(r.links[:0])
	for _, l := range r.links {
		a, b := f.Particles[l.A], f.Particles[l.B]
		c.StrokeLine(a.X, a.Y, b.X, b.Y, r.LineWidth, r.Color.WithAlpha(l.Alpha))
	}

	for _, p := range f.Particles {
		c.FillGlow(p.X, p.Y, p.Radius, p.Radius*particle.GlowReach, r.Color.WithAlpha(p.Opacity))
	}
}
