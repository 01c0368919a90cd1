package particle

import (
	"math"
	"math/rand"
)

// Field is the full simulation state: every live particle, the surface
// bounds they bounce inside and the pointer they are drawn towards.
type Field struct {
	Width, Height float64
	Particles     []Particle
	Pointer       Point
}

// NewField seeds a field for a width x height surface. The pointer starts at
// the origin until the first pointer event arrives.
func NewField(rnd *rand.Rand, width, height int) *Field {
	f := &Field{}
	f.Reset(rnd, width, height)
	return f
}

// Reset discards every particle and repopulates the field for new bounds.
// The pointer position is kept.
func (f *Field) Reset(rnd *rand.Rand, width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.Width = float64(width)
	f.Height = float64(height)
	n := Count(width, height)
	f.Particles = make([]Particle, n)
	for i := range f.Particles {
		f.Particles[i] = Spawn(rnd, f.Width, f.Height)
	}
}

// Step advances every particle by one frame.
func (f *Field) Step() {
	for i := range f.Particles {
		f.Particles[i].Step(f.Width, f.Height, f.Pointer)
	}
}

// Link is a visible connection between two particles.
type Link struct {
	A, B  int
	Alpha float64
}

// Links appends to dst every unordered pair closer than ConnectionRadius,
// in (i, j>i) order.
func (f *Field) Links(dst []Link) []Link {
	ps := f.Particles
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			dx := ps[i].X - ps[j].X
			dy := ps[i].Y - ps[j].Y
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < ConnectionRadius {
				dst = append(dst, Link{A: i, B: j, Alpha: ConnectionAlpha(dist)})
			}
		}
	}
	return dst
}
