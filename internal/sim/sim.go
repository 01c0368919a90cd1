// Package sim drives the particle field against a host drawing surface.
package sim

import (
	"math/rand"

	"github.com/iburimskiy/portfolio-fx/internal/particle"
	"github.com/iburimskiy/portfolio-fx/internal/render"
)

// Host is everything the simulator needs from its environment. Surface
// returns nil when there is nothing to draw on yet.
type Host interface {
	Surface() render.Canvas
	Dimensions() (width, height int)
}

// Simulator owns the particle field and advances and paints it once per frame.
// Every entry point is a no-op while the host has no surface.
type Simulator struct {
	host     Host
	rnd      *rand.Rand
	renderer *render.Renderer
	field    *particle.Field
}

// New builds a simulator and seeds the field if the host already has a surface.
func New(host Host, rnd *rand.Rand, tint render.Color) *Simulator {
	s := &Simulator{
		host:     host,
		rnd:      rnd,
		renderer: render.NewRenderer(tint),
		field:    &particle.Field{},
	}
	s.Resize()
	return s
}

// Resize reseeds the field from the host's current dimensions.
func (s *Simulator) Resize() {
	if s.host == nil || s.host.Surface() == nil {
		return
	}
	w, h := s.host.Dimensions()
	s.field.Reset(s.rnd, w, h)
}

// SetPointer records the latest pointer position. Values are not validated.
func (s *Simulator) SetPointer(x, y float64) {
	s.field.Pointer = particle.Point{X: x, Y: y}
}

// Frame advances the field by one step and renders it.
func (s *Simulator) Frame() {
	if s.host == nil {
		return
	}
	c := s.host.Surface()
	if c == nil {
		return
	}
	s.field.Step()
	s.renderer.Draw(c, s.field)
}

// Field exposes the current state for inspection.
func (s *Simulator) Field() *particle.Field { return s.field }

// Len reports the number of live particles.
func (s *Simulator) Len() int { return len(s.field.Particles) }
