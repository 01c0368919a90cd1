package particle

import (
	"math"
	"math/rand"
)

const (
	// MaxCount caps the field size on very large viewports.
	MaxCount        = 80
	// AreaPerParticle is the viewport area in square pixels that earns one particle.
	AreaPerParticle = 20000

	// Pointer attraction
	InteractionRadius = 150.0
	MaxForce          = 0.02
	ForceScale        = 0.01

	// Connection lines
	ConnectionRadius = 120.0
	MaxLineAlpha     = 0.3

	Damping = 0.99

	BaseOpacity  = 0.2
	PulseOpacity = 0.3

	// GlowReach is how far the radial gradient extends, in multiples of the radius.
	GlowReach = 3.0
)

// Point is a position in viewport pixel space.
type Point struct {
	X, Y float64
}

// Particle is one animated point of the background.
type Particle struct {
	X, Y       float64
	VX, VY     float64
	Radius     float64
	Opacity    float64
	PulsePhase float64
	PulseSpeed float64
}

// Count returns how many particles a width x height surface holds.
func Count(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	n := (width * height) / AreaPerParticle
	if n > MaxCount {
		n = MaxCount
	}
	return n
}

// Spawn creates a particle at a random position inside width x height.
func Spawn(rnd *rand.Rand, width, height float64) Particle {
	return Particle{
		X:          rnd.Float64() * width,
		Y:          rnd.Float64() * height,
		VX:         (rnd.Float64() - 0.5) * 0.8,
		VY:         (rnd.Float64() - 0.5) * 0.8,
		Radius:     rnd.Float64()*2 + 1,
		Opacity:    rnd.Float64()*0.6 + 0.2,
		PulseSpeed: rnd.Float64()*0.02 + 0.01,
		PulsePhase: rnd.Float64() * math.Pi * 2,
	}
}

// AttractionForce returns the pointer pull for a particle dist pixels away.
// It falls off linearly and is zero at or beyond InteractionRadius.
func AttractionForce(dist float64) float64 {
	if !(dist < InteractionRadius) {
		return 0
	}
	return (InteractionRadius - dist) / InteractionRadius * MaxForce
}

// ConnectionAlpha returns the stroke alpha of a line between two particles
// dist pixels apart, zero at or beyond ConnectionRadius.
func ConnectionAlpha(dist float64) float64 {
	if !(dist < ConnectionRadius) {
		return 0
	}
	return (ConnectionRadius - dist) / ConnectionRadius * MaxLineAlpha
}

// Opacity derives the pulsing opacity from an accumulated phase. The result
// spans [-0.1, 0.5] and is intentionally left unclamped.
func Opacity(phase float64) float64 {
	return BaseOpacity + math.Sin(phase)*PulseOpacity
}

// Step advances p by one frame on a width x height surface with the pointer at ptr.
func (p *Particle) Step(width, height float64, ptr Point) {
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 || p.X > width {
		p.VX = -p.VX
		p.X = math.Max(0, math.Min(width, p.X))
	}
	if p.Y < 0 || p.Y > height {
		p.VY = -p.VY
		p.Y = math.Max(0, math.Min(height, p.Y))
	}

	dx := ptr.X - p.X
	dy := ptr.Y - p.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < InteractionRadius {
		force := AttractionForce(dist)
		p.VX += dx * force * ForceScale
		p.VY += dy * force * ForceScale
	}

	p.PulsePhase += p.PulseSpeed
	p.Opacity = Opacity(p.PulsePhase)

	p.VX *= Damping
	p.VY *= Damping
}
