package particle

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewFieldPopulates(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(1)), 800, 600)
	if len(f.Particles) != 24 {
		t.Fatalf("len(Particles) = %d, want 24", len(f.Particles))
	}
	if f.Width != 800 || f.Height != 600 {
		t.Fatalf("bounds = %vx%v, want 800x600", f.Width, f.Height)
	}
	if f.Pointer != (Point{}) {
		t.Fatalf("Pointer = %+v, want origin", f.Pointer)
	}
}

func TestResetReplacesParticles(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	f := NewField(rnd, 800, 600)
	f.Pointer = Point{X: 5, Y: 6}

	f.Reset(rnd, 100, 100)
	if len(f.Particles) != 0 {
		t.Fatalf("len(Particles) = %d, want 0", len(f.Particles))
	}
	if f.Pointer != (Point{X: 5, Y: 6}) {
		t.Fatalf("Pointer = %+v, want kept", f.Pointer)
	}
	f.Step()

	f.Reset(rnd, 1920, 1080)
	if len(f.Particles) != 80 {
		t.Fatalf("len(Particles) = %d, want 80", len(f.Particles))
	}
}

func TestStepKeepsParticlesInBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	f := NewField(rnd, 640, 400)
	for i := range f.Particles {
		f.Particles[i].VX *= 20
		f.Particles[i].VY *= 20
	}
	for frame := 0; frame < 3000; frame++ {
		f.Pointer = Point{X: rnd.Float64()*800 - 80, Y: rnd.Float64()*500 - 50}
		f.Step()
		for i, p := range f.Particles {
			if p.X < 0 || p.X > f.Width || p.Y < 0 || p.Y > f.Height {
				t.Fatalf("frame %d: particle %d out of bounds at (%v, %v)", frame, i, p.X, p.Y)
			}
		}
	}
}

func TestLinks(t *testing.T) {
	f := &Field{
		Width: 1000, Height: 1000,
		Particles: []Particle{
			{X: 0, Y: 0},
			{X: 120, Y: 0}, // exactly on the cutoff from 0
			{X: 0, Y: 60},  // 60 from 0, about 134 from 1

			{X: 500, Y: 500},
			{X: 500, Y: 500},
		},
	}
	links := f.Links(nil)
	want := []Link{
		{A: 0, B: 2, Alpha: 0.15},
		{A: 3, B: 4, Alpha: 0.3},
	}
	if len(links) != len(want) {
		t.Fatalf("links = %+v, want %+v", links, want)
	}
	for i := range want {
		if links[i].A != want[i].A || links[i].B != want[i].B || math.Abs(links[i].Alpha-want[i].Alpha) > 1e-15 {
			t.Fatalf("links[%d] = %+v, want %+v", i, links[i], want[i])
		}
	}
}

func TestLinksReusesBuffer(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(4)), 800, 600)
	buf := make([]Link, 0, 64)
	first := f.Links(buf)
	second := f.Links(buf[:0])
	if len(first) != len(second) {
		t.Fatalf("len differs between calls: %d vs %d", len(first), len(second))
	}
}
