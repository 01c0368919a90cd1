package render

import (
	"math"
	"testing"

	"github.com/iburimskiy/portfolio-fx/internal/particle"
)

type op struct {
	kind  string
	x0    float64
	y0    float64
	x1    float64
	y1    float64
	color Color
}

// recorder is a Canvas that remembers every call.
type recorder struct {
	ops []op
}

func (r *recorder) Clear() { r.ops = append(r.ops, op{kind: "clear"}) }

func (r *recorder) StrokeLine(x0, y0, x1, y1, _ float64, c Color) {
	r.ops = append(r.ops, op{kind: "line", x0: x0, y0: y0, x1: x1, y1: y1, color: c})
}

func (r *recorder) FillGlow(x, y, radius, reach float64, c Color) {
	r.ops = append(r.ops, op{kind: "glow", x0: x, y0: y, x1: radius, y1: reach, color: c})
}

var red = Color{R: 255, G: 10, B: 10, A: 1}

func TestDrawOrder(t *testing.T) {
	f := &particle.Field{
		Width: 400, Height: 400,
		Particles: []particle.Particle{
			{X: 10, Y: 10, Radius: 2, Opacity: 0.4},
			{X: 10, Y: 70, Radius: 1.5, Opacity: -0.05},
			{X: 300, Y: 300, Radius: 1, Opacity: 0.1},
		},
	}
	rec := &recorder{}
	NewRenderer(red).Draw(rec, f)

	kinds := make([]string, len(rec.ops))
	for i, o := range rec.ops {
		kinds[i] = o.kind
	}
	want := []string{"clear", "line", "glow", "glow", "glow"}
	if len(kinds) != len(want) {
		t.Fatalf("ops = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("ops = %v, want %v", kinds, want)
		}
	}

	line := rec.ops[1]
	if math.Abs(line.color.A-0.15) > 1e-15 {
		t.Fatalf("line alpha = %v, want 0.15", line.color.A)
	}
	if line.color.R != 255 || line.color.G != 10 || line.color.B != 10 {
		t.Fatalf("line color = %+v, want red", line.color)
	}

	glow := rec.ops[2]
	if glow.x1 != 2 || glow.y1 != 6 {
		t.Fatalf("glow radius/reach = %v/%v, want 2/6", glow.x1, glow.y1)
	}
	if glow.color.A != 0.4 {
		t.Fatalf("glow alpha = %v, want 0.4", glow.color.A)
	}
	if rec.ops[3].color.A != -0.05 {
		t.Fatalf("negative opacity was altered: %v", rec.ops[3].color.A)
	}
}

func TestDrawEmptyFieldOnlyClears(t *testing.T) {
	rec := &recorder{}
	NewRenderer(red).Draw(rec, &particle.Field{})
	if len(rec.ops) != 1 || rec.ops[0].kind != "clear" {
		t.Fatalf("ops = %+v, want a single clear", rec.ops)
	}
}

func TestDrawNilCanvas(t *testing.T) {
	NewRenderer(red).Draw(nil, &particle.Field{Particles: []particle.Particle{{}}})
}
