package game

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/counter"
	"github.com/iburimskiy/portfolio-fx/internal/render"
	"github.com/iburimskiy/portfolio-fx/internal/scheduler"
	"github.com/iburimskiy/portfolio-fx/internal/sim"
	"github.com/iburimskiy/portfolio-fx/internal/typing"
)

var background = color.RGBA{R: 10, G: 10, B: 10, A: 255}

type stat struct {
	caption string
	counter *counter.Counter
}

// Game is the ebiten.Game running the portfolio background.
type Game struct {
	cfg config.Config

	// particles
	surf  *surface
	sim   *sim.Simulator
	sched *scheduler.Scheduler

	// viewport as last reported by Layout
	layoutW, layoutH int

	// headline
	typer     *typing.Typewriter
	lastTyped uint64
	clicker   *clicker

	stats        []stat
	statsStarted bool

	touches []ebiten.TouchID
	elapsed time.Duration
	lastErr error
}

// NewGame wires the simulator, scheduler and overlay for cfg.
func NewGame(cfg config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{cfg: cfg, surf: &surface{}}
	tint := render.Color{R: config.TintR, G: config.TintG, B: config.TintB, A: 1}
	g.sim = sim.New(g.surf, rand.New(rand.NewSource(seed)), tint)
	g.sched = scheduler.Loop(g.sim.Frame)

	typer, err := typing.New(typing.DefaultPhrases, typing.DefaultTiming)
	if err != nil {
		return nil, err
	}
	g.typer = typer
	if cfg.PhrasesPath != "" {
		if err := g.loadPhrases(cfg.PhrasesPath); err != nil {
			return nil, err
		}
	}

	for _, s := range config.DefaultStats {
		c, err := counter.New(s.Value)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", s.Label, err)
		}
		g.stats = append(g.stats, stat{caption: s.Label, counter: c})
	}

	if cfg.KeyClick {
		c, err := newClicker()
		if err != nil {
			log.Printf("Key click disabled: %v", err)
		} else {
			g.clicker = c
		}
	}

	log.Printf("Portfolio background ready (seed %d, pause unfocused %v, key click %v)",
		seed, cfg.PauseUnfocused, g.clicker != nil)
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.openPhrasesDialog(); err != nil {
			log.Printf("Loading phrases failed: %v", err)
			g.lastErr = err
		} else {
			g.lastErr = nil
		}
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	dt := time.Second / time.Duration(tps)
	g.elapsed += dt

	g.syncViewport()
	hidden := g.syncVisibility()
	g.syncPointer()
	g.sched.Tick()

	g.typer.Advance(dt)
	if typed := g.typer.Typed(); typed != g.lastTyped {
		g.lastTyped = typed
		if g.clicker != nil && !hidden {
			g.clicker.play()
		}
	}

	if !g.statsStarted && !hidden {
		g.statsStarted = true
		for _, s := range g.stats {
			s.counter.Start()
		}
	}
	for _, s := range g.stats {
		s.counter.Advance(dt)
	}
	return nil
}

// syncViewport applies the resize hook when Layout reported a new size.
func (g *Game) syncViewport() {
	if !g.surf.resize(g.layoutW, g.layoutH) {
		return
	}
	g.sim.Resize()
	log.Printf("Viewport %dx%d: %d particles", g.layoutW, g.layoutH, g.sim.Len())
}

// syncVisibility forwards minimize and focus changes to the scheduler and
// reports whether the page counts as hidden.
func (g *Game) syncVisibility() bool {
	hidden := ebiten.IsWindowMinimized() || (g.cfg.PauseUnfocused && !ebiten.IsFocused())
	if hidden != g.sched.Hidden() {
		if hidden {
			log.Printf("Hidden: animation stopped after %d frames", g.sched.Frames())
		} else {
			log.Printf("Visible: animation resumed")
		}
		g.sched.SetHidden(hidden)
	}
	return hidden
}

func (g *Game) syncPointer() {
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		x, y := ebiten.TouchPosition(g.touches[0])
		g.sim.SetPointer(float64(x), float64(y))
		return
	}
	x, y := ebiten.CursorPosition()
	g.sim.SetPointer(float64(x), float64(y))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if g.surf.img != nil {
		screen.DrawImage(g.surf.img, nil)
	}
	g.drawOverlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close releases the speaker, if one was opened.
func (g *Game) Close() {
	if g.clicker != nil {
		g.clicker.close()
	}
}
