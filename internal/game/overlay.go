package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/portfolio-fx/internal/config"
)

func (g *Game) drawOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, config.Name, config.HeadlineX, config.HeadlineY-24)

	headline := g.typer.Text()
	if (g.elapsed/config.CaretBlink)%2 == 0 {
		headline += "|"
	}
	ebitenutil.DebugPrintAt(screen, headline, config.HeadlineX, config.HeadlineY)

	for i, s := range g.stats {
		x := config.HeadlineX + i*config.StatSpacing
		ebitenutil.DebugPrintAt(screen, s.counter.Text(), x, config.StatsY)
		ebitenutil.DebugPrintAt(screen, s.caption, x, config.StatsY+16)
	}

	status := "O: load headline phrases, Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, config.StatusX, screen.Bounds().Dy()-config.StatusY-16)

	if g.cfg.Debug {
		msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nParticles: %d\nFrames: %d\nHidden: %v\nUptime: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.sim.Len(), g.sched.Frames(),
			g.sched.Hidden(), formatDuration(g.elapsed))
		ebitenutil.DebugPrintAt(screen, msg, config.StatusX, config.StatusY)
	}
}
