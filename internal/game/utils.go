package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/iburimskiy/portfolio-fx/internal/render"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	if v != v { // NaN
		return 0
	}
	return v
}

// toNRGBA converts a float-alpha color for ebiten, treating alpha outside
// [0, 1] as its nearest bound.
func toNRGBA(c render.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(c.A)*255 + 0.5)}
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
