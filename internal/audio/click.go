// Package audio synthesizes the typewriter key click.
package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	SampleRate = beep.SampleRate(44100)

	clickFreq     = 1800.0
	clickDuration = 18 * time.Millisecond
	clickGain     = 0.25
	clickDecay    = 9.0 // envelope falls to e^-9 by the end of the burst
)

// click is a short exponentially decaying sine burst.
type click struct {
	rate  beep.SampleRate
	freq  float64
	gain  float64
	pos   int
	total int
}

// NewClick returns a fresh key click streamer at sr.
func NewClick(sr beep.SampleRate) beep.Streamer {
	return &click{
		rate:  sr,
		freq:  clickFreq,
		gain:  clickGain,
		total: sr.N(clickDuration),
	}
}

func (c *click) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.total {
		return 0, false
	}
	for i := range samples {
		if c.pos >= c.total {
			break
		}
		t := float64(c.pos) / float64(c.rate)
		env := math.Exp(-clickDecay * float64(c.pos) / float64(c.total))
		v := math.Sin(2*math.Pi*c.freq*t) * env * c.gain
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
		n++
	}
	return n, true
}

func (c *click) Err() error { return nil }
