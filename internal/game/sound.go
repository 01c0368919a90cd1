package game

import (
	"fmt"
	"time"

	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/portfolio-fx/internal/audio"
)

// clicker plays a key click through the speaker.
type clicker struct{}

func newClicker() (*clicker, error) {
	bufferSize := audio.SampleRate.N(time.Second / 20)
	if err := speaker.Init(audio.SampleRate, bufferSize); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	return &clicker{}, nil
}

func (c *clicker) play() {
	speaker.Play(audio.NewClick(audio.SampleRate))
}

func (c *clicker) close() {
	speaker.Clear()
}
