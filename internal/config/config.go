package config

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Portfolio - Esc/Q: Quit, O: Load phrases"

	// Particle and line tint, rgb(255, 10, 10).
	TintR = 255
	TintG = 10
	TintB = 10

	// Overlay layout
	HeadlineX   = 48
	HeadlineY   = 96
	StatsY      = 160
	StatSpacing = 180
	StatusX     = 12
	StatusY     = 12
	CaretBlink  = 530 * time.Millisecond

	Name = "Hi, I'm a Gopher"
)

// DefaultStats are the counters shown under the headline, value first.
var DefaultStats = []Stat{
	{Value: "5+", Label: "Years Experience"},
	{Value: "20+", Label: "Projects"},
	{Value: "8", Label: "Publications"},
}

// Stat pairs a numeric label with its caption.
type Stat struct {
	Value string
	Label string
}

// Config is everything tunable from the command line.
type Config struct {
	Width          int
	Height         int
	Title          string
	Seed           int64
	PhrasesPath    string
	KeyClick       bool
	PauseUnfocused bool
	Debug          bool
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Width:          WindowWidth,
		Height:         WindowHeight,
		Title:          WindowTitle,
		PauseUnfocused: true,
	}
}

// Parse reads flags from args (without the program name) on top of Default.
func Parse(name string, args []string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "initial window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "initial window height in pixels")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.Int64Var(&cfg.Seed, "seed", 0, "particle random seed (0 picks one from the clock)")
	fs.StringVar(&cfg.PhrasesPath, "phrases", "", "text file with one headline phrase per line")
	fs.BoolVar(&cfg.KeyClick, "keyclick", false, "play a click for every typed character")
	fs.BoolVar(&cfg.PauseUnfocused, "pause-unfocused", cfg.PauseUnfocused, "stop the particle animation while the window is unfocused")
	fs.BoolVar(&cfg.Debug, "debug", false, "show FPS and particle count overlay")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var ErrBadWindowSize = errors.New("window size must be positive")

// Validate rejects settings the game cannot start with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadWindowSize, c.Width, c.Height)
	}
	return nil
}
