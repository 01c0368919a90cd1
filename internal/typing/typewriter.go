// Package typing implements the headline typewriter effect as a small
// state machine driven by elapsed time.
package typing

import (
	"errors"
	"time"
)

// State is the current phase of the typewriter.
type State int

const (
	Typing State = iota
	Pausing
	Deleting
)

func (s State) String() string {
	switch s {
	case Typing:
		return "typing"
	case Pausing:
		return "pausing"
	case Deleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// Timing controls how fast the typewriter moves.
type Timing struct {
	Type   time.Duration // per revealed rune
	Delete time.Duration // per removed rune
	Pause  time.Duration // on a fully typed phrase
}

// DefaultTiming matches the portfolio headline.
var DefaultTiming = Timing{
	Type:   100 * time.Millisecond,
	Delete: 50 * time.Millisecond,
	Pause:  2000 * time.Millisecond,
}

// DefaultPhrases are the headline roles cycled through by default.
var DefaultPhrases = []string{
	"Software Engineer @ Metzev",
	"AI/ML Research Engineer",
	"Full Stack Developer",
	"Computer Vision Expert",
	"Published Researcher",
	"Problem Solver",
}

var ErrBadTiming = errors.New("typing: delays must be positive")

// Typewriter cycles through phrases, typing each one out, holding it, and
// deleting it again.
type Typewriter struct {
	timing  Timing
	phrases [][]rune

	state  State
	phrase int
	chars  int
	wait   time.Duration
	typed  uint64
}

// New returns a typewriter whose first step fires on the first Advance.
// Empty phrases are skipped; with none left the typewriter stays blank.
func New(phrases []string, timing Timing) (*Typewriter, error) {
	if timing.Type <= 0 || timing.Delete <= 0 || timing.Pause <= 0 {
		return nil, ErrBadTiming
	}
	t := &Typewriter{timing: timing}
	t.Reset(phrases)
	return t, nil
}

// Reset swaps in a new phrase list and restarts from its first phrase.
func (t *Typewriter) Reset(phrases []string) {
	t.phrases = t.phrases[:0]
	for _, p := range phrases {
		if p == "" {
			continue
		}
		t.phrases = append(t.phrases, []rune(p))
	}
	t.state = Typing
	t.phrase = 0
	t.chars = 0
	t.wait = 0
}

// Advance moves the clock forward by dt and fires every step that came due.
func (t *Typewriter) Advance(dt time.Duration) {
	if len(t.phrases) == 0 {
		return
	}
	t.wait -= dt
	for t.wait <= 0 {
		t.wait += t.step()
	}
}

// step performs one transition and returns the delay until the next.
func (t *Typewriter) step() time.Duration {
	cur := t.phrases[t.phrase]
	switch t.state {
	case Typing:
		t.chars++
		t.typed++
		if t.chars >= len(cur) {
			t.state = Pausing
			return t.timing.Pause
		}
		return t.timing.Type
	case Pausing:
		t.state = Deleting
		return t.deleteOne()
	default:
		return t.deleteOne()
	}
}

func (t *Typewriter) deleteOne() time.Duration {
	t.chars--
	if t.chars <= 0 {
		t.chars = 0
		t.state = Typing
		t.phrase = (t.phrase + 1) % len(t.phrases)
	}
	return t.timing.Delete
}

// Text returns the currently visible part of the phrase.
func (t *Typewriter) Text() string {
	if len(t.phrases) == 0 {
		return ""
	}
	return string(t.phrases[t.phrase][:t.chars])
}

// State reports the current phase.
func (t *Typewriter) State() State { return t.state }

// Phrase returns the index of the phrase being shown.
func (t *Typewriter) Phrase() int { return t.phrase }

// Typed counts runes revealed since construction. Callers compare successive
// values to detect key strokes.
func (t *Typewriter) Typed() uint64 { return t.typed }

// Len returns the number of phrases in rotation.
func (t *Typewriter) Len() int { return len(t.phrases) }
