// Package counter animates stat labels such as "15+" from zero up to their value.
package counter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// Steps is how many increments it takes to reach the final value.
	Steps = 50
	// Interval is the time between increments.
	Interval = 30 * time.Millisecond
)

// Parse splits a stat label into its numeric value and the non-numeric
// suffix shown after it. Every character other than a digit or '.' counts
// towards the suffix wherever it appears.
func Parse(label string) (float64, string, error) {
	var num, suffix strings.Builder
	for _, r := range label {
		if (r >= '0' && r <= '9') || r == '.' {
			num.WriteRune(r)
		} else {
			suffix.WriteRune(r)
		}
	}
	s := num.String()
	// Keep the longest prefix that parses, so "1.2.3" reads as 1.2.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if j := strings.IndexByte(s[i+1:], '.'); j >= 0 {
			s = s[:i+1+j]
		}
	}
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "." {
		return 0, "", fmt.Errorf("counter: label %q has no number", label)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, "", fmt.Errorf("counter: label %q: %w", label, err)
	}
	return v, suffix.String(), nil
}

// Counter counts up to a target in Steps equal increments.
type Counter struct {
	target    float64
	increment float64
	suffix    string

	current float64
	wait    time.Duration
	started bool
	done    bool
}

// New builds a counter for label. It shows zero until Start.
func New(label string) (*Counter, error) {
	v, suffix, err := Parse(label)
	if err != nil {
		return nil, err
	}
	return &Counter{
		target:    v,
		increment: v / Steps,
		suffix:    suffix,
		wait:      Interval,
	}, nil
}

// Start begins counting. Calling it again has no effect.
func (c *Counter) Start() { c.started = true }

// Advance moves the counter's clock forward by dt.
func (c *Counter) Advance(dt time.Duration) {
	if !c.started || c.done {
		return
	}
	c.wait -= dt
	for c.wait <= 0 && !c.done {
		c.tick()
		c.wait += Interval
	}
}

func (c *Counter) tick() {
	c.current += c.increment
	if c.current >= c.target {
		c.current = c.target
		c.done = true
	}
}

// Text renders the current value floored, followed by the suffix.
func (c *Counter) Text() string {
	return strconv.FormatFloat(math.Floor(c.current), 'f', -1, 64) + c.suffix
}

// Value returns the current, unfloored value.
func (c *Counter) Value() float64 { return c.current }

// Done reports whether the target has been reached.
func (c *Counter) Done() bool { return c.done }
