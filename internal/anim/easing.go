// Package anim holds the time-driven effects that sit on top of the page:
// counters, progress bars, typewriter and glitch text, magnetic buttons,
// scroll reveals. Everything advances by an explicit time step so the host
// decides what "a frame" is.
package anim

import (
	"math"
	"time"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// EaseOutCubic maps [0,1] onto [0,1], fast at first and settling at the end.
func EaseOutCubic(t float64) float64 {
	t = clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

const (
	CounterDuration      = 2 * time.Second
	ProgressDelay        = 300 * time.Millisecond
	ProgressFillDuration = time.Second
)

// Counter counts up to Target over Duration once started.
type Counter struct {
	Target   int
	Duration time.Duration

	elapsed time.Duration
	started bool
}

func NewCounter(target int) *Counter {
	return &Counter{Target: target, Duration: CounterDuration}
}

func (c *Counter) Start() { c.started = true }

func (c *Counter) Started() bool { return c.started }

func (c *Counter) Advance(dt time.Duration) {
	if !c.started || c.Done() {
		return
	}
	c.elapsed += dt
}

func (c *Counter) Done() bool {
	return c.started && c.elapsed >= c.Duration
}

func (c *Counter) Value() int {
	if !c.started {
		return 0
	}
	if c.Done() || c.Duration <= 0 {
		return c.Target
	}
	p := float64(c.elapsed) / float64(c.Duration)
	return int(math.Floor(float64(c.Target) * EaseOutCubic(p)))
}

// ProgressBar fills to Percent after a short delay once started.
type ProgressBar struct {
	Percent float64

	elapsed time.Duration
	started bool
}

func NewProgressBar(percent float64) *ProgressBar {
	return &ProgressBar{Percent: percent}
}

func (b *ProgressBar) Start() { b.started = true }

func (b *ProgressBar) Advance(dt time.Duration) {
	if b.started {
		b.elapsed += dt
	}
}

// Fill is the current width as a percentage.
func (b *ProgressBar) Fill() float64 {
	if !b.started || b.elapsed < ProgressDelay {
		return 0
	}
	p := float64(b.elapsed-ProgressDelay) / float64(ProgressFillDuration)
	return b.Percent * EaseOutCubic(p)
}
