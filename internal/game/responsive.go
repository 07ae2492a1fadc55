package game

import (
	"math"
	"time"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

type perfLevel int

const (
	perfLow perfLevel = iota
	perfMedium
	perfHigh
)

func (p perfLevel) String() string {
	switch p {
	case perfLow:
		return "low"
	case perfMedium:
		return "medium"
	}
	return "high"
}

// classify maps a window width to a performance level and a content scale:
// phones, tablets, desktops.
func classify(width int) (perfLevel, float64) {
	switch {
	case width < config.MobileBreakpoint:
		return perfLow, 0.8
	case width < config.DesktopBreakpoint:
		return perfMedium, 0.9
	}
	return perfHigh, 1
}

// debouncer fires once, delay after the last Trigger.
type debouncer struct {
	delay time.Duration
	due   time.Time
	armed bool
}

func (d *debouncer) Trigger(now time.Time) {
	d.due = now.Add(d.delay)
	d.armed = true
}

func (d *debouncer) Fire(now time.Time) bool {
	if !d.armed || now.Before(d.due) {
		return false
	}
	d.armed = false
	return true
}

// fpsMonitor counts rendered frames and reports a rate once per window.
type fpsMonitor struct {
	window time.Duration
	frames int
	start  time.Time
}

func (m *fpsMonitor) Frame() { m.frames++ }

func (m *fpsMonitor) Sample(now time.Time) (int, bool) {
	if m.start.IsZero() {
		m.start = now
		m.frames = 0
		return 0, false
	}
	el := now.Sub(m.start)
	if el < m.window {
		return 0, false
	}
	fps := int(math.Round(float64(m.frames) * float64(time.Second) / float64(el)))
	m.frames = 0
	m.start = now
	return fps, true
}
