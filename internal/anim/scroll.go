package anim

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	NavScrolledAt   = 100
	FastScrollDelta = 10

	DefaultParallaxSpeed = 0.5
	globeSpeed           = 0.3
	globeSpin            = 0.2

	floatAmplitude = 10
	driftAmplitude = 4
	driftRate      = 0.4
)

type Direction int

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// ScrollState is sampled once per frame with the current scroll offset.
type ScrollState struct {
	Y         float64
	Direction Direction
	Fast      bool

	lastY float64
	t     float64
	noise *perlin.Perlin
}

func NewScrollState(seed int64) *ScrollState {
	return &ScrollState{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

// Frame records the scroll offset for this frame; dt is in seconds and only
// feeds the idle drift.
func (s *ScrollState) Frame(y, dt float64) {
	s.Y = y
	if y > s.lastY {
		s.Direction = Down
	} else if y < s.lastY {
		s.Direction = Up
	}
	s.Fast = math.Abs(y-s.lastY) > FastScrollDelta
	s.lastY = y
	s.t += dt
}

// NavScrolled reports whether the nav bar should switch to its solid style.
func (s *ScrollState) NavScrolled() bool { return s.Y > NavScrolledAt }

// Parallax is the vertical offset of an element moving at speed relative to
// the scroll.
func Parallax(y, speed float64) float64 { return y * speed }

// Globe returns the hero globe's vertical shift in percent of its height and
// its rotation in degrees.
func Globe(y float64) (shiftPct, rotationDeg float64) {
	return -50 + y*globeSpeed, y * globeSpin
}

// Floating is the bob of the i-th floating element: a scroll-linked sine
// plus a slow noise drift so it keeps moving while the page is idle.
func (s *ScrollState) Floating(i int) float64 {
	bob := math.Sin(s.Y*0.01+float64(i)) * floatAmplitude
	drift := s.noise.Noise2D(s.t*driftRate, float64(i)+0.5) * driftAmplitude
	return bob + drift
}
