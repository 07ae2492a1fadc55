package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	DefaultMagnetStrength = 20

	springFrequency = 6.0
	springDamping   = 0.5
	settleEpsilon   = 0.01
)

// Magnetic pulls an element toward the cursor while hovered and springs it
// back to rest afterwards.
type Magnetic struct {
	Strength float64

	spring  harmonica.Spring
	x, y    float64
	vx, vy  float64
	hovered bool
}

func NewMagnetic(strength float64, fps int) *Magnetic {
	return &Magnetic{
		Strength: strength,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
	}
}

// Hover follows the cursor directly: the offset is the cursor's distance
// from the element centre scaled by Strength percent.
func (m *Magnetic) Hover(cursorX, cursorY, centerX, centerY float64) {
	m.hovered = true
	m.x = (cursorX - centerX) * m.Strength / 100
	m.y = (cursorY - centerY) * m.Strength / 100
	m.vx, m.vy = 0, 0
}

func (m *Magnetic) Leave() { m.hovered = false }

func (m *Magnetic) Hovered() bool { return m.hovered }

// Step advances the return spring by one frame.
func (m *Magnetic) Step() {
	if m.hovered {
		return
	}
	m.x, m.vx = m.spring.Update(m.x, m.vx, 0)
	m.y, m.vy = m.spring.Update(m.y, m.vy, 0)
	if math.Abs(m.x) < settleEpsilon && math.Abs(m.vx) < settleEpsilon {
		m.x, m.vx = 0, 0
	}
	if math.Abs(m.y) < settleEpsilon && math.Abs(m.vy) < settleEpsilon {
		m.y, m.vy = 0, 0
	}
}

func (m *Magnetic) Offset() (float64, float64) { return m.x, m.y }

// SmoothScroll eases a scroll position toward a target with a spring.
type SmoothScroll struct {
	Pos    float64
	Target float64

	spring harmonica.Spring
	vel    float64
}

func NewSmoothScroll(fps int) *SmoothScroll {
	return &SmoothScroll{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

// Jump moves immediately, as a mouse wheel does.
func (s *SmoothScroll) Jump(pos float64) {
	s.Pos, s.Target, s.vel = pos, pos, 0
}

func (s *SmoothScroll) To(target float64) { s.Target = target }

func (s *SmoothScroll) Step() float64 {
	if s.Settled() {
		s.Pos, s.vel = s.Target, 0
		return s.Pos
	}
	s.Pos, s.vel = s.spring.Update(s.Pos, s.vel, s.Target)
	return s.Pos
}

func (s *SmoothScroll) Settled() bool {
	return math.Abs(s.Pos-s.Target) < 0.5 && math.Abs(s.vel) < 0.5
}
