package fx

import (
	"image/color"
	"math"
)

// Kind selects how a pool spawns and advances its entities.
type Kind int

const (
	Particle Kind = iota
	Star
	GraphNode
)

func (k Kind) String() string {
	switch k {
	case Particle:
		return "particle"
	case Star:
		return "star"
	case GraphNode:
		return "node"
	}
	return "unknown"
}

type Vec struct{ X, Y float64 }

func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Viewport is the area entities live in. Pools only read it; the host
// resizes it (debounced) and pools pick the new size up on their next tick.
type Viewport struct {
	W, H float64
}

func NewViewport(w, h float64) *Viewport {
	return &Viewport{W: w, H: h}
}

func (v *Viewport) Resize(w, h float64) {
	v.W, v.H = w, h
}

func (v *Viewport) Size() (float64, float64) {
	return v.W, v.H
}

// Entity is a particle, star or graph node. Fields unused by a variant stay zero.
type Entity struct {
	ID  int
	Pos Vec
	Vel Vec

	Size    float64
	Opacity float64
	Color   color.NRGBA

	// particles
	Life     int
	base     float64
	fadeSpan float64

	// stars
	twinkle float64
}

// Connection joins two graph nodes by index.
type Connection struct {
	A, B int
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 { return clamp(v, 0, 1) }
