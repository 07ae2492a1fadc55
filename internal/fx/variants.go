package fx

import (
	"math"
	"math/rand"
)

const (
	particleSpeed = 0.5
	starDrift     = 0.05
	nodeSpeed     = 0.3

	minStarOpacity = 0.1
	nodeOpacity    = 0.6
)

// --- particles: wrap, finite life, fade with remaining life ---

func (p *Pool) spawnParticle(e *Entity) {
	e.Vel = Vec{(p.rng.Float64() - 0.5) * particleSpeed, (p.rng.Float64() - 0.5) * particleSpeed}
	e.Size = p.rng.Float64()*3 + 1

	sw := particlePalette[p.rng.Intn(p.opts.PaletteSize)]
	e.Color = sw.c
	e.base = (p.rng.Float64()*0.5 + 0.2) * sw.alpha

	floor := lifetimeFloor(p.opts.MaxLifetime)
	e.Life = floor + p.rng.Intn(p.opts.MaxLifetime-floor+1)
	e.fadeSpan = float64(floor)
	e.Opacity = clamp01(e.base * float64(e.Life) / e.fadeSpan)
}

// lifetimeFloor is the shortest life a particle can get. Fading only starts
// once a particle drops below it.
func lifetimeFloor(max int) int {
	f := max * 2 / 3
	if f < 1 {
		f = 1
	}
	return f
}

// stepParticle reports whether the particle expired on this step.
func stepParticle(e *Entity, w, h float64) bool {
	e.Pos.X += e.Vel.X
	e.Pos.Y += e.Vel.Y
	wrap(&e.Pos, w, h)

	e.Life--
	ratio := math.Max(0, float64(e.Life)/e.fadeSpan)
	e.Opacity = clamp01(e.base * ratio)
	return e.Life <= 0
}

// --- stars: slow drift, twinkle ---

func (p *Pool) spawnStar(e *Entity) {
	e.Vel = Vec{(p.rng.Float64() - 0.5) * starDrift, (p.rng.Float64() - 0.5) * starDrift}
	e.Size = p.rng.Float64()*2 + 1
	e.Opacity = p.rng.Float64()*0.8 + 0.2
	e.Color = starColor
	e.twinkle = p.rng.Float64()*0.02 + 0.01
}

func stepStar(e *Entity, w, h float64, rng *rand.Rand) {
	e.Pos.X += e.Vel.X
	e.Pos.Y += e.Vel.Y
	wrap(&e.Pos, w, h)

	e.Opacity += (rng.Float64() - 0.5) * e.twinkle
	e.Opacity = clamp(e.Opacity, minStarOpacity, 1)
}

// --- graph nodes: bounce off the edges, never expire ---

func (p *Pool) spawnNode(e *Entity) {
	e.Vel = Vec{(p.rng.Float64() - 0.5) * nodeSpeed, (p.rng.Float64() - 0.5) * nodeSpeed}
	e.Size = p.rng.Float64()*3 + 2
	e.Opacity = nodeOpacity
	e.Color = nodeColor
}

func stepNode(e *Entity, w, h float64) {
	e.Pos.X += e.Vel.X
	e.Pos.Y += e.Vel.Y

	if e.Pos.X <= 0 || e.Pos.X >= w {
		e.Vel.X = -e.Vel.X
	}
	if e.Pos.Y <= 0 || e.Pos.Y >= h {
		e.Vel.Y = -e.Vel.Y
	}
	e.Pos.X = clamp(e.Pos.X, 0, w)
	e.Pos.Y = clamp(e.Pos.Y, 0, h)
}

// wrap moves a point that left the viewport to the opposite edge.
func wrap(v *Vec, w, h float64) {
	if v.X < 0 {
		v.X = w
	} else if v.X > w {
		v.X = 0
	}
	if v.Y < 0 {
		v.Y = h
	} else if v.Y > h {
		v.Y = 0
	}
}
