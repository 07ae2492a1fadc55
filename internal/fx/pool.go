package fx

import (
	"math/rand"
)

const (
	// ConnectionDistance is the generation-time distance below which two
	// graph nodes are joined.
	ConnectionDistance = 150.0

	DefaultMaxLifetime = 3000
)

// Options configures a pool. Zero values pick sensible defaults, except
// EntityCount where zero or negative means an empty pool.
type Options struct {
	EntityCount int
	// MaxLifetime in ticks, particles only. Lifetimes are drawn from
	// [2/3*MaxLifetime, MaxLifetime].
	MaxLifetime int
	PaletteSize int
	// Positions, if set, place entity i at Positions[i] instead of a random
	// spot. Only the initial population uses them.
	Positions []Vec
	Rand      *rand.Rand
}

// Pool owns a fixed-size set of entities of one Kind and advances them once
// per tick.
type Pool struct {
	kind Kind
	vp   *Viewport
	opts Options
	rng  *rand.Rand

	entities []Entity
	conns    []Connection
	expired  []int
	nextID   int
	ticks    int

	reg      *Registration
	disposed bool
}

// NewPool creates and initializes a pool inside vp. With a nil loop the pool
// is static: it is populated and drawable but nothing advances it.
func NewPool(kind Kind, vp *Viewport, loop *FrameLoop, opts Options) *Pool {
	if opts.MaxLifetime <= 0 {
		opts.MaxLifetime = DefaultMaxLifetime
	}
	opts.PaletteSize = paletteSize(opts.PaletteSize)
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	p := &Pool{kind: kind, vp: vp, opts: opts, rng: rng}
	p.Initialize(opts.EntityCount)
	if loop != nil {
		p.reg = loop.Register(p)
	}
	return p
}

// Initialize replaces the population with count fresh entities. For graph
// pools the connection snapshot is rebuilt.
func (p *Pool) Initialize(count int) {
	if p.disposed {
		return
	}
	if count < 0 {
		count = 0
	}
	p.entities = make([]Entity, 0, count)
	for i := 0; i < count; i++ {
		e := p.spawn()
		if i < len(p.opts.Positions) {
			e.Pos = p.opts.Positions[i]
		}
		p.entities = append(p.entities, e)
	}
	p.conns = nil
	if p.kind == GraphNode {
		p.connect()
	}
}

func (p *Pool) spawn() Entity {
	w, h := p.vp.Size()
	e := Entity{
		ID:  p.nextID,
		Pos: Vec{p.rng.Float64() * w, p.rng.Float64() * h},
	}
	p.nextID++
	switch p.kind {
	case Particle:
		p.spawnParticle(&e)
	case Star:
		p.spawnStar(&e)
	case GraphNode:
		p.spawnNode(&e)
	}
	return e
}

// connect snapshots every pair closer than ConnectionDistance. The edges are
// not revisited as nodes move.
func (p *Pool) connect() {
	for i := 0; i < len(p.entities); i++ {
		for j := i + 1; j < len(p.entities); j++ {
			if p.entities[i].Pos.Dist(p.entities[j].Pos) < ConnectionDistance {
				p.conns = append(p.conns, Connection{A: i, B: j})
			}
		}
	}
}

// Tick advances every entity by one frame. Expired particles are collected
// first and replaced afterwards, so the slice is never resized mid-walk.
func (p *Pool) Tick() {
	if p.disposed {
		return
	}
	w, h := p.vp.Size()
	p.expired = p.expired[:0]
	for i := range p.entities {
		e := &p.entities[i]
		switch p.kind {
		case Particle:
			if stepParticle(e, w, h) {
				p.expired = append(p.expired, i)
			}
		case Star:
			stepStar(e, w, h, p.rng)
		case GraphNode:
			stepNode(e, w, h)
		}
	}
	if len(p.expired) > 0 {
		p.replace(p.expired)
	}
	p.ticks++
}

// replace drops the entities at the given ascending indices and appends one
// fresh entity per drop.
func (p *Pool) replace(idx []int) {
	live := p.entities[:0]
	k := 0
	for i, e := range p.entities {
		if k < len(idx) && idx[k] == i {
			k++
			continue
		}
		live = append(live, e)
	}
	p.entities = live
	for range idx {
		p.entities = append(p.entities, p.spawn())
	}
}

// Dispose releases the entities and stops ticking. Calling it again does nothing.
func (p *Pool) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	p.reg.Cancel()
	p.reg = nil
	p.entities = nil
	p.conns = nil
	p.expired = nil
}

func (p *Pool) Kind() Kind          { return p.kind }
func (p *Pool) Len() int            { return len(p.entities) }
func (p *Pool) Ticks() int          { return p.ticks }
func (p *Pool) Disposed() bool      { return p.disposed }
func (p *Pool) Viewport() *Viewport { return p.vp }

// Animated reports whether a frame loop is driving the pool.
func (p *Pool) Animated() bool { return p.reg.Active() }

// Entities returns a copy of the current population.
func (p *Pool) Entities() []Entity {
	out := make([]Entity, len(p.entities))
	copy(out, p.entities)
	return out
}

func (p *Pool) Connections() []Connection {
	out := make([]Connection, len(p.conns))
	copy(out, p.conns)
	return out
}
