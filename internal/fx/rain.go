package fx

import (
	"math/rand"
	"strings"
)

const (
	RainColumnWidth = 20
	RainLineHeight  = 13 // basicfont.Face7x13

	rainSwapChance = 0.1
	rainExtraLines = 10
)

// glyphs the HUD font can actually draw.
var rainGlyphs = []rune("01ABCDEFGHIJKLMNOPQRSTUVWXYZ#$%&*+=<>")

type rainColumn struct {
	X      float64
	glyphs []rune
	// Head is the y of the column's last line; the column hangs above it.
	Head  float64
	speed float64 // units per tick
}

func (c *rainColumn) Text() string {
	var b strings.Builder
	for i, g := range c.glyphs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(g)
	}
	return b.String()
}

func (c *rainColumn) height() float64 {
	return float64(len(c.glyphs) * RainLineHeight)
}

// Rain is the falling-glyph backdrop. It is a Ticker like Pool, but its
// columns are laid out once per Initialize rather than spawned and expired.
type Rain struct {
	vp  *Viewport
	rng *rand.Rand
	tps float64

	cols     []rainColumn
	reg      *Registration
	disposed bool
}

// NewRain lays out columns across vp. tps converts per-column fall durations
// into per-tick speeds.
func NewRain(vp *Viewport, loop *FrameLoop, rng *rand.Rand, tps int) *Rain {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if tps <= 0 {
		tps = 60
	}
	r := &Rain{vp: vp, rng: rng, tps: float64(tps)}
	r.Initialize()
	if loop != nil {
		r.reg = loop.Register(r)
	}
	return r
}

func (r *Rain) Initialize() {
	if r.disposed {
		return
	}
	w, h := r.vp.Size()
	n := int(w) / RainColumnWidth
	lines := int(h)/RainLineHeight + rainExtraLines
	r.cols = make([]rainColumn, n)
	for i := range r.cols {
		c := &r.cols[i]
		c.X = float64(i * RainColumnWidth)
		c.glyphs = make([]rune, lines)
		for j := range c.glyphs {
			c.glyphs[j] = r.glyph()
		}
		secs := r.rng.Float64()*3 + 2
		c.speed = (h + c.height()) / (secs * r.tps)
		// Up to two seconds of start delay, expressed as distance above the top.
		c.Head = -r.rng.Float64() * 2 * r.tps * c.speed
	}
}

func (r *Rain) glyph() rune {
	return rainGlyphs[r.rng.Intn(len(rainGlyphs))]
}

func (r *Rain) Tick() {
	if r.disposed {
		return
	}
	_, h := r.vp.Size()
	for i := range r.cols {
		c := &r.cols[i]
		c.Head += c.speed
		if c.Head-c.height() > h {
			c.Head = 0
		}
		if r.rng.Float64() < rainSwapChance {
			c.glyphs[r.rng.Intn(len(c.glyphs))] = r.glyph()
		}
	}
}

func (r *Rain) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.reg.Cancel()
	r.reg = nil
	r.cols = nil
}

func (r *Rain) Columns() int   { return len(r.cols) }
func (r *Rain) Disposed() bool { return r.disposed }
