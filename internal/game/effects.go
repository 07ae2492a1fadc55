package game

import (
	"image"
	"log"
	"math/rand"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
	"github.com/iburimskiy/portfolio-backdrop/internal/fx"
)

// effects owns every background pool on the page. Heavy effects (neural
// network, particle fields, rain) come and go with the viewport class and
// the reduced-motion setting; the starfield always stays.
type effects struct {
	loop *fx.FrameLoop
	rng  *rand.Rand
	cfg  config.Config
	page *page

	stars   *fx.Pool
	network *fx.Pool
	rain    *fx.Rain
	fields  map[string]*fx.Pool

	// fieldSections is the random half of the non-home sections chosen once
	// at startup.
	fieldSections []string
	particles     int

	hideHeavy bool
	reduced   bool
}

func newEffects(loop *fx.FrameLoop, rng *rand.Rand, cfg config.Config, p *page) *effects {
	e := &effects{
		loop:      loop,
		rng:       rng,
		cfg:       cfg,
		page:      p,
		fields:    map[string]*fx.Pool{},
		particles: cfg.Particles,
		reduced:   cfg.ReducedMotion,
	}
	for _, s := range p.sections {
		if s.ID != sectionHome && rng.Float64() > 0.5 {
			e.fieldSections = append(e.fieldSections, s.ID)
		}
	}
	e.stars = fx.NewPool(fx.Star, p.section(sectionHome).vp, loop, fx.Options{
		EntityCount: cfg.Stars,
		Rand:        e.child(),
	})
	e.sync()
	return e
}

func (e *effects) child() *rand.Rand { return rand.New(rand.NewSource(e.rng.Int63())) }

func (e *effects) heavy() bool { return !e.hideHeavy && !e.reduced }

// sync creates or disposes heavy effects to match the current flags.
func (e *effects) sync() {
	if !e.heavy() {
		if e.network != nil {
			e.network.Dispose()
			e.network = nil
		}
		if e.rain != nil {
			e.rain.Dispose()
			e.rain = nil
		}
		e.disposeFields()
		return
	}
	if e.network == nil {
		e.network = fx.NewPool(fx.GraphNode, e.page.section(sectionHome).vp, e.loop, fx.Options{
			EntityCount: e.cfg.Nodes,
			Rand:        e.child(),
		})
	}
	if e.rain == nil {
		e.rain = fx.NewRain(e.page.section(sectionJourney).vp, e.loop, e.child(), config.TPS)
	}
	if len(e.fields) == 0 {
		e.buildFields()
	}
}

func (e *effects) buildFields() {
	for _, id := range e.fieldSections {
		e.fields[id] = fx.NewPool(fx.Particle, e.page.section(id).vp, e.loop, fx.Options{
			EntityCount: e.particles,
			MaxLifetime: e.cfg.ParticleLifetime,
			PaletteSize: e.cfg.PaletteSize,
			Rand:        e.child(),
		})
	}
}

func (e *effects) disposeFields() {
	for id, p := range e.fields {
		p.Dispose()
		delete(e.fields, id)
	}
}

func (e *effects) setHeavyHidden(hide bool) {
	if hide == e.hideHeavy {
		return
	}
	e.hideHeavy = hide
	e.sync()
}

func (e *effects) setReducedMotion(on bool) {
	if on == e.reduced {
		return
	}
	e.reduced = on
	e.sync()
}

// reduce halves the particle count of every field, down to a floor. Pools
// keep a constant size, so fields are rebuilt at the new count.
func (e *effects) reduce() bool {
	n := e.particles / 2
	if n < config.MinParticleCount {
		n = config.MinParticleCount
	}
	if n >= e.particles {
		return false
	}
	e.setParticles(n)
	return true
}

func (e *effects) restore() bool {
	if e.particles == e.cfg.Particles {
		return false
	}
	e.setParticles(e.cfg.Particles)
	return true
}

func (e *effects) setParticles(n int) {
	log.Printf("effects: particle fields %d -> %d", e.particles, n)
	e.particles = n
	if len(e.fields) == 0 {
		return
	}
	e.disposeFields()
	e.buildFields()
}

// relayout re-seeds the rain columns for the new width. Pools keep their
// entities; out-of-bounds ones wrap or bounce back on the next tick.
func (e *effects) relayout() {
	if e.rain != nil {
		e.rain.Initialize()
	}
}

func (e *effects) dispose() {
	e.stars.Dispose()
	e.reduced = true
	e.sync()
}

// pools lists live pools in a stable order.
func (e *effects) pools() []*fx.Pool {
	out := []*fx.Pool{e.stars}
	if e.network != nil {
		out = append(out, e.network)
	}
	ids := make([]string, 0, len(e.fields))
	for id := range e.fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		out = append(out, e.fields[id])
	}
	return out
}

func (e *effects) entityCount() int {
	n := 0
	for _, p := range e.pools() {
		n += p.Len()
	}
	return n
}

// draw paints each effect under its section, clipped to the section and
// skipped when the section is off screen.
func (e *effects) draw(dst *ebiten.Image, scrollY float64) {
	home := e.page.section(sectionHome)
	if onScreen(home, scrollY, e.page.h) {
		c := clip(dst, home, scrollY)
		e.stars.Draw(c, 0, home.Top-scrollY)
		if e.network != nil {
			e.network.Draw(c, 0, home.Top-scrollY)
		}
	}
	if e.rain != nil {
		if s := e.page.section(sectionJourney); onScreen(s, scrollY, e.page.h) {
			e.rain.Draw(clip(dst, s, scrollY), 0, s.Top-scrollY, 0.35)
		}
	}
	for id, p := range e.fields {
		if s := e.page.section(id); onScreen(s, scrollY, e.page.h) {
			p.Draw(clip(dst, s, scrollY), 0, s.Top-scrollY)
		}
	}
}

func onScreen(s *section, scrollY, viewH float64) bool {
	return s.Top+s.H > scrollY && s.Top < scrollY+viewH
}

// clip keeps dst's coordinate space but limits drawing to the section band.
func clip(dst *ebiten.Image, s *section, scrollY float64) *ebiten.Image {
	b := dst.Bounds()
	r := image.Rect(b.Min.X, int(s.Top-scrollY), b.Max.X, int(s.Top+s.H-scrollY)).Intersect(b)
	return dst.SubImage(r).(*ebiten.Image)
}
