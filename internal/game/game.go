// Package game hosts the portfolio page in an ebiten window: layout, input,
// background effects and the ambient music toggle.
package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/portfolio-backdrop/internal/anim"
	"github.com/iburimskiy/portfolio-backdrop/internal/config"
	"github.com/iburimskiy/portfolio-backdrop/internal/fx"
	"github.com/iburimskiy/portfolio-backdrop/internal/portfolio"
)

const (
	heroName    = "Data Science Portfolio"
	heroTagline = "Machine learning engineer turning data into products"

	frameStep = time.Second / config.TPS
)

type Game struct {
	cfg  config.Config
	rng  *rand.Rand
	now  func() time.Time
	loop *fx.FrameLoop

	page    *page
	effects *effects
	width   int
	height  int
	level   perfLevel
	resize  debouncer
	fps     fpsMonitor
	lastFPS int

	scroll      *anim.SmoothScroll
	scrollState *anim.ScrollState
	reveal      *anim.Revealer
	metrics     *anim.Revealer
	counters    map[string]*anim.Counter
	bars        map[string]*anim.ProgressBar
	magnets     map[string]*anim.Magnetic
	typer       *anim.Typewriter
	glitch      *anim.Glitch
	time        float64

	focus   portfolio.Focus
	modal   portfolio.Modal
	form    *portfolio.ContactForm
	editing bool
	field   portfolio.Field
	notes   portfolio.Notifier
	live    portfolio.LiveRegion
	current string
	runes   []rune

	music   *music
	hidden  bool
	reduced bool
	lastErr error
}

func New(cfg config.Config) *Game {
	rng := rand.New(rand.NewSource(cfg.Seed))
	g := &Game{
		cfg:         cfg,
		rng:         rng,
		now:         time.Now,
		width:       cfg.Width,
		height:      cfg.Height,
		resize:      debouncer{delay: config.ResizeDebounce},
		fps:         fpsMonitor{window: config.FPSWindow},
		scroll:      anim.NewSmoothScroll(config.TPS),
		scrollState: anim.NewScrollState(cfg.Seed),
		reveal:      anim.NewRevealer(anim.SectionReveal),
		metrics:     anim.NewRevealer(anim.MetricReveal),
		counters:    map[string]*anim.Counter{},
		bars:        map[string]*anim.ProgressBar{},
		magnets:     map[string]*anim.Magnetic{},
		typer:       anim.NewTypewriter(heroTagline, 80*time.Millisecond, 2*time.Second, rng),
		glitch:      anim.NewGlitch(heroName, 0.5, 5*time.Second, 200*time.Millisecond, rng),
		form:        portfolio.NewContactForm(rand.New(rand.NewSource(rng.Int63()))),
		music:       newMusic(),
		reduced:     cfg.ReducedMotion,
	}
	if cfg.Animations {
		g.loop = fx.NewFrameLoop()
	} else {
		log.Print("game: frame loop disabled, background effects are static")
	}

	var scale float64
	g.level, scale = classify(g.width)
	g.page = newPage(float64(g.width), float64(g.height), scale)
	g.effects = newEffects(g.loop, rng, cfg, g.page)
	g.effects.setHeavyHidden(g.level == perfLow)

	for _, st := range portfolio.Stats() {
		g.counters["stat-"+st.Label] = anim.NewCounter(st.Value)
	}
	for _, sk := range portfolio.Skills() {
		g.bars["bar-"+sk.ID] = anim.NewProgressBar(float64(sk.Level))
	}
	g.observe()
	if g.reduced {
		g.applyReducedMotion()
	}
	g.focus = portfolio.Focus{N: len(g.page.elements)}
	g.current = sectionHome
	return g
}

// observe registers every revealable rect and magnetic button with the
// current layout.
func (g *Game) observe() {
	delay := map[string]time.Duration{}
	for _, b := range g.page.blocks {
		if b.metric {
			g.metrics.Observe(b.id, b.rect, 0)
			continue
		}
		g.reveal.Observe(b.id, b.rect, 0)
	}
	for _, e := range g.page.elements {
		if e.fixed {
			continue
		}
		if e.magnet && g.magnets[e.id] == nil {
			g.magnets[e.id] = anim.NewMagnetic(anim.DefaultMagnetStrength, config.TPS)
		}
		// cards in a section cascade in 100ms apart
		g.reveal.Observe(e.id, e.rect, delay[e.section])
		delay[e.section] += 100 * time.Millisecond
	}
}

func (g *Game) Update() error {
	now := g.now()

	g.setHidden(!ebiten.IsFocused())
	if g.resize.Fire(now) {
		g.applyResize()
	}
	if err := g.handleInput(now); err != nil {
		return err
	}
	g.advance(frameStep, now)
	if g.loop != nil {
		g.loop.Frame()
	}
	if fps, ok := g.fps.Sample(now); ok {
		g.adjustPerformance(fps)
	}
	return nil
}

func (g *Game) setHidden(hidden bool) {
	if hidden == g.hidden {
		return
	}
	g.hidden = hidden
	if g.loop != nil {
		g.loop.SetPaused(hidden)
	}
	if hidden {
		log.Print("game: window hidden, effects paused")
	}
}

// advance steps everything that is not a pool: scroll, reveals, text
// effects, springs, the contact form and notifications.
func (g *Game) advance(dt time.Duration, now time.Time) {
	y := g.page.clampScroll(g.scroll.Step())
	g.scroll.Pos = y
	g.scrollState.Frame(y, dt.Seconds())
	g.time += dt.Seconds()

	for _, id := range g.metrics.Update(y, g.page.h) {
		if c, ok := g.counters[id]; ok {
			c.Start()
		}
		if b, ok := g.bars[id]; ok {
			b.Start()
		}
	}
	g.reveal.Update(y, g.page.h)
	g.reveal.Advance(dt)
	for _, c := range g.counters {
		c.Advance(dt)
	}
	for _, b := range g.bars {
		b.Advance(dt)
	}
	for _, m := range g.magnets {
		m.Step()
	}
	if !g.reduced {
		g.typer.Advance(dt)
		g.glitch.Advance(dt)
	}

	if done, err := g.form.Poll(now); done {
		if err != nil {
			g.notes.Push("Failed to send message. Please try again.", portfolio.Error)
		} else {
			g.notes.Push("Message sent successfully! I'll get back to you soon.", portfolio.Success)
		}
	}
	g.notes.Advance(dt)
	g.music.update()

	if s := g.page.current(y); s.ID != g.current {
		g.current = s.ID
		g.live.Announce("Entered " + s.Title + " section")
	}
}

func (g *Game) applyResize() {
	level, scale := classify(g.width)
	log.Printf("game: resized to %dx%d (%s)", g.width, g.height, level)
	g.level = level
	g.page.layout(float64(g.width), float64(g.height), scale)
	g.effects.relayout()
	g.effects.setHeavyHidden(level == perfLow)
	g.observe()
	g.focus.N = len(g.page.elements)
	g.focus.Step(0)
	g.scroll.Jump(g.page.clampScroll(g.scroll.Pos))
}

func (g *Game) adjustPerformance(fps int) {
	g.lastFPS = fps
	switch {
	case fps < config.LowFPS:
		g.effects.reduce()
	case fps > config.HighFPS:
		g.effects.restore()
	}
}

func (g *Game) applyReducedMotion() {
	g.effects.setReducedMotion(g.reduced)
	if g.reduced {
		g.reveal.RevealAll()
		g.metrics.RevealAll()
		for _, c := range g.counters {
			c.Start()
			c.Advance(anim.CounterDuration)
		}
		for _, b := range g.bars {
			b.Start()
			b.Advance(anim.ProgressDelay + anim.ProgressFillDuration)
		}
		g.glitch.Stop()
		g.typer.Advance(time.Duration(len(heroTagline)+1) * time.Minute)
	}
}

func (g *Game) toggleReducedMotion() {
	g.reduced = !g.reduced
	g.applyReducedMotion()
	if g.reduced {
		g.notes.Push("Reduced motion on", portfolio.Info)
	} else {
		g.notes.Push("Reduced motion off", portfolio.Info)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.resize.Trigger(g.now())
	}
	return outsideWidth, outsideHeight
}

// Close disposes every effect and stops the music.
func (g *Game) Close() {
	g.effects.dispose()
	g.music.close()
}
