package game

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/iburimskiy/portfolio-backdrop/internal/anim"
	"github.com/iburimskiy/portfolio-backdrop/internal/config"
	"github.com/iburimskiy/portfolio-backdrop/internal/portfolio"
)

func newTestGame(t *testing.T, cfg config.Config) (*Game, time.Time) {
	t.Helper()
	g := New(cfg)
	now := time.Unix(1000, 0)
	g.now = func() time.Time { return now }
	t.Cleanup(g.Close)
	return g, now
}

func TestGameResizeIsDebounced(t *testing.T) {
	g, now := newTestGame(t, testConfig())
	if g.level != perfHigh || g.effects.network == nil {
		t.Fatalf("desktop start: level %s", g.level)
	}

	if w, h := g.Layout(600, 900); w != 600 || h != 900 {
		t.Fatalf("Layout = %d, %d", w, h)
	}
	if g.level != perfHigh {
		t.Fatal("resize applied before the debounce")
	}
	if g.resize.Fire(now.Add(100 * time.Millisecond)) {
		t.Fatal("debounce fired early")
	}
	if !g.resize.Fire(now.Add(config.ResizeDebounce)) {
		t.Fatal("debounce never fired")
	}
	g.applyResize()

	if g.level != perfLow || g.effects.network != nil || len(g.effects.fields) != 0 {
		t.Fatalf("mobile: level %s, network %v, fields %d", g.level, g.effects.network != nil, len(g.effects.fields))
	}
	if w, _ := g.effects.stars.Viewport().Size(); w != 600 {
		t.Fatalf("starfield viewport width %v", w)
	}
	if g.focus.N != len(g.page.elements) {
		t.Fatal("focus count not updated")
	}
}

func TestGameScrollToSection(t *testing.T) {
	g, now := newTestGame(t, testConfig())
	g.activate(g.page.index("nav-projects"), now)
	for i := 0; i < 10*config.TPS; i++ {
		g.advance(frameStep, now)
	}
	want, _ := g.page.scrollTarget(sectionProjects)
	if math.Abs(g.scroll.Pos-want) > 1 {
		t.Fatalf("scroll = %v, want %v", g.scroll.Pos, want)
	}
	if g.current != sectionProjects || g.live.Text() != "Entered Projects section" {
		t.Fatalf("current %s, live %q", g.current, g.live.Text())
	}
	if !g.reveal.Revealed("heading-projects") {
		t.Fatal("projects heading not revealed")
	}
	if !g.scrollState.NavScrolled() {
		t.Fatal("nav should be in its scrolled style")
	}
}

func TestGameCountersStartOnReveal(t *testing.T) {
	g, now := newTestGame(t, testConfig())
	c := g.counters["stat-"+portfolio.Stats()[0].Label]
	g.advance(frameStep, now)
	if c.Started() {
		t.Fatal("counter started off screen")
	}
	y, _ := g.page.scrollTarget(sectionJourney)
	g.scroll.Jump(y)
	for i := 0; i < 3*config.TPS; i++ {
		g.advance(frameStep, now)
	}
	if !c.Done() || c.Value() != portfolio.Stats()[0].Value {
		t.Fatalf("counter %d, done %v", c.Value(), c.Done())
	}
}

func TestGamePerformance(t *testing.T) {
	g, _ := newTestGame(t, testConfig())
	g.adjustPerformance(20)
	if g.effects.particles != 50 || g.lastFPS != 20 {
		t.Fatalf("particles %d after a slow second", g.effects.particles)
	}
	g.adjustPerformance(40)
	if g.effects.particles != 50 {
		t.Fatal("40 fps should leave counts alone")
	}
	g.adjustPerformance(60)
	if g.effects.particles != config.ParticleCount {
		t.Fatalf("particles %d after a fast second", g.effects.particles)
	}
}

func TestGameModalRestoresFocus(t *testing.T) {
	g, now := newTestGame(t, testConfig())
	i := g.page.index("project-skillforge-ai")
	g.focus.Index = i
	g.activate(i, now)
	if !g.modal.IsOpen() || g.modal.Kind() != portfolio.ModalProject {
		t.Fatal("project modal did not open")
	}
	if !strings.HasPrefix(g.live.Text(), "Opened ") {
		t.Fatalf("live %q", g.live.Text())
	}
	g.focus.Index = 0
	g.closeModal()
	if g.modal.IsOpen() || g.focus.Index != i {
		t.Fatalf("focus %d after close, want %d", g.focus.Index, i)
	}
}

func TestGameContactSubmit(t *testing.T) {
	g, now := newTestGame(t, testConfig())
	submit := g.page.index("submit")

	g.activate(submit, now)
	if n := g.notes.Active(); len(n) != 1 || n[0].Level != portfolio.Error {
		t.Fatalf("empty form notifications %+v", n)
	}

	g.activate(g.page.index("field-Name"), now)
	if !g.editing || g.field != portfolio.FieldName {
		t.Fatal("field not in edit mode")
	}
	g.form.Set(portfolio.FieldName, "Ann")
	g.form.Set(portfolio.FieldEmail, "ann@example.com")
	g.form.Set(portfolio.FieldMessage, "Hello")
	g.activate(submit, now)
	if !g.form.Pending() {
		t.Fatal("valid form not sent")
	}
	g.advance(frameStep, now.Add(time.Second))
	n := g.notes.Active()
	if len(n) != 3 || n[1].Message != "Sending..." {
		t.Fatalf("notifications %+v", n)
	}
	if last := n[2].Level; last != portfolio.Success && last != portfolio.Error {
		t.Fatalf("result level %v", last)
	}
}

func TestGameReducedMotion(t *testing.T) {
	cfg := testConfig()
	cfg.ReducedMotion = true
	g, _ := newTestGame(t, cfg)

	if g.effects.network != nil || len(g.effects.fields) != 0 || g.effects.rain != nil {
		t.Fatal("heavy effects running with reduced motion")
	}
	if !g.reveal.Revealed("heading-contact") {
		t.Fatal("content hidden with reduced motion")
	}
	for _, st := range portfolio.Stats() {
		if v := g.counters["stat-"+st.Label].Value(); v != st.Value {
			t.Errorf("counter %s = %d", st.Label, v)
		}
	}
	for _, sk := range portfolio.Skills() {
		if f := g.bars["bar-"+sk.ID].Fill(); f != float64(sk.Level) {
			t.Errorf("bar %s = %v", sk.ID, f)
		}
	}
	if g.typer.Text() != heroTagline || g.glitch.Text() != heroName {
		t.Fatalf("hero text %q / %q", g.typer.Text(), g.glitch.Text())
	}

	g.toggleReducedMotion()
	if g.effects.network == nil {
		t.Fatal("network not restored")
	}
}

func TestGameHiddenPausesLoop(t *testing.T) {
	g, _ := newTestGame(t, testConfig())
	g.setHidden(true)
	if !g.loop.Paused() || g.loop.Frame() {
		t.Fatal("hidden window still ticks")
	}
	g.setHidden(false)
	if !g.loop.Frame() || g.effects.stars.Ticks() != 1 {
		t.Fatal("visible window does not tick")
	}
}

func TestGameWithoutAnimations(t *testing.T) {
	cfg := testConfig()
	cfg.Animations = false
	g, _ := newTestGame(t, cfg)
	if g.loop != nil || g.effects.stars.Animated() {
		t.Fatal("effects animated without a frame loop")
	}
	if g.effects.stars.Len() != config.StarCount {
		t.Fatal("static starfield not populated")
	}
}

func TestGameMagneticButton(t *testing.T) {
	g, _ := newTestGame(t, testConfig())
	e := g.page.elements[g.page.index("cta-projects")]
	m := g.magnets[e.id]
	cx, cy := e.rect.Center()

	g.hover(cx+50, cy)
	if x, _ := m.Offset(); x != 50*anim.DefaultMagnetStrength/100 {
		t.Fatalf("hover offset %v", x)
	}
	g.hover(0, 0)
	for i := 0; i < 5*config.TPS; i++ {
		m.Step()
	}
	if x, y := m.Offset(); x != 0 || y != 0 {
		t.Fatalf("button did not spring back: %v, %v", x, y)
	}
}
