package game

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/portfolio-backdrop/internal/anim"
	"github.com/iburimskiy/portfolio-backdrop/internal/config"
	"github.com/iburimskiy/portfolio-backdrop/internal/portfolio"
)

const wheelStep = 60

var sectionKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// repeating is true on the first frame a key is down and then at a steady
// rate while it is held.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= 30 && d%3 == 0)
}

func (g *Game) handleInput(now time.Time) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		switch {
		case g.modal.IsOpen():
			g.closeModal()
			return nil
		case g.editing:
			g.editing = false
			return nil
		default:
			return ebiten.Termination
		}
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	if g.modal.IsOpen() {
		g.modalInput(x, y, clicked)
		return nil
	}

	if g.editing {
		g.editInput(now)
	} else {
		g.keyInput(now)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.scroll.Jump(g.page.clampScroll(g.scroll.Pos - wy*wheelStep))
	}

	g.hover(x, y)
	if clicked {
		if i := g.page.hit(x, y, g.scroll.Pos); i >= 0 {
			g.focus.Index = i
			g.activate(i, now)
		} else {
			g.editing = false
		}
	}
	return nil
}

func (g *Game) keyInput(now time.Time) {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if shift {
			g.moveFocus(-1, true)
		} else {
			g.moveFocus(1, true)
		}
	case repeating(ebiten.KeyArrowDown), repeating(ebiten.KeyArrowRight):
		g.moveFocus(1, false)
	case repeating(ebiten.KeyArrowUp), repeating(ebiten.KeyArrowLeft):
		g.moveFocus(-1, false)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.activate(g.focus.Index, now)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.toggleMusic()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.toggleReducedMotion()
	case repeating(ebiten.KeyPageDown):
		g.scroll.To(g.page.clampScroll(g.scroll.Target + g.page.h*0.8))
	case repeating(ebiten.KeyPageUp):
		g.scroll.To(g.page.clampScroll(g.scroll.Target - g.page.h*0.8))
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.scroll.To(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.scroll.To(g.page.maxScroll())
	}
	for i, k := range sectionKeys {
		if i < len(g.page.sections) && inpututil.IsKeyJustPressed(k) {
			g.scrollTo(g.page.sections[i].ID)
		}
	}
}

// editInput types into the active contact field. Tab leaves the field and
// moves on; Enter does the same except in the message box.
func (g *Game) editInput(now time.Time) {
	g.runes = ebiten.AppendInputChars(g.runes[:0])
	if len(g.runes) > 0 {
		g.form.Type(g.field, g.runes)
	}
	if repeating(ebiten.KeyBackspace) {
		g.form.Backspace(g.field)
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.editing = false
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.moveFocus(-1, true)
		} else {
			g.moveFocus(1, true)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if g.field == portfolio.FieldMessage {
			g.form.Type(g.field, []rune{'\n'})
			return
		}
		g.editing = false
		g.moveFocus(1, true)
		if e := g.page.elements[g.focus.Index]; e.kind == elField {
			g.activate(g.focus.Index, now)
		}
	}
}

func (g *Game) modalInput(x, y float64, clicked bool) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.modal.Tab(ebiten.IsKeyPressed(ebiten.KeyShift))
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.activateModalItem()
	}
	if clicked && !g.modalRect().Contains(x, y) {
		g.closeModal()
	}
}

func (g *Game) activateModalItem() {
	item := g.modal.Focused()
	if item == "Close" || item == "" {
		g.closeModal()
		return
	}
	log.Printf("game: link %s", item)
	g.notes.Push("Link: "+item, portfolio.Info)
}

func (g *Game) closeModal() {
	if restore, ok := g.modal.Close(); ok {
		g.focus.Index = restore
		g.focus.Step(0)
		g.live.Announce("Dialog closed")
	}
}

// moveFocus steps through focusable elements, wrapping for Tab and clamping
// for arrows, and scrolls the newly focused element into view.
func (g *Game) moveFocus(delta int, cycle bool) {
	if cycle {
		g.focus.Cycle(delta)
	} else {
		g.focus.Step(delta)
	}
	if g.focus.Index < len(g.page.elements) {
		g.ensureVisible(g.page.elements[g.focus.Index])
	}
}

func (g *Game) ensureVisible(e element) {
	if e.fixed {
		return
	}
	top := g.scroll.Target + config.NavHeight
	bottom := g.scroll.Target + g.page.h
	if e.rect.Y >= top && e.rect.Y+e.rect.H <= bottom {
		return
	}
	g.scroll.To(g.page.clampScroll(e.rect.Y - config.NavHeight - config.ScrollMargin))
}

func (g *Game) scrollTo(id string) {
	if y, ok := g.page.scrollTarget(id); ok {
		if g.reduced {
			g.scroll.Jump(y)
		} else {
			g.scroll.To(y)
		}
	}
}

func (g *Game) activate(i int, now time.Time) {
	if i < 0 || i >= len(g.page.elements) {
		return
	}
	e := g.page.elements[i]
	switch e.kind {
	case elNav, elButton, elScrollHint:
		g.scrollTo(e.ref)
	case elProject:
		g.openModal(g.modal.OpenProject(e.ref, i))
	case elSkill:
		g.openModal(g.modal.OpenSkill(e.ref, i))
	case elCert:
		g.openModal(g.modal.OpenCertification(e.ref, i))
	case elField:
		g.editing = true
		g.field = e.field
	case elSubmit:
		g.submit(now)
	case elMusic:
		g.toggleMusic()
	}
}

func (g *Game) openModal(ok bool) {
	if ok {
		g.live.Announce("Opened " + g.modal.Title())
	}
}

func (g *Game) submit(now time.Time) {
	err := g.form.Submit(now)
	switch {
	case err == nil:
		g.notes.Push("Sending...", portfolio.Info)
	case errors.Is(err, portfolio.ErrSubmitPending):
	default:
		g.notes.Push(err.Error(), portfolio.Error)
	}
}

func (g *Game) toggleMusic() {
	if err := g.music.toggle(g.cfg.MusicPath); err != nil {
		g.lastErr = err
		log.Printf("game: %v", err)
		g.notes.Push("Could not play music", portfolio.Error)
		return
	}
	g.lastErr = nil
}

// hover updates the magnetic buttons for the cursor position.
func (g *Game) hover(x, y float64) {
	for _, e := range g.page.elements {
		m := g.magnets[e.id]
		if m == nil {
			continue
		}
		r := g.page.screenRect(e, g.scroll.Pos)
		if !g.reduced && r.Contains(x, y) {
			cx, cy := r.Center()
			m.Hover(x, y, cx, cy)
		} else if m.Hovered() {
			m.Leave()
		}
	}
	if b, ok := g.page.block("home-title"); ok && !g.reduced && !g.glitch.Active() {
		r := b.rect
		r.Y -= g.scroll.Pos
		if r.Contains(x, y) {
			g.glitch = anim.NewGlitch(heroName, 0.5, time.Second, 200*time.Millisecond, g.rng)
		}
	}
}
