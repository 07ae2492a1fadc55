package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/portfolio-backdrop/internal/anim"
	"github.com/iburimskiy/portfolio-backdrop/internal/config"
	"github.com/iburimskiy/portfolio-backdrop/internal/portfolio"
)

const (
	glyphW      = 7
	glyphAscent = 11
	lineH       = 16
)

var (
	background = color.NRGBA{R: 10, G: 14, B: 26, A: 255}
	panelFill  = color.NRGBA{R: 22, G: 30, B: 48, A: 220}
	panelLine  = color.NRGBA{R: 70, G: 80, B: 100, A: 255}
	accent     = color.NRGBA{R: 100, G: 255, B: 218, A: 255}
	textMain   = color.NRGBA{R: 230, G: 236, B: 245, A: 255}
	textDim    = color.NRGBA{R: 150, G: 160, B: 180, A: 255}
	levelColor = map[portfolio.Level]color.NRGBA{
		portfolio.Info:    {R: 59, G: 130, B: 246, A: 235},
		portfolio.Success: {R: 16, G: 185, B: 129, A: 235},
		portfolio.Error:   {R: 239, G: 68, B: 68, A: 235},
	}
)

func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, int(x), int(y)+glyphAscent, clr)
}

func drawCentered(dst *ebiten.Image, s string, cx, y float64, clr color.Color) {
	drawText(dst, s, cx-textWidth(s)/2, y, clr)
}

func textWidth(s string) float64 { return float64(len([]rune(s)) * glyphW) }

// truncate shortens s to fit width pixels of the HUD font.
func truncate(s string, width float64) string {
	n := int(width / glyphW)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:max(n, 0)])
	}
	return string(r[:n-3]) + "..."
}

func fillRect(dst *ebiten.Image, r anim.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(dst *ebiten.Image, r anim.Rect, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, clr, false)
}

func panel(dst *ebiten.Image, r anim.Rect, alpha float64) {
	fillRect(dst, r, fade(panelFill, alpha))
	strokeRect(dst, r, 1, fade(panelLine, alpha))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.fps.Frame()
	screen.Fill(background)

	y := g.scroll.Pos
	g.effects.draw(screen, y)
	for _, s := range g.page.sections {
		if !onScreen(s, y, g.page.h) {
			continue
		}
		g.drawHeading(screen, s, y)
		switch s.ID {
		case sectionHome:
			g.drawHero(screen, s, y)
		case sectionJourney:
			g.drawStats(screen, y)
		}
	}
	for i, e := range g.page.elements {
		if e.fixed || (!g.reveal.Revealed(e.id) && i != g.focus.Index) {
			continue
		}
		r := g.page.screenRect(e, y)
		if r.Y+r.H < 0 || r.Y > g.page.h {
			continue
		}
		g.drawElement(screen, e, r)
	}
	g.drawNav(screen)
	g.drawMusic(screen)
	g.drawFocus(screen)
	if g.modal.IsOpen() {
		g.drawModal(screen)
	}
	g.drawNotifications(screen)
	g.drawStatus(screen)
}

func (g *Game) drawHeading(dst *ebiten.Image, s *section, scrollY float64) {
	id := "heading-" + s.ID
	b, ok := g.page.block(id)
	if !ok || !g.reveal.Revealed(id) {
		return
	}
	drawCentered(dst, strings.ToUpper(s.Title), g.page.w/2, b.rect.Y-scrollY+12, accent)
	vector.StrokeLine(dst, float32(g.page.w/2-40), float32(b.rect.Y-scrollY+32), float32(g.page.w/2+40), float32(b.rect.Y-scrollY+32), 2, accent, false)
}

func (g *Game) drawHero(dst *ebiten.Image, s *section, scrollY float64) {
	g.drawGlobe(dst, s, scrollY)
	b, ok := g.page.block("home-title")
	if !ok {
		return
	}
	top := b.rect.Y - scrollY - anim.Parallax(scrollY, anim.DefaultParallaxSpeed)*0.2
	drawCentered(dst, g.glitch.Text(), g.page.w/2, top, textMain)
	tag := g.typer.Text()
	if !g.typer.Done() && int(g.time*2)%2 == 0 {
		tag += "_"
	}
	drawCentered(dst, tag, g.page.w/2, top+28, textDim)
}

// drawGlobe draws the rotating wireframe sphere behind the hero.
func (g *Game) drawGlobe(dst *ebiten.Image, s *section, scrollY float64) {
	if g.level == perfLow {
		return
	}
	shift, rot := anim.Globe(scrollY)
	r := math.Min(g.page.w, g.page.h) * 0.16 * g.page.scale
	cx := g.page.w * 0.8
	cy := s.Top - scrollY + g.page.h*0.45 + (shift+50)/100*2*r
	for k := 0; k < 6; k++ {
		a := (rot + float64(k)*30) * math.Pi / 180
		rx := r * math.Abs(math.Cos(a))
		clr := hsva(g.time*20+float64(k)*30, 0.6, 0.9, 0.45)
		ellipse(dst, cx, cy, rx, r, clr)
	}
	for lat := -2; lat <= 2; lat++ {
		yy := float64(lat) / 3 * r
		rx := math.Sqrt(r*r - yy*yy)
		ellipse(dst, cx, cy+yy, rx, rx*0.15, hsva(g.time*20+180, 0.5, 0.8, 0.3))
	}
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), 1.5, fade(accent, 0.6), true)
}

func ellipse(dst *ebiten.Image, cx, cy, rx, ry float64, clr color.Color) {
	const segs = 32
	px, py := cx+rx, cy
	for i := 1; i <= segs; i++ {
		t := float64(i) / segs * 2 * math.Pi
		x, y := cx+rx*math.Cos(t), cy+ry*math.Sin(t)
		vector.StrokeLine(dst, float32(px), float32(py), float32(x), float32(y), 1, clr, true)
		px, py = x, y
	}
}

func (g *Game) drawStats(dst *ebiten.Image, scrollY float64) {
	i := 0
	for _, b := range g.page.blocks {
		if !b.metric || b.section != sectionJourney {
			continue
		}
		c := g.counters[b.id]
		r := b.rect
		r.Y -= scrollY
		if !g.reduced {
			r.Y += g.scrollState.Floating(i)
		}
		i++
		panel(dst, r, 1)
		cx := r.X + r.W/2
		drawCentered(dst, fmt.Sprintf("%d+", c.Value()), cx, r.Y+30, accent)
		drawCentered(dst, b.ref, cx, r.Y+60, textDim)
	}
}

func (g *Game) drawElement(dst *ebiten.Image, e element, r anim.Rect) {
	if m := g.magnets[e.id]; m != nil {
		ox, oy := m.Offset()
		r.X += ox
		r.Y += oy
	}
	switch e.kind {
	case elButton, elSubmit:
		fillRect(dst, r, fade(accent, 0.15))
		strokeRect(dst, r, 2, accent)
		label := e.label
		if e.kind == elSubmit && g.form.Pending() {
			label = "Sending..."
		}
		drawCentered(dst, label, r.X+r.W/2, r.Y+r.H/2-7, accent)
	case elScrollHint:
		bob := 0.0
		if !g.reduced {
			bob = math.Sin(g.time*3) * 5
		}
		drawCentered(dst, "Scroll", r.X+r.W/2, r.Y+bob, textDim)
		drawCentered(dst, "v", r.X+r.W/2, r.Y+bob+16, accent)
	case elProject:
		p, _ := portfolio.ProjectByID(e.ref)
		panel(dst, r, 1)
		drawText(dst, p.Icon+" "+truncate(p.Title, r.W-50), r.X+14, r.Y+14, textMain)
		for i, l := range wrapWidth(p.Description, r.W-28) {
			if i == 3 {
				break
			}
			drawText(dst, l, r.X+14, r.Y+42+float64(i)*lineH, textDim)
		}
		drawText(dst, truncate(strings.Join(p.Technologies, " / "), r.W-28), r.X+14, r.Y+r.H-26, accent)
	case elSkill:
		sk, _ := portfolio.SkillByID(e.ref)
		bar := g.bars["bar-"+sk.ID]
		drawText(dst, sk.Icon+" "+sk.Name, r.X, r.Y, textMain)
		drawText(dst, fmt.Sprintf("%d%%", sk.Level), r.X+r.W-35, r.Y, textDim)
		track := anim.Rect{X: r.X, Y: r.Y + 22, W: r.W, H: 8}
		fillRect(dst, track, panelFill)
		track.W = r.W * bar.Fill() / 100
		fillRect(dst, track, accent)
	case elCert:
		c, _ := portfolio.CertificationByID(e.ref)
		panel(dst, r, 1)
		drawText(dst, truncate(c.Name, r.W-20), r.X+10, r.Y+12, textMain)
		drawText(dst, truncate(c.Issuer+" "+c.Date, r.W-20), r.X+10, r.Y+36, textDim)
	case elField:
		drawText(dst, e.label, r.X, r.Y-18, textDim)
		fillRect(dst, r, panelFill)
		line := panelLine
		if g.editing && g.field == e.field {
			line = accent
		}
		strokeRect(dst, r, 1, line)
		v := g.form.Value(e.field)
		if g.editing && g.field == e.field && int(g.time*2)%2 == 0 {
			v += "_"
		}
		for i, l := range strings.Split(v, "\n") {
			ly := r.Y + 10 + float64(i)*lineH
			if ly+lineH > r.Y+r.H {
				break
			}
			drawText(dst, truncate(l, r.W-20), r.X+10, ly, textMain)
		}
	}
}

// wrapWidth breaks s into lines no wider than width pixels.
func wrapWidth(s string, width float64) []string {
	n := int(width / glyphW)
	var lines []string
	var cur string
	for _, w := range strings.Fields(s) {
		switch {
		case cur == "":
			cur = w
		case len(cur)+1+len(w) <= n:
			cur += " " + w
		default:
			lines = append(lines, cur)
			cur = w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func (g *Game) drawNav(dst *ebiten.Image) {
	bar := anim.Rect{W: g.page.w, H: config.NavHeight}
	a := 0.3
	if g.scrollState.NavScrolled() {
		a = 0.95
	}
	fillRect(dst, bar, fade(panelFill, a))
	drawText(dst, "< Portfolio />", 16, config.NavHeight/2-7, accent)
	for _, e := range g.page.elements {
		if e.kind != elNav {
			continue
		}
		clr := textDim
		if e.ref == g.current {
			clr = accent
		}
		drawCentered(dst, e.label, e.rect.X+e.rect.W/2, e.rect.Y+e.rect.H/2-7, clr)
	}
}

// drawMusic draws the floating music toggle. While playing it pulses with
// the track level.
func (g *Game) drawMusic(dst *ebiten.Image) {
	i := g.page.index("music")
	if i < 0 {
		return
	}
	r := g.page.elements[i].rect
	cx, cy := r.Center()
	rad := r.W / 2
	clr := fade(accent, 0.5)
	if g.music.playing() {
		rad += g.music.level * 8
		clr = hsva(g.time*60, 0.7, 1, 0.8)
	}
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(rad), fade(clr, 0.3), true)
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(rad), 2, clr, true)
	label := "||"
	if !g.music.playing() {
		label = ">"
	}
	drawCentered(dst, label, cx, cy-7, textMain)
}

func (g *Game) drawFocus(dst *ebiten.Image) {
	if g.modal.IsOpen() || g.focus.Index >= len(g.page.elements) {
		return
	}
	e := g.page.elements[g.focus.Index]
	r := g.page.screenRect(e, g.scroll.Pos)
	r.X -= 3
	r.Y -= 3
	r.W += 6
	r.H += 6
	strokeRect(dst, r, 2, color.NRGBA{R: 255, G: 200, B: 80, A: 255})
}

func (g *Game) modalRect() anim.Rect {
	w := math.Min(640, g.page.w-40)
	h := math.Min(g.page.h-80, float64(len(g.modal.Lines())+2)*lineH+110)
	return anim.Rect{X: (g.page.w - w) / 2, Y: (g.page.h - h) / 2, W: w, H: h}
}

func (g *Game) drawModal(dst *ebiten.Image) {
	fillRect(dst, anim.Rect{W: g.page.w, H: g.page.h}, color.NRGBA{A: 170})
	r := g.modalRect()
	fillRect(dst, r, color.NRGBA{R: 16, G: 22, B: 38, A: 250})
	strokeRect(dst, r, 2, accent)
	drawText(dst, truncate(g.modal.Title(), r.W-40), r.X+20, r.Y+18, accent)

	y := r.Y + 50
	bottom := r.Y + r.H - 60
	for _, l := range g.modal.Lines() {
		if y+lineH > bottom {
			drawText(dst, "...", r.X+20, y, textDim)
			break
		}
		drawText(dst, truncate(l, r.W-40), r.X+20, y, textMain)
		y += lineH
	}

	x := r.X + 20
	for i, it := range g.modal.Items() {
		label := it
		if it != "Close" {
			label = "Open link"
		}
		btn := anim.Rect{X: x, Y: r.Y + r.H - 48, W: textWidth(label) + 24, H: 32}
		clr := panelLine
		if i == g.modal.FocusIndex() {
			clr = accent
		}
		strokeRect(dst, btn, 2, clr)
		drawText(dst, label, btn.X+12, btn.Y+9, textMain)
		x += btn.W + 12
	}
}

func (g *Game) drawNotifications(dst *ebiten.Image) {
	const w, h = 320.0, 48.0
	for i, n := range g.notes.Active() {
		r := anim.Rect{X: g.page.w - 20 - w + n.Offset()*(w+20), Y: config.NavHeight + 14 + float64(i)*(h+10), W: w, H: h}
		fillRect(dst, r, levelColor[n.Level])
		for j, l := range strings.SplitN(n.Message, "\n", 2) {
			drawText(dst, truncate(l, w-24), r.X+12, r.Y+8+float64(j)*lineH, textMain)
		}
	}
}

func (g *Game) drawStatus(dst *ebiten.Image) {
	status := fmt.Sprintf("FPS %d | %s | entities %d", g.lastFPS, g.level, g.effects.entityCount())
	switch {
	case !g.music.loaded():
		status += " | Space: music"
	case g.music.paused:
		status += " | music paused " + formatDuration(g.music.position)
	default:
		status += " | music " + formatDuration(g.music.position) + "/" + formatDuration(g.music.duration)
	}
	if g.reduced {
		status += " | reduced motion"
	}
	if g.hidden {
		status += " | paused"
	}
	if t := g.live.Text(); t != "" {
		status += " | " + t
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(dst, status, 12, int(g.page.h)-20)
}
