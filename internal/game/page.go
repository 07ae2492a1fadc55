package game

import (
	"math"

	"github.com/iburimskiy/portfolio-backdrop/internal/anim"
	"github.com/iburimskiy/portfolio-backdrop/internal/config"
	"github.com/iburimskiy/portfolio-backdrop/internal/fx"
	"github.com/iburimskiy/portfolio-backdrop/internal/portfolio"
)

const (
	sectionHome           = "home"
	sectionJourney        = "journey"
	sectionProjects       = "projects"
	sectionSkills         = "skills"
	sectionCertifications = "certifications"
	sectionContact        = "contact"

	minSectionHeight = 560
	headingOffset    = 40
	contentOffset    = 110
	gap              = 24
)

var sectionTitles = []struct{ id, title string }{
	{sectionHome, "Home"},
	{sectionJourney, "Journey"},
	{sectionProjects, "Projects"},
	{sectionSkills, "Skills"},
	{sectionCertifications, "Certifications"},
	{sectionContact, "Contact"},
}

type section struct {
	ID    string
	Title string
	Top   float64
	H     float64
	// vp is the container handed to the section's background effects. It
	// keeps its identity across relayouts.
	vp *fx.Viewport
}

func (s *section) rect(w float64) anim.Rect { return anim.Rect{X: 0, Y: s.Top, W: w, H: s.H} }

type elementKind int

const (
	elNav elementKind = iota
	elButton
	elScrollHint
	elProject
	elSkill
	elCert
	elField
	elSubmit
	elMusic
)

// element is anything the user can focus or click. Fixed elements (nav,
// music toggle) are in screen coordinates, the rest in page coordinates.
type element struct {
	kind    elementKind
	id      string
	ref     string
	label   string
	section string
	field   portfolio.Field
	rect    anim.Rect
	fixed   bool
	magnet  bool
}

// block is a non-interactive piece of content that reveals on scroll.
type block struct {
	id      string
	section string
	rect    anim.Rect
	metric  bool
	ref     string
}

type page struct {
	w, h     float64
	scale    float64
	height   float64
	sections []*section
	elements []element
	blocks   []block
}

func newPage(w, h, scale float64) *page {
	p := &page{}
	for _, st := range sectionTitles {
		p.sections = append(p.sections, &section{ID: st.id, Title: st.title, vp: fx.NewViewport(w, h)})
	}
	p.layout(w, h, scale)
	return p
}

// layout recomputes every rect for a w x h window. Section viewports are
// resized in place so pools holding them see the new bounds.
func (p *page) layout(w, h, scale float64) {
	p.w, p.h, p.scale = w, h, scale
	p.elements = p.elements[:0]
	p.blocks = p.blocks[:0]

	secH := math.Max(h, minSectionHeight)
	top := 0.0
	for _, s := range p.sections {
		s.Top = top
		s.H = secH
		switch s.ID {
		case sectionProjects:
			s.H = math.Max(secH, contentOffset+2*(cardHeight(scale)+gap)+gap)
		case sectionSkills:
			s.H = math.Max(secH, contentOffset+float64(len(portfolio.Skills()))*(skillRowHeight+gap)+gap)
		}
		s.vp.Resize(w, s.H)
		top += s.H
	}
	p.height = top

	p.layoutNav()
	p.layoutHome()
	p.layoutJourney()
	p.layoutProjects()
	p.layoutSkills()
	p.layoutCertifications()
	p.layoutContact()
	p.elements = append(p.elements, element{
		kind: elMusic, id: "music", label: "Music", fixed: true,
		rect: anim.Rect{X: p.w - 64, Y: p.h - 64, W: 44, H: 44},
	})
}

func (p *page) layoutNav() {
	x := p.w - 16
	for i := len(p.sections) - 1; i >= 0; i-- {
		s := p.sections[i]
		bw := float64(len(s.Title)*7 + 24)
		x -= bw
		p.elements = append(p.elements, element{
			kind: elNav, id: "nav-" + s.ID, ref: s.ID, label: s.Title, fixed: true,
			rect: anim.Rect{X: x, Y: 12, W: bw, H: config.NavHeight - 24},
		})
	}
	// links were appended right to left
	nav := p.elements
	for i, j := 0, len(nav)-1; i < j; i, j = i+1, j-1 {
		nav[i], nav[j] = nav[j], nav[i]
	}
}

func (p *page) layoutHome() {
	s := p.section(sectionHome)
	cx := p.w / 2
	y := s.Top + s.H*0.6
	p.blocks = append(p.blocks, block{id: "home-title", section: s.ID, rect: anim.Rect{X: 0, Y: s.Top + s.H*0.3, W: p.w, H: 80}})
	p.elements = append(p.elements,
		element{kind: elButton, id: "cta-projects", ref: sectionProjects, label: "View Projects", section: s.ID, magnet: true,
			rect: anim.Rect{X: cx - 170, Y: y, W: 160, H: 44}},
		element{kind: elButton, id: "cta-contact", ref: sectionContact, label: "Contact Me", section: s.ID, magnet: true,
			rect: anim.Rect{X: cx + 10, Y: y, W: 160, H: 44}},
		element{kind: elScrollHint, id: "scroll-hint", ref: sectionJourney, label: "Scroll", section: s.ID,
			rect: anim.Rect{X: cx - 30, Y: s.Top + s.H - 70, W: 60, H: 40}},
	)
}

func (p *page) layoutJourney() {
	s := p.section(sectionJourney)
	p.heading(s)
	stats := portfolio.Stats()
	bw := math.Min(220, (p.w-float64(len(stats)+1)*gap)/float64(len(stats)))
	total := float64(len(stats))*bw + float64(len(stats)-1)*gap
	x := (p.w - total) / 2
	for _, st := range stats {
		p.blocks = append(p.blocks, block{
			id: "stat-" + st.Label, section: s.ID, metric: true, ref: st.Label,
			rect: anim.Rect{X: x, Y: s.Top + s.H*0.45, W: bw, H: 100},
		})
		x += bw + gap
	}
}

func cardHeight(scale float64) float64 { return 150 * scale }

const skillRowHeight = 40

func (p *page) layoutProjects() {
	s := p.section(sectionProjects)
	p.heading(s)
	cols := 2
	if p.w < config.MobileBreakpoint {
		cols = 1
	}
	cw := math.Min(420, (p.w-float64(cols+1)*gap)/float64(cols))
	ch := cardHeight(p.scale)
	left := (p.w - (float64(cols)*cw + float64(cols-1)*gap)) / 2
	for i, pr := range portfolio.Projects() {
		col, row := i%cols, i/cols
		p.elements = append(p.elements, element{
			kind: elProject, id: "project-" + pr.ID, ref: pr.ID, label: pr.Title, section: s.ID,
			rect: anim.Rect{
				X: left + float64(col)*(cw+gap),
				Y: s.Top + contentOffset + float64(row)*(ch+gap),
				W: cw, H: ch,
			},
		})
	}
	if cols == 1 {
		// one column needs more room than the section was given
		last := p.elements[len(p.elements)-1].rect
		p.grow(s, last.Y+last.H+gap-s.Top)
	}
}

func (p *page) layoutSkills() {
	s := p.section(sectionSkills)
	p.heading(s)
	rw := math.Min(640, p.w-2*gap)
	x := (p.w - rw) / 2
	for i, sk := range portfolio.Skills() {
		r := anim.Rect{X: x, Y: s.Top + contentOffset + float64(i)*(skillRowHeight+gap), W: rw, H: skillRowHeight}
		p.elements = append(p.elements, element{kind: elSkill, id: "skill-" + sk.ID, ref: sk.ID, label: sk.Name, section: s.ID, rect: r})
		p.blocks = append(p.blocks, block{id: "bar-" + sk.ID, section: s.ID, metric: true, ref: sk.ID, rect: r})
	}
}

func (p *page) layoutCertifications() {
	s := p.section(sectionCertifications)
	p.heading(s)
	const bw, bh = 180.0, 70.0
	perRow := int(math.Max(1, math.Floor((p.w-gap)/(bw+gap))))
	certs := portfolio.Certifications()
	for i, c := range certs {
		col, row := i%perRow, i/perRow
		inRow := perRow
		if rest := len(certs) - row*perRow; rest < perRow {
			inRow = rest
		}
		left := (p.w - (float64(inRow)*bw + float64(inRow-1)*gap)) / 2
		p.elements = append(p.elements, element{
			kind: elCert, id: "cert-" + c.ID, ref: c.ID, label: c.Name, section: s.ID,
			rect: anim.Rect{X: left + float64(col)*(bw+gap), Y: s.Top + contentOffset + float64(row)*(bh+gap), W: bw, H: bh},
		})
	}
}

func (p *page) layoutContact() {
	s := p.section(sectionContact)
	p.heading(s)
	fw := math.Min(520, p.w-2*gap)
	x := (p.w - fw) / 2
	y := s.Top + contentOffset
	for _, f := range []portfolio.Field{portfolio.FieldName, portfolio.FieldEmail, portfolio.FieldMessage} {
		h := 36.0
		if f == portfolio.FieldMessage {
			h = 110
		}
		p.elements = append(p.elements, element{
			kind: elField, id: "field-" + f.String(), field: f, label: f.String(), section: s.ID,
			rect: anim.Rect{X: x, Y: y + 18, W: fw, H: h},
		})
		y += h + 18 + gap
	}
	p.elements = append(p.elements, element{
		kind: elSubmit, id: "submit", label: "Send Message", section: s.ID, magnet: true,
		rect: anim.Rect{X: x, Y: y, W: 180, H: 44},
	})
}

func (p *page) heading(s *section) {
	p.blocks = append(p.blocks, block{id: "heading-" + s.ID, section: s.ID, rect: anim.Rect{X: 0, Y: s.Top + headingOffset, W: p.w, H: 40}})
}

// grow extends s to at least h and shifts every later section down.
func (p *page) grow(s *section, h float64) {
	if h <= s.H {
		return
	}
	d := h - s.H
	s.H = h
	s.vp.Resize(p.w, s.H)
	after := false
	for _, o := range p.sections {
		if after {
			o.Top += d
		}
		if o == s {
			after = true
		}
	}
	p.height += d
}

func (p *page) section(id string) *section {
	for _, s := range p.sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (p *page) maxScroll() float64 { return math.Max(0, p.height-p.h) }

func (p *page) clampScroll(y float64) float64 { return math.Max(0, math.Min(y, p.maxScroll())) }

// scrollTarget is where a jump to section id lands: its top, less the fixed
// nav and a small margin.
func (p *page) scrollTarget(id string) (float64, bool) {
	s := p.section(id)
	if s == nil {
		return 0, false
	}
	return p.clampScroll(s.Top - config.NavHeight - config.ScrollMargin), true
}

// screenRect is where e is drawn for the given scroll offset.
func (p *page) screenRect(e element, scrollY float64) anim.Rect {
	if e.fixed {
		return e.rect
	}
	r := e.rect
	r.Y -= scrollY
	return r
}

// hit returns the index of the element under the screen point, fixed
// elements first, or -1.
func (p *page) hit(x, y, scrollY float64) int {
	for i, e := range p.elements {
		if e.fixed && e.rect.Contains(x, y) {
			return i
		}
	}
	if y < config.NavHeight {
		return -1
	}
	for i, e := range p.elements {
		if !e.fixed && p.screenRect(e, scrollY).Contains(x, y) {
			return i
		}
	}
	return -1
}

// current is the first section at least half visible, else the one whose
// band holds the middle of the viewport.
func (p *page) current(scrollY float64) *section {
	for _, s := range p.sections {
		if anim.VisibleFraction(s.rect(p.w), scrollY, scrollY+p.h) >= 0.5 {
			return s
		}
	}
	mid := scrollY + p.h/2
	for _, s := range p.sections {
		if mid >= s.Top && mid < s.Top+s.H {
			return s
		}
	}
	return p.sections[len(p.sections)-1]
}

func (p *page) block(id string) (block, bool) {
	for _, b := range p.blocks {
		if b.id == id {
			return b, true
		}
	}
	return block{}, false
}

func (p *page) index(id string) int {
	for i, e := range p.elements {
		if e.id == id {
			return i
		}
	}
	return -1
}
