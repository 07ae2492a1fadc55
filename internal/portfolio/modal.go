package portfolio

import (
	"fmt"
	"strings"
)

const modalWrap = 72

type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalProject
	ModalSkill
	ModalCertification
)

// Focus is a keyboard focus position over N items.
type Focus struct {
	Index int
	N     int
}

// Step moves by delta and stops at the ends, like arrow keys.
func (f *Focus) Step(delta int) {
	if f.N <= 0 {
		f.Index = 0
		return
	}
	f.Index += delta
	if f.Index < 0 {
		f.Index = 0
	}
	if f.Index > f.N-1 {
		f.Index = f.N - 1
	}
}

// Cycle moves by delta and wraps, like Tab inside a focus trap.
func (f *Focus) Cycle(delta int) {
	if f.N <= 0 {
		f.Index = 0
		return
	}
	f.Index = ((f.Index+delta)%f.N + f.N) % f.N
}

// Modal is the single dialog of the page. Opening it remembers where focus
// was so Close can hand it back.
type Modal struct {
	kind  ModalKind
	id    string
	title string
	lines []string
	items []string // focusable: links then "Close"

	focus   Focus
	restore int
}

func (m *Modal) IsOpen() bool    { return m.kind != ModalNone }
func (m *Modal) Kind() ModalKind { return m.kind }
func (m *Modal) ID() string      { return m.id }
func (m *Modal) Title() string   { return m.title }
func (m *Modal) Lines() []string { return m.lines }
func (m *Modal) Items() []string { return m.items }
func (m *Modal) FocusIndex() int { return m.focus.Index }

// Focused is the focusable item the trap is on.
func (m *Modal) Focused() string {
	if !m.IsOpen() || len(m.items) == 0 {
		return ""
	}
	return m.items[m.focus.Index]
}

// Tab moves focus inside the modal; it never leaves it.
func (m *Modal) Tab(backward bool) {
	if backward {
		m.focus.Cycle(-1)
	} else {
		m.focus.Cycle(1)
	}
}

// Close hides the modal and returns the focus index saved when it opened.
// ok is false if nothing was open.
func (m *Modal) Close() (restore int, ok bool) {
	if !m.IsOpen() {
		return 0, false
	}
	restore = m.restore
	*m = Modal{}
	return restore, true
}

func (m *Modal) open(kind ModalKind, id, title string, lines, links []string, returnFocus int) {
	items := append(links, "Close")
	*m = Modal{
		kind:    kind,
		id:      id,
		title:   title,
		lines:   lines,
		items:   items,
		focus:   Focus{N: len(items)},
		restore: returnFocus,
	}
}

// OpenProject shows a project. Unknown ids leave the modal as it was.
func (m *Modal) OpenProject(id string, returnFocus int) bool {
	p, ok := ProjectByID(id)
	if !ok {
		return false
	}
	var lines []string
	lines = append(lines, wrap(p.Description, modalWrap)...)
	lines = append(lines, "", "Project Metrics")
	for _, mt := range p.Metrics {
		lines = append(lines, fmt.Sprintf("  %-10s %s", mt.Value, mt.Label))
	}
	lines = append(lines, "", "Technologies")
	lines = append(lines, wrap("  "+strings.Join(p.Technologies, ", "), modalWrap)...)
	lines = append(lines, "", "Key Features")
	for _, f := range p.Features {
		lines = append(lines, "  - "+f)
	}
	var links []string
	if p.GitHubURL != "" {
		links = append(links, p.GitHubURL)
	}
	if p.DemoURL != "" {
		links = append(links, p.DemoURL)
	}
	m.open(ModalProject, p.ID, p.Icon+" "+p.Title, lines, links, returnFocus)
	return true
}

func (m *Modal) OpenSkill(id string, returnFocus int) bool {
	s, ok := SkillByID(id)
	if !ok {
		return false
	}
	lines := []string{fmt.Sprintf("Proficiency: %d%%", s.Level), ""}
	lines = append(lines, wrap(s.Description, modalWrap)...)
	lines = append(lines, "", "Used in")
	for _, p := range s.Projects {
		lines = append(lines, "  - "+p)
	}
	var links []string
	if s.Certification != nil {
		lines = append(lines, "", "Certification: "+s.Certification.Name)
		if s.Certification.URL != "" {
			links = append(links, s.Certification.URL)
		}
	}
	m.open(ModalSkill, s.ID, s.Icon+" "+s.Name, lines, links, returnFocus)
	return true
}

func (m *Modal) OpenCertification(id string, returnFocus int) bool {
	c, ok := CertificationByID(id)
	if !ok {
		return false
	}
	lines := []string{
		"Issued by " + c.Issuer,
		"Completed: " + c.Date,
		"",
	}
	lines = append(lines, wrap(c.Description, modalWrap)...)
	lines = append(lines, "", "Skills Gained")
	lines = append(lines, wrap("  "+strings.Join(c.Skills, ", "), modalWrap)...)
	var links []string
	if c.URL != "" {
		links = append(links, c.URL)
	}
	m.open(ModalCertification, c.ID, c.Logo+" "+c.Name, lines, links, returnFocus)
	return true
}

// wrap breaks s on spaces so no line exceeds width runes unless a single
// word does.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	indent := s[:len(s)-len(strings.TrimLeft(s, " "))]
	var out []string
	line := indent + words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			out = append(out, line)
			line = indent + w
			continue
		}
		line += " " + w
	}
	return append(out, line)
}
