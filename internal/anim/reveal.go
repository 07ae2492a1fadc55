package anim

import "time"

// Rect is in page coordinates: Y grows down from the top of the page.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// VisibleFraction is how much of r's height falls inside the band
// [top, bottom). An empty rect is visible when its line is inside the band.
func VisibleFraction(r Rect, top, bottom float64) float64 {
	if r.H <= 0 {
		if r.Y >= top && r.Y < bottom {
			return 1
		}
		return 0
	}
	lo := r.Y
	if top > lo {
		lo = top
	}
	hi := r.Y + r.H
	if bottom < hi {
		hi = bottom
	}
	if hi <= lo {
		return 0
	}
	return (hi - lo) / r.H
}

// RevealOptions mirror an intersection observer: an element triggers once
// its visible fraction reaches Threshold inside the viewport shrunk by
// BottomMargin.
type RevealOptions struct {
	Threshold    float64
	BottomMargin float64
}

var (
	// SectionReveal is used for headings and cards.
	SectionReveal = RevealOptions{Threshold: 0.1, BottomMargin: 50}
	// MetricReveal is used for counters and progress bars.
	MetricReveal = RevealOptions{Threshold: 0.5}
)

type revealItem struct {
	rect      Rect
	delay     time.Duration
	triggered bool
	revealed  bool
}

// Revealer tracks elements that animate in the first time they scroll into
// view and never animate again.
type Revealer struct {
	opts  RevealOptions
	items map[string]*revealItem
	order []string
}

func NewRevealer(opts RevealOptions) *Revealer {
	return &Revealer{opts: opts, items: map[string]*revealItem{}}
}

// Observe adds or moves an element. Moving keeps its revealed state.
func (r *Revealer) Observe(id string, rect Rect, delay time.Duration) {
	if it, ok := r.items[id]; ok {
		it.rect = rect
		it.delay = delay
		return
	}
	r.items[id] = &revealItem{rect: rect, delay: delay}
	r.order = append(r.order, id)
}

// Update checks the viewport band [scrollY, scrollY+viewH) and returns the
// ids that triggered for the first time, in observation order.
func (r *Revealer) Update(scrollY, viewH float64) []string {
	var hit []string
	bottom := scrollY + viewH - r.opts.BottomMargin
	for _, id := range r.order {
		it := r.items[id]
		if it.triggered {
			continue
		}
		f := VisibleFraction(it.rect, scrollY, bottom)
		if f > 0 && f >= r.opts.Threshold {
			it.triggered = true
			if it.delay <= 0 {
				it.revealed = true
			}
			hit = append(hit, id)
		}
	}
	return hit
}

// Advance counts down per-element delays of triggered elements.
func (r *Revealer) Advance(dt time.Duration) {
	for _, it := range r.items {
		if it.triggered && !it.revealed {
			it.delay -= dt
			if it.delay <= 0 {
				it.revealed = true
			}
		}
	}
}

func (r *Revealer) Triggered(id string) bool {
	it, ok := r.items[id]
	return ok && it.triggered
}

func (r *Revealer) Revealed(id string) bool {
	it, ok := r.items[id]
	return ok && it.revealed
}

// RevealAll marks everything shown, for reduced motion.
func (r *Revealer) RevealAll() {
	for _, it := range r.items {
		it.triggered, it.revealed = true, true
	}
}

func (r *Revealer) Reset() {
	r.items = map[string]*revealItem{}
	r.order = nil
}
