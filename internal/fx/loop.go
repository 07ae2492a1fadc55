package fx

// Ticker is anything advanced once per frame.
type Ticker interface {
	Tick()
}

// FrameLoop stands in for the display refresh callback. The host calls Frame
// once per rendered frame; every registered Ticker runs once, in registration
// order, on the caller's goroutine.
type FrameLoop struct {
	regs    []*Registration
	inFrame bool
	paused  bool

	frames  uint64
	dropped uint64
}

func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

// Registration is the handle returned by Register. Cancel is immediate and
// idempotent.
type Registration struct {
	loop      *FrameLoop
	t         Ticker
	cancelled bool
}

func (l *FrameLoop) Register(t Ticker) *Registration {
	r := &Registration{loop: l, t: t}
	l.regs = append(l.regs, r)
	return r
}

func (r *Registration) Cancel() {
	if r == nil || r.cancelled {
		return
	}
	r.cancelled = true
	// Inside a frame the slice is being walked; Frame compacts it afterwards.
	if !r.loop.inFrame {
		r.loop.compact()
	}
}

func (r *Registration) Active() bool {
	return r != nil && !r.cancelled
}

// Frame runs one tick of every active registration. A call made while a frame
// is already running is dropped and reported as false.
func (l *FrameLoop) Frame() bool {
	if l.inFrame {
		l.dropped++
		return false
	}
	if l.paused {
		return false
	}
	l.inFrame = true
	// Registrations made during this frame start on the next one.
	n := len(l.regs)
	for i := 0; i < n; i++ {
		if r := l.regs[i]; !r.cancelled {
			r.t.Tick()
		}
	}
	l.inFrame = false
	l.compact()
	l.frames++
	return true
}

func (l *FrameLoop) compact() {
	live := l.regs[:0]
	for _, r := range l.regs {
		if !r.cancelled {
			live = append(live, r)
		}
	}
	for i := len(live); i < len(l.regs); i++ {
		l.regs[i] = nil
	}
	l.regs = live
}

// SetPaused stops frames from reaching tickers (page hidden).
func (l *FrameLoop) SetPaused(p bool) { l.paused = p }

func (l *FrameLoop) Paused() bool { return l.paused }

// Len is the number of active registrations.
func (l *FrameLoop) Len() int {
	n := 0
	for _, r := range l.regs {
		if !r.cancelled {
			n++
		}
	}
	return n
}

func (l *FrameLoop) Frames() uint64  { return l.frames }
func (l *FrameLoop) Dropped() uint64 { return l.dropped }
