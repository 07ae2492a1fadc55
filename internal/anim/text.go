package anim

import (
	"math/rand"
	"time"
)

const (
	typewriterLoopPause = 2 * time.Second
	glitchRestore       = 50 * time.Millisecond
	glitchRuneChance    = 0.1
)

var glitchChars = []rune("!@#$%^&*()_+-=[]{}|;:,.<>?")

// Typewriter reveals Text one rune at a time.
type Typewriter struct {
	Speed  time.Duration
	Jitter time.Duration // extra random delay per rune, [0, Jitter)
	Loop   bool

	text  []rune
	shown int
	wait  time.Duration
	done  bool
	rng   *rand.Rand
}

// NewTypewriter starts typing after delay. A nil rng disables jitter.
func NewTypewriter(text string, speed, delay time.Duration, rng *rand.Rand) *Typewriter {
	t := &Typewriter{
		Speed:  speed,
		Jitter: 50 * time.Millisecond,
		text:   []rune(text),
		wait:   delay,
		rng:    rng,
	}
	if len(t.text) == 0 {
		t.done = true
	}
	return t
}

func (t *Typewriter) jitter() time.Duration {
	if t.rng == nil || t.Jitter <= 0 {
		return 0
	}
	return time.Duration(t.rng.Int63n(int64(t.Jitter)))
}

func (t *Typewriter) Advance(dt time.Duration) {
	if t.done {
		return
	}
	t.wait -= dt
	for t.wait <= 0 && !t.done {
		switch {
		case t.shown < len(t.text):
			t.shown++
			switch {
			case t.shown < len(t.text):
				t.wait += t.Speed + t.jitter()
			case t.Loop:
				t.wait += typewriterLoopPause
			default:
				t.done = true
			}
		default:
			// loop pause elapsed
			t.shown = 0
		}
	}
}

func (t *Typewriter) Text() string { return string(t.text[:t.shown]) }

func (t *Typewriter) Done() bool { return t.done }

// Glitch briefly scrambles a string at random moments for Duration.
type Glitch struct {
	Intensity float64
	Duration  time.Duration
	Interval  time.Duration

	original []rune
	current  string
	elapsed  time.Duration
	nextAt   time.Duration
	restore  time.Duration // 0 when nothing to restore
	stopped  bool
	rng      *rand.Rand
}

func NewGlitch(text string, intensity float64, duration, interval time.Duration, rng *rand.Rand) *Glitch {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Glitch{
		Intensity: intensity,
		Duration:  duration,
		Interval:  interval,
		original:  []rune(text),
		current:   text,
		rng:       rng,
	}
}

func (g *Glitch) Advance(dt time.Duration) {
	if g.stopped {
		return
	}
	g.elapsed += dt
	for g.nextAt <= g.elapsed && g.nextAt < g.Duration {
		if g.rng.Float64() < 0.1*g.Intensity {
			g.current = g.scramble()
			g.restore = g.nextAt + glitchRestore
		}
		g.nextAt += g.Interval
	}
	if g.restore > 0 && g.elapsed >= g.restore {
		g.current = string(g.original)
		g.restore = 0
	}
}

func (g *Glitch) scramble() string {
	out := make([]rune, len(g.original))
	for i, r := range g.original {
		if g.rng.Float64() < glitchRuneChance {
			r = glitchChars[g.rng.Intn(len(glitchChars))]
		}
		out[i] = r
	}
	return string(out)
}

// Stop ends glitching and puts the original text back.
func (g *Glitch) Stop() {
	g.stopped = true
	g.current = string(g.original)
	g.restore = 0
}

func (g *Glitch) Text() string { return g.current }

func (g *Glitch) Active() bool { return !g.stopped && (g.elapsed < g.Duration || g.restore > 0) }
