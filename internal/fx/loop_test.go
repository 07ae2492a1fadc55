package fx

import (
	"math/rand"
	"testing"
)

type tickFunc func()

func (f tickFunc) Tick() { f() }

func TestFrameRunsInRegistrationOrder(t *testing.T) {
	loop := NewFrameLoop()
	var got []int
	for i := 0; i < 3; i++ {
		i := i
		loop.Register(tickFunc(func() { got = append(got, i) }))
	}
	loop.Frame()
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("order = %v", got)
	}
}

func TestCancelDuringFrame(t *testing.T) {
	loop := NewFrameLoop()
	var second *Registration
	calls := 0
	loop.Register(tickFunc(func() { second.Cancel() }))
	second = loop.Register(tickFunc(func() { calls++ }))

	loop.Frame()
	loop.Frame()
	if calls != 0 {
		t.Fatalf("cancelled ticker ran %d times", calls)
	}
	if loop.Len() != 1 {
		t.Fatalf("len = %d", loop.Len())
	}
	second.Cancel()
}

func TestRegisterDuringFrameStartsNextFrame(t *testing.T) {
	loop := NewFrameLoop()
	calls := 0
	registered := false
	loop.Register(tickFunc(func() {
		if !registered {
			registered = true
			loop.Register(tickFunc(func() { calls++ }))
		}
	}))
	loop.Frame()
	if calls != 0 {
		t.Fatal("new registration ran in the frame that created it")
	}
	loop.Frame()
	if calls != 1 {
		t.Fatalf("calls = %d", calls)
	}
}

func TestReentrantFrameIsDropped(t *testing.T) {
	loop := NewFrameLoop()
	depth := 0
	loop.Register(tickFunc(func() {
		depth++
		if loop.Frame() {
			t.Error("nested frame ran")
		}
	}))
	if !loop.Frame() {
		t.Fatal("frame did not run")
	}
	if depth != 1 || loop.Dropped() != 1 || loop.Frames() != 1 {
		t.Fatalf("depth=%d dropped=%d frames=%d", depth, loop.Dropped(), loop.Frames())
	}
}

func TestPausedLoop(t *testing.T) {
	loop := NewFrameLoop()
	p := NewPool(Star, NewViewport(50, 50), loop, Options{EntityCount: 2})
	loop.SetPaused(true)
	loop.Frame()
	if p.Ticks() != 0 {
		t.Fatal("paused loop ticked")
	}
	loop.SetPaused(false)
	loop.Frame()
	if p.Ticks() != 1 {
		t.Fatalf("ticks = %d", p.Ticks())
	}
}

func TestRain(t *testing.T) {
	loop := NewFrameLoop()
	vp := NewViewport(200, 130)
	r := NewRain(vp, loop, rand.New(rand.NewSource(1)), 60)
	if r.Columns() != 10 {
		t.Fatalf("columns = %d", r.Columns())
	}
	for _, c := range r.cols {
		if len(c.glyphs) != 20 {
			t.Fatalf("glyphs = %d", len(c.glyphs))
		}
		if c.Head > 0 {
			t.Fatalf("column starts below the top: %v", c.Head)
		}
	}
	for i := 0; i < 1000; i++ {
		loop.Frame()
		for _, c := range r.cols {
			if c.Head-c.height() > 130 {
				t.Fatalf("column fell off without wrapping: %v", c.Head)
			}
		}
	}
	r.Dispose()
	r.Dispose()
	if loop.Len() != 0 || r.Columns() != 0 {
		t.Fatal("rain not released")
	}
}
