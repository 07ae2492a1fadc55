package game

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		h, s, v float64
		r, g, b uint8
	}{
		{0, 1, 1, 255, 0, 0},
		{120, 1, 1, 0, 255, 0},
		{240, 1, 1, 0, 0, 255},
		{-120, 1, 1, 0, 0, 255},
		{720, 1, 1, 255, 0, 0},
		{0, 0, 0.5, 128, 128, 128},
	}
	for _, tt := range tests {
		r, g, b := hsvToRgb(tt.h, tt.s, tt.v)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hsvToRgb(%v, %v, %v) = %d, %d, %d", tt.h, tt.s, tt.v, r, g, b)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(83 * time.Second); got != "01:23" {
		t.Fatalf("formatDuration = %q", got)
	}
	if got := formatDuration(0); got != "00:00" {
		t.Fatalf("formatDuration(0) = %q", got)
	}
}

func TestTruncateAndWrap(t *testing.T) {
	if got := truncate("abcdefghij", 7*glyphW); got != "abcd..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("abc", 70); got != "abc" {
		t.Fatalf("truncate short = %q", got)
	}
	got := wrapWidth("aa bb cc", 5*glyphW)
	if strings.Join(got, "|") != "aa bb|cc" {
		t.Fatalf("wrapWidth = %q", got)
	}
}

type constStreamer struct{ v float64 }

func (c constStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{c.v, c.v}
	}
	return len(samples), true
}

func (constStreamer) Err() error { return nil }

func TestVisualTapLevel(t *testing.T) {
	tap := newVisualTap(constStreamer{0.25}, 16)
	if tap.level(8) != 0 {
		t.Fatal("silent tap has a level")
	}
	buf := make([][2]float64, 8)
	if n, ok := tap.Stream(buf); n != 8 || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	if got, want := tap.level(8), math.Pow(0.25, 0.3); math.Abs(got-want) > 1e-9 {
		t.Fatalf("level(8) = %v, want %v", got, want)
	}
	// half the ring is still silent
	if got, want := tap.level(100), math.Pow(math.Sqrt(0.25*0.25/2), 0.3); math.Abs(got-want) > 1e-9 {
		t.Fatalf("level(100) = %v, want %v", got, want)
	}
}

func TestMusicPicker(t *testing.T) {
	m := newMusic()
	m.pick = func() (string, error) { return "", nil }
	if err := m.toggle(""); err != nil || m.loaded() {
		t.Fatalf("cancelled pick: %v, loaded %v", err, m.loaded())
	}

	boom := errors.New("no display")
	m.pick = func() (string, error) { return "", boom }
	if err := m.toggle(""); !errors.Is(err, boom) {
		t.Fatalf("picker error = %v", err)
	}
}

func TestMusicRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.ogg")
	if err := os.WriteFile(path, []byte("OggS"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := newMusic()
	if err := m.toggle(path); !errors.Is(err, errUnsupported) {
		t.Fatalf("toggle = %v", err)
	}
	if m.loaded() || m.playing() {
		t.Fatal("unsupported track marked loaded")
	}
	if err := m.toggle(filepath.Join(t.TempDir(), "missing.mp3")); err == nil {
		t.Fatal("missing file accepted")
	}
}
