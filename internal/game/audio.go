package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

var errUnsupported = errors.New("unsupported file type")

// music is the ambient track behind the floating toggle. The track loops
// until the window closes.
type music struct {
	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	tap         *visualTap

	initDone bool
	paused   bool
	level    float64
	position time.Duration
	duration time.Duration

	// pick chooses a track when none is configured.
	pick func() (string, error)
}

func newMusic() *music {
	return &music{pick: openFileDialog}
}

func (m *music) loaded() bool  { return m.ctrl != nil }
func (m *music) playing() bool { return m.ctrl != nil && !m.paused }

// toggle starts the track on first use, asking for one when path is empty,
// and pauses or resumes it afterwards.
func (m *music) toggle(path string) error {
	if m.ctrl == nil {
		if path == "" {
			p, err := m.pick()
			if err != nil || p == "" {
				return err
			}
			path = p
		}
		return m.loadAndPlay(path)
	}
	speaker.Lock()
	m.paused = !m.paused
	m.ctrl.Paused = m.paused
	speaker.Unlock()
	return nil
}

func openFileDialog() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose Background Music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

func decode(path string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", errUnsupported, ext)
	}
}

func (m *music) loadAndPlay(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	streamer, format, err := decode(path, f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("music %s: %w", filepath.Base(path), err)
	}

	// streamer -> loop -> tap -> ctrl
	t := newVisualTap(beep.Loop(-1, streamer), config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !m.initDone {
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return err
		}
		m.initDone = true
	}

	m.currentFile = f
	m.streamer = streamer
	m.format = format
	m.ctrl = ctrl
	m.tap = t
	m.paused = false
	m.duration = format.SampleRate.D(streamer.Len())

	log.Printf("music: playing %s (%s)", filepath.Base(path), formatDuration(m.duration))
	speaker.Play(ctrl)
	return nil
}

// update samples the tap level and the playback position once per frame.
func (m *music) update() {
	if m.tap == nil {
		return
	}
	lvl := 0.0
	if !m.paused {
		lvl = m.tap.level(2048)
	}
	m.level = config.SmoothingFactor*m.level + (1-config.SmoothingFactor)*lvl

	speaker.Lock()
	pos := m.streamer.Position()
	speaker.Unlock()
	m.position = m.format.SampleRate.D(pos)
}

func (m *music) close() {
	if m.ctrl == nil {
		return
	}
	speaker.Clear()
	if m.streamer != nil {
		_ = m.streamer.Close()
		m.streamer = nil
	}
	if m.currentFile != nil {
		_ = m.currentFile.Close()
		m.currentFile = nil
	}
	m.ctrl = nil
	m.tap = nil
}
