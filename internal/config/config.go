package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800
	TPS          = 60

	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Background effects
	StarCount        = 150
	NodeCount        = 20
	ParticleCount    = 100
	MinParticleCount = 20
	ParticleLifetime = 3000
	PaletteSize      = 3

	// Responsive
	ResizeDebounce    = 250 * time.Millisecond
	MobileBreakpoint  = 768
	DesktopBreakpoint = 1024

	// Frame rate monitor
	LowFPS       = 30
	HighFPS      = 50
	FPSWindow    = time.Second
	NavHeight    = 56
	ScrollMargin = 20
)

// Config is the user-tunable part of the settings. Everything else is a
// constant above.
type Config struct {
	Title            string `toml:"title"`
	Width            int    `toml:"width"`
	Height           int    `toml:"height"`
	Stars            int    `toml:"stars"`
	Nodes            int    `toml:"nodes"`
	Particles        int    `toml:"particles"`
	ParticleLifetime int    `toml:"particle_lifetime"`
	PaletteSize      int    `toml:"palette_size"`
	MusicPath        string `toml:"music_path"`
	ReducedMotion    bool   `toml:"reduced_motion"`
	// Animations=false behaves like a host without a frame callback:
	// effects are drawn but never advance.
	Animations bool  `toml:"animations"`
	Seed       int64 `toml:"seed"`
}

func Default() Config {
	return Config{
		Title:            "Portfolio - Tab/arrows: focus, Enter: open, Space: music, Esc: close/quit",
		Width:            WindowWidth,
		Height:           WindowHeight,
		Stars:            StarCount,
		Nodes:            NodeCount,
		Particles:        ParticleCount,
		ParticleLifetime: ParticleLifetime,
		PaletteSize:      PaletteSize,
		Animations:       true,
	}
}

// Load starts from Default, overlays the TOML file at path (a missing file is
// not an error) and then the environment, after loading envFiles into it.
func Load(path string, envFiles ...string) (Config, error) {
	c := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &c); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("config %s: %w", path, err)
		}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("env %s: %w", f, err)
		}
	}
	if err := c.applyEnv(); err != nil {
		return c, err
	}
	c.normalize()
	return c, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORTFOLIO_MUSIC"); v != "" {
		c.MusicPath = v
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"PORTFOLIO_STARS", &c.Stars},
		{"PORTFOLIO_NODES", &c.Nodes},
		{"PORTFOLIO_PARTICLES", &c.Particles},
		{"PORTFOLIO_PARTICLE_LIFETIME", &c.ParticleLifetime},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = n
	}
	if v := os.Getenv("PORTFOLIO_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PORTFOLIO_SEED: %w", err)
		}
		c.Seed = n
	}
	if v := os.Getenv("PORTFOLIO_REDUCED_MOTION"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PORTFOLIO_REDUCED_MOTION: %w", err)
		}
		c.ReducedMotion = b
	}
	return nil
}

// normalize fills in unusable window sizes. Counts are left alone: zero or
// negative means "no entities" further down.
func (c *Config) normalize() {
	if c.Width <= 0 {
		c.Width = WindowWidth
	}
	if c.Height <= 0 {
		c.Height = WindowHeight
	}
	if c.ParticleLifetime <= 0 {
		c.ParticleLifetime = ParticleLifetime
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
}
