package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Stars != StarCount || c.Nodes != NodeCount || c.Particles != ParticleCount {
		t.Fatalf("unexpected counts %+v", c)
	}
	if !c.Animations {
		t.Fatal("animations should default on")
	}
	if c.Seed == 0 {
		t.Fatal("seed should be filled in")
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.toml")
	body := `
stars = 40
particles = 0
animations = false
seed = 7
music_path = "from-file.mp3"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORTFOLIO_MUSIC", "from-env.wav")
	t.Setenv("PORTFOLIO_NODES", "5")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Stars != 40 {
		t.Errorf("stars = %d", c.Stars)
	}
	if c.Particles != 0 {
		t.Errorf("particles = %d, zero must survive", c.Particles)
	}
	if c.Animations {
		t.Error("animations should be off")
	}
	if c.Seed != 7 {
		t.Errorf("seed = %d", c.Seed)
	}
	if c.MusicPath != "from-env.wav" {
		t.Errorf("music = %q", c.MusicPath)
	}
	if c.Nodes != 5 {
		t.Errorf("nodes = %d", c.Nodes)
	}
	if c.Width != WindowWidth {
		t.Errorf("width = %d", c.Width)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, ".env")
	if err := os.WriteFile(env, []byte("PORTFOLIO_REDUCED_MOTION=true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv.Load never overrides variables that are already set.
	t.Setenv("PORTFOLIO_REDUCED_MOTION", "")
	os.Unsetenv("PORTFOLIO_REDUCED_MOTION")

	c, err := Load("", env, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.ReducedMotion {
		t.Fatal("reduced motion from .env not applied")
	}
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_STARS", "many")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for non-numeric PORTFOLIO_STARS")
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("stars = [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
