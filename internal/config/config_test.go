package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/particlefield/internal/field"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ParticleCount != 50 {
		t.Errorf("expected default particle_count 50, got %d", cfg.ParticleCount)
	}
	if cfg.ConnectDistance != 150 {
		t.Errorf("expected default connect_distance 150, got %f", cfg.ConnectDistance)
	}
	if cfg.Theme != ThemeLight {
		t.Errorf("expected default theme %q, got %q", ThemeLight, cfg.Theme)
	}
	if !cfg.Loader {
		t.Error("expected loader enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.particlefield.yml")

	original := DefaultConfig()
	original.Width = 800
	original.Height = 600
	original.ParticleCount = 120
	original.Wrap = "reset"
	original.Seed = 99
	original.Theme = ThemeDark
	original.Loader = false

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if *loaded != *original {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *loaded, *original)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", *cfg)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yml")
	if err := os.WriteFile(path, []byte("particle_count: 7\ntheme: dark\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ParticleCount != 7 {
		t.Errorf("particle_count: got %d, want 7", cfg.ParticleCount)
	}
	if cfg.Theme != ThemeDark {
		t.Errorf("theme: got %q, want dark", cfg.Theme)
	}
	if cfg.Width != WindowWidth {
		t.Errorf("width should keep default %d, got %d", WindowWidth, cfg.Width)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PARTICLEFIELD_PARTICLE_COUNT", "12")
	t.Setenv("PARTICLEFIELD_WRAP", "reset")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ParticleCount != 12 {
		t.Errorf("particle_count: got %d, want 12", cfg.ParticleCount)
	}
	if cfg.Wrap != "reset" {
		t.Errorf("wrap: got %q, want reset", cfg.Wrap)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("width: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"negative count", func(c *Config) { c.ParticleCount = -5 }},
		{"zero distance", func(c *Config) { c.ConnectDistance = 0 }},
		{"unknown wrap", func(c *Config) { c.Wrap = "bounce" }},
		{"unknown theme", func(c *Config) { c.Theme = "sepia" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestFieldOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Wrap = "reset"
	cfg.ConnectDistance = 80
	cfg.Seed = 4

	opts, err := cfg.FieldOptions()
	if err != nil {
		t.Fatalf("FieldOptions: %v", err)
	}

	f := field.New(100, 100, 5, opts...)
	if f.Wrap() != field.WrapReset {
		t.Errorf("wrap = %v, want reset", f.Wrap())
	}
	if f.ConnectDistance() != 80 {
		t.Errorf("connect distance = %v, want 80", f.ConnectDistance())
	}

	again := field.New(100, 100, 5, opts...)
	if f.Particles()[0] != again.Particles()[0] {
		t.Error("seeded options should reproduce the same field")
	}
}
