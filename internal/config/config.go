package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/iburimskiy/particlefield/internal/field"
)

// EnvPrefix prefixes environment overrides, e.g. PARTICLEFIELD_PARTICLE_COUNT.
const EnvPrefix = "PARTICLEFIELD_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// PARTICLEFIELD_PARTICLE_COUNT -> particle_count
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validThemes = map[Theme]bool{
	ThemeLight: true,
	ThemeDark:  true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.ParticleCount < 0 {
		return fmt.Errorf("particle_count must be non-negative")
	}
	if c.ConnectDistance <= 0 {
		return fmt.Errorf("connect_distance must be positive")
	}
	if _, err := field.ParseWrapMode(c.Wrap); err != nil {
		return err
	}
	if !validThemes[c.Theme] {
		return fmt.Errorf("invalid theme %q: must be light or dark", c.Theme)
	}
	return nil
}

// FieldOptions translates the config into field construction options.
// Seed 0 leaves the field clock-seeded.
func (c *Config) FieldOptions() ([]field.Option, error) {
	mode, err := field.ParseWrapMode(c.Wrap)
	if err != nil {
		return nil, err
	}
	opts := []field.Option{
		field.WithWrap(mode),
		field.WithConnectDistance(c.ConnectDistance),
	}
	if c.Seed != 0 {
		opts = append(opts, field.WithSeed(c.Seed))
	}
	return opts, nil
}
