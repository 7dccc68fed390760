package config

// Theme names a colour palette for the window.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Config is the top-level particlefield configuration, corresponding to
// .particlefield.yml.
type Config struct {
	Title           string  `yaml:"title" koanf:"title"`
	Width           int     `yaml:"width" koanf:"width"`
	Height          int     `yaml:"height" koanf:"height"`
	ParticleCount   int     `yaml:"particle_count" koanf:"particle_count"`
	ConnectDistance float64 `yaml:"connect_distance" koanf:"connect_distance"`
	Wrap            string  `yaml:"wrap" koanf:"wrap"`
	Seed            int64   `yaml:"seed" koanf:"seed"`
	Theme           Theme   `yaml:"theme" koanf:"theme"`
	Loader          bool    `yaml:"loader" koanf:"loader"`
}
