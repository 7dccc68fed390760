package config

const (
	// DefaultPath is where commands look for the config file.
	DefaultPath = ".particlefield.yml"

	WindowWidth  = 1024
	WindowHeight = 512

	ParticleCount   = 50
	ConnectDistance = 150.0
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:           "Particle Field - T: theme, S: screenshot, Esc/Q: quit",
		Width:           WindowWidth,
		Height:          WindowHeight,
		ParticleCount:   ParticleCount,
		ConnectDistance: ConnectDistance,
		Wrap:            "reset",
		Theme:           ThemeLight,
		Loader:          true,
	}
}
