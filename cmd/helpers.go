package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/particlefield/internal/config"
)

// loadConfig reads the config file and env overrides, then applies any
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	applyFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if verbose {
		log.Printf("config: %d particles, %dx%d, wrap=%s, theme=%s", cfg.ParticleCount, cfg.Width, cfg.Height, cfg.Wrap, cfg.Theme)
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.ParticleCount = flagCount
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("wrap") {
		cfg.Wrap = flagWrap
	}
	if flags.Changed("theme") {
		cfg.Theme = config.Theme(flagTheme)
	}
	if flags.Changed("no-loader") {
		cfg.Loader = !flagNoLoader
	}
}
