package cmd

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/particlefield/internal/config"
	"github.com/iburimskiy/particlefield/internal/game"
)

var (
	cfgFile string
	verbose bool

	flagCount    int
	flagSeed     int64
	flagWrap     string
	flagTheme    string
	flagNoLoader bool
)

var rootCmd = &cobra.Command{
	Use:   "particlefield",
	Short: "Ambient particle field with proximity connections",
	Long: `particlefield opens a window with a fixed population of drifting
particles. Particles closer than the connect distance are joined by lines
that fade out with distance. The field wraps around the window edges and
follows window resizes.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		g, err := game.New(cfg, verbose)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		ebiten.SetWindowTitle(cfg.Title)
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

		if err := ebiten.RunGame(g); err != nil && !game.IsTermination(err) {
			return fmt.Errorf("running game: %w", err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.PersistentFlags().IntVarP(&flagCount, "count", "n", config.ParticleCount, "number of particles")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "random seed (0 = time based)")
	rootCmd.PersistentFlags().StringVar(&flagWrap, "wrap", "reset", "edge wrap rule: reset or modulo")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", string(config.ThemeLight), "initial theme: light or dark")
	rootCmd.Flags().BoolVar(&flagNoLoader, "no-loader", false, "skip the loading screen")
}
