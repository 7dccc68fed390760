package cmd

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/particlefield/internal/field"
)

var benchFrames int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the particle field headless and report per-frame cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if benchFrames <= 0 {
			return fmt.Errorf("frames must be positive, got %d", benchFrames)
		}

		opts, err := cfg.FieldOptions()
		if err != nil {
			return err
		}
		f := field.New(float64(cfg.Width), float64(cfg.Height), cfg.ParticleCount, opts...)

		res := runBench(f, benchFrames, progressbar.Default(int64(benchFrames), "simulating"))

		fmt.Printf("\nparticles:        %d\n", f.Len())
		fmt.Printf("frames:           %d\n", res.frames)
		fmt.Printf("avg frame:        %v\n", res.avgFrame())
		fmt.Printf("avg connections:  %.1f\n", res.avgLines())
		return nil
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchFrames, "frames", 3600, "number of frames to simulate")
	rootCmd.AddCommand(benchCmd)
}

type benchResult struct {
	frames  int
	lines   int
	elapsed time.Duration
}

func (r benchResult) avgFrame() time.Duration {
	if r.frames == 0 {
		return 0
	}
	return r.elapsed / time.Duration(r.frames)
}

func (r benchResult) avgLines() float64 {
	if r.frames == 0 {
		return 0
	}
	return float64(r.lines) / float64(r.frames)
}

// countingSurface discards pixels and counts draw calls.
type countingSurface struct {
	circles int
	lines   int
}

func (s *countingSurface) Clear() {}
func (s *countingSurface) FillCircle(_, _, _, _ float64) { s.circles++ }
func (s *countingSurface) StrokeLine(_, _, _, _, _, _ float64) { s.lines++ }

// progress is the slice of the progress bar the bench loop needs.
type progress interface {
	Add(int) error
}

func runBench(f *field.Field, frames int, bar progress) benchResult {
	var s countingSurface
	start := time.Now()
	for i := 0; i < frames; i++ {
		f.Advance()
		f.Render(&s)
		_ = bar.Add(1)
	}
	return benchResult{frames: frames, lines: s.lines, elapsed: time.Since(start)}
}
