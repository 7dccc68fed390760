package game

import (
	"image/color"

	"github.com/iburimskiy/particlefield/internal/config"
)

// Theme is the palette used for the background, particles and overlays.
type Theme struct {
	Name       config.Theme
	Background color.RGBA
	Accent     color.RGBA
}

var (
	lightTheme = Theme{
		Name:       config.ThemeLight,
		Background: color.RGBA{R: 248, G: 250, B: 252, A: 255},
		Accent:     color.RGBA{R: 99, G: 102, B: 241, A: 255},
	}
	darkTheme = Theme{
		Name:       config.ThemeDark,
		Background: color.RGBA{R: 15, G: 23, B: 42, A: 255},
		Accent:     color.RGBA{R: 99, G: 102, B: 241, A: 255},
	}
)

// ThemeFor returns the palette for name, falling back to light.
func ThemeFor(name config.Theme) Theme {
	if name == config.ThemeDark {
		return darkTheme
	}
	return lightTheme
}

// Toggle flips between light and dark.
func (t Theme) Toggle() Theme {
	if t.Name == config.ThemeDark {
		return lightTheme
	}
	return darkTheme
}
