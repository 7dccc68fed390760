package game

import (
	"image/color"
	"testing"

	"github.com/iburimskiy/particlefield/internal/config"
)

func TestThemeFor(t *testing.T) {
	if got := ThemeFor(config.ThemeDark).Name; got != config.ThemeDark {
		t.Errorf("ThemeFor(dark) = %q", got)
	}
	if got := ThemeFor("unknown").Name; got != config.ThemeLight {
		t.Errorf("unknown theme should fall back to light, got %q", got)
	}
	if ThemeFor(config.ThemeLight).Accent != (color.RGBA{R: 99, G: 102, B: 241, A: 255}) {
		t.Error("light accent should be indigo 99,102,241")
	}
}

func TestThemeToggleRoundTrip(t *testing.T) {
	th := ThemeFor(config.ThemeLight)
	if th.Toggle().Toggle() != th {
		t.Error("toggling twice should return the original theme")
	}
	if th.Toggle().Background == th.Background {
		t.Error("dark background should differ from light")
	}
}

func TestThemeAccentIsSharedAcrossThemes(t *testing.T) {
	light, dark := ThemeFor(config.ThemeLight), ThemeFor(config.ThemeDark)
	if light.Accent != dark.Accent {
		t.Errorf("particle colour changes with theme: light %+v, dark %+v", light.Accent, dark.Accent)
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	tests := []struct {
		alpha float64
		want  uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
		{-1, 0},
		{2, 255},
	}
	for _, tt := range tests {
		got := withAlpha(c, tt.alpha)
		if got.A != tt.want {
			t.Errorf("withAlpha(%v).A = %d, want %d", tt.alpha, got.A, tt.want)
		}
		if got.R != 10 || got.G != 20 || got.B != 30 {
			t.Errorf("withAlpha(%v) changed RGB: %+v", tt.alpha, got)
		}
	}
}
