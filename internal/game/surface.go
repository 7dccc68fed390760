package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface draws particle field primitives onto an ebiten image in the
// current theme colours.
type screenSurface struct {
	dst    *ebiten.Image
	bg     color.RGBA
	accent color.RGBA
}

func (s *screenSurface) Clear() {
	s.dst.Fill(s.bg)
}

func (s *screenSurface) FillCircle(x, y, radius, alpha float64) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(radius), withAlpha(s.accent, alpha), true)
}

func (s *screenSurface) StrokeLine(x1, y1, x2, y2, width, alpha float64) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), withAlpha(s.accent, alpha), true)
}
