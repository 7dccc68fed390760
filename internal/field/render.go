package field

const (
	maxLineOpacity = 0.2
	lineWidth      = 1.0
)

// Surface is a 2D raster target. Alpha values are in [0, 1]; the surface
// decides the colour.
type Surface interface {
	Clear()
	FillCircle(x, y, radius, alpha float64)
	StrokeLine(x1, y1, x2, y2, width, alpha float64)
}

// Render clears s, draws every particle, then draws one line per
// connection. It does not modify the field.
func (f *Field) Render(s Surface) {
	s.Clear()
	for _, p := range f.particles {
		s.FillCircle(p.X, p.Y, p.Radius, p.Opacity)
	}
	f.Connections(func(c Connection) {
		a, b := f.particles[c.A], f.particles[c.B]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, lineWidth, c.Opacity)
	})
}
