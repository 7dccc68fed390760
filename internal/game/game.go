// Package game hosts the particle field in an ebiten window: it drives one
// Advance/Render pair per frame, forwards window resizes, and owns the
// loader, theme toggle and screenshot glue around it.
package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particlefield/internal/config"
	"github.com/iburimskiy/particlefield/internal/field"
)

const (
	// Theme button dimensions, anchored to the top-right corner
	buttonWidth  = 64
	buttonHeight = 28
	buttonMargin = 16

	loaderBarWidth  = 300
	loaderBarHeight = 6
)

// input is one frame's worth of user intent.
type input struct {
	quit        bool
	toggleTheme bool
	screenshot  bool

	mouseX, mouseY int
	mousePressed   bool
	mouseReleased  bool
}

// Game implements ebiten.Game.
type Game struct {
	field   *field.Field // nil when the animator is disabled
	loader  *Loader      // nil when the loader is skipped
	theme   Theme
	surface screenSurface

	width, height int

	// input edge detection
	prevKey map[ebiten.Key]bool

	// theme button state
	buttonHovered bool
	buttonPressed bool

	// screenshot
	pickPath    pathPicker
	shotPending bool
	shot        image.Image

	verbose bool
	frames  uint64
	lastErr error
}

// New builds a Game from cfg. A non-positive surface size disables the
// particle field without failing; the window still runs.
func New(cfg *config.Config, verbose bool) (*Game, error) {
	opts, err := cfg.FieldOptions()
	if err != nil {
		return nil, fmt.Errorf("field options: %w", err)
	}

	g := &Game{
		theme:    ThemeFor(cfg.Theme),
		width:    cfg.Width,
		height:   cfg.Height,
		prevKey:  map[ebiten.Key]bool{},
		pickPath: zenitySavePath,
		verbose:  verbose,
	}

	if cfg.Width > 0 && cfg.Height > 0 {
		g.field = field.New(float64(cfg.Width), float64(cfg.Height), cfg.ParticleCount, opts...)
		g.debugf("field: %d particles on %dx%d, wrap=%s", g.field.Len(), cfg.Width, cfg.Height, g.field.Wrap())
	} else {
		log.Printf("game: particle field disabled: surface is %dx%d", cfg.Width, cfg.Height)
	}

	if cfg.Loader {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.loader = NewLoader(rand.New(rand.NewSource(seed)))
	}

	return g, nil
}

func (g *Game) debugf(format string, args ...any) {
	if g.verbose {
		log.Printf("game: "+format, args...)
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	in := input{
		quit:          justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ),
		toggleTheme:   justPressed(ebiten.KeyT),
		screenshot:    justPressed(ebiten.KeyS),
		mouseX:        mouseX,
		mouseY:        mouseY,
		mousePressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		mouseReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}

	return g.step(in, time.Second/time.Duration(ebiten.TPS()))
}

// step applies one frame of input and advances the simulation by one tick.
func (g *Game) step(in input, dt time.Duration) error {
	if in.quit {
		return ebiten.Termination
	}

	if g.shot != nil {
		g.flushScreenshot()
	}

	g.buttonHovered = image.Pt(in.mouseX, in.mouseY).In(g.themeButton())
	if g.buttonHovered && in.mousePressed {
		g.buttonPressed = true
	}
	if in.mouseReleased {
		if g.buttonPressed && g.buttonHovered {
			in.toggleTheme = true
		}
		g.buttonPressed = false
	}

	if in.toggleTheme {
		g.theme = g.theme.Toggle()
		g.debugf("theme: %s", g.theme.Name)
	}
	if in.screenshot {
		g.shotPending = true
	}

	if g.loading() {
		g.loader.Step(dt)
		if g.loader.Done() {
			g.debugf("loader finished")
		}
		return nil
	}

	if g.field != nil {
		g.field.Advance()
	}
	g.frames++
	return nil
}

func (g *Game) loading() bool {
	return g.loader != nil && !g.loader.Done()
}

func (g *Game) flushScreenshot() {
	shot := g.shot
	g.shot = nil
	path, err := saveScreenshot(g.pickPath, shot)
	if err != nil {
		g.lastErr = err
		log.Printf("game: screenshot: %v", err)
		return
	}
	if path != "" {
		log.Printf("game: screenshot saved to %s", path)
	}
}

func (g *Game) themeButton() image.Rectangle {
	x := g.width - buttonWidth - buttonMargin
	return image.Rect(x, buttonMargin, x+buttonWidth, buttonMargin+buttonHeight)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface = screenSurface{dst: screen, bg: g.theme.Background, accent: g.theme.Accent}

	switch {
	case g.loading():
		g.surface.Clear()
		g.drawLoader(screen)
	case g.field != nil:
		g.field.Render(&g.surface)
	default:
		g.surface.Clear()
	}

	if g.shotPending {
		g.shot = captureScreen(screen)
		g.shotPending = false
	}

	g.drawButton(screen)
	g.drawStatus(screen)
}

func (g *Game) drawLoader(screen *ebiten.Image) {
	x := float32(g.width-loaderBarWidth) / 2
	y := float32(g.height-loaderBarHeight) / 2
	fill := float32(g.loader.Progress() / 100 * loaderBarWidth)

	vector.DrawFilledRect(screen, x, y, loaderBarWidth, loaderBarHeight, withAlpha(g.theme.Accent, 0.2), false)
	vector.DrawFilledRect(screen, x, y, fill, loaderBarHeight, g.theme.Accent, false)

	label := fmt.Sprintf("Loading %3.0f%%", g.loader.Progress())
	ebitenutil.DebugPrintAt(screen, label, int(x), int(y)-20)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	r := g.themeButton()

	var bg color.Color
	switch {
	case g.buttonPressed:
		bg = withAlpha(g.theme.Accent, 0.9)
	case g.buttonHovered:
		bg = withAlpha(g.theme.Accent, 0.7)
	default:
		bg = withAlpha(g.theme.Accent, 0.5)
	}

	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, g.theme.Accent, false)

	text := "Dark"
	if g.theme.Name == config.ThemeDark {
		text = "Light"
	}
	textWidth := len(text) * 6 // debug font glyph width
	ebitenutil.DebugPrintAt(screen, text, r.Min.X+(r.Dx()-textWidth)/2, r.Min.Y+(r.Dy()-16)/2)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	if status := g.statusLine(); status != "" {
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

// statusLine is empty unless verbose output is on or an error is pending.
func (g *Game) statusLine() string {
	status := ""
	if g.verbose {
		count := 0
		if g.field != nil {
			count = g.field.Len()
		}
		status = fmt.Sprintf("FPS %.0f  TPS %.0f  particles %d  frame %d", ebiten.ActualFPS(), ebiten.ActualTPS(), count, g.frames)
	}
	if g.lastErr != nil {
		if status != "" {
			status += "  "
		}
		status += "Error: " + g.lastErr.Error()
	}
	return status
}

// Layout forwards host size changes to the field. Stored particle positions
// are left alone; the next Advance wraps against the new bounds.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		if g.field != nil {
			g.field.Resize(float64(outsideWidth), float64(outsideHeight))
		}
		g.debugf("resized to %dx%d", outsideWidth, outsideHeight)
	}
	if g.width <= 0 || g.height <= 0 {
		return 1, 1
	}
	return g.width, g.height
}

// IsTermination reports whether err is the quit signal from Update.
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
