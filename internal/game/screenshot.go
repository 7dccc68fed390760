package game

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

// pathPicker asks the user where to write a file. zenity.ErrCanceled means
// the user backed out.
type pathPicker func() (string, error)

func zenitySavePath() (string, error) {
	return zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename("particlefield.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
}

// captureScreen copies the current frame into an RGBA image.
func captureScreen(screen *ebiten.Image) *image.RGBA {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	return img
}

// saveScreenshot asks for a destination and writes img as PNG. The path
// returned is empty when the user cancelled.
func saveScreenshot(pick pathPicker, img image.Image) (string, error) {
	path, err := pick()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("choosing screenshot path: %w", err)
	}
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		path += ".png"
	}
	if err := writePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
