package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// IconRenderer draws a Design into a fresh square canvas per call and writes
// it out as PNG. It keeps no state between calls.
type IconRenderer struct {
	Backend Backend
	Design  Design
	Logger  interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewIconRenderer() *IconRenderer {
	return &IconRenderer{Backend: BackendVector, Design: DefaultClockFace()}
}

// Draw renders the design at size×size and returns the canvas.
func (r *IconRenderer) Draw(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	backend := r.Backend
	if backend == "" {
		backend = BackendVector
	}
	d, err := NewDrawer(backend, size, size)
	if err != nil {
		return nil, err
	}
	design := r.Design
	if design == nil {
		design = DefaultClockFace()
	}
	design.Draw(d)
	if r.Logger != nil {
		r.Logger.Infof("render", "drew %dx%d icon with %s backend", size, size, backend)
	}
	return d.Image(), nil
}

// Render draws the icon at size×size and writes it to outputPath, creating
// missing parent directories and overwriting any existing file.
func (r *IconRenderer) Render(size int, outputPath string) error {
	img, err := r.Draw(size)
	if err != nil {
		return err
	}
	if err := SavePNG(outputPath, img); err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("render", "save %s failed: %v", outputPath, err)
		}
		return err
	}
	if r.Logger != nil {
		r.Logger.Infof("render", "wrote %s", outputPath)
	}
	return nil
}

// SavePNG encodes img to path. Directory failures wrap ErrCreateDir; create,
// encode and close failures wrap ErrWrite.
func SavePNG(path string, img image.Image) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w %s: %w", ErrCreateDir, dir, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	return nil
}
