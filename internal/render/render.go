package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/rook-computer/clockicon/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

var (
	ErrInvalidSize    = errors.New("invalid icon size")
	ErrCreateDir      = errors.New("create output directory")
	ErrWrite          = errors.New("write icon")
	ErrUnknownBackend = errors.New("unknown raster backend")
)

// Design draws a complete icon onto a Drawer.
type Design interface {
	Draw(d Drawer)
}

// Drawer is the set of anti-aliased primitives a Design needs. It hides the
// rasteriser in use from the design code.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	FillBackground(c color.Color)

	// StrokeRing draws the band between outerRadius-width and outerRadius.
	StrokeRing(center layout.Point, outerRadius, width float64, c color.Color)
	// StrokeLine draws a butt-capped segment of the given width.
	StrokeLine(from, to layout.Point, width float64, c color.Color)
	FillCircle(center layout.Point, radius float64, c color.Color)

	Image() *image.RGBA
}

// Backend names a Drawer implementation.
type Backend string

const (
	BackendVector   Backend = "vector"
	BackendFreetype Backend = "freetype"
)

// Backends lists the accepted backend names, default first.
var Backends = []Backend{BackendVector, BackendFreetype}

// ParseBackend maps a flag value to a Backend. An empty string selects the
// default.
func ParseBackend(name string) (Backend, error) {
	if name == "" {
		return BackendVector, nil
	}
	for _, b := range Backends {
		if string(b) == name {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// NewDrawer allocates a fresh width×height canvas for the backend.
func NewDrawer(b Backend, width, height int) (Drawer, error) {
	switch b {
	case BackendVector:
		return NewVectorDrawer(width, height), nil
	case BackendFreetype:
		return NewFreetypeDrawer(width, height), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, string(b))
}

// canvas is the RGBA target shared by the backends.
type canvas struct {
	img *image.RGBA
}

func newCanvas(width, height int) canvas {
	return canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (c *canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *canvas) FillBackground(col color.Color) {
	xdraw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, xdraw.Src)
}

func (c *canvas) Image() *image.RGBA { return c.img }

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498307936

// circleCubics returns the start point and the four cubic segments
// (control1, control2, end) of a circle. reverse flips the winding so the
// contour can punch a hole in an enclosing one.
func circleCubics(c layout.Point, r float64, reverse bool) (layout.Point, [4][3]layout.Point) {
	o := r * kappa
	start := layout.Pt(c.X+r, c.Y)
	if !reverse {
		return start, [4][3]layout.Point{
			{layout.Pt(c.X+r, c.Y+o), layout.Pt(c.X+o, c.Y+r), layout.Pt(c.X, c.Y+r)},
			{layout.Pt(c.X-o, c.Y+r), layout.Pt(c.X-r, c.Y+o), layout.Pt(c.X-r, c.Y)},
			{layout.Pt(c.X-r, c.Y-o), layout.Pt(c.X-o, c.Y-r), layout.Pt(c.X, c.Y-r)},
			{layout.Pt(c.X+o, c.Y-r), layout.Pt(c.X+r, c.Y-o), start},
		}
	}
	return start, [4][3]layout.Point{
		{layout.Pt(c.X+r, c.Y-o), layout.Pt(c.X+o, c.Y-r), layout.Pt(c.X, c.Y-r)},
		{layout.Pt(c.X-o, c.Y-r), layout.Pt(c.X-r, c.Y-o), layout.Pt(c.X-r, c.Y)},
		{layout.Pt(c.X-r, c.Y+o), layout.Pt(c.X-o, c.Y+r), layout.Pt(c.X, c.Y+r)},
		{layout.Pt(c.X+o, c.Y+r), layout.Pt(c.X+r, c.Y+o), start},
	}
}

// lineQuad returns the corners of a butt-capped segment outline. ok is false
// for zero-length segments or non-positive widths.
func lineQuad(from, to layout.Point, width float64) (quad [4]layout.Point, ok bool) {
	v := to.Sub(from)
	l := v.Len()
	if l == 0 || width <= 0 {
		return quad, false
	}
	n := layout.Pt(-v.Y, v.X).Scale(width / 2 / l)
	return [4]layout.Point{from.Add(n), to.Add(n), to.Sub(n), from.Sub(n)}, true
}
