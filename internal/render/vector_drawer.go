package render

import (
	"image"
	"image/color"

	"github.com/rook-computer/clockicon/internal/render/layout"
	"golang.org/x/image/vector"
)

// VectorDrawer rasterises with golang.org/x/image/vector. Every primitive is
// accumulated as an outline and composited with draw.Over.
type VectorDrawer struct {
	canvas
	z *vector.Rasterizer
}

func NewVectorDrawer(width, height int) *VectorDrawer {
	return &VectorDrawer{
		canvas: newCanvas(width, height),
		z:      vector.NewRasterizer(width, height),
	}
}

func (d *VectorDrawer) StrokeRing(center layout.Point, outerRadius, width float64, c color.Color) {
	if outerRadius <= 0 || width <= 0 {
		return
	}
	d.reset()
	d.circle(center, outerRadius, false)
	if inner := outerRadius - width; inner > 0 {
		d.circle(center, inner, true)
	}
	d.paint(c)
}

func (d *VectorDrawer) StrokeLine(from, to layout.Point, width float64, c color.Color) {
	quad, ok := lineQuad(from, to, width)
	if !ok {
		return
	}
	d.reset()
	d.z.MoveTo(f32(quad[0]))
	for _, p := range quad[1:] {
		d.z.LineTo(f32(p))
	}
	d.z.ClosePath()
	d.paint(c)
}

func (d *VectorDrawer) FillCircle(center layout.Point, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	d.reset()
	d.circle(center, radius, false)
	d.paint(c)
}

func (d *VectorDrawer) circle(center layout.Point, r float64, reverse bool) {
	start, segs := circleCubics(center, r, reverse)
	d.z.MoveTo(f32(start))
	for _, s := range segs {
		bx, by := f32(s[0])
		cx, cy := f32(s[1])
		dx, dy := f32(s[2])
		d.z.CubeTo(bx, by, cx, cy, dx, dy)
	}
	d.z.ClosePath()
}

func (d *VectorDrawer) reset() {
	w, h := d.Size()
	d.z.Reset(w, h)
}

func (d *VectorDrawer) paint(c color.Color) {
	d.z.Draw(d.img, d.img.Bounds(), &image.Uniform{C: c}, image.Point{})
}

func f32(p layout.Point) (float32, float32) { return float32(p.X), float32(p.Y) }
