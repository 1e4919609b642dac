package render

import (
	"image/color"
	"math"

	"github.com/golang/freetype/raster"
	"github.com/rook-computer/clockicon/internal/render/layout"
	"golang.org/x/image/math/fixed"
)

// FreetypeDrawer rasterises with the freetype scan converter in 26.6 fixed
// point. Segments go through the freetype stroker; rings and discs are filled
// outlines under the non-zero winding rule.
type FreetypeDrawer struct {
	canvas
	r       *raster.Rasterizer
	painter *raster.RGBAPainter
}

func NewFreetypeDrawer(width, height int) *FreetypeDrawer {
	c := newCanvas(width, height)
	r := raster.NewRasterizer(width, height)
	r.UseNonZeroWinding = true
	return &FreetypeDrawer{canvas: c, r: r, painter: raster.NewRGBAPainter(c.img)}
}

func (d *FreetypeDrawer) StrokeRing(center layout.Point, outerRadius, width float64, c color.Color) {
	if outerRadius <= 0 || width <= 0 {
		return
	}
	d.circle(center, outerRadius, false)
	if inner := outerRadius - width; inner > 0 {
		d.circle(center, inner, true)
	}
	d.paint(c)
}

func (d *FreetypeDrawer) StrokeLine(from, to layout.Point, width float64, c color.Color) {
	if from == to || width <= 0 {
		return
	}
	var p raster.Path
	p.Start(fix26(from))
	p.Add1(fix26(to))
	d.r.AddStroke(p, fix(width), raster.ButtCapper, raster.BevelJoiner)
	d.paint(c)
}

func (d *FreetypeDrawer) FillCircle(center layout.Point, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	d.circle(center, radius, false)
	d.paint(c)
}

func (d *FreetypeDrawer) circle(center layout.Point, r float64, reverse bool) {
	start, segs := circleCubics(center, r, reverse)
	d.r.Start(fix26(start))
	for _, s := range segs {
		d.r.Add3(fix26(s[0]), fix26(s[1]), fix26(s[2]))
	}
}

func (d *FreetypeDrawer) paint(c color.Color) {
	d.painter.SetColor(c)
	d.r.Rasterize(d.painter)
	d.r.Clear()
}

func fix(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }

func fix26(p layout.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fix(p.X), Y: fix(p.Y)}
}
