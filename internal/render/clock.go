package render

import (
	"image"
	"image/color"
	"math"

	"github.com/rook-computer/clockicon/internal/render/layout"
)

// Segment is a straight stroke between two canvas points.
type Segment struct {
	From layout.Point
	To   layout.Point
}

// Geometry holds every measurement of the clock face for one canvas size.
// Lengths and end points are truncated to whole pixels the way integer pixel
// tools place them; stroke widths use integer division with a floor.
type Geometry struct {
	Size   int
	Center layout.Point
	Radius float64

	RimWidth   float64
	TickLength float64
	TickWidth  float64
	Ticks      [4]Segment

	HourHand    Segment
	HourWidth   float64
	MinuteHand  Segment
	MinuteWidth float64

	DotRadius float64
}

// NewGeometry measures the clock face for a size×size canvas.
func NewGeometry(size int) Geometry {
	center := layout.Center(image.Rect(0, 0, size, size))
	radius := math.Trunc(float64(size) * radiusRatio)
	tickLen := math.Trunc(radius * tickLengthRatio)

	g := Geometry{
		Size:        size,
		Center:      center,
		Radius:      radius,
		RimWidth:    strokeWidth(size, rimWidthDivisor, rimWidthMin),
		TickLength:  tickLen,
		TickWidth:   strokeWidth(size, tickWidthDivisor, tickWidthMin),
		HourWidth:   strokeWidth(size, hourWidthDivisor, hourWidthMin),
		MinuteWidth: strokeWidth(size, minuteWidthDivisor, minuteWidthMin),
		DotRadius:   strokeWidth(size, dotRadiusDivisor, dotRadiusMin),
	}
	for i, angle := range tickAngles {
		g.Ticks[i] = Segment{
			From: layout.PolarTrunc(center, radius-tickLen, angle),
			To:   layout.PolarTrunc(center, radius, angle),
		}
	}
	g.HourHand = Segment{
		From: center,
		To:   layout.PolarTrunc(center, math.Trunc(radius*hourLengthRatio), hourHandAngle),
	}
	g.MinuteHand = Segment{
		From: center,
		To:   layout.PolarTrunc(center, math.Trunc(radius*minuteLengthRatio), minuteHandAngle),
	}
	return g
}

func strokeWidth(size, divisor, floor int) float64 {
	return float64(max(floor, size/divisor))
}

// ClockFace is the launcher icon: a rim with four hour ticks, two hands and a
// centre dot on a solid background.
type ClockFace struct {
	Background color.Color
	Foreground color.Color
}

// DefaultClockFace uses the package palette.
func DefaultClockFace() ClockFace {
	return ClockFace{Background: Background, Foreground: Foreground}
}

func (f ClockFace) Draw(d Drawer) {
	size, _ := d.Size()
	g := NewGeometry(size)
	fg := f.Foreground

	d.FillBackground(f.Background)
	d.StrokeRing(g.Center, g.Radius, g.RimWidth, fg)
	for _, t := range g.Ticks {
		d.StrokeLine(t.From, t.To, g.TickWidth, fg)
	}
	d.StrokeLine(g.HourHand.From, g.HourHand.To, g.HourWidth, fg)
	d.StrokeLine(g.MinuteHand.From, g.MinuteHand.To, g.MinuteWidth, fg)
	d.FillCircle(g.Center, g.DotRadius, fg)
}
