package layout

import (
	"image"
	"math"
)

// Point is a canvas position in pixels. Y grows downward.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale multiplies both coordinates by k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Len returns the euclidean length of p taken as a vector.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Trunc drops the fractional part of both coordinates (toward zero).
func (p Point) Trunc() Point { return Point{X: math.Trunc(p.X), Y: math.Trunc(p.Y)} }

// Center returns the integer centre of rect using integer division, so a
// 48px square has its centre at (24, 24).
func Center(rect image.Rectangle) Point {
	rect = Normalize(rect)
	return Point{
		X: float64(rect.Min.X + rect.Dx()/2),
		Y: float64(rect.Min.Y + rect.Dy()/2),
	}
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Offset returns the vector of the given length pointing along angleDeg,
// where 0° points right (3 o'clock) and positive angles turn clockwise on
// screen because Y grows downward.
func Offset(length, angleDeg float64) Point {
	a := Radians(angleDeg)
	return Point{X: length * math.Cos(a), Y: length * math.Sin(a)}
}

// Polar projects from center along angleDeg by length.
func Polar(center Point, length, angleDeg float64) Point {
	return center.Add(Offset(length, angleDeg))
}

// PolarTrunc is Polar with the offset truncated to whole pixels before it is
// added to center, matching how integer pixel tools place end points.
func PolarTrunc(center Point, length, angleDeg float64) Point {
	return center.Add(Offset(length, angleDeg).Trunc())
}
