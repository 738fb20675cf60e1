package sketch

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/gogpu/sketch/backend"
)

// Place is a position argument of a drawing command: either a Point in
// logical coordinates or the symbolic origin O.
type Place interface {
	place()
}

// Point is a position in logical coordinates, relative to the canvas
// center.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (Point) place() {}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return fromVec(p.vec().Add(q.vec()))
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return fromVec(p.vec().Sub(q.vec()))
}

// Polar returns p offset by r in direction theta (radians).
func (p Point) Polar(r, theta float64) Point {
	return Point{X: p.X + r*math.Cos(theta), Y: p.Y + r*math.Sin(theta)}
}

func (p Point) vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

func fromVec(v vec.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

// origin is the type of O.
type origin struct{}

func (origin) place() {}

func (origin) String() string { return "O" }

// O denotes the canvas center. It is not a Point: ToPixel maps it straight
// to the center without going through the additive transform.
var O Place = origin{}

// PixelPoint is a position in backend pixel space: origin at the top-left
// corner of the canvas.
type PixelPoint struct {
	X, Y float64
}

// ToPixel maps a logical place onto a width x height canvas:
// (width/2 + x, height/2 + y). O and nil map to the canvas center.
// Sessions perform every logical-to-pixel conversion through ToPixel.
func ToPixel(p Place, width, height int) PixelPoint {
	center := vec.Vec2{X: float64(width) / 2, Y: float64(height) / 2}

	pt, ok := p.(Point)
	if !ok {
		return PixelPoint{X: center.X, Y: center.Y}
	}
	v := center.Add(pt.vec())
	return PixelPoint{X: v.X, Y: v.Y}
}

// logical returns the logical coordinates of p, with O and nil at (0, 0).
func logical(p Place) Point {
	if pt, ok := p.(Point); ok {
		return pt
	}
	return Point{}
}

func (p PixelPoint) backend() backend.Point {
	return backend.Point(p)
}
