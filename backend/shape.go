package backend

import "math"

// Shape is one of the primitives a Backend can fill or stroke:
// Circle, Rect, Line, Cubic or Arc.
type Shape interface {
	shape()
}

// Circle is a full circle.
type Circle struct {
	Center Point
	Radius float64
}

// Rect is an axis-aligned rectangle given by its top-left corner.
type Rect struct {
	Min           Point
	Width, Height float64
}

// Line is a straight segment.
type Line struct {
	From, To Point
}

// Cubic is a cubic Bézier curve.
type Cubic struct {
	P0, P1, P2, P3 Point
}

// Arc is a circular arc swept counter-clockwise in angle from Start to End
// (radians, measured in pixel space where y points down).
type Arc struct {
	Center     Point
	Radius     float64
	Start, End float64
}

func (Circle) shape() {}
func (Rect) shape()   {}
func (Line) shape()   {}
func (Cubic) shape()  {}
func (Arc) shape()    {}

// Corners returns the rectangle's vertices in drawing order, starting at Min.
func (r Rect) Corners() []Point {
	x, y := r.Min.X, r.Min.Y
	return []Point{
		{x, y},
		{x + r.Width, y},
		{x + r.Width, y + r.Height},
		{x, y + r.Height},
	}
}

// Empty reports whether the arc has no length.
func (a Arc) Empty() bool {
	return a.Radius <= 0 || a.End == a.Start
}

// Eval returns the point on c at parameter t in [0, 1].
func (c Cubic) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// At returns the point on the arc's circle at angle.
func (a Arc) At(angle float64) Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}
