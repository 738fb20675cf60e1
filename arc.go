package sketch

import "math"

// ArcSpec is a circular arc swept counter-clockwise (in angle) from Start
// to End around Center. Angles are in radians. Arcs produced by MinorArc
// satisfy 0 <= End-Start <= π.
type ArcSpec struct {
	Center Point
	Radius float64
	Start  float64
	End    float64
}

// MinorArc returns the shorter arc around center from the direction of
// from to the direction of to. The radius is the distance from center to
// from; to only contributes its direction.
//
// The boundary points may come in either order: when the counter-clockwise
// sweep from from to to exceeds π the start and end angles are swapped, so
// MinorArc(c, a, b) and MinorArc(c, b, a) describe the same arc.
//
// Coincident directions, including from == center, give an empty arc
// (End == Start).
func MinorArc(center, from, to Point) ArcSpec {
	f := from.vec().Sub(center.vec())
	d := to.vec().Sub(center.vec())

	r := f.Length()
	a1 := math.Atan2(f.Y, f.X)
	a2 := math.Atan2(d.Y, d.X)

	da := ccwDelta(a1, a2)
	if da > math.Pi {
		a1, a2 = a2, a1
		da = ccwDelta(a1, a2)
	}
	// Only equal angles survive both normalizations with a full turn.
	if da > math.Pi {
		da = 0
	}

	return ArcSpec{Center: center, Radius: r, Start: a1, End: a1 + da}
}

// ccwDelta returns the counter-clockwise angle from a1 to a2 in (0, 2π].
func ccwDelta(a1, a2 float64) float64 {
	da := a2 - a1
	for da <= 0 {
		da += 2 * math.Pi
	}
	return da
}

// Sweep returns the angular extent End-Start.
func (a ArcSpec) Sweep() float64 {
	return a.End - a.Start
}

// Empty reports whether the arc has zero radius or zero sweep.
func (a ArcSpec) Empty() bool {
	return a.Radius == 0 || a.Sweep() == 0
}

// StartPoint returns the point at the Start angle.
func (a ArcSpec) StartPoint() Point {
	return a.Center.Polar(a.Radius, a.Start)
}

// EndPoint returns the point at the End angle.
func (a ArcSpec) EndPoint() Point {
	return a.Center.Polar(a.Radius, a.End)
}
