package backend

import "math"

// maxArcSegments bounds the polyline size of a single flattened arc.
const maxArcSegments = 1440

// FlattenCubic samples c at n+1 uniformly spaced parameters, endpoints
// included. n < 1 is treated as 1.
func FlattenCubic(c Cubic, n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	pts[0] = c.P0
	for i := 1; i < n; i++ {
		pts[i] = c.Eval(float64(i) / float64(n))
	}
	pts[n] = c.P3
	return pts
}

// FlattenArc approximates a with chords no longer than maxChord pixels.
// An empty arc yields nil.
func FlattenArc(a Arc, maxChord float64) []Point {
	if a.Empty() {
		return nil
	}
	n := arcSegments(a.Radius, a.End-a.Start, maxChord)
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = a.At(a.Start + (a.End-a.Start)*float64(i)/float64(n))
	}
	return pts
}

// FlattenCircle approximates c as a closed polyline whose last point repeats
// the first.
func FlattenCircle(c Circle, maxChord float64) []Point {
	if c.Radius <= 0 {
		return nil
	}
	pts := FlattenArc(Arc{Center: c.Center, Radius: c.Radius, Start: 0, End: 2 * math.Pi}, maxChord)
	pts[len(pts)-1] = pts[0]
	return pts
}

// Outline returns the polyline tracing s, closed for Circle and Rect.
// Curved parts are approximated with chords of at most maxChord pixels,
// except Cubic which uses samples uniform parameter steps.
func Outline(s Shape, maxChord float64, samples int) []Point {
	switch s := s.(type) {
	case Circle:
		return FlattenCircle(s, maxChord)
	case Rect:
		pts := s.Corners()
		return append(pts, pts[0])
	case Line:
		return []Point{s.From, s.To}
	case Cubic:
		return FlattenCubic(s, samples)
	case Arc:
		return FlattenArc(s, maxChord)
	default:
		return nil
	}
}

func arcSegments(radius, sweep, maxChord float64) int {
	if maxChord <= 0 {
		maxChord = 1
	}
	n := int(math.Ceil(math.Abs(sweep) * radius / maxChord))
	switch {
	case n < 4:
		n = 4
	case n > maxArcSegments:
		n = maxArcSegments
	}
	return n
}
