package raster

import (
	"math"

	"github.com/gogpu/sketch/backend"
)

// PixelWidth rounds a stroke width to whole pixels, never below one.
func PixelWidth(w float64) int {
	n := int(math.Round(w))
	if n < 1 {
		return 1
	}
	return n
}

// strokePolygons builds the polygons covering each polyline in pieces
// stroked with the given width: a quad per segment and a disc at every
// vertex for joins and round caps. All polygons are wound positively.
func strokePolygons(pieces [][]backend.Point, width float64) [][]backend.Point {
	half := width / 2
	disc := discSegments(half)

	var polys [][]backend.Point
	for _, pts := range pieces {
		for i, p := range pts {
			polys = append(polys, discAt(p, half, disc))
			if i == 0 {
				continue
			}
			if q := segmentQuad(pts[i-1], p, half); q != nil {
				polys = append(polys, q)
			}
		}
	}
	return polys
}

// segmentQuad returns the rectangle of half-width half around a-b, or nil
// for a zero-length segment.
func segmentQuad(a, b backend.Point, half float64) []backend.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil
	}
	nx, ny := -dy/l*half, dx/l*half
	return []backend.Point{
		{X: a.X - nx, Y: a.Y - ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: a.X + nx, Y: a.Y + ny},
	}
}

func discAt(c backend.Point, r float64, n int) []backend.Point {
	pts := make([]backend.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = backend.Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return pts
}

func discSegments(r float64) int {
	n := int(math.Ceil(2 * math.Pi * r))
	if n < 8 {
		return 8
	}
	return n
}
