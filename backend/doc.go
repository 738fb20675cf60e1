// Package backend provides the pluggable rendering capability sessions draw
// through.
//
// A Backend owns one surface and knows how to paint a background, fill and
// stroke the five primitive shapes (Circle, Rect, Line, Cubic, Arc), place
// text and encode the result as PNG. All coordinates handed to a backend
// are already in pixel space; the logical-to-pixel mapping happens before.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime:
//
//	import (
//		_ "github.com/gogpu/sketch/backend/raster"
//		_ "github.com/gogpu/sketch/backend/vector"
//	)
//
// # Backend Selection
//
// Open tries the registered backends in priority order and returns the
// first one that initializes:
//
//	b, err := backend.Open(backend.Config{Width: 400, Height: 300})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
// # Available Backends
//
//   - "vector": curves, arcs and fractional stroke widths drawn natively
//     by github.com/gogpu/gg (preferred)
//   - "raster": polygon scan conversion with golang.org/x/image/vector;
//     curves are flattened and stroke widths rounded to whole pixels
//
// The helpers in this package (Baseline, DashPolyline, FlattenCubic,
// FlattenArc, Outline) are shared by both so that text placement and dash
// phase agree between them.
package backend
