// Package sketch provides an immediate-mode 2D drawing API with
// interchangeable rendering backends.
//
// # Overview
//
// A Session binds one output image to one backend. Commands paint
// immediately with the current PaintState (color, opacity, line width and
// dash pattern); there is no scene graph and no retained path object.
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	err := sketch.Draw("out.png", 400, 300, func(s *sketch.Session) error {
//		if err := s.SetColor(sketch.Name("blue")); err != nil {
//			return err
//		}
//		if err := s.Circle(sketch.O, 80, sketch.FillStroke); err != nil {
//			return err
//		}
//		return s.Label("hello", sketch.AnchorN, sketch.Pt(0, -90), 18)
//	})
//
// Open and Close can be used directly instead of Draw; only one session
// may be open per process.
//
// # Coordinate System
//
// Logical coordinates are centered on the canvas:
//   - Origin (0,0) at the canvas center; O names it symbolically
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing towards +Y
//
// ToPixel converts a logical position into backend pixel space.
//
// # Backends
//
// The vector backend (github.com/gogpu/gg) draws curves natively with
// fractional stroke widths. The raster backend flattens curves into
// polygons, rounds stroke widths to whole pixels and draws text at whole
// pixel positions. Open prefers vector and falls back to raster; use
// WithBackend to force one. Both produce PNG output.
//
// # Colors
//
// ParseColor accepts keywords, "#rgb"/"#rrggbb" strings and RGB triples in
// either [0, 1] or 0–255. It never fails: unrecognized input yields black.
//
// # Arcs
//
// ArcBetween always draws the minor arc (sweep at most π) between two
// directions, whichever order they are given in. MinorArc exposes the same
// computation.
package sketch

// Version is the current version of the library.
const Version = "0.1.0"
