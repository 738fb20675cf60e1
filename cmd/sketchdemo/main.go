// Command sketchdemo draws an annotated unit circle with the sketch package.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/gogpu/sketch"
)

func main() {
	var (
		width   = flag.Int("width", 600, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "sketch.png", "output file")
		backend = flag.String("backend", "", "force a backend (vector or raster)")
		angle   = flag.Float64("angle", 50, "marked angle in degrees")
	)
	flag.Parse()

	var opts []sketch.Option
	if *backend != "" {
		opts = append(opts, sketch.WithBackend(*backend))
	}

	radius := 0.4 * float64(min(*width, *height))
	theta := *angle * math.Pi / 180

	err := sketch.Draw(*output, *width, *height, func(s *sketch.Session) error {
		return drawUnitCircle(s, radius, theta)
	}, opts...)
	if err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	log.Printf("Sketch saved to %s (%dx%d)\n", *output, *width, *height)
}

// drawUnitCircle draws the circle, both axes, the point at theta with its
// projections and the marked angle. Logical y grows downwards, so the
// point above the x axis has a negative y.
func drawUnitCircle(s *sketch.Session, radius, theta float64) error {
	p := sketch.Pt(radius*math.Cos(theta), -radius*math.Sin(theta))
	axis := radius * 1.15

	steps := []func() error{
		func() error { return s.Background(sketch.Name("ivory")) },

		// Axes
		func() error { return s.SetColor(sketch.Name("gray")) },
		func() error { return s.SetLineWidth(1) },
		func() error { return s.Line(sketch.Pt(-axis, 0), sketch.Pt(axis, 0)) },
		func() error { return s.Line(sketch.Pt(0, -axis), sketch.Pt(0, axis)) },
		func() error { return s.Label("x", sketch.AnchorW, sketch.Pt(axis+4, 0), 0) },
		func() error { return s.Label("y", sketch.AnchorN, sketch.Pt(0, -axis-4), 0) },

		// Circle
		func() error { return s.SetColor(sketch.Name("darkblue")) },
		func() error { return s.SetLineWidth(2.5) },
		func() error { return s.Circle(sketch.O, radius, sketch.Stroke) },

		// Radius and projections
		func() error { return s.SetColor(sketch.Hex("#c0392b")) },
		func() error { return s.Line(sketch.O, p) },
		func() error { return s.SetDash(sketch.DashDash) },
		func() error { return s.SetLineWidth(1.5) },
		func() error { return s.Line(p, sketch.Pt(p.X, 0)) },
		func() error { return s.Line(p, sketch.Pt(0, p.Y)) },
		func() error { return s.ClearDash() },

		// Point and angle
		func() error { return s.SetOpacity(0.7) },
		func() error { return s.Circle(p, 6, sketch.FillStroke) },
		func() error { return s.SetOpacity(1) },
		func() error { return s.SetColor(sketch.Name("black")) },
		func() error { return s.ArcBetween(sketch.O, sketch.Pt(radius/4, 0), p) },
		func() error { return s.LabelAngle("θ", -theta/2, sketch.O, radius/4+14, 0) },
		func() error { return s.LabelAngle("P", -theta, p, 18, 0) },
		func() error { return s.Label("cos θ", sketch.AnchorS, sketch.Pt(p.X, 4), 12) },
		func() error { return s.Label("sin θ", sketch.AnchorE, sketch.Pt(-6, p.Y), 12) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
