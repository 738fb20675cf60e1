package sketch

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/sketch/backend"
)

// Paint defaults applied whenever a session opens or closes.
const (
	DefaultOpacity   = 1.0
	DefaultLineWidth = 2.0

	// MinLineWidth is the smallest stroke width SetLineWidth accepts;
	// smaller values are raised to it.
	MinLineWidth = 0.1
)

// Named dash styles accepted by Session.SetDash.
const (
	DashSolid = "solid"
	DashDot   = "dot"
	DashDash  = "dash"
)

// dashStyles maps named styles to their on/off patterns.
var dashStyles = map[string][]float64{
	DashDot:  {1.5, 3.0},
	DashDash: {6.0, 4.0},
}

// PaintState is the style shared by every drawing command of a session.
type PaintState struct {
	Color     Color
	Opacity   float64
	LineWidth float64
	// Dash holds alternating on/off lengths; nil means solid.
	Dash []float64
}

// DefaultPaintState returns black, fully opaque, 2-unit solid strokes.
func DefaultPaintState() PaintState {
	return PaintState{
		Color:     Black,
		Opacity:   DefaultOpacity,
		LineWidth: DefaultLineWidth,
	}
}

// Clone returns a copy of p that does not share the dash slice.
func (p PaintState) Clone() PaintState {
	p.Dash = slices.Clone(p.Dash)
	return p
}

// Style converts p to the form backends consume.
func (p PaintState) Style() backend.Style {
	return backend.Style{
		Color:     p.Color.backend(),
		Opacity:   p.Opacity,
		LineWidth: p.LineWidth,
		Dash:      p.Dash,
	}
}

func (p *PaintState) setOpacity(a float64) {
	p.Opacity = clamp01(a)
}

func (p *PaintState) setLineWidth(w float64) {
	switch {
	case math.IsInf(w, 1):
		return
	case !(w >= MinLineWidth):
		w = MinLineWidth
	}
	p.LineWidth = w
}

// setDashStyle applies a named style. The empty string, "none" and "solid"
// clear the pattern.
func (p *PaintState) setDashStyle(style string) error {
	switch style {
	case "", "none", DashSolid:
		p.Dash = nil
		return nil
	}
	pattern, ok := dashStyles[style]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidDashStyle, style)
	}
	p.Dash = slices.Clone(pattern)
	return nil
}

// setDashPattern applies explicit on/off lengths. No lengths clears the
// pattern; every length must be positive and finite.
func (p *PaintState) setDashPattern(lengths []float64) error {
	if len(lengths) == 0 {
		p.Dash = nil
		return nil
	}
	for _, l := range lengths {
		if !(l > 0) || math.IsInf(l, 0) {
			return fmt.Errorf("%w: pattern %v", ErrInvalidDashStyle, lengths)
		}
	}
	p.Dash = slices.Clone(lengths)
	return nil
}
