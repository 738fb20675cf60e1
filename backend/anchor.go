package backend

import "fmt"

// Anchor selects which side of a label its reference point sits on.
type Anchor uint8

const (
	// AnchorW starts the label at the point, baseline through it.
	AnchorW Anchor = iota
	// AnchorE ends the label at the point, baseline through it.
	AnchorE
	// AnchorN centers the label horizontally and places it above the point.
	AnchorN
	// AnchorS centers the label horizontally and places it below the point.
	AnchorS
	// AnchorC centers the label on the point in both directions.
	AnchorC
)

// String returns the compass letter of the anchor.
func (a Anchor) String() string {
	switch a {
	case AnchorW:
		return "W"
	case AnchorE:
		return "E"
	case AnchorN:
		return "N"
	case AnchorS:
		return "S"
	case AnchorC:
		return "C"
	default:
		return fmt.Sprintf("Anchor(%d)", a)
	}
}

// ParseAnchor converts a compass letter ("N", "S", "E", "W", "C") into an
// Anchor. Unknown letters fall back to AnchorW, the unshifted placement.
func ParseAnchor(s string) Anchor {
	switch s {
	case "N", "n":
		return AnchorN
	case "S", "s":
		return AnchorS
	case "E", "e":
		return AnchorE
	case "C", "c":
		return AnchorC
	default:
		return AnchorW
	}
}

// TextBox is the measured extent of a run of text.
// Ascent and Descent are both positive distances from the baseline.
type TextBox struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns Ascent + Descent.
func (b TextBox) Height() float64 {
	return b.Ascent + b.Descent
}

// Baseline returns the pen position (left end of the baseline, pixel space)
// at which text measured as box must be drawn so that it sits at anchor
// relative to at. Both backends position text through this function, so
// "N" means "above the point" regardless of a backend's text origin.
func Baseline(anchor Anchor, at Point, box TextBox) Point {
	x, y := at.X, at.Y
	switch anchor {
	case AnchorN:
		x -= box.Width / 2
		y -= box.Descent
	case AnchorS:
		x -= box.Width / 2
		y += box.Ascent
	case AnchorE:
		x -= box.Width
	case AnchorC:
		x -= box.Width / 2
		y += box.Height()/2 - box.Descent
	}
	return Point{X: x, Y: y}
}
