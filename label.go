package sketch

import (
	"math"

	"github.com/gogpu/sketch/backend"
)

// Anchor selects which side of a label its position sits on.
type Anchor = backend.Anchor

// Label anchors, named after compass points. N keeps the label above the
// point and S below it on every backend.
const (
	AnchorW = backend.AnchorW
	AnchorE = backend.AnchorE
	AnchorN = backend.AnchorN
	AnchorS = backend.AnchorS
	AnchorC = backend.AnchorC
)

// Label draws text at pos in the current color and opacity, placed
// according to anchor. A non-positive size uses the session font size.
func (s *Session) Label(text string, anchor Anchor, pos Place, size float64) error {
	if err := s.check(); err != nil {
		return err
	}
	return s.be.Text(text, anchor, s.pixel(pos), s.size(size), s.paint.Style())
}

// LabelAngle draws text centered on pos + offset·(cos angle, sin angle).
// It is used to annotate a point without covering it.
func (s *Session) LabelAngle(text string, angle float64, pos Place, offset, size float64) error {
	if err := s.check(); err != nil {
		return err
	}
	at := logical(pos).Polar(offset, angle)
	return s.be.Text(text, AnchorC, s.pixel(at), s.size(size), s.paint.Style())
}

// TextSize returns the width and height text would occupy at size.
func (s *Session) TextSize(text string, size float64) (width, height float64, err error) {
	if err := s.check(); err != nil {
		return 0, 0, err
	}
	box := s.be.Measure(text, s.size(size))
	return box.Width, box.Height(), nil
}

func (s *Session) size(points float64) float64 {
	if !(points > 0) || math.IsInf(points, 1) {
		return s.fontSize
	}
	return points
}
