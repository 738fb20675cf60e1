package sketch

import (
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"

	"github.com/gogpu/sketch/backend"
)

// Color is an RGB color with each channel in [0, 1].
// Values stored in a PaintState are always in this canonical form.
type Color struct {
	R, G, B float64
}

// ColorInput is anything ParseColor accepts: Name, Hex, FloatTriple,
// ByteTriple or a Color.
type ColorInput interface {
	colorInput()
}

// Name is a color keyword such as "red" or "darkblue". Hex strings are
// accepted too.
type Name string

// Hex is a "#rgb" or "#rrggbb" string. Keywords are accepted too.
type Hex string

// FloatTriple is an RGB triple in [0, 1]. If any component exceeds 1 the
// whole triple is read as 0–255 values instead.
type FloatTriple [3]float64

// ByteTriple is an RGB triple in 0–255.
type ByteTriple [3]int

func (Name) colorInput()        {}
func (Hex) colorInput()         {}
func (FloatTriple) colorInput() {}
func (ByteTriple) colorInput()  {}
func (Color) colorInput()       {}

// RGB creates a color from components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
	Red   = RGB(1, 0, 0)
	Green = RGB(0, 1, 0)
	Blue  = RGB(0, 0, 1)
)

// namedColors is the guaranteed keyword table. It is consulted before the
// extended CSS table, so these keywords keep their values even where CSS
// defines them differently (green, gray, darkblue).
var namedColors = map[string]Color{
	"black":    RGB(0, 0, 0),
	"white":    RGB(1, 1, 1),
	"red":      RGB(1, 0, 0),
	"green":    RGB(0, 1, 0),
	"blue":     RGB(0, 0, 1),
	"darkblue": RGB(0.06, 0.06, 0.5),
	"navy":     RGB(0, 0, 0.5),
	"yellow":   RGB(1, 1, 0),
	"gray":     RGB(0.5, 0.5, 0.5),
}

// ParseColor resolves in to a canonical Color. It never fails: input that
// cannot be understood yields black.
//
// Strings are trimmed and matched case-insensitively against the keyword
// table, then parsed as "#rgb" or "#rrggbb", then looked up among the
// CSS/SVG color names.
func ParseColor(in ColorInput) Color {
	switch v := in.(type) {
	case Color:
		return v.clamped()
	case FloatTriple:
		if v[0] > 1 || v[1] > 1 || v[2] > 1 {
			return Color{R: v[0] / 255, G: v[1] / 255, B: v[2] / 255}.clamped()
		}
		return Color{R: v[0], G: v[1], B: v[2]}.clamped()
	case ByteTriple:
		return Color{
			R: float64(v[0]) / 255,
			G: float64(v[1]) / 255,
			B: float64(v[2]) / 255,
		}.clamped()
	case Name:
		return parseColorString(string(v))
	case Hex:
		return parseColorString(string(v))
	default:
		return Black
	}
}

func parseColorString(s string) Color {
	key := cases.Fold().String(strings.TrimSpace(s))

	if c, ok := namedColors[key]; ok {
		return c
	}
	if c, ok := parseHex(key); ok {
		return c
	}
	if c, ok := colornames.Map[key]; ok {
		return Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}
	}
	return Black
}

// parseHex parses "#rgb" and "#rrggbb". Each digit of the short form is
// doubled.
func parseHex(s string) (Color, bool) {
	if !strings.HasPrefix(s, "#") {
		return Color{}, false
	}
	s = s[1:]

	var r, g, b uint32
	switch len(s) {
	case 3:
		ok := hexDigits(s[0:1], &r) && hexDigits(s[1:2], &g) && hexDigits(s[2:3], &b)
		if !ok {
			return Color{}, false
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		ok := hexDigits(s[0:2], &r) && hexDigits(s[2:4], &g) && hexDigits(s[4:6], &b)
		if !ok {
			return Color{}, false
		}
	default:
		return Color{}, false
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}, true
}

// hexDigits is a helper for hex parsing
func hexDigits(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// NRGBA converts c to the standard library color type with the given
// opacity in [0, 1].
func (c Color) NRGBA(opacity float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(clamp01(c.R) * 255)),
		G: uint8(math.Round(clamp01(c.G) * 255)),
		B: uint8(math.Round(clamp01(c.B) * 255)),
		A: uint8(math.Round(clamp01(opacity) * 255)),
	}
}

func (c Color) clamped() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

func (c Color) backend() backend.Color {
	return backend.Color(c)
}

// clamp01 restricts x to [0, 1]. NaN maps to 0.
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
