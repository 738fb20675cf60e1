package backend

import (
	"errors"
	"io"
	"log/slog"
)

// Common backend errors.
var (
	// ErrBackendUnavailable is returned when no registered backend could be
	// constructed and initialized.
	ErrBackendUnavailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// DefaultCurveSamples is the number of uniform parameter steps used to
// flatten a cubic Bézier curve into a polyline.
const DefaultCurveSamples = 60

// Color is an opaque RGB color with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// Point is a position in pixel space: origin at the top-left corner,
// x to the right, y down.
type Point struct {
	X, Y float64
}

// Style is the paint state a backend applies to a single fill or stroke.
type Style struct {
	Color     Color
	Opacity   float64
	LineWidth float64
	// Dash holds alternating on/off lengths. Empty means solid.
	Dash []float64
}

// Dashed reports whether strokes with this style are dashed.
func (s Style) Dashed() bool {
	return len(s.Dash) > 0
}

// Config carries the per-surface settings passed to Init.
type Config struct {
	Width  int
	Height int

	// CurveSamples overrides DefaultCurveSamples when positive.
	CurveSamples int

	// Font is TrueType/OpenType data for labels. Nil selects Go Regular.
	Font []byte

	// Logger receives backend diagnostics. Nil disables logging.
	Logger *slog.Logger
}

// Samples returns the effective curve sample count.
func (c Config) Samples() int {
	if c.CurveSamples > 0 {
		return c.CurveSamples
	}
	return DefaultCurveSamples
}

// Backend is the drawing capability a session renders through.
// Implementations own a single surface sized by Init.
//
// Backends must be registered via Register() and are selected via
// Get(), Default() or Open().
type Backend interface {
	// Name returns the backend identifier (e.g., "vector", "raster").
	Name() string

	// Init allocates the drawing surface.
	// This must be called before any drawing operation.
	Init(cfg Config) error

	// Background paints the whole surface with an opaque color.
	Background(c Color) error

	// Fill paints the interior of s. Open shapes (Line, Cubic, Arc) have no
	// interior and paint nothing.
	Fill(s Shape, st Style) error

	// Stroke paints the outline of s using the width and dash of st.
	Stroke(s Shape, st Style) error

	// Measure returns the bounding box of text at the given font size.
	Measure(text string, size float64) TextBox

	// Text draws text positioned relative to at according to anchor.
	Text(text string, anchor Anchor, at Point, size float64, st Style) error

	// Finalize encodes the surface as PNG into w.
	Finalize(w io.Writer) error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()
}
