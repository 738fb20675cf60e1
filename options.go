package sketch

import (
	"math/rand/v2"
)

// DefaultFontSize is the label size, in points, used when a label command
// is given a non-positive size.
const DefaultFontSize = 16.0

// Option configures a Session during Open.
// Use functional options to customize session behavior.
//
// Example:
//
//	// Default: vector backend, raster fallback
//	s, err := sketch.Open("out.png", 400, 300)
//
//	// Force the raster backend with smoother curves
//	s, err := sketch.Open("out.png", 400, 300,
//		sketch.WithBackend(backend.BackendRaster),
//		sketch.WithCurveSamples(120))
type Option func(*options)

// options holds optional configuration for Session creation.
type options struct {
	backends     []string
	curveSamples int
	font         []byte
	fontSize     float64
	rng          *rand.Rand
}

// defaultOptions returns the default session options.
func defaultOptions() options {
	return options{
		backends: nil, // Registry priority order
		fontSize: DefaultFontSize,
	}
}

// WithBackend restricts backend selection to the named backends, tried in
// order. Open fails with ErrBackendUnavailable if none of them initializes.
func WithBackend(names ...string) Option {
	return func(o *options) {
		o.backends = names
	}
}

// WithCurveSamples sets how many uniform parameter steps the raster backend
// uses to flatten a cubic Bézier curve. Finer sampling trades CPU for
// smoother curves. Non-positive values keep the default of 60.
func WithCurveSamples(n int) Option {
	return func(o *options) {
		o.curveSamples = n
	}
}

// WithFont sets TrueType/OpenType data used for labels. The default is
// Go Regular.
func WithFont(ttf []byte) Option {
	return func(o *options) {
		o.font = ttf
	}
}

// WithFontSize sets the label size used when a label command is given a
// non-positive size.
func WithFontSize(points float64) Option {
	return func(o *options) {
		if points > 0 {
			o.fontSize = points
		}
	}
}

// WithRand sets the random source used by RandomColor. The default is the
// process-wide generator of math/rand/v2.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}
