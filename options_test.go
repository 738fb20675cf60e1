package sketch

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gogpu/sketch/backend"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.backends != nil {
		t.Errorf("backends = %v, want nil", o.backends)
	}
	if o.fontSize != DefaultFontSize {
		t.Errorf("fontSize = %v, want %v", o.fontSize, DefaultFontSize)
	}
	if o.curveSamples != 0 || o.font != nil || o.rng != nil {
		t.Errorf("unexpected defaults: %+v", o)
	}
}

func TestOptions(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	o := defaultOptions()
	for _, opt := range []Option{
		WithBackend(backend.BackendRaster, backend.BackendVector),
		WithCurveSamples(120),
		WithFont([]byte{1, 2, 3}),
		WithFontSize(24),
		WithRand(rng),
	} {
		opt(&o)
	}

	if !slices.Equal(o.backends, []string{backend.BackendRaster, backend.BackendVector}) {
		t.Errorf("backends = %v", o.backends)
	}
	if o.curveSamples != 120 {
		t.Errorf("curveSamples = %d, want 120", o.curveSamples)
	}
	if len(o.font) != 3 {
		t.Errorf("font = %v", o.font)
	}
	if o.fontSize != 24 {
		t.Errorf("fontSize = %v, want 24", o.fontSize)
	}
	if o.rng != rng {
		t.Error("rng not set")
	}
}

func TestWithFontSizeIgnoresNonPositive(t *testing.T) {
	o := defaultOptions()
	WithFontSize(0)(&o)
	WithFontSize(-3)(&o)
	if o.fontSize != DefaultFontSize {
		t.Errorf("fontSize = %v, want %v", o.fontSize, DefaultFontSize)
	}
}
