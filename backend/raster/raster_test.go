package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/sketch/backend"
)

var (
	black = backend.Color{}
	white = backend.Color{R: 1, G: 1, B: 1}
	blue  = backend.Color{B: 1}
)

func newTestBackend(t *testing.T, w, h int) *Backend {
	t.Helper()
	b := New()
	if err := b.Init(backend.Config{Width: w, Height: h}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(b.Close)
	if err := b.Background(white); err != nil {
		t.Fatalf("Background() error = %v", err)
	}
	return b
}

func solid(c backend.Color, width float64) backend.Style {
	return backend.Style{Color: c, Opacity: 1, LineWidth: width}
}

func rgba(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestBackendName(t *testing.T) {
	if got := New().Name(); got != backend.BackendRaster {
		t.Errorf("Name() = %q, want %q", got, backend.BackendRaster)
	}
}

func TestInitInvalidSize(t *testing.T) {
	if err := New().Init(backend.Config{Width: 0, Height: 10}); err == nil {
		t.Error("Init(0x10) error = nil, want error")
	}
}

func TestNotInitialized(t *testing.T) {
	b := New()
	if err := b.Background(white); !errors.Is(err, backend.ErrNotInitialized) {
		t.Errorf("Background() error = %v, want ErrNotInitialized", err)
	}
	if err := b.Stroke(backend.Line{}, solid(black, 1)); !errors.Is(err, backend.ErrNotInitialized) {
		t.Errorf("Stroke() error = %v, want ErrNotInitialized", err)
	}
	if err := b.Finalize(&bytes.Buffer{}); !errors.Is(err, backend.ErrNotInitialized) {
		t.Errorf("Finalize() error = %v, want ErrNotInitialized", err)
	}
}

func TestPixelWidth(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{2.0, 2},
		{2.4, 2},
		{2.6, 3},
		{0.2, 1},
		{0, 1},
		{7.5, 8},
	}
	for _, tt := range tests {
		if got := PixelWidth(tt.in); got != tt.want {
			t.Errorf("PixelWidth(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFillCircle(t *testing.T) {
	b := newTestBackend(t, 200, 200)

	if err := b.Fill(backend.Circle{Center: backend.Point{X: 100, Y: 100}, Radius: 50}, solid(blue, 2)); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}

	img := b.Image()
	if got := rgba(img, 100, 100); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("center = %v, want opaque blue", got)
	}
	if got := rgba(img, 0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("corner = %v, want white", got)
	}
	if got := rgba(img, 100, 155); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("outside = %v, want white", got)
	}
}

func TestFillOpenShapesPaintNothing(t *testing.T) {
	b := newTestBackend(t, 50, 50)

	shapes := []backend.Shape{
		backend.Line{From: backend.Point{X: 0, Y: 0}, To: backend.Point{X: 50, Y: 50}},
		backend.Arc{Center: backend.Point{X: 25, Y: 25}, Radius: 10, Start: 0, End: 3},
	}
	for _, s := range shapes {
		if err := b.Fill(s, solid(black, 4)); err != nil {
			t.Fatalf("Fill(%T) error = %v", s, err)
		}
	}
	if got := rgba(b.Image(), 25, 25); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel = %v, want white", got)
	}
}

func TestStrokeLine(t *testing.T) {
	b := newTestBackend(t, 100, 100)

	line := backend.Line{From: backend.Point{X: 10, Y: 50}, To: backend.Point{X: 90, Y: 50}}
	if err := b.Stroke(line, solid(black, 2)); err != nil {
		t.Fatalf("Stroke() error = %v", err)
	}

	img := b.Image()
	for _, y := range []int{49, 50} {
		if got := rgba(img, 50, y); got != (color.RGBA{0, 0, 0, 255}) {
			t.Errorf("pixel (50,%d) = %v, want black", y, got)
		}
	}
	for _, y := range []int{47, 52} {
		if got := rgba(img, 50, y); got != (color.RGBA{255, 255, 255, 255}) {
			t.Errorf("pixel (50,%d) = %v, want white", y, got)
		}
	}
}

func TestStrokeDashed(t *testing.T) {
	b := newTestBackend(t, 100, 100)

	st := solid(black, 2)
	st.Dash = []float64{10, 10}
	line := backend.Line{From: backend.Point{X: 0, Y: 50}, To: backend.Point{X: 100, Y: 50}}
	if err := b.Stroke(line, st); err != nil {
		t.Fatalf("Stroke() error = %v", err)
	}

	img := b.Image()
	if got := rgba(img, 5, 50); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("dash pixel = %v, want black", got)
	}
	if got := rgba(img, 15, 50); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("gap pixel = %v, want white", got)
	}
	if got := rgba(img, 25, 50); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("second dash pixel = %v, want black", got)
	}
}

func TestStrokeOpacity(t *testing.T) {
	b := newTestBackend(t, 40, 40)

	st := solid(black, 10)
	st.Opacity = 0.5
	if err := b.Fill(backend.Rect{Min: backend.Point{X: 0, Y: 0}, Width: 40, Height: 40}, st); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	got := rgba(b.Image(), 20, 20)
	if got.R < 120 || got.R > 135 || got.A != 255 {
		t.Errorf("half-black over white = %v, want ~gray 127", got)
	}
}

func TestStrokeCubicAndEmptyArc(t *testing.T) {
	b := newTestBackend(t, 100, 100)

	c := backend.Cubic{
		P0: backend.Point{X: 10, Y: 90},
		P1: backend.Point{X: 10, Y: 10},
		P2: backend.Point{X: 90, Y: 10},
		P3: backend.Point{X: 90, Y: 90},
	}
	if err := b.Stroke(c, solid(black, 3)); err != nil {
		t.Fatalf("Stroke(cubic) error = %v", err)
	}
	// The curve passes through (50, 30) at t = 0.5.
	if got := rgba(b.Image(), 50, 30); got.R > 64 {
		t.Errorf("curve midpoint = %v, want dark", got)
	}

	if err := b.Stroke(backend.Arc{Center: backend.Point{X: 50, Y: 50}}, solid(black, 3)); err != nil {
		t.Errorf("Stroke(empty arc) error = %v", err)
	}
}

func TestText(t *testing.T) {
	b := newTestBackend(t, 120, 60)

	box := b.Measure("Hello", 16)
	if box.Width <= 0 || box.Ascent <= 0 || box.Descent <= 0 {
		t.Fatalf("Measure() = %+v, want positive extents", box)
	}

	if err := b.Text("Hello", backend.AnchorW, backend.Point{X: 10, Y: 40}, 16, solid(black, 1)); err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if !anyInk(b.Image(), image.Rect(10, 20, 10+int(box.Width)+1, 42)) {
		t.Error("Text() left the label area blank")
	}
}

func TestFinalizeWritesPNG(t *testing.T) {
	b := newTestBackend(t, 30, 20)

	var buf bytes.Buffer
	if err := b.Finalize(&buf); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(30, 20) {
		t.Errorf("size = %v, want 30x20", got)
	}
}

func anyInk(img image.Image, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c := rgba(img, x, y); c.R < 200 {
				return true
			}
		}
	}
	return false
}
