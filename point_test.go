package sketch

import (
	"math"
	"testing"
)

func TestToPixelOrigin(t *testing.T) {
	sizes := [][2]int{{200, 200}, {1, 1}, {640, 480}, {3, 7}}
	for _, s := range sizes {
		w, h := s[0], s[1]
		want := PixelPoint{X: float64(w) / 2, Y: float64(h) / 2}

		if got := ToPixel(Pt(0, 0), w, h); got != want {
			t.Errorf("ToPixel((0,0), %d, %d) = %v, want %v", w, h, got, want)
		}
		if got := ToPixel(O, w, h); got != want {
			t.Errorf("ToPixel(O, %d, %d) = %v, want %v", w, h, got, want)
		}
		if got := ToPixel(nil, w, h); got != want {
			t.Errorf("ToPixel(nil, %d, %d) = %v, want %v", w, h, got, want)
		}
	}
}

func TestToPixel(t *testing.T) {
	tests := []struct {
		p    Point
		want PixelPoint
	}{
		{Pt(10, 20), PixelPoint{110, 70}},
		{Pt(-100, -50), PixelPoint{0, 0}},
		{Pt(100, 50), PixelPoint{200, 100}},
		{Pt(0.5, -0.25), PixelPoint{100.5, 49.75}},
	}
	for _, tt := range tests {
		if got := ToPixel(tt.p, 200, 100); got != tt.want {
			t.Errorf("ToPixel(%v, 200, 100) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestOriginIsNotAPoint(t *testing.T) {
	if _, ok := O.(Point); ok {
		t.Fatal("O must not be a Point")
	}
	if logical(O) != (Point{}) {
		t.Errorf("logical(O) = %v, want (0,0)", logical(O))
	}
}

func TestPointArithmetic(t *testing.T) {
	if got := Pt(1, 2).Add(Pt(3, 4)); got != Pt(4, 6) {
		t.Errorf("Add = %v, want (4,6)", got)
	}
	if got := Pt(1, 2).Sub(Pt(3, 5)); got != Pt(-2, -3) {
		t.Errorf("Sub = %v, want (-2,-3)", got)
	}
	got := Pt(1, 1).Polar(2, math.Pi/2)
	if math.Abs(got.X-1) > 1e-12 || math.Abs(got.Y-3) > 1e-12 {
		t.Errorf("Polar = %v, want (1,3)", got)
	}
}
