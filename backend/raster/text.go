package raster

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sketch/backend"
)

// Measure returns the advance width and font extents of s at size.
func (b *Backend) Measure(s string, size float64) backend.TextBox {
	face, err := b.face(size)
	if err != nil {
		return backend.TextBox{}
	}
	m := face.Metrics()
	return backend.TextBox{
		Width:   fromFixed(font.MeasureString(face, s)),
		Ascent:  fromFixed(m.Ascent),
		Descent: fromFixed(m.Descent),
	}
}

// Text draws s anchored at the pixel point at. The pen snaps to whole
// pixels.
func (b *Backend) Text(s string, anchor backend.Anchor, at backend.Point, size float64, st backend.Style) error {
	if b.img == nil {
		return backend.ErrNotInitialized
	}
	if s == "" {
		return nil
	}
	face, err := b.face(size)
	if err != nil {
		return err
	}

	p := backend.Baseline(anchor, at, b.Measure(s, size))
	d := &font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(toNRGBA(st.Color, st.Opacity)),
		Face: face,
		Dot:  fixed.P(int(math.Round(p.X)), int(math.Round(p.Y))),
	}
	d.DrawString(s)
	return nil
}

// face returns the cached face for size.
func (b *Backend) face(size float64) (font.Face, error) {
	if b.font == nil {
		return nil, backend.ErrNotInitialized
	}
	if f, ok := b.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(b.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: font face at %vpt: %w", size, err)
	}
	b.faces[size] = f
	return f, nil
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
