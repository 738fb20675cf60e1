// Package raster implements the "raster" backend: every shape is flattened
// into polygons and scan converted with golang.org/x/image/vector onto an
// *image.RGBA.
//
// There is no curve primitive underneath, so cubic Béziers become a fixed
// polyline of backend.Config.Samples() uniform parameter steps, and circles
// and arcs are cut into short chords. Strokes are synthesized as one quad
// per segment plus round joins, with the width rounded to whole pixels.
//
// Importing this package registers the backend:
//
//	import _ "github.com/gogpu/sketch/backend/raster"
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/vector"

	"github.com/gogpu/sketch/backend"
)

// chord is the longest chord, in pixels, used to flatten circles and arcs.
const chord = 1.0

// init registers the raster backend on package import.
func init() {
	backend.Register(backend.BackendRaster, func() backend.Backend {
		return New()
	})
}

// Backend draws onto an in-memory RGBA image.
type Backend struct {
	img     *image.RGBA
	z       *vector.Rasterizer
	font    *opentype.Font
	faces   map[float64]font.Face
	samples int
	log     *slog.Logger
}

var _ backend.Backend = (*Backend)(nil)

// New creates an uninitialized raster backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendRaster
}

// Init allocates the image and parses the label font.
func (b *Backend) Init(cfg backend.Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("raster: invalid surface size %dx%d", cfg.Width, cfg.Height)
	}

	data := cfg.Font
	if data == nil {
		data = goregular.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("raster: parse font: %w", err)
	}

	b.log = cfg.Logger
	if b.log == nil {
		b.log = slog.New(slog.DiscardHandler)
	}
	b.img = image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	b.z = vector.NewRasterizer(cfg.Width, cfg.Height)
	b.font = f
	b.faces = make(map[float64]font.Face)
	b.samples = cfg.Samples()

	b.log.Debug("raster: surface ready", "width", cfg.Width, "height", cfg.Height, "curveSamples", b.samples)
	return nil
}

// Image returns the surface being drawn on.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// Background replaces every pixel with c.
func (b *Backend) Background(c backend.Color) error {
	if b.img == nil {
		return backend.ErrNotInitialized
	}
	src := image.NewUniform(toNRGBA(c, 1))
	draw.Draw(b.img, b.img.Bounds(), src, image.Point{}, draw.Src)
	return nil
}

// Fill fills circles and rectangles. Lines, curves and arcs are open and
// paint nothing.
func (b *Backend) Fill(s backend.Shape, st backend.Style) error {
	if b.img == nil {
		return backend.ErrNotInitialized
	}

	var poly []backend.Point
	switch s := s.(type) {
	case backend.Circle:
		poly = backend.FlattenCircle(s, chord)
	case backend.Rect:
		poly = s.Corners()
	default:
		return nil
	}
	b.paint([][]backend.Point{poly}, st)
	return nil
}

// Stroke strokes the outline of s with a whole-pixel width.
func (b *Backend) Stroke(s backend.Shape, st backend.Style) error {
	if b.img == nil {
		return backend.ErrNotInitialized
	}

	pieces := backend.DashPolyline(backend.Outline(s, chord, b.samples), st.Dash)
	b.paint(strokePolygons(pieces, float64(PixelWidth(st.LineWidth))), st)
	return nil
}

// Finalize encodes the image as PNG.
func (b *Backend) Finalize(w io.Writer) error {
	if b.img == nil {
		return backend.ErrNotInitialized
	}
	if err := png.Encode(w, b.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// Close drops the image and font faces. Close is idempotent.
func (b *Backend) Close() {
	for size, f := range b.faces {
		if err := f.Close(); err != nil {
			b.log.Warn("raster: close face", "size", size, "err", err)
		}
	}
	b.faces = nil
	b.img = nil
	b.z = nil
	b.font = nil
}

// paint scan converts polys in one pass and composites st's color over the
// image. Overlapping polygons share one orientation, so their coverage
// saturates instead of cancelling.
func (b *Backend) paint(polys [][]backend.Point, st backend.Style) {
	bounds := b.img.Bounds()
	b.z.Reset(bounds.Dx(), bounds.Dy())

	n := 0
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		b.z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			b.z.LineTo(float32(p.X), float32(p.Y))
		}
		b.z.ClosePath()
		n++
	}
	if n == 0 {
		return
	}

	b.z.DrawOp = draw.Over
	b.z.Draw(b.img, bounds, image.NewUniform(toNRGBA(st.Color, st.Opacity)), image.Point{})
}

// toNRGBA converts a color and opacity to 8-bit non-premultiplied form.
func toNRGBA(c backend.Color, opacity float64) color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(opacity),
	}
}

func to8(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(math.Round(v * 255))
	}
}
