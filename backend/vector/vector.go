// Package vector implements the "vector" backend on top of github.com/gogpu/gg.
//
// Circles, rectangles, lines, cubic curves and arcs are handed to gg as
// paths and rendered at full precision with fractional stroke widths and
// alpha. gg keeps a dash pattern on its paint state but strokes solid, so
// dashed strokes are split along arc length first (see backend.DashPolyline)
// and every dash is then stroked natively.
//
// Importing this package registers the backend:
//
//	import _ "github.com/gogpu/sketch/backend/vector"
package vector

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sketch/backend"
)

// dashChord is the longest chord, in pixels, used when a curved outline is
// flattened for dashing.
const dashChord = 0.25

// init registers the vector backend on package import.
func init() {
	backend.Register(backend.BackendVector, func() backend.Backend {
		return New()
	})
}

// Backend draws onto a gg.Context.
type Backend struct {
	dc      *gg.Context
	source  *text.FontSource
	faces   map[float64]text.Face
	samples int
	log     *slog.Logger
}

var _ backend.Backend = (*Backend)(nil)

// New creates an uninitialized vector backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendVector
}

// Init allocates a cfg.Width x cfg.Height context and loads the label font.
func (b *Backend) Init(cfg backend.Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("vector: invalid surface size %dx%d", cfg.Width, cfg.Height)
	}

	data := cfg.Font
	if data == nil {
		data = goregular.TTF
	}
	source, err := text.NewFontSource(data)
	if err != nil {
		return fmt.Errorf("vector: load font: %w", err)
	}

	b.log = cfg.Logger
	if b.log == nil {
		b.log = slog.New(slog.DiscardHandler)
	}
	b.dc = gg.NewContext(cfg.Width, cfg.Height)
	b.source = source
	b.faces = make(map[float64]text.Face)
	b.samples = cfg.Samples()

	b.log.Debug("vector: surface ready", "width", cfg.Width, "height", cfg.Height, "font", source.Name())
	return nil
}

// Background fills the entire surface with c.
func (b *Backend) Background(c backend.Color) error {
	if b.dc == nil {
		return backend.ErrNotInitialized
	}
	b.dc.ClearWithColor(gg.RGB(c.R, c.G, c.B))
	return nil
}

// Fill fills circles and rectangles. Lines, curves and arcs are open and
// paint nothing.
func (b *Backend) Fill(s backend.Shape, st backend.Style) error {
	if b.dc == nil {
		return backend.ErrNotInitialized
	}
	b.apply(st)
	if !b.trace(s, true) {
		return nil
	}
	return b.dc.Fill()
}

// Stroke strokes the outline of s.
func (b *Backend) Stroke(s backend.Shape, st backend.Style) error {
	if b.dc == nil {
		return backend.ErrNotInitialized
	}
	b.apply(st)

	if st.Dashed() {
		dashes := backend.DashPolyline(backend.Outline(s, dashChord, 4*b.samples), st.Dash)
		if len(dashes) == 0 {
			return nil
		}
		for _, d := range dashes {
			b.dc.MoveTo(d[0].X, d[0].Y)
			for _, p := range d[1:] {
				b.dc.LineTo(p.X, p.Y)
			}
		}
		return b.dc.Stroke()
	}

	if !b.trace(s, false) {
		return nil
	}
	return b.dc.Stroke()
}

// Measure returns the advance width and font extents of s at size.
func (b *Backend) Measure(s string, size float64) backend.TextBox {
	if b.source == nil {
		return backend.TextBox{}
	}
	face := b.face(size)
	m := face.Metrics()
	return backend.TextBox{
		Width:   face.Advance(s),
		Ascent:  m.Ascent,
		Descent: m.Descent,
	}
}

// Text draws s anchored at the pixel point at.
func (b *Backend) Text(s string, anchor backend.Anchor, at backend.Point, size float64, st backend.Style) error {
	if b.dc == nil {
		return backend.ErrNotInitialized
	}
	if s == "" {
		return nil
	}
	b.apply(st)
	b.dc.SetFont(b.face(size))

	p := backend.Baseline(anchor, at, b.Measure(s, size))
	b.dc.DrawString(s, p.X, p.Y)
	return nil
}

// Finalize encodes the surface as PNG.
func (b *Backend) Finalize(w io.Writer) error {
	if b.dc == nil {
		return backend.ErrNotInitialized
	}
	if err := b.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("vector: encode png: %w", err)
	}
	return nil
}

// Close releases the context and font source. Close is idempotent.
func (b *Backend) Close() {
	if b.dc != nil {
		if err := b.dc.Close(); err != nil {
			b.log.Warn("vector: close context", "err", err)
		}
		b.dc = nil
	}
	if b.source != nil {
		if err := b.source.Close(); err != nil {
			b.log.Warn("vector: close font source", "err", err)
		}
		b.source = nil
	}
	b.faces = nil
}

// apply loads st into the context's paint.
func (b *Backend) apply(st backend.Style) {
	b.dc.SetRGBA(st.Color.R, st.Color.G, st.Color.B, st.Opacity)
	b.dc.SetLineWidth(st.LineWidth)
}

// trace appends s to the current path and reports whether anything was
// added. With closedOnly set, open shapes are skipped.
func (b *Backend) trace(s backend.Shape, closedOnly bool) bool {
	switch s := s.(type) {
	case backend.Circle:
		if s.Radius <= 0 {
			return false
		}
		b.dc.DrawCircle(s.Center.X, s.Center.Y, s.Radius)
	case backend.Rect:
		if s.Width == 0 || s.Height == 0 {
			return false
		}
		b.dc.DrawRectangle(s.Min.X, s.Min.Y, s.Width, s.Height)
	case backend.Line:
		if closedOnly {
			return false
		}
		b.dc.DrawLine(s.From.X, s.From.Y, s.To.X, s.To.Y)
	case backend.Cubic:
		if closedOnly {
			return false
		}
		b.dc.MoveTo(s.P0.X, s.P0.Y)
		b.dc.CubicTo(s.P1.X, s.P1.Y, s.P2.X, s.P2.Y, s.P3.X, s.P3.Y)
	case backend.Arc:
		if closedOnly || s.Empty() {
			return false
		}
		b.dc.DrawArc(s.Center.X, s.Center.Y, s.Radius, s.Start, s.End)
	default:
		return false
	}
	return true
}

// face returns the cached face for size.
func (b *Backend) face(size float64) text.Face {
	if f, ok := b.faces[size]; ok {
		return f
	}
	f := b.source.Face(size)
	b.faces[size] = f
	return f
}
