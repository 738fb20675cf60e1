package sketch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"sync/atomic"

	"github.com/gogpu/sketch/backend"
)

// active is the process-wide session slot. Open claims it and Close
// releases it, so at most one Session is active at a time.
var active atomic.Bool

// Action selects which parts of a closed shape are painted.
type Action uint8

// Actions for Circle and Rect. Fill is painted before Stroke so the outline
// stays visible on top.
const (
	Stroke Action = 1 << iota
	Fill

	FillStroke = Fill | Stroke
)

// Session is an open drawing surface bound to one output target and one
// backend. Commands take logical coordinates and use the current
// PaintState.
//
// A Session is not safe for concurrent use. Every command returns
// ErrNoActiveSession once Close has been called.
type Session struct {
	width, height int
	paint         PaintState
	be            backend.Backend
	out           sink
	current       *Point
	fontSize      float64
	rng           *rand.Rand
	log           *slog.Logger
	open          bool
}

// sink is where Close writes the finished image.
type sink struct {
	name   string
	create func() (io.WriteCloser, error)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Open starts a session that writes a width x height PNG to path on Close.
// The file is created when the session closes, not before.
//
// The vector backend is preferred and the raster backend used when it is
// unavailable; WithBackend overrides the choice. The canvas starts white and
// the paint state at DefaultPaintState.
func Open(path string, width, height int, opts ...Option) (*Session, error) {
	out := sink{
		name: path,
		create: func() (io.WriteCloser, error) {
			// #nosec G304 -- output path is provided by the caller
			return os.Create(path)
		},
	}
	return open(out, width, height, opts)
}

// OpenWriter is like Open but encodes the PNG into w on Close.
func OpenWriter(w io.Writer, width, height int, opts ...Option) (*Session, error) {
	out := sink{
		name: fmt.Sprintf("%T", w),
		create: func() (io.WriteCloser, error) {
			return nopWriteCloser{w}, nil
		},
	}
	return open(out, width, height, opts)
}

// Draw opens a session on path, runs fn and closes the session on every
// exit path. A panic in fn is re-raised after the session is released.
// The returned error joins fn's error with the Close error.
//
// Example:
//
//	err := sketch.Draw("circle.png", 200, 200, func(s *sketch.Session) error {
//		if err := s.SetColor(sketch.Name("blue")); err != nil {
//			return err
//		}
//		return s.Circle(sketch.O, 50, sketch.FillStroke)
//	})
func Draw(path string, width, height int, fn func(*Session) error, opts ...Option) error {
	s, err := Open(path, width, height, opts...)
	if err != nil {
		return err
	}
	return scoped(s, fn)
}

// DrawWriter is like Draw but encodes the PNG into w.
func DrawWriter(w io.Writer, width, height int, fn func(*Session) error, opts ...Option) error {
	s, err := OpenWriter(w, width, height, opts...)
	if err != nil {
		return err
	}
	return scoped(s, fn)
}

func scoped(s *Session, fn func(*Session) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			_ = s.Close()
			panic(r)
		}
		// fn may already have closed the session itself.
		if cerr := s.Close(); !errors.Is(cerr, ErrNoActiveSession) {
			err = errors.Join(err, cerr)
		}
	}()
	return fn(s)
}

func open(out sink, width, height int, opts []Option) (*Session, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !active.CompareAndSwap(false, true) {
		return nil, ErrSessionActive
	}

	log := Logger()
	be, err := backend.Open(backend.Config{
		Width:        width,
		Height:       height,
		CurveSamples: o.curveSamples,
		Font:         o.font,
		Logger:       log,
	}, o.backends...)
	if err != nil {
		active.Store(false)
		return nil, fmt.Errorf("sketch: open %s: %w", out.name, err)
	}

	if err := be.Background(White.backend()); err != nil {
		be.Close()
		active.Store(false)
		return nil, fmt.Errorf("sketch: open %s: %w", out.name, err)
	}

	log.Debug("sketch: session opened", "target", out.name, "backend", be.Name(), "width", width, "height", height)

	return &Session{
		width:    width,
		height:   height,
		paint:    DefaultPaintState(),
		be:       be,
		out:      out,
		fontSize: o.fontSize,
		rng:      o.rng,
		log:      log,
		open:     true,
	}, nil
}

// Close writes the image to the session's target, releases the backend
// and resets all session state. The state is torn down even when writing
// fails; the write error is returned.
func (s *Session) Close() error {
	if err := s.check(); err != nil {
		return err
	}

	name := s.be.Name()
	err := s.finalize()
	s.be.Close()
	if err != nil {
		s.log.Warn("sketch: finalize failed", "target", s.out.name, "backend", name, "err", err)
	} else {
		s.log.Debug("sketch: session closed", "target", s.out.name, "backend", name)
	}

	s.be = nil
	s.paint = DefaultPaintState()
	s.current = nil
	s.width, s.height = 0, 0
	s.open = false
	active.Store(false)
	return err
}

func (s *Session) finalize() (err error) {
	w, err := s.out.create()
	if err != nil {
		return fmt.Errorf("sketch: finalize %s: %w", s.out.name, err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("sketch: finalize %s: %w", s.out.name, cerr)
		}
	}()

	if err := s.be.Finalize(w); err != nil {
		return fmt.Errorf("sketch: finalize %s: %w", s.out.name, err)
	}
	return nil
}

// check reports ErrNoActiveSession for a nil or closed session.
func (s *Session) check() error {
	if s == nil || !s.open {
		return ErrNoActiveSession
	}
	return nil
}

// Size returns the canvas size, or zeros once the session is closed.
func (s *Session) Size() (width, height int) {
	if s.check() != nil {
		return 0, 0
	}
	return s.width, s.height
}

// BackendName returns the name of the backend in use, or "" once the
// session is closed.
func (s *Session) BackendName() string {
	if s.check() != nil {
		return ""
	}
	return s.be.Name()
}

// PaintState returns a copy of the current paint state.
func (s *Session) PaintState() (PaintState, error) {
	if err := s.check(); err != nil {
		return PaintState{}, err
	}
	return s.paint.Clone(), nil
}

// Background repaints the whole canvas with c.
func (s *Session) Background(c ColorInput) error {
	if err := s.check(); err != nil {
		return err
	}
	return s.be.Background(ParseColor(c).backend())
}

// SetColor sets the current color. Unrecognized input selects black.
func (s *Session) SetColor(c ColorInput) error {
	if err := s.check(); err != nil {
		return err
	}
	s.paint.Color = ParseColor(c)
	return nil
}

// SetOpacity sets the current opacity, clamped to [0, 1].
func (s *Session) SetOpacity(a float64) error {
	if err := s.check(); err != nil {
		return err
	}
	s.paint.setOpacity(a)
	return nil
}

// SetLineWidth sets the stroke width. Widths below MinLineWidth are raised
// to it.
func (s *Session) SetLineWidth(w float64) error {
	if err := s.check(); err != nil {
		return err
	}
	s.paint.setLineWidth(w)
	return nil
}

// SetDash selects a named dash style: "solid" (or "" or "none") clears the
// pattern, "dot" is (1.5, 3.0) and "dash" is (6.0, 4.0). Other names return
// ErrInvalidDashStyle and leave the pattern unchanged.
func (s *Session) SetDash(style string) error {
	if err := s.check(); err != nil {
		return err
	}
	return s.paint.setDashStyle(style)
}

// SetDashPattern sets explicit alternating on/off lengths. Calling it with
// no lengths clears the pattern.
func (s *Session) SetDashPattern(lengths ...float64) error {
	if err := s.check(); err != nil {
		return err
	}
	return s.paint.setDashPattern(lengths)
}

// ClearDash returns to solid strokes.
func (s *Session) ClearDash() error {
	if err := s.check(); err != nil {
		return err
	}
	s.paint.Dash = nil
	return nil
}

// RandomColor sets the current color from three independent uniform
// samples in [0, 1).
func (s *Session) RandomColor() error {
	if err := s.check(); err != nil {
		return err
	}
	sample := rand.Float64
	if s.rng != nil {
		sample = s.rng.Float64
	}
	s.paint.Color = RGB(sample(), sample(), sample())
	return nil
}

// Move records p as the current point. No drawing command reads it;
// see CurrentPoint.
func (s *Session) Move(p Place) error {
	if err := s.check(); err != nil {
		return err
	}
	pt := logical(p)
	s.current = &pt
	return nil
}

// CurrentPoint returns the point recorded by Move and whether one is set.
func (s *Session) CurrentPoint() (Point, bool, error) {
	if err := s.check(); err != nil {
		return Point{}, false, err
	}
	if s.current == nil {
		return Point{}, false, nil
	}
	return *s.current, true, nil
}

// Circle draws a circle of the given radius around center.
func (s *Session) Circle(center Place, radius float64, action Action) error {
	if err := s.check(); err != nil {
		return err
	}
	return s.draw(backend.Circle{Center: s.pixel(center), Radius: math.Abs(radius)}, action)
}

// Rect draws a width x height rectangle centered on center.
func (s *Session) Rect(center Place, width, height float64, action Action) error {
	if err := s.check(); err != nil {
		return err
	}
	c := s.pixel(center)
	w, h := math.Abs(width), math.Abs(height)
	r := backend.Rect{
		Min:    backend.Point{X: c.X - w/2, Y: c.Y - h/2},
		Width:  w,
		Height: h,
	}
	return s.draw(r, action)
}

// Line strokes a straight line from p1 to p2.
func (s *Session) Line(p1, p2 Place) error {
	if err := s.check(); err != nil {
		return err
	}
	return s.draw(backend.Line{From: s.pixel(p1), To: s.pixel(p2)}, Stroke)
}

// Bezier strokes the cubic Bézier curve with endpoints p0, p3 and control
// points p1, p2.
func (s *Session) Bezier(p0, p1, p2, p3 Place) error {
	if err := s.check(); err != nil {
		return err
	}
	c := backend.Cubic{
		P0: s.pixel(p0),
		P1: s.pixel(p1),
		P2: s.pixel(p2),
		P3: s.pixel(p3),
	}
	return s.draw(c, Stroke)
}

// ArcBetween strokes the minor arc around center from the direction of
// from to the direction of to, with the radius |from - center|. See
// MinorArc. A degenerate arc draws nothing.
func (s *Session) ArcBetween(center Place, from, to Point) error {
	if err := s.check(); err != nil {
		return err
	}
	m := MinorArc(logical(center), from, to)
	if m.Empty() {
		return nil
	}
	a := backend.Arc{
		Center: s.pixel(center),
		Radius: m.Radius,
		Start:  m.Start,
		End:    m.End,
	}
	return s.draw(a, Stroke)
}

// draw fills, then strokes, shape with the current paint.
func (s *Session) draw(shape backend.Shape, action Action) error {
	st := s.paint.Style()
	if action&Fill != 0 {
		if err := s.be.Fill(shape, st); err != nil {
			return err
		}
	}
	if action&Stroke != 0 {
		return s.be.Stroke(shape, st)
	}
	return nil
}

func (s *Session) pixel(p Place) backend.Point {
	return ToPixel(p, s.width, s.height).backend()
}
