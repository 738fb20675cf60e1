package sketch

import (
	"errors"

	"github.com/gogpu/sketch/backend"
)

// Errors returned by sessions. Wrapped errors can be tested with errors.Is.
var (
	// ErrBackendUnavailable is returned by Open when neither the vector nor
	// the raster backend could be constructed. No session is created.
	ErrBackendUnavailable = backend.ErrBackendUnavailable

	// ErrNoActiveSession is returned by every command issued on a session
	// that was never opened or has been closed.
	ErrNoActiveSession = errors.New("sketch: no active session")

	// ErrSessionActive is returned by Open while another session is open.
	// Only one session may be active per process.
	ErrSessionActive = errors.New("sketch: a session is already active")

	// ErrInvalidDashStyle is returned by SetDash for an unknown style name
	// and by SetDashPattern for non-positive lengths.
	ErrInvalidDashStyle = errors.New("sketch: invalid dash style")

	// ErrInvalidSize is returned by Open for a non-positive canvas size.
	ErrInvalidSize = errors.New("sketch: invalid canvas size")
)
