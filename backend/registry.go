package backend

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Backend name constants.
const (
	// BackendVector is the name of the backend that draws curves natively.
	BackendVector = "vector"
	// BackendRaster is the name of the backend that flattens curves into
	// polygons and rounds stroke widths to whole pixels.
	BackendRaster = "raster"
)

// Factory creates a new backend instance.
// A factory returns nil when its backend cannot run in this process.
type Factory func() Backend

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for backend selection (first available wins).
	backendPriority = []string{BackendVector, BackendRaster}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns a list of registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a backend instance by name.
// Returns nil if the backend is not registered.
func Get(name string) Backend {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available backend based on priority.
// Priority order: vector > raster.
// Returns nil if no backends are registered.
func Default() Backend {
	for _, name := range candidates(nil) {
		if b := Get(name); b != nil {
			return b
		}
	}
	return nil
}

// Open constructs and initializes a backend. When prefer is non-empty only
// those names are tried, in order; otherwise the default priority applies,
// followed by any other registered backend. A backend whose factory returns
// nil or whose Init fails is skipped. If nothing can be initialized the
// returned error wraps ErrBackendUnavailable together with the Init errors.
func Open(cfg Config, prefer ...string) (Backend, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var errs []error
	for _, name := range candidates(prefer) {
		b := Get(name)
		if b == nil {
			log.Warn("backend: unavailable, trying next", "backend", name)
			continue
		}
		if err := b.Init(cfg); err != nil {
			log.Warn("backend: init failed, trying next", "backend", name, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		log.Debug("backend: selected", "backend", name, "width", cfg.Width, "height", cfg.Height)
		return b, nil
	}

	return nil, errors.Join(append([]error{ErrBackendUnavailable}, errs...)...)
}

// candidates lists the backend names to try, in order.
func candidates(prefer []string) []string {
	if len(prefer) > 0 {
		return prefer
	}

	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	seen := make(map[string]bool, len(backends))
	for _, name := range backendPriority {
		if _, ok := backends[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	// Fallback: any other registered backend
	for name := range backends {
		if !seen[name] {
			names = append(names, name)
		}
	}
	return names
}
