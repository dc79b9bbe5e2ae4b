package backend

import (
	"os"
	"sync"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() RenderBackend

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
	// Priority order for default selection (first available wins).
	backendPriority = []string{BackendPDF, BackendRaster}
)

// Environment variables honored by Default.
const (
	// EnvBackend forces a backend by name.
	EnvBackend = "SEGNO_BACKEND"

	// EnvHeadless, when set to 1, restricts selection to backends that
	// report Headless.
	EnvHeadless = "SEGNO_HEADLESS"
)

// Register registers a backend factory with the given name. This is
// typically called from init() functions in backend packages. A backend
// with the same name is replaced.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry. This is useful for
// testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// IsRegistered reports whether a backend with the given name is
// registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a backend instance by name, or nil if the backend is not
// registered.
func Get(name string) RenderBackend {
	registryMu.RLock()
	defer registryMu.RUnlock()
	factory, ok := backends[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available backend. SEGNO_BACKEND forces a
// specific backend; SEGNO_HEADLESS=1 excludes backends that need a
// display. Returns nil if no suitable backend is registered.
func Default() RenderBackend {
	if name := os.Getenv(EnvBackend); name != "" {
		b := Get(name)
		if b != nil && (!headlessOnly() || b.Headless()) {
			return b
		}
		return nil
	}

	registryMu.RLock()
	defer registryMu.RUnlock()

	pick := func(factory BackendFactory) RenderBackend {
		b := factory()
		if b == nil {
			return nil
		}
		if headlessOnly() && !b.Headless() {
			return nil
		}
		return b
	}

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			if b := pick(factory); b != nil {
				return b
			}
		}
	}
	// Fallback: first suitable backend outside the priority list.
	for _, factory := range backends {
		if b := pick(factory); b != nil {
			return b
		}
	}
	return nil
}

func headlessOnly() bool {
	return os.Getenv(EnvHeadless) == "1"
}

// InitDefault returns the default backend, initialized.
func InitDefault() (RenderBackend, error) {
	b := Default()
	if b == nil {
		return nil, ErrBackendNotAvailable
	}
	if err := b.Init(); err != nil {
		return nil, err
	}
	return b, nil
}
