package enum

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
)

var (
	// ErrInvalidName indicates an empty registry name.
	ErrInvalidName = errors.New("enumeration name must not be empty")

	// ErrAlreadyRegistered indicates the name is already taken in the registry.
	ErrAlreadyRegistered = errors.New("enumeration already registered")
)

// Registry holds named enumerations. Entries can be added but never
// replaced or removed.
//
// A Registry is owned by its caller; the package keeps no global registry.
// All methods are safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	enums  map[string]*Enumeration
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	cfg := newRegistryConfig(opts)
	return &Registry{
		enums:  make(map[string]*Enumeration),
		logger: cfg.logger,
	}
}

// Register builds an enumeration from def and stores it under name.
// Definition errors are returned unchanged.
func (r *Registry) Register(name string, def Definition) (*Enumeration, error) {
	e, err := New(def)
	if err != nil {
		r.logger.Warn("rejected enum definition",
			"name", name,
			"error", err)
		return nil, err
	}
	if err := r.Add(name, e); err != nil {
		return nil, err
	}
	return e, nil
}

// RegisterFile loads an enumeration with LoadFile and stores it under name.
func (r *Registry) RegisterFile(name, path string) (*Enumeration, error) {
	e, err := LoadFile(path)
	if err != nil {
		r.logger.Warn("rejected enum definition file",
			"name", name,
			"path", path,
			"error", err)
		return nil, err
	}
	if err := r.Add(name, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Add stores an already built enumeration under name.
func (r *Registry) Add(name string, e *Enumeration) error {
	if name == "" {
		return ErrInvalidName
	}
	if e == nil {
		return fmt.Errorf("enumeration %q: %w", name, ErrInvalidInputKind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.enums[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	r.enums[name] = e

	r.logger.Debug("registered enum",
		"name", name,
		"keys", e.Len())
	return nil
}

// Lookup returns the enumeration registered under name. When name is not
// registered it returns nil and false; the nil *Enumeration behaves as an
// enumeration with no keys.
func (r *Registry) Lookup(name string) (*Enumeration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.enums[name]
	return e, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.enums))
}
