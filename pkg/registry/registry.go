package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrRootNotFound is returned by Lookup for names that were never registered.
var ErrRootNotFound = errors.New("root not found")

// Registry holds the live values exposed for inspection, by name.
type Registry struct {
	mu    sync.RWMutex
	roots map[string]any
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		roots: make(map[string]any),
	}
}

// Register exposes value under name.
// If a root with the same name exists, it is overwritten.
func (r *Registry) Register(name string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roots[name] = value
}

// Unregister removes the root registered under name, if any.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.roots, name)
}

// Lookup returns the root registered under name.
func (r *Registry) Lookup(name string) (any, error) {
	r.mu.RLock()
	value, ok := r.roots[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, name)
	}
	return value, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.roots))
	for name := range r.roots {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}
