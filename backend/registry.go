package backend

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownBackend = errors.New("unknown backend")

// Factory creates a backend.
type Factory func() Backend[Artifact]

// Registry maps backend names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry holding the built-in backends.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}

	r.Register(Counter{}.Name(), func() Backend[Artifact] { return Erase[Count](Counter{}) })
	r.Register(Listing{}.Name(), func() Backend[Artifact] { return Erase[Text](Listing{}) })

	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Lookup creates the backend registered under name.
func (r *Registry) Lookup(name string) (Backend[Artifact], error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownBackend, name, r.Names())
	}

	return f(), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
