package compose

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps human-readable names to renderable Compositions. External
// export tooling queries it to enumerate what to render.
type Registry struct {
	mu    sync.RWMutex
	comps map[string]*Composition
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{comps: make(map[string]*Composition)}
}

// Register adds a composition under its own name. Registering the same
// name twice is an error.
func (r *Registry) Register(c *Composition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comps[c.Name()]; ok {
		return fmt.Errorf("composition %q already registered", c.Name())
	}
	r.comps[c.Name()] = c
	return nil
}

// Lookup returns the composition registered under name.
func (r *Registry) Lookup(name string) (*Composition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.comps[name]
	return c, ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.comps))
	for name := range r.comps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
