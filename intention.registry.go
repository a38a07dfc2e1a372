package intention

import (
	"sort"
	"sync"
)

// Registry holds templates keyed by name. Construct one explicitly and hand
// it to the client; there is no process-wide singleton. Registration is
// expected at startup, but the registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Template
}

// NewRegistry creates an empty template registry.
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]Template),
	}
}

// Register stores a template under its name. Registration is an
// unconditional upsert: a second template with the same name silently
// replaces the first.
func (r *Registry) Register(tmpl Template) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[tmpl.Name()] = tmpl
}

// Get returns the template registered under name, or a not-found error.
func (r *Registry) Get(name string) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tmpl, ok := r.templates[name]
	if !ok {
		return nil, NewTemplateNotFoundError(name)
	}
	return tmpl, nil
}

// List returns all registered template names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}
