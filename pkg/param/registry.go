package param

import (
	"sync"
)

// Registry manages host parameters by name, preserving insertion order
// for indexed access. The widgets never see it; it exists for hosts that
// want a panel's parameters enumerable.
type Registry struct {
	params map[string]*Param
	order  []string
	mu     sync.RWMutex
}

// NewRegistry creates a new parameter registry
func NewRegistry() *Registry {
	return &Registry{
		params: make(map[string]*Param),
		order:  make([]string, 0),
	}
}

// Add registers parameters, skipping names already present
func (r *Registry) Add(params ...*Param) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range params {
		if _, exists := r.params[p.Name]; exists {
			continue
		}
		r.params[p.Name] = p
		r.order = append(r.order, p.Name)
	}
}

// Get retrieves a parameter by name
func (r *Registry) Get(name string) *Param {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.params[name]
}

// GetByIndex retrieves a parameter by insertion index
func (r *Registry) GetByIndex(index int) *Param {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.order) {
		return nil
	}

	return r.params[r.order[index]]
}

// Count returns the number of parameters
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// All returns all parameters in insertion order
func (r *Registry) All() []*Param {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Param, len(r.order))
	for i, name := range r.order {
		result[i] = r.params[name]
	}

	return result
}
