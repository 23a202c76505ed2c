package intlai

import "sync"

// Registry holds the provider pool. Registration order is preserved and
// serves as the deterministic tie-break during selection.
type Registry struct {
	mu        sync.RWMutex
	providers map[ProviderID]*Provider
	order     []ProviderID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[ProviderID]*Provider),
	}
}

// Register adds a provider. The provider must carry a non-empty ID and a
// generation function, and the ID must not already be registered.
func (r *Registry) Register(p *Provider) error {
	if p == nil {
		return &RegistryError{Message: "provider is nil"}
	}
	if p.ID == "" {
		return &RegistryError{Message: "provider id is required"}
	}
	if p.GenerateFunc == nil {
		return &RegistryError{Message: "provider " + string(p.ID) + " has no generation function"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[p.ID]; exists {
		return &RegistryError{Message: "provider " + string(p.ID) + " already registered"}
	}
	r.providers[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

// Get returns the provider with the given ID.
func (r *Registry) Get(id ProviderID) (*Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[id]
	return p, ok
}

// Providers returns all providers in registration order.
func (r *Registry) Providers() []*Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Provider, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.providers[id])
	}
	return out
}

// ByRegion returns the providers serving a region, in registration order.
func (r *Registry) ByRegion(region RegionCode) []*Provider {
	var out []*Provider
	for _, p := range r.Providers() {
		if p.SupportsRegion(region) {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
