package confirm

import (
	"context"
	"sync"
)

// Registry owns one gate per entry key so that arming deletion of one entry
// never arms another. Gates for keys that leave the collection are dropped.
type Registry struct {
	mu    sync.Mutex
	gates map[string]*Gate
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{gates: make(map[string]*Gate)}
}

// For returns the gate for key, creating it around onConfirm if needed.
// onConfirm is ignored when the gate already exists.
func (r *Registry) For(key string, onConfirm func(context.Context) error) *Gate {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.gates[key]
	if !ok {
		g = NewGate(onConfirm)
		r.gates[key] = g
	}
	return g
}

// Lookup returns the gate for key if one exists
func (r *Registry) Lookup(key string) (*Gate, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.gates[key]
	return g, ok
}

// Armed reports whether key has an armed gate
func (r *Registry) Armed(key string) bool {
	g, ok := r.Lookup(key)
	return ok && g.Armed()
}

// Forget drops the gate for key
func (r *Registry) Forget(key string) {
	r.mu.Lock()
	delete(r.gates, key)
	r.mu.Unlock()
}

// Sync drops every gate whose key is not in keys
func (r *Registry) Sync(keys []string) {
	live := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		live[k] = struct{}{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.gates {
		if _, ok := live[k]; !ok {
			delete(r.gates, k)
		}
	}
}

// Len returns the number of live gates
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.gates)
}
