package modules

import "sync"

// Registry is the process-global id -> Module lookup used by the popup
// host (C9) and the IPC server (C6). Only popup-capable modules (and
// external modules, which IPC must reach directly) are registered; it is
// a read-mostly map guarded by an RWMutex (§5).
//
// A fresh Registry can be constructed per test rather than relying on the
// process singleton, per the "Global mutable state" design note.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]Module)}
}

// Register adds or replaces the module at id.
func (r *Registry) Register(m Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules[m.ID()] = m
}

// Unregister removes the module at id, if present.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.modules, id)
}

// Lookup returns the module at id and whether it was found.
func (r *Registry) Lookup(id string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[id]
	return m, ok
}

// IDs returns a snapshot of every registered module id.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.modules))
	for id := range r.modules {
		ids = append(ids, id)
	}
	return ids
}

// Clear empties the registry; used when the bar rebuilds.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules = make(map[string]Module)
}

// global is the process-wide registry the App shell initializes once at
// startup (§9 "Global mutable state": modeled as an opaque handle behind
// an initialization routine, not ambient lookup).
var global = NewRegistry()

// Global returns the process-wide module registry.
func Global() *Registry { return global }
