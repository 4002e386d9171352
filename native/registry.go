package native

import (
	"sync"
)

// Registry is an in-process Library backed by Go functions.
type Registry struct {
	mu     sync.RWMutex
	funcs  map[string]Func
	closed bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Register binds fn to a symbol name, replacing any previous binding.
func (r *Registry) Register(symbol string, fn Func) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[symbol] = fn
	return r
}

// Unregister removes a symbol.
func (r *Registry) Unregister(symbol string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.funcs, symbol)
}

// Lookup implements Library.
func (r *Registry) Lookup(sig Signature) (Symbol, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, false
	}
	fn, ok := r.funcs[sig.Symbol]
	if !ok {
		return nil, false
	}
	return fn, true
}

// Close implements Library.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Closed reports whether Close was called.
func (r *Registry) Closed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.closed
}
