// context.go
package hclog

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// registryData is a fixed-size array of scopes indexed by ScopeID. One
// instance backs the shared global registry; each task-scoped override owns
// a private one holding a clone of a single scope.
type registryData struct {
	scopes [scopeCount]scope
}

func (r *registryData) has(id ScopeID) bool {
	return id >= 0 && id < scopeCount && r.scopes[id].initialized
}

// scope returns the initialized scope at id or ErrScopeNotInitialized.
func (r *registryData) scope(id ScopeID) (*scope, error) {
	if !r.has(id) {
		return nil, fmt.Errorf("%s: %w", id, ErrScopeNotInitialized)
	}
	return &r.scopes[id], nil
}

// initScope creates the Global scope for id if absent. Re-initializing an
// existing scope is a silent no-op; already-configured submodules stay
// untouched.
func (r *registryData) initScope(id ScopeID, name string, lvl Level, facade FacadeVariant, opts Options) error {
	if id < 0 || id >= scopeCount {
		return fmt.Errorf("scope id %d out of range: %w", int(id), ErrScopeNotInitialized)
	}
	if r.has(id) {
		return nil
	}
	sc, err := newScope(id, name, lvl, facade, opts)
	if err != nil {
		return err
	}
	r.scopes[id] = sc
	return nil
}

// byName scans every initialized scope for the first submodule matching the
// name, or nil.
func (r *registryData) byName(name string) *submodule {
	for i := range r.scopes {
		if !r.scopes[i].initialized {
			continue
		}
		if sub := r.scopes[i].byName(name); sub != nil {
			return sub
		}
	}
	return nil
}

// global is the single shared registry, guarded by one reader-writer lock.
// Lock scope is kept to the lookup-and-mutate step; sink I/O happens on the
// sink's own synchronization.
var global struct {
	mu   sync.RWMutex
	data registryData
}

// taskCtxKey carries a task-local registry view in a context.Context.
type taskCtxKey struct{}

// taskFrom extracts the task-local view installed on ctx, if any. The view
// is goroutine-confined by convention and accessed without locking.
func taskFrom(ctx context.Context) *registryData {
	if ctx == nil {
		return nil
	}
	if t, ok := ctx.Value(taskCtxKey{}).(*registryData); ok {
		return t
	}
	return nil
}

// call resolves where f runs: the task-local view installed on ctx first,
// falling through to the shared global registry when no view is installed
// or the view reports ErrKeyNotInitialized ("not present in the narrower
// view"). Any other task-view error surfaces; absence of a key and broken
// state are different conditions.
func call(ctx context.Context, f func(*registryData) error) error {
	if local := taskFrom(ctx); local != nil {
		if err := f(local); !errors.Is(err, ErrKeyNotInitialized) {
			return err
		}
	}
	global.mu.RLock()
	defer global.mu.RUnlock()
	return f(&global.data)
}

// callMut is call for mutations: the same fallback order, escalating to the
// exclusive registry write lock when falling through.
func callMut(ctx context.Context, f func(*registryData) error) error {
	if local := taskFrom(ctx); local != nil {
		if err := f(local); !errors.Is(err, ErrKeyNotInitialized) {
			return err
		}
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	return f(&global.data)
}
