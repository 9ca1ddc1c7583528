// task.go
package hclog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Scoped arms a task-scoped override: it clones the global scope owning key
// into a private task view, ensures the key is registered in the clone, and
// returns a context carrying the view. Until the returned context is
// discarded, every operation using it resolves against the private view
// first; keys the view cannot resolve fall through to the shared registry.
//
// The override is confined to the unit of work holding the context. Sibling
// tasks and the global registry never observe it, and dropping the context
// (normal completion, early return, cancellation) is the teardown: the
// parent context still resolves exactly as before arming, which also makes
// nesting safe.
//
// An empty ident is replaced with a generated unique identity. The identity
// shows up in messages when OptScope is set.
func Scoped(ctx context.Context, ident string, key Key) (context.Context, error) {
	if ctx == nil {
		return nil, fmt.Errorf("nil context: %w", ErrTaskAccess)
	}
	if ident == "" {
		ident = uuid.NewString()
	}

	global.mu.RLock()
	src, err := global.data.scope(key.ScopeID)
	if err != nil {
		global.mu.RUnlock()
		return nil, err
	}
	clone := src.taskClone(ident)
	global.mu.RUnlock()

	local := &registryData{}
	local.scopes[key.ScopeID] = clone
	if err := local.scopes[key.ScopeID].addSubmodule(key); err != nil {
		return nil, err
	}
	internalLogf(Debug1, "scoped: %s[%s] with key %s", clone.name, ident, key.Name)
	return context.WithValue(ctx, taskCtxKey{}, local), nil
}

// RunScoped runs fn with a task-scoped override armed for key. Arming
// happens before fn is handed control; teardown is guaranteed on every exit
// path, including a panic inside fn, because the override never outlives the
// derived context.
func RunScoped(ctx context.Context, ident string, key Key, fn func(context.Context) error) error {
	tctx, err := Scoped(ctx, ident, key)
	if err != nil {
		return err
	}
	return fn(tctx)
}
