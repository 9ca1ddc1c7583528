// internal.go
package hclog

import "context"

// Keys of the reserved internal scope. KeyInternal carries the engine's own
// diagnostics; KeyLogCompat receives records routed through the slog
// compatibility handler. Both accept the regular runtime setters, so their
// level and facade can be adjusted like any other key.
var (
	KeyInternal  = Key{ScopeID: ScopeInternal, ID: 0, Name: "hclog"}
	KeyLogCompat = Key{ScopeID: ScopeInternal, ID: 1, Name: "logcompat"}
)

// initInternal registers the internal scope and the diagnostic key. The
// scope starts disabled; HCLOG_DEBUG=<n> switches it to stdout with the
// matching debug verbosity. Callers hold the registry write lock.
func initInternal(r *registryData) error {
	lvl, facade := Off, Disabled()
	if n, ok := envDebugVerbosity(); ok {
		lvl = DebugLevel(n)
		facade = StdOut()
	}
	if err := r.initScope(ScopeInternal, "hclog", lvl, facade, DefaultOptions()); err != nil {
		return err
	}
	sc, err := r.scope(ScopeInternal)
	if err != nil {
		return err
	}
	return sc.addSubmodule(KeyInternal)
}

// internalLogf emits a diagnostic through the engine's own key. Failures
// are dropped; diagnostics never mask the caller's error.
func internalLogf(lvl Level, format string, args ...any) {
	_ = Log(context.Background(), KeyInternal, lvl, format, args...)
}
