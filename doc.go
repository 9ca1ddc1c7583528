// Package hclog is a key-based, hierarchically scoped logging engine.
//
// # Overview
//
// Logging is organized around registered keys. Each key is one independently
// configurable logger living inside a scope, and each scope groups a set of
// keys under one namespace with shared defaults:
//   - Per-key severity threshold (Off, Emerg..Info, Debug1..Debug10)
//   - Per-key output facade (stdout, stderr, syslog, file, or disabled)
//   - Per-key formatting options (timestamp, pid/tid, caller, ...)
//   - Task-scoped overrides carried in a context.Context
//
// # Usage
//
// Register a scope and its keys once at startup:
//
//	var (
//		KeyServer = hclog.Key{ScopeID: hclog.ScopeApplication, ID: 0, Name: "server"}
//		KeyStore  = hclog.Key{ScopeID: hclog.ScopeApplication, ID: 1, Name: "store"}
//	)
//
//	err := hclog.InitKeys("myapp", []hclog.Key{KeyServer, KeyStore},
//		hclog.Info, hclog.StdOut(), hclog.DefaultOptions())
//
// Log through a key:
//
//	hclog.Log(ctx, KeyServer, hclog.Info, "listening on %s", addr)
//
// Call sites that build expensive arguments can probe first:
//
//	if ok, _ := hclog.TestLog(ctx, KeyStore, hclog.Debug5); ok {
//		hclog.Log(ctx, KeyStore, hclog.Debug5, "state: %s", dumpState())
//	}
//
// # Task-scoped overrides
//
// A unit of work can run with its own private view of one scope without
// affecting concurrent work. The override travels in the context and is
// discarded with it; the shared registry is never touched:
//
//	err := hclog.RunScoped(ctx, "req-42", KeyServer, func(ctx context.Context) error {
//		_ = hclog.SetLevel(ctx, KeyServer, hclog.Debug10)
//		hclog.Log(ctx, KeyServer, hclog.Debug10, "verbose just for this task")
//		return work(ctx)
//	})
//
// Reads consult the task-local view first and fall through to the global
// registry when the key is not present in the narrower view. The override is
// goroutine-confined: hand the derived context to another goroutine to move
// it, nothing is inherited implicitly.
//
// # Environment
//
// Defaults can be adjusted per process through the HCLOG_* environment
// namespace:
//   - HCLOG_LEVEL, HCLOG_FACADE: scope defaults applied at registration
//   - HCLOG_OPT_<FLAG>=0|1: per-option overrides (e.g. HCLOG_OPT_TIMESTAMP=0)
//   - HCLOG_DEBUG=<n>: verbosity of the engine's own diagnostic key
//   - HCLOG_DUMP_MODULES=1: opt-in for Dump
package hclog
