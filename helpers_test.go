// helpers_test.go
package hclog

import "testing"

// resetForTest clears the process-global engine state so tests do not bleed
// registrations, cached sinks or the compat handler into each other.
func resetForTest(t *testing.T) {
	t.Helper()

	global.mu.Lock()
	global.data = registryData{}
	global.mu.Unlock()

	sinkCache.mu.Lock()
	sinkCache.sinks = make(map[string]Sink)
	sinkCache.mu.Unlock()

	compat.mu.Lock()
	compat.installed = false
	compat.mu.Unlock()
}

// plainOpts formats only severity, key name and text, keeping rendered
// output deterministic for assertions.
func plainOpts() *Options {
	o := OptSeverity | OptModule
	return &o
}
