// errors.go
package hclog

import "errors"

// Error taxonomy of the engine. Configuration and registration errors are
// returned for explicit handling; the hot-path Log call surfaces an
// unresolvable key instead of silently dropping the message. Sink I/O errors
// wrap the underlying error and are never retried here.
var (
	// ErrContextLock means the shared registry state is unavailable.
	// Reserved for corrupted shared state; Go locks do not poison, so the
	// engine never produces it on healthy state.
	ErrContextLock = errors.New("hclog: context lock unavailable")

	// ErrScopeNotInitialized is returned when a scope is accessed before
	// InitScope created it.
	ErrScopeNotInitialized = errors.New("hclog: scope not initialized")

	// ErrKeyNotInitialized is returned when a key is not registered in the
	// consulted view. The resolver also uses it as the fall-through signal
	// from a task-local view to the global registry.
	ErrKeyNotInitialized = errors.New("hclog: key not initialized")

	// ErrParseArg is returned for malformed runtime configuration strings
	// (SetKeyLevels specs).
	ErrParseArg = errors.New("hclog: malformed argument string")

	// ErrParseEnv is returned for malformed HCLOG_* environment values.
	ErrParseEnv = errors.New("hclog: malformed environment variable")

	// ErrUnknownLevel is returned when a level name does not parse.
	ErrUnknownLevel = errors.New("hclog: unknown log level")

	// ErrUnknownFacade is returned when a facade name does not parse.
	ErrUnknownFacade = errors.New("hclog: unknown facade")

	// ErrWriteFailed is returned when a sink write fails; it wraps the
	// underlying I/O error.
	ErrWriteFailed = errors.New("hclog: write failed")

	// ErrCompatInitialized is returned when the slog compatibility handler
	// is installed a second time.
	ErrCompatInitialized = errors.New("hclog: log compatibility already initialized")

	// ErrTaskAccess is returned on invalid access to the task-local
	// override store.
	ErrTaskAccess = errors.New("hclog: task-local context not accessible")
)
