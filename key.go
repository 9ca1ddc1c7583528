// key.go
package hclog

// Key is the static descriptor of one logger. Components declare their keys
// as package-level values and register them with InitKeys or AddKeys; the
// engine only ever consumes these tuples, however they are produced.
//
// ID is the key's index inside its scope. IDs are expected to be assigned
// contiguously from zero; registering a key with a gap before it fills the
// gap with disabled placeholders so indexed access stays defined.
//
// The Init* fields optionally override the scope defaults for this key at
// registration time; nil means inherit.
type Key struct {
	ScopeID ScopeID
	ID      int
	Name    string

	InitLevel   *Level
	InitFacade  *FacadeVariant
	InitOptions *Options
}
