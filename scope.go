// scope.go
package hclog

import (
	"fmt"
	"strings"
)

// ScopeID identifies one scope slot in the registry. The set is closed and
// fixed at build time; the value is used only as an array index.
type ScopeID int

const (
	// ScopeApplication is the default scope for the main application.
	ScopeApplication ScopeID = iota
	// ScopeInternal is reserved for the engine's own diagnostics and the
	// slog compatibility key. Enable with HCLOG_DEBUG.
	ScopeInternal
	// ScopeLibrary is the scope for libraries linked into the application.
	ScopeLibrary

	scopeCount // must remain last, sizes the registry array
)

// String returns the display name of the scope slot.
func (id ScopeID) String() string {
	switch id {
	case ScopeApplication:
		return "application"
	case ScopeInternal:
		return "hclog"
	case ScopeLibrary:
		return "library"
	default:
		return fmt.Sprintf("scope(%d)", int(id))
	}
}

// scopeEnv distinguishes the shared global view from a task-confined clone.
type scopeEnv int

const (
	scopeGlobal scopeEnv = iota
	scopeTask
)

func (e scopeEnv) String() string {
	if e == scopeTask {
		return "task"
	}
	return "global"
}

// scope groups an ordered set of submodules under one namespace with shared
// defaults. A Global scope is created at most once per ScopeID; a Task scope
// is an ephemeral clone derived from a live Global one.
type scope struct {
	name        string
	id          ScopeID
	env         scopeEnv
	envIdent    string
	initialized bool
	subs        []submodule

	// defaults handed to submodules registered without their own
	defLevel   Level
	defFacade  FacadeVariant
	defOptions Options
}

// newScope builds an initialized Global scope, applying the HCLOG_LEVEL,
// HCLOG_FACADE and HCLOG_OPT_* environment overrides on top of the supplied
// defaults.
func newScope(id ScopeID, name string, lvl Level, facade FacadeVariant, opts Options) (scope, error) {
	envLvl, envFacade := envScopeDefaults()
	if envLvl != nil {
		lvl = *envLvl
	}
	if envFacade != nil {
		facade = *envFacade
	}
	set, unset, err := envOptionOverrides()
	if err != nil {
		return scope{}, err
	}
	return scope{
		name:        name,
		id:          id,
		env:         scopeGlobal,
		initialized: true,
		defLevel:    lvl,
		defFacade:   facade,
		defOptions:  opts.With(set).Without(unset),
	}, nil
}

// taskClone deep-copies the scope into an independent Task-kind view with
// the given identity. Mutating the clone never affects the original; the
// sinks stay shared.
func (s *scope) taskClone(ident string) scope {
	clone := *s
	clone.env = scopeTask
	clone.envIdent = ident
	clone.subs = append([]submodule(nil), s.subs...)
	return clone
}

// addSubmodule registers a key. First registration wins: an already
// initialized slot is left untouched. Index gaps are filled with disabled
// placeholders so later indexed access never reads undefined state.
func (s *scope) addSubmodule(k Key) error {
	if !s.initialized {
		return ErrScopeNotInitialized
	}
	lvl := s.defLevel
	if k.InitLevel != nil {
		lvl = *k.InitLevel
	}
	facade := s.defFacade
	if k.InitFacade != nil {
		facade = *k.InitFacade
	}
	opts := s.defOptions
	if k.InitOptions != nil {
		opts = *k.InitOptions
	}

	if k.ID < len(s.subs) {
		if s.subs[k.ID].initialized {
			return nil
		}
		sub, err := newSubmodule(k, lvl, facade, opts)
		if err != nil {
			return err
		}
		s.subs[k.ID] = sub
		return nil
	}
	for len(s.subs) < k.ID {
		s.subs = append(s.subs, submodule{key: len(s.subs)})
	}
	sub, err := newSubmodule(k, lvl, facade, opts)
	if err != nil {
		return err
	}
	s.subs = append(s.subs, sub)
	return nil
}

// hasSubmodule reports whether the key index holds an initialized submodule.
func (s *scope) hasSubmodule(id int) bool {
	if !s.initialized || id < 0 || id >= len(s.subs) {
		return false
	}
	sub := &s.subs[id]
	return sub.initialized && sub.key == id
}

// submodule returns the initialized submodule at id, or nil.
func (s *scope) submodule(id int) *submodule {
	if !s.hasSubmodule(id) {
		return nil
	}
	return &s.subs[id]
}

// byName returns the first submodule whose name matches case-insensitively,
// or nil.
func (s *scope) byName(name string) *submodule {
	for i := range s.subs {
		if s.subs[i].initialized && strings.EqualFold(s.subs[i].name, name) {
			return &s.subs[i]
		}
	}
	return nil
}
