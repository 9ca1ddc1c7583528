// api.go
package hclog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
)

// InitScope creates the Global scope for id if absent and registers the
// engine's internal diagnostics. Re-initializing an existing scope is a
// silent no-op; already-configured keys keep their state. The supplied
// level, facade and options become the scope defaults handed to keys
// registered without their own, after the HCLOG_* environment overrides are
// applied. With OptLogCompat set the slog compatibility handler is installed
// as well (idempotently).
func InitScope(id ScopeID, name string, lvl Level, facade FacadeVariant, opts Options) error {
	global.mu.Lock()
	err := initInternal(&global.data)
	if err == nil {
		err = global.data.initScope(id, name, lvl, facade, opts)
	}
	global.mu.Unlock()
	if err != nil {
		return err
	}
	if opts.Has(OptLogCompat) {
		if err := InitLogCompat(lvl, facade, &opts); err != nil && !errors.Is(err, ErrCompatInitialized) {
			return err
		}
	}
	return nil
}

// InitKeys initializes the scope declared by the first key and registers all
// keys in one call. It is the usual entry point for applications and
// libraries:
//
//	err := hclog.InitKeys("myapp", []hclog.Key{KeyServer, KeyStore},
//		hclog.Info, hclog.StdOut(), hclog.DefaultOptions())
func InitKeys(name string, keys []Key, lvl Level, facade FacadeVariant, opts Options) error {
	if len(keys) == 0 {
		return fmt.Errorf("no keys given: %w", ErrParseArg)
	}
	if err := InitScope(keys[0].ScopeID, name, lvl, facade, opts); err != nil {
		return err
	}
	return AddKeys(keys...)
}

// AddKeys registers keys in their declared scopes. The scopes must have been
// created with InitScope first. Registration is first-wins: re-adding an
// existing key leaves its configuration untouched.
func AddKeys(keys ...Key) error {
	global.mu.Lock()
	defer global.mu.Unlock()
	for _, k := range keys {
		sc, err := global.data.scope(k.ScopeID)
		if err != nil {
			return err
		}
		if err := sc.addSubmodule(k); err != nil {
			return err
		}
	}
	return nil
}

// HasKey reports whether key is registered in the resolved view.
func HasKey(ctx context.Context, key Key) (bool, error) {
	var ok bool
	err := call(ctx, func(r *registryData) error {
		sc, err := r.scope(key.ScopeID)
		if err != nil {
			return err
		}
		ok = sc.hasSubmodule(key.ID)
		return nil
	})
	return ok, err
}

// SetLevel sets the severity threshold of key in the resolved view.
func SetLevel(ctx context.Context, key Key, lvl Level) error {
	return callMut(ctx, func(r *registryData) error {
		sub, err := lookup(r, key)
		if err != nil {
			return err
		}
		sub.setLevel(lvl)
		return nil
	})
}

// SetFacade points key at a different output target. The sink for the new
// variant is constructed (or reused) immediately; construction failures are
// returned and leave the previous sink in place.
func SetFacade(ctx context.Context, key Key, facade FacadeVariant) error {
	return callMut(ctx, func(r *registryData) error {
		sub, err := lookup(r, key)
		if err != nil {
			return err
		}
		return sub.setFacade(facade)
	})
}

// SetOptions adds the given formatting flags to key.
func SetOptions(ctx context.Context, key Key, flags Options) error {
	return callMut(ctx, func(r *registryData) error {
		sub, err := lookup(r, key)
		if err != nil {
			return err
		}
		sub.setOptions(flags)
		return nil
	})
}

// UnsetOptions removes the given formatting flags from key.
func UnsetOptions(ctx context.Context, key Key, flags Options) error {
	return callMut(ctx, func(r *registryData) error {
		sub, err := lookup(r, key)
		if err != nil {
			return err
		}
		sub.unsetOptions(flags)
		return nil
	})
}

// ResetOptions restores key's formatting flags to the process defaults
// merged with the HCLOG_OPT_* environment overrides, re-applying the syslog
// suppression rule when the current sink is syslog.
func ResetOptions(ctx context.Context, key Key) error {
	return callMut(ctx, func(r *registryData) error {
		sub, err := lookup(r, key)
		if err != nil {
			return err
		}
		return sub.resetOptions()
	})
}

// SetKeyLevels applies runtime level configuration from strings of
// comma-separated "key:level" pairs, e.g. from the command line:
//
//	hclog.SetKeyLevels("_all:warn,store:debug5")
//
// The key may be a registered name or the wildcard "_all"; both sides are
// case-insensitive. Pairs apply strictly in call order, so a later wildcard
// overwrites an earlier specific key and vice versa. An empty key or level
// is ErrParseArg, an unknown level ErrUnknownLevel, an unknown key
// ErrKeyNotInitialized.
func SetKeyLevels(specs ...string) error {
	global.mu.Lock()
	defer global.mu.Unlock()
	for _, spec := range specs {
		for _, pair := range strings.Split(spec, ",") {
			name, lvlStr, found := strings.Cut(pair, ":")
			if !found || name == "" || lvlStr == "" {
				return fmt.Errorf("%q: %w", pair, ErrParseArg)
			}
			lvl, err := ParseLevel(lvlStr)
			if err != nil {
				return err
			}
			if strings.EqualFold(name, "_all") {
				for i := range global.data.scopes {
					sc := &global.data.scopes[i]
					for j := range sc.subs {
						sc.subs[j].setLevel(lvl)
					}
				}
				continue
			}
			sub := global.data.byName(name)
			if sub == nil {
				return fmt.Errorf("key %q: %w", name, ErrKeyNotInitialized)
			}
			sub.setLevel(lvl)
		}
	}
	return nil
}

// logCallerDepth is the runtime.Caller skip from inside a resolver closure
// back to the Log caller: callerSite, closure, call, logWith, Log, caller.
const logCallerDepth = 5

// Log dispatches one message through key. The key is resolved via the
// task-local view on ctx first, then the global registry; an unregistered
// key fails loudly with ErrKeyNotInitialized after emitting an internal
// diagnostic; silent log loss is worse than a hard failure. A message below
// the key's threshold is dropped without error or side effect. Caller
// metadata is captured only when the key's options include it.
func Log(ctx context.Context, key Key, lvl Level, format string, args ...any) error {
	return logWith(ctx, key, lvl, nil, format, args...)
}

// Site names the origin of a log call for callers that already know it,
// such as facade adapters replaying records captured elsewhere.
type Site struct {
	File string
	Func string
	Line int
}

// LogSite is Log with explicit caller metadata instead of runtime capture.
func LogSite(ctx context.Context, key Key, lvl Level, site Site, format string, args ...any) error {
	return logWith(ctx, key, lvl, &site, format, args...)
}

func logWith(ctx context.Context, key Key, lvl Level, site *Site, format string, args ...any) error {
	err := call(ctx, func(r *registryData) error {
		sc, err := r.scope(key.ScopeID)
		if err != nil {
			return err
		}
		sub := sc.submodule(key.ID)
		if sub == nil {
			return fmt.Errorf("key %q (%d): %w", key.Name, key.ID, ErrKeyNotInitialized)
		}
		if !sub.willLog(lvl) {
			return nil
		}
		var file, funcName string
		var line int
		if site != nil {
			file, funcName, line = site.File, site.Func, site.Line
		} else if sub.options.Has(OptFile) || sub.options.Has(OptFunc) {
			file, funcName, line = callerSite(logCallerDepth)
		}
		return sub.log(sc.name, sc.env, sc.envIdent, lvl, file, funcName, line,
			fmt.Sprintf(format, args...))
	})
	if err != nil && errors.Is(err, ErrKeyNotInitialized) && key.ScopeID != ScopeInternal {
		internalLogf(Error, "log: key %q not registered in scope %s", key.Name, key.ScopeID)
	}
	return err
}

// TestLog reports whether a message at lvl would be logged through key. An
// unresolved key means "would not log" rather than an error, so call sites
// can probe cheaply before building expensive arguments.
func TestLog(ctx context.Context, key Key, lvl Level) (bool, error) {
	var ok bool
	err := call(ctx, func(r *registryData) error {
		sc, err := r.scope(key.ScopeID)
		if err != nil {
			return err
		}
		if sub := sc.submodule(key.ID); sub != nil {
			ok = sub.willLog(lvl)
		}
		return nil
	})
	return ok, err
}

// lookup finds the initialized submodule for key inside the resolver.
func lookup(r *registryData, key Key) (*submodule, error) {
	sc, err := r.scope(key.ScopeID)
	if err != nil {
		return nil, err
	}
	sub := sc.submodule(key.ID)
	if sub == nil {
		return nil, fmt.Errorf("key %q (%d): %w", key.Name, key.ID, ErrKeyNotInitialized)
	}
	return sub, nil
}

// callerSite captures file, function and line of the frame skip levels up.
func callerSite(skip int) (file, funcName string, line int) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", "", 0
	}
	file = filepath.Base(file)
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = shortFunc(fn.Name())
	}
	return file, funcName, line
}

// ListKeys writes a comma-separated listing of every registered key.
func ListKeys(w io.Writer) error {
	global.mu.RLock()
	var names []string
	for i := range global.data.scopes {
		sc := &global.data.scopes[i]
		if !sc.initialized {
			continue
		}
		for j := range sc.subs {
			if sc.subs[j].initialized {
				names = append(names, sc.subs[j].name)
			}
		}
	}
	global.mu.RUnlock()

	if _, err := fmt.Fprintf(w, "registered log keys:\n\t%s\n", strings.Join(names, ", ")); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// Dump renders the entire registry state to w. It only does so when the
// operator deliberately set HCLOG_DUMP_MODULES=1; otherwise it is a no-op,
// so state never leaks into production output by accident.
func Dump(w io.Writer) error {
	if !envDumpEnabled() {
		return nil
	}
	global.mu.RLock()
	defer global.mu.RUnlock()
	for i := range global.data.scopes {
		sc := &global.data.scopes[i]
		if !sc.initialized {
			continue
		}
		_, err := fmt.Fprintf(w, "scope %s (%s, default level=%s facade=%s options=%s)\n",
			sc.name, sc.id, sc.defLevel, sc.defFacade, sc.defOptions)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
		for j := range sc.subs {
			sub := &sc.subs[j]
			if !sub.initialized {
				_, err = fmt.Fprintf(w, "\t%d: <uninitialized>\n", j)
			} else {
				_, err = fmt.Fprintf(w, "\t%d: %s level=%s facade=%s options=%s\n",
					sub.key, sub.name, sub.level, sub.facade, sub.options)
			}
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteFailed, err)
			}
		}
	}
	return nil
}
