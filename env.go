// env.go
package hclog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Environment variables consumed by the engine. HCLOG_LEVEL and HCLOG_FACADE
// override the defaults a scope is registered with; HCLOG_OPT_<FLAG> forces a
// single formatting flag on (1) or off (0); HCLOG_DEBUG enables the internal
// diagnostic key with the given verbosity; HCLOG_DUMP_MODULES=1 arms Dump.
const (
	envPrefix      = "HCLOG_"
	envKeyLevel    = "level"
	envKeyFacade   = "facade"
	envKeyDebug    = "debug"
	envKeyDump     = "dump_modules"
	envOptKeyStart = "opt_"
)

// loadEnv snapshots the HCLOG_* namespace into a flat koanf tree.
func loadEnv() (*koanf.Koanf, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return k, nil
}

// envOptionOverrides collects the HCLOG_OPT_* flag overrides. A value of "1"
// forces the flag on, "0" forces it off, any other integer is ignored. A
// non-integer value is an ErrParseEnv.
func envOptionOverrides() (set, unset Options, err error) {
	k, err := loadEnv()
	if err != nil {
		return 0, 0, err
	}
	for _, e := range optionNames {
		key := envOptKeyStart + strings.ToLower(e.name)
		if !k.Exists(key) {
			continue
		}
		v, convErr := strconv.Atoi(k.String(key))
		if convErr != nil {
			return 0, 0, fmt.Errorf("%s%s%s=%q: %w",
				envPrefix, "OPT_", e.name, k.String(key), ErrParseEnv)
		}
		switch v {
		case 0:
			unset = unset.With(e.flag)
		case 1:
			set = set.With(e.flag)
		}
	}
	return set, unset, nil
}

// envScopeDefaults returns the process-wide level and facade overrides
// applied when a scope is registered. Values that do not parse are ignored;
// the registration defaults stay in effect.
func envScopeDefaults() (lvl *Level, facade *FacadeVariant) {
	k, err := loadEnv()
	if err != nil {
		return nil, nil
	}
	if k.Exists(envKeyLevel) {
		if l, err := ParseLevel(k.String(envKeyLevel)); err == nil {
			lvl = &l
		}
	}
	if k.Exists(envKeyFacade) {
		if f, err := ParseFacade(k.String(envKeyFacade)); err == nil {
			facade = &f
		}
	}
	return lvl, facade
}

// envDebugVerbosity reports the HCLOG_DEBUG verbosity, if set to an integer.
func envDebugVerbosity() (int, bool) {
	k, err := loadEnv()
	if err != nil || !k.Exists(envKeyDebug) {
		return 0, false
	}
	n, convErr := strconv.Atoi(k.String(envKeyDebug))
	if convErr != nil {
		return 0, false
	}
	return n, true
}

// envDumpEnabled reports whether the operator armed the registry dump.
func envDumpEnabled() bool {
	k, err := loadEnv()
	if err != nil {
		return false
	}
	return k.String(envKeyDump) == "1"
}
