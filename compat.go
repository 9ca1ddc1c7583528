// compat.go
package hclog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

var compat struct {
	mu        sync.Mutex
	installed bool
}

// InitLogCompat registers the logcompat key and installs a slog default
// logger whose records are routed through it, so dependencies logging via
// log/slog land in the same sinks as native callers. The handler can be
// installed once per process; further calls return ErrCompatInitialized.
// A nil opts falls back to the internal scope defaults.
func InitLogCompat(lvl Level, facade FacadeVariant, opts *Options) error {
	compat.mu.Lock()
	defer compat.mu.Unlock()
	if compat.installed {
		return ErrCompatInitialized
	}

	key := KeyLogCompat
	key.InitLevel = &lvl
	key.InitFacade = &facade
	key.InitOptions = opts

	global.mu.Lock()
	err := initInternal(&global.data)
	if err == nil {
		var sc *scope
		if sc, err = global.data.scope(ScopeInternal); err == nil {
			err = sc.addSubmodule(key)
		}
	}
	global.mu.Unlock()
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(&compatHandler{}))
	compat.installed = true
	return nil
}

// compatHandler adapts slog records onto the logcompat key. Attributes are
// flattened into the message text as key=value pairs; groups become dotted
// key prefixes. The record's PC supplies the caller site, so file and line
// point at the slog call, not at this handler.
type compatHandler struct {
	attrs  []string
	prefix string
}

func (h *compatHandler) Enabled(ctx context.Context, level slog.Level) bool {
	ok, err := TestLog(ctx, KeyLogCompat, compatLevel(level))
	return err == nil && ok
}

func (h *compatHandler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		b.WriteString(" ")
		b.WriteString(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		b.WriteString(" ")
		b.WriteString(h.formatAttr(a))
		return true
	})

	var site Site
	if r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		site.File = filepath.Base(frame.File)
		site.Line = frame.Line
		site.Func = shortFunc(frame.Function)
	}
	return LogSite(ctx, KeyLogCompat, compatLevel(r.Level), site, "%s", b.String())
}

func (h *compatHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := &compatHandler{prefix: h.prefix}
	clone.attrs = append([]string(nil), h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, h.formatAttr(a))
	}
	return clone
}

func (h *compatHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &compatHandler{
		attrs:  append([]string(nil), h.attrs...),
		prefix: h.prefix + name + ".",
	}
}

func (h *compatHandler) formatAttr(a slog.Attr) string {
	return fmt.Sprintf("%s%s=%v", h.prefix, a.Key, a.Value.Resolve())
}

// compatLevel maps the open-ended slog level range onto the closed set:
// anything at or above a named slog level takes that severity, anything
// below Debug the deepest verbosity.
func compatLevel(l slog.Level) Level {
	switch {
	case l >= slog.LevelError:
		return Error
	case l >= slog.LevelWarn:
		return Warn
	case l >= slog.LevelInfo:
		return Info
	case l >= slog.LevelDebug:
		return Debug1
	default:
		return Debug10
	}
}

// shortFunc trims a fully qualified function name down to its last element.
func shortFunc(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}
