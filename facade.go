// facade.go
package hclog

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// Sink consumes formatted messages for one output target. Implementations
// must be safe for concurrent use; a single sink instance is shared between
// every key configured with the same facade.
type Sink interface {
	// Log writes one formatted message.
	Log(lvl Level, msg string) error
	// Syslog reports whether the sink forwards to the system log daemon,
	// which supplies timestamp, pid and severity itself.
	Syslog() bool
}

type facadeKind int

const (
	facadeNone facadeKind = iota
	facadeStdOut
	facadeStdErr
	facadeSyslog
	facadeFile
)

// FacadeVariant is the configuration value describing an output target.
// It is pure configuration; the live sink is constructed separately and
// memoized per distinct variant.
type FacadeVariant struct {
	kind     facadeKind
	facility string // syslog only
	path     string // file only
	truncate bool   // file only
}

// Disabled returns the facade that drops every message.
func Disabled() FacadeVariant { return FacadeVariant{kind: facadeNone} }

// StdOut returns the facade writing to standard output.
func StdOut() FacadeVariant { return FacadeVariant{kind: facadeStdOut} }

// StdErr returns the facade writing to standard error.
func StdErr() FacadeVariant { return FacadeVariant{kind: facadeStdErr} }

// Syslog returns the facade forwarding to the system log daemon with the
// given facility name (e.g. "user", "daemon", "local0").
func Syslog(facility string) FacadeVariant {
	return FacadeVariant{kind: facadeSyslog, facility: facility}
}

// File returns the facade appending to the file at path. With truncate the
// file is emptied when the sink is first constructed.
func File(path string, truncate bool) FacadeVariant {
	return FacadeVariant{kind: facadeFile, path: path, truncate: truncate}
}

// ParseFacade parses a facade name case-insensitively: "none", "stdout",
// "stderr", "syslog" (facility "user") or "file" (/tmp/hclog.log). Unknown
// names yield ErrUnknownFacade.
func ParseFacade(s string) (FacadeVariant, error) {
	switch strings.ToLower(s) {
	case "none":
		return Disabled(), nil
	case "stdout":
		return StdOut(), nil
	case "stderr":
		return StdErr(), nil
	case "syslog":
		return Syslog("user"), nil
	case "file":
		return File("/tmp/hclog.log", false), nil
	default:
		return FacadeVariant{}, fmt.Errorf("%q: %w", s, ErrUnknownFacade)
	}
}

// String renders the variant for dumps and cache keying.
func (v FacadeVariant) String() string {
	switch v.kind {
	case facadeStdOut:
		return "stdout"
	case facadeStdErr:
		return "stderr"
	case facadeSyslog:
		return "syslog:" + v.facility
	case facadeFile:
		if v.truncate {
			return "file:" + v.path + ":truncate"
		}
		return "file:" + v.path
	default:
		return "none"
	}
}

// sinkCache holds one live sink per distinct facade configuration. Multiple
// submodules pointing at the same variant share the same open handle.
var sinkCache = struct {
	mu    sync.Mutex
	sinks map[string]Sink
}{sinks: make(map[string]Sink)}

// sink resolves the variant into its shared live sink. A Disabled variant
// resolves to nil.
func (v FacadeVariant) sink() (Sink, error) {
	if v.kind == facadeNone {
		return nil, nil
	}
	key := v.String()

	sinkCache.mu.Lock()
	defer sinkCache.mu.Unlock()
	if s, ok := sinkCache.sinks[key]; ok {
		return s, nil
	}

	var (
		s   Sink
		err error
	)
	switch v.kind {
	case facadeStdOut:
		s = newConsoleSink(os.Stdout)
	case facadeStdErr:
		s = newConsoleSink(os.Stderr)
	case facadeSyslog:
		s, err = newSyslogSink(v.facility)
	case facadeFile:
		s, err = newFileSink(v.path, v.truncate)
	}
	if err != nil {
		return nil, err
	}
	sinkCache.sinks[key] = s
	return s, nil
}

// consoleSink writes to an attached standard stream. On a terminal the
// kernel already delivers writes line-wise and messages go out directly; on
// a pipe or redirect the stream is buffered and flushed per message.
type consoleSink struct {
	mu  sync.Mutex
	out *os.File
	buf *bufio.Writer // nil on a terminal
}

func newConsoleSink(f *os.File) *consoleSink {
	s := &consoleSink{out: f}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		s.buf = bufio.NewWriter(f)
	}
	return s
}

func (s *consoleSink) Log(_ Level, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf != nil {
		if _, err := s.buf.WriteString(msg + "\n"); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
		if err := s.buf.Flush(); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
		return nil
	}
	if _, err := s.out.WriteString(msg + "\n"); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

func (s *consoleSink) Syslog() bool { return false }

// fileSink appends messages to a log file, flushing after every message.
type fileSink struct {
	mu  sync.Mutex
	f   *os.File
	buf *bufio.Writer
}

func newFileSink(path string, truncate bool) (*fileSink, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if truncate {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return &fileSink{f: f, buf: bufio.NewWriter(f)}, nil
}

func (s *fileSink) Log(_ Level, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.buf.WriteString(msg + "\n"); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := s.buf.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

func (s *fileSink) Syslog() bool { return false }
