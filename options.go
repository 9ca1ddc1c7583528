// options.go
package hclog

import "strings"

// Options is a bitmask of independent formatting toggles applied per key.
//
// Options combine with With (union) and Without (difference):
//
//	opts := hclog.DefaultOptions().Without(hclog.OptTimestamp).With(hclog.OptScope)
//
// Every flag can also be forced per process via HCLOG_OPT_<FLAG>=0|1, e.g.
// HCLOG_OPT_TIMESTAMP=0. Reset restores DefaultOptions merged with those
// environment overrides.
//
// Messages sent to a syslog facade never carry the timestamp, datestamp,
// nanosecond, binary-name, pid and severity fields; the syslog daemon
// supplies them.
type Options uint16

const (
	// OptNone has no flag set; messages carry only the formatted text.
	OptNone Options = 0
	// OptLineBuffered writes messages line buffered.
	OptLineBuffered Options = 1 << iota
	// OptTimestamp prefixes messages with a timestamp.
	OptTimestamp
	// OptDatestamp prefixes messages with a datestamp.
	OptDatestamp
	// OptNanosec suffixes the timestamp with nanoseconds.
	// Without OptTimestamp this flag has no effect.
	OptNanosec
	// OptBinName includes the scope name as set at registration.
	OptBinName
	// OptPid prefixes messages with the process id.
	OptPid
	// OptTid prefixes messages with the thread id.
	OptTid
	// OptModule prefixes messages with the key name.
	OptModule
	// OptSeverity prefixes messages with the severity label.
	OptSeverity
	// OptScope prefixes messages with the scope kind and task identity.
	OptScope
	// OptFunc prefixes messages with the calling function name.
	OptFunc
	// OptFile prefixes messages with the calling file name.
	OptFile
	// OptLine suffixes the file name with the line number.
	// Without OptFile this flag has no effect.
	OptLine
	// OptLogCompat enables the slog compatibility handler at registration.
	OptLogCompat
	// OptExactLevelMatch logs a message only when its level equals the
	// configured level exactly instead of treating the level as threshold.
	OptExactLevelMatch
)

// optionNames maps flags to their HCLOG_OPT_ environment suffixes.
var optionNames = []struct {
	flag Options
	name string
}{
	{OptLineBuffered, "LINEBUFFERED"},
	{OptTimestamp, "TIMESTAMP"},
	{OptDatestamp, "DATESTAMP"},
	{OptNanosec, "NANOSEC"},
	{OptBinName, "BINNAME"},
	{OptPid, "PID"},
	{OptTid, "TID"},
	{OptModule, "MODULE"},
	{OptSeverity, "SEVERITY"},
	{OptScope, "SCOPE"},
	{OptFunc, "FUNC"},
	{OptFile, "FILE"},
	{OptLine, "LINE"},
	{OptLogCompat, "LOG_COMPAT"},
	{OptExactLevelMatch, "EXACT_LVL_MATCH"},
}

// DefaultOptions returns the process-wide default flag set: everything
// except OptScope and OptExactLevelMatch.
func DefaultOptions() Options {
	return OptLineBuffered | OptTimestamp | OptDatestamp | OptNanosec |
		OptBinName | OptPid | OptTid | OptModule | OptSeverity |
		OptFunc | OptFile | OptLine | OptLogCompat
}

// Has reports whether all flags in sub are set.
func (o Options) Has(sub Options) bool {
	return o&sub == sub
}

// With returns o with the given flags added.
func (o Options) With(flags Options) Options {
	return o | flags
}

// Without returns o with the given flags removed.
func (o Options) Without(flags Options) Options {
	return o &^ flags
}

// Reset returns DefaultOptions merged with the HCLOG_OPT_* environment
// overrides. Malformed environment values yield ErrParseEnv.
func (o Options) Reset() (Options, error) {
	out := DefaultOptions()
	set, unset, err := envOptionOverrides()
	if err != nil {
		return o, err
	}
	return out.With(set).Without(unset), nil
}

// forSyslog strips the fields the system log daemon supplies itself.
func (o Options) forSyslog() Options {
	return o.Without(OptTimestamp | OptDatestamp | OptNanosec | OptBinName | OptPid | OptSeverity)
}

// String renders the set flags as "[TIMESTAMP, PID, ...]".
func (o Options) String() string {
	var b strings.Builder
	b.WriteString("[")
	first := true
	for _, e := range optionNames {
		if !o.Has(e.flag) {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		b.WriteString(e.name)
		first = false
	}
	b.WriteString("]")
	return b.String()
}
