// level.go
package hclog

import (
	"fmt"
	"strings"
)

// Level describes the importance of a log message.
//
// The base levels follow the syslog severities. Instead of a single DEBUG
// level there are ten, Debug1 (least verbose) through Debug10 (most verbose),
// for fine-grained control. Off disables logging entirely and never matches.
type Level int

const (
	// Off disables logging. It is the default for new scopes.
	Off Level = iota
	// Emerg: system is unusable.
	Emerg
	// Alert: action must be taken immediately.
	Alert
	// Crit: critical conditions.
	Crit
	// Error: error conditions.
	Error
	// Warn: warning conditions.
	Warn
	// Notice: normal but significant condition.
	Notice
	// Info: informational messages.
	Info
	// Debug1 is the least verbose debug level.
	Debug1
	Debug2
	Debug3
	Debug4
	Debug5
	Debug6
	Debug7
	Debug8
	Debug9
	// Debug10 is the most verbose debug level.
	Debug10
)

// MinLevel and MaxLevel bound the valid Level range.
const (
	MinLevel = Off
	MaxLevel = Debug10
)

var levelNames = []string{
	"off", "emerg", "alert", "crit", "error", "warn", "notice", "info",
	"debug1", "debug2", "debug3", "debug4", "debug5", "debug6", "debug7",
	"debug8", "debug9", "debug10",
}

// String returns the lowercase name of the level.
func (l Level) String() string {
	if l < MinLevel || l > MaxLevel {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// Enabled reports whether a message at level other passes a threshold of l.
func (l Level) Enabled(other Level) bool {
	return other <= l
}

// ParseLevel parses a level name case-insensitively.
// Unknown names yield ErrUnknownLevel.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return Off, fmt.Errorf("%q: %w", s, ErrUnknownLevel)
}

// DebugLevel maps a numeric verbosity to a Level: 0 is Off, 1..10 are
// Debug1..Debug10, anything above is clamped to Debug10. Used for the
// HCLOG_DEBUG diagnostic verbosity override.
func DebugLevel(n int) Level {
	switch {
	case n <= 0:
		return Off
	case n >= 10:
		return Debug10
	default:
		return Info + Level(n)
	}
}
