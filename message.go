// message.go
package hclog

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Layouts for the datestamp and timestamp fields.
const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04:05"
	timeNanoLayout = "15:04:05.000000000"
)

// message carries one log call through formatting. Field order in the
// rendered output is fixed: datestamp, timestamp, binary name, [pid/tid],
// severity, key name, scope, file:line, function, text. Each enabled field
// is followed by a single space.
type message struct {
	opts       Options
	now        time.Time
	binName    string
	severity   Level
	modName    string
	env        scopeEnv
	envIdent   string
	file       string
	line       int
	funcName   string
	text       string
}

func newMessage(opts Options, binName, file, funcName string, line int, text string) message {
	return message{
		opts:     opts,
		now:      time.Now(),
		binName:  binName,
		file:     file,
		funcName: funcName,
		line:     line,
		text:     text,
	}
}

func (m *message) render() string {
	var b strings.Builder
	if m.opts.Has(OptDatestamp) {
		b.WriteString(m.now.Format(dateLayout))
		b.WriteString(" ")
	}
	if m.opts.Has(OptTimestamp) {
		if m.opts.Has(OptNanosec) {
			b.WriteString(m.now.Format(timeNanoLayout))
		} else {
			b.WriteString(m.now.Format(timeLayout))
		}
		b.WriteString(" ")
	}
	if m.opts.Has(OptBinName) {
		b.WriteString(m.binName)
	}
	// The pid/tid block doubles as the separator after the binary name:
	// with neither id enabled the name still gets its trailing space.
	switch {
	case m.opts.Has(OptPid) && m.opts.Has(OptTid):
		fmt.Fprintf(&b, "[%d/%d] ", os.Getpid(), threadID())
	case m.opts.Has(OptPid):
		fmt.Fprintf(&b, "[%d] ", os.Getpid())
	case m.opts.Has(OptTid):
		fmt.Fprintf(&b, "[%d] ", threadID())
	case m.opts.Has(OptBinName):
		b.WriteString(" ")
	}
	if m.opts.Has(OptSeverity) {
		b.WriteString(m.severity.String())
		b.WriteString(" ")
	}
	if m.opts.Has(OptModule) {
		b.WriteString(m.modName)
		b.WriteString(" ")
	}
	if m.opts.Has(OptScope) {
		if m.envIdent != "" {
			fmt.Fprintf(&b, "%s[%s] ", m.env, m.envIdent)
		} else {
			fmt.Fprintf(&b, "%s ", m.env)
		}
	}
	// file=false implicitly also disables the line number
	if m.opts.Has(OptFile) {
		if m.opts.Has(OptLine) {
			fmt.Fprintf(&b, "%s:%d ", m.file, m.line)
		} else {
			b.WriteString(m.file)
			b.WriteString(" ")
		}
	}
	if m.opts.Has(OptFunc) && m.funcName != "" {
		b.WriteString(m.funcName)
		b.WriteString(" ")
	}
	b.WriteString(m.text)
	return b.String()
}
