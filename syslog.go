// syslog.go
//go:build !windows && !plan9

package hclog

import (
	"fmt"
	"log/syslog"
)

var syslogFacilities = map[string]syslog.Priority{
	"kern":   syslog.LOG_KERN,
	"user":   syslog.LOG_USER,
	"mail":   syslog.LOG_MAIL,
	"daemon": syslog.LOG_DAEMON,
	"auth":   syslog.LOG_AUTH,
	"syslog": syslog.LOG_SYSLOG,
	"lpr":    syslog.LOG_LPR,
	"news":   syslog.LOG_NEWS,
	"uucp":   syslog.LOG_UUCP,
	"local0": syslog.LOG_LOCAL0,
	"local1": syslog.LOG_LOCAL1,
	"local2": syslog.LOG_LOCAL2,
	"local3": syslog.LOG_LOCAL3,
	"local4": syslog.LOG_LOCAL4,
	"local5": syslog.LOG_LOCAL5,
	"local6": syslog.LOG_LOCAL6,
	"local7": syslog.LOG_LOCAL7,
}

// syslogSink forwards messages to the system log daemon. The daemon adds
// timestamp, pid and severity itself; the matching formatting options are
// suppressed by the submodule.
type syslogSink struct {
	w *syslog.Writer
}

func newSyslogSink(facility string) (*syslogSink, error) {
	prio, ok := syslogFacilities[facility]
	if !ok {
		return nil, fmt.Errorf("syslog facility %q: %w", facility, ErrUnknownFacade)
	}
	w, err := syslog.New(prio, "")
	if err != nil {
		return nil, fmt.Errorf("connect syslog: %w", err)
	}
	return &syslogSink{w: w}, nil
}

func (s *syslogSink) Log(lvl Level, msg string) error {
	var err error
	switch {
	case lvl == Off:
		return nil
	case lvl == Emerg:
		err = s.w.Emerg(msg)
	case lvl == Alert:
		err = s.w.Alert(msg)
	case lvl == Crit:
		err = s.w.Crit(msg)
	case lvl == Error:
		err = s.w.Err(msg)
	case lvl == Warn:
		err = s.w.Warning(msg)
	case lvl == Notice:
		err = s.w.Notice(msg)
	case lvl == Info:
		err = s.w.Info(msg)
	default: // Debug1..Debug10 all map to the single syslog debug severity
		err = s.w.Debug(msg)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

func (s *syslogSink) Syslog() bool { return true }
