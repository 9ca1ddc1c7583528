// syslog_other.go
//go:build windows || plan9

package hclog

import "fmt"

func newSyslogSink(facility string) (Sink, error) {
	return nil, fmt.Errorf("syslog unsupported on this platform: %w", ErrUnknownFacade)
}
