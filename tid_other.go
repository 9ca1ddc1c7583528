// tid_other.go
//go:build !linux

package hclog

import "os"

// threadID falls back to the process id on platforms without a directly
// queryable thread identifier.
func threadID() int {
	return os.Getpid()
}
