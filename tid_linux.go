// tid_linux.go
//go:build linux

package hclog

import "golang.org/x/sys/unix"

// threadID returns the kernel thread id of the calling thread. The value is
// only meaningful as a process-local identifier.
func threadID() int {
	return unix.Gettid()
}
