// testing.go
package hclog

import (
	"context"
	"strings"
	"sync"
	"testing"
)

// TestEntry is one captured message.
type TestEntry struct {
	Level   Level
	Message string
}

// TestSink is an in-memory Sink with observation helpers for tests.
type TestSink struct {
	mu      sync.Mutex
	entries []TestEntry
}

// NewTestSink creates an empty capture sink.
func NewTestSink() *TestSink {
	return &TestSink{}
}

// CaptureKey swaps the resolved key's sink for a fresh TestSink and returns
// it. The key's level, options and facade value stay untouched, so the
// capture observes exactly what the real sink would have received.
func CaptureKey(ctx context.Context, key Key) (*TestSink, error) {
	sink := NewTestSink()
	err := callMut(ctx, func(r *registryData) error {
		sub, err := lookup(r, key)
		if err != nil {
			return err
		}
		sub.sink = sink
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sink, nil
}

func (s *TestSink) Log(lvl Level, msg string) error {
	s.mu.Lock()
	s.entries = append(s.entries, TestEntry{Level: lvl, Message: msg})
	s.mu.Unlock()
	return nil
}

func (s *TestSink) Syslog() bool { return false }

// All returns all captured entries.
func (s *TestSink) All() []TestEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]TestEntry(nil), s.entries...)
}

// Reset clears all captured entries.
func (s *TestSink) Reset() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
}

// AssertLogged verifies a message at lvl containing msgContains was captured.
func (s *TestSink) AssertLogged(tb testing.TB, lvl Level, msgContains string) {
	tb.Helper()
	for _, e := range s.All() {
		if e.Level == lvl && strings.Contains(e.Message, msgContains) {
			return
		}
	}
	tb.Errorf("expected message at %v containing %q, captured: %+v", lvl, msgContains, s.All())
}

// AssertNotLogged verifies no message at lvl containing msgContains was
// captured.
func (s *TestSink) AssertNotLogged(tb testing.TB, lvl Level, msgContains string) {
	tb.Helper()
	for _, e := range s.All() {
		if e.Level == lvl && strings.Contains(e.Message, msgContains) {
			tb.Errorf("unexpected message at %v containing %q", lvl, msgContains)
		}
	}
}
