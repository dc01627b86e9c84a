package testutil

import (
	"context"
	"sync"
	"testing"
)

// FakeToolkit is an in-memory toolkit.Toolkit recording the order of
// capability calls, for invariant tests that count setups and teardowns.
type FakeToolkit struct {
	mu        sync.Mutex
	calls     []string
	setupArgs [][]string
	active    bool

	SetupErr    error
	StartErr    error
	TeardownErr error
}

// Setup implements toolkit.Toolkit.
func (f *FakeToolkit) Setup(_ context.Context, args []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "setup")
	f.setupArgs = append(f.setupArgs, args)
	if f.SetupErr != nil {
		return f.SetupErr
	}
	f.active = true
	return nil
}

// Start implements toolkit.Toolkit.
func (f *FakeToolkit) Start(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "start")
	return f.StartErr
}

// Teardown implements toolkit.Toolkit.
func (f *FakeToolkit) Teardown(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "teardown")
	f.active = false
	return f.TeardownErr
}

// Active implements toolkit.Toolkit.
func (f *FakeToolkit) Active(_ context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

// Calls returns the ordered capability call log.
func (f *FakeToolkit) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Count returns how many times the named capability was invoked.
func (f *FakeToolkit) Count(name string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == name {
			n++
		}
	}
	return n
}

// SetupArgs returns the argument tokens of every setup call.
func (f *FakeToolkit) SetupArgs() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]string, len(f.setupArgs))
	copy(out, f.setupArgs)
	return out
}

// RequireOrder fails the test unless want is a subsequence-equal prefix of
// the recorded call log.
func RequireOrder(t *testing.T, f *FakeToolkit, want ...string) {
	t.Helper()
	got := f.Calls()
	if len(got) < len(want) {
		t.Fatalf("expected at least %d toolkit calls, got %d: %v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("toolkit call %d: expected %q, got %q (full log: %v)", i, w, got[i], got)
		}
	}
}
