package testkit

import (
	"sync"
	"testing"
)

// serialMu guards tests that mutate package level seams
var serialMu sync.Mutex

// Swap replaces *target for the duration of the test and restores the
// original on cleanup. target is usually a package level seam var
func Swap[T any](t *testing.T, target *T, with T) {
	t.Helper()
	saved := *target
	*target = with
	t.Cleanup(func() { *target = saved })
}

// Serial holds a process wide lock until the test finishes so tests that
// touch shared globals cannot interleave
func Serial(t *testing.T) {
	t.Helper()
	serialMu.Lock()
	t.Cleanup(serialMu.Unlock)
}
