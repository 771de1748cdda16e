package testkit

import "testing"

func TestSwapRestoresOnCleanup(t *testing.T) {
	v := "before"
	t.Run("inner", func(t *testing.T) {
		Swap(t, &v, "after")
		if v != "after" {
			t.Fatalf("v = %q inside the subtest", v)
		}
	})
	if v != "before" {
		t.Fatalf("v = %q after cleanup, want original", v)
	}
}

func TestSerialReleasesBetweenTests(t *testing.T) {
	// both subtests must acquire and release without deadlock
	t.Run("first", func(t *testing.T) { Serial(t) })
	t.Run("second", func(t *testing.T) { Serial(t) })
}
