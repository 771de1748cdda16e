package testkit

import "testing"

func TestMustPanicAcceptsAPanic(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
}

func TestMustContainFindsSubstring(t *testing.T) {
	MustContain(t, "alpha beta gamma", "beta")
}
