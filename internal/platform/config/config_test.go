package config

import (
	"testing"
	"time"

	kit "devpulse/internal/platform/testkit"
)

func TestPrefixesCompose(t *testing.T) {
	t.Setenv("CFG_GITHUB_TOKENS", "tok")

	c := New().Prefix("CFG_").Prefix("GITHUB_")
	if got := c.MayString("TOKENS", ""); got != "tok" {
		t.Fatalf("composed read = %q", got)
	}
}

func TestMayStringTrimsAndDefaults(t *testing.T) {
	c := New().Prefix("CFG_")
	t.Setenv("CFG_UA", "  devpulse  ")
	if got := c.MayString("UA", "x"); got != "devpulse" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("NOPE", "fallback"); got != "fallback" {
		t.Fatalf("MayString default = %q", got)
	}
}

func TestMayIntJunkFallsBack(t *testing.T) {
	c := New().Prefix("CFG_")
	t.Setenv("CFG_N", " 7 ")
	if got := c.MayInt("N", 0); got != 7 {
		t.Fatalf("MayInt = %d", got)
	}
	t.Setenv("CFG_N", "seven")
	if got := c.MayInt("N", 3); got != 3 {
		t.Fatalf("MayInt junk = %d, want default", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("CFG_")
	t.Setenv("CFG_FLAG", "true")
	if !c.MayBool("FLAG", false) {
		t.Fatal("true must parse")
	}
	t.Setenv("CFG_FLAG", "nope")
	if c.MayBool("FLAG", false) {
		t.Fatal("junk must fall back to the default")
	}
	if !c.MayBool("ABSENT", true) {
		t.Fatal("unset must return the default")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("CFG_")
	t.Setenv("CFG_TIMEOUT", "150ms")
	if got := c.MayDuration("TIMEOUT", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	t.Setenv("CFG_TIMEOUT", "soon")
	if got := c.MayDuration("TIMEOUT", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration junk = %v, want default", got)
	}
}

func TestMayPort(t *testing.T) {
	c := New().Prefix("CFG_")
	if got := c.MayPort("PORT", "4000"); got != ":4000" {
		t.Fatalf("MayPort default = %q", got)
	}
	t.Setenv("CFG_PORT", ":8080")
	if got := c.MayPort("PORT", "4000"); got != ":8080" {
		t.Fatalf("MayPort = %q", got)
	}
	t.Setenv("CFG_PORT", "70000")
	kit.MustPanic(t, func() { _ = c.MayPort("PORT", "4000") })
}
