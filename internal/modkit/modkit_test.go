package modkit_test

import (
	"net/http"
	"testing"

	"devpulse/internal/modkit"
	"devpulse/internal/modkit/httpkit"
)

func TestBuildDefaults(t *testing.T) {
	b := modkit.Build()

	if b.Name != "" || b.Prefix != "" || len(b.Mw) != 0 || b.Ports != nil {
		t.Fatalf("zero build not zero: %+v", b)
	}
	if b.Subrouter == nil || b.Register == nil {
		t.Fatalf("hooks must default to no-ops")
	}
	// no-op hooks must be callable
	if got := b.Subrouter(nil); got != nil {
		t.Fatalf("default subrouter must pass through")
	}
	b.Register(nil)
}

func TestBuildAppliesOptions(t *testing.T) {
	mw := func(next http.Handler) http.Handler { return next }
	type ports struct{ N int }

	var registered bool
	b := modkit.Build(
		modkit.WithName("activity"),
		modkit.WithPrefix("/activity"),
		modkit.WithMiddlewares(mw),
		modkit.WithPorts(ports{N: 7}),
		modkit.WithRegister(func(httpkit.Router) { registered = true }),
	)

	if b.Name != "activity" || b.Prefix != "/activity" {
		t.Fatalf("built = %+v", b)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("mw count = %d", len(b.Mw))
	}
	if p, ok := b.Ports.(ports); !ok || p.N != 7 {
		t.Fatalf("ports = %#v", b.Ports)
	}
	b.Register(nil)
	if !registered {
		t.Fatalf("register hook not applied")
	}
}
