package modkit

import (
	"net/http"

	"devpulse/internal/modkit/httpkit"
)

// Built is the resolved wiring a module keeps hold of
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build resolves opts into a Built. The router hooks default to no-ops
// so callers never have to nil check them
func Build(opts ...Option) Built {
	var s settings
	for _, o := range opts {
		o(&s)
	}

	out := Built{
		Name:      s.name,
		Prefix:    s.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), s.mw...),
		Ports:     s.ports,
		Subrouter: s.subrouter,
		Register:  s.register,
	}
	if out.Subrouter == nil {
		out.Subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if out.Register == nil {
		out.Register = func(httpkit.Router) {}
	}
	return out
}
