package modkit

import (
	"net/http"

	phttp "devpulse/internal/platform/net/http"
)

// Option tweaks the wiring a module asks Build for
type Option func(*settings)

type settings struct {
	name      string
	prefix    string
	mw        []func(http.Handler) http.Handler
	ports     any
	subrouter func(phttp.Router) phttp.Router
	register  func(phttp.Router)
}

// WithName names the module for logs and the port registry
func WithName(name string) Option { return func(s *settings) { s.name = name } }

// WithPrefix sets the mount prefix, "/activity" style
func WithPrefix(prefix string) Option { return func(s *settings) { s.prefix = prefix } }

// WithMiddlewares appends per module middleware in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(s *settings) { s.mw = append(s.mw, mw...) }
}

// WithPorts sets the port bundle the module registers
func WithPorts[T any](p T) Option { return func(s *settings) { s.ports = p } }

// WithSubrouter wraps the module router before routes are registered
func WithSubrouter(fn func(phttp.Router) phttp.Router) Option {
	return func(s *settings) { s.subrouter = fn }
}

// WithRegister adds caller endpoints after the module's own
func WithRegister(fn func(phttp.Router)) Option {
	return func(s *settings) { s.register = fn }
}
