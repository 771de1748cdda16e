// Package module wires activity into the API using modkit
package module

import (
	"net/http"
	"time"

	modkit "devpulse/internal/modkit"
	"devpulse/internal/modkit/httpkit"
	"devpulse/internal/platform/retry"
	str "devpulse/internal/platform/strings"
	activityhttp "devpulse/internal/services/activity/http"
	activitysvc "devpulse/internal/services/activity/service"
)

// Module implements the activity module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc activitysvc.Service
}

// New constructs the activity module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("activity"), modkit.WithPrefix("/activity")},
		opts...)...)

	svc := activitysvc.New(deps.GitHub, FromConfig(deps))

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Activity: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		activityhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// FromConfig derives service options from env config
func FromConfig(deps modkit.Deps) activitysvc.Options {
	cfg := deps.Cfg.Prefix("ACTIVITY_")
	return activitysvc.Options{
		MaxRepos: cfg.MayInt("MAX_REPOS", 10),
		Lookback: cfg.MayDuration("LOOKBACK", 365*24*time.Hour),
		Retry: retry.Options{
			MaxRetries: cfg.MayInt("MAX_RETRIES", 3),
			BaseDelay:  cfg.MayDuration("RETRY_BASE", time.Second),
			MaxDelay:   cfg.MayDuration("RETRY_MAX", time.Minute),
		},
	}
}

// Service exposes the module service for in-process callers
func (m *Module) Service() activitysvc.Service { return m.svc }

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// MountQuota mounts the quota endpoint outside the module prefix
func (m *Module) MountQuota(r httpkit.Router) {
	activityhttp.RegisterQuota(r, m.svc)
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
