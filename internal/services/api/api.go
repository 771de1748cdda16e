// Package api provides the HTTP API for the application
package api

import (
	stdhttp "net/http"

	"devpulse/internal/adapters/github"
	"devpulse/internal/platform/config"
	"devpulse/internal/platform/logger"
	phttp "devpulse/internal/platform/net/http"

	"devpulse/internal/core/version"
	"devpulse/internal/modkit"
	"devpulse/internal/modkit/httpkit"
	"devpulse/internal/modkit/module"

	activitymod "devpulse/internal/services/activity/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	GitHub         *github.Client
	Logger         *logger.Logger
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:    opt.Config,
		GitHub: opt.GitHub,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	activity := activitymod.New(deps)

	// unversioned liveness probe with build info
	phttp.GetJSON(r, "/healthz", func(*stdhttp.Request) (any, error) {
		return version.Info(), nil
	})

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		// register ports under the module name for cross-module lookups
		module.Register(activity.Name(), activity.Ports())

		activity.MountRoutes(api)
		activity.MountQuota(api)
	})
}
