package http

import (
	stdhttp "net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler exposes pprof under prefix (for example "/debug") when
// enabled, and mounts nothing at all otherwise
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	pprof := stdhttp.StripPrefix(prefix, chimw.Profiler())
	serve := func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		pprof.ServeHTTP(w, req)
	}
	r.Get(prefix, serve)
	r.Get(prefix+"/*", serve)
}
