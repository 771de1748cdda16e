package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// chiAdapter wraps any chi.Router (the root mux or a subrouter) behind
// the platform Router seam
type chiAdapter struct{ r chi.Router }

// AdaptChi adapts a chi mux to the Router seam
func AdaptChi(m *chi.Mux) Router { return chiAdapter{r: m} }

func (a chiAdapter) Get(path string, h Handler) {
	a.r.Method(http.MethodGet, path, http.HandlerFunc(h))
}

func (a chiAdapter) Handle(path string, h http.Handler) { a.r.Handle(path, h) }

func (a chiAdapter) Use(mw ...func(http.Handler) http.Handler) { a.r.Use(mw...) }

func (a chiAdapter) Group(fn func(Router)) {
	a.r.Group(func(sub chi.Router) { fn(chiAdapter{r: sub}) })
}

func (a chiAdapter) Route(pattern string, fn func(Router)) {
	a.r.Route(pattern, func(sub chi.Router) { fn(chiAdapter{r: sub}) })
}

func (a chiAdapter) Mux() http.Handler { return a.r }
