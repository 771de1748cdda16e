package http

import "net/http"

// Handler is the function shape every platform route mounts
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the slim routing seam modules build against. The API is
// read only, so GET is the only verb the seam carries
type Router interface {
	Get(path string, h Handler)
	Handle(path string, h http.Handler)

	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
