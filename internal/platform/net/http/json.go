package http

import (
	"net/http"

	"devpulse/internal/platform/net/http/bind"
)

// QueryHandler binds query parameters into T, validates them, and only
// then calls fn. Binding failures surface as Validation errors
func QueryHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseQuery[T](r)
		if err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}
