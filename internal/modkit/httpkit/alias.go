// Package httpkit re-exports the platform http surface for modules so
// they depend on one seam instead of the platform package directly
package httpkit

import (
	"net/http"

	phttp "devpulse/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope
	Envelope = phttp.Envelope

	// Response is what adapted handlers return
	Response = phttp.Response

	// Handler is the platform handler shape
	Handler = phttp.Handler

	// Router is the platform routing seam
	Router = phttp.Router
)

// Call adapts a data-or-error handler into the envelope writer. A
// handler that already returns a Response passes through untouched
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}
