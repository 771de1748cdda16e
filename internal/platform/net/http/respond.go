// Package http provides the envelope writer and handler adapters used
// by every endpoint
package http

import (
	"encoding/json"
	stdhttp "net/http"

	pnet "devpulse/internal/platform/net"
)

// Envelope is the standard response body, shared with the wire package
type Envelope = pnet.Wire

// JSON writes v with the given status as application/json
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondOK writes a 200 envelope around data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	status, wire := pnet.OK(data, pnet.RequestID(r.Context()))
	JSON(w, status, wire)
}

// RespondError writes the envelope for err with its mapped status
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, wire := pnet.Error(err, pnet.RequestID(r.Context()))
	JSON(w, status, wire)
}

// Response is what handlers return instead of writing to the wire directly
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// Handle adapts a Response returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	// a Body that is an error picks its own status
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	_, wire := pnet.OK(resp.Body, pnet.RequestID(r.Context()))
	if status != stdhttp.StatusOK {
		wire.StatusCode = status
		wire.Status = stdhttp.StatusText(status)
	}
	JSON(w, status, wire)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Data is an alias for OK
func Data(v any) Response { return OK(v) }

// Error defers status mapping to the error itself
func Error(err error) Response { return Response{Body: err} }
