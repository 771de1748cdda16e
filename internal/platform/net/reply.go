// Package net carries the wire envelope and request scoped context
// helpers shared by every transport
package net

import (
	"net/http"

	perr "devpulse/internal/platform/errors"
)

// Wire is the envelope every endpoint responds with, success or not
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Retryable  bool           `json:"retryable,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func envelope(status int, reqID string) Wire {
	return Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
	}
}

// OK builds a 200 envelope around data
func OK(data any, reqID string) (int, Wire) {
	w := envelope(http.StatusOK, reqID)
	w.Data = data
	return http.StatusOK, w
}

// NoContent builds a bodyless 204 envelope
func NoContent(reqID string) (int, Wire) {
	return http.StatusNoContent, envelope(http.StatusNoContent, reqID)
}

// Error builds an error envelope, nil errors degrade to OK
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	status := perr.HTTPStatus(err)
	w := envelope(status, reqID)

	pw := perr.WireFrom(err)
	w.Code = pw.Code
	w.Error = pw.Message
	w.Retryable = pw.Retryable
	return status, w
}

// HTTPStatus maps an error to its transport status, nil is 200
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}
