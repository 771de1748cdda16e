package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "devpulse/internal/platform/errors"
	pnet "devpulse/internal/platform/net"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil is 200", nil, http.StatusOK},
		{"untyped is 500", errors.New("boom"), http.StatusInternalServerError},
		{"validation is 400", perr.Validationf("bad login"), http.StatusBadRequest},
		{"auth is 401", perr.Authf("nope"), http.StatusUnauthorized},
		{"quota is 429", perr.New(perr.ErrorCodeQuotaExceeded, "exhausted"), http.StatusTooManyRequests},
		{"network is 502", perr.Networkf(true, "upstream down"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := pnet.HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestOK(t *testing.T) {
	reqID := "req-1"
	data := map[string]any{"x": 1}

	status, w := pnet.OK(data, reqID)

	if status != http.StatusOK {
		t.Fatalf("status %d want %d", status, http.StatusOK)
	}
	if w.StatusCode != http.StatusOK || w.Status != http.StatusText(http.StatusOK) {
		t.Fatalf("wire status mismatch: %+v", w)
	}
	if w.RequestID != reqID {
		t.Fatalf("req id %q want %q", w.RequestID, reqID)
	}
	if got, ok := w.Data.(map[string]any)["x"]; !ok || got != 1 {
		t.Fatalf("data mismatch: %+v", w.Data)
	}
}

func TestNoContent(t *testing.T) {
	status, w := pnet.NoContent("req-3")

	if status != http.StatusNoContent {
		t.Fatalf("status %d want %d", status, http.StatusNoContent)
	}
	if w.Data != nil || w.Error != "" {
		t.Fatalf("no-content envelope carries payload: %+v", w)
	}
}

func TestError(t *testing.T) {
	t.Run("nil error falls through to OK", func(t *testing.T) {
		status, w := pnet.Error(nil, "req-4")
		if status != http.StatusOK || w.Error != "" {
			t.Fatalf("got %d %+v", status, w)
		}
	})

	t.Run("typed error carries code and retryability", func(t *testing.T) {
		err := perr.Networkf(true, "upstream flaked")
		status, w := pnet.Error(err, "req-5")

		if status != http.StatusBadGateway {
			t.Fatalf("status %d want 502", status)
		}
		if w.Code != perr.ErrorCodeNetwork {
			t.Fatalf("code %v want network", w.Code)
		}
		if !w.Retryable {
			t.Fatalf("retryable must survive into the envelope")
		}
		if w.Error == "" || w.RequestID != "req-5" {
			t.Fatalf("envelope incomplete: %+v", w)
		}
	})
}
