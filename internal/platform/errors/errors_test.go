package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeAuth, http.StatusUnauthorized},
		{ErrorCodeQuotaExceeded, http.StatusTooManyRequests},
		{ErrorCodeNetwork, http.StatusBadGateway},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // default branch
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}
	if e.Retryable() || e.RetryAfter() != 0 {
		t.Fatalf("nil *Error reported retry metadata")
	}

	// New / Newf
	e1 := New(ErrorCodeValidation, "bad input")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeNetwork, "bad gateway %d", 502)
	if got := e2.Error(); got != "bad gateway 502" {
		t.Fatalf("Newf().Error = %q", got)
	}

	// Wrap / Wrapf / Unwrap
	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeNetwork, "fetch failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	e4 := Wrapf(src, ErrorCodeAuth, "nope %s", "here")
	if want := "nope here: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}

	// As
	if got, ok := As(e4); !ok || got.Code() != ErrorCodeAuth {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	// WithField / WithOp (copy-on-write)
	e5 := Wrap(src, ErrorCodeValidation, "oops")
	e6 := WithField(e5, "login")
	e7 := WithOp(e6, "profile")
	if fe, ok := As(e6); !ok || fe.Field() != "login" {
		t.Fatalf("WithField failed")
	}
	if oe, ok := As(e7); !ok || oe.Op() != "profile" {
		t.Fatalf("WithOp failed")
	}
	if fe0, _ := As(e5); fe0.Field() != "" || fe0.Op() != "" {
		t.Fatalf("copy-on-write mutated original")
	}

	// Root walks to the deepest cause
	deep := Wrap(Wrap(src, ErrorCodeNetwork, "mid"), ErrorCodeNetwork, "outer")
	if Root(deep) != src {
		t.Fatalf("Root did not reach the original cause")
	}
}

func TestRetryMetadata(t *testing.T) {
	if Retryable(Authf("bad token")) {
		t.Fatalf("auth errors must never be retryable")
	}
	if Retryable(Validationf("bad login")) {
		t.Fatalf("validation errors must never be retryable")
	}
	if !Retryable(Networkf(true, "503")) {
		t.Fatalf("transient network errors should be retryable")
	}
	if Retryable(Networkf(false, "404")) {
		t.Fatalf("non-transient network errors must not be retryable")
	}
	if Retryable(stderrs.New("foreign")) {
		t.Fatalf("foreign errors default to not retryable")
	}

	// wrapping keeps the cause visible without flipping retryability
	cause := fmt.Errorf("dial tcp: connection refused")
	ne := NetworkWrap(cause, true, "github do failed")
	if !Retryable(ne) || !stderrs.Is(ne, cause) {
		t.Fatalf("NetworkWrap lost cause or flag")
	}
}

func TestQuotaExceeded(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reset := now.Add(90 * time.Second)

	err := QuotaExceeded(5000, 0, reset, now)
	if CodeOf(err) != ErrorCodeQuotaExceeded || !Retryable(err) {
		t.Fatalf("quota error misclassified: %v", err)
	}
	ra, ok := RetryAfterOf(err)
	if !ok || ra != 90*time.Second {
		t.Fatalf("RetryAfterOf = %v, %v", ra, ok)
	}
	q, ok := QuotaOf(err)
	if !ok || q.Limit != 5000 || q.Remaining != 0 || !q.ResetAt.Equal(reset) {
		t.Fatalf("QuotaOf = %+v, %v", q, ok)
	}

	// reset in the past floors retryAfter at zero
	stale := QuotaExceeded(5000, 0, now.Add(-time.Minute), now)
	if e, _ := As(stale); e.RetryAfter() != 0 {
		t.Fatalf("retryAfter not floored: %v", e.RetryAfter())
	}

	// quota facts absent on other kinds
	if _, ok := QuotaOf(Networkf(true, "502")); ok {
		t.Fatalf("QuotaOf returned facts for a network error")
	}
}

func TestWireFrom(t *testing.T) {
	if wf := WireFrom(nil); wf != (Wire{}) {
		t.Fatalf("WireFrom(nil) expected zero, got %+v", wf)
	}
	src := stderrs.New("root")
	if wf := WireFrom(src); wf.Code != ErrorCodeUnknown || wf.Message != "root" {
		t.Fatalf("WireFrom(foreign) mismatch: %+v", wf)
	}
	// WireFrom for our error uses only e.msg (not "msg: orig")
	e := Wrapf(src, ErrorCodeAuth, "nope here")
	if wf := WireFrom(e); wf.Code != ErrorCodeAuth || wf.Message != "nope here" || wf.Retryable {
		t.Fatalf("WireFrom(ours) mismatch: %+v", wf)
	}

	if st, _ := HTTP(nil); st != http.StatusOK {
		t.Fatalf("HTTP(nil) status = %d", st)
	}
	if st, w := HTTP(QuotaExceeded(60, 0, time.Now(), time.Now())); st != http.StatusTooManyRequests || !w.Retryable {
		t.Fatalf("HTTP(quota) = %d, %+v", st, w)
	}
}
