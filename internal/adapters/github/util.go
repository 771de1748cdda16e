package github

import (
	"io"
	"net/http"
	"strconv"
	"time"
)

// rateInfo is the quota facts carried on GitHub response headers
type rateInfo struct {
	limit     int
	remaining int
	reset     time.Time
}

// parseRateHeaders reads X-RateLimit-Limit/Remaining/Reset.
// ok is false when the remaining header is absent, which some proxies
// and error pages legitimately omit
func parseRateHeaders(h http.Header) (rateInfo, bool) {
	rem := h.Get("X-RateLimit-Remaining")
	if rem == "" {
		return rateInfo{}, false
	}
	out := rateInfo{
		limit:     atoi(h.Get("X-RateLimit-Limit")),
		remaining: atoi(rem),
	}
	if sec := atoi(h.Get("X-RateLimit-Reset")); sec > 0 {
		out.reset = time.Unix(int64(sec), 0).UTC()
	}
	return out, true
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	i, _ := strconv.Atoi(s)
	return i
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
