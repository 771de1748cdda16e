package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"devpulse/internal/platform/net/middleware"
)

// CommonStack is the baseline chain for the versioned API. Order
// matters: ids before logging, recovery before handlers, timeout last
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: 500 * time.Millisecond}),
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Throttle(256),
		middleware.Heartbeat("/health"),
		middleware.Timeout(30 * time.Second),
	}
}
