package middleware

import (
	"encoding/json"
	stdhttp "net/http"
	"runtime/debug"

	"devpulse/internal/platform/logger"
	pnet "devpulse/internal/platform/net"
)

// RecoverJSON turns a handler panic into a JSON 500 envelope so clients
// never see a bare text body, and logs the stack with the request id
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			status := stdhttp.StatusInternalServerError
			wire := pnet.Wire{
				StatusCode: status,
				Status:     stdhttp.StatusText(status),
				Error:      "internal error",
				RequestID:  reqID,
			}
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(wire)
		}()
		next.ServeHTTP(w, r)
	})
}
