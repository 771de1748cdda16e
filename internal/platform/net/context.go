package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest stores reqID where chi's GetReqID looks for it, so chi
// middleware and our handlers agree on the id. Empty ids are not stored
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID reads the request id, empty when none was set
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }
