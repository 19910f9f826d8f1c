// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyPage ctxKey = "page"

// WithRequest annotates context with the request id and the page being served
func WithRequest(ctx context.Context, reqID, page string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if page != "" {
		ctx = context.WithValue(ctx, keyPage, page)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// Page returns the page label on the context if present
func Page(ctx context.Context) string {
	if v, ok := ctx.Value(keyPage).(string); ok {
		return v
	}
	return ""
}
