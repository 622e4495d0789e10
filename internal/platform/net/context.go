// Package net provides request context values and the transport envelope
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyToken ctxKey = "gmp_token"

// WithRequestID stores reqID where chimw.GetReqID finds it
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// WithToken annotates ctx with the caller's management protocol session token
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, keyToken, token)
}

// Token returns the session token forwarded to the management backend, empty if none
func Token(ctx context.Context) string {
	v, _ := ctx.Value(keyToken).(string)
	return v
}
