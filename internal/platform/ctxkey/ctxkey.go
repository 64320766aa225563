// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

// Package ctxkey holds the typed context keys shared by the middleware
// chain and the response helpers. Keeping them in a leaf package avoids an
// import cycle between middleware and respond.
package ctxkey

// key is unexported so no other package can construct a colliding context
// key, even with the same string value.
type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyLogger is the context key for the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
