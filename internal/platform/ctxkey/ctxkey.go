// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

// Package ctxkey defines typed context keys used by middleware and handlers.
//
// # Safety
//
// Per-request values (student identity, request ID, logger) are stored under
// a private key type so that no third-party package using string keys can
// collide with them.
package ctxkey

// key is an unexported type used for context keys to ensure type safety.
type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyIdentity is the context key for the verified token claims ([sec.SessionClaims]).
	KeyIdentity key = "identity"

	// KeyLogger is the context key for the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
