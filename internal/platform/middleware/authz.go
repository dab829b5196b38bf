// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

package middleware

import (
	"net/http"
	"strings"

	"github.com/codeacademy/gatekeeper/internal/platform/apperr"
	"github.com/codeacademy/gatekeeper/internal/platform/constants"
	"github.com/codeacademy/gatekeeper/internal/platform/ctxutil"
	"github.com/codeacademy/gatekeeper/internal/platform/respond"
	"github.com/codeacademy/gatekeeper/internal/platform/sec"
)

// # Auth Gate

// Rejection messages. Every failed verification collapses into one of these
// two strings so a caller cannot probe which sub-check failed.
const (
	msgTokenRequired = "Access token required"
	msgTokenInvalid  = "Invalid or expired token"
)

// TokenVerifier defines the interface needed to verify session tokens.
//
// # Why an interface?
//
// Declaring TokenVerifier here decouples the gate from [sec.TokenService],
// allowing mocks to be injected during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.SessionClaims, error)
}

// Authenticate extracts and verifies the bearer token from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, the request proceeds as anonymous ([RequireAuth] blocks it later).
//  3. A present header with a wrong scheme is rejected outright.
//  4. Verify the token via [TokenVerifier]; on success inject the resolved
//     [*sec.SessionClaims] identity into the request context.
//
// The injected identity is claims only, never a live account record. Handlers
// that need account data re-fetch it from the store and handle the account
// having been removed since the token was minted.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Scheme Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized(msgTokenRequired))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(parts[1])
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized(msgTokenInvalid))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithIdentity(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetIdentity(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized(msgTokenRequired))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
