// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

// Package sec provides cryptographic primitives and session token management.
//
// # Architecture
//
// This package isolates security-sensitive code (password hashing, JWT
// signing) from the domain logic. It is injected into the application layer
// behind small interfaces so services never touch key material directly.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// minSecretLength guards against accidentally shipping a trivial signing key.
const minSecretLength = 16

// SessionClaims represents the payload embedded inside a session token.
//
// # Why custom claims?
//
// Embedding the student ID and email directly inside the token lets the auth
// gate reconstruct the caller's identity without touching the store on every
// request. Handlers that need full account data re-fetch it themselves and
// must handle the account having since disappeared.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the token payload small.
	StudentID string `json:"sid"`
	Email     string `json:"eml"`
}

// TokenService issues and verifies HS256-signed session tokens.
//
// The signing secret is process-wide configuration, loaded once at startup.
// Rotating it invalidates every outstanding token; that is accepted behavior.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a TokenService from the configured signing secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("sec: token secret must be at least %d bytes", minSecretLength)
	}
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// Issue creates a signed session token for a student, valid for timeToLive.
func (service *TokenService) Issue(studentID, email string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   studentID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		StudentID: studentID,
		Email:     email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity window of a token string.
//
// Malformed payloads, wrong signatures, and expired tokens all collapse into
// the same opaque error so callers cannot leak which check failed.
func (service *TokenService) VerifyToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Pin the signing method. A token that claims "none" or an asymmetric
		// algorithm must never reach signature verification with our secret.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, errors.New("sec: invalid token")
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("sec: invalid token")
	}

	return claims, nil
}
