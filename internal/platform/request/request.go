// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts common body decoding and identity extraction patterns, ensuring
consistent error handling across handlers.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/codeacademy/gatekeeper/internal/platform/apperr"
	"github.com/codeacademy/gatekeeper/internal/platform/ctxutil"
	"github.com/codeacademy/gatekeeper/internal/platform/sec"
	"github.com/codeacademy/gatekeeper/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
RequiredIdentity ensures the request is authenticated and returns the claims.

Returns:
  - *sec.SessionClaims: The verified token claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredIdentity(request *http.Request) (*sec.SessionClaims, error) {

	claims := ctxutil.GetIdentity(request.Context())

	// If the gate did not resolve an identity, the handler must not proceed
	if claims == nil {
		return nil, apperr.Unauthorized("Access token required")
	}

	return claims, nil
}

/*
RequiredStudentID returns the student ID of the currently authenticated caller.

Returns:
  - string: Student ID (e.g. "STU004")
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredStudentID(request *http.Request) (string, error) {

	claims, err := RequiredIdentity(request)
	if err != nil {
		return "", err
	}

	return claims.StudentID, nil
}
