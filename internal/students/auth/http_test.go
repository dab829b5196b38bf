// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

package auth_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeacademy/gatekeeper/internal/platform/middleware"
	"github.com/codeacademy/gatekeeper/internal/platform/sec"
	"github.com/codeacademy/gatekeeper/internal/students/auth"
)

type sessionPayload struct {
	Data struct {
		Token   string          `json:"token"`
		Student json.RawMessage `json:"student"`
	} `json:"data"`
}

type studentPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Course   string `json:"course"`
	Status   string `json:"status"`
}

func newAuthRouter(t *testing.T) chi.Router {
	t.Helper()

	store, err := auth.NewFileStore(t.TempDir())
	require.NoError(t, err)

	tokenService, err := sec.NewTokenService("0123456789abcdef0123456789abcdef", "codeacademy.app")
	require.NoError(t, err)

	service := auth.NewService(store, tokenService, slog.Default())

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(tokenService))
	router.Mount("/auth", auth.NewHandler(service).Routes())

	return router
}

func doJSON(t *testing.T, router chi.Router, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

/*
TestAuthRoutes_SignupLoginRoundTrip drives the full flow over HTTP:
register, then log in with the same credentials, and check that the
two sessions carry distinct tokens for the same student.
*/
func TestAuthRoutes_SignupLoginRoundTrip(t *testing.T) {
	router := newAuthRouter(t)

	signupBody := `{"full_name":"Alice Example","username":"alice","email":"alice@example.com","password":"secret1"}`
	signupResp := doJSON(t, router, http.MethodPost, "/auth/signup", signupBody, "")
	require.Equal(t, http.StatusCreated, signupResp.Code)

	var signup sessionPayload
	require.NoError(t, json.Unmarshal(signupResp.Body.Bytes(), &signup))
	require.NotEmpty(t, signup.Data.Token)

	var signupStudent studentPayload
	require.NoError(t, json.Unmarshal(signup.Data.Student, &signupStudent))
	assert.Equal(t, "STU001", signupStudent.ID)
	assert.Equal(t, "alice", signupStudent.Username)
	assert.Equal(t, auth.StatusActive, signupStudent.Status)

	// The digest must never appear in any response payload.
	assert.NotContains(t, signupResp.Body.String(), "password")
	assert.NotContains(t, signupResp.Body.String(), "$2a$")

	loginBody := `{"identifier":"alice","password":"secret1"}`
	loginResp := doJSON(t, router, http.MethodPost, "/auth/login", loginBody, "")
	require.Equal(t, http.StatusOK, loginResp.Code)

	var login sessionPayload
	require.NoError(t, json.Unmarshal(loginResp.Body.Bytes(), &login))
	require.NotEmpty(t, login.Data.Token)
	assert.NotEqual(t, signup.Data.Token, login.Data.Token)

	var loginStudent studentPayload
	require.NoError(t, json.Unmarshal(login.Data.Student, &loginStudent))
	assert.Equal(t, signupStudent.ID, loginStudent.ID)
}

/*
TestAuthRoutes_SignupValidation exercises the request validation
matrix for the signup endpoint.
*/
func TestAuthRoutes_SignupValidation(t *testing.T) {
	router := newAuthRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid_json", `{"full_name":`},
		{"missing_full_name", `{"username":"alice","email":"a@b.com","password":"secret1"}`},
		{"short_username", `{"full_name":"A B","username":"ab","email":"a@b.com","password":"secret1"}`},
		{"bad_email", `{"full_name":"A B","username":"alice","email":"not-an-email","password":"secret1"}`},
		{"short_password", `{"full_name":"A B","username":"alice","email":"a@b.com","password":"12345"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, router, http.MethodPost, "/auth/signup", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}

/*
TestAuthRoutes_SignupConflict returns 409 when the username or email
is already in use.
*/
func TestAuthRoutes_SignupConflict(t *testing.T) {
	router := newAuthRouter(t)

	body := `{"full_name":"Alice Example","username":"alice","email":"alice@example.com","password":"secret1"}`
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/auth/signup", body, "").Code)

	duplicate := doJSON(t, router, http.MethodPost, "/auth/signup", body, "")
	assert.Equal(t, http.StatusConflict, duplicate.Code)
}

/*
TestAuthRoutes_LoginFailures verifies the single generic rejection for
bad credentials.
*/
func TestAuthRoutes_LoginFailures(t *testing.T) {
	router := newAuthRouter(t)

	body := `{"full_name":"Alice Example","username":"alice","email":"alice@example.com","password":"secret1"}`
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/auth/signup", body, "").Code)

	unknown := doJSON(t, router, http.MethodPost, "/auth/login", `{"identifier":"nobody","password":"secret1"}`, "")
	wrongPass := doJSON(t, router, http.MethodPost, "/auth/login", `{"identifier":"alice","password":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, unknown.Body.String(), wrongPass.Body.String())
}

/*
TestAuthRoutes_Logout requires a valid session and returns a
confirmation message.
*/
func TestAuthRoutes_Logout(t *testing.T) {
	router := newAuthRouter(t)

	body := `{"full_name":"Alice Example","username":"alice","email":"alice@example.com","password":"secret1"}`
	signupResp := doJSON(t, router, http.MethodPost, "/auth/signup", body, "")
	require.Equal(t, http.StatusCreated, signupResp.Code)

	var signup sessionPayload
	require.NoError(t, json.Unmarshal(signupResp.Body.Bytes(), &signup))

	anonymous := doJSON(t, router, http.MethodPost, "/auth/logout", "", "")
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)

	authed := doJSON(t, router, http.MethodPost, "/auth/logout", "", signup.Data.Token)
	assert.Equal(t, http.StatusOK, authed.Code)
	assert.Contains(t, authed.Body.String(), "Logged out successfully")
}
