// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/codeacademy/gatekeeper/internal/platform/middleware"
	requestutil "github.com/codeacademy/gatekeeper/internal/platform/request"
	"github.com/codeacademy/gatekeeper/internal/platform/respond"
	"github.com/codeacademy/gatekeeper/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the authentication HTTP endpoints.
//
// This layer is strictly responsible for transport concerns (status codes,
// headers, JSON); all identity rules live in [Service].
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST /signup : Creates a new student account and returns a session token.
//   - POST /login  : Authenticates and returns a session token.
//   - POST /logout : Acknowledges a client-side token discard (protected).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/signup", handler.signup)
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/logout", handler.logout)
	})

	return router
}

// # Request Payloads

type signupRequest struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

/*
Signup handles the creation of a new student account.

POST /api/v1/auth/signup

Request:
  - Body: signupRequest (FullName, Username, Email, Password)

Response:
  - 201: Session token and the created student profile (no hash)
  - 400: Validation failure (missing field, email shape, short password/username)
  - 409: Username or email already exists
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldFullName, input.FullName).
		Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, MinUsernameLength).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, MinPasswordLength)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Signup(request.Context(), SignupInput{
		FullName: input.FullName,
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{
		FieldToken:   session.Token,
		FieldStudent: session.Student,
	})
}

/*
Login authenticates a student and issues a session token.

POST /api/v1/auth/login

Request:
  - Body: loginRequest (Identifier = username or email, Password)

Response:
  - 200: Session token and the student profile (no hash)
  - 401: One generic message for unknown identifier or wrong password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldIdentifier, input.Identifier)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Identifier: input.Identifier,
		Password:   input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldToken:   session.Token,
		FieldStudent: session.Student,
	})
}

/*
Logout acknowledges a client-side session termination.

POST /api/v1/auth/logout

Description: Tokens are stateless and the server keeps no session registry,
so there is nothing to revoke; the client discards the token and this
endpoint confirms the intent.

Response:
  - 200: Acknowledgement message
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{
		FieldMessage: "Logged out successfully",
	})
}
