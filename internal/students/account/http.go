// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/codeacademy/gatekeeper/internal/platform/middleware"
	requestutil "github.com/codeacademy/gatekeeper/internal/platform/request"
	"github.com/codeacademy/gatekeeper/internal/platform/respond"
	"github.com/codeacademy/gatekeeper/internal/platform/validate"
	"github.com/codeacademy/gatekeeper/internal/students/auth"
)

// Handler implements the current-student HTTP endpoints.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] with the current-student routes.
//
// # Endpoints (all protected)
//   - GET  /          : Current student's profile.
//   - PUT  /          : Update mutable profile fields.
//   - GET  /dashboard : Dashboard stats and activity feed.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", handler.profile)
		r.Put("/", handler.updateProfile)
		r.Get("/dashboard", handler.dashboard)
	})

	return router
}

// # Request Payloads

type updateProfileRequest struct {
	FullName *string `json:"full_name"`
	Course   *string `json:"course"`
}

/*
Profile returns the authenticated student's own record.

GET /api/v1/students/me

Response:
  - 200: Student profile (no hash)
  - 401: Missing/invalid token, or the account no longer exists
*/
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	studentID, err := requestutil.RequiredStudentID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	student, err := handler.accountService.GetProfile(request.Context(), studentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, student)
}

/*
UpdateProfile applies partial edits to the authenticated student's profile.

PUT /api/v1/students/me

Request:
  - Body: updateProfileRequest (FullName, Course — both optional)

Response:
  - 200: Updated student profile
  - 400: Validation failure (e.g. blank full name)
  - 401: Missing/invalid token
*/
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	studentID, err := requestutil.RequiredStudentID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateProfileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	if input.FullName != nil {
		validator.Required(auth.FieldFullName, *input.FullName)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	student, err := handler.accountService.UpdateProfile(request.Context(), studentID, UpdateProfileInput{
		FullName: input.FullName,
		Course:   input.Course,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, student)
}

/*
Dashboard returns the authenticated student's dashboard payload.

GET /api/v1/students/me/dashboard

Response:
  - 200: Profile summary, stats, and recent activity
  - 401: Missing/invalid token, or the account no longer exists
*/
func (handler *Handler) dashboard(writer http.ResponseWriter, request *http.Request) {
	studentID, err := requestutil.RequiredStudentID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	dashboard, err := handler.accountService.GetDashboard(request.Context(), studentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, dashboard)
}
