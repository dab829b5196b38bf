// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/codeacademy/gatekeeper/internal/platform/middleware"
	"github.com/codeacademy/gatekeeper/internal/platform/respond"
)

// Handler implements the student directory HTTP endpoints.
type Handler struct {
	directoryService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{directoryService: service}
}

// Routes returns a [chi.Router] with the directory routes.
//
// # Endpoints (protected)
//   - GET / : Directory listing with optional ?search= filter.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", handler.list)
	})

	return router
}

/*
List returns the student directory with aggregate statistics.

GET /api/v1/students?search=<term>

Response:
  - 200: Matching students, cohort stats, and the match count
  - 401: Missing/invalid token
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	search := request.URL.Query().Get("search")

	students, stats, err := handler.directoryService.List(request.Context(), search)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"students": students,
		"stats":    stats,
		"total":    len(students),
	})
}
