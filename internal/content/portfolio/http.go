// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package portfolio

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/vitrinehq/vitrine/internal/platform/request"
	"github.com/vitrinehq/vitrine/internal/platform/respond"
	"github.com/vitrinehq/vitrine/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listProjects)
	router.Get("/{id}", handler.getProject)
	router.Post("/", handler.saveProject)
	router.Delete("/", handler.deleteProject)
}

func (handler *Handler) listProjects(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	projects, total, err := handler.service.ListProjects(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, projects, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getProject(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	project, err := handler.service.GetProject(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, project)
}

// saveProject handles POST for both create and update: the dashboard submits
// the same form either way and marks an update by including the id.
func (handler *Handler) saveProject(writer http.ResponseWriter, request *http.Request) {
	var payload struct {
		ID string `json:"id"`
		Input
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if payload.ID != "" {
		project, err := handler.service.UpdateProject(request.Context(), payload.ID, payload.Input)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, project)
		return
	}

	project, err := handler.service.CreateProject(request.Context(), payload.Input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, project)
}

func (handler *Handler) deleteProject(writer http.ResponseWriter, request *http.Request) {
	var payload struct {
		ProjectID string   `json:"projectId"`
		ImageURLs []string `json:"imageUrls"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if payload.ProjectID == "" {
		respond.BadRequest(writer, "Project ID is required")
		return
	}

	if err := handler.service.DeleteProject(request.Context(), payload.ProjectID, payload.ImageURLs); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "Portfolio project deleted successfully"})
}
