// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package heromedia

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
	router.Get("/", handler.listMedia)
	router.Post("/", handler.createMedia)
	router.Delete("/", handler.deleteMedia)
}

func (handler *Handler) listMedia(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	items, total, err := handler.service.ListMedia(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, items, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) createMedia(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.Type == "" || input.Src == "" {
		respond.BadRequest(writer, "Media type and source URL are required")
		return
	}

	item, err := handler.service.CreateMedia(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, item)
}

// deleteMedia handles DELETE with the id in the query string, the way the
// legacy dashboard calls it. A failed delete reports 400, not 404: the
// dashboard treats a stale id as a bad request and refreshes its list.
func (handler *Handler) deleteMedia(writer http.ResponseWriter, request *http.Request) {
	id := request.URL.Query().Get("id")

	// The dashboard has been seen serializing missing ids literally.
	if id == "" || id == "undefined" || id == "null" {
		respond.BadRequest(writer, "Valid ID is required for deletion")
		return
	}

	if err := handler.service.DeleteMedia(request.Context(), id); err != nil {
		respond.BadRequest(writer, "Could not find or delete media item with ID: "+id)
		return
	}

	respond.OK(writer, map[string]interface{}{
		"success": true,
		"message": "Hero media deleted successfully",
	})
}
