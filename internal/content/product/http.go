// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package product

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
	router.Get("/", handler.listProducts)
	router.Get("/{id}", handler.getProduct)
	router.Post("/", handler.createProduct)
	router.Put("/", handler.updateProduct)
	router.Delete("/", handler.deleteProduct)
}

func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	products, total, err := handler.service.ListProducts(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, products, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	p, err := handler.service.GetProduct(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}

func (handler *Handler) createProduct(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.Name == "" || input.Description == "" {
		respond.BadRequest(writer, "Name and description are required")
		return
	}

	p, err := handler.service.CreateProduct(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, p)
}

// updateProduct handles PUT. The legacy dashboard carries the id inside the
// JSON body rather than the path.
func (handler *Handler) updateProduct(writer http.ResponseWriter, request *http.Request) {
	var payload struct {
		ID string `json:"id"`
		Input
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if payload.ID == "" {
		respond.BadRequest(writer, "Product ID is required for updates")
		return
	}

	if payload.Name == "" || payload.Description == "" {
		respond.BadRequest(writer, "Name and description are required")
		return
	}

	p, err := handler.service.UpdateProduct(request.Context(), payload.ID, payload.Input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}

func (handler *Handler) deleteProduct(writer http.ResponseWriter, request *http.Request) {
	var payload struct {
		ProductID string   `json:"productId"`
		ImageURLs []string `json:"imageUrls"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if payload.ProductID == "" {
		respond.BadRequest(writer, "Product ID is required")
		return
	}

	if err := handler.service.DeleteProduct(request.Context(), payload.ProductID, payload.ImageURLs); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]bool{"success": true})
}
