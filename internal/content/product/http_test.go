// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package product_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrinehq/vitrine/internal/content/product"
)

func newTestRouter(ops *[]string) (chi.Router, *fakeRepo) {
	service, repo := newTestService(ops)
	handler := product.NewHandler(service)

	router := chi.NewRouter()
	router.Route("/products", handler.RegisterRoutes)
	return router, repo
}

func doJSON(t *testing.T, router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestHandler_CreateProduct(t *testing.T) {
	var ops []string
	router, repo := newTestRouter(&ops)

	recorder := doJSON(t, router, http.MethodPost, "/products/",
		`{"name":"Oak Shelf","description":"Solid oak","images":[]}`)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"Oak Shelf"`)
	assert.Len(t, repo.products, 1)
}

func TestHandler_CreateProduct_MissingFields(t *testing.T) {
	var ops []string
	router, repo := newTestRouter(&ops)

	recorder := doJSON(t, router, http.MethodPost, "/products/",
		`{"name":"","description":"no name"}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Name and description are required")
	assert.Empty(t, repo.products)
}

func TestHandler_UpdateProduct_RequiresID(t *testing.T) {
	var ops []string
	router, _ := newTestRouter(&ops)

	recorder := doJSON(t, router, http.MethodPut, "/products/",
		`{"name":"Oak Shelf","description":"Solid oak"}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Product ID is required for updates")
}

func TestHandler_UpdateProduct(t *testing.T) {
	var ops []string
	router, repo := newTestRouter(&ops)
	repo.products["p1"] = &product.Product{ID: "p1", Name: "Old", Description: "old"}

	recorder := doJSON(t, router, http.MethodPut, "/products/",
		`{"id":"p1","name":"New","description":"new","images":["`+blobPrefix+`assets/new.jpg"]}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "New", repo.products["p1"].Name)
	assert.Equal(t, []string{blobPrefix + "assets/new.jpg"}, repo.products["p1"].Images)
}

func TestHandler_DeleteProduct_RequiresID(t *testing.T) {
	var ops []string
	router, _ := newTestRouter(&ops)

	recorder := doJSON(t, router, http.MethodDelete, "/products/", `{"imageUrls":[]}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Product ID is required")
}

func TestHandler_DeleteProduct(t *testing.T) {
	var ops []string
	router, repo := newTestRouter(&ops)
	repo.products["p1"] = &product.Product{ID: "p1", Name: "Old", Description: "old"}

	recorder := doJSON(t, router, http.MethodDelete, "/products/",
		`{"productId":"p1","imageUrls":["`+blobPrefix+`assets/a.jpg"]}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"success":true`)
	assert.Empty(t, repo.products)
	assert.Equal(t, []string{"blob_delete:assets/a.jpg", "delete:p1"}, ops)
}

func TestHandler_GetProduct_NotFound(t *testing.T) {
	var ops []string
	router, _ := newTestRouter(&ops)

	recorder := doJSON(t, router, http.MethodGet, "/products/ghost", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_ListProducts(t *testing.T) {
	var ops []string
	router, repo := newTestRouter(&ops)
	repo.products["p1"] = &product.Product{ID: "p1", Name: "Shelf", Description: "oak"}

	recorder := doJSON(t, router, http.MethodGet, "/products/?page=1&limit=10", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"meta"`)
	assert.Contains(t, recorder.Body.String(), `"Shelf"`)
}
