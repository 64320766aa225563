// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package portfolio_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrinehq/vitrine/internal/content/portfolio"
)

func newTestRouter(ops *[]string) (chi.Router, *fakeRepo) {
	service, repo := newTestService(ops)
	handler := portfolio.NewHandler(service)

	router := chi.NewRouter()
	router.Route("/portfolio", handler.RegisterRoutes)
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

func TestHandler_SaveProject_CreatesWithoutID(t *testing.T) {
	var ops []string
	router, repo := newTestRouter(&ops)

	recorder := doJSON(t, router, http.MethodPost, "/portfolio/",
		`{"title":"Hotel Aurora","description":"Refit","tags":["hospitality"]}`)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Len(t, repo.projects, 1)
}

func TestHandler_SaveProject_UpdatesWithID(t *testing.T) {
	var ops []string
	router, repo := newTestRouter(&ops)
	repo.projects["pr1"] = &portfolio.Project{ID: "pr1", Title: "Old", Description: "old"}

	recorder := doJSON(t, router, http.MethodPost, "/portfolio/",
		`{"id":"pr1","title":"New","description":"new"}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "New", repo.projects["pr1"].Title)
	assert.Contains(t, ops, "update:pr1")
}

func TestHandler_SaveProject_InvalidInput(t *testing.T) {
	var ops []string
	router, repo := newTestRouter(&ops)

	recorder := doJSON(t, router, http.MethodPost, "/portfolio/", `{"description":"no title"}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, repo.projects)
}

func TestHandler_DeleteProject_RequiresID(t *testing.T) {
	var ops []string
	router, _ := newTestRouter(&ops)

	recorder := doJSON(t, router, http.MethodDelete, "/portfolio/", `{"imageUrls":[]}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Project ID is required")
	assert.Empty(t, ops)
}

func TestHandler_DeleteProject(t *testing.T) {
	var ops []string
	router, repo := newTestRouter(&ops)
	repo.projects["pr1"] = &portfolio.Project{ID: "pr1", Title: "T", Description: "d"}

	recorder := doJSON(t, router, http.MethodDelete, "/portfolio/",
		`{"projectId":"pr1","imageUrls":["`+blobPrefix+`assets/thumb.jpg"]}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Portfolio project deleted successfully")
	assert.Empty(t, repo.projects)
}

func TestHandler_ListProjects(t *testing.T) {
	var ops []string
	router, repo := newTestRouter(&ops)
	repo.projects["pr1"] = &portfolio.Project{ID: "pr1", Title: "Aurora", Description: "d"}

	recorder := doJSON(t, router, http.MethodGet, "/portfolio/", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"Aurora"`)
	assert.Contains(t, recorder.Body.String(), `"meta"`)
}
