// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package company_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrinehq/vitrine/internal/content/company"
)

func newTestRouter(ops *[]string) (chi.Router, *fakeRepo) {
	service, repo := newTestService(ops)
	handler := company.NewHandler(service)

	router := chi.NewRouter()
	router.Route("/company-info", handler.RegisterRoutes)
	return router, repo
}

func doJSON(t *testing.T, router chi.Router, method, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, "/company-info/", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func doForm(t *testing.T, router chi.Router, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, form.WriteField(key, value))
	}
	require.NoError(t, form.Close())

	request := httptest.NewRequest(http.MethodPost, "/company-info/", &buf)
	request.Header.Set("Content-Type", form.FormDataContentType())
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestHandler_UpdateSection_BasicJSON(t *testing.T) {
	var ops []string
	router, repo := newTestRouter(&ops)

	recorder := doJSON(t, router, http.MethodPost,
		`{"section":"basic","companyInfo":{"name":"Vitrine Studio","email":"hello@vitrinehq.com"}}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Vitrine Studio", repo.info.Name)
}

func TestHandler_UpdateSection_TeamJSON(t *testing.T) {
	var ops []string
	router, repo := newTestRouter(&ops)

	recorder := doJSON(t, router, http.MethodPost,
		`{"section":"team","members":[{"name":"A. Carver","role":"Lead Designer","bio":"b"}]}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, repo.info.TeamMembers, 1)
	assert.Equal(t, "A. Carver", repo.info.TeamMembers[0].Name)
}

func TestHandler_UpdateSection_UnknownSection(t *testing.T) {
	var ops []string
	router, repo := newTestRouter(&ops)

	recorder := doJSON(t, router, http.MethodPost,
		`{"section":"billing","companyInfo":{"name":"x"}}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid section")

	// No mutation on an unknown section.
	assert.Nil(t, repo.info)
	assert.Empty(t, ops)
}

func TestHandler_UpdateSection_MultipartForm(t *testing.T) {
	var ops []string
	router, repo := newTestRouter(&ops)

	recorder := doForm(t, router, map[string]string{
		"section": "social",
		"data":    `[{"platform":"instagram","url":"https://instagram.com/vitrine"}]`,
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, repo.info.SocialLinks, 1)
	assert.Equal(t, "instagram", repo.info.SocialLinks[0].Platform)
}

func TestHandler_UpdateSection_MultipartMissingData(t *testing.T) {
	var ops []string
	router, repo := newTestRouter(&ops)

	recorder := doForm(t, router, map[string]string{"section": "basic"})

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "No data provided")
	assert.Nil(t, repo.info)
}

func TestHandler_UpdateSection_MultipartUnknownSection(t *testing.T) {
	var ops []string
	router, _ := newTestRouter(&ops)

	recorder := doForm(t, router, map[string]string{"section": "billing", "data": "{}"})

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid section")
}

func TestHandler_GetInfo_Empty(t *testing.T) {
	var ops []string
	router, _ := newTestRouter(&ops)

	recorder := doJSON(t, router, http.MethodGet, "")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"data":null`)
}

func TestHandler_DeleteInfo(t *testing.T) {
	var ops []string
	router, repo := newTestRouter(&ops)
	repo.info = &company.Info{Name: "Vitrine Studio"}

	recorder := doJSON(t, router, http.MethodDelete, "")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Company information deleted successfully")
	assert.Nil(t, repo.info)
}
