// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package upload_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrinehq/vitrine/internal/content/upload"
)

func newUploadRouter(blobs *fakeBlobs) chi.Router {
	handler := upload.NewHandler(newTestService(blobs))

	router := chi.NewRouter()
	router.Route("/uploads", handler.RegisterRoutes)
	return router
}

func addFilePart(t *testing.T, form *multipart.Writer, name, contentType, data string) {
	t.Helper()

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
	header.Set("Content-Type", contentType)

	part, err := form.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(data))
	require.NoError(t, err)
}

func TestHandler_UploadFiles(t *testing.T) {
	blobs := newFakeBlobs()
	router := newUploadRouter(blobs)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	addFilePart(t, form, "hero.webp", "image/webp", "webp-bytes")
	addFilePart(t, form, "gallery-1.jpg", "image/jpeg", "jpeg-bytes")
	require.NoError(t, form.Close())

	request := httptest.NewRequest(http.MethodPost, "/uploads/", &buf)
	request.Header.Set("Content-Type", form.FormDataContentType())
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"urls"`)
	assert.Len(t, blobs.objects, 2)
}

func TestHandler_UploadFiles_NoFiles(t *testing.T) {
	blobs := newFakeBlobs()
	router := newUploadRouter(blobs)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("unrelated", "x"))
	require.NoError(t, form.Close())

	request := httptest.NewRequest(http.MethodPost, "/uploads/", &buf)
	request.Header.Set("Content-Type", form.FormDataContentType())
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "No files provided")
}

func TestHandler_UploadFiles_DisallowedType(t *testing.T) {
	blobs := newFakeBlobs()
	router := newUploadRouter(blobs)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	addFilePart(t, form, "script.sh", "text/x-shellscript", "#!/bin/sh")
	require.NoError(t, form.Close())

	request := httptest.NewRequest(http.MethodPost, "/uploads/", &buf)
	request.Header.Set("Content-Type", form.FormDataContentType())
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnsupportedMediaType, recorder.Code)
	assert.Empty(t, blobs.objects)
}
