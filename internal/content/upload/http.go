// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package upload

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vitrinehq/vitrine/internal/platform/apperr"
	"github.com/vitrinehq/vitrine/internal/platform/constants"
	"github.com/vitrinehq/vitrine/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/", handler.uploadFiles)
}

// uploadFiles accepts one or more files in a multipart form under the
// "files" field and returns their public URLs. The batch is atomic from the
// caller's point of view: any failure fails the request.
func (handler *Handler) uploadFiles(writer http.ResponseWriter, request *http.Request) {
	// Cap memory use; larger parts spill to temp files.
	if err := request.ParseMultipartForm(32 << 20); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid multipart form"))
		return
	}

	parts := request.MultipartForm.File["files"]
	if len(parts) == 0 {
		respond.BadRequest(writer, "No files provided")
		return
	}

	files := make([]File, 0, len(parts))
	for _, part := range parts {
		reader, err := part.Open()
		if err != nil {
			respond.Error(writer, request, apperr.Internal(err))
			return
		}
		defer reader.Close()

		if part.Size > constants.MaxUploadSize {
			respond.Error(writer, request, apperr.PayloadTooLarge("File "+part.Filename+" exceeds the upload limit"))
			return
		}

		files = append(files, File{
			Name:        part.Filename,
			ContentType: part.Header.Get("Content-Type"),
			Size:        part.Size,
			Body:        reader,
		})
	}

	urls, err := handler.service.UploadAll(request.Context(), files)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string][]string{"urls": urls})
}
