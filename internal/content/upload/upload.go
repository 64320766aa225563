// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

// Package upload streams dashboard assets into blob storage.
//
// Files go straight to the bucket under a generated key; the document
// services only ever see the resulting public URLs. Validation (content
// type, size) happens before a single byte is sent.
package upload

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vitrinehq/vitrine/internal/platform/apperr"
	"github.com/vitrinehq/vitrine/internal/platform/constants"
	"github.com/vitrinehq/vitrine/internal/storage"
	"github.com/vitrinehq/vitrine/pkg/slug"
	"github.com/vitrinehq/vitrine/pkg/uuidv7"
)

// allowedContentTypes is the upload allow-list. The dashboard only deals in
// web-deliverable images and hero video.
var allowedContentTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/webp":    true,
	"image/gif":     true,
	"image/avif":    true,
	"image/svg+xml": true,
	"video/mp4":     true,
	"video/webm":    true,
}

// File is one pending upload.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Service struct {
	blobs  storage.Store
	logger *slog.Logger
}

func NewService(blobs storage.Store, logger *slog.Logger) *Service {
	return &Service{blobs: blobs, logger: logger}
}

// Upload validates and streams one file to blob storage, returning its
// public URL.
func (service *Service) Upload(ctx context.Context, file File) (string, error) {
	if err := validateFile(file); err != nil {
		return "", err
	}

	key := objectKey(file.Name)

	url, err := service.blobs.Put(ctx, key, file.ContentType, file.Body)
	if err != nil {
		return "", apperr.Storage("Failed to upload "+file.Name, err)
	}

	service.logger.Info("asset_uploaded",
		slog.String("key", key),
		slog.String("content_type", file.ContentType),
		slog.Int64("size", file.Size),
	)
	return url, nil
}

// UploadAll uploads a batch concurrently. Any individual failure fails the
// whole batch; URLs of files that did complete are not returned, and their
// blobs are left for the cleanup sweeper.
func (service *Service) UploadAll(ctx context.Context, files []File) ([]string, error) {
	for _, file := range files {
		if err := validateFile(file); err != nil {
			return nil, err
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	urls := make([]string, len(files))

	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			url, err := service.Upload(groupCtx, file)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

// validateFile enforces the allow-list and size cap before any bytes move.
func validateFile(file File) error {
	if !allowedContentTypes[file.ContentType] {
		return apperr.UnsupportedMedia(fmt.Sprintf("File type %q is not allowed", file.ContentType))
	}

	if file.Size > constants.MaxUploadSize {
		return apperr.PayloadTooLarge(fmt.Sprintf("File %s exceeds the %d MB limit", file.Name, constants.MaxUploadSize>>20))
	}

	return nil
}

// objectKey builds a collision-free bucket key that still hints at the
// original file name: assets/<uuidv7>-<slug><ext>.
func objectKey(name string) string {
	ext := strings.ToLower(path.Ext(name))
	base := slug.From(strings.TrimSuffix(path.Base(name), ext))
	if base == "" {
		base = "file"
	}
	return constants.UploadFolderPrefix + "/" + uuidv7.New() + "-" + base + ext
}
