// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package heromedia

import (
	"context"
	"log/slog"

	"github.com/vitrinehq/vitrine/internal/platform/validate"
	"github.com/vitrinehq/vitrine/internal/storage"
	"github.com/vitrinehq/vitrine/pkg/uuidv7"
)

type Service struct {
	repo    Repository
	cleaner *storage.Cleaner
	logger  *slog.Logger
}

func NewService(repo Repository, cleaner *storage.Cleaner, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		cleaner: cleaner,
		logger:  logger,
	}
}

func (service *Service) ListMedia(ctx context.Context, limit, offset int) ([]*MediaItem, int, error) {
	return service.repo.ListMedia(ctx, limit, offset)
}

// CreateMedia validates the input and writes a new media item. No document is
// created for invalid input.
func (service *Service) CreateMedia(ctx context.Context, input Input) (*MediaItem, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	item := &MediaItem{
		ID:        uuidv7.New(),
		Type:      input.Type,
		Src:       input.Src,
		Alt:       input.Alt,
		Poster:    input.Poster,
		Preload:   input.Preload,
		WebmSrc:   input.WebmSrc,
		LowResSrc: input.LowResSrc,
	}

	if err := service.repo.CreateMedia(ctx, item); err != nil {
		return nil, err
	}

	service.logger.Info("hero_media_created",
		slog.String("media_id", item.ID),
		slog.String("type", item.Type),
	)
	return item, nil
}

// DeleteMedia removes a media item's managed blobs, then its document.
//
// The item is fetched first; deleting an unknown id is an error. Blob
// deletion is best effort and never blocks the document delete.
func (service *Service) DeleteMedia(ctx context.Context, id string) error {
	item, err := service.repo.GetMedia(ctx, id)
	if err != nil {
		return err
	}

	service.cleaner.Remove(ctx, item.assetURLs())

	if err := service.repo.DeleteMedia(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("hero_media_deleted", slog.String("media_id", id))
	return nil
}

func validateInput(input Input) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldType, input.Type).OneOf(FieldType, input.Type, TypeImage, TypeVideo).
		Required(FieldSrc, input.Src).URL(FieldSrc, input.Src).
		OptionalURL("poster", input.Poster).
		OptionalURL("webmSrc", input.WebmSrc).
		OptionalURL("lowResSrc", input.LowResSrc)

	return validator.Err()
}
