// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package portfolio

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

func (service *Service) ListProjects(ctx context.Context, limit, offset int) ([]*Project, int, error) {
	return service.repo.ListProjects(ctx, limit, offset)
}

func (service *Service) GetProject(ctx context.Context, id string) (*Project, error) {
	return service.repo.GetProject(ctx, id)
}

// CreateProject validates the input and writes a new document. A rejected
// input has no side effects.
func (service *Service) CreateProject(ctx context.Context, input Input) (*Project, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	project := projectFromInput(uuidv7.New(), input)

	if err := service.repo.CreateProject(ctx, project); err != nil {
		return nil, err
	}

	service.logger.Info("portfolio_project_created",
		slog.String("project_id", project.ID),
		slog.String("title", project.Title),
	)
	return project, nil
}

// UpdateProject replaces the document's fields with the supplied values.
//
// Dropped blobs are deleted first, best effort: every RemovedGalleryUrls
// entry, plus the previous thumbnail when ThumbnailRemoved is set. The stored
// gallery becomes exactly input.Gallery.
func (service *Service) UpdateProject(ctx context.Context, id string, input Input) (*Project, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := service.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	removed := input.RemovedGalleryUrls
	if input.ThumbnailRemoved && existing.Thumbnail != "" {
		removed = append(removed, existing.Thumbnail)
	}
	if len(removed) > 0 {
		service.cleaner.Remove(ctx, removed)
	}

	project := projectFromInput(id, input)
	project.CreatedAt = existing.CreatedAt

	if err := service.repo.UpdateProject(ctx, project); err != nil {
		return nil, err
	}

	service.logger.Info("portfolio_project_updated", slog.String("project_id", id))
	return project, nil
}

// DeleteProject removes the project's managed blobs, then the document.
// Blobs already removed stay removed even if the document delete fails.
func (service *Service) DeleteProject(ctx context.Context, id string, imageURLs []string) error {
	service.cleaner.Remove(ctx, imageURLs)

	if err := service.repo.DeleteProject(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("portfolio_project_deleted", slog.String("project_id", id))
	return nil
}

func projectFromInput(id string, input Input) *Project {
	return &Project{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Challenge:   input.Challenge,
		Solution:    input.Solution,
		Impact:      input.Impact,
		Tags:        input.Tags,
		Thumbnail:   input.Thumbnail,
		Gallery:     input.Gallery,
		Testimonial: input.testimonial(),
	}
}

func validateInput(input Input) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200).
		Required(FieldDescription, input.Description).
		OptionalURL(FieldThumbnail, input.Thumbnail)

	for _, galleryURL := range input.Gallery {
		validator.URL(FieldGallery, galleryURL)
	}

	return validator.Err()
}
