// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package product

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

func (service *Service) ListProducts(ctx context.Context, limit, offset int) ([]*Product, int, error) {
	return service.repo.ListProducts(ctx, limit, offset)
}

func (service *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return service.repo.GetProduct(ctx, id)
}

// CreateProduct validates the input and writes a new document. Validation
// happens before any store call: a rejected input has no side effects.
func (service *Service) CreateProduct(ctx context.Context, input Input) (*Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	p := &Product{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Collection:  input.Collection,
		Features:    input.Features,
		Colors:      input.Colors,
		Images:      input.Images,
	}

	if err := service.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	service.logger.Info("product_created",
		slog.String("product_id", p.ID),
		slog.String("name", p.Name),
	)
	return p, nil
}

// UpdateProduct replaces the document's fields with the supplied values.
//
// Blob URLs listed in RemovedImages are deleted first, best effort; the
// document write proceeds regardless. The stored images list becomes exactly
// input.Images.
func (service *Service) UpdateProduct(ctx context.Context, id string, input Input) (*Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	// Ensure the document exists before touching storage.
	if _, err := service.repo.GetProduct(ctx, id); err != nil {
		return nil, err
	}

	if len(input.RemovedImages) > 0 {
		service.cleaner.Remove(ctx, input.RemovedImages)
	}

	p := &Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Collection:  input.Collection,
		Features:    input.Features,
		Colors:      input.Colors,
		Images:      input.Images,
	}

	if err := service.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}

	service.logger.Info("product_updated", slog.String("product_id", id))
	return p, nil
}

// DeleteProduct removes the product's managed blobs, then the document.
// There is no rollback: blobs already removed stay removed even if the
// document delete fails.
func (service *Service) DeleteProduct(ctx context.Context, id string, imageURLs []string) error {
	service.cleaner.Remove(ctx, imageURLs)

	if err := service.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("product_deleted", slog.String("product_id", id))
	return nil
}

func validateInput(input Input) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200).
		Required(FieldDescription, input.Description)

	for _, imageURL := range input.Images {
		validator.URL(FieldImages, imageURL)
	}

	return validator.Err()
}
