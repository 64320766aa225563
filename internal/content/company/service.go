// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package company

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vitrinehq/vitrine/internal/platform/dberr"
	"github.com/vitrinehq/vitrine/internal/platform/validate"
	"github.com/vitrinehq/vitrine/internal/storage"
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

// GetInfo returns the profile, or nil when none has been created yet. The
// dashboard treats an empty profile as a blank form, not an error.
func (service *Service) GetInfo(ctx context.Context) (*Info, error) {
	info, err := service.repo.GetInfo(ctx)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return info, nil
}

// UpdateBasic replaces the contact section, creating the profile document if
// it does not exist yet. Social links and team members are untouched.
func (service *Service) UpdateBasic(ctx context.Context, basic BasicInfo) (*Info, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, basic.Name).MaxLen(FieldName, basic.Name, 200)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpsertBasic(ctx, basic); err != nil {
		return nil, err
	}

	service.logger.Info("company_basic_updated", slog.String("name", basic.Name))
	return service.repo.GetInfo(ctx)
}

// UpdateSocialLinks replaces the social section verbatim.
func (service *Service) UpdateSocialLinks(ctx context.Context, links []SocialLink) (*Info, error) {
	validator := &validate.Validator{}
	for _, link := range links {
		validator.
			Required(FieldPlatform, link.Platform).
			Required(FieldURL, link.URL).URL(FieldURL, link.URL)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.ReplaceSocialLinks(ctx, links); err != nil {
		return nil, err
	}

	service.logger.Info("company_social_updated", slog.Int("links", len(links)))
	return service.repo.GetInfo(ctx)
}

// UpdateTeamMembers replaces the roster verbatim. Images dropped from the
// roster are not cleaned up here: the dashboard reports removed blobs through
// the upload flow, and the sweeper catches stragglers.
func (service *Service) UpdateTeamMembers(ctx context.Context, members []TeamMember) (*Info, error) {
	validator := &validate.Validator{}
	for _, member := range members {
		validator.
			Required(FieldName, member.Name).
			Required(FieldRole, member.Role).
			OptionalURL(FieldImage, member.Image)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.ReplaceTeamMembers(ctx, members); err != nil {
		return nil, err
	}

	service.logger.Info("company_team_updated", slog.Int("members", len(members)))
	return service.repo.GetInfo(ctx)
}

// DeleteInfo removes the profile document and any managed team images.
// Deleting an absent profile is a no-op.
func (service *Service) DeleteInfo(ctx context.Context) error {
	info, err := service.GetInfo(ctx)
	if err != nil {
		return err
	}
	if info == nil {
		return nil
	}

	var imageURLs []string
	for _, member := range info.TeamMembers {
		if member.Image != "" {
			imageURLs = append(imageURLs, member.Image)
		}
	}
	service.cleaner.Remove(ctx, imageURLs)

	if err := service.repo.DeleteInfo(ctx); err != nil {
		return err
	}

	service.logger.Warn("company_info_deleted")
	return nil
}
