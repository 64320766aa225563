// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package company

import "context"

// Repository defines the persistence operations for the company profile.
// The profile is a singleton: there are no ids on this interface.
type Repository interface {
	GetInfo(ctx context.Context) (*Info, error)
	UpsertBasic(ctx context.Context, basic BasicInfo) error
	ReplaceSocialLinks(ctx context.Context, links []SocialLink) error
	ReplaceTeamMembers(ctx context.Context, members []TeamMember) error
	DeleteInfo(ctx context.Context) error
}
