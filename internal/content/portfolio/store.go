// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package portfolio

import "context"

// Repository defines the persistence operations for portfolio projects.
type Repository interface {
	ListProjects(ctx context.Context, limit, offset int) ([]*Project, int, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	CreateProject(ctx context.Context, project *Project) error
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id string) error
}
