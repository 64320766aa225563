// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package heromedia

import "context"

// Repository defines the persistence operations for hero media items.
type Repository interface {
	ListMedia(ctx context.Context, limit, offset int) ([]*MediaItem, int, error)
	GetMedia(ctx context.Context, id string) (*MediaItem, error)
	CreateMedia(ctx context.Context, item *MediaItem) error
	DeleteMedia(ctx context.Context, id string) error
}
