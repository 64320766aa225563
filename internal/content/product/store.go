// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package product

import "context"

type Repository interface {
	ListProducts(ctx context.Context, limit, offset int) ([]*Product, int, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, p *Product) error
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id string) error
}
