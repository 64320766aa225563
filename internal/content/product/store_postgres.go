// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package product

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitrinehq/vitrine/internal/platform/database/schema"
	"github.com/vitrinehq/vitrine/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListProducts(ctx context.Context, limit, offset int) ([]*Product, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.RefProduct.ID, schema.RefProduct.Name, schema.RefProduct.Description,
		schema.RefProduct.Category, schema.RefProduct.Collection, schema.RefProduct.Features,
		schema.RefProduct.Colors, schema.RefProduct.Images, schema.RefProduct.CreatedAt,
		schema.RefProduct.UpdatedAt,
		schema.RefProduct.Table, schema.RefProduct.CreatedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.RefProduct.Table)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_products")
	}

	rows, err := repository.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_products")
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Collection,
			&p.Features, &p.Colors, &p.Images, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_product")
		}
		products = append(products, p)
	}

	return products, total, nil
}

func (repository *PostgresRepository) GetProduct(ctx context.Context, id string) (*Product, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.RefProduct.ID, schema.RefProduct.Name, schema.RefProduct.Description,
		schema.RefProduct.Category, schema.RefProduct.Collection, schema.RefProduct.Features,
		schema.RefProduct.Colors, schema.RefProduct.Images, schema.RefProduct.CreatedAt,
		schema.RefProduct.UpdatedAt,
		schema.RefProduct.Table, schema.RefProduct.ID,
	)
	p := &Product{}

	err := repository.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.Collection,
		&p.Features, &p.Colors, &p.Images, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_product")
	}

	return p, nil
}

func (repository *PostgresRepository) CreateProduct(ctx context.Context, p *Product) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.RefProduct.Table,
		schema.RefProduct.ID, schema.RefProduct.Name, schema.RefProduct.Description,
		schema.RefProduct.Category, schema.RefProduct.Collection, schema.RefProduct.Features,
		schema.RefProduct.Colors, schema.RefProduct.Images, schema.RefProduct.CreatedAt,
		schema.RefProduct.UpdatedAt,
		schema.RefProduct.CreatedAt, schema.RefProduct.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		p.ID, p.Name, p.Description, p.Category, p.Collection, p.Features, p.Colors, p.Images,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_product")
}

func (repository *PostgresRepository) UpdateProduct(ctx context.Context, p *Product) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.RefProduct.Table,
		schema.RefProduct.Name, schema.RefProduct.Description, schema.RefProduct.Category,
		schema.RefProduct.Collection, schema.RefProduct.Features, schema.RefProduct.Colors,
		schema.RefProduct.Images, schema.RefProduct.UpdatedAt,
		schema.RefProduct.ID,
		schema.RefProduct.CreatedAt, schema.RefProduct.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		p.ID, p.Name, p.Description, p.Category, p.Collection, p.Features, p.Colors, p.Images,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "update_product")
}

func (repository *PostgresRepository) DeleteProduct(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefProduct.Table, schema.RefProduct.ID,
	)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_product")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
