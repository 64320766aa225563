// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package heromedia

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

func (repository *PostgresRepository) ListMedia(ctx context.Context, limit, offset int) ([]*MediaItem, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2
	`,
		schema.RefHeroMedia.ID, schema.RefHeroMedia.Type, schema.RefHeroMedia.Src,
		schema.RefHeroMedia.Alt, schema.RefHeroMedia.Poster, schema.RefHeroMedia.Preload,
		schema.RefHeroMedia.WebmSrc, schema.RefHeroMedia.LowResSrc, schema.RefHeroMedia.CreatedAt,
		schema.RefHeroMedia.Table, schema.RefHeroMedia.CreatedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.RefHeroMedia.Table)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_hero_media")
	}

	rows, err := repository.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_hero_media")
	}
	defer rows.Close()

	var items []*MediaItem
	for rows.Next() {
		item := &MediaItem{}
		if err := rows.Scan(&item.ID, &item.Type, &item.Src, &item.Alt, &item.Poster,
			&item.Preload, &item.WebmSrc, &item.LowResSrc, &item.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_hero_media")
		}
		items = append(items, item)
	}

	return items, total, nil
}

func (repository *PostgresRepository) GetMedia(ctx context.Context, id string) (*MediaItem, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.RefHeroMedia.ID, schema.RefHeroMedia.Type, schema.RefHeroMedia.Src,
		schema.RefHeroMedia.Alt, schema.RefHeroMedia.Poster, schema.RefHeroMedia.Preload,
		schema.RefHeroMedia.WebmSrc, schema.RefHeroMedia.LowResSrc, schema.RefHeroMedia.CreatedAt,
		schema.RefHeroMedia.Table, schema.RefHeroMedia.ID,
	)
	item := &MediaItem{}

	err := repository.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.Type, &item.Src, &item.Alt, &item.Poster,
		&item.Preload, &item.WebmSrc, &item.LowResSrc, &item.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_hero_media")
	}

	return item, nil
}

func (repository *PostgresRepository) CreateMedia(ctx context.Context, item *MediaItem) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING %s
	`,
		schema.RefHeroMedia.Table,
		schema.RefHeroMedia.ID, schema.RefHeroMedia.Type, schema.RefHeroMedia.Src,
		schema.RefHeroMedia.Alt, schema.RefHeroMedia.Poster, schema.RefHeroMedia.Preload,
		schema.RefHeroMedia.WebmSrc, schema.RefHeroMedia.LowResSrc, schema.RefHeroMedia.CreatedAt,
		schema.RefHeroMedia.CreatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		item.ID, item.Type, item.Src, item.Alt, item.Poster, item.Preload,
		item.WebmSrc, item.LowResSrc,
	).Scan(&item.CreatedAt)
	return dberr.Wrap(err, "create_hero_media")
}

func (repository *PostgresRepository) DeleteMedia(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefHeroMedia.Table, schema.RefHeroMedia.ID,
	)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_hero_media")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
