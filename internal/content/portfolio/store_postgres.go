// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package portfolio

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

func (repository *PostgresRepository) ListProjects(ctx context.Context, limit, offset int) ([]*Project, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.RefPortfolioProject.ID, schema.RefPortfolioProject.Title,
		schema.RefPortfolioProject.Description, schema.RefPortfolioProject.Challenge,
		schema.RefPortfolioProject.Solution, schema.RefPortfolioProject.Impact,
		schema.RefPortfolioProject.Tags, schema.RefPortfolioProject.Thumbnail,
		schema.RefPortfolioProject.Gallery, schema.RefPortfolioProject.Testimonial,
		schema.RefPortfolioProject.CreatedAt, schema.RefPortfolioProject.UpdatedAt,
		schema.RefPortfolioProject.Table, schema.RefPortfolioProject.CreatedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.RefPortfolioProject.Table)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_portfolio_projects")
	}

	rows, err := repository.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_portfolio_projects")
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		project := &Project{}
		if err := rows.Scan(&project.ID, &project.Title, &project.Description,
			&project.Challenge, &project.Solution, &project.Impact, &project.Tags,
			&project.Thumbnail, &project.Gallery, &project.Testimonial,
			&project.CreatedAt, &project.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_portfolio_project")
		}
		projects = append(projects, project)
	}

	return projects, total, nil
}

func (repository *PostgresRepository) GetProject(ctx context.Context, id string) (*Project, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.RefPortfolioProject.ID, schema.RefPortfolioProject.Title,
		schema.RefPortfolioProject.Description, schema.RefPortfolioProject.Challenge,
		schema.RefPortfolioProject.Solution, schema.RefPortfolioProject.Impact,
		schema.RefPortfolioProject.Tags, schema.RefPortfolioProject.Thumbnail,
		schema.RefPortfolioProject.Gallery, schema.RefPortfolioProject.Testimonial,
		schema.RefPortfolioProject.CreatedAt, schema.RefPortfolioProject.UpdatedAt,
		schema.RefPortfolioProject.Table, schema.RefPortfolioProject.ID,
	)
	project := &Project{}

	err := repository.db.QueryRow(ctx, query, id).Scan(
		&project.ID, &project.Title, &project.Description, &project.Challenge,
		&project.Solution, &project.Impact, &project.Tags, &project.Thumbnail,
		&project.Gallery, &project.Testimonial, &project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_portfolio_project")
	}

	return project, nil
}

func (repository *PostgresRepository) CreateProject(ctx context.Context, project *Project) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.RefPortfolioProject.Table,
		schema.RefPortfolioProject.ID, schema.RefPortfolioProject.Title,
		schema.RefPortfolioProject.Description, schema.RefPortfolioProject.Challenge,
		schema.RefPortfolioProject.Solution, schema.RefPortfolioProject.Impact,
		schema.RefPortfolioProject.Tags, schema.RefPortfolioProject.Thumbnail,
		schema.RefPortfolioProject.Gallery, schema.RefPortfolioProject.Testimonial,
		schema.RefPortfolioProject.CreatedAt, schema.RefPortfolioProject.UpdatedAt,
		schema.RefPortfolioProject.CreatedAt, schema.RefPortfolioProject.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		project.ID, project.Title, project.Description, project.Challenge,
		project.Solution, project.Impact, project.Tags, project.Thumbnail,
		project.Gallery, project.Testimonial,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	return dberr.Wrap(err, "create_portfolio_project")
}

func (repository *PostgresRepository) UpdateProject(ctx context.Context, project *Project) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.RefPortfolioProject.Table,
		schema.RefPortfolioProject.Title, schema.RefPortfolioProject.Description,
		schema.RefPortfolioProject.Challenge, schema.RefPortfolioProject.Solution,
		schema.RefPortfolioProject.Impact, schema.RefPortfolioProject.Tags,
		schema.RefPortfolioProject.Thumbnail, schema.RefPortfolioProject.Gallery,
		schema.RefPortfolioProject.Testimonial, schema.RefPortfolioProject.UpdatedAt,
		schema.RefPortfolioProject.ID,
		schema.RefPortfolioProject.CreatedAt, schema.RefPortfolioProject.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		project.ID, project.Title, project.Description, project.Challenge,
		project.Solution, project.Impact, project.Tags, project.Thumbnail,
		project.Gallery, project.Testimonial,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	return dberr.Wrap(err, "update_portfolio_project")
}

func (repository *PostgresRepository) DeleteProject(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefPortfolioProject.Table, schema.RefPortfolioProject.ID,
	)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_portfolio_project")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
