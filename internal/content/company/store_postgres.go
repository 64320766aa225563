// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package company

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitrinehq/vitrine/internal/platform/database/schema"
	"github.com/vitrinehq/vitrine/internal/platform/dberr"
)

// PostgresRepository stores the profile as a single row keyed by a constant
// boolean id, which the table constrains to true.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetInfo(ctx context.Context) (*Info, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = TRUE
	`,
		schema.RefCompanyInfo.Name, schema.RefCompanyInfo.Tagline,
		schema.RefCompanyInfo.Description, schema.RefCompanyInfo.Email,
		schema.RefCompanyInfo.Phone, schema.RefCompanyInfo.Address,
		schema.RefCompanyInfo.SocialLinks, schema.RefCompanyInfo.TeamMembers,
		schema.RefCompanyInfo.CreatedAt, schema.RefCompanyInfo.UpdatedAt,
		schema.RefCompanyInfo.Table, schema.RefCompanyInfo.ID,
	)
	info := &Info{}

	err := repository.db.QueryRow(ctx, query).Scan(
		&info.Name, &info.Tagline, &info.Description, &info.Email,
		&info.Phone, &info.Address, &info.SocialLinks, &info.TeamMembers,
		&info.CreatedAt, &info.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_company_info")
	}

	return info, nil
}

func (repository *PostgresRepository) UpsertBasic(ctx context.Context, basic BasicInfo) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES (TRUE, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = NOW()
	`,
		schema.RefCompanyInfo.Table,
		schema.RefCompanyInfo.ID, schema.RefCompanyInfo.Name, schema.RefCompanyInfo.Tagline,
		schema.RefCompanyInfo.Description, schema.RefCompanyInfo.Email,
		schema.RefCompanyInfo.Phone, schema.RefCompanyInfo.Address,
		schema.RefCompanyInfo.ID,
		schema.RefCompanyInfo.Name, schema.RefCompanyInfo.Name,
		schema.RefCompanyInfo.Tagline, schema.RefCompanyInfo.Tagline,
		schema.RefCompanyInfo.Description, schema.RefCompanyInfo.Description,
		schema.RefCompanyInfo.Email, schema.RefCompanyInfo.Email,
		schema.RefCompanyInfo.Phone, schema.RefCompanyInfo.Phone,
		schema.RefCompanyInfo.Address, schema.RefCompanyInfo.Address,
		schema.RefCompanyInfo.UpdatedAt,
	)

	_, err := repository.db.Exec(ctx, query,
		basic.Name, basic.Tagline, basic.Description, basic.Email, basic.Phone, basic.Address,
	)
	return dberr.Wrap(err, "upsert_company_basic")
}

func (repository *PostgresRepository) ReplaceSocialLinks(ctx context.Context, links []SocialLink) error {
	return repository.replaceSection(ctx, schema.RefCompanyInfo.SocialLinks, links, "replace_company_social_links")
}

func (repository *PostgresRepository) ReplaceTeamMembers(ctx context.Context, members []TeamMember) error {
	return repository.replaceSection(ctx, schema.RefCompanyInfo.TeamMembers, members, "replace_company_team_members")
}

// replaceSection swaps one JSONB list column wholesale, creating the
// singleton row if it does not exist yet.
func (repository *PostgresRepository) replaceSection(ctx context.Context, column string, value interface{}, action string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES (TRUE, $1)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = NOW()
	`,
		schema.RefCompanyInfo.Table, schema.RefCompanyInfo.ID, column,
		schema.RefCompanyInfo.ID,
		column, column,
		schema.RefCompanyInfo.UpdatedAt,
	)

	_, err := repository.db.Exec(ctx, query, value)
	return dberr.Wrap(err, action)
}

func (repository *PostgresRepository) DeleteInfo(ctx context.Context) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = TRUE`,
		schema.RefCompanyInfo.Table, schema.RefCompanyInfo.ID,
	)

	cmd, err := repository.db.Exec(ctx, query)
	if err != nil {
		return dberr.Wrap(err, "delete_company_info")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
