// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

// Package postgres owns the pgx connection pool for the content store.
//
// Every document the dashboard edits lives in PostgreSQL; the repositories
// in internal/content borrow connections from the single pool built here.
// The pool is tuned for the dashboard's shape of traffic: short CRUD
// transactions from a handful of concurrent editors.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vitrinehq/vitrine/internal/platform/constants"
)

const (
	maxConns = 25
	// minConns keeps warm connections so the first edit after a quiet
	// spell does not pay dial latency.
	minConns          = 5
	maxConnLifetime   = 60 * time.Minute
	maxConnIdleTime   = 10 * time.Minute
	healthCheckPeriod = time.Minute
	connectTimeout    = 5 * time.Second
	pingTimeout       = 2 * time.Second
)

// NewPool parses the DSN, applies the workload tuning, and dials the
// database. The pool is pinged before being returned, so a bad DSN or an
// unreachable server fails startup instead of the first request.
func NewPool(ctx context.Context, dsn string, logger *slog.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid DSN: %w", err)
	}
	tune(cfg)

	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(dialCtx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}

	if err := Ping(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("postgres_pool_connected",
		slog.Int("max_conns", int(pool.Stat().MaxConns())),
		slog.Int("total_conns", int(pool.Stat().TotalConns())),
	)

	return pool, nil
}

func tune(cfg *pgxpool.Config) {
	cfg.MaxConns = maxConns
	cfg.MinConns = minConns
	cfg.MaxConnLifetime = maxConnLifetime
	cfg.MaxConnIdleTime = maxConnIdleTime
	cfg.HealthCheckPeriod = healthCheckPeriod
	cfg.ConnConfig.ConnectTimeout = connectTimeout

	// Cap statement time at the global request timeout on every physical
	// connection, so a stuck query cannot outlive the HTTP request that
	// issued it.
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		stmt := fmt.Sprintf("SET statement_timeout = '%ds'", int(constants.GlobalRequestTimeout.Seconds()))
		_, err := conn.Exec(ctx, stmt)
		return err
	}
}

// Ping reports whether the pool can reach the database within pingTimeout.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}
	return nil
}
