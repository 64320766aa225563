// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/robfig/cron/v3"

	"github.com/vitrinehq/vitrine/internal/storage"
)

// Sweeper tuning. Each sweep drains a bounded batch so a large backlog cannot
// monopolize the bucket's rate limits.
const (
	sweepBatchSize = 64
	// maxRetriesPerKey bounds backoff attempts within a single sweep.
	maxRetriesPerKey = 3
	// initialRetryInterval seeds the exponential backoff.
	initialRetryInterval = 500 * time.Millisecond
	// sweepTimeout bounds one full sweep.
	sweepTimeout = 2 * time.Minute
)

// drainer is the queue surface the sweeper needs; satisfied by [*Queue].
type drainer interface {
	DrainBatch(ctx context.Context, n int) ([]string, error)
}

// Sweeper periodically retries parked blob deletions.
type Sweeper struct {
	queue  drainer
	store  storage.Store
	logger *slog.Logger
	cron   *cron.Cron
}

// NewSweeper wires a Sweeper. Call [Sweeper.Start] to begin sweeping.
func NewSweeper(queue drainer, store storage.Store, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		queue:  queue,
		store:  store,
		logger: logger,
		cron:   cron.New(),
	}
}

// Start registers the sweep on the given cron schedule (e.g. "@every 5m")
// and launches the scheduler.
func (s *Sweeper) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		s.Sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("cleanup: invalid schedule %q: %w", schedule, err)
	}

	s.cron.Start()
	s.logger.Info("cleanup_sweeper_started", slog.String("schedule", schedule))
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("cleanup_sweeper_stopped")
}

// Sweep drains one batch and retries each deletion with exponential backoff.
//
// Keys that exhaust the retry budget are dropped: a leaked object is
// preferable to a queue that grows without bound on a dead bucket.
func (s *Sweeper) Sweep(ctx context.Context) {
	keys, err := s.queue.DrainBatch(ctx, sweepBatchSize)
	if err != nil {
		s.logger.Error("cleanup_drain_failed", slog.Any("error", err))
		return
	}
	if len(keys) == 0 {
		return
	}

	deleted := 0
	for _, key := range keys {
		policy := backoff.WithContext(
			backoff.WithMaxRetries(retryPolicy(), maxRetriesPerKey),
			ctx,
		)

		err := backoff.Retry(func() error {
			return s.store.Delete(ctx, key)
		}, policy)

		if err != nil {
			s.logger.Warn("cleanup_retry_exhausted",
				slog.String("key", key),
				slog.Any("error", err),
			)
			continue
		}
		deleted++
	}

	s.logger.Info("cleanup_sweep_finished",
		slog.Int("attempted", len(keys)),
		slog.Int("deleted", deleted),
	)
}

// retryPolicy builds the per-key exponential backoff.
func retryPolicy() backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = initialRetryInterval
	return policy
}
