// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

/*
Package cleanup retries blob deletions that failed during a user-visible
write.

Content services never abort a document write because a stale blob refused to
die; instead the object key is parked in a Redis-backed queue and a periodic
sweeper retries it with exponential backoff. Keys that exhaust the retry
budget are dropped and logged — the bucket may leak an unreferenced object,
but only after the sweeper gave it a fair chance.
*/
package cleanup

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vitrinehq/vitrine/internal/platform/constants"
)

// Queue is the Redis-backed implementation of [storage.RetryQueue].
type Queue struct {
	client *redis.Client
}

// NewQueue wires a Queue onto an existing Redis client.
func NewQueue(client *redis.Client) *Queue {
	return &Queue{client: client}
}

// Enqueue parks an object key for a later deletion retry.
func (q *Queue) Enqueue(ctx context.Context, key string) error {
	if err := q.client.RPush(ctx, constants.RedisKeyCleanupQueue, key).Err(); err != nil {
		return fmt.Errorf("cleanup: enqueue %q: %w", key, err)
	}
	return nil
}

// DrainBatch pops up to n keys from the head of the queue.
//
// An empty queue returns an empty slice, not an error.
func (q *Queue) DrainBatch(ctx context.Context, n int) ([]string, error) {
	keys, err := q.client.LPopCount(ctx, constants.RedisKeyCleanupQueue, n).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cleanup: drain: %w", err)
	}
	return keys, nil
}

// Len reports the number of keys currently awaiting retry.
func (q *Queue) Len(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, constants.RedisKeyCleanupQueue).Result()
	if err != nil {
		return 0, fmt.Errorf("cleanup: len: %w", err)
	}
	return n, nil
}
