// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

/*
Package storage is the blob half of the content store.

Documents live in PostgreSQL; every image or video they reference lives in an
S3-compatible bucket and is addressed by a public URL. This package owns the
mapping between those URLs and bucket object keys, and the best-effort cleanup
discipline used when documents drop references.

Ownership model: a blob belongs to exactly one document. Once the owning
document no longer references it, the blob is garbage and may be deleted
unconditionally. URLs that do not point into the managed bucket are external
and are never touched.
*/
package storage

import (
	"context"
	"io"
	"log/slog"
)

// Store abstracts the object storage service consumed by the content services.
type Store interface {
	// Put streams an object into the bucket under key with public-read access
	// and returns its public URL.
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes an object by key. Deleting an absent object is not an error.
	Delete(ctx context.Context, key string) error

	// Owns reports whether rawURL points into the managed bucket namespace.
	Owns(rawURL string) bool

	// Key extracts the object key from a managed URL. The second return is
	// false when the URL is external.
	Key(rawURL string) (string, bool)
}

// RetryQueue receives object keys whose deletion failed so a background
// sweeper can retry them later.
type RetryQueue interface {
	Enqueue(ctx context.Context, key string) error
}

// Cleaner applies the blob cleanup discipline shared by all content services:
// sequential, best-effort, never aborting the caller's document write.
type Cleaner struct {
	store  Store
	queue  RetryQueue
	logger *slog.Logger
}

// NewCleaner wires a Cleaner. queue may be nil, in which case failed
// deletions are only logged (storage may leak until the object is removed
// manually).
func NewCleaner(store Store, queue RetryQueue, logger *slog.Logger) *Cleaner {
	return &Cleaner{store: store, queue: queue, logger: logger}
}

// Remove deletes the managed blobs behind urls, one at a time.
//
// External URLs are skipped. An individual deletion failure is logged and
// handed to the retry queue; it never propagates to the caller, because the
// document write that follows must still succeed.
func (c *Cleaner) Remove(ctx context.Context, urls []string) {
	for _, rawURL := range urls {
		key, ok := c.store.Key(rawURL)
		if !ok {
			// External origin: nothing to delete on our side.
			continue
		}

		if err := c.store.Delete(ctx, key); err != nil {
			c.logger.Warn("blob_delete_failed",
				slog.String("key", key),
				slog.Any("error", err),
			)

			if c.queue != nil {
				if qerr := c.queue.Enqueue(ctx, key); qerr != nil {
					c.logger.Error("blob_cleanup_enqueue_failed",
						slog.String("key", key),
						slog.Any("error", qerr),
					)
				}
			}
		}
	}
}
