// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package cleanup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// memQueue is an in-memory drainer standing in for the Redis queue.
type memQueue struct {
	keys []string
}

func (m *memQueue) DrainBatch(_ context.Context, n int) ([]string, error) {
	if len(m.keys) == 0 {
		return nil, nil
	}
	if n > len(m.keys) {
		n = len(m.keys)
	}
	batch := m.keys[:n]
	m.keys = m.keys[n:]
	return batch, nil
}

func (m *memQueue) Enqueue(_ context.Context, key string) error {
	m.keys = append(m.keys, key)
	return nil
}

// flakyStore fails a key a configured number of times before succeeding.
type flakyStore struct {
	failuresLeft map[string]int
	deleted      []string
}

func (f *flakyStore) Put(_ context.Context, key, _ string, _ io.Reader) (string, error) {
	return key, nil
}

func (f *flakyStore) Delete(_ context.Context, key string) error {
	if f.failuresLeft[key] > 0 {
		f.failuresLeft[key]--
		return errors.New("transient storage error")
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *flakyStore) Owns(string) bool { return true }

func (f *flakyStore) Key(u string) (string, bool) { return u, true }

/*
TestSweeper_RetriesTransientFailures verifies that a key failing transiently
is still deleted within the backoff budget.
*/
func TestSweeper_RetriesTransientFailures(t *testing.T) {
	queue := &memQueue{keys: []string{"assets/a.jpg", "assets/b.jpg"}}
	store := &flakyStore{failuresLeft: map[string]int{"assets/a.jpg": 2}}

	sweeper := NewSweeper(queue, store, slog.Default())
	sweeper.Sweep(context.Background())

	assert.ElementsMatch(t, []string{"assets/a.jpg", "assets/b.jpg"}, store.deleted)
	assert.Empty(t, queue.keys)
}

/*
TestSweeper_DropsExhaustedKeys verifies that a permanently failing key is
dropped rather than requeued forever.
*/
func TestSweeper_DropsExhaustedKeys(t *testing.T) {
	queue := &memQueue{keys: []string{"assets/dead.jpg", "assets/ok.jpg"}}
	store := &flakyStore{failuresLeft: map[string]int{"assets/dead.jpg": 100}}

	sweeper := NewSweeper(queue, store, slog.Default())
	sweeper.Sweep(context.Background())

	// The healthy key is deleted; the dead one is neither deleted nor requeued.
	assert.Equal(t, []string{"assets/ok.jpg"}, store.deleted)
	assert.Empty(t, queue.keys)
}

/*
TestSweeper_EmptyQueue verifies a sweep over an empty queue is a no-op.
*/
func TestSweeper_EmptyQueue(t *testing.T) {
	queue := &memQueue{}
	store := &flakyStore{failuresLeft: map[string]int{}}

	sweeper := NewSweeper(queue, store, slog.Default())
	sweeper.Sweep(context.Background())

	assert.Empty(t, store.deleted)
}
