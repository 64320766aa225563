// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package upload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitrinehq/vitrine/internal/content/upload"
)

func TestProgress_CapsBeforeCompletion(t *testing.T) {
	progress := upload.NewProgress()

	for i := 0; i < 20; i++ {
		progress.Advance(10)
	}

	// Synthetic advance never passes 90 while the upload is in flight.
	assert.Equal(t, 90, progress.Percent())
	assert.Empty(t, progress.Err())
}

func TestProgress_Monotone(t *testing.T) {
	progress := upload.NewProgress()

	last := 0
	for i := 0; i < 15; i++ {
		progress.Advance(7)
		current := progress.Percent()
		assert.GreaterOrEqual(t, current, last)
		last = current
	}

	// Negative deltas are ignored.
	progress.Advance(-50)
	assert.Equal(t, last, progress.Percent())
}

func TestProgress_Complete(t *testing.T) {
	progress := upload.NewProgress()
	progress.Advance(30)

	progress.Complete()
	assert.Equal(t, 100, progress.Percent())

	// Finished trackers are frozen.
	progress.Advance(10)
	progress.Fail("late failure")
	assert.Equal(t, 100, progress.Percent())
	assert.Empty(t, progress.Err())
}

func TestProgress_Fail(t *testing.T) {
	progress := upload.NewProgress()
	progress.Advance(60)

	progress.Fail("bucket unavailable")

	// Failure resets the bar and surfaces the message.
	assert.Equal(t, 0, progress.Percent())
	assert.Equal(t, "bucket unavailable", progress.Err())

	// A failed tracker cannot advance or complete.
	progress.Advance(10)
	progress.Complete()
	assert.Equal(t, 0, progress.Percent())
}
