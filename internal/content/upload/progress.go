// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package upload

import (
	"context"
	"sync"
	"time"
)

const (
	// progressCeiling is the highest value synthetic ticks may reach; the
	// final step to 100 is reserved for actual completion.
	progressCeiling = 90

	// progressStep and progressInterval drive the synthetic advance. The
	// cadence is cosmetic; only the 0/90/100 contract matters.
	progressStep     = 10
	progressInterval = 200 * time.Millisecond
)

// Progress tracks a single upload for dashboard progress bars.
//
// Its percentage is monotonically non-decreasing while the upload runs,
// never exceeds 90 before completion, snaps to 100 on success, and resets to
// 0 with an error message on failure. The blob transfer itself reports no
// intermediate bytes, so the advance is synthetic.
type Progress struct {
	mu      sync.Mutex
	percent int
	errMsg  string
	done    bool
}

// NewProgress returns a tracker at 0 percent.
func NewProgress() *Progress {
	return &Progress{}
}

// Percent returns the current percentage.
func (p *Progress) Percent() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.percent
}

// Err returns the failure message, or "" while healthy.
func (p *Progress) Err() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

// Advance raises the percentage by delta, clamped to the pre-completion
// ceiling. It is a no-op once the upload has finished either way.
func (p *Progress) Advance(delta int) {
	if delta < 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return
	}

	p.percent += delta
	if p.percent > progressCeiling {
		p.percent = progressCeiling
	}
}

// Complete snaps the tracker to 100.
func (p *Progress) Complete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return
	}

	p.done = true
	p.percent = 100
}

// Fail resets the tracker to 0 and records the failure message.
func (p *Progress) Fail(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return
	}

	p.done = true
	p.percent = 0
	p.errMsg = message
}

// Run advances the tracker on a fixed interval until the upload finishes or
// ctx is cancelled. It is meant to be launched alongside the blob transfer:
//
//	progress := upload.NewProgress()
//	go progress.Run(ctx)
//	url, err := service.Upload(ctx, file)
func (p *Progress) Run(ctx context.Context) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.mu.Lock()
			finished := p.done
			p.mu.Unlock()
			if finished {
				return
			}
			p.Advance(progressStep)
		}
	}
}
