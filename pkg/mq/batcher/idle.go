package batcher

import (
	"context"
	"time"
)

const (
	minIdleDelay = time.Millisecond
	maxIdleDelay = 50 * time.Millisecond
)

// idleBackoff spaces out polls of a source that keeps timing out empty.
// Owned by one worker.
type idleBackoff struct {
	delay time.Duration
}

func newIdleBackoff() *idleBackoff {
	return &idleBackoff{delay: minIdleDelay}
}

// wait sleeps for the current delay, or until ctx is done, then doubles it.
func (b *idleBackoff) wait(ctx context.Context) {
	t := time.NewTimer(b.delay)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
	b.delay = min(b.delay*2, maxIdleDelay)
}

func (b *idleBackoff) reset() {
	b.delay = minIdleDelay
}
