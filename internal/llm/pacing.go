package llm

import (
	"context"
	"time"
)

// Pacer is the quota-protecting pacing policy applied after every generation
// call, including between retry attempts. It is a rate-limiting discipline,
// not a correctness mechanism; tests substitute NoPacing.
type Pacer interface {
	Pause(ctx context.Context) error
}

// FixedPacer pauses for a fixed duration after each call.
type FixedPacer struct {
	delay time.Duration
}

// NewFixedPacer returns a pacer with the given post-call delay.
// A non-positive delay behaves like NoPacing.
func NewFixedPacer(delay time.Duration) FixedPacer {
	return FixedPacer{delay: delay}
}

// Pause blocks for the configured delay or until the context is done.
func (p FixedPacer) Pause(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoPacing is the zero-delay policy for tests.
type NoPacing struct{}

// Pause returns immediately.
func (NoPacing) Pause(context.Context) error { return nil }
