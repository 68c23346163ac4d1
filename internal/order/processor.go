package order

import (
	"context"
	"time"
)

// Processor is the deferred completion step between checkout validation
// and committing the order. A non-nil error aborts the commit.
type Processor interface {
	Process(ctx context.Context, o *Order) error
}

type ProcessorFunc func(ctx context.Context, o *Order) error

func (f ProcessorFunc) Process(ctx context.Context, o *Order) error {
	return f(ctx, o)
}

// DelayProcessor simulates payment processing by waiting Delay and
// then succeeding.
type DelayProcessor struct {
	Delay time.Duration
}

func (p DelayProcessor) Process(ctx context.Context, o *Order) error {
	if p.Delay <= 0 {
		return nil
	}

	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
