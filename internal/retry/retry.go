// Package retry re-invokes an operation while it fails with one of the listed errors.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrAttemptsExhausted = errors.New("retry attempts exhausted")

type Policy struct {
	// Retryable lists errors matched with errors.Is. Any other error is returned immediately.
	Retryable []error
	Delay     time.Duration
	// MaxAttempts limits the total number of calls. Zero means no limit.
	MaxAttempts int
	// OnRetry is called before waiting for the next attempt.
	OnRetry func(attempt int, err error)
}

func (p Policy) retryable(err error) bool {
	for _, target := range p.Retryable {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func Do(ctx context.Context, p Policy, op func(context.Context) error) error {
	_, err := DoValue(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

func DoValue[T any](ctx context.Context, p Policy, op func(context.Context) (T, error)) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err //nolint:wrapcheck // it's ok
		}

		res, err := op(ctx)
		if err == nil {
			return res, nil
		}
		if !p.retryable(err) {
			return zero, err
		}
		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			return zero, fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, attempt, err)
		}

		if p.OnRetry != nil {
			p.OnRetry(attempt, err)
		}
		if err := Sleep(ctx, p.Delay); err != nil {
			return zero, err
		}
	}
}

// Sleep waits for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err() //nolint:wrapcheck // it's ok
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck // it's ok
	case <-t.C:
		return nil
	}
}
