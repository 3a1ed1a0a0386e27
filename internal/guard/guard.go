// Package guard bounds provider calls with a hard deadline.
package guard

import (
	"context"
	"time"

	"rubick-translator/internal/domain"
)

// WithTimeout runs op with a context that is cancelled when d elapses. If the
// timer wins the race the call fails with *domain.TimeoutError; op keeps the
// cancelled context so its in-flight I/O is aborted. The timer is released on
// every path.
func WithTimeout[T any](ctx context.Context, d time.Duration, provider domain.ProviderKind, op func(context.Context) (T, error)) (T, error) {
	opCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		val T
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		v, err := op(opCtx)
		done <- outcome{val: v, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	var zero T
	select {
	case out := <-done:
		return out.val, out.err
	case <-timer.C:
		cancel()
		return zero, &domain.TimeoutError{Provider: provider, After: d}
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
