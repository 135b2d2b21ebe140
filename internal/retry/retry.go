// Package retry provides a bounded retry combinator for flaky external
// calls such as speech synthesis.
package retry

import (
	"context"
	"errors"
	"time"
)

// Do runs op up to attempts times, sleeping delay between failed attempts.
// It returns nil as soon as op succeeds, the last error once attempts are
// exhausted, and the context error if the context is cancelled while waiting.
func Do(ctx context.Context, attempts int, delay time.Duration, op func(context.Context) error) error {
	if attempts < 1 {
		return errors.New("retry: attempts must be at least 1")
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return lastErr
}
