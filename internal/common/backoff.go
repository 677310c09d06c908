package common

import (
	"context"
	"time"
)

// Retry runs fn up to attempts times, doubling the delay between tries.
// Only store errors are retried; every other kind is returned immediately.
// Mutating operations must not go through Retry — re-applying a state
// transition after an ambiguous failure can double-apply it.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if !IsStore(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
