package retries

import (
	"context"
	"time"
)

// Readiness probes retry with a short backoff. The upload/download path
// never goes through this package: a failed commit or download surfaces to
// the caller, who retries the whole operation.
const (
	HealthAttempts  = 3
	HealthBaseDelay = 100 * time.Millisecond
)

// Retry runs fn up to attempts times with exponential backoff, stopping
// early when ctx is done or isRetriable rejects the error.
func Retry(ctx context.Context, attempts int, baseDelay time.Duration, fn func() error, isRetriable func(error) bool) error {
	var err error
	delay := baseDelay

	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if !isRetriable(err) {
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

// Always treats every error as retriable.
func Always(error) bool { return true }
