package retry

import (
	"context"
	"fmt"
	"time"
)

type RetryConfig struct {
	MaxAttempts int
	Delay       time.Duration
	MaxDelay    time.Duration // ceiling for a single wait, 0 = no ceiling
	Backoff     bool          // Exponential backoff

	// Retryable decides whether an error is worth another attempt.
	// nil means every error is retried.
	Retryable func(error) bool
}

// DelayFor returns the wait after the given failed attempt (1-based).
// With Backoff the wait doubles every attempt: Delay*2, Delay*4, ...
func (c RetryConfig) DelayFor(attempt int) time.Duration {
	delay := c.Delay
	if c.Backoff {
		delay = c.Delay << uint(attempt)
	}
	if c.MaxDelay > 0 && (delay > c.MaxDelay || delay <= 0) {
		delay = c.MaxDelay
	}
	return delay
}

func WithRetry(ctx context.Context, config RetryConfig, fn func() error) error {
	var lastErr error

	attempts := config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := fn(); err != nil {
			lastErr = err

			if config.Retryable != nil && !config.Retryable(err) {
				return err
			}

			if attempt == attempts {
				return fmt.Errorf("failed after %d attempts: %w", attempts, err)
			}

			timer := time.NewTimer(config.DelayFor(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
				continue
			}
		}
		return nil
	}

	return lastErr
}
