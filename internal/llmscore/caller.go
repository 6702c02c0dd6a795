package llmscore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deusflow/trendbrief/internal/logger"
	"github.com/deusflow/trendbrief/internal/ratelimit"
	"github.com/deusflow/trendbrief/internal/retry"
)

// Rater generates a completion for prompt under the given system instruction.
type Rater interface {
	Generate(ctx context.Context, system, prompt string, maxTokens int) (string, error)
}

type Options struct {
	BatchSize       int
	KeywordWeight   float64
	RelevanceWeight float64
	MaxAttempts     int
	RetryDelay      time.Duration // first backoff step, doubled per attempt
	MaxRetryDelay   time.Duration
	CallTimeout     time.Duration
	MaxTokens       int
	RatingsTTL      time.Duration // how long a rating is reused within one process
}

func DefaultOptions() Options {
	return Options{
		BatchSize:       20,
		KeywordWeight:   0.3,
		RelevanceWeight: 0.7,
		MaxAttempts:     3,
		RetryDelay:      1 * time.Second,
		MaxRetryDelay:   10 * time.Second,
		CallTimeout:     60 * time.Second,
		MaxTokens:       1024,
		RatingsTTL:      24 * time.Hour,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.BatchSize <= 0 {
		o.BatchSize = d.BatchSize
	}
	if o.KeywordWeight == 0 && o.RelevanceWeight == 0 {
		o.KeywordWeight, o.RelevanceWeight = d.KeywordWeight, d.RelevanceWeight
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = d.MaxAttempts
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = d.RetryDelay
	}
	if o.MaxRetryDelay <= 0 {
		o.MaxRetryDelay = d.MaxRetryDelay
	}
	if o.CallTimeout <= 0 {
		o.CallTimeout = d.CallTimeout
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = d.MaxTokens
	}
	if o.RatingsTTL <= 0 {
		o.RatingsTTL = d.RatingsTTL
	}
	return o
}

// Caller wraps a Rater with the shared rate limiter, a per-call timeout,
// retry with capped exponential backoff and the daily quota latch.
type Caller struct {
	rater   Rater
	limiter *ratelimit.Limiter
	opts    Options
}

func NewCaller(rater Rater, limiter *ratelimit.Limiter, opts Options) *Caller {
	return &Caller{
		rater:   rater,
		limiter: limiter,
		opts:    opts.withDefaults(),
	}
}

func (c *Caller) Options() Options {
	return c.opts
}

// QuotaExhausted reports whether the process-wide quota latch is set.
func (c *Caller) QuotaExhausted() bool {
	return c.limiter.QuotaExhausted()
}

// Call returns ErrQuotaExhausted without touching the network once the latch
// is set, and a *RetryableError when every attempt failed.
func (c *Caller) Call(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	if c.limiter.QuotaExhausted() {
		return "", ErrQuotaExhausted
	}
	if maxTokens <= 0 {
		maxTokens = c.opts.MaxTokens
	}

	var text string
	attempt := 0

	cfg := retry.RetryConfig{
		MaxAttempts: c.opts.MaxAttempts,
		Delay:       c.opts.RetryDelay,
		MaxDelay:    c.opts.MaxRetryDelay,
		Backoff:     true,
		Retryable: func(err error) bool {
			return ctx.Err() == nil && !errors.Is(err, ErrQuotaExhausted)
		},
	}

	err := retry.WithRetry(ctx, cfg, func() error {
		attempt++
		if c.limiter.QuotaExhausted() {
			return ErrQuotaExhausted
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		callCtx, cancel := context.WithTimeout(ctx, c.opts.CallTimeout)
		defer cancel()

		out, err := c.rater.Generate(callCtx, system, prompt, maxTokens)
		if err != nil {
			logger.Warn("LLM call failed", "attempt", attempt, "max_attempts", c.opts.MaxAttempts, "error", err)
			if IsQuotaError(err) {
				c.limiter.MarkQuotaExhausted()
				return fmt.Errorf("%w: %v", ErrQuotaExhausted, err)
			}
			return err
		}
		text = out
		return nil
	})

	switch {
	case err == nil:
		return text, nil
	case errors.Is(err, ErrQuotaExhausted):
		return "", err
	case ctx.Err() != nil:
		return "", ctx.Err()
	default:
		return "", &RetryableError{Attempts: attempt, Err: err}
	}
}
