package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/deusflow/trendbrief/internal/logger"
)

// DefaultMinInterval keeps Gemini free tier callers under 10 requests per minute.
const DefaultMinInterval = 7 * time.Second

// Limiter is the process-wide rate budget for LLM calls.
// Every caller must share one instance: the quota and the per-minute limit are
// imposed per API key, not per category.
type Limiter struct {
	// mu serializes Wait and is held while sleeping
	mu          sync.Mutex
	minInterval time.Duration
	lastCall    time.Time

	// statsMu guards the counters and is never held across a sleep, so
	// GetStats answers while a caller is waiting
	statsMu  sync.Mutex
	calls    int
	waited   time.Duration
	lastSeen time.Time

	// never reset once set
	quotaExhausted atomic.Bool

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a limiter that spaces calls at least minInterval apart.
func New(minInterval time.Duration) *Limiter {
	return &Limiter{
		minInterval: minInterval,
		now:         time.Now,
		sleep:       sleepContext,
	}
}

// Wait blocks until the minimum interval since the previous call has elapsed and
// then stamps the call time. The lock is held while sleeping so two callers can
// never both observe an elapsed interval.
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.lastCall.IsZero() {
		elapsed := l.now().Sub(l.lastCall)
		if elapsed < l.minInterval {
			wait := l.minInterval - elapsed
			logger.Info("Rate limit wait", "wait", wait.Round(100*time.Millisecond))
			if err := l.sleep(ctx, wait); err != nil {
				return err
			}
			l.statsMu.Lock()
			l.waited += wait
			l.statsMu.Unlock()
		}
	}

	l.lastCall = l.now()

	l.statsMu.Lock()
	l.calls++
	l.lastSeen = l.lastCall
	l.statsMu.Unlock()
	return nil
}

// MarkQuotaExhausted latches the daily quota flag for the rest of the process.
func (l *Limiter) MarkQuotaExhausted() {
	if l.quotaExhausted.CompareAndSwap(false, true) {
		logger.Warn("Daily LLM quota exhausted, skipping all further LLM calls")
	}
}

// QuotaExhausted reports whether the daily quota latch is set.
// It does not take the lock so it never blocks behind a sleeping Wait.
func (l *Limiter) QuotaExhausted() bool {
	return l.quotaExhausted.Load()
}

// GetStats returns current rate limiter statistics
func (l *Limiter) GetStats() map[string]interface{} {
	l.statsMu.Lock()
	defer l.statsMu.Unlock()

	last := ""
	if !l.lastSeen.IsZero() {
		last = l.lastSeen.Format(time.RFC3339)
	}

	return map[string]interface{}{
		"llm_calls":           l.calls,
		"llm_wait_ms":         l.waited.Milliseconds(),
		"llm_last_call":       last,
		"llm_min_interval_ms": l.minInterval.Milliseconds(),
		"llm_quota_exhausted": l.quotaExhausted.Load(),
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
