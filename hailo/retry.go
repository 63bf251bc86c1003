package hailo

import (
	"sync/atomic"
	"time"

	"github.com/amikos-tech/pure-hailort/hailort"
	"go.uber.org/zap"
)

// RetryPolicy decides how often an idempotent query is repeated when the
// library reports a transport failure. Other statuses are returned at once.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
}

// DefaultRetryPolicy is used until SetRetryPolicy is called.
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts:    3,
	InitialBackoff: 20 * time.Millisecond,
	MaxBackoff:     500 * time.Millisecond,
	Multiplier:     2,
}

// NoRetry performs every query exactly once.
var NoRetry = RetryPolicy{MaxAttempts: 1}

var (
	retryPolicy atomic.Pointer[RetryPolicy]
	sleep       = time.Sleep
)

// SetRetryPolicy replaces the policy applied to info and scan calls.
func SetRetryPolicy(p RetryPolicy) {
	retryPolicy.Store(&p)
}

// CurrentRetryPolicy returns the policy in effect.
func CurrentRetryPolicy() RetryPolicy {
	if p := retryPolicy.Load(); p != nil {
		return *p
	}
	return DefaultRetryPolicy
}

// backoff returns the delay before attempt n, counting the first retry as 1.
func (p RetryPolicy) backoff(n int) time.Duration {
	d := p.InitialBackoff
	mult := p.Multiplier
	if mult < 1 {
		mult = 1
	}
	for i := 1; i < n; i++ {
		d = time.Duration(float64(d) * mult)
		if p.MaxBackoff > 0 && d >= p.MaxBackoff {
			return p.MaxBackoff
		}
	}
	if p.MaxBackoff > 0 && d > p.MaxBackoff {
		return p.MaxBackoff
	}
	return d
}

// run calls fn until it succeeds, returns a non-retryable status or the
// attempts are used up.
func (p RetryPolicy) run(op string, fn func() hailort.Status) error {
	attempts := max(p.MaxAttempts, 1)
	var s hailort.Status
	for attempt := 1; ; attempt++ {
		s = fn()
		if s.IsSuccess() || !s.IsRetryable() || attempt >= attempts {
			break
		}
		delay := p.backoff(attempt)
		Logger().Debug("retrying after transport failure",
			zap.String("op", op),
			zap.Stringer("status", s),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", delay))
		sleep(delay)
	}
	return s.Err(op)
}

func retry(op string, fn func() hailort.Status) error {
	return CurrentRetryPolicy().run(op, fn)
}
