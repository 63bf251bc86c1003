package hailo

import (
	"testing"
	"time"

	"github.com/amikos-tech/pure-hailort/hailort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withRetryPolicy installs p and records the delays instead of sleeping.
func withRetryPolicy(t *testing.T, p RetryPolicy) *[]time.Duration {
	t.Helper()
	prevPolicy, prevSleep := CurrentRetryPolicy(), sleep
	var delays []time.Duration
	SetRetryPolicy(p)
	sleep = func(d time.Duration) { delays = append(delays, d) }
	t.Cleanup(func() {
		SetRetryPolicy(prevPolicy)
		sleep = prevSleep
	})
	return &delays
}

func TestRetryRepeatsTransportFailures(t *testing.T) {
	delays := withRetryPolicy(t, DefaultRetryPolicy)

	calls := 0
	err := retry("hailo_identify", func() hailort.Status {
		calls++
		if calls < 3 {
			return hailort.StatusTimeout
		}
		return hailort.StatusSuccess
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{20 * time.Millisecond, 40 * time.Millisecond}, *delays)
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	withRetryPolicy(t, RetryPolicy{MaxAttempts: 2, InitialBackoff: time.Millisecond})

	calls := 0
	err := retry("hailo_get_chip_temperature", func() hailort.Status {
		calls++
		return hailort.StatusDriverOperationFailed
	})
	assert.ErrorIs(t, err, hailort.StatusDriverOperationFailed)
	assert.Equal(t, 2, calls)
}

func TestRetrySkipsOtherKinds(t *testing.T) {
	delays := withRetryPolicy(t, DefaultRetryPolicy)

	for _, s := range []hailort.Status{
		hailort.StatusInvalidArgument,
		hailort.StatusNotFound,
		hailort.StatusInsufficientBuffer,
		hailort.StatusNotImplemented,
		hailort.StatusUninitialized,
	} {
		calls := 0
		err := retry("op", func() hailort.Status { calls++; return s })
		assert.ErrorIs(t, err, s)
		assert.Equal(t, 1, calls, s.Name())
	}
	assert.Empty(t, *delays)
}

func TestNoRetryPolicy(t *testing.T) {
	withRetryPolicy(t, NoRetry)
	calls := 0
	_ = retry("op", func() hailort.Status { calls++; return hailort.StatusTimeout })
	assert.Equal(t, 1, calls)
}

func TestBackoffIsCapped(t *testing.T) {
	p := RetryPolicy{InitialBackoff: 100 * time.Millisecond, MaxBackoff: 300 * time.Millisecond, Multiplier: 2}
	assert.Equal(t, 100*time.Millisecond, p.backoff(1))
	assert.Equal(t, 200*time.Millisecond, p.backoff(2))
	assert.Equal(t, 300*time.Millisecond, p.backoff(3))
	assert.Equal(t, 300*time.Millisecond, p.backoff(10))

	flat := RetryPolicy{InitialBackoff: 5 * time.Millisecond, Multiplier: 0.5}
	assert.Equal(t, 5*time.Millisecond, flat.backoff(4))
}
