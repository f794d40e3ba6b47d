package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestBreaker(maxFailures int, reset time.Duration) (*CircuitBreaker, *time.Time) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: maxFailures, ResetTimeout: reset})
	cb.now = func() time.Time { return clock }
	return cb, &clock
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb, _ := newTestBreaker(3, time.Minute)

	for i := 0; i < 2; i++ {
		assert.True(t, cb.Allow())
		cb.Failure()
	}
	assert.Equal(t, "closed", cb.State())

	assert.True(t, cb.Allow())
	cb.Failure()
	assert.Equal(t, "open", cb.State())
	assert.False(t, cb.Allow())
}

func TestCircuitBreaker_SuccessResetsCount(t *testing.T) {
	cb, _ := newTestBreaker(2, time.Minute)

	cb.Failure()
	cb.Success()
	cb.Failure()
	assert.Equal(t, "closed", cb.State())
}

func TestCircuitBreaker_HalfOpenProbe(t *testing.T) {
	cb, clock := newTestBreaker(1, time.Minute)

	cb.Failure()
	assert.False(t, cb.Allow())

	*clock = clock.Add(2 * time.Minute)
	assert.True(t, cb.Allow())
	assert.Equal(t, "half-open", cb.State())
	assert.False(t, cb.Allow(), "only one probe at a time")

	cb.Failure()
	assert.Equal(t, "open", cb.State())

	*clock = clock.Add(2 * time.Minute)
	assert.True(t, cb.Allow())
	cb.Success()
	assert.Equal(t, "closed", cb.State())
	assert.True(t, cb.Allow())
}
