package resilience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCircuitBreakerOpensAfterThreshold(t *testing.T) {
	b := NewCircuitBreaker(3, time.Minute, 1)

	require.NoError(t, b.Allow())
	b.RecordFailure()
	b.RecordFailure()
	require.Equal(t, CircuitStateClosed, b.State())

	b.RecordFailure()
	require.Equal(t, CircuitStateOpen, b.State())
	require.ErrorIs(t, b.Allow(), ErrCircuitOpen)
}

func TestCircuitBreakerSuccessResetsFailureStreak(t *testing.T) {
	b := NewCircuitBreaker(2, time.Minute, 1)

	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()

	require.Equal(t, CircuitStateClosed, b.State())
	require.NoError(t, b.Allow())
}

func TestCircuitBreakerHalfOpenRecovery(t *testing.T) {
	b := NewCircuitBreaker(1, 10*time.Millisecond, 1)

	b.RecordFailure()
	require.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, CircuitStateHalfOpen, b.State())

	require.NoError(t, b.Allow())
	b.RecordSuccess()
	require.Equal(t, CircuitStateClosed, b.State())
	require.NoError(t, b.Allow())
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	b := NewCircuitBreaker(1, 10*time.Millisecond, 1)

	b.RecordFailure()
	time.Sleep(20 * time.Millisecond)

	require.NoError(t, b.Allow())
	b.RecordFailure()

	require.ErrorIs(t, b.Allow(), ErrCircuitOpen)
}

func TestCircuitBreakerHalfOpenLimitsProbes(t *testing.T) {
	b := NewCircuitBreaker(1, 10*time.Millisecond, 2)

	b.RecordFailure()
	time.Sleep(20 * time.Millisecond)

	require.NoError(t, b.Allow())
	require.NoError(t, b.Allow())
	require.ErrorIs(t, b.Allow(), ErrCircuitOpen)
}
