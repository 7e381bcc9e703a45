package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bookhaven/loan-service/pkg/circuit_breaker"
)

func Test_circuitBreaker_Call(t *testing.T) {
	successfulService := func() error {
		return nil
	}
	failingService := func() error {
		return errors.New("service error")
	}

	t.Run("opens after failure percentile and recovers", func(t *testing.T) {
		cb := circuit_breaker.NewCircuitBreaker(10, 50*time.Millisecond, 0.30, 3)

		for i := 0; i < 20; i++ {
			require.NoError(t, cb.Call(successfulService))
		}

		// enough failures to exceed the percentile
		for i := 0; i < 4; i++ {
			require.Error(t, cb.Call(failingService))
		}

		err := cb.Call(successfulService)
		require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)

		// after the timeout the breaker probes in half-open and closes again
		time.Sleep(60 * time.Millisecond)
		for i := 0; i < 5; i++ {
			require.NoError(t, cb.Call(successfulService))
		}
		require.NoError(t, cb.Call(successfulService))
	})

	t.Run("half-open failure reopens", func(t *testing.T) {
		cb := circuit_breaker.NewCircuitBreaker(10, 50*time.Millisecond, 0.30, 3)

		for i := 0; i < 4; i++ {
			require.Error(t, cb.Call(failingService))
		}
		require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

		time.Sleep(60 * time.Millisecond)
		require.Error(t, cb.Call(failingService))
		require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)
	})

	t.Run("reset closes the breaker", func(t *testing.T) {
		cb := circuit_breaker.NewCircuitBreaker(10, time.Minute, 0.30, 3)

		for i := 0; i < 4; i++ {
			require.Error(t, cb.Call(failingService))
		}
		require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

		cb.Reset()
		require.NoError(t, cb.Call(successfulService))
	})
}
