package concurrency_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/huelib/internal/concurrency"
)

func Test_ThrottledWorker(t *testing.T) {

	t.Run("should run every job in order", func(t *testing.T) {
		t.Parallel()

		// arrange
		var seen []string
		worker := concurrency.NewThrottledWorker(time.Millisecond, func(_ context.Context, id string) (int, error) {
			seen = append(seen, id)
			if id == "2" {
				return 0, errors.New("unreachable")
			}
			return len(id), nil
		})

		// act
		results := worker.Run(context.Background(), []string{"1", "2", "33"})

		// assert
		assert.Equal(t, []string{"1", "2", "33"}, seen)
		require.Len(t, results, 3)
		assert.Equal(t, 1, results[0].Value)
		assert.EqualError(t, results[1].Err, "unreachable")
		assert.Equal(t, "33", results[2].Arg)
		assert.Equal(t, 2, results[2].Value)
	})

	t.Run("should space the jobs by the interval", func(t *testing.T) {
		t.Parallel()

		worker := concurrency.NewThrottledWorker(20*time.Millisecond, func(_ context.Context, _ int) (struct{}, error) {
			return struct{}{}, nil
		})

		start := time.Now()
		worker.Run(context.Background(), []int{1, 2, 3})

		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})

	t.Run("should not start jobs after cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		worker := concurrency.NewThrottledWorker(time.Hour, func(_ context.Context, _ int) (int, error) {
			calls++
			cancel()
			return 0, nil
		})

		results := worker.Run(ctx, []int{1, 2})

		assert.Equal(t, 1, calls)
		require.Len(t, results, 2)
		assert.NoError(t, results[0].Err)
		assert.ErrorIs(t, results[1].Err, context.Canceled)
	})
}
