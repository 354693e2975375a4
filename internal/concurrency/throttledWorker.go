package concurrency

import (
	"context"
	"time"
)

// ThrottledWorker runs a job for each argument, one at a time, starting at
// most one job per interval. The bridge drops requests when it receives more
// than about ten per second.
type ThrottledWorker[A any, R any] struct {
	interval    time.Duration
	jobCallback func(ctx context.Context, arg A) (R, error)
}

// Result of a single job.
type Result[A any, R any] struct {
	Arg   A
	Value R
	Err   error
}

func NewThrottledWorker[A any, R any](interval time.Duration, jobCallback func(ctx context.Context, arg A) (R, error)) ThrottledWorker[A, R] {
	return ThrottledWorker[A, R]{interval: interval, jobCallback: jobCallback}
}

// Run returns one result per argument in argument order. Arguments not yet
// started when ctx is done get ctx's error.
func (w *ThrottledWorker[A, R]) Run(ctx context.Context, jobArgs []A) []Result[A, R] {

	jobArgsChannel := make(chan A, len(jobArgs))

	for _, arg := range jobArgs {
		jobArgsChannel <- arg
	}
	close(jobArgsChannel)
	limiter := time.NewTicker(w.interval)
	defer limiter.Stop()

	results := make([]Result[A, R], 0, len(jobArgs))
	first := true
	for arg := range jobArgsChannel {
		if !first {
			select {
			case <-ctx.Done():
				results = append(results, Result[A, R]{Arg: arg, Err: ctx.Err()})
				continue
			case <-limiter.C:
			}
		}
		first = false

		if err := ctx.Err(); err != nil {
			results = append(results, Result[A, R]{Arg: arg, Err: err})
			continue
		}
		value, err := w.jobCallback(ctx, arg)
		results = append(results, Result[A, R]{Arg: arg, Value: value, Err: err})
	}

	return results
}
