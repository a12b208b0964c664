package docloud

import (
	"context"
	"time"
)

// PollStatus tags the terminal outcome of a convergence wait.
type PollStatus int

const (
	// PollConverged means the predicate held against a fresh snapshot.
	PollConverged PollStatus = iota
	// PollTimedOut means the deadline passed before convergence. The remote
	// side effect may still complete later; callers must treat this as an
	// unknown outcome, not a no-op.
	PollTimedOut
	// PollFailed means the submit or a fetch returned a transport/API error.
	PollFailed
)

// PollResult is the terminal value of one convergence wait.
type PollResult[T any] struct {
	Status   PollStatus
	Snapshot T
	Err      error
}

// Action describes an asynchronous remote mutation to drive to convergence.
type Action[T any] struct {
	// Submit issues the mutation request. It runs exactly once, before any
	// polling. Optional when the mutation was already submitted elsewhere.
	Submit func(ctx context.Context) error

	// Fetch returns a fresh snapshot of the resource. Snapshots are never
	// reused across cycles.
	Fetch func(ctx context.Context) (T, error)

	// Converged reports whether a snapshot satisfies the target state.
	// It must be pure.
	Converged func(T) bool

	// Timeout bounds the whole wait. Zero or negative times out immediately
	// after submit, without any fetch.
	Timeout time.Duration

	// Interval is the fixed delay between polls. Defaults to 10s.
	Interval time.Duration
}

// Await submits an action once, then re-fetches the resource at a fixed
// interval until the predicate holds or the deadline passes. Errors are never
// retried; the first one aborts the wait.
//
// The deadline is captured from time.Now at entry so the comparison rides the
// monotonic clock and is immune to wall-clock adjustments.
func Await[T any](ctx context.Context, action Action[T]) PollResult[T] {
	if action.Submit != nil {
		if err := action.Submit(ctx); err != nil {
			return PollResult[T]{Status: PollFailed, Err: err}
		}
	}

	if action.Timeout <= 0 {
		return PollResult[T]{Status: PollTimedOut}
	}

	interval := action.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	deadline := time.Now().Add(action.Timeout)

	for {
		snapshot, err := action.Fetch(ctx)
		if err != nil {
			return PollResult[T]{Status: PollFailed, Err: err}
		}
		if action.Converged(snapshot) {
			return PollResult[T]{Status: PollConverged, Snapshot: snapshot}
		}
		if !time.Now().Before(deadline) {
			return PollResult[T]{Status: PollTimedOut}
		}
		time.Sleep(interval)
	}
}
