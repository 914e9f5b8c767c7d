package taskrt

import (
	"errors"
	"fmt"
)

// ErrAllocationExceedsCap is returned by [BoundedAllocator.Allocate] when a
// single request can never fit under the allocator's cap, regardless of
// how much has already been freed.
var ErrAllocationExceedsCap = errors.New("taskrt: allocation exceeds allocator capacity")

// ErrRetriesExceeded is returned by [Retry] and [RetryOption] once every
// attempt, including retries, has failed.
var ErrRetriesExceeded = errors.New("taskrt: retries exceeded")

// ErrExecutorAlreadyRunning is returned by [Executor.Run] if it is called
// while a prior call on the same [Executor] is still in progress, or
// after a prior call has already returned.
var ErrExecutorAlreadyRunning = errors.New("taskrt: executor is already running")

// MissedDeadlineError is returned (under [ReturnError]) or used as the
// panic value (under [Panic]) when a task is still pending after its
// deadline has passed.
type MissedDeadlineError struct {
	TaskID   TaskID
	Deadline Deadline
}

func (e *MissedDeadlineError) Error() string {
	return fmt.Sprintf("taskrt: task %d missed its deadline (%s)", e.TaskID, e.Deadline)
}

// PanicError wraps a value recovered from a panicking task body. Value
// holds whatever was passed to panic; if it is itself an error, Unwrap
// exposes it for [errors.Is] / [errors.As].
type PanicError struct {
	TaskID TaskID
	Value  any
	Stack  []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("taskrt: task %d panicked: %v", e.TaskID, e.Value)
}

// Unwrap returns the underlying error if the panic value is an error,
// enabling [errors.Is] / [errors.As] matching through the cause chain.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// WrapError wraps an error with a message, preserving it for [errors.Is].
func WrapError(message string, cause error) error {
	return fmt.Errorf("%s: %w", message, cause)
}
