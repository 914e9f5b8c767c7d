// Package taskrt is a deadline-aware cooperative task runtime for
// dependability-critical and embedded contexts.
//
// # Architecture
//
// The runtime is built around an [Executor] that owns a task table and
// a priority-ordered ready queue keyed by scheduling tick. Callers
// [Executor.Spawn] work items ("tasks"), each
// declaring a deadline offset and a [MissPolicy] describing what
// happens when that deadline is missed. [Executor.Run] drives every
// spawned task to completion, retirement, or its policy-dictated
// outcome, returning a single error value suitable for systems that
// must prove forward progress or detect timing faults.
//
// Task bodies are cooperative: they yield control only at explicit
// suspension points, exposed via the [Yielder] handed to a [Body].
// There is no preemption and no multi-core parallelism.
//
// # Suspension model
//
// Go has no native pausable-function primitive, so a task [Body] runs
// on its own goroutine; each [Yielder] call blocks that goroutine and
// hands control back to the [Executor] over an unbuffered handshake
// channel, resuming only on the next poll. This keeps the
// single-in-flight-per-task invariant: at most one poll of a given
// task is ever outstanding at a time.
//
// # Thread Safety
//
// The task table and [BoundedAllocator] are owned exclusively by the
// goroutine calling [Executor.Run]. The ready queue is the one
// cross-goroutine-safe structure: [WakeHandle.Wake] may be invoked from
// any goroutine, including a task body's own suspension goroutine.
//
// # Usage
//
//	timer := taskrt.NewStdTimer()
//	exec := taskrt.New(timer)
//	exec.Spawn(5, taskrt.ReturnError{}, func(y taskrt.Yielder) error {
//	    y.Noop()
//	    return nil
//	})
//	if err := exec.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Types
//
// The package provides:
//   - [MissedDeadlineError]: returned or wrapped when a task's deadline
//     passes while it is still pending, under [ReturnError].
//   - [PanicError]: wraps a panic recovered from a task body.
//   - sentinel errors [ErrAllocationExceedsCap], [ErrRetriesExceeded],
//     [ErrExecutorAlreadyRunning] for the allocator, retry helper, and
//     executor reentrancy respectively.
package taskrt
