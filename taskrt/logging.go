package taskrt

import (
	"fmt"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the structured logger type accepted by [WithLogger]. It is an
// alias for the stumpy-backed instantiation of [logiface.Logger], so any
// logger built via stumpy.L.New (or logiface.New with a stumpy event
// factory) can be passed directly.
type Logger = *logiface.Logger[*stumpy.Event]

// NewLogger builds a default stumpy-backed [Logger] writing with the given
// options. Most callers will instead construct one directly via
// stumpy.L.New and pass it to [WithLogger].
func NewLogger(opts ...logiface.Option[*stumpy.Event]) Logger {
	return stumpy.L.New(opts...)
}

// logTaskSpawned records task creation.
func logTaskSpawned(l Logger, id TaskID, deadline Deadline) {
	if l == nil {
		return
	}
	l.Debug().
		Uint64(`task_id`, uint64(id)).
		Str(`deadline`, deadline.String()).
		Log(`task spawned`)
}

// logTaskPolled records a single poll of a task, ready or pending.
func logTaskPolled(l Logger, id TaskID, ready bool) {
	if l == nil {
		return
	}
	l.Debug().
		Uint64(`task_id`, uint64(id)).
		Bool(`ready`, ready).
		Log(`task polled`)
}

// logDeadlineMissed records a task found pending past its deadline, and
// the policy applied as a result.
func logDeadlineMissed(l Logger, id TaskID, policy string) {
	if l == nil {
		return
	}
	l.Warning().
		Uint64(`task_id`, uint64(id)).
		Str(`policy`, policy).
		Log(`task missed its deadline`)
}

// logTaskPanicked records a recovered task-body panic.
func logTaskPanicked(l Logger, id TaskID, value any) {
	if l == nil {
		return
	}
	l.Err().
		Uint64(`task_id`, uint64(id)).
		Str(`panic`, fmt.Sprint(value)).
		Log(`task panicked`)
}

// logTaskRetired records a task's final departure from the task table.
func logTaskRetired(l Logger, id TaskID) {
	if l == nil {
		return
	}
	l.Debug().
		Uint64(`task_id`, uint64(id)).
		Log(`task retired`)
}
