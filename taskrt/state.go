package taskrt

import (
	"sync/atomic"
)

// ExecutorState is the lifecycle state of an [Executor].
//
//	StateIdle (0) → StateRunning (1)      [Run()]
//	StateRunning (1) → StateTerminated (2) [Run() returns]
//
// There is no Sleeping or Terminating state: the executor is
// single-threaded and has no I/O-wait phase distinct from "running".
type ExecutorState uint64

const (
	// StateIdle indicates the executor has been created but Run has not
	// yet been called.
	StateIdle ExecutorState = 0
	// StateRunning indicates a Run call is actively draining the ready queue.
	StateRunning ExecutorState = 1
	// StateTerminated indicates Run has returned.
	StateTerminated ExecutorState = 2
)

// String returns a human-readable representation of the state.
func (s ExecutorState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// executorState is a small atomic state machine guarding reentrant Run calls.
type executorState struct {
	v atomic.Uint64
}

func newExecutorState() *executorState {
	s := &executorState{}
	s.v.Store(uint64(StateIdle))
	return s
}

func (s *executorState) Load() ExecutorState {
	return ExecutorState(s.v.Load())
}

func (s *executorState) Store(state ExecutorState) {
	s.v.Store(uint64(state))
}

func (s *executorState) TryTransition(from, to ExecutorState) bool {
	return s.v.CompareAndSwap(uint64(from), uint64(to))
}
