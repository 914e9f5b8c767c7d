package taskrt

import "sync"

// PartialSink is a single-cell publish slot that survives a task's
// retirement: a task that gets cut off mid-way by its [MissPolicy] can
// still have published its best partial answer before that happened.
type PartialSink[T any] struct {
	mu    sync.Mutex
	value T
	set   bool
}

// NewPartialSink returns an empty sink.
func NewPartialSink[T any]() *PartialSink[T] {
	return &PartialSink[T]{}
}

// Set publishes value, overwriting any previous one.
func (s *PartialSink[T]) Set(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	s.set = true
}

// Get returns the last published value and whether one was ever set.
func (s *PartialSink[T]) Get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.set
}

// SpawnPartial spawns body under [SilentlyAbort] and returns a
// [PartialSink] the body can publish intermediate results to as it
// runs. Whatever was last published survives even if the task is
// aborted for missing its deadline.
func SpawnPartial[R any](e *Executor, deadlineOffset uint64, body func(y Yielder, sink *PartialSink[R])) *PartialSink[R] {
	sink := NewPartialSink[R]()
	e.Spawn(deadlineOffset, SilentlyAbort{}, func(y Yielder) error {
		body(y, sink)
		return nil
	})
	return sink
}
