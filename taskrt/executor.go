package taskrt

import (
	"fmt"
)

// Executor owns a task table, a priority-ordered ready queue keyed by
// scheduling tick, and a single logical thread of control. It is not
// safe for concurrent calls to [Executor.Run], and [Executor.Spawn]
// writes the task table without locking, so it must not race with Run.
// A [WakeHandle] obtained from a running task is the only operation
// meant to be called from other goroutines.
type Executor struct {
	timer Timer
	opts  *executorOptions

	tasks     map[TaskID]*Task
	queue     *priorityQueue
	allocator *BoundedAllocator

	state *executorState
}

// New returns an Executor driven by timer, configured by opts.
func New(timer Timer, opts ...Option) *Executor {
	cfg := resolveOptions(opts)
	return &Executor{
		timer:     timer,
		opts:      cfg,
		tasks:     make(map[TaskID]*Task),
		queue:     newPriorityQueue(),
		allocator: NewBoundedAllocator(cfg.allocatorCap),
		state:     newExecutorState(),
	}
}

// Allocator returns the executor's built-in [BoundedAllocator], shared
// across all tasks it spawns. Configure its cap with [WithAllocatorCap].
func (e *Executor) Allocator() *BoundedAllocator {
	return e.allocator
}

// Spawn queues body for polling right away, with a deadline of
// deadlineOffset ticks after the timer's current tick, under the given
// miss policy, and returns its [TaskID].
//
// It panics if a task with the same ID already exists; that can only
// happen if the internal ID counter has wrapped, which signals a
// programming error rather than a runtime condition to recover from.
func (e *Executor) Spawn(deadlineOffset uint64, policy MissPolicy, body Body) TaskID {
	return e.spawn(TaskSpec{DeadlineOffset: deadlineOffset, Policy: policy, Body: body})
}

func (e *Executor) spawn(spec TaskSpec) TaskID {
	id := allocateTaskID()
	deadline := At(e.timer.Now()).Add(spec.DeadlineOffset)
	task := newTask(id, deadline, spec.Policy, spec.Body, e.timer)
	task.wakeHandle = newWakeHandle(id, deadline, e.opts.infiniteSentinel, e.queue)

	if _, exists := e.tasks[id]; exists {
		panic(fmt.Sprintf("taskrt: a task with id %d already exists", id))
	}
	e.tasks[id] = task
	e.queue.Push(id, deadline.schedulingTick(e.opts.infiniteSentinel))
	logTaskSpawned(e.opts.logger, id, deadline)
	return id
}

// Run drains the ready queue, polling each task in deadline order until
// every task has retired. It returns a [MissedDeadlineError] for the
// first task that misses its deadline under [ReturnError], a
// [PanicError] if a task body panics, or the error a task body
// returns, whichever comes first; otherwise nil once the queue is
// empty. Under [Panic], a missed deadline makes Run itself panic.
//
// Run is not reentrant: calling it while a prior call on the same
// Executor is still running returns [ErrExecutorAlreadyRunning]. Run
// works only once per Executor; every call after the first has
// returned also gets [ErrExecutorAlreadyRunning].
func (e *Executor) Run() error {
	if !e.state.TryTransition(StateIdle, StateRunning) {
		return ErrExecutorAlreadyRunning
	}
	defer e.state.Store(StateTerminated)

	for {
		id, _, ok := e.queue.Pop()
		if !ok {
			return nil
		}
		task, ok := e.tasks[id]
		if !ok {
			// Already retired via an earlier spurious wake; ignore.
			continue
		}

		outcome := task.poll()
		logTaskPolled(e.opts.logger, id, outcome.ready)

		if outcome.panicked {
			delete(e.tasks, id)
			logTaskPanicked(e.opts.logger, id, outcome.panicVal)
			return &PanicError{TaskID: id, Value: outcome.panicVal, Stack: outcome.stack}
		}

		if outcome.ready {
			delete(e.tasks, id)
			logTaskRetired(e.opts.logger, id)
			if outcome.err != nil {
				return outcome.err
			}
			continue
		}

		if err := e.handlePending(task); err != nil {
			return err
		}
	}
}

// handlePending re-queues task if its deadline has not yet elapsed, or
// applies its [MissPolicy] if it has.
func (e *Executor) handlePending(task *Task) error {
	now := e.timer.Now()
	if !task.deadline.Elapsed(now) {
		e.queue.Push(task.id, task.deadline.schedulingTick(e.opts.infiniteSentinel))
		return nil
	}

	switch policy := task.policy.(type) {
	case ReturnError:
		delete(e.tasks, task.id)
		logDeadlineMissed(e.opts.logger, task.id, "ReturnError")
		return &MissedDeadlineError{TaskID: task.id, Deadline: task.deadline}
	case Panic:
		logDeadlineMissed(e.opts.logger, task.id, "Panic")
		panic(&MissedDeadlineError{TaskID: task.id, Deadline: task.deadline})
	case ContinueRunning:
		logDeadlineMissed(e.opts.logger, task.id, "ContinueRunning")
		task.deadline = Infinite
		e.queue.Push(task.id, e.opts.infiniteSentinel)
		return nil
	case SilentlyAbort:
		delete(e.tasks, task.id)
		logDeadlineMissed(e.opts.logger, task.id, "SilentlyAbort")
		return nil
	case InsteadApproximate:
		delete(e.tasks, task.id)
		logDeadlineMissed(e.opts.logger, task.id, "InsteadApproximate")
		e.spawn(policy.Factory())
		return nil
	default:
		panic(fmt.Sprintf("taskrt: unknown miss policy %T", task.policy))
	}
}

// SpawnAndRun spawns every spec on a fresh Executor driven by timer and
// runs it to completion. It is the idiomatic replacement for a
// bulk-spawn-then-run macro: most callers with more than one top-level
// task and no need to reuse the Executor want this instead of manually
// wiring New/Spawn/Run.
func SpawnAndRun(timer Timer, specs ...TaskSpec) error {
	e := New(timer)
	for _, spec := range specs {
		e.spawn(spec)
	}
	return e.Run()
}
