package taskrt

import (
	"runtime/debug"
	"sync/atomic"
)

// TaskID identifies a spawned task for the lifetime of the [Executor]
// that spawned it. IDs are never reused.
type TaskID uint64

var nextTaskID atomic.Uint64

func allocateTaskID() TaskID {
	return TaskID(nextTaskID.Add(1))
}

// Body is the function a task runs. It receives a [Yielder] through
// which it cooperatively suspends, and returns an error that becomes
// the task's outcome once it retires.
type Body func(y Yielder) error

// Yielder is the set of suspension points available to a running task
// body. Calling any of these methods may block the calling goroutine
// until the executor resumes the task on a later poll.
type Yielder interface {
	// Noop suspends exactly once, then resumes unconditionally. It is
	// useful for tests and for voluntarily yielding a scheduling slot.
	Noop()
	// SleepUntil suspends until the executor's timer reports a tick
	// strictly past d. If d has already passed, it returns immediately.
	SleepUntil(d Deadline)
	// Sleep is shorthand for SleepUntil(At(y.Now() + ticks)).
	Sleep(ticks uint64)
	// Now returns the executor's current tick.
	Now() Tick
	// Wake returns a handle that re-enqueues this task for polling when
	// invoked. Built-in suspension points do not need it; it exists for
	// task bodies that suspend on an external event (e.g. a callback
	// fired from another goroutine) and need to ask the executor to
	// poll them again once that event occurs.
	Wake() *WakeHandle
}

// MissPolicy decides what the executor does with a task that is still
// pending once its deadline has elapsed.
type MissPolicy interface {
	missPolicy()
}

// ReturnError causes [Executor.Run] to return a [MissedDeadlineError]
// immediately.
type ReturnError struct{}

func (ReturnError) missPolicy() {}

// Panic causes the executor to panic with a [MissedDeadlineError].
type Panic struct{}

func (Panic) missPolicy() {}

// ContinueRunning re-schedules the task at [Infinite] priority rather
// than failing it: the deadline is considered advisory once missed.
type ContinueRunning struct{}

func (ContinueRunning) missPolicy() {}

// SilentlyAbort drops the task from the table without error.
type SilentlyAbort struct{}

func (SilentlyAbort) missPolicy() {}

// InsteadApproximate drops the task and spawns a replacement produced by
// Factory, intended to return a cheaper approximate result in place of
// the work that missed its deadline.
type InsteadApproximate struct {
	Factory func() TaskSpec
}

func (InsteadApproximate) missPolicy() {}

// TaskSpec bundles the arguments to [Executor.Spawn] for callers that
// want to pass a task around as a value, e.g. from an
// [InsteadApproximate] factory or to [SpawnAndRun].
type TaskSpec struct {
	DeadlineOffset uint64
	Policy         MissPolicy
	Body           Body
}

type pollOutcome struct {
	ready    bool
	err      error
	panicked bool
	panicVal any
	stack    []byte
}

// Task is a single unit of scheduled work. It is created by
// [Executor.Spawn] and is not meant to be constructed directly.
type Task struct {
	id       TaskID
	deadline Deadline
	policy   MissPolicy
	body     Body

	timer Timer

	started  bool
	resumeCh chan struct{}
	resultCh chan pollOutcome

	wakeHandle *WakeHandle
}

func newTask(id TaskID, deadline Deadline, policy MissPolicy, body Body, timer Timer) *Task {
	return &Task{
		id:       id,
		deadline: deadline,
		policy:   policy,
		body:     body,
		timer:    timer,
		resumeCh: make(chan struct{}),
		resultCh: make(chan pollOutcome),
	}
}

// poll drives the task one step: starting it on the first call, or
// resuming it from its last suspension point on every subsequent call.
// It blocks until the task either suspends again or retires.
func (t *Task) poll() pollOutcome {
	if !t.started {
		t.started = true
		go t.run()
	} else {
		t.resumeCh <- struct{}{}
	}
	return <-t.resultCh
}

func (t *Task) run() {
	defer func() {
		if r := recover(); r != nil {
			t.resultCh <- pollOutcome{ready: true, panicked: true, panicVal: r, stack: debug.Stack()}
		}
	}()
	err := t.body(taskYielder{task: t})
	t.resultCh <- pollOutcome{ready: true, err: err}
}

// suspend hands control back to the executor for exactly one poll
// cycle, then blocks until resumed.
func (t *Task) suspend() {
	t.resultCh <- pollOutcome{ready: false}
	<-t.resumeCh
}

// taskYielder is the concrete [Yielder] handed to a running task body.
type taskYielder struct {
	task *Task
}

func (y taskYielder) Noop() {
	y.task.suspend()
}

func (y taskYielder) SleepUntil(d Deadline) {
	for !d.Elapsed(y.task.timer.Now()) {
		y.task.suspend()
	}
}

func (y taskYielder) Sleep(ticks uint64) {
	y.SleepUntil(At(y.task.timer.Now()).Add(ticks))
}

func (y taskYielder) Now() Tick {
	return y.task.timer.Now()
}

func (y taskYielder) Wake() *WakeHandle {
	return y.task.wakeHandle
}
