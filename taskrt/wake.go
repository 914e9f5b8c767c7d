package taskrt

// WakeHandle lets code outside the executor's own polling loop ask for
// a suspended task to be polled again. [WakeHandle.Wake] always
// re-pushes the task at its own scheduling key, through [priorityQueue],
// which is safe to call from any goroutine.
type WakeHandle struct {
	task     TaskID
	deadline Deadline
	sentinel Tick
	queue    *priorityQueue
}

func newWakeHandle(task TaskID, deadline Deadline, sentinel Tick, queue *priorityQueue) *WakeHandle {
	return &WakeHandle{task: task, deadline: deadline, sentinel: sentinel, queue: queue}
}

// Wake re-enqueues the task for polling at its own scheduling key. It
// is safe to call from any goroutine, including a foreign callback
// invoked after the task has already suspended.
func (w *WakeHandle) Wake() {
	w.queue.Push(w.task, w.deadline.schedulingTick(w.sentinel))
}
