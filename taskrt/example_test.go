package taskrt_test

import (
	"errors"
	"fmt"

	taskrt "github.com/dependability-labs/taskrt/taskrt"
)

// Example_basicUsage demonstrates spawning and running a pair of
// cooperative tasks that interleave on a shared deadline.
func Example_basicUsage() {
	timer := taskrt.NewManualTimer()

	err := taskrt.SpawnAndRun(timer,
		taskrt.TaskSpec{
			DeadlineOffset: 5,
			Policy:         taskrt.ReturnError{},
			Body: func(y taskrt.Yielder) error {
				fmt.Println("first task running")
				y.Noop()
				fmt.Println("first task resumed")
				return nil
			},
		},
		taskrt.TaskSpec{
			DeadlineOffset: 5,
			Policy:         taskrt.ReturnError{},
			Body: func(y taskrt.Yielder) error {
				fmt.Println("second task running")
				return nil
			},
		},
	)
	if err != nil {
		fmt.Println("error:", err)
	}
	fmt.Println("done")

	// Output:
	// first task running
	// second task running
	// first task resumed
	// done
}

// Example_deadlineMiss demonstrates the ReturnError miss policy: once a
// task's deadline elapses while it is still suspended, Run reports it
// instead of letting the task continue.
func Example_deadlineMiss() {
	timer := taskrt.NewManualTimer()
	exec := taskrt.New(timer)

	exec.Spawn(5, taskrt.ReturnError{}, func(y taskrt.Yielder) error {
		timer.Advance(10) // simulate the deadline passing while suspended
		y.Noop()
		return nil
	})

	var missed *taskrt.MissedDeadlineError
	if err := exec.Run(); errors.As(err, &missed) {
		fmt.Println("task missed its deadline")
	}

	// Output:
	// task missed its deadline
}

// Example_partialResult demonstrates publishing best-effort partial
// results through a PartialSink, which survives a task being dropped
// by SilentlyAbort once it misses its deadline.
func Example_partialResult() {
	timer := taskrt.NewManualTimer()
	exec := taskrt.New(timer)

	sink := taskrt.SpawnPartial[int](exec, 5, func(y taskrt.Yielder, sink *taskrt.PartialSink[int]) {
		for i := 1; i <= 3; i++ {
			sink.Set(i)
			if i == 2 {
				timer.Advance(10) // push the clock past the deadline
			}
			y.Noop()
		}
	})

	exec.Run()

	v, ok := sink.Get()
	fmt.Println(v, ok)

	// Output:
	// 2 true
}

// Example_retry demonstrates the Retry helper, which yields a
// scheduling slot between failed attempts so other tasks can make
// progress while a transient failure is retried.
func Example_retry() {
	timer := taskrt.NewManualTimer()
	exec := taskrt.New(timer)

	exec.Spawn(100, taskrt.ReturnError{}, func(y taskrt.Yielder) error {
		attempts := 0
		v, err := taskrt.Retry(y, 3, func() (int, error) {
			attempts++
			if attempts < 3 {
				return 0, errors.New("transient failure")
			}
			return attempts, nil
		})
		if err != nil {
			return err
		}
		fmt.Println("succeeded on attempt", v)
		return nil
	})

	if err := exec.Run(); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// succeeded on attempt 3
}
