package taskrt

import (
	"bytes"
	"testing"

	"github.com/joeycumines/stumpy"
	"github.com/stretchr/testify/assert"
)

func TestLogging_EmitsRealStumpyOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(stumpy.L.WithStumpy(
		stumpy.WithTimeField(``), // disable time field for a stable assertion
		stumpy.WithWriter(&buf),
	))

	logTaskSpawned(logger, TaskID(1), At(5))
	logTaskPolled(logger, TaskID(1), false)
	logDeadlineMissed(logger, TaskID(1), "ReturnError")
	logTaskPanicked(logger, TaskID(1), "boom")
	logTaskRetired(logger, TaskID(1))

	out := buf.String()
	assert.Contains(t, out, `"task_id":"1"`)
	assert.Contains(t, out, `"deadline":"5"`)
	assert.Contains(t, out, `task spawned`)
	assert.Contains(t, out, `"ready":false`)
	assert.Contains(t, out, `task polled`)
	assert.Contains(t, out, `"policy":"ReturnError"`)
	assert.Contains(t, out, `task missed its deadline`)
	assert.Contains(t, out, `"panic":"boom"`)
	assert.Contains(t, out, `task panicked`)
	assert.Contains(t, out, `task retired`)
}

func TestLogging_NilLoggerIsANoop(t *testing.T) {
	assert.NotPanics(t, func() {
		logTaskSpawned(nil, TaskID(1), At(5))
		logTaskPolled(nil, TaskID(1), true)
		logDeadlineMissed(nil, TaskID(1), "Panic")
		logTaskPanicked(nil, TaskID(1), "boom")
		logTaskRetired(nil, TaskID(1))
	})
}
