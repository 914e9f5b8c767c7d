package taskrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWakeHandle_WakeUsesRealSchedulingKeyNotAConstant(t *testing.T) {
	q := newPriorityQueue()
	w := newWakeHandle(7, At(42), maxTick, q)

	w.Wake()

	id, key, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, TaskID(7), id)
	assert.Equal(t, Tick(42), key)
}

func TestWakeHandle_InfiniteDeadlineUsesSentinel(t *testing.T) {
	q := newPriorityQueue()
	w := newWakeHandle(3, Infinite, Tick(999), q)

	w.Wake()

	_, key, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, Tick(999), key)
}
