package taskrt

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue_PopsLowestKeyFirst(t *testing.T) {
	q := newPriorityQueue()
	q.Push(1, 9)
	q.Push(2, 5)
	q.Push(3, 7)

	id, key, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, TaskID(2), id)
	assert.Equal(t, Tick(5), key)

	id, key, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, TaskID(3), id)
	assert.Equal(t, Tick(7), key)
}

func TestPriorityQueue_TiesBreakFIFO(t *testing.T) {
	q := newPriorityQueue()
	q.Push(1, 7)
	q.Push(2, 7)
	q.Push(3, 7)

	var order []TaskID
	for {
		id, _, ok := q.Pop()
		if !ok {
			break
		}
		order = append(order, id)
	}
	assert.Equal(t, []TaskID{1, 2, 3}, order)
}

func TestPriorityQueue_PopEmptyReturnsFalse(t *testing.T) {
	q := newPriorityQueue()
	_, _, ok := q.Pop()
	assert.False(t, ok)
}

func TestPriorityQueue_ConcurrentPushIsSafe(t *testing.T) {
	q := newPriorityQueue()
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q.Push(TaskID(i), Tick(i%10))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 200, q.Len())
}
