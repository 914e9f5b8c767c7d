package taskrt

import (
	"container/heap"
	"sync"
)

// priorityQueue is a concurrency-safe min-priority queue of [TaskID]
// ordered by scheduling tick, with insertion order breaking ties.
//
// Wake handles can legitimately be invoked from goroutines other than
// the one draining the queue, so priorityQueue guards its heap with a
// real mutex rather than relying on single-writer discipline.
type priorityQueue struct {
	mu   sync.Mutex
	heap pqHeap
	seq  uint64
}

type pqItem struct {
	task TaskID
	key  Tick
	seq  uint64
}

type pqHeap []pqItem

func (h pqHeap) Len() int { return len(h) }

func (h pqHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}

func (h pqHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pqHeap) Push(x any) {
	*h = append(*h, x.(pqItem))
}

func (h *pqHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func newPriorityQueue() *priorityQueue {
	return &priorityQueue{}
}

// Push inserts task at the given scheduling key. Tasks pushed with equal
// keys pop in the order they were pushed.
func (q *priorityQueue) Push(task TaskID, key Tick) {
	q.mu.Lock()
	defer q.mu.Unlock()
	heap.Push(&q.heap, pqItem{task: task, key: key, seq: q.seq})
	q.seq++
}

// Pop removes and returns the lowest-key task, or (0, 0, false) if empty.
func (q *priorityQueue) Pop() (TaskID, Tick, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.heap) == 0 {
		return 0, 0, false
	}
	item := heap.Pop(&q.heap).(pqItem)
	return item.task, item.key, true
}

// Len reports the number of queued tasks.
func (q *priorityQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.heap)
}

// IsEmpty reports whether the queue currently holds no tasks.
func (q *priorityQueue) IsEmpty() bool {
	return q.Len() == 0
}
