package taskrt

import "sync"

// BoundedAllocator tracks a logical budget of units (bytes, buffer
// slots, whatever the caller's domain counts) against a hard cap. It
// does not allocate memory itself; Go's runtime already owns that.
type BoundedAllocator struct {
	mu        sync.Mutex
	cap       uint64
	allocated uint64
}

// NewBoundedAllocator returns an allocator with the given cap. A cap of
// 0 means unbounded: [BoundedAllocator.Allocate] and
// [BoundedAllocator.TryAllocate] always succeed.
func NewBoundedAllocator(cap uint64) *BoundedAllocator {
	return &BoundedAllocator{cap: cap}
}

// Allocate reserves size units, succeeding only if the budget remains
// strictly under the cap afterward. It returns [ErrAllocationExceedsCap]
// if size alone can never fit under the cap, or a wrapped error if the
// budget is merely currently exhausted.
func (a *BoundedAllocator) Allocate(size uint64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cap != 0 && size >= a.cap {
		return ErrAllocationExceedsCap
	}
	if a.cap != 0 && a.allocated+size >= a.cap {
		return WrapError("allocate", ErrAllocationExceedsCap)
	}
	a.allocated += size
	return nil
}

// AllocResult is the outcome of [BoundedAllocator.TryAllocate]: either
// the reservation succeeded (Ready), or there is not currently enough
// headroom and the caller should suspend and retry later (Pending).
type AllocResult struct {
	Ready bool
	Err   error
}

// TryAllocate is the back-pressure-friendly counterpart to
// [BoundedAllocator.Allocate]: instead of erroring when the budget is
// merely full, it reports Pending so a task can yield and retry. It
// still returns an error (Ready with Err set) if size can never fit
// under the cap at all.
func (a *BoundedAllocator) TryAllocate(size uint64) AllocResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cap != 0 && size >= a.cap {
		return AllocResult{Ready: true, Err: ErrAllocationExceedsCap}
	}
	if a.cap != 0 && a.allocated+size >= a.cap {
		return AllocResult{Ready: false}
	}
	a.allocated += size
	return AllocResult{Ready: true}
}

// Free releases size units back to the budget.
func (a *BoundedAllocator) Free(size uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if size > a.allocated {
		a.allocated = 0
		return
	}
	a.allocated -= size
}

// Allocated returns the number of units currently reserved.
func (a *BoundedAllocator) Allocated() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocated
}

// GrowableBuffer is a slice-backed buffer whose growth is metered
// against a [BoundedAllocator], so unbounded appends in a cooperative
// task cannot silently blow a dependability-critical memory budget.
// Each element counts as one unit against the allocator.
type GrowableBuffer[T any] struct {
	alloc *BoundedAllocator
	items []T
}

// NewGrowableBuffer returns an empty buffer metered against alloc.
func NewGrowableBuffer[T any](alloc *BoundedAllocator) *GrowableBuffer[T] {
	return &GrowableBuffer[T]{alloc: alloc}
}

// Push reserves one unit from the buffer's allocator and appends v,
// returning the allocator's error unchanged if the reservation failed.
func (b *GrowableBuffer[T]) Push(v T) error {
	if err := b.alloc.Allocate(1); err != nil {
		return err
	}
	b.items = append(b.items, v)
	return nil
}

// TryPush is the back-pressure counterpart of [GrowableBuffer.Push].
func (b *GrowableBuffer[T]) TryPush(v T) AllocResult {
	res := b.alloc.TryAllocate(1)
	if res.Ready && res.Err == nil {
		b.items = append(b.items, v)
	}
	return res
}

// Len returns the number of elements currently held.
func (b *GrowableBuffer[T]) Len() int {
	return len(b.items)
}

// Get returns the element at idx.
func (b *GrowableBuffer[T]) Get(idx int) T {
	return b.items[idx]
}

// Slice returns the buffer's contents. The returned slice aliases the
// buffer's backing array and must not be retained across a Push.
func (b *GrowableBuffer[T]) Slice() []T {
	return b.items
}
