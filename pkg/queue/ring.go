package queue

import (
	"fmt"
	"unsafe"

	"github.com/c360/ringqueue/errors"
)

// ring is the storage block and index state of a RingQueue. It holds
// capacity+1 slots of which at most capacity-1 are resident at once.
// Empty rings always have head == tail == 0.
type ring[T any] struct {
	items    []T
	head     int // oldest resident element
	tail     int // most recently enqueued element
	count    int
	capacity int
}

// newRing allocates a ring for capacity elements. memoryLimit bounds the
// size of the block in bytes; zero leaves only the runtime limit.
func newRing[T any](capacity int, memoryLimit int64) (r ring[T], err error) {
	slots := capacity + 1

	if size := slotSize[T](); memoryLimit > 0 && size > 0 && int64(slots) > memoryLimit/size {
		return ring[T]{}, fmt.Errorf("%w: %d slots of %d bytes exceed memory limit of %d bytes",
			errors.ErrAllocationFailure, slots, size, memoryLimit)
	}

	defer func() {
		if rec := recover(); rec != nil {
			r = ring[T]{}
			err = fmt.Errorf("%w: %v", errors.ErrAllocationFailure, rec)
		}
	}()

	return ring[T]{
		items:    make([]T, slots),
		capacity: capacity,
	}, nil
}

// slotSize returns the in-memory size of one element slot.
func slotSize[T any]() int64 {
	var zero T
	return int64(unsafe.Sizeof(zero))
}

func (r *ring[T]) slots() int {
	return len(r.items)
}

// usable is the number of elements the ring can hold at once.
func (r *ring[T]) usable() int {
	return max(r.capacity-1, 0)
}

func (r *ring[T]) isEmpty() bool {
	return r.count == 0
}

func (r *ring[T]) isFull() bool {
	return r.count >= r.usable()
}

func (r *ring[T]) push(item T) bool {
	if r.isFull() {
		return false
	}

	next := (r.tail + 1) % len(r.items)
	if r.count == 0 {
		r.head = next
	}
	r.items[next] = item
	r.tail = next
	r.count++

	return true
}

func (r *ring[T]) pop() (T, bool) {
	var zero T

	if r.count == 0 {
		return zero, false
	}

	item := r.items[r.head]
	r.items[r.head] = zero // Clear for GC
	r.count--

	if r.count == 0 {
		r.head, r.tail = 0, 0
	} else {
		r.head = (r.head + 1) % len(r.items)
	}

	return item, true
}

func (r *ring[T]) peek() (T, bool) {
	if r.count == 0 {
		var zero T
		return zero, false
	}
	return r.items[r.head], true
}

// each calls fn for every resident element from head to tail.
func (r *ring[T]) each(fn func(T)) {
	for i, idx := 0, r.head; i < r.count; i, idx = i+1, (idx+1)%len(r.items) {
		fn(r.items[idx])
	}
}

// clone copies the resident elements into a newly allocated block of the same
// size, keeping every element at the same index. A released ring clones to a
// released ring without allocating.
func (r *ring[T]) clone(memoryLimit int64) (ring[T], error) {
	if r.items == nil {
		return ring[T]{}, nil
	}

	c, err := newRing[T](r.capacity, memoryLimit)
	if err != nil {
		return ring[T]{}, err
	}

	if r.count == 0 {
		return c, nil
	}

	for i, idx := 0, r.head; i < r.count; i, idx = i+1, (idx+1)%len(r.items) {
		c.items[idx] = r.items[idx]
	}
	c.head, c.tail, c.count = r.head, r.tail, r.count

	return c, nil
}

func (r *ring[T]) clear() {
	clear(r.items)
	r.head, r.tail, r.count = 0, 0, 0
}
