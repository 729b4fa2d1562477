package queue

import (
	"fmt"

	"github.com/c360/ringqueue/errors"
)

// Clone returns an independent deep copy of q. Only resident elements are
// copied and each keeps its storage index. The copy shares no storage with q,
// inherits its logger and memory limit, and is named "<name>-copy". Metrics
// registration is not inherited.
func (q *RingQueue[T]) Clone() (*RingQueue[T], error) {
	r, err := q.clone(q.memoryLimit)
	if err != nil {
		q.recordError("allocation")
		return nil, errors.WrapFatal(err, component, "Clone",
			fmt.Sprintf("copy %d slots", q.slots()))
	}

	c := &RingQueue[T]{
		ring:        r,
		name:        q.name + "-copy",
		logger:      q.logger,
		memoryLimit: q.memoryLimit,
		slotBytes:   q.slotBytes,
		stats:       NewStatistics(),
	}
	c.trackStorage(0, c.slots())
	c.observeSize()

	q.Stats().Copy()
	if q.core != nil {
		q.core.RecordTransfer(q.name, "copy")
	}

	return c, nil
}

// Take moves the storage of q into a new queue in constant time. q is left
// released: capacity 0, empty and full. The new queue keeps q's name but not
// its metrics registration.
func (q *RingQueue[T]) Take() *RingQueue[T] {
	moved := &RingQueue[T]{
		ring:        q.ring,
		name:        q.name,
		logger:      q.logger,
		memoryLimit: q.memoryLimit,
		slotBytes:   q.slotBytes,
		stats:       NewStatistics(),
	}
	moved.trackStorage(0, moved.slots())
	moved.observeSize()

	q.neuter("take")

	return moved
}

// CopyFrom replaces the contents of q with a deep copy of src. The copy is
// built before q is touched, so on failure q is unchanged. Copying q onto
// itself is a no-op.
func (q *RingQueue[T]) CopyFrom(src *RingQueue[T]) error {
	if src == nil {
		return errors.WrapInvalid(errors.ErrInvalidData, component, "CopyFrom", "nil source")
	}
	if q == src {
		return nil
	}

	tmp, err := src.clone(q.memoryLimit)
	if err != nil {
		q.recordError("allocation")
		return errors.WrapFatal(err, component, "CopyFrom",
			fmt.Sprintf("copy %d slots from %s", src.slots(), src.name))
	}

	prev := q.slots()
	q.ring = tmp
	q.trackStorage(prev, q.slots())
	q.observeSize()

	src.Stats().Copy()
	if q.core != nil {
		q.core.RecordTransfer(q.name, "copy")
	}

	return nil
}

// MoveFrom releases the storage of q and takes over the storage of src,
// leaving src released. Moving q onto itself is a no-op.
func (q *RingQueue[T]) MoveFrom(src *RingQueue[T]) {
	if src == nil || q == src {
		return
	}

	prev := q.slots()
	q.ring = src.ring
	q.trackStorage(prev, q.slots())
	q.observeSize()
	q.Stats().Move()
	if q.core != nil {
		q.core.RecordTransfer(q.name, "move")
	}

	src.neuter("move")

	q.logDebug("Storage moved in", "from", src.name, "capacity", q.capacity)
}

// Swap exchanges the storage and indices of q and other in constant time
// without allocating. Names, loggers, statistics and metrics stay with their
// instance.
func (q *RingQueue[T]) Swap(other *RingQueue[T]) {
	if q == nil || other == nil || q == other {
		return
	}

	qSlots, otherSlots := q.slots(), other.slots()
	q.ring, other.ring = other.ring, q.ring

	q.trackStorage(qSlots, otherSlots)
	other.trackStorage(otherSlots, qSlots)
	q.observeSize()
	other.observeSize()

	if q.core != nil {
		q.core.RecordTransfer(q.name, "swap")
	}
	if other.core != nil {
		other.core.RecordTransfer(other.name, "swap")
	}
}

// Swap exchanges the storage of a and b. See RingQueue.Swap.
func Swap[T any](a, b *RingQueue[T]) {
	a.Swap(b)
}

// Close releases the storage and unregisters metrics. A closed queue behaves
// like one whose storage was moved out. Close is idempotent.
func (q *RingQueue[T]) Close() error {
	released := q.slots()

	q.trackStorage(released, 0)
	q.ring = ring[T]{}
	q.observeSize()

	if q.metrics != nil {
		q.metrics.unregister()
		q.metrics = nil
		q.core = nil
	}

	if released > 0 {
		q.logDebug("Ring queue closed", "released_slots", released)
	}

	return nil
}

// neuter drops the storage of q after it was handed to another queue.
func (q *RingQueue[T]) neuter(operation string) {
	q.trackStorage(q.slots(), 0)
	q.ring = ring[T]{}
	q.observeSize()
	q.Stats().Move()
	if q.core != nil {
		q.core.RecordTransfer(q.name, operation)
	}
}
