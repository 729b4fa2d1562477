package queue

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/c360/ringqueue/errors"
	"github.com/c360/ringqueue/metric"
)

const (
	// MaxCapacity is the largest capacity New accepts.
	MaxCapacity = 100_000_000

	// DefaultCapacity is the capacity used by NewDefault.
	DefaultCapacity = 100
)

const component = "RingQueue"

// RingQueue is a fixed-capacity FIFO queue over one pre-allocated block of
// capacity+1 slots. A queue of capacity C holds at most C-1 elements.
//
// RingQueue is not safe for concurrent use. The zero value is a released
// queue: always empty, always full.
type RingQueue[T any] struct {
	ring[T]

	name        string
	logger      *slog.Logger
	memoryLimit int64
	slotBytes   int64

	stats   *Statistics     // ALWAYS initialized for observability
	metrics *queueMetrics   // Optional per-queue Prometheus metrics
	core    *metric.Metrics // Shared registry metrics, set with metrics
}

// New creates a queue with room for capacity-1 elements.
// Capacities outside [0, MaxCapacity] fail with ErrInvalidSize; a storage
// block that cannot be allocated fails with ErrAllocationFailure.
func New[T any](capacity int, options ...Option[T]) (*RingQueue[T], error) {
	opts := applyOptions(options...)

	name := opts.name
	if name == "" {
		name = opts.metricsPrefix
	}
	if name == "" {
		name = "ringqueue-" + uuid.New().String()[:8]
	}

	recordError := func(kind string) {
		if opts.metricsReg != nil {
			opts.metricsReg.CoreMetrics().RecordError(name, kind)
		}
	}

	if capacity < 0 || capacity > MaxCapacity {
		recordError("invalid_size")
		return nil, errors.WrapInvalid(errors.ErrInvalidSize, component, "New",
			fmt.Sprintf("capacity %d outside [0, %d]", capacity, MaxCapacity))
	}

	r, err := newRing[T](capacity, opts.memoryLimit)
	if err != nil {
		recordError("allocation")
		return nil, errors.WrapFatal(err, component, "New",
			fmt.Sprintf("allocate %d slots", capacity+1))
	}

	q := &RingQueue[T]{
		ring:        r,
		name:        name,
		logger:      opts.logger,
		memoryLimit: opts.memoryLimit,
		slotBytes:   slotSize[T](),
		stats:       NewStatistics(),
	}

	if opts.metricsReg != nil {
		metrics, err := newQueueMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.WrapTransient(err, component, "New", "metrics registration")
		}
		q.metrics = metrics
		q.core = opts.metricsReg.CoreMetrics()
		q.metrics.updateSize(0, q.usable())
	}

	q.trackStorage(0, q.slots())

	q.logger.Debug("Ring queue created",
		"queue", q.name,
		"capacity", capacity,
		"metrics", q.metrics != nil)

	return q, nil
}

// NewDefault creates a queue of DefaultCapacity.
func NewDefault[T any](options ...Option[T]) (*RingQueue[T], error) {
	return New[T](DefaultCapacity, options...)
}

// Enqueue appends item at the tail. It fails with ErrQueueOverflow when the
// queue is full and leaves the queue unchanged.
func (q *RingQueue[T]) Enqueue(item T) error {
	if !q.push(item) {
		q.Stats().Overflow()
		if q.metrics != nil {
			q.metrics.recordOverflow()
		}
		q.recordError("overflow")
		q.logDebug("Enqueue rejected, queue full", "capacity", q.capacity)
		return errors.WrapTransient(errors.ErrQueueOverflow, component, "Enqueue", "enqueue")
	}

	// ALWAYS track in stats
	q.Stats().Enqueue()
	q.Stats().UpdateSize(int64(q.count))

	// ALSO track in metrics if enabled
	if q.metrics != nil {
		q.metrics.recordEnqueue(q.count, q.usable())
	}

	return nil
}

// Dequeue removes and returns the oldest element. It fails with
// ErrEmptyQueue when the queue is empty and leaves the queue unchanged.
func (q *RingQueue[T]) Dequeue() (T, error) {
	item, ok := q.pop()
	if !ok {
		q.underflow("Dequeue")
		return item, errors.WrapTransient(errors.ErrEmptyQueue, component, "Dequeue", "dequeue")
	}

	q.Stats().Dequeue()
	q.Stats().UpdateSize(int64(q.count))

	if q.metrics != nil {
		q.metrics.recordDequeue(q.count, q.usable())
	}

	return item, nil
}

// Peek returns the oldest element without removing it.
func (q *RingQueue[T]) Peek() (T, error) {
	item, ok := q.peek()
	if !ok {
		q.underflow("Peek")
		return item, errors.WrapTransient(errors.ErrEmptyQueue, component, "Peek", "peek")
	}

	q.Stats().Peek()
	if q.metrics != nil {
		q.metrics.recordPeek()
	}

	return item, nil
}

func (q *RingQueue[T]) underflow(method string) {
	q.Stats().Underflow()
	if q.metrics != nil {
		q.metrics.recordUnderflow()
	}
	q.recordError("underflow")
	q.logDebug(method + " rejected, queue empty")
}

// IsEmpty reports whether no element is resident.
func (q *RingQueue[T]) IsEmpty() bool {
	return q.isEmpty()
}

// IsFull reports whether the next Enqueue would overflow.
func (q *RingQueue[T]) IsFull() bool {
	return q.isFull()
}

// Len returns the number of resident elements.
func (q *RingQueue[T]) Len() int {
	return q.count
}

// Capacity returns the capacity the queue was created with, or 0 once its
// storage has been moved out or released.
func (q *RingQueue[T]) Capacity() int {
	return q.capacity
}

// Usable returns how many elements fit at once: Capacity()-1, floored at 0.
func (q *RingQueue[T]) Usable() int {
	return q.usable()
}

// Head returns the storage index of the oldest element, 0 when empty.
func (q *RingQueue[T]) Head() int {
	return q.head
}

// Tail returns the storage index of the newest element, 0 when empty.
func (q *RingQueue[T]) Tail() int {
	return q.tail
}

// Items returns the resident elements in FIFO order.
func (q *RingQueue[T]) Items() []T {
	items := make([]T, 0, q.count)
	q.each(func(item T) {
		items = append(items, item)
	})
	return items
}

// Clear removes all resident elements.
func (q *RingQueue[T]) Clear() {
	q.clear()
	q.Stats().UpdateSize(0)
	if q.metrics != nil {
		q.metrics.updateSize(0, q.usable())
	}
}

// Name returns the queue name used in logs and metrics.
func (q *RingQueue[T]) Name() string {
	return q.name
}

// Stats returns queue statistics (always available for observability).
func (q *RingQueue[T]) Stats() *Statistics {
	if q.stats == nil {
		q.stats = NewStatistics()
	}
	return q.stats
}

func (q *RingQueue[T]) recordError(kind string) {
	if q.core != nil {
		q.core.RecordError(q.name, kind)
	}
}

func (q *RingQueue[T]) logDebug(msg string, args ...any) {
	if q.logger == nil {
		return
	}
	q.logger.Debug(msg, append([]any{"queue", q.name, "size", q.count}, args...)...)
}

// trackStorage moves the storage accounting of q from a block of prev slots
// to a block of next slots. Zero means no block.
func (q *RingQueue[T]) trackStorage(prev, next int) {
	q.Stats().UpdateMemoryUsage(int64(next) * q.slotBytes)

	if q.core == nil {
		return
	}
	if prev > 0 {
		q.core.RecordReleased(prev)
	}
	if next > 0 {
		q.core.RecordAllocated(next)
	}
}

// observeSize publishes the resident count after storage changed hands.
func (q *RingQueue[T]) observeSize() {
	q.Stats().UpdateSize(int64(q.count))
	if q.metrics != nil {
		q.metrics.updateSize(q.count, q.usable())
	}
}
