// Package queue provides a fixed-capacity FIFO ring queue with value-style
// copy and move operations, always-on statistics and optional Prometheus
// metrics.
//
// # Overview
//
// RingQueue stores its elements in one block of capacity+1 slots that is
// allocated up front and never resized. A queue created with capacity C holds
// at most C-1 elements; Enqueue on a full queue fails with ErrQueueOverflow
// and Dequeue on an empty queue fails with ErrEmptyQueue. Neither failure
// changes the queue.
//
// # Quick Start
//
//	q, err := queue.New[int](3)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer q.Close()
//
//	_ = q.Enqueue(1)
//	_ = q.Enqueue(2)
//	err = q.Enqueue(3) // errors.Is(err, errors.ErrQueueOverflow)
//
//	v, _ := q.Dequeue() // 1
//
// With a name, logger, memory limit and metrics:
//
//	q, err := queue.New[*Order](1024,
//		queue.WithName[*Order]("orders"),
//		queue.WithLogger[*Order](logger),
//		queue.WithMemoryLimit[*Order](1<<20),
//		queue.WithMetrics[*Order](registry, "orders"),
//	)
//
// From a YAML file:
//
//	cfg, err := queue.LoadConfig("queue.yaml")
//	if err != nil {
//		return err
//	}
//	q, err := queue.NewFromConfig[*Order](cfg, registry, logger)
//
// # Index Layout
//
// Head is the slot of the oldest element and Tail the slot of the newest.
// Both are 0 while the queue is empty. The first element after an empty
// state lands in slot 1, and both indices advance modulo capacity+1:
//
//	capacity 3, slots 0..3
//	Enqueue(1)  head=1 tail=1
//	Enqueue(2)  head=1 tail=2   full
//	Dequeue()   head=2 tail=2   -> 1
//	Enqueue(3)  head=2 tail=3
//	Dequeue()   head=3 tail=3   -> 2
//	Dequeue()   head=0 tail=0   -> 3, empty
//
// Capacities 0 and 1 leave no usable slot, so such a queue is both empty
// and full. For any larger capacity the two states exclude each other.
//
// # Ownership
//
// A RingQueue owns its storage exclusively. The operations below mirror
// copy and move semantics:
//
//   - Clone: deep copy into a new queue; only resident elements are copied
//   - CopyFrom: replace contents with a deep copy; q is unchanged on failure
//   - Take: hand the storage to a new queue in O(1)
//   - MoveFrom: drop own storage and take over another queue's
//   - Swap: exchange storage with another queue in O(1)
//   - Close: release storage and unregister metrics
//
// A queue whose storage was taken, moved out or closed reports capacity 0
// and behaves as always empty and always full. So does the zero value.
//
// # Observability
//
// Statistics are always collected with atomic counters and can be read from
// other goroutines while the owner mutates the queue. WithMetrics registers
// per-queue counters and gauges in a metric.MetricsRegistry under the
// "ringqueue_queue_" prefix, labelled with queue=<prefix>. Storage slots,
// copies, moves and errors are also reported to the registry's shared
// metrics.
//
// # Thread Safety
//
// RingQueue is not safe for concurrent use. Callers that share a queue
// between goroutines must serialize access themselves.
//
// # Errors
//
// All errors are classified errors from the errors package and match their
// sentinel with errors.Is:
//
//   - ErrInvalidSize: capacity outside [0, MaxCapacity] (invalid)
//   - ErrAllocationFailure: storage could not be allocated (fatal)
//   - ErrQueueOverflow: enqueue on a full queue (transient)
//   - ErrEmptyQueue: dequeue or peek on an empty queue (transient)
//
// ErrInvalidSize, ErrAllocationFailure and ErrEmptyQueue also match
// ErrQueueSize.
package queue
