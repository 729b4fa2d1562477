// Package ringqueue is a fixed-capacity FIFO ring queue with value-style
// ownership operations and production observability.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│          pkg/queue                  │  RingQueue[T], Queue[T],
//	│  (ring storage, copy/move, config)  │  Drain, Transfer
//	└─────────────────────────────────────┘
//	      ↓ reports to          ↓ fails with
//	┌──────────────────┐  ┌──────────────────┐
//	│     metric       │  │     errors       │  Classified errors:
//	│ (Prometheus,     │  │ (transient,      │  overflow, empty queue,
//	│  HTTP exposure)  │  │  invalid, fatal) │  invalid size, allocation
//	└──────────────────┘  └──────────────────┘
//	      ↑ serves
//	┌──────────────────┐
//	│     health       │  healthy / degraded / unhealthy
//	│ (queue statuses) │  derived from queue statistics
//	└──────────────────┘
//
// # Packages
//
//   - pkg/queue: the ring queue, its options, statistics, metrics and YAML configuration
//   - errors: error classification and the queue error sentinels
//   - metric: Prometheus registry with duplicate-safe registration and a metrics HTTP server
//   - health: queue health derivation, aggregation and a JSON /health handler
//
// # Quick Start
//
//	registry := metric.NewMetricsRegistry()
//
//	q, err := queue.New[*Job](1024,
//		queue.WithName[*Job]("jobs"),
//		queue.WithMetrics[*Job](registry, "jobs"),
//	)
//	if err != nil {
//		return err
//	}
//	defer q.Close()
//
//	if err := q.Enqueue(job); errors.Is(err, cerrors.ErrQueueOverflow) {
//		// queue full, shed or retry later
//	}
//
//	monitor := health.NewMonitor()
//	monitor.Watch(q)
//
//	server := metric.NewServer(9090, "/metrics", registry)
//	server.SetHealthHandler(monitor.Handler("jobs-service"))
//	go server.Start()
//
// # Capacity
//
// A queue created with capacity C holds at most C-1 elements. Capacity must
// lie in [0, 100,000,000]. Storage is allocated once, at construction, and
// never grows.
//
// # Concurrency
//
// Queues are single-owner. Statistics and Prometheus metrics may be read
// from other goroutines. Queue operations and health refreshes must stay on
// the owning goroutine or be serialized by the caller.
package ringqueue
