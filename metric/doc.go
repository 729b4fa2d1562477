// Package metric provides Prometheus-based metrics collection and an HTTP
// exposition server for ringqueue instances.
//
// # Architecture
//
// The package has three parts:
//
//  1. Core Metrics: metrics shared by every queue using a registry (Metrics type)
//  2. Registry: duplicate-safe registration of per-queue counters and gauges (MetricsRegistrar interface)
//  3. HTTP Server: metrics endpoint with a health check (Server type)
//
// # Basic Usage
//
//	registry := metric.NewMetricsRegistry()
//	server := metric.NewServer(9090, "/metrics", registry)
//
//	go func() {
//	    if err := server.Start(); err != nil {
//	        logger.Error("metrics server stopped", "error", err)
//	    }
//	}()
//
//	q, err := queue.New[Order](1000, queue.WithMetrics[Order](registry, "orders"))
//
// The server exposes Prometheus-formatted metrics at http://localhost:9090/metrics
// and a health check at http://localhost:9090/health. SetHealthHandler swaps
// the plain "OK" health response for a richer handler such as the one from
// the health package.
//
// # Core Metrics
//
//   - ringqueue_storage_queues_active: queues currently owning storage
//   - ringqueue_storage_allocated_slots: storage slots allocated across queues
//   - ringqueue_errors_total{queue,kind}: overflow, underflow, invalid_size, allocation
//   - ringqueue_queue_copies_moves_total{queue,operation}: copy, move and swap operations
//
// # Per-Queue Metrics
//
// Per-queue counters and gauges are registered under an owner key
// ("<owner>.<metric>"); registering the same key twice returns an Invalid
// classified error instead of panicking, and Unregister frees the key again.
//
// # Thread Safety
//
// MetricsRegistry is safe for concurrent use. Prometheus metric types are
// atomic.
package metric
