// Package health derives health statuses from ring queue statistics and
// aggregates them for probes and dashboards.
//
// # Health States
//
//   - healthy: queue operating normally
//   - degraded: utilization or overflow rate above its degraded threshold
//   - unhealthy: overflow rate above the unhealthy threshold, or the queue
//     no longer owns storage
//
// # Usage
//
//	monitor := health.NewMonitor()
//	monitor.Watch(ordersQueue)
//	monitor.Watch(eventsQueue)
//
//	server := metric.NewServer(9090, "/metrics", registry)
//	server.SetHealthHandler(monitor.Handler("ringqueue"))
//
// Refresh reads queue statistics, so it must not race with the goroutine
// that owns a queue. Statistics counters are atomic, but index state is not.
package health
