package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the metrics shared by all queues of one registry
// (per-queue counters are registered by the queue itself).
type Metrics struct {
	QueuesActive   prometheus.Gauge
	AllocatedSlots prometheus.Gauge
	ErrorsTotal    *prometheus.CounterVec
	TransfersTotal *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		QueuesActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "ringqueue",
				Subsystem: "storage",
				Name:      "queues_active",
				Help:      "Number of queues currently owning storage",
			},
		),

		AllocatedSlots: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "ringqueue",
				Subsystem: "storage",
				Name:      "allocated_slots",
				Help:      "Storage slots currently allocated across all queues",
			},
		),

		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ringqueue",
				Subsystem: "errors",
				Name:      "total",
				Help:      "Total number of queue errors by kind",
			},
			[]string{"queue", "kind"},
		),

		TransfersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ringqueue",
				Subsystem: "queue",
				Name:      "copies_moves_total",
				Help:      "Total number of queue copies and ownership moves",
			},
			[]string{"queue", "operation"},
		),
	}
}

// RecordAllocated tracks a newly allocated storage block of slots elements
func (c *Metrics) RecordAllocated(slots int) {
	c.QueuesActive.Inc()
	c.AllocatedSlots.Add(float64(slots))
}

// RecordReleased tracks a storage block of slots elements being released
func (c *Metrics) RecordReleased(slots int) {
	c.QueuesActive.Dec()
	c.AllocatedSlots.Sub(float64(slots))
}

// RecordError increments error counter
func (c *Metrics) RecordError(queue, kind string) {
	c.ErrorsTotal.WithLabelValues(queue, kind).Inc()
}

// RecordTransfer counts a copy or move ("copy", "move", "swap") involving queue
func (c *Metrics) RecordTransfer(queue, operation string) {
	c.TransfersTotal.WithLabelValues(queue, operation).Inc()
}
