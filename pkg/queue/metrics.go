package queue

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/ringqueue/metric"
)

// queueMetrics holds the Prometheus metrics of one queue.
type queueMetrics struct {
	registry *metric.MetricsRegistry
	prefix   string
	names    []string // registered metric names, for unregister

	enqueues   prometheus.Counter
	dequeues   prometheus.Counter
	peeks      prometheus.Counter
	overflows  prometheus.Counter
	underflows prometheus.Counter

	size        prometheus.Gauge
	utilization prometheus.Gauge
}

// newQueueMetrics creates and registers queue metrics with the provided registry.
// On failure every metric registered so far is unregistered again.
func newQueueMetrics(registry *metric.MetricsRegistry, prefix string) (*queueMetrics, error) {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringqueue",
			Subsystem:   "queue",
			Name:        name,
			ConstLabels: prometheus.Labels{"queue": prefix},
			Help:        help,
		})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringqueue",
			Subsystem:   "queue",
			Name:        name,
			ConstLabels: prometheus.Labels{"queue": prefix},
			Help:        help,
		})
	}

	m := &queueMetrics{
		registry:    registry,
		prefix:      prefix,
		enqueues:    counter("enqueues_total", "Total number of successful enqueue operations"),
		dequeues:    counter("dequeues_total", "Total number of successful dequeue operations"),
		peeks:       counter("peeks_total", "Total number of successful peek operations"),
		overflows:   counter("overflows_total", "Total number of enqueues rejected on a full queue"),
		underflows:  counter("underflows_total", "Total number of dequeues rejected on an empty queue"),
		size:        gauge("size", "Current number of resident elements"),
		utilization: gauge("utilization", "Resident elements relative to usable capacity (0.0 to 1.0)"),
	}

	counters := []struct {
		name string
		c    prometheus.Counter
	}{
		{"queue_enqueues", m.enqueues},
		{"queue_dequeues", m.dequeues},
		{"queue_peeks", m.peeks},
		{"queue_overflows", m.overflows},
		{"queue_underflows", m.underflows},
	}
	for _, c := range counters {
		if err := registry.RegisterCounter(prefix, c.name, c.c); err != nil {
			m.unregister()
			return nil, err
		}
		m.names = append(m.names, c.name)
	}

	gauges := []struct {
		name string
		g    prometheus.Gauge
	}{
		{"queue_size", m.size},
		{"queue_utilization", m.utilization},
	}
	for _, g := range gauges {
		if err := registry.RegisterGauge(prefix, g.name, g.g); err != nil {
			m.unregister()
			return nil, err
		}
		m.names = append(m.names, g.name)
	}

	return m, nil
}

func (m *queueMetrics) unregister() {
	for _, name := range m.names {
		m.registry.Unregister(m.prefix, name)
	}
	m.names = nil
}

// recordEnqueue increments the enqueue counter and updates size/utilization.
func (m *queueMetrics) recordEnqueue(size, usable int) {
	m.enqueues.Inc()
	m.updateSize(size, usable)
}

// recordDequeue increments the dequeue counter and updates size/utilization.
func (m *queueMetrics) recordDequeue(size, usable int) {
	m.dequeues.Inc()
	m.updateSize(size, usable)
}

func (m *queueMetrics) recordPeek() {
	m.peeks.Inc()
}

func (m *queueMetrics) recordOverflow() {
	m.overflows.Inc()
}

func (m *queueMetrics) recordUnderflow() {
	m.underflows.Inc()
}

// updateSize sets the current size and utilization.
func (m *queueMetrics) updateSize(size, usable int) {
	m.size.Set(float64(size))
	if usable <= 0 {
		m.utilization.Set(0)
		return
	}
	m.utilization.Set(float64(size) / float64(usable))
}
