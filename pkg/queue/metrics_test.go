package queue

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/c360/ringqueue/errors"
	"github.com/c360/ringqueue/metric"
)

func TestQueueMetricsRecorded(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	q := newQueue[int](t, 3, WithMetrics[int](registry, "orders"))

	assert.Equal(t, "orders", q.Name())
	require.NotNil(t, q.metrics)

	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	_ = q.Enqueue(3)
	_, _ = q.Peek()
	_, _ = q.Dequeue()

	assert.Equal(t, 2.0, testutil.ToFloat64(q.metrics.enqueues))
	assert.Equal(t, 1.0, testutil.ToFloat64(q.metrics.dequeues))
	assert.Equal(t, 1.0, testutil.ToFloat64(q.metrics.peeks))
	assert.Equal(t, 1.0, testutil.ToFloat64(q.metrics.overflows))
	assert.Equal(t, 1.0, testutil.ToFloat64(q.metrics.size))
	assert.InDelta(t, 0.5, testutil.ToFloat64(q.metrics.utilization), 1e-9)

	_, _ = q.Dequeue()
	_, _ = q.Dequeue()
	assert.Equal(t, 1.0, testutil.ToFloat64(q.metrics.underflows))

	core := registry.CoreMetrics()
	assert.Equal(t, 1.0, testutil.ToFloat64(core.ErrorsTotal.WithLabelValues("orders", "overflow")))
	assert.Equal(t, 1.0, testutil.ToFloat64(core.ErrorsTotal.WithLabelValues("orders", "underflow")))
}

func TestQueueMetricsExposition(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	q := newQueue[string](t, 5, WithMetrics[string](registry, "events"))
	require.NoError(t, q.Enqueue("a"))

	expected := `
# HELP ringqueue_queue_enqueues_total Total number of successful enqueue operations
# TYPE ringqueue_queue_enqueues_total counter
ringqueue_queue_enqueues_total{queue="events"} 1
# HELP ringqueue_queue_size Current number of resident elements
# TYPE ringqueue_queue_size gauge
ringqueue_queue_size{queue="events"} 1
`
	err := testutil.GatherAndCompare(registry.PrometheusRegistry(), strings.NewReader(expected),
		"ringqueue_queue_enqueues_total", "ringqueue_queue_size")
	require.NoError(t, err)
}

func TestStorageAccounting(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	core := registry.CoreMetrics()

	q, err := New[int](9, WithMetrics[int](registry, "jobs"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(core.QueuesActive))
	assert.Equal(t, 10.0, testutil.ToFloat64(core.AllocatedSlots))

	c, err := q.Clone()
	require.NoError(t, err)
	assert.Nil(t, c.metrics, "clones are not registered")
	assert.Equal(t, 1.0, testutil.ToFloat64(core.TransfersTotal.WithLabelValues("jobs", "copy")))

	other, err := New[int](2)
	require.NoError(t, err)
	q.MoveFrom(other)
	assert.Equal(t, 3.0, testutil.ToFloat64(core.AllocatedSlots))
	assert.Equal(t, 1.0, testutil.ToFloat64(core.TransfersTotal.WithLabelValues("jobs", "move")))

	require.NoError(t, q.Close())
	assert.Equal(t, 0.0, testutil.ToFloat64(core.QueuesActive))
	assert.Equal(t, 0.0, testutil.ToFloat64(core.AllocatedSlots))
	assert.Nil(t, q.metrics)

	require.NoError(t, c.Close())
}

func TestCloseUnregistersMetrics(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	q, err := New[int](4, WithMetrics[int](registry, "payments"))
	require.NoError(t, err)
	assert.True(t, registry.Registered("payments", "queue_enqueues"))
	assert.True(t, registry.Registered("payments", "queue_utilization"))

	require.NoError(t, q.Close())
	assert.False(t, registry.Registered("payments", "queue_enqueues"))
	assert.False(t, registry.Registered("payments", "queue_utilization"))

	// The prefix is free again
	again := newQueue[int](t, 4, WithMetrics[int](registry, "payments"))
	assert.NotNil(t, again.metrics)
}

func TestMetricsRegistrationRollback(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	blocker := prometheus.NewGauge(prometheus.GaugeOpts{Name: "blocker", Help: "occupies a queue slot"})
	require.NoError(t, registry.RegisterGauge("refunds", "queue_size", blocker))

	q, err := New[int](4, WithMetrics[int](registry, "refunds"))
	require.Error(t, err)
	assert.Nil(t, q)
	assert.True(t, cerrors.IsTransient(err))
	assert.Contains(t, err.Error(), "metrics registration")

	for _, name := range []string{"queue_enqueues", "queue_dequeues", "queue_peeks", "queue_overflows", "queue_underflows"} {
		assert.False(t, registry.Registered("refunds", name), name)
	}
	assert.True(t, registry.Registered("refunds", "queue_size"))
	assert.Equal(t, 0.0, testutil.ToFloat64(registry.CoreMetrics().AllocatedSlots))
}

func TestConstructionErrorsCounted(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	_, err := New[int](-5, WithMetrics[int](registry, "bad"))
	require.Error(t, err)
	_, err = New[int64](50, WithMetrics[int64](registry, "bad"), WithMemoryLimit[int64](8))
	require.Error(t, err)

	errorsTotal := registry.CoreMetrics().ErrorsTotal
	assert.Equal(t, 1.0, testutil.ToFloat64(errorsTotal.WithLabelValues("bad", "invalid_size")))
	assert.Equal(t, 1.0, testutil.ToFloat64(errorsTotal.WithLabelValues("bad", "allocation")))
	assert.False(t, registry.Registered("bad", "queue_enqueues"))
}

func TestWithMetricsIgnoredWithoutPrefix(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	q := newQueue[int](t, 3, WithMetrics[int](registry, ""))
	assert.Nil(t, q.metrics)

	q = newQueue[int](t, 3, WithMetrics[int](nil, "orphan"))
	assert.Nil(t, q.metrics)
	assert.NotEqual(t, "orphan", q.Name())
}
