package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ringqueue/pkg/queue"
)

func newQueue(t *testing.T, capacity int, name string) *queue.RingQueue[int] {
	t.Helper()
	q, err := queue.New[int](capacity, queue.WithName[int](name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = q.Close() })
	return q
}

func TestFromQueueHealthy(t *testing.T) {
	q := newQueue(t, 11, "orders")
	require.NoError(t, q.Enqueue(1))

	status := FromQueue(q)

	assert.True(t, status.IsHealthy())
	assert.Equal(t, "orders", status.Component)
	require.NotNil(t, status.Metrics)
	assert.Equal(t, int64(1), status.Metrics.Size)
	assert.Equal(t, 10, status.Metrics.Usable)
	assert.InDelta(t, 0.1, status.Metrics.Utilization, 1e-9)
}

func TestFromQueueDegradedOnUtilization(t *testing.T) {
	q := newQueue(t, 11, "busy")
	for i := 0; i < 9; i++ {
		require.NoError(t, q.Enqueue(i))
	}

	status := FromQueue(q)
	assert.True(t, status.IsDegraded(), status.Message)
	assert.Contains(t, status.Message, "Utilization")
}

func TestFromQueueOverflowRates(t *testing.T) {
	q := newQueue(t, 3, "bursty")
	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))

	// 2 successes, 1 overflow: rate 1/3
	_ = q.Enqueue(3)
	status := FromQueueWithThresholds(q, Thresholds{DegradedOverflowRate: 0.2, UnhealthyOverflowRate: 0.5})
	assert.True(t, status.IsDegraded(), status.Message)
	assert.Equal(t, int64(1), status.Metrics.ErrorCount)

	// 2 successes, 3 overflows: rate 0.6
	_ = q.Enqueue(4)
	_ = q.Enqueue(5)
	status = FromQueueWithThresholds(q, Thresholds{DegradedOverflowRate: 0.2, UnhealthyOverflowRate: 0.5})
	assert.True(t, status.IsUnhealthy(), status.Message)
	assert.Contains(t, status.Message, "Overflow rate 0.60")
}

func TestFromQueueReleased(t *testing.T) {
	q := newQueue(t, 4, "moved")
	moved := q.Take()
	defer moved.Close()

	assert.True(t, FromQueue(q).IsUnhealthy())
	assert.True(t, FromQueue(moved).IsHealthy())
}

func TestZeroThresholdsDisableChecks(t *testing.T) {
	q := newQueue(t, 2, "tiny")
	require.NoError(t, q.Enqueue(1))
	_ = q.Enqueue(2)

	assert.True(t, FromQueueWithThresholds(q, Thresholds{}).IsHealthy())
}

func TestStatusWithSubStatus(t *testing.T) {
	parent := NewHealthy("system", "")
	child := parent.WithSubStatus(NewDegraded("a", ""))

	assert.Empty(t, parent.SubStatuses)
	assert.Len(t, child.SubStatuses, 1)
}
