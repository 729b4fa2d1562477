package health

import (
	"fmt"
	"time"

	"github.com/c360/ringqueue/pkg/queue"
)

// Status represents the health state of a queue or a group of queues
type Status struct {
	Component   string    `json:"component"`
	Healthy     bool      `json:"healthy"` // true if status is "healthy"
	Status      string    `json:"status"`  // "healthy", "unhealthy", "degraded"
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	SubStatuses []Status  `json:"sub_statuses,omitempty"`
	Metrics     *Metrics  `json:"metrics,omitempty"`
}

// Metrics contains the queue figures a status was derived from
type Metrics struct {
	Uptime       time.Duration `json:"uptime"`
	ErrorCount   int64         `json:"error_count"`
	Enqueues     int64         `json:"enqueues"`
	Size         int64         `json:"size"`
	Usable       int           `json:"usable"`
	Utilization  float64       `json:"utilization"`
	OverflowRate float64       `json:"overflow_rate"`
}

// IsHealthy returns true if the status is healthy
func (s Status) IsHealthy() bool {
	return s.Status == "healthy"
}

// IsDegraded returns true if the status is degraded
func (s Status) IsDegraded() bool {
	return s.Status == "degraded"
}

// IsUnhealthy returns true if the status is unhealthy
func (s Status) IsUnhealthy() bool {
	return s.Status == "unhealthy"
}

// WithMetrics returns a copy of the status with metrics attached
func (s Status) WithMetrics(metrics *Metrics) Status {
	s.Metrics = metrics
	return s
}

// WithSubStatus adds a sub-status and returns a copy
func (s Status) WithSubStatus(subStatus Status) Status {
	newSubStatuses := make([]Status, len(s.SubStatuses), len(s.SubStatuses)+1)
	copy(newSubStatuses, s.SubStatuses)
	s.SubStatuses = append(newSubStatuses, subStatus)
	return s
}

// Probe is the read-only view of a queue that health checks need.
// *queue.RingQueue[T] satisfies it for every T.
type Probe interface {
	Name() string
	Capacity() int
	Usable() int
	Stats() *queue.Statistics
}

// Thresholds decide when a queue counts as degraded or unhealthy.
// Rates and utilization are fractions in [0, 1]; zero disables a check.
type Thresholds struct {
	DegradedUtilization   float64 `json:"degraded_utilization" yaml:"degraded_utilization"`
	DegradedOverflowRate  float64 `json:"degraded_overflow_rate" yaml:"degraded_overflow_rate"`
	UnhealthyOverflowRate float64 `json:"unhealthy_overflow_rate" yaml:"unhealthy_overflow_rate"`
}

// DefaultThresholds returns the thresholds used by FromQueue.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DegradedUtilization:   0.9,
		DegradedOverflowRate:  0.05,
		UnhealthyOverflowRate: 0.5,
	}
}

// FromQueue derives a status from the statistics of q using DefaultThresholds.
func FromQueue(q Probe) Status {
	return FromQueueWithThresholds(q, DefaultThresholds())
}

// FromQueueWithThresholds derives a status from the statistics of q.
// A queue without storage is unhealthy.
func FromQueueWithThresholds(q Probe, th Thresholds) Status {
	stats := q.Stats().Summary()
	usable := q.Usable()

	metrics := &Metrics{
		Uptime:       stats.Uptime,
		ErrorCount:   stats.Overflows + stats.Underflows,
		Enqueues:     stats.Enqueues,
		Size:         stats.CurrentSize,
		Usable:       usable,
		Utilization:  q.Stats().Utilization(int64(usable)),
		OverflowRate: stats.OverflowRate,
	}

	var status Status
	switch {
	case q.Capacity() == 0:
		status = NewUnhealthy(q.Name(), "Queue storage released")
	case th.UnhealthyOverflowRate > 0 && metrics.OverflowRate >= th.UnhealthyOverflowRate:
		status = NewUnhealthy(q.Name(),
			fmt.Sprintf("Overflow rate %.2f at or above %.2f", metrics.OverflowRate, th.UnhealthyOverflowRate))
	case th.DegradedOverflowRate > 0 && metrics.OverflowRate >= th.DegradedOverflowRate:
		status = NewDegraded(q.Name(),
			fmt.Sprintf("Overflow rate %.2f at or above %.2f", metrics.OverflowRate, th.DegradedOverflowRate))
	case th.DegradedUtilization > 0 && metrics.Utilization >= th.DegradedUtilization:
		status = NewDegraded(q.Name(),
			fmt.Sprintf("Utilization %.2f at or above %.2f", metrics.Utilization, th.DegradedUtilization))
	default:
		status = NewHealthy(q.Name(), "Queue healthy")
	}

	return status.WithMetrics(metrics)
}
