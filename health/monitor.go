package health

import (
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"
)

// Monitor tracks the health of multiple queues in a thread-safe manner.
// Statuses are either set directly with Update or derived from watched
// queues on every Refresh.
type Monitor struct {
	mu         sync.RWMutex
	statuses   map[string]Status
	probes     map[string]Probe
	thresholds Thresholds
}

// NewMonitor creates a new health monitor using DefaultThresholds
func NewMonitor() *Monitor {
	return NewMonitorWithThresholds(DefaultThresholds())
}

// NewMonitorWithThresholds creates a new health monitor
func NewMonitorWithThresholds(th Thresholds) *Monitor {
	return &Monitor{
		statuses:   make(map[string]Status),
		probes:     make(map[string]Probe),
		thresholds: th,
	}
}

// Update updates the health status for a named queue
func (m *Monitor) Update(name string, status Status) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.set(name, status)
}

func (m *Monitor) set(name string, status Status) {
	status.Component = name
	if status.Timestamp.IsZero() {
		status.Timestamp = time.Now()
	}
	m.statuses[name] = status
}

// Watch registers q to be re-evaluated on every Refresh under its name
func (m *Monitor) Watch(q Probe) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.probes[q.Name()] = q
	m.set(q.Name(), FromQueueWithThresholds(q, m.thresholds))
}

// Refresh re-derives the status of every watched queue.
// The caller must not mutate watched queues concurrently.
func (m *Monitor) Refresh() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, probe := range m.probes {
		m.set(name, FromQueueWithThresholds(probe, m.thresholds))
	}
}

// Get retrieves the health status for a named queue
func (m *Monitor) Get(name string) (Status, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	status, exists := m.statuses[name]
	return status, exists
}

// GetAll returns a copy of all current health statuses
func (m *Monitor) GetAll() map[string]Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]Status, len(m.statuses))
	for name, status := range m.statuses {
		result[name] = status
	}
	return result
}

// Remove stops tracking a queue
func (m *Monitor) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.statuses, name)
	delete(m.probes, name)
}

// AggregateHealth returns an aggregated status with one sub-status per queue,
// ordered by name
func (m *Monitor) AggregateHealth(systemName string) Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	subStatuses := make([]Status, 0, len(m.statuses))
	for _, status := range m.statuses {
		subStatuses = append(subStatuses, status)
	}
	sort.Slice(subStatuses, func(i, j int) bool {
		return subStatuses[i].Component < subStatuses[j].Component
	})

	return Aggregate(systemName, subStatuses)
}

// Count returns the number of queues being tracked
func (m *Monitor) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.statuses)
}

// Handler serves the aggregated health as JSON. Unhealthy systems answer
// 503 so load balancers and probes can act on the status code alone.
func (m *Monitor) Handler(systemName string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		m.Refresh()
		status := m.AggregateHealth(systemName)

		code := http.StatusOK
		if status.IsUnhealthy() {
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(status)
	})
}
