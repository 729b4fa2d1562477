package queue

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks queue operation counters.
type Statistics struct {
	// Atomic counters so a metrics scraper can read while the owner mutates
	enqueues   int64
	dequeues   int64
	peeks      int64
	overflows  int64
	underflows int64
	copies     int64
	moves      int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
	maxSize     int64
	memoryUsage int64 // Bytes held by the storage block
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Enqueue records a successful enqueue.
func (s *Statistics) Enqueue() {
	atomic.AddInt64(&s.enqueues, 1)
}

// Dequeue records a successful dequeue.
func (s *Statistics) Dequeue() {
	atomic.AddInt64(&s.dequeues, 1)
}

// Peek records a successful peek.
func (s *Statistics) Peek() {
	atomic.AddInt64(&s.peeks, 1)
}

// Overflow records an enqueue rejected because the queue was full.
func (s *Statistics) Overflow() {
	atomic.AddInt64(&s.overflows, 1)
}

// Underflow records a dequeue or peek rejected because the queue was empty.
func (s *Statistics) Underflow() {
	atomic.AddInt64(&s.underflows, 1)
}

// Copy records the queue being copied.
func (s *Statistics) Copy() {
	atomic.AddInt64(&s.copies, 1)
}

// Move records storage ownership moving into or out of the queue.
func (s *Statistics) Move() {
	atomic.AddInt64(&s.moves, 1)
}

// UpdateSize updates the current resident element count.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.maxSize {
		s.maxSize = size
	}
	s.mu.Unlock()
}

// UpdateMemoryUsage updates the storage block size in bytes.
func (s *Statistics) UpdateMemoryUsage(usage int64) {
	s.mu.Lock()
	s.memoryUsage = usage
	s.mu.Unlock()
}

// Enqueues returns the total number of successful enqueues.
func (s *Statistics) Enqueues() int64 {
	return atomic.LoadInt64(&s.enqueues)
}

// Dequeues returns the total number of successful dequeues.
func (s *Statistics) Dequeues() int64 {
	return atomic.LoadInt64(&s.dequeues)
}

// Peeks returns the total number of successful peeks.
func (s *Statistics) Peeks() int64 {
	return atomic.LoadInt64(&s.peeks)
}

// Overflows returns the total number of rejected enqueues.
func (s *Statistics) Overflows() int64 {
	return atomic.LoadInt64(&s.overflows)
}

// Underflows returns the total number of rejected dequeues and peeks.
func (s *Statistics) Underflows() int64 {
	return atomic.LoadInt64(&s.underflows)
}

// Copies returns how many times the queue was copied.
func (s *Statistics) Copies() int64 {
	return atomic.LoadInt64(&s.copies)
}

// Moves returns how many ownership moves involved the queue.
func (s *Statistics) Moves() int64 {
	return atomic.LoadInt64(&s.moves)
}

// CurrentSize returns the current number of resident elements.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// MaxSize returns the largest number of elements the queue has held.
func (s *Statistics) MaxSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

// MemoryUsage returns the storage block size in bytes.
func (s *Statistics) MemoryUsage() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.memoryUsage
}

// Throughput returns the average number of enqueues per second.
func (s *Statistics) Throughput() float64 {
	elapsed := s.Uptime()
	if elapsed == 0 {
		return 0.0
	}
	return float64(s.Enqueues()) / elapsed.Seconds()
}

// OverflowRate returns the fraction of enqueue attempts that overflowed (0.0 to 1.0).
func (s *Statistics) OverflowRate() float64 {
	overflows := s.Overflows()
	attempts := s.Enqueues() + overflows

	if attempts == 0 {
		return 0.0
	}

	return float64(overflows) / float64(attempts)
}

// Utilization returns the current fill level relative to usable (0.0 to 1.0).
func (s *Statistics) Utilization(usable int64) float64 {
	if usable <= 0 {
		return 0.0
	}
	return float64(s.CurrentSize()) / float64(usable)
}

// Uptime returns how long the statistics have been collected.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all counters to zero. Current size and memory usage are kept
// since they describe live state.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.enqueues, 0)
	atomic.StoreInt64(&s.dequeues, 0)
	atomic.StoreInt64(&s.peeks, 0)
	atomic.StoreInt64(&s.overflows, 0)
	atomic.StoreInt64(&s.underflows, 0)
	atomic.StoreInt64(&s.copies, 0)
	atomic.StoreInt64(&s.moves, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.maxSize = s.currentSize
	s.mu.Unlock()
}

// StatsSummary is a snapshot of all statistics.
type StatsSummary struct {
	Enqueues     int64         `json:"enqueues"`
	Dequeues     int64         `json:"dequeues"`
	Peeks        int64         `json:"peeks"`
	Overflows    int64         `json:"overflows"`
	Underflows   int64         `json:"underflows"`
	Copies       int64         `json:"copies"`
	Moves        int64         `json:"moves"`
	CurrentSize  int64         `json:"current_size"`
	MaxSize      int64         `json:"max_size"`
	MemoryUsage  int64         `json:"memory_usage"`
	Throughput   float64       `json:"throughput"`
	OverflowRate float64       `json:"overflow_rate"`
	Uptime       time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Enqueues:     s.Enqueues(),
		Dequeues:     s.Dequeues(),
		Peeks:        s.Peeks(),
		Overflows:    s.Overflows(),
		Underflows:   s.Underflows(),
		Copies:       s.Copies(),
		Moves:        s.Moves(),
		CurrentSize:  s.CurrentSize(),
		MaxSize:      s.MaxSize(),
		MemoryUsage:  s.MemoryUsage(),
		Throughput:   s.Throughput(),
		OverflowRate: s.OverflowRate(),
		Uptime:       s.Uptime(),
	}
}
