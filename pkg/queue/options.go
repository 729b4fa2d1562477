package queue

import (
	"log/slog"

	"github.com/c360/ringqueue/metric"
)

// Option configures queue behavior using the functional options pattern.
type Option[T any] func(*queueOptions[T])

// queueOptions holds internal configuration for queue instances.
// Statistics are always collected and are not an option.
type queueOptions[T any] struct {
	name   string
	logger *slog.Logger

	// memoryLimit bounds the storage block in bytes; zero means unbounded
	memoryLimit int64

	// metricsReg is optional - if provided, queue stats are also exposed as Prometheus metrics
	metricsReg *metric.MetricsRegistry

	// metricsPrefix is used as the queue label for Prometheus metrics
	metricsPrefix string
}

// WithName sets the queue name used in logs and error metrics.
// Defaults to the metrics prefix, or a generated "ringqueue-xxxxxxxx" name.
func WithName[T any](name string) Option[T] {
	return func(opts *queueOptions[T]) {
		opts.name = name
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(opts *queueOptions[T]) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMemoryLimit bounds the storage block to limit bytes. Construction and
// copies that would need more fail with ErrAllocationFailure.
func WithMemoryLimit[T any](limit int64) Option[T] {
	return func(opts *queueOptions[T]) {
		if limit > 0 {
			opts.memoryLimit = limit
		}
	}
}

// WithMetrics enables Prometheus metrics export for queue statistics.
// If registry is nil or prefix is empty, this option is ignored.
func WithMetrics[T any](registry *metric.MetricsRegistry, prefix string) Option[T] {
	return func(opts *queueOptions[T]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// applyOptions applies functional options to create final queue configuration.
func applyOptions[T any](options ...Option[T]) *queueOptions[T] {
	opts := &queueOptions[T]{
		logger: slog.Default(),
	}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
