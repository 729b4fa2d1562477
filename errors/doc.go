// Package errors provides standardized error handling for ringqueue packages.
//
// # Overview
//
// The package implements a three-class error classification: Transient (the
// operation may succeed later), Invalid (bad input, do not retry) and Fatal
// (unrecoverable). Callers decide whether to retry, drop or escalate based on
// the class rather than on message text.
//
// # Queue Errors
//
// The ring queue reports four failure kinds:
//
//   - ErrInvalidSize: requested capacity outside [0, MaxCapacity] (Invalid)
//   - ErrAllocationFailure: backing storage could not be allocated (Fatal)
//   - ErrQueueOverflow: enqueue on a full queue (Transient)
//   - ErrEmptyQueue: dequeue or peek on an empty queue (Transient)
//
// ErrInvalidSize, ErrAllocationFailure and ErrEmptyQueue share the
// ErrQueueSize kind, so a single check covers every size-related failure:
//
//	if errors.Is(err, errors.ErrQueueSize) {
//	    // construction failed or the queue was empty
//	}
//
// # Error Wrapping Pattern
//
// All wrapping follows the format:
//
//	"component.method: action failed: %w"
//
// Three wrappers attach a class while keeping the chain intact for errors.Is:
//
//	errors.WrapTransient(err, "RingQueue", "Enqueue", "enqueue")
//	errors.WrapInvalid(err, "RingQueue", "New", "capacity 200000000 exceeds maximum 100000000")
//	errors.WrapFatal(err, "RingQueue", "New", "allocate 101 slots")
//
// Wrap() adds context without a class; classification then falls back to the
// sentinel lists and a small set of message patterns.
//
// # Integration with errors.As/Is
//
//	var ce *errors.ClassifiedError
//	if errors.As(err, &ce) {
//	    logger.Warn("queue operation failed", "component", ce.Component, "class", ce.Class)
//	}
//
//	if errors.Is(err, errors.ErrQueueOverflow) {
//	    // back off until a consumer dequeues
//	}
//
// # Thread Safety
//
// Error variables are immutable and ClassifiedError values are safe to share
// across goroutines after creation.
package errors
