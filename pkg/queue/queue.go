package queue

import "fmt"

// Queue is the FIFO capability shared by queue implementations. Code written
// against Queue must not assume ring-specific behavior such as a full state.
type Queue[T any] interface {
	// Enqueue appends item. Implementations may refuse it with an error.
	Enqueue(item T) error

	// Dequeue removes and returns the oldest item.
	// Returns an error matching errors.ErrEmptyQueue when there is none.
	Dequeue() (T, error)

	// IsEmpty returns true if the queue holds no items.
	IsEmpty() bool
}

var _ Queue[int] = (*RingQueue[int])(nil)

// Drain dequeues until q is empty and returns the items in FIFO order.
func Drain[T any](q Queue[T]) []T {
	var items []T
	for !q.IsEmpty() {
		item, err := q.Dequeue()
		if err != nil {
			break
		}
		items = append(items, item)
	}
	return items
}

// TransferError reports that dst refused an item during Transfer. Item has
// already left the source and is handed back to the caller.
type TransferError[T any] struct {
	Item T
	Err  error
}

func (e *TransferError[T]) Error() string {
	return fmt.Sprintf("transfer stopped: %v", e.Err)
}

func (e *TransferError[T]) Unwrap() error {
	return e.Err
}

// Transfer moves items from src to dst in FIFO order until src is empty or
// dst refuses an item. It returns the number of items moved.
func Transfer[T any](dst, src Queue[T]) (int, error) {
	moved := 0
	for !src.IsEmpty() {
		item, err := src.Dequeue()
		if err != nil {
			return moved, err
		}
		if err := dst.Enqueue(item); err != nil {
			return moved, &TransferError[T]{Item: item, Err: err}
		}
		moved++
	}
	return moved, nil
}
