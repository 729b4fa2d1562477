package queue

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gammazero/deque"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/c360/ringqueue/errors"
)

// dequeQueue adapts an unbounded deque to the Queue capability.
type dequeQueue[T any] struct {
	d *deque.Deque[T]
}

func (q *dequeQueue[T]) Enqueue(item T) error {
	q.d.PushBack(item)
	return nil
}

func (q *dequeQueue[T]) Dequeue() (T, error) {
	if q.d.Len() == 0 {
		var zero T
		return zero, cerrors.ErrEmptyQueue
	}
	return q.d.PopFront(), nil
}

func (q *dequeQueue[T]) IsEmpty() bool {
	return q.d.Len() == 0
}

func TestDrain(t *testing.T) {
	q := newQueue[int](t, 5)
	for i := 1; i <= 4; i++ {
		require.NoError(t, q.Enqueue(i))
	}

	assert.Equal(t, []int{1, 2, 3, 4}, Drain[int](q))
	assert.True(t, q.IsEmpty())
	assert.Empty(t, Drain[int](q))
}

func TestTransfer(t *testing.T) {
	t.Run("into unbounded queue", func(t *testing.T) {
		src := newQueue[string](t, 4)
		for _, s := range []string{"a", "b", "c"} {
			require.NoError(t, src.Enqueue(s))
		}
		dst := &dequeQueue[string]{d: deque.New[string]()}

		n, err := Transfer[string](dst, src)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.True(t, src.IsEmpty())
		assert.Equal(t, []string{"a", "b", "c"}, Drain[string](dst))
	})

	t.Run("destination refuses an item", func(t *testing.T) {
		src := newQueue[int](t, 6)
		for i := 1; i <= 5; i++ {
			require.NoError(t, src.Enqueue(i))
		}
		dst := newQueue[int](t, 3)

		n, err := Transfer[int](dst, src)
		require.Error(t, err)
		assert.Equal(t, 2, n)

		var te *TransferError[int]
		require.True(t, errors.As(err, &te))
		assert.Equal(t, 3, te.Item, "refused item is handed back")
		assert.ErrorIs(t, err, cerrors.ErrQueueOverflow)
		assert.Contains(t, err.Error(), "transfer stopped")

		assert.Equal(t, []int{1, 2}, dst.Items())
		assert.Equal(t, []int{4, 5}, src.Items())
	})

	t.Run("empty source", func(t *testing.T) {
		src := newQueue[int](t, 3)
		dst := newQueue[int](t, 3)

		n, err := Transfer[int](dst, src)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestRender(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		q := newQueue[int](t, 3)
		assert.Equal(t, "\nElements of RingQueue:\nEnd of queue's elements\n", q.String())
	})

	t.Run("wrapped elements in FIFO order", func(t *testing.T) {
		q := newQueue[int](t, 4)
		fillWrapped(t, q, 10, 20, 30)

		want := "\nElements of RingQueue:\n10\n20\n30\nEnd of queue's elements\n"
		assert.Equal(t, want, q.String())

		var buf bytes.Buffer
		n, err := q.WriteTo(&buf)
		require.NoError(t, err)
		assert.Equal(t, int64(len(want)), n)
		assert.Equal(t, want, buf.String())
	})

	t.Run("released queue", func(t *testing.T) {
		var q RingQueue[string]
		assert.Equal(t, "\nElements of RingQueue:\nEnd of queue's elements\n", q.String())
	})
}
