package queue

import (
	"fmt"
	"io"
	"strings"
)

// String lists the resident elements from oldest to newest, one per line,
// between a fixed header and footer.
func (q *RingQueue[T]) String() string {
	var b strings.Builder

	b.WriteString("\nElements of RingQueue:\n")
	q.each(func(item T) {
		fmt.Fprintf(&b, "%v\n", item)
	})
	b.WriteString("End of queue's elements\n")

	return b.String()
}

// WriteTo writes the String rendering of q to w.
func (q *RingQueue[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, q.String())
	return int64(n), err
}
