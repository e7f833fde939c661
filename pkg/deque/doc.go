// Package deque provides a generic double-ended queue backed by a doubly
// linked list bounded by two sentinel nodes.
//
// Values can be inserted at either end in O(1) and are always removed from
// the back. Pairing the insertion methods with the shared removal primitive
// gives two disciplines:
//
//   - Enqueue + Dequeue: FIFO (insert at the front, remove at the back)
//   - Push + Pop: LIFO (insert and remove at the back)
//
// # Usage
//
//	var q deque.Deque[string]
//	q.Enqueue("a")
//	q.Enqueue("b")
//
//	v, err := q.Dequeue() // "a"
//	if errors.Is(err, deque.ErrEmptyQueue) {
//	    // nothing to remove
//	}
//
// The zero value is an empty deque ready to use. A Deque is not safe for
// concurrent use; callers must serialise access.
package deque
