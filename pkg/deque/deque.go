package deque

// node is a single link in the list. Sentinel nodes carry no payload and
// mark the boundaries; emptiness checks rely on the marker, not on values.
type node[T any] struct {
	value    T
	next     *node[T]
	prev     *node[T]
	sentinel bool
}

// Deque is a doubly linked list with permanent head and tail sentinels.
// Every real node lies strictly between head and tail.
type Deque[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

// New returns an initialized empty deque.
func New[T any]() *Deque[T] {
	return new(Deque[T]).lazyInit()
}

func (d *Deque[T]) lazyInit() *Deque[T] {
	if d.head == nil {
		d.head = &node[T]{sentinel: true}
		d.tail = &node[T]{sentinel: true}
		d.head.next = d.tail
		d.tail.prev = d.head
		d.length = 0
	}
	return d
}

// Len returns the number of values currently stored.
func (d *Deque[T]) Len() int {
	return d.length
}

// Enqueue inserts v at the front, right after the head sentinel.
func (d *Deque[T]) Enqueue(v T) {
	d.lazyInit()
	link(d.head, &node[T]{value: v})
	d.length++
}

// Push inserts v at the back, right before the tail sentinel.
func (d *Deque[T]) Push(v T) {
	d.lazyInit()
	link(d.tail.prev, &node[T]{value: v})
	d.length++
}

// Pop removes and returns the value at the back.
// It returns ErrEmptyQueue and leaves the deque untouched when empty.
func (d *Deque[T]) Pop() (T, error) {
	d.lazyInit()

	n := d.tail.prev
	if n.sentinel {
		var zero T
		return zero, ErrEmptyQueue
	}

	unlink(n)
	d.length--

	return n.value, nil
}

// Dequeue is an alias for Pop. Combined with Enqueue it yields FIFO order.
func (d *Deque[T]) Dequeue() (T, error) {
	return d.Pop()
}

// link inserts n directly after at.
func link[T any](at, n *node[T]) {
	next := at.next

	at.next = n
	n.prev = at
	n.next = next

	if next != nil {
		next.prev = n
	}
}

// unlink detaches n from its neighbours.
func unlink[T any](n *node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}

	n.next = nil
	n.prev = nil
}
