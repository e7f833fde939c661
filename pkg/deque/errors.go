package deque

import "errors"

// ErrEmptyQueue is returned by Pop and Dequeue when the deque holds no values.
var ErrEmptyQueue = errors.New("nothing to pop: queue is empty")
