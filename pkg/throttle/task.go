package throttle

import "github.com/google/uuid"

// Task pairs a callback with its optional argument. Tasks are immutable.
type Task struct {
	ID  uuid.UUID
	fn  func(arg any)
	arg any
}

// NewTask wraps fn and arg into a Task with a fresh identifier.
func NewTask(fn func(arg any), arg any) Task {
	return Task{
		ID:  uuid.New(),
		fn:  fn,
		arg: arg,
	}
}

// Run starts the callback on its own goroutine and returns immediately.
// The callback receives the argument given to NewTask, or nil when none was
// supplied. Its outcome, including panics, is the callback's own business.
func (t Task) Run() {
	if t.fn == nil {
		return
	}
	go t.fn(t.arg)
}
