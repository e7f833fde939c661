package throttle

import (
	"time"

	"github.com/google/uuid"
)

// Signal names a scheduler lifecycle transition.
type Signal string

const (
	// SignalScheduled: a task was enqueued.
	SignalScheduled Signal = "scheduled"
	// SignalUnwait: the timer was (re)started from an idle state.
	SignalUnwait Signal = "unwait"
	// SignalWait: the timer was torn down after the idle grace tick.
	SignalWait Signal = "wait"
	// SignalStop: Stop was called.
	SignalStop Signal = "stop"
)

func (s Signal) String() string {
	return string(s)
}

// Event describes one emitted signal.
type Event struct {
	Signal Signal    `json:"signal"`
	TaskID uuid.UUID `json:"task_id,omitzero"` // set for SignalScheduled
	Queued int       `json:"queued"`           // queue length right after the transition
	At     time.Time `json:"at"`
}

// Observer receives events synchronously, in emission order, while the
// scheduler is locked. Implementations must return quickly and must not call
// back into the Scheduler; use Scheduler.Subscribe for asynchronous consumers.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) {
	f(e)
}
