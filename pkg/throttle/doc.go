// Package throttle dispatches caller-supplied tasks at a fixed maximum rate:
// at most Rate task starts per TimeUnit, one every floor(TimeUnit/Rate).
//
// Tasks are queued in FIFO order and removed one per timer tick. There is no
// burst credit; a scheduler that has been idle does not catch up. Only the
// dispatch start rate is limited: a dispatched task runs on its own
// goroutine and the scheduler neither waits for it nor tracks it.
//
// # Lifecycle
//
// A Scheduler is created stopped. Tasks scheduled before Start wait in the
// queue. Start dispatches the first queued task at once and the rest one per
// interval. When the queue runs dry the timer survives one empty tick and is
// torn down on the second, so a task arriving right after the queue empties
// does not pay for a timer restart. Stop tears the timer down and keeps the
// queue; a later Start resumes in the original order.
//
// # Signals
//
// Every transition of interest is reported as an Event carrying one of four
// signals: SignalScheduled, SignalUnwait (timer restarted from idle),
// SignalWait (timer torn down after the idle grace tick) and SignalStop.
// Observers registered with WithObserver are called synchronously in emission
// order; Subscribe offers the same stream over a channel.
//
// # Usage
//
//	s, err := throttle.New(5, time.Second) // one dispatch every 200ms
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	for _, page := range pages {
//	    _, _ = s.Schedule(func(arg any) {
//	        fetch(arg.(string))
//	    }, page)
//	}
//
//	s.Start()
//
// # Configuration
//
// Config carries `env` (THROTTLE_RATE, THROTTLE_TIME_UNIT) and `yaml` tags
// and can be filled with the config package before calling NewFromConfig.
//
// # Errors
//
// Invalid configuration is rejected with ErrInvalidRate, ErrInvalidTimeUnit or
// ErrIntervalTooSmall; a nil callback with ErrNilFunc. Failures inside a task
// belong to the task.
package throttle
