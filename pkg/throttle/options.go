package throttle

import "log/slog"

const defaultEventBuffer = 64

// Option is a functional option for configuring a Scheduler.
type Option func(*schedulerOptions)

type schedulerOptions struct {
	logger      *slog.Logger
	clock       Clock
	observers   []Observer
	eventBuffer int
}

// WithLogger sets the logger for the scheduler.
func WithLogger(logger *slog.Logger) Option {
	return func(o *schedulerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(clock Clock) Option {
	return func(o *schedulerOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithObserver registers a synchronous observer. It may be given several times;
// observers are called in registration order.
func WithObserver(observer Observer) Option {
	return func(o *schedulerOptions) {
		if observer != nil {
			o.observers = append(o.observers, observer)
		}
	}
}

// WithEventBuffer sets the channel size of each Subscribe subscriber.
func WithEventBuffer(size int) Option {
	return func(o *schedulerOptions) {
		if size > 0 {
			o.eventBuffer = size
		}
	}
}
