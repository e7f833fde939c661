package throttle

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/throttle/pkg/broadcast"
	"github.com/dmitrymomot/throttle/pkg/deque"
	"github.com/dmitrymomot/throttle/pkg/logger"
)

// Scheduler dispatches queued tasks one per interval, in FIFO order.
// All methods are safe for concurrent use.
type Scheduler struct {
	cfg      Config
	interval time.Duration

	clock     Clock
	logger    *slog.Logger
	observers []Observer
	events    *broadcast.MemoryBroadcaster[Event]

	mu         sync.Mutex
	queue      deque.Deque[Task]
	state      state
	ticker     Ticker
	tickerDone chan struct{}
	dispatched uint64
}

// Stats is a point-in-time snapshot of a Scheduler.
type Stats struct {
	Rate        int           `json:"rate"`
	TimeUnit    time.Duration `json:"time_unit"`
	Interval    time.Duration `json:"interval"`
	Queued      int           `json:"queued"`
	Dispatched  uint64        `json:"dispatched"`
	Running     bool          `json:"running"`
	Waiting     bool          `json:"waiting"`
	WaitOnce    bool          `json:"wait_once"`
	TimerActive bool          `json:"timer_active"`
}

// New creates a stopped scheduler allowing at most rate dispatches per timeUnit.
func New(rate int, timeUnit time.Duration, opts ...Option) (*Scheduler, error) {
	return NewFromConfig(Config{Rate: rate, TimeUnit: timeUnit}, opts...)
}

// NewFromConfig creates a stopped scheduler from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &schedulerOptions{
		logger:      slog.Default(),
		clock:       SystemClock{},
		eventBuffer: defaultEventBuffer,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Scheduler{
		cfg:       cfg,
		interval:  cfg.Interval(),
		clock:     options.clock,
		logger:    options.logger,
		observers: options.observers,
		events:    broadcast.NewMemoryBroadcaster[Event](options.eventBuffer),
		state:     initialState(),
	}, nil
}

// Schedule enqueues fn to be called with arg and wakes the scheduler if it is
// running and idle. Pass a nil arg for callbacks that take no payload.
func (s *Scheduler) Schedule(fn func(arg any), arg any) (uuid.UUID, error) {
	if fn == nil {
		return uuid.Nil, ErrNilFunc
	}

	task := NewTask(fn, arg)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue.Enqueue(task)
	next, fx := s.state.onSchedule(s.queue.Len())
	s.apply(next, fx, task.ID)

	return task.ID, nil
}

// ScheduleFunc is Schedule for callbacks without a payload.
func (s *Scheduler) ScheduleFunc(fn func()) (uuid.UUID, error) {
	if fn == nil {
		return uuid.Nil, ErrNilFunc
	}
	return s.Schedule(func(any) { fn() }, nil)
}

// Start lets the scheduler dispatch. Queued tasks start flowing immediately.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, fx := s.state.onStart(s.queue.Len())
	s.apply(next, fx, uuid.Nil)

	s.logger.Info("scheduler started",
		logger.Rate(s.cfg.Rate, s.cfg.TimeUnit),
		logger.Interval(s.interval),
		logger.Queued(s.queue.Len()))
}

// Stop halts dispatching. Queued tasks are kept until the next Start.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, fx := s.state.onStop()
	s.apply(next, fx, uuid.Nil)

	s.logger.Info("scheduler stopped", logger.Queued(s.queue.Len()))
}

// Run starts the scheduler and blocks until ctx is done, then stops it.
func (s *Scheduler) Run(ctx context.Context) error {
	s.Start()
	<-ctx.Done()
	s.Stop()
	return ctx.Err()
}

// Close stops the scheduler and closes every event subscriber.
func (s *Scheduler) Close() error {
	s.Stop()
	return s.events.Close()
}

// Subscribe returns a subscriber receiving every event emitted from now on.
// A subscriber that falls behind by more than the event buffer misses events.
func (s *Scheduler) Subscribe(ctx context.Context) broadcast.Subscriber[Event] {
	return s.events.Subscribe(ctx)
}

// Len returns the number of queued, undispatched tasks.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}

// Interval returns the fixed gap between consecutive dispatches.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Stats returns a snapshot of the scheduler state.
func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		Rate:        s.cfg.Rate,
		TimeUnit:    s.cfg.TimeUnit,
		Interval:    s.interval,
		Queued:      s.queue.Len(),
		Dispatched:  s.dispatched,
		Running:     s.state.running,
		Waiting:     s.state.waiting,
		WaitOnce:    s.state.waitOnce,
		TimerActive: s.ticker != nil,
	}
}

// apply commits a transition. Callers hold s.mu.
func (s *Scheduler) apply(next state, fx effects, taskID uuid.UUID) {
	s.state = next

	if fx.stopTimer {
		s.stopTimer()
	}
	if fx.startTimer {
		s.startTimer()
	}
	if fx.dispatch {
		s.dispatch()
	}

	if len(fx.signals) == 0 {
		return
	}

	now := s.clock.Now()
	queued := s.queue.Len()
	for _, sig := range fx.signals {
		ev := Event{Signal: sig, Queued: queued, At: now}
		if sig == SignalScheduled {
			ev.TaskID = taskID
		}
		s.emit(ev)
	}
}

func (s *Scheduler) emit(ev Event) {
	s.logger.Debug("scheduler signal",
		logger.Signal(ev.Signal.String()),
		logger.TaskID(ev.TaskID),
		logger.Queued(ev.Queued))

	for _, o := range s.observers {
		o.Observe(ev)
	}
	_ = s.events.Broadcast(context.Background(), broadcast.Message[Event]{Data: ev})
}

func (s *Scheduler) dispatch() {
	task, err := s.queue.Dequeue()
	if err != nil {
		// The transition only asks for a dispatch when the queue is non-empty.
		s.logger.Error("dispatch on empty queue", logger.Error(err))
		return
	}

	s.dispatched++
	s.logger.Debug("dispatching task",
		logger.TaskID(task.ID),
		logger.Queued(s.queue.Len()))

	task.Run()
}

func (s *Scheduler) startTimer() {
	if s.ticker != nil {
		s.stopTimer()
	}

	t := s.clock.NewTicker(s.interval)
	done := make(chan struct{})
	s.ticker = t
	s.tickerDone = done

	go s.loop(t, done)
}

func (s *Scheduler) stopTimer() {
	if s.ticker == nil {
		return
	}

	s.ticker.Stop()
	close(s.tickerDone)
	s.ticker = nil
	s.tickerDone = nil
}

func (s *Scheduler) loop(t Ticker, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-t.C():
			s.handleTick(t)
		}
	}
}

// handleTick ignores ticks from a ticker that has since been torn down.
func (s *Scheduler) handleTick(t Ticker) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != t {
		return
	}

	next, fx := s.state.onTick(s.queue.Len())
	s.apply(next, fx, uuid.Nil)
}
