package throttle

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/throttle/pkg/logger"
)

// manualTicker never fires on its own; tests deliver ticks through tick().
type manualTicker struct {
	period  time.Duration
	stopped atomic.Bool
}

func (m *manualTicker) C() <-chan time.Time { return nil }
func (m *manualTicker) Stop()               { m.stopped.Store(true) }

type manualClock struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

func (c *manualClock) NewTicker(d time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTicker{period: d}
	c.tickers = append(c.tickers, t)
	return t
}

func (c *manualClock) Now() time.Time { return time.Unix(0, 0) }

func (c *manualClock) created() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

type signalLog struct {
	mu      sync.Mutex
	signals []Signal
}

func (l *signalLog) Observe(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.signals = append(l.signals, e.Signal)
}

func (l *signalLog) take() []Signal {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.signals
	l.signals = nil
	return out
}

type harness struct {
	t     *testing.T
	s     *Scheduler
	clock *manualClock
	log   *signalLog
	ran   chan any
}

func newHarness(t *testing.T, rate int, unit time.Duration) *harness {
	t.Helper()

	h := &harness{
		t:     t,
		clock: &manualClock{},
		log:   &signalLog{},
		ran:   make(chan any, 64),
	}
	s, err := New(rate, unit,
		WithClock(h.clock),
		WithObserver(h.log),
		WithLogger(logger.Discard()),
	)
	require.NoError(t, err)
	h.s = s
	t.Cleanup(func() { _ = s.Close() })
	return h
}

func (h *harness) schedule(arg any) {
	h.t.Helper()
	_, err := h.s.Schedule(func(v any) { h.ran <- v }, arg)
	require.NoError(h.t, err)
}

func (h *harness) ticker() Ticker {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	return h.s.ticker
}

// tick delivers one tick from the live ticker.
func (h *harness) tick() {
	h.t.Helper()
	tk := h.ticker()
	require.NotNil(h.t, tk, "no active timer")
	h.s.handleTick(tk)
}

func (h *harness) expectRun(want any) {
	h.t.Helper()
	select {
	case got := <-h.ran:
		assert.Equal(h.t, want, got)
	case <-time.After(time.Second):
		h.t.Fatalf("task %v was not dispatched", want)
	}
}

func (h *harness) expectNoRun() {
	h.t.Helper()
	select {
	case got := <-h.ran:
		h.t.Fatalf("unexpected dispatch of %v", got)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestScheduler_RateLawWithManualTicks(t *testing.T) {
	h := newHarness(t, 5, time.Second)
	assert.Equal(t, 200*time.Millisecond, h.s.Interval())

	h.schedule(1)
	h.schedule(2)
	h.schedule(3)
	h.expectNoRun()
	assert.Zero(t, h.clock.created(), "no timer before Start")
	assert.Equal(t, []Signal{SignalScheduled, SignalScheduled, SignalScheduled}, h.log.take())

	h.s.Start()
	h.expectRun(1) // immediate dispatch on wake
	require.Equal(t, 1, h.clock.created())
	assert.Equal(t, 200*time.Millisecond, h.clock.tickers[0].period)
	assert.Equal(t, []Signal{SignalUnwait}, h.log.take())

	h.tick()
	h.expectRun(2)
	h.tick()
	h.expectRun(3)
	assert.Zero(t, h.s.Len())

	h.tick() // first idle tick: grace
	assert.NotNil(t, h.ticker())
	assert.True(t, h.s.Stats().WaitOnce)
	assert.Empty(t, h.log.take())

	h.tick() // second idle tick: teardown
	assert.Nil(t, h.ticker())
	assert.True(t, h.clock.tickers[0].stopped.Load())
	assert.Equal(t, []Signal{SignalWait}, h.log.take())

	stats := h.s.Stats()
	assert.True(t, stats.Running)
	assert.True(t, stats.Waiting)
	assert.False(t, stats.WaitOnce)
	assert.False(t, stats.TimerActive)
	assert.Equal(t, uint64(3), stats.Dispatched)
	h.expectNoRun()
}

func TestScheduler_WakeFromIdle(t *testing.T) {
	h := newHarness(t, 10, time.Second)
	h.s.Start()
	assert.Zero(t, h.clock.created(), "empty queue keeps the timer down")
	assert.True(t, h.s.Stats().Waiting)

	h.schedule("a")
	h.expectRun("a")
	assert.Equal(t, []Signal{SignalUnwait, SignalScheduled}, h.log.take())
	assert.Equal(t, 1, h.clock.created())

	// A task arriving while the timer is up waits for the next tick.
	h.schedule("b")
	h.expectNoRun()
	assert.Equal(t, []Signal{SignalScheduled}, h.log.take())
	h.tick()
	h.expectRun("b")
	assert.Equal(t, 1, h.clock.created(), "timer reused")
}

func TestScheduler_StopResume(t *testing.T) {
	h := newHarness(t, 5, time.Second)
	for i := 1; i <= 4; i++ {
		h.schedule(i)
	}

	h.s.Start()
	h.expectRun(1)
	h.tick()
	h.expectRun(2)

	old := h.ticker()
	h.s.Stop()
	assert.Nil(t, h.ticker())
	assert.True(t, old.(*manualTicker).stopped.Load())
	assert.Equal(t, 2, h.s.Len())
	h.log.take()

	// A tick still in flight from the torn-down timer is ignored.
	h.s.handleTick(old)
	h.expectNoRun()
	assert.Equal(t, 2, h.s.Len())

	// Scheduling while stopped queues without dispatch.
	h.schedule(5)
	h.expectNoRun()
	assert.Equal(t, []Signal{SignalScheduled}, h.log.take())

	h.s.Start()
	h.expectRun(3)
	h.tick()
	h.expectRun(4)
	h.tick()
	h.expectRun(5)
	assert.Equal(t, 2, h.clock.created())
}

func TestScheduler_StopSignals(t *testing.T) {
	h := newHarness(t, 5, time.Second)
	h.s.Stop()
	assert.Equal(t, []Signal{SignalStop}, h.log.take())

	h.schedule(1)
	h.s.Start()
	h.expectRun(1)
	h.s.Stop()
	assert.Equal(t, []Signal{SignalScheduled, SignalUnwait, SignalStop}, h.log.take())

	stats := h.s.Stats()
	assert.False(t, stats.Running)
	assert.True(t, stats.Waiting)
	assert.False(t, stats.WaitOnce)
}

func TestScheduler_StaleWaitOnce(t *testing.T) {
	h := newHarness(t, 5, time.Second)
	h.s.Start()

	h.schedule("a")
	h.expectRun("a")
	h.tick() // arms waitOnce
	require.True(t, h.s.Stats().WaitOnce)

	h.schedule("b") // timer still active, waitOnce stays armed
	h.tick()
	h.expectRun("b")
	h.log.take()

	h.tick()
	assert.Nil(t, h.ticker(), "teardown after a single idle tick")
	assert.Equal(t, []Signal{SignalWait}, h.log.take())
}

func TestScheduler_SubscribeReceivesEventsInOrder(t *testing.T) {
	h := newHarness(t, 5, time.Second)
	sub := h.s.Subscribe(t.Context())

	h.schedule(1)
	h.s.Start()
	h.expectRun(1)
	h.tick()
	h.tick()
	h.s.Stop()

	want := []Signal{SignalScheduled, SignalUnwait, SignalWait, SignalStop}
	for i, sig := range want {
		select {
		case msg := <-sub.Receive(t.Context()):
			assert.Equal(t, sig, msg.Data.Signal, "event %d", i)
		case <-time.After(time.Second):
			t.Fatalf("missing event %d (%s)", i, sig)
		}
	}
}

func TestScheduler_ScheduledEventCarriesTaskID(t *testing.T) {
	h := newHarness(t, 5, time.Second)

	var got Event
	h.s.observers = append(h.s.observers, ObserverFunc(func(e Event) {
		if e.Signal == SignalScheduled {
			got = e
		}
	}))

	id, err := h.s.ScheduleFunc(func() {})
	require.NoError(t, err)
	assert.Equal(t, id, got.TaskID)
	assert.Equal(t, 1, got.Queued)
}
