package throttle

// state holds the scheduler flags. The zero value is not the initial state;
// use initialState.
type state struct {
	running  bool // accepting dispatch
	waiting  bool // timer torn down, or about to be
	waitOnce bool // one idle tick already observed
}

// effects lists the side effects a transition asks the scheduler to perform,
// in this order: stop timer, start timer, dispatch one task, emit signals.
type effects struct {
	stopTimer  bool
	startTimer bool
	dispatch   bool
	signals    []Signal
}

func (e *effects) emit(sig Signal) {
	e.signals = append(e.signals, sig)
}

func initialState() state {
	return state{waiting: true}
}

// onSchedule runs after a task has been enqueued; queued includes it.
func (s state) onSchedule(queued int) (state, effects) {
	var fx effects
	s = s.unwait(queued, &fx)
	fx.emit(SignalScheduled)
	return s, fx
}

func (s state) onStart(queued int) (state, effects) {
	var fx effects
	s.running = true
	if queued > 0 {
		s = s.unwait(queued, &fx)
	}
	return s, fx
}

func (s state) onStop() (state, effects) {
	var fx effects
	fx.stopTimer = true
	s.waiting = true
	s.waitOnce = false
	s.running = false
	fx.emit(SignalStop)
	return s, fx
}

func (s state) onTick(queued int) (state, effects) {
	var fx effects
	s = s.tick(queued, &fx)
	return s, fx
}

// unwait restarts the timer when running and idle, then dispatches at once so
// the first task after waking does not wait a full interval. waitOnce is only
// cleared on this path; a Schedule landing between the arming tick and the
// teardown tick leaves it armed.
func (s state) unwait(queued int, fx *effects) state {
	if !s.running || !s.waiting {
		return s
	}

	s.waiting = false
	s.waitOnce = false
	fx.emit(SignalUnwait)
	fx.startTimer = true

	return s.tick(queued, fx)
}

func (s state) tick(queued int, fx *effects) state {
	if queued <= 0 {
		return s.idle(fx)
	}
	if s.running {
		fx.dispatch = true
	}
	return s
}

// idle tears the timer down on the second consecutive empty tick.
func (s state) idle(fx *effects) state {
	if s.waitOnce {
		fx.stopTimer = true
		s.waiting = true
		s.waitOnce = false
		fx.emit(SignalWait)
		return s
	}

	s.waitOnce = true
	return s
}
