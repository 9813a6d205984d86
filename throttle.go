package panzoom

// throttle rate-limits invocations of fn with leading and trailing edges:
// the first call in a window fires immediately, further calls within the
// window collapse into one trailing invocation when the window elapses. The
// trailing invocation opens a new window, so a sustained burst fires once
// per interval. Time advances through update, driven by the engine tick.
type throttle struct {
	interval float64
	fn       func()

	active  bool
	elapsed float64
	pending bool
}

func newThrottle(interval float64, fn func()) *throttle {
	return &throttle{interval: interval, fn: fn}
}

// call requests an invocation. Fires immediately when idle; otherwise marks
// a trailing invocation for the end of the current window.
func (t *throttle) call() {
	if t.interval <= 0 {
		t.fn()
		return
	}
	if !t.active {
		t.active = true
		t.elapsed = 0
		t.fn()
		return
	}
	t.pending = true
}

// update advances the window. Called once per tick.
func (t *throttle) update(dt float64) {
	if !t.active {
		return
	}
	t.elapsed += dt
	if t.elapsed < t.interval {
		return
	}
	if t.pending {
		t.pending = false
		t.elapsed = 0
		t.fn()
		return
	}
	t.active = false
}

// cancel drops any pending trailing invocation and resets to idle.
func (t *throttle) cancel() {
	t.active = false
	t.pending = false
	t.elapsed = 0
}
