package sched

// Watchdog is a cancelable single-shot timer. Only the latest Arm counts.
type Watchdog struct {
	clock  *Clock
	fire   func()
	handle Handle
}

// NewWatchdog creates a watchdog that calls fire when an armed period elapses.
func NewWatchdog(clock *Clock, fire func()) *Watchdog {
	return &Watchdog{clock: clock, fire: fire}
}

// Arm schedules fire after d seconds, replacing any pending schedule.
func (w *Watchdog) Arm(d float64) {
	w.Cancel()
	var h Handle
	h = w.clock.Schedule(d, func() {
		if w.handle != h {
			return
		}
		w.handle = 0
		if w.fire != nil {
			w.fire()
		}
	})
	w.handle = h
}

// Cancel stops a pending schedule. Safe to call when nothing is armed.
func (w *Watchdog) Cancel() {
	if w.handle == 0 {
		return
	}
	w.clock.Cancel(w.handle)
	w.handle = 0
}

// Armed reports whether a schedule is pending.
func (w *Watchdog) Armed() bool {
	return w.handle != 0
}
