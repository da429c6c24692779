package sched

import "testing"

func TestWatchdogFiresOncePerArm(t *testing.T) {
	c := NewClock()
	fired := 0
	w := NewWatchdog(c, func() { fired++ })

	w.Arm(1)
	if !w.Armed() {
		t.Fatal("Armed() should be true after Arm")
	}
	c.Advance(0.5)
	c.Advance(0.5)
	c.Advance(3)

	if fired != 1 {
		t.Errorf("watchdog fired %d times, expected 1", fired)
	}
	if w.Armed() {
		t.Error("Armed() should be false after firing")
	}
}

func TestWatchdogCancel(t *testing.T) {
	c := NewClock()
	fired := 0
	w := NewWatchdog(c, func() { fired++ })

	w.Cancel() // not armed: no-op
	w.Arm(1)
	c.Advance(0.5)
	w.Cancel()
	w.Cancel()
	c.Advance(2)

	if fired != 0 {
		t.Errorf("cancelled watchdog fired %d times", fired)
	}
}

func TestWatchdogRearmReplaces(t *testing.T) {
	c := NewClock()
	fired := 0
	w := NewWatchdog(c, func() { fired++ })

	w.Arm(1)
	c.Advance(0.75)
	w.Arm(1) // restarts the period
	c.Advance(0.5)
	if fired != 0 {
		t.Fatal("watchdog fired on the replaced schedule")
	}
	c.Advance(0.5)
	if fired != 1 {
		t.Errorf("watchdog fired %d times, expected 1", fired)
	}
	if c.Pending() != 0 {
		t.Errorf("re-arming left %d stale callbacks", c.Pending())
	}
}

func TestWatchdogRearmFromCallback(t *testing.T) {
	c := NewClock()
	fired := 0
	var w *Watchdog
	w = NewWatchdog(c, func() {
		fired++
		if fired == 1 {
			w.Arm(1)
		}
	})

	w.Arm(1)
	c.Advance(1)
	if !w.Armed() {
		t.Fatal("re-arming inside the callback should leave the watchdog armed")
	}
	c.Advance(1)
	if fired != 2 {
		t.Errorf("fired %d times, expected 2", fired)
	}
}
