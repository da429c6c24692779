// Package sched provides tick-driven timers for the game loop.
// Nothing here runs on its own goroutine: time only moves when the loop calls
// Clock.Advance, so callbacks fire on the same thread as the motion update.
package sched

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

type entry struct {
	handle Handle
	due    float64
	fn     func()
}

// Clock is a cooperative single-shot timer service measured in seconds.
type Clock struct {
	now     float64
	next    Handle
	pending []entry
}

// NewClock creates a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the total time advanced so far.
func (c *Clock) Now() float64 {
	return c.now
}

// Schedule runs fn once after delay seconds of advanced time.
func (c *Clock) Schedule(delay float64, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	c.next++
	c.pending = append(c.pending, entry{handle: c.next, due: c.now + delay, fn: fn})
	return c.next
}

// Cancel drops a pending callback. Unknown or already fired handles are ignored.
func (c *Clock) Cancel(h Handle) {
	for i, e := range c.pending {
		if e.handle == h {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}

// Pending returns how many callbacks are waiting to fire.
func (c *Clock) Pending() int {
	return len(c.pending)
}

// Advance moves time forward by dt and fires every callback that became due,
// earliest first and in scheduling order for ties. Callbacks may schedule or
// cancel other callbacks; anything they schedule that is already due fires in
// the same Advance.
func (c *Clock) Advance(dt float64) {
	if dt > 0 {
		c.now += dt
	}
	for {
		idx := c.nextDue()
		if idx < 0 {
			return
		}
		e := c.pending[idx]
		c.pending = append(c.pending[:idx], c.pending[idx+1:]...)
		e.fn()
	}
}

// nextDue returns the index of the earliest due entry, or -1.
func (c *Clock) nextDue() int {
	best := -1
	for i, e := range c.pending {
		if e.due > c.now {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := c.pending[best]
		if e.due < b.due || (e.due == b.due && e.handle < b.handle) {
			best = i
		}
	}
	return best
}

// Reset drops every pending callback and rewinds time to zero.
func (c *Clock) Reset() {
	c.now = 0
	c.pending = c.pending[:0]
}
