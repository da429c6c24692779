package motion

// Event is a jump lifecycle notification published by the Controller.
type Event interface {
	motionEvent()
}

// JumpStart is published on every jump request, including ones dropped
// because a jump is already in flight.
type JumpStart struct{}

func (JumpStart) motionEvent() {}

// JumpEnd is published when a jump lands. Steps is the cumulative step count,
// which is also the landing tile index.
type JumpEnd struct {
	Steps int
}

func (JumpEnd) motionEvent() {}

// Handler receives published events.
type Handler func(Event)

// Bus delivers events synchronously, in subscription order, on the caller's
// goroutine.
type Bus struct {
	handlers []Handler
}

// Subscribe registers h for all future events.
func (b *Bus) Subscribe(h Handler) {
	if h == nil {
		return
	}
	b.handlers = append(b.handlers, h)
}

// Publish calls every handler with e before returning.
func (b *Bus) Publish(e Event) {
	for _, h := range b.handlers {
		h(e)
	}
}
