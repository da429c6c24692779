package motion

import (
	"errors"
	"testing"
)

// recorder is a RatePlayer that remembers what it was asked to play.
type recorder struct {
	clips []string
	rates map[string]float64
}

func (r *recorder) Play(clip string) {
	r.clips = append(r.clips, clip)
}

func (r *recorder) SetRate(clip string, rate float64) {
	if r.rates == nil {
		r.rates = make(map[string]float64)
	}
	r.rates[clip] = rate
}

func (r *recorder) last() string {
	if len(r.clips) == 0 {
		return ""
	}
	return r.clips[len(r.clips)-1]
}

// bodyOnly has no rate capability.
type bodyOnly struct {
	clips []string
}

func (b *bodyOnly) Play(clip string) {
	b.clips = append(b.clips, clip)
}

func testConfig() Config {
	return Config{Duration: 0.25, JumpRate: 3.5}
}

func newTestController(t *testing.T) (*Controller, *bodyOnly, *recorder, *[]Event) {
	t.Helper()
	body := &bodyOnly{}
	skel := &recorder{}
	c, err := New(testConfig(), body, skel)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	var events []Event
	c.Subscribe(func(e Event) { events = append(events, e) })
	return c, body, skel, &events
}

// land ticks the controller until the jump in flight ends.
func land(t *testing.T, c *Controller) {
	t.Helper()
	for i := 0; i < 100 && c.Snapshot().Moving; i++ {
		c.Update(0.125)
	}
	if c.Snapshot().Moving {
		t.Fatal("jump never landed")
	}
}

func TestJumpByStepStartsMotion(t *testing.T) {
	c, body, skel, events := newTestController(t)

	if err := c.JumpByStep(2); err != nil {
		t.Fatalf("JumpByStep() failed: %v", err)
	}

	s := c.Snapshot()
	if !s.Moving || s.PendingStep != 2 || s.Elapsed != 0 {
		t.Errorf("unexpected motion state after jump: %+v", s)
	}
	if s.Target.X != 2 {
		t.Errorf("target X = %f, expected 2", s.Target.X)
	}
	if s.Steps != 2 {
		t.Errorf("Steps should increase at call time, got %d", s.Steps)
	}
	if len(*events) != 1 {
		t.Fatalf("expected one event, got %d", len(*events))
	}
	if _, ok := (*events)[0].(JumpStart); !ok {
		t.Errorf("first event = %T, expected JumpStart", (*events)[0])
	}
	if body.clips[len(body.clips)-1] != ClipTwoStep {
		t.Errorf("body clip = %q, expected %q", body.clips[len(body.clips)-1], ClipTwoStep)
	}
	if skel.last() != ClipJump || skel.rates[ClipJump] != 3.5 {
		t.Errorf("skeleton should play %q at 3.5, got %q at %f", ClipJump, skel.last(), skel.rates[ClipJump])
	}
}

func TestJumpInterpolatesAndLands(t *testing.T) {
	c, _, skel, events := newTestController(t)
	c.JumpByStep(1)

	// speed = 1 / 0.25 = 4 tiles per second
	c.Update(0.125)
	if x := c.Snapshot().Position.X; x != 0.5 {
		t.Errorf("after first tick X = %f, expected 0.5", x)
	}
	c.Update(0.125)
	if !c.Snapshot().Moving {
		t.Fatal("jump should still be in flight when elapsed == duration")
	}
	c.Update(0.125)

	s := c.Snapshot()
	if s.Moving {
		t.Fatal("jump should land once elapsed exceeds duration")
	}
	if s.Position.X != 1 {
		t.Errorf("landed X = %f, expected exactly 1", s.Position.X)
	}
	if skel.last() != ClipIdle {
		t.Errorf("skeleton should return to %q, got %q", ClipIdle, skel.last())
	}
	if len(*events) != 2 {
		t.Fatalf("expected JumpStart and JumpEnd, got %d events", len(*events))
	}
	end, ok := (*events)[1].(JumpEnd)
	if !ok {
		t.Fatalf("second event = %T, expected JumpEnd", (*events)[1])
	}
	if end.Steps != 1 {
		t.Errorf("JumpEnd.Steps = %d, expected 1", end.Steps)
	}
}

func TestJumpWhileMovingIsDropped(t *testing.T) {
	c, body, _, events := newTestController(t)
	c.JumpByStep(1)
	c.Update(0.125)
	before := c.Snapshot()
	clips := len(body.clips)

	if err := c.JumpByStep(2); err != nil {
		t.Fatalf("JumpByStep() failed: %v", err)
	}

	after := c.Snapshot()
	if after != before {
		t.Errorf("dropped jump changed motion state:\nbefore %+v\nafter  %+v", before, after)
	}
	if len(body.clips) != clips {
		t.Error("dropped jump should not trigger animations")
	}
	if len(*events) != 2 {
		t.Fatalf("expected two JumpStart events, got %d", len(*events))
	}
	for i, e := range *events {
		if _, ok := e.(JumpStart); !ok {
			t.Errorf("event %d = %T, expected JumpStart", i, e)
		}
	}
}

func TestConsecutiveJumpsAccumulate(t *testing.T) {
	c, _, _, events := newTestController(t)

	c.JumpByStep(1)
	land(t, c)
	c.JumpByStep(2)
	land(t, c)

	s := c.Snapshot()
	if s.Position.X != 3 || s.Steps != 3 {
		t.Errorf("after 1+2 jumps: X=%f Steps=%d, expected 3 and 3", s.Position.X, s.Steps)
	}
	last := (*events)[len(*events)-1].(JumpEnd)
	if last.Steps != 3 {
		t.Errorf("last JumpEnd.Steps = %d, expected 3", last.Steps)
	}
}

func TestInvalidStep(t *testing.T) {
	c, _, _, events := newTestController(t)

	for _, step := range []int{0, 3, -1} {
		if err := c.JumpByStep(step); !errors.Is(err, ErrInvalidStep) {
			t.Errorf("JumpByStep(%d) error = %v, expected ErrInvalidStep", step, err)
		}
	}
	if len(*events) != 0 {
		t.Errorf("invalid steps should not publish, got %d events", len(*events))
	}
}

func TestNewRejectsBadDuration(t *testing.T) {
	for _, d := range []float64{0, -0.1} {
		_, err := New(Config{Duration: d}, nil, nil)
		if !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("New() with duration %f error = %v, expected ErrInvalidDuration", d, err)
		}
	}
}

func TestNilPlayersAreSafe(t *testing.T) {
	c, err := New(DefaultConfig(), nil, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	c.JumpByStep(1)
	for i := 0; i < 10; i++ {
		c.Update(1.0 / 60)
	}
	c.Reset()
}

func TestReset(t *testing.T) {
	c, _, skel, _ := newTestController(t)
	c.JumpByStep(2)
	land(t, c)
	c.JumpByStep(1)
	c.Update(0.125)

	c.Reset()

	s := c.Snapshot()
	if s.Position.X != 0 || s.Steps != 0 || s.Moving {
		t.Errorf("Reset left %+v", s)
	}
	if skel.last() != ClipIdle {
		t.Errorf("Reset should play %q, got %q", ClipIdle, skel.last())
	}
}

func TestInputActive(t *testing.T) {
	c, _, _, _ := newTestController(t)
	if c.InputActive() {
		t.Error("input should start disabled")
	}
	c.SetInputActive(true)
	if !c.InputActive() {
		t.Error("SetInputActive(true) had no effect")
	}
}

func TestSnapshotProgress(t *testing.T) {
	tests := []struct {
		s    Snapshot
		want float64
	}{
		{Snapshot{Moving: false, Elapsed: 0.1, Duration: 0.2}, 0},
		{Snapshot{Moving: true, Elapsed: 0.1, Duration: 0.2}, 0.5},
		{Snapshot{Moving: true, Elapsed: 0.5, Duration: 0.2}, 1},
	}
	for _, tc := range tests {
		if got := tc.s.Progress(); got != tc.want {
			t.Errorf("Progress() for %+v = %f, expected %f", tc.s, got, tc.want)
		}
	}
}

func TestBusOrder(t *testing.T) {
	var bus Bus
	var order []int
	bus.Subscribe(func(Event) { order = append(order, 1) })
	bus.Subscribe(nil)
	bus.Subscribe(func(Event) { order = append(order, 2) })

	bus.Publish(JumpStart{})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("handlers ran in order %v, expected [1 2]", order)
	}
}
