// Package motion moves the player avatar along the road one discrete jump at
// a time and reports jump lifecycle events.
package motion

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/lanejump/internal/core"
)

var (
	// ErrInvalidDuration is returned for a non-positive jump duration.
	ErrInvalidDuration = errors.New("motion: jump duration must be positive")
	// ErrInvalidStep is returned when a jump is not one or two tiles.
	ErrInvalidStep = errors.New("motion: step must be 1 or 2")
)

// Config controls jump timing.
type Config struct {
	Duration float64 // Seconds per jump
	JumpRate float64 // Playback rate of the skeletal jump clip
}

// DefaultConfig returns the stock jump timing.
func DefaultConfig() Config {
	return Config{
		Duration: 0.1,
		JumpRate: 3.5,
	}
}

// Validate checks the config for values that would break interpolation.
func (c Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidDuration, c.Duration)
	}
	return nil
}

// Snapshot is a read-only view of the actor's motion.
type Snapshot struct {
	Position    core.Vec3
	Target      core.Vec3
	Steps       int     // Cumulative steps committed this round
	Moving      bool    // Whether a jump is in flight
	PendingStep int     // Size of the jump in flight (or the last one)
	Elapsed     float64 // Seconds into the current jump
	Duration    float64 // Seconds per jump
}

// Progress returns how far the current jump is along, in [0, 1].
func (s Snapshot) Progress() float64 {
	if !s.Moving || s.Duration <= 0 {
		return 0
	}
	p := s.Elapsed / s.Duration
	if p > 1 {
		return 1
	}
	return p
}

// Controller owns one actor's position and animation state.
type Controller struct {
	cfg      Config
	body     Player
	skeleton Player
	bus      Bus

	origin      core.Vec3
	position    core.Vec3
	target      core.Vec3
	steps       int
	moving      bool
	pendingStep int
	elapsed     float64
	speed       float64
	inputActive bool
}

// New creates a controller. body and skeleton may be nil.
func New(cfg Config, body, skeleton Player) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		cfg:      cfg,
		body:     body,
		skeleton: skeleton,
	}, nil
}

// Subscribe registers h for JumpStart and JumpEnd events.
func (c *Controller) Subscribe(h Handler) {
	c.bus.Subscribe(h)
}

// JumpByStep starts a jump of step tiles. JumpStart is published first, even
// when a jump is already in flight; in that case the request is dropped.
func (c *Controller) JumpByStep(step int) error {
	if step != 1 && step != 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidStep, step)
	}

	c.bus.Publish(JumpStart{})
	if c.moving {
		return nil
	}

	c.target = c.position.AddX(float64(step))
	c.moving = true
	c.pendingStep = step
	c.elapsed = 0
	c.speed = float64(step) / c.cfg.Duration

	playAt(c.skeleton, ClipJump, c.cfg.JumpRate)
	play(c.body, bodyClip(step))

	// The counter tracks committed jumps, not arrivals.
	c.steps += step
	return nil
}

// Update advances the jump in flight by dt seconds.
func (c *Controller) Update(dt float64) {
	if !c.moving {
		return
	}

	c.elapsed += dt
	if c.elapsed > c.cfg.Duration {
		c.position = c.target
		c.moving = false
		play(c.skeleton, ClipIdle)
		c.bus.Publish(JumpEnd{Steps: c.steps})
		return
	}
	c.position = c.position.AddX(c.speed * dt)
}

// Reset puts the actor back on the spawn tile with a zero step count.
func (c *Controller) Reset() {
	c.position = c.origin
	c.target = c.origin
	c.steps = 0
	c.moving = false
	c.pendingStep = 0
	c.elapsed = 0
	c.speed = 0
	play(c.skeleton, ClipIdle)
}

// SetInputActive enables or disables delivery of player input.
func (c *Controller) SetInputActive(active bool) {
	c.inputActive = active
}

// InputActive reports whether player input should reach JumpByStep.
func (c *Controller) InputActive() bool {
	return c.inputActive
}

// Snapshot returns the current motion state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Position:    c.position,
		Target:      c.target,
		Steps:       c.steps,
		Moving:      c.moving,
		PendingStep: c.pendingStep,
		Elapsed:     c.elapsed,
		Duration:    c.cfg.Duration,
	}
}
