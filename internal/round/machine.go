// Package round runs the round lifecycle: road regeneration, the idle
// watchdog and landing validation.
package round

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/lanejump/internal/core"
	"github.com/vovakirdan/lanejump/internal/motion"
	"github.com/vovakirdan/lanejump/internal/road"
	"github.com/vovakirdan/lanejump/internal/sched"
)

var (
	// ErrInvalidTimeout is returned when the watchdog timeout is not positive.
	ErrInvalidTimeout = errors.New("round: timeout must be positive")
	// ErrInvalidInputDelay is returned when the input-ready delay is not positive.
	ErrInvalidInputDelay = errors.New("round: input delay must be positive")
	// ErrMissingRand is returned by New when no random source is given.
	ErrMissingRand = errors.New("round: random source is required")
	// ErrMissingClock is returned by New when no clock is given.
	ErrMissingClock = errors.New("round: clock is required")
)

// Config holds the round tuning values, in tiles and seconds.
type Config struct {
	RoadLength    int
	Timeout       float64 // Max idle time between jumps
	InputDelay    float64 // Debounce before input is enabled on Playing
	LateralOffset float64 // Y offset of spawned blocks
}

// DefaultConfig returns the stock round settings.
func DefaultConfig() Config {
	return Config{
		RoadLength:    50,
		Timeout:       1.0,
		InputDelay:    0.1,
		LateralOffset: -1.5,
	}
}

// Validate rejects settings that cannot produce a playable round.
func (c Config) Validate() error {
	if c.RoadLength <= 0 {
		return fmt.Errorf("%w: got %d", road.ErrInvalidLength, c.RoadLength)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidTimeout, c.Timeout)
	}
	if c.InputDelay <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidInputDelay, c.InputDelay)
	}
	return nil
}

// Options wires a Machine to its collaborators. Actor, Blocks, Menu, Label and
// both hooks are optional.
type Options struct {
	Config Config
	Rand   road.Coin
	Clock  *sched.Clock

	Actor  Actor
	Blocks BlockFactory
	Menu   Menu
	Label  Label

	OnTransition func(from, to State)
	OnRoundOver  func(Outcome)
}

// Machine owns the round state and the road.
type Machine struct {
	opts     Options
	cfg      Config
	clock    *sched.Clock
	watchdog *sched.Watchdog

	state      State
	road       road.Road
	inputTimer sched.Handle
	lastSteps  int
	rounds     int
}

// New validates the options and enters Init.
func New(opts Options) (*Machine, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.Rand == nil {
		return nil, ErrMissingRand
	}
	if opts.Clock == nil {
		return nil, ErrMissingClock
	}

	m := &Machine{
		opts:  opts,
		cfg:   opts.Config,
		clock: opts.Clock,
	}
	m.watchdog = sched.NewWatchdog(m.clock, m.onTimeout)
	m.setState(Init)
	return m, nil
}

// State returns the current round state.
func (m *Machine) State() State {
	return m.state
}

// Road returns a copy of the current road.
func (m *Machine) Road() road.Road {
	return append(road.Road(nil), m.road...)
}

// Rounds returns how many rounds have ended.
func (m *Machine) Rounds() int {
	return m.rounds
}

// WatchdogArmed reports whether the idle timeout is pending.
func (m *Machine) WatchdogArmed() bool {
	return m.watchdog.Armed()
}

// Start dismisses the pre-round menu. It only acts in Init.
func (m *Machine) Start() bool {
	if m.state != Init {
		return false
	}
	m.setState(Playing)
	return true
}

// HandleEvent consumes jump lifecycle events from the motion controller.
func (m *Machine) HandleEvent(e motion.Event) {
	switch ev := e.(type) {
	case motion.JumpStart:
		// Committed to a jump: no timeout mid-air.
		m.watchdog.Cancel()
	case motion.JumpEnd:
		m.lastSteps = ev.Steps
		m.watchdog.Arm(m.cfg.Timeout)
		m.CheckResult(ev.Steps)
		if m.state == Playing {
			m.setLabel(ev.Steps)
		}
	}
}

// CheckResult ends the round unless index is a Solid tile on the road.
func (m *Machine) CheckResult(index int) {
	if m.road.Landable(index) {
		return
	}
	reason := ReasonGap
	if index >= m.road.Len() {
		reason = ReasonOffRoad
	}
	m.gameOver(reason, index)
}

func (m *Machine) onTimeout() {
	m.gameOver(ReasonTimeout, m.lastSteps)
}

func (m *Machine) gameOver(reason Reason, steps int) {
	m.rounds++
	out := Outcome{
		Round:      m.rounds,
		Steps:      steps,
		Reason:     reason,
		RoadLength: m.road.Len(),
	}
	m.setState(GameOver)
	if m.opts.OnRoundOver != nil {
		m.opts.OnRoundOver(out)
	}
	m.setState(Init)
}

// setState switches to s and runs its entry action. GameOver has none of its
// own; gameOver moves on to Init in the same call.
func (m *Machine) setState(s State) {
	from := m.state
	m.state = s
	if m.opts.OnTransition != nil {
		m.opts.OnTransition(from, s)
	}

	switch s {
	case Init:
		m.watchdog.Cancel()
		m.clock.Cancel(m.inputTimer)
		m.inputTimer = 0
		m.enterInit()
	case Playing:
		m.enterPlaying()
	}
}

func (m *Machine) enterInit() {
	if m.opts.Menu != nil {
		m.opts.Menu.SetVisible(true)
	}
	m.generateRoad()
	m.lastSteps = 0
	if m.opts.Actor != nil {
		m.opts.Actor.SetInputActive(false)
		m.opts.Actor.Reset()
	}
}

func (m *Machine) enterPlaying() {
	if m.opts.Menu != nil {
		m.opts.Menu.SetVisible(false)
	}
	m.setLabel(0)
	// Swallow the click that dismissed the menu before listening for jumps.
	m.inputTimer = m.clock.Schedule(m.cfg.InputDelay, func() {
		m.inputTimer = 0
		if m.opts.Actor != nil {
			m.opts.Actor.SetInputActive(true)
		}
	})
	m.watchdog.Arm(m.cfg.Timeout)
}

func (m *Machine) generateRoad() {
	r, err := road.Generate(m.cfg.RoadLength, m.opts.Rand)
	if err != nil {
		// Length is validated in New.
		return
	}
	m.road = r

	if m.opts.Blocks == nil {
		return
	}
	m.opts.Blocks.Clear()
	for i, kind := range r {
		block, ok := m.opts.Blocks.Spawn(kind)
		if !ok || block == nil {
			continue
		}
		block.Place(core.Vec3{X: float64(i), Y: m.cfg.LateralOffset})
	}
}

func (m *Machine) setLabel(steps int) {
	if m.opts.Label != nil {
		m.opts.Label.SetText(strconv.Itoa(steps))
	}
}
