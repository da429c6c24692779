// Package lanejump implements the lane-jump arcade game on top of the road,
// motion and round packages.
package lanejump

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanejump/internal/config"
	"github.com/vovakirdan/lanejump/internal/core"
	"github.com/vovakirdan/lanejump/internal/motion"
	"github.com/vovakirdan/lanejump/internal/road"
	"github.com/vovakirdan/lanejump/internal/round"
	"github.com/vovakirdan/lanejump/internal/sched"
)

// ID is the identifier used for score storage.
const ID = "lanejump"

// Result is a finished round together with the seed of its game.
type Result struct {
	round.Outcome
	Seed int64
}

// Options configures a Game.
type Options struct {
	Config      config.LaneJumpConfig
	Logger      *log.Logger  // Defaults to a discarding logger
	OnRoundOver func(Result) // Called synchronously when a round ends

	// OnTransition observes every round state change, GameOver included.
	OnTransition func(from, to round.State)
}

// Game implements the lane-jump game logic for the platform loop.
type Game struct {
	opts    Options
	logger  *log.Logger
	runtime core.RuntimeConfig

	clock    *sched.Clock
	ctrl     *motion.Controller
	machine  *round.Machine
	body     *clipPlayer
	skeleton *clipPlayer
	blocks   *blockSet
	menu     *menu
	label    *label

	paused   bool
	last     *Result
	tickTime float64
}

// New creates a game. The config is validated here so Reset cannot fail on it.
func New(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("lanejump: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{opts: opts, logger: logger}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Jump"
}

// Reset builds a fresh world seeded from runtime.Seed and shows the menu.
// A zero seed is replaced with the current time.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	g.runtime = runtime
	g.tickTime = runtime.TickSeconds()
	g.paused = false
	g.last = nil

	// Reuse the clock so timers armed by the previous round cannot fire.
	if g.clock == nil {
		g.clock = sched.NewClock()
	} else {
		g.clock.Reset()
	}
	g.body = newClipPlayer()
	g.skeleton = newClipPlayer()
	g.blocks = &blockSet{}
	g.menu = &menu{}
	g.label = &label{text: "0"}

	ctrl, err := motion.New(g.opts.Config.MotionSettings(), g.body, g.skeleton)
	if err != nil {
		return fmt.Errorf("lanejump: %w", err)
	}
	g.ctrl = ctrl

	machine, err := round.New(round.Options{
		Config:       g.opts.Config.RoundSettings(),
		Rand:         rand.New(rand.NewSource(runtime.Seed)),
		Clock:        g.clock,
		Actor:        ctrl,
		Blocks:       g.blocks,
		Menu:         g.menu,
		Label:        g.label,
		OnTransition: g.onTransition,
		OnRoundOver:  g.onRoundOver,
	})
	if err != nil {
		return fmt.Errorf("lanejump: %w", err)
	}
	g.machine = machine
	ctrl.Subscribe(machine.HandleEvent)

	g.logger.Debug("game reset", "seed", runtime.Seed, "road", machine.Road().String())
	return nil
}

func (g *Game) onTransition(from, to round.State) {
	g.logger.Debug("round state", "from", from, "to", to)
	if g.opts.OnTransition != nil {
		g.opts.OnTransition(from, to)
	}
}

func (g *Game) onRoundOver(o round.Outcome) {
	res := Result{Outcome: o, Seed: g.runtime.Seed}
	g.last = &res
	g.logger.Info("round over",
		"round", o.Round,
		"steps", o.Steps,
		"reason", o.Reason,
		"seed", g.runtime.Seed,
	)
	if g.opts.OnRoundOver != nil {
		g.opts.OnRoundOver(res)
	}
}

// Step advances the game by one tick: input, then motion, then timers.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.machine.State() == round.Playing {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused, "timers", g.clock.Pending())
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionStart) {
		g.machine.Start()
	}
	if g.ctrl.InputActive() {
		if in.Has(core.ActionHop) {
			g.jump(1)
		}
		if in.Has(core.ActionLeap) {
			g.jump(2)
		}
	}

	dt := g.tickTime
	g.ctrl.Update(dt)
	g.clock.Advance(dt)
	g.body.advance(dt)
	g.skeleton.advance(dt)

	return core.StepResult{State: g.State()}
}

func (g *Game) jump(step int) {
	if err := g.ctrl.JumpByStep(step); err != nil {
		g.logger.Error("jump rejected", "step", step, "error", err)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Steps:   g.ctrl.Snapshot().Steps,
		Playing: g.machine.State() == round.Playing,
		Paused:  g.paused,
		Rounds:  g.machine.Rounds(),
	}
}

// RoundState returns the state of the round machine.
func (g *Game) RoundState() round.State {
	return g.machine.State()
}

// Road returns the road of the current round.
func (g *Game) Road() road.Road {
	return g.machine.Road()
}

// Motion returns the avatar's motion state.
func (g *Game) Motion() motion.Snapshot {
	return g.ctrl.Snapshot()
}

// InputReady reports whether jump input is currently accepted.
func (g *Game) InputReady() bool {
	return g.ctrl.InputActive()
}

// LastResult returns the most recent finished round, if any.
func (g *Game) LastResult() (Result, bool) {
	if g.last == nil {
		return Result{}, false
	}
	return *g.last, true
}

// Seed returns the seed the current world was built from.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}
