package lanejump

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/lanejump/internal/config"
	"github.com/vovakirdan/lanejump/internal/core"
	"github.com/vovakirdan/lanejump/internal/road"
	"github.com/vovakirdan/lanejump/internal/round"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 20,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, length int, seed int64, onRoundOver func(Result)) *Game {
	t.Helper()
	cfg := config.DefaultLaneJumpConfig()
	cfg.Road.Length = length
	g, err := New(Options{Config: cfg, OnRoundOver: onRoundOver})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := g.Reset(testRuntime(seed)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func idle(g *Game, ticks int) {
	for i := 0; i < ticks; i++ {
		g.Step(frame())
	}
}

// startRound dismisses the menu and waits out the input debounce.
func startRound(t *testing.T, g *Game) {
	t.Helper()
	g.Step(frame(core.ActionStart))
	idle(g, 3)
	if g.RoundState() != round.Playing {
		t.Fatalf("round did not start, state %s", g.RoundState())
	}
}

// jumpAndLand issues a jump and ticks until it lands.
func jumpAndLand(t *testing.T, g *Game, action core.Action) {
	t.Helper()
	g.Step(frame(action))
	for i := 0; i < 20 && g.Motion().Moving; i++ {
		g.Step(frame())
	}
	if g.Motion().Moving {
		t.Fatal("jump never landed")
	}
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(t, 50, 12345, nil)
	g2 := newTestGame(t, 50, 12345, nil)

	if g1.Road().String() != g2.Road().String() {
		t.Fatalf("same seed produced different roads:\n%s\n%s", g1.Road(), g2.Road())
	}

	inputs := []core.Action{core.ActionHop, core.ActionLeap, core.ActionHop, core.ActionHop}
	for _, g := range []*Game{g1, g2} {
		startRound(t, g)
		for _, a := range inputs {
			jumpAndLand(t, g, a)
		}
	}

	if g1.State() != g2.State() {
		t.Errorf("Determinism failed: %+v vs %+v", g1.State(), g2.State())
	}
}

func TestGameSafePathRunsOffTheEnd(t *testing.T) {
	var results []Result
	g := newTestGame(t, 20, 7, func(r Result) { results = append(results, r) })
	r := g.Road()
	startRound(t, g)

	for len(results) == 0 {
		pos := g.Motion().Steps
		if r.At(pos+1) == road.None && pos+1 < r.Len() {
			jumpAndLand(t, g, core.ActionLeap)
		} else {
			jumpAndLand(t, g, core.ActionHop)
		}
		if pos > r.Len() {
			t.Fatal("walked past the road without ending the round")
		}
	}

	res := results[0]
	if res.Reason != round.ReasonOffRoad || res.Steps != 20 || res.Seed != 7 {
		t.Errorf("result = %+v, expected off_road at 20 steps with seed 7", res)
	}
	if g.RoundState() != round.Init {
		t.Errorf("RoundState() = %s, expected Init", g.RoundState())
	}
	if last, ok := g.LastResult(); !ok || last != res {
		t.Errorf("LastResult() = %+v, %v", last, ok)
	}
}

func TestGameInputIgnoredBeforeStart(t *testing.T) {
	g := newTestGame(t, 50, 1, nil)

	g.Step(frame(core.ActionHop))
	idle(g, 5)

	if g.Motion().Steps != 0 || g.Motion().Moving {
		t.Error("jump input should be ignored while the menu is up")
	}
}

func TestGameInputDebounce(t *testing.T) {
	g := newTestGame(t, 50, 1, nil)

	// Start and hop in the same frame: the hop belongs to the menu click.
	g.Step(frame(core.ActionStart, core.ActionHop))
	if g.Motion().Steps != 0 {
		t.Error("hop in the start frame should be swallowed")
	}
}

func TestGameTimeout(t *testing.T) {
	g := newTestGame(t, 50, 3, nil)
	startRound(t, g)

	idle(g, 40) // 2 seconds at 20 ticks per second

	res, ok := g.LastResult()
	if !ok || res.Reason != round.ReasonTimeout {
		t.Fatalf("expected a timeout, got %+v (%v)", res, ok)
	}
	if g.State().Rounds != 1 {
		t.Errorf("Rounds = %d, expected 1", g.State().Rounds)
	}
}

func TestGamePauseFreezesTimers(t *testing.T) {
	g := newTestGame(t, 50, 3, nil)
	startRound(t, g)

	g.Step(frame(core.ActionPause))
	idle(g, 100)
	if g.RoundState() != round.Playing || !g.State().Paused {
		t.Fatalf("paused round should keep playing, state %s", g.RoundState())
	}

	g.Step(frame(core.ActionPause))
	idle(g, 40)
	if _, ok := g.LastResult(); !ok {
		t.Error("watchdog should resume after unpausing")
	}
}

func TestGamePauseIgnoredInMenu(t *testing.T) {
	g := newTestGame(t, 50, 3, nil)
	g.Step(frame(core.ActionPause))

	if g.State().Paused {
		t.Error("pause should only apply while playing")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 50, 9, nil)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "L A N E   J U M P") {
		t.Error("menu should be rendered in Init")
	}
	if !strings.ContainsRune(out, BlockTop) {
		t.Error("road blocks should be rendered")
	}

	startRound(t, g)
	g.Render(screen)
	out = screen.String()
	if strings.Contains(out, "L A N E   J U M P") {
		t.Error("menu should be hidden while playing")
	}
	if !strings.ContainsRune(out, AvatarIdle) {
		t.Error("idle avatar should be rendered")
	}
	if !strings.Contains(out, "Steps: 0") {
		t.Error("step counter should be rendered")
	}
}

func TestGameRenderMarksGaps(t *testing.T) {
	screen := core.NewScreen(80, 24)
	groundY := screen.Height()/2 + 2

	for seed := int64(1); seed <= 20; seed++ {
		g := newTestGame(t, 50, seed, nil)
		startRound(t, g)
		g.Render(screen)

		checked := 0
		for _, gap := range g.Road().Gaps() {
			x := tileX(float64(gap), 0) + 1
			if x >= screen.Width() {
				break
			}
			if got := screen.Get(x, groundY+1); got != GapChar {
				t.Errorf("seed %d: gap %d drawn as %q, expected %q", seed, gap, got, GapChar)
			}
			checked++
		}
		if checked > 0 {
			return
		}
	}
	t.Fatal("no seed produced a gap inside the first screen")
}

func TestGameRenderLastResult(t *testing.T) {
	g := newTestGame(t, 50, 3, nil)
	startRound(t, g)
	idle(g, 40)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too slow") {
		t.Errorf("menu should describe the last round:\n%s", screen.String())
	}
}

func TestGameResetDropsArmedTimers(t *testing.T) {
	var results []Result
	g := newTestGame(t, 50, 3, func(r Result) { results = append(results, r) })
	startRound(t, g)

	if err := g.Reset(testRuntime(3)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if n := g.clock.Pending(); n != 0 {
		t.Errorf("Pending() = %d after Reset, expected 0", n)
	}

	idle(g, 40)
	if _, ok := g.LastResult(); len(results) != 0 || ok {
		t.Errorf("watchdog from the previous round fired: %+v", results)
	}
	if g.RoundState() != round.Init {
		t.Errorf("state = %s, expected Init", g.RoundState())
	}
}

func TestGameResetZeroSeed(t *testing.T) {
	g := newTestGame(t, 50, 0, nil)
	if g.Seed() == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultLaneJumpConfig()
	cfg.Round.Timeout = 0

	_, err := New(Options{Config: cfg})
	if !errors.Is(err, round.ErrInvalidTimeout) {
		t.Errorf("New() error = %v, expected ErrInvalidTimeout", err)
	}
}

func TestGameIdentity(t *testing.T) {
	g := newTestGame(t, 50, 1, nil)
	if g.ID() != "lanejump" || g.Title() != "Lane Jump" {
		t.Errorf("unexpected identity %q / %q", g.ID(), g.Title())
	}
}

func TestGameTransitionsAndInputReady(t *testing.T) {
	var seen []round.State
	cfg := config.DefaultLaneJumpConfig()
	g, err := New(Options{
		Config:       cfg,
		OnTransition: func(_, to round.State) { seen = append(seen, to) },
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := g.Reset(testRuntime(5)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if g.InputReady() {
		t.Error("input should be off in the menu")
	}

	startRound(t, g)
	if !g.InputReady() {
		t.Error("input should be on after the debounce")
	}
	idle(g, 40)

	want := []round.State{round.Init, round.Playing, round.GameOver, round.Init}
	if len(seen) != len(want) {
		t.Fatalf("transitions = %v, expected %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("transition %d = %s, expected %s", i, seen[i], want[i])
		}
	}
}
