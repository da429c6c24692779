package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanejump/internal/config"
	"github.com/vovakirdan/lanejump/internal/core"
	"github.com/vovakirdan/lanejump/internal/games/lanejump"
	"github.com/vovakirdan/lanejump/internal/round"
)

var (
	flagJumps  string
	flagRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted round without a terminal UI",
	Long: `Play one round headless with a fixed list of jumps and print the road,
every state transition and the outcome. With the same seed and jumps the
output is identical on every run.

Each jump is 1 (hop) or 2 (leap). Once the script runs out the avatar
stands still until the round timeout ends the round.

Examples:
  lanejump sim --seed 42
  lanejump sim --seed 42 --jumps 1,2,1,1
  lanejump sim --seed 7 --jumps 2,2 --record`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagJumps, "jumps", "", "Comma-separated jump steps, each 1 or 2")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the outcome to the round history")
}

var errBadJump = errors.New("jumps must be 1 or 2")

// parseJumps parses a list like "1,2,1".
func parseJumps(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	jumps := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("jump %q: %w", p, err)
		}
		if n != 1 && n != 2 {
			return nil, fmt.Errorf("jump %d: %w", n, errBadJump)
		}
		jumps = append(jumps, n)
	}
	return jumps, nil
}

func runSim(cmd *cobra.Command, _ []string) error {
	jumps, err := parseJumps(flagJumps)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := lanejump.Options{
		Config: cfg,
		Logger: logger,
		OnTransition: func(from, to round.State) {
			fmt.Fprintf(out, "state  %s -> %s\n", from, to)
		},
	}
	if flagRecord {
		if store := openStore(logger); store != nil {
			defer store.Close()
			opts.OnRoundOver = recordRounds(store, "sim", logger)
		}
	}

	game, err := lanejump.New(opts)
	if err != nil {
		return err
	}
	if err := game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: flagSeed}); err != nil {
		return err
	}

	res, err := simulate(game, jumps, flagFPS, out)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "result round=%d steps=%d reason=%s seed=%d\n",
		res.Round, res.Steps, res.Reason, res.Seed)
	return nil
}

// simulate plays one round on a freshly reset game and returns its result.
func simulate(g *lanejump.Game, jumps []int, fps int, w io.Writer) (lanejump.Result, error) {
	if fps <= 0 {
		fps = 60
	}
	limit := fps * 30 // Ticks allowed for any single wait

	fmt.Fprintf(w, "seed   %d\n", g.Seed())
	fmt.Fprintf(w, "road   %s\n", g.Road())
	fmt.Fprintf(w, "gaps   %v\n", g.Road().Gaps())

	ended := func() bool { return g.State().Rounds > 0 }
	tickUntil := func(done func() bool) error {
		for i := 0; i < limit; i++ {
			if done() {
				return nil
			}
			g.Step(core.NewInputFrame())
		}
		if done() {
			return nil
		}
		return fmt.Errorf("sim: no progress after %d ticks", limit)
	}

	g.Step(inputOf(core.ActionStart))

	for i, step := range jumps {
		if err := tickUntil(func() bool { return ended() || g.InputReady() }); err != nil {
			return lanejump.Result{}, err
		}
		if ended() {
			fmt.Fprintf(w, "skip   %d jump(s) after the round ended\n", len(jumps)-i)
			break
		}

		action := core.ActionHop
		if step == 2 {
			action = core.ActionLeap
		}
		g.Step(inputOf(action))
		if err := tickUntil(func() bool { return ended() || !g.Motion().Moving }); err != nil {
			return lanejump.Result{}, err
		}
		if !ended() {
			fmt.Fprintf(w, "jump   +%d -> %d\n", step, g.Motion().Steps)
		}
	}

	if err := tickUntil(ended); err != nil {
		return lanejump.Result{}, err
	}
	res, _ := g.LastResult()
	return res, nil
}

func inputOf(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(a)
	return f
}
