package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lanejump/internal/core"
	"github.com/vovakirdan/lanejump/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Lane Jump",
	Long: `Start playing in this terminal.

Controls:
  Enter              - Start a round
  Space/H/Left click - Hop one tile
  L/Right click      - Leap two tiles
  P/Esc              - Pause
  Ctrl+S             - Screenshot to ~/.lanejump/screenshots
  Q/Ctrl+C           - Quit

Examples:
  lanejump play
  lanejump play --seed 42
  lanejump play --config ./my-lanejump.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := newGame(store, "local", logger)
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if err := tui.Run(game, cfg, tui.ModelOptions{Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
