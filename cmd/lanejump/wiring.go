package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanejump/internal/config"
	"github.com/vovakirdan/lanejump/internal/games/lanejump"
	"github.com/vovakirdan/lanejump/internal/storage"
)

// newLogger builds the process logger from the global flags.
// With quiet set and no --log-file, logs are discarded so a TUI owns the terminal.
func newLogger(quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	case quiet:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "lanejump",
	})
	return logger, closer, nil
}

// recordRounds returns a round hook that saves every finished round.
func recordRounds(store *storage.Store, player string, logger *log.Logger) func(lanejump.Result) {
	if store == nil {
		return nil
	}
	return func(r lanejump.Result) {
		id, err := store.SaveRound(storage.RoundRecord{
			GameID:     lanejump.ID,
			Player:     player,
			Seed:       r.Seed,
			Round:      r.Round,
			RoadLength: r.RoadLength,
			Steps:      r.Steps,
			Reason:     r.Reason.String(),
		})
		if err != nil {
			logger.Warn("could not save round", "error", err)
			return
		}
		logger.Debug("round saved", "id", id, "player", player)
	}
}

// newGame loads the configuration and builds a game that records into store.
func newGame(store *storage.Store, player string, logger *log.Logger) (*lanejump.Game, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	return lanejump.New(lanejump.Options{
		Config:      cfg,
		Logger:      logger,
		OnRoundOver: recordRounds(store, player, logger),
	})
}

// openStore opens the round history, logging instead of failing.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open rounds database", "error", err)
		return nil
	}
	return store
}
