// lanejump is a terminal lane-jump arcade game.
//
// Usage:
//
//	lanejump play            - Play in this terminal
//	lanejump sim             - Run a scripted round headless and print the outcome
//	lanejump scores          - Show the round history as text
//	lanejump board           - Browse the round history interactively
//	lanejump serve           - Start SSH server for remote play
//	lanejump config          - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible roads
//	--db <path>           - Set database path (default: ~/.lanejump/rounds.db)
//	--config <path>       - Use a custom lanejump.yaml
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lanejump",
	Short: "Lane Jump - hop along a broken road in your terminal",
	Long: `Lane Jump is a one-button arcade game: a road of tiles with gaps,
and an avatar that hops one tile or leaps two. Land on a gap, run off the
end of the road or wait too long between jumps and the round is over.

Available commands:
  play     - Play in this terminal
  sim      - Run a scripted round headless
  scores   - Show round history
  board    - Browse round history interactively
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  lanejump play
  lanejump play --seed 42
  lanejump sim --seed 42 --jumps 1,2,1
  lanejump serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lanejump/rounds.db", "Path to round history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom lanejump.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
