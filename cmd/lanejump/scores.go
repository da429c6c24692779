package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lanejump/internal/games/lanejump"
	"github.com/vovakirdan/lanejump/internal/platform/tui"
	"github.com/vovakirdan/lanejump/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagPlayer string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the round history",
	Long: `Display the best rounds (or the most recent ones with --recent)
together with aggregate statistics.

Examples:
  lanejump scores
  lanejump scores --recent --limit 20
  lanejump scores --player alice
  lanejump scores show <round-id>
  lanejump scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var scoresShowCmd = &cobra.Command{
	Use:   "show <round-id>",
	Short: "Show a single recorded round",
	Args:  cobra.ExactArgs(1),
	RunE:  runScoresShow,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the round history interactively",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List newest rounds instead of best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to list")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "List the newest rounds of one player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole round history")
	scoresCmd.MarkFlagsMutuallyExclusive("recent", "player", "clear")
	scoresCmd.AddCommand(scoresShowCmd)
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening rounds database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClear {
		if err := store.ClearRounds(lanejump.ID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Round history cleared.")
		return nil
	}

	q := roundQuery{recent: flagRecent, player: flagPlayer, limit: flagLimit}
	rounds, err := q.run(store)
	if err != nil {
		return err
	}
	stats, err := store.GameStats(lanejump.ID)
	if err != nil {
		return err
	}

	printRounds(out, q.title(), rounds, stats)
	return nil
}

// roundQuery selects which slice of the history scores lists.
type roundQuery struct {
	recent bool
	player string
	limit  int
}

func (q roundQuery) run(store *storage.Store) ([]storage.RoundRecord, error) {
	switch {
	case q.player != "":
		return store.PlayerRounds(q.player, q.limit)
	case q.recent:
		return store.RecentRounds(lanejump.ID, q.limit)
	default:
		return store.TopRounds(lanejump.ID, q.limit)
	}
}

func (q roundQuery) title() string {
	switch {
	case q.player != "":
		return "Rounds by " + q.player
	case q.recent:
		return "Recent Rounds"
	default:
		return "Best Rounds"
	}
}

func printRounds(w io.Writer, title string, rounds []storage.RoundRecord, stats *storage.Stats) {
	fmt.Fprintf(w, "%s - Lane Jump\n\n", title)

	if len(rounds) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'lanejump play' to set the first record!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-5s  %-8s  %-20s  %-10s  %-16s  %s\n", "Rank", "Steps", "Reason", "Seed", "Player", "Date", "Round ID")
	fmt.Fprintf(w, "  %-4s  %-5s  %-8s  %-20s  %-10s  %-16s  %s\n", "----", "-----", "------", "----", "------", "----", "--------")
	for i, r := range rounds {
		fmt.Fprintf(w, "  %-4d  %-5d  %-8s  %-20d  %-10s  %-16s  %s\n",
			i+1, r.Steps, r.Reason, r.Seed, r.Player, r.CreatedAt.Format("2006-01-02 15:04"), r.RoundID)
	}

	if stats != nil && stats.Rounds > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Rounds: %d  Best: %d  Average: %.1f\n", stats.Rounds, stats.BestSteps, stats.AvgSteps)
	}
}

func runScoresShow(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening rounds database: %w", err)
	}
	defer store.Close()

	rec, err := store.RoundByID(args[0])
	if errors.Is(err, storage.ErrRoundNotFound) {
		return fmt.Errorf("no round with ID %q", args[0])
	}
	if err != nil {
		return err
	}
	printRound(cmd.OutOrStdout(), rec)
	return nil
}

func printRound(w io.Writer, r storage.RoundRecord) {
	fmt.Fprintf(w, "Round   %s\n", r.RoundID)
	fmt.Fprintf(w, "Player  %s\n", r.Player)
	fmt.Fprintf(w, "Date    %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Seed    %d\n", r.Seed)
	fmt.Fprintf(w, "Number  %d\n", r.Round)
	fmt.Fprintf(w, "Road    %d tiles\n", r.RoadLength)
	fmt.Fprintf(w, "Steps   %d\n", r.Steps)
	fmt.Fprintf(w, "Reason  %s\n", r.Reason)
	fmt.Fprintf(w, "\nReplay: lanejump sim --seed %d\n", r.Seed)
}

func runBoard(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening rounds database: %w", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	return tui.RunBoard(store, lanejump.ID, "Lane Jump", width, height)
}
