package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/corgi-arcade/internal/games/corgi"
	"github.com/vovakirdan/corgi-arcade/internal/platform/tui"
	"github.com/vovakirdan/corgi-arcade/internal/registry"
	"github.com/vovakirdan/corgi-arcade/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresRecent bool
	flagScoresLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game (default: corgi).

Examples:
  corgi scores
  corgi scores --recent
  corgi scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the most recent runs instead of the best")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := corgi.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q (run 'corgi list' to see available games)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := terminalSize()
		return tui.RunScoreboard(store, gameID, width, height)
	}

	var runs []storage.ScoreEntry
	heading := "High Scores"
	if flagScoresRecent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(gameID, flagScoresLimit)
	} else {
		runs, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s - %s\n", heading, info.Title)
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'corgi play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Result", "Lives", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-6s  %-5s  %s\n", "----", "------", "-----", "------", "-----", "----")
	for _, row := range tui.RunRows(runs) {
		// #, player, score, result, lives, time, date
		fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-6s  %-5s  %s\n", row[0], row[1], row[2], row[3], row[4], row[6])
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Games: %d  Wins: %d\n", stats.HighScore, stats.GamesCount, stats.Wins)
	}
	return nil
}
