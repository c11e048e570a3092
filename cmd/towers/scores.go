package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-towers/internal/registry"
	"github.com/vovakirdan/tui-towers/internal/storage"
)

var (
	flagScoresBest  bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show recorded sessions",
	Long: `Display recorded sessions, newest first. Without a mode, sessions of
all modes are listed. The score of a session is the total reward earned.

Examples:
  towers scores
  towers scores towers-hard --best
  towers scores towers --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresBest, "best", false, "Order by score instead of date")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all sessions of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID, title := "", "All modes"
	if len(args) > 0 {
		info, ok := registry.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown mode %q, run 'towers list' to see available modes", args[0])
		}
		gameID, title = info.ID, info.Title
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if gameID == "" {
			return fmt.Errorf("--clear needs a mode")
		}
		if err := store.ClearSessions(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared sessions of %s.\n", title)
		return nil
	}

	var sessions []storage.Session
	if flagScoresBest {
		sessions, err = store.BestSessions(gameID, flagScoresLimit)
	} else {
		sessions, err = store.RecentSessions(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Sessions - %s\n\n", title)

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'towers play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %6s  %7s  %6s  %8s  %s\n", "#", "Mode", "Outcome", "Score", "Ticks", "Towers", "Defeated", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %6s  %7s  %6s  %8s  %s\n", "-", "----", "-------", "-----", "-----", "------", "--------", "----")
	for i, s := range sessions {
		fmt.Printf("  %-4d  %-12s  %-8s  %6d  %7d  %6d  %8d  %s\n",
			i+1, s.GameID, s.Outcome, s.Earned, s.Ticks, s.TowersBuilt, s.Defeated,
			s.CreatedAt.Format("2006-01-02 15:04"))
	}

	if gameID != "" {
		stats, err := store.Stats(gameID)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Printf("Played %d, won %d, lost %d. Best %d, average %.1f.\n",
			stats.Sessions, stats.Wins, stats.Losses, stats.BestScore, stats.AvgScore)
	}
	return nil
}
