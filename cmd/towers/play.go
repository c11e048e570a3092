package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-towers/internal/games/towerdefense"
	"github.com/vovakirdan/tui-towers/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start a session of the given mode in this terminal. Without a mode the
--difficulty preset picks one (normal by default).

Controls:
  WASD/Arrows    - Move the camera
  Space          - Build the selected tower at the camera
  Tab/E          - Next tower type
  Shift+Tab      - Previous tower type
  P              - Pause
  R              - Restart (after the session ends)
  B/Esc          - Leave (when paused or finished)
  Q/Ctrl+C       - Quit
  Ctrl+S         - Save a screenshot

Examples:
  towers play
  towers play towers-easy
  towers play --difficulty hard
  towers play --config ./my-towers.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	mode, err := resolveMode(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Fail before entering the alternate screen when the catalog is broken.
	cfg, err := towerdefense.LoadConfig(mode.Preset)
	if err == nil {
		_, err = towerdefense.NewFromConfig(mode, cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot start %s: %v\n", mode.ID, err)
		os.Exit(1)
	}

	logger, closeLog, err := sessionLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore(newLogger("towers"))

	runErr := tui.Run(towerdefense.New(mode), store, logger, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
